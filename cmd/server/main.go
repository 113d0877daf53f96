package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"social-api/internal/config"
	apphttp "social-api/internal/http"
	"social-api/internal/logging"
	"social-api/internal/metrics"
	"social-api/internal/repository"
	"social-api/internal/repository/memory"
	"social-api/internal/repository/sqlstore"
	"social-api/internal/service"
)

func main() {
	bootLogger := logrus.New()
	bootLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		bootLogger.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		bootLogger.Fatalf("setup logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	accountRepo, messageRepo, closeStore, err := buildRepositories(cfg)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer closeStore()

	if err := accountRepo.Init(ctx); err != nil {
		logger.Fatalf("init account repository: %v", err)
	}
	if err := messageRepo.Init(ctx); err != nil {
		logger.Fatalf("init message repository: %v", err)
	}

	accountService := service.NewAccountService(accountRepo)
	messageService := service.NewMessageService(messageRepo, accountRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(accountService, messageService, logger, metrics.NewHTTP())
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

func buildRepositories(cfg config.Config) (repository.AccountRepository, repository.MessageRepository, func(), error) {
	if cfg.Database.Driver == "memory" {
		store := memory.NewStore()
		return store.Accounts(), store.Messages(), func() {}, nil
	}

	db, err := sqlstore.Open(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.MaxOpenConns)
	if err != nil {
		return nil, nil, nil, err
	}
	closeDB := func() { _ = db.Close() }
	return sqlstore.NewAccountRepository(db), sqlstore.NewMessageRepository(db), closeDB, nil
}
