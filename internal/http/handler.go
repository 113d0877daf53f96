package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"social-api/internal/domain"
	"social-api/internal/metrics"
	"social-api/internal/service"
)

// Handler wires HTTP routes to the account and message services.
type Handler struct {
	accounts service.AccountService
	messages service.MessageService
	logger   logrus.FieldLogger
	metrics  *metrics.HTTP
}

func NewHandler(accounts service.AccountService, messages service.MessageService, logger logrus.FieldLogger, m *metrics.HTTP) *Handler {
	return &Handler{
		accounts: accounts,
		messages: messages,
		logger:   logger,
		metrics:  m,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestLogger(h.logger), corsMiddleware())
	if h.metrics != nil {
		router.Use(h.metrics.Middleware())
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	router.POST("/register", h.register)
	router.POST("/login", h.login)
	router.POST("/messages", h.postMessage)
	router.GET("/messages", h.listMessages)
	router.GET("/messages/:message_id", h.getMessage)
	router.DELETE("/messages/:message_id", h.deleteMessage)
	router.PATCH("/messages/:message_id", h.updateMessage)
	router.GET("/accounts/:account_id/messages", h.listAccountMessages)
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})
}

type accountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageRequest struct {
	PostedBy        int64  `json:"posted_by"`
	Text            string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

type updateMessageRequest struct {
	Text string `json:"message_text"`
}

func (h *Handler) register(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accounts.Register(c.Request.Context(), domain.Account{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, accountToResponse(*account))
}

func (h *Handler) login(c *gin.Context) {
	var req accountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := h.accounts.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.writeError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, accountToResponse(*account))
}

func (h *Handler) postMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.messages.Post(c.Request.Context(), domain.Message{
		PostedBy:        req.PostedBy,
		Text:            req.Text,
		TimePostedEpoch: req.TimePostedEpoch,
	})
	if err != nil {
		h.writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, messageToResponse(*msg))
}

func (h *Handler) listMessages(c *gin.Context) {
	messages, err := h.messages.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, messagesToResponse(messages))
}

func (h *Handler) getMessage(c *gin.Context) {
	id, ok := pathID(c, "message_id")
	if !ok {
		return
	}

	msg, err := h.messages.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusOK)
			return
		}
		h.writeError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, messageToResponse(*msg))
}

func (h *Handler) deleteMessage(c *gin.Context) {
	id, ok := pathID(c, "message_id")
	if !ok {
		return
	}

	msg, err := h.messages.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusOK)
			return
		}
		h.writeError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, messageToResponse(*msg))
}

func (h *Handler) updateMessage(c *gin.Context) {
	id, ok := pathID(c, "message_id")
	if !ok {
		return
	}

	var req updateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.messages.Update(c.Request.Context(), id, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message not found"})
			return
		}
		h.writeError(c, err, http.StatusBadRequest)
		return
	}
	c.JSON(http.StatusOK, messageToResponse(*msg))
}

func (h *Handler) listAccountMessages(c *gin.Context) {
	accountID, ok := pathID(c, "account_id")
	if !ok {
		return
	}

	messages, err := h.messages.ListByAccount(c.Request.Context(), accountID)
	if err != nil {
		h.writeError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, messagesToResponse(messages))
}

// writeError answers validation failures with rejectStatus. Everything else is
// an infrastructure fault: it is attached to the context for the request
// logger and the client only sees a generic 500.
func (h *Handler) writeError(c *gin.Context, err error, rejectStatus int) {
	if errors.Is(err, service.ErrRejected) {
		c.JSON(rejectStatus, gin.H{"error": err.Error()})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
