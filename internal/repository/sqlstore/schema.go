package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var sqliteSchema = map[string][]string{
	"account": {`
CREATE TABLE IF NOT EXISTS account (
	account_id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL
);`,
	},
	"message": {`
CREATE TABLE IF NOT EXISTS message (
	message_id INTEGER PRIMARY KEY AUTOINCREMENT,
	posted_by INTEGER NOT NULL REFERENCES account(account_id),
	message_text TEXT NOT NULL,
	time_posted_epoch INTEGER NOT NULL
);`,
		`CREATE INDEX IF NOT EXISTS message_posted_by_idx ON message (posted_by);`,
	},
}

var postgresSchema = map[string][]string{
	"account": {`
CREATE TABLE IF NOT EXISTS account (
	account_id BIGSERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL
);`,
	},
	"message": {`
CREATE TABLE IF NOT EXISTS message (
	message_id BIGSERIAL PRIMARY KEY,
	posted_by BIGINT NOT NULL REFERENCES account(account_id),
	message_text VARCHAR(255) NOT NULL,
	time_posted_epoch BIGINT NOT NULL
);`,
		`CREATE INDEX IF NOT EXISTS message_posted_by_idx ON message (posted_by);`,
	},
}

func createTable(ctx context.Context, db *sqlx.DB, table string) error {
	schema := sqliteSchema
	if db.DriverName() == DriverPostgres {
		schema = postgresSchema
	}
	for _, stmt := range schema[table] {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create %s table: %w", table, err)
		}
	}
	return nil
}
