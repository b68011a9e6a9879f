package repository

import (
	"context"
	"database/sql"

	"github.com/shiftwise-dev/rota-manager/backend/internal/config"
)

// queryExecutor lets the detail-row helpers run inside a transaction.
type queryExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}
