package main

import (
	"context"

	config "github.com/hanlingo/hanlingo/internal/config/api"
	pg "github.com/hanlingo/hanlingo/internal/repository/postgres"
)

func initDB(ctx context.Context, cfg *config.Config) (*pg.DB, error) {
	return pg.New(ctx, cfg.DB)
}
