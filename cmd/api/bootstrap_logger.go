package main

import (
	"go.uber.org/zap"

	config "github.com/hanlingo/hanlingo/internal/config/api"
	"github.com/hanlingo/hanlingo/internal/obs"
)

func initLogger(cfg *config.Config) (*zap.Logger, error) {
	l, err := obs.NewLogger(cfg.Log.AsLoggerConfig(cfg.App))
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l, nil
}
