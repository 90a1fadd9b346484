package main

import (
	"go.uber.org/zap"

	config "github.com/hanlingo/hanlingo/internal/config/api"
	"github.com/hanlingo/hanlingo/internal/domain/event"
	"github.com/hanlingo/hanlingo/internal/repository/kafka"
)

// initPublisher returns a no-op publisher when messaging is disabled, so the
// usecases never care whether a broker exists.
func initPublisher(cfg *config.Config, logger *zap.Logger) (event.Publisher, func()) {
	if !cfg.Kafka.Enable || len(cfg.Kafka.Brokers) == 0 {
		logger.Info("kafka disabled")
		return kafka.NopPublisher{}, func() {}
	}
	p := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic).WithLogger(logger)
	return p, func() { _ = p.Close() }
}
