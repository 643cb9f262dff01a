package http

import (
	"github.com/MKhiriev/go-seller-sync/internal/config"
	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/service"
)

type Handler struct {
	services *service.Services

	// hashKey signs response bodies; empty disables signing.
	hashKey   string
	enableAPI bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		hashKey:   cfg.HashKey,
		enableAPI: cfg.EnableAPI,
		logger:    logger,
	}
}
