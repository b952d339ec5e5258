// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-ctf-backend/internal/config"
	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/internal/service"
	"github.com/MKhiriev/go-ctf-backend/internal/utils"
	"github.com/rs/cors"
)

// Handler serves the accounts REST API. Routes are mounted by Init.
type Handler struct {
	services *service.Services
	cfg      config.Server
	traceIDs *utils.UUIDGenerator
	cors     *cors.Cors

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		traceIDs: utils.NewUUIDGenerator(),
		cors:     newCORS(cfg),
		logger:   logger,
	}
}
