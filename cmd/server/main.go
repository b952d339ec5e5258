// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ctf-backend/internal/config"
	"github.com/MKhiriev/go-ctf-backend/internal/handler"
	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/internal/server"
	"github.com/MKhiriev/go-ctf-backend/internal/service"
	"github.com/MKhiriev/go-ctf-backend/internal/store"
	"github.com/MKhiriev/go-ctf-backend/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-ctf-server", true).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-ctf-server", cfg.App.IsDev())
	log.Debug().
		Str("env", cfg.App.Env).
		Str("address", cfg.Server.HTTPAddress).
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.BootstrapAdmin(ctx, cfg.App, log); err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping admin account")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
