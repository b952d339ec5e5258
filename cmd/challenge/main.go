// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ctf-backend/internal/challenge"
	"github.com/MKhiriev/go-ctf-backend/internal/config"
	"github.com/MKhiriev/go-ctf-backend/internal/logger"
	"github.com/MKhiriev/go-ctf-backend/internal/server"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.GetChallengeConfig()
	if err != nil {
		logger.NewLogger("go-ctf-challenge", true).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-ctf-challenge", cfg.Env == config.EnvDev)
	log.Debug().
		Str("address", cfg.HTTPAddress).
		Str("static_dir", cfg.StaticDir).
		Str("logo", cfg.LogoPath).
		Msg("received configs")

	if _, err := challenge.KeyFromFile(cfg.LogoPath); err != nil {
		log.Warn().Err(err).Msg("signing key is not readable yet, /flag will fail until it is")
	}

	router := challenge.NewHandler(*cfg, log).Init()

	srv, err := server.NewRouterServer(router, config.Server{
		HTTPAddress:     cfg.HTTPAddress,
		ShutdownTimeout: shutdownTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
