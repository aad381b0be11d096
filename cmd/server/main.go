// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command server runs the mock REST backend: login with JWT access tokens and
// generic in-memory collections.
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-rest-resource/internal/config"
	"github.com/MKhiriev/go-rest-resource/internal/handler"
	"github.com/MKhiriev/go-rest-resource/internal/logger"
	"github.com/MKhiriev/go-rest-resource/internal/server"
	"github.com/MKhiriev/go-rest-resource/internal/service"
	"github.com/MKhiriev/go-rest-resource/models"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	flags := config.RegisterServerFlags(pflag.CommandLine)
	pflag.Parse()

	cfg, err := config.GetServerConfig(flags)
	if err != nil {
		logger.NewLogger("mock-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("mock-server", cfg.Log.Level)
	log.Debug().Str("address", cfg.Server.HTTPAddress).Strs("protected", cfg.Server.ProtectedCollections).Msg("received configs")

	services, err := service.NewServices(cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err = srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("server run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
