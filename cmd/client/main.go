// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/session"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/internal/workers"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "go-pass-vault-client"

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	// до загрузки конфига пишем в stderr
	bootLog := logger.New(role, os.Stderr)
	cfg, err := config.GetClientConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	// терминал занят интерфейсом, поэтому дальше логируем в файл
	log, logCloser, err := logger.NewClientLogger(role, cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("create client logger")
	}
	defer logCloser.Close()

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	sessionStore := session.NewStore()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, sessionStore, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(cfg.App, serverAdapter, storages, sessionStore, log)
	background := workers.NewClientWorkers(cfg.Session, cfg.Workers, sessionStore, services.Cache, log)
	ui := tui.New(services, sessionStore, buildInfo, log)

	app := client.NewApp(ui, background, log)
	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		storages.Close()
		logCloser.Close()
		os.Exit(1)
	}
}
