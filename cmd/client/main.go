// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-record-sync/internal/client"
	"github.com/MKhiriev/go-record-sync/internal/config"
	"github.com/MKhiriev/go-record-sync/internal/logger"
	"github.com/MKhiriev/go-record-sync/internal/service"
	"github.com/MKhiriev/go-record-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("go-record-sync-agent", cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if cfg.Run.OneShot() {
		err = app.RunOnce(ctx, cfg.Run)
		printReports(app.Reports())
		if err != nil {
			log.Fatal().Err(err).Msg("one-shot sync error")
		}
		return
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printReports(reports []service.SyncReport) {
	for _, r := range reports {
		fmt.Println(r.String())
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
