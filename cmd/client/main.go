package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-ip-echo/internal/adapter"
	"github.com/MKhiriev/go-ip-echo/internal/config"
	"github.com/MKhiriev/go-ip-echo/internal/logger"
	"github.com/MKhiriev/go-ip-echo/internal/service"
	"github.com/MKhiriev/go-ip-echo/internal/workers"
	"github.com/MKhiriev/go-ip-echo/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("ip-echo-client")

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Debug().
		Str("version", info.BuildVersion()).
		Str("date", info.BuildDate()).
		Str("commit", info.BuildCommit()).
		Msg("build info")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Workers.WatchInterval <= 0 {
		ip, err := services.LookupService.LookupIP(ctx)
		if err != nil {
			stop()
			log.Fatal().Err(err).Msg("lookup ip")
		}
		fmt.Println(ip)
		return
	}

	log.Info().Dur("interval", cfg.Workers.WatchInterval).Msg("watching ip, press Ctrl+C to stop")
	watcher := workers.NewIPWatcher(services.LookupService, cfg.Workers.WatchInterval, log, func(ip string) {
		fmt.Println(ip)
	})
	workers.NewWorkers(watcher).Run(ctx)
}
