package main

import (
	"fmt"

	"github.com/MKhiriev/go-ip-echo/internal/config"
	"github.com/MKhiriev/go-ip-echo/internal/handler"
	"github.com/MKhiriev/go-ip-echo/internal/logger"
	"github.com/MKhiriev/go-ip-echo/internal/server"
	"github.com/MKhiriev/go-ip-echo/internal/service"
	"github.com/MKhiriev/go-ip-echo/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("ip-echo-server")
	cfg, err := config.GetServerConfig(log)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services := service.NewServices(log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
