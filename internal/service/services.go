package service

import (
	"github.com/MKhiriev/go-ip-echo/internal/logger"
)

type Services struct {
	ClientIPService ClientIPService
}

func NewServices(logger *logger.Logger) *Services {
	return &Services{
		ClientIPService: NewClientIPService(logger),
	}
}
