package service

import (
	"github.com/MKhiriev/go-ip-echo/internal/adapter"
	"github.com/MKhiriev/go-ip-echo/internal/logger"
)

type ClientServices struct {
	LookupService ClientIPLookupService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		LookupService: NewClientIPLookupService(serverAdapter, logger),
	}
}
