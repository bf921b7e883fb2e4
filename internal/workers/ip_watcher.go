// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ip-echo/internal/logger"
	"github.com/MKhiriev/go-ip-echo/internal/service"
)

type ipWatcher struct {
	lookup   service.ClientIPLookupService
	interval time.Duration
	onChange func(ip string)

	logger *logger.Logger
}

// NewIPWatcher creates a worker that asks the server for the caller's ip
// right away and then every interval. onChange is invoked with the new value
// each time the reported ip differs from the previous successful lookup,
// including the first one. Failed lookups are logged and skipped.
func NewIPWatcher(lookup service.ClientIPLookupService, interval time.Duration, logger *logger.Logger, onChange func(ip string)) Worker {
	if onChange == nil {
		onChange = func(string) {}
	}
	return &ipWatcher{
		lookup:   lookup,
		interval: interval,
		onChange: onChange,
		logger:   logger,
	}
}

func (w *ipWatcher) Run(ctx context.Context) {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	var current string
	w.check(ctx, &current)

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug().Msg("ip watcher stopped")
			return
		case <-t.C:
			w.check(ctx, &current)
		}
	}
}

func (w *ipWatcher) check(ctx context.Context, current *string) {
	ip, err := w.lookup.LookupIP(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Warn().Err(err).Msg("ip lookup failed")
		}
		return
	}

	if ip == *current {
		return
	}

	w.logger.Info().Str("previous_ip", *current).Str("client_ip", ip).Msg("ip changed")
	*current = ip
	w.onChange(ip)
}
