// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrBind is returned by NewServer when the configured address cannot be
	// bound. It is fatal at startup.
	ErrBind = errors.New("unable to bind listen address")

	errNoHandler = errors.New("no handler provided")
)
