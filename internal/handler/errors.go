// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when no client ip
// service is available to back the HTTP handler. The server refuses to
// start in that case.
var errNoHandlersAreCreated = errors.New("no handlers are created")
