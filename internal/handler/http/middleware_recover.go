// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-riot-proxy/internal/logger"
)

// errHandlerPanic wraps a value recovered from a panicking handler.
var errHandlerPanic = errors.New("handler panic")

// withRecover turns a handler panic into the generic JSON server error and
// logs it with the request-scoped logger. http.ErrAbortHandler is
// re-panicked so net/http can abort the response.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().Bytes("stack", debug.Stack()).Msg("recovered from panic")
			h.writeError(w, r, fmt.Errorf("%w: %v", errHandlerPanic, rec))
		}()

		next.ServeHTTP(w, r)
	})
}
