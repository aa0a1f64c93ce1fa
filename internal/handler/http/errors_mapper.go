// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-riot-proxy/internal/app"
	"github.com/MKhiriev/go-riot-proxy/internal/service"
)

type publicError struct {
	status  int
	message string
}

var errorStatusMap = map[error]publicError{
	service.ErrMissingRiotID:       {http.StatusBadRequest, app.MsgMissingRiotID},
	service.ErrInvalidRiotIDFormat: {http.StatusBadRequest, app.MsgInvalidRiotIDFormat},
	service.ErrMissingPUUID:        {http.StatusBadRequest, app.MsgMissingPUUID},
	service.ErrMissingMatchID:      {http.StatusBadRequest, app.MsgMissingMatchID},

	errInvalidJSON: {http.StatusBadRequest, app.MsgInvalidJSON},
}

// statusFromError returns the status and public message for err. Upstream
// failures are never described to the caller; they all become a 500 with
// a generic message.
func statusFromError(err error) (int, string) {
	for target, public := range errorStatusMap {
		if errors.Is(err, target) {
			return public.status, public.message
		}
	}
	return http.StatusInternalServerError, app.MsgServerError
}
