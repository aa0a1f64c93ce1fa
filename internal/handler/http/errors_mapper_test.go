// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-riot-proxy/internal/adapter"
	"github.com/MKhiriev/go-riot-proxy/internal/app"
	"github.com/MKhiriev/go-riot-proxy/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"missing riot id", service.ErrMissingRiotID, http.StatusBadRequest, app.MsgMissingRiotID},
		{"wrapped riot id format", fmt.Errorf("ctx: %w", service.ErrInvalidRiotIDFormat), http.StatusBadRequest, app.MsgInvalidRiotIDFormat},
		{"missing puuid", service.ErrMissingPUUID, http.StatusBadRequest, app.MsgMissingPUUID},
		{"missing match id", service.ErrMissingMatchID, http.StatusBadRequest, app.MsgMissingMatchID},
		{"invalid json", fmt.Errorf("%w: eof", errInvalidJSON), http.StatusBadRequest, app.MsgInvalidJSON},
		{"circuit open", adapter.ErrCircuitOpen, http.StatusInternalServerError, app.MsgServerError},
		{"upstream timeout", adapter.ErrUpstreamTimeout, http.StatusInternalServerError, app.MsgServerError},
		{"invalid upstream body", adapter.ErrInvalidUpstreamBody, http.StatusInternalServerError, app.MsgServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
