// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-riot-proxy/internal/logger"
	"github.com/MKhiriev/go-riot-proxy/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWithRecover_WritesJSONServerError(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("summoner payload exploded")
	})

	req := httptest.NewRequest(http.MethodPost, "/rank", nil)
	req.Header.Set(traceIDHeader, "trace-panic")
	rec := httptest.NewRecorder()

	h.withTraceID(h.withRecover(panicking)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Server error"}`, rec.Body.String())
	assert.Contains(t, buf.String(), `"trace_id":"trace-panic"`)
	assert.Contains(t, buf.String(), "summoner payload exploded")
}

func TestWithRecover_PassesThroughWithoutPanic(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	h.withRecover(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestWithRecover_RepanicsAbortHandler(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.withRecover(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestRouter_HandlerPanicKeepsJSONContract(t *testing.T) {
	tr := newTestRouter(t)
	tr.proxy.EXPECT().Status(gomock.Any()).DoAndReturn(func(context.Context) models.MessageResponse {
		panic("nil map")
	})

	rec := tr.do(http.MethodGet, "/", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, contentTypeJSON, rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Server error"}`, rec.Body.String())
}
