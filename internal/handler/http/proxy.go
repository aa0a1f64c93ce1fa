// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-riot-proxy/internal/app"
	"github.com/MKhiriev/go-riot-proxy/internal/logger"
	"github.com/MKhiriev/go-riot-proxy/internal/utils"
	"github.com/MKhiriev/go-riot-proxy/models"
)

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.ProxyService.Status(r.Context()), http.StatusOK)
}

func (h *Handler) importAccount(w http.ResponseWriter, r *http.Request) {
	var req models.ImportRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	resp, err := h.services.ProxyService.ImportAccount(r.Context(), req)
	h.relay(w, r, resp, err)
}

func (h *Handler) rank(w http.ResponseWriter, r *http.Request) {
	var req models.PUUIDRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	resp, err := h.services.ProxyService.Rank(r.Context(), req)
	h.relay(w, r, resp, err)
}

func (h *Handler) matches(w http.ResponseWriter, r *http.Request) {
	var req models.PUUIDRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	resp, err := h.services.ProxyService.Matches(r.Context(), req)
	h.relay(w, r, resp, err)
}

func (h *Handler) matchDetail(w http.ResponseWriter, r *http.Request) {
	var req models.MatchDetailRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	resp, err := h.services.ProxyService.MatchDetail(r.Context(), req)
	h.relay(w, r, resp, err)
}

func (h *Handler) championRotations(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.ProxyService.ChampionRotations(r.Context())
	h.relay(w, r, resp, err)
}

// relay writes the upstream body unchanged, or the mapped error.
func (h *Handler) relay(w http.ResponseWriter, r *http.Request, resp models.UpstreamResponse, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteRawJSON(w, resp.Body, resp.RelayStatus()); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing upstream response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("path", r.URL.Path).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgNotFound}, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgMethodNotAllowed}, http.StatusMethodNotAllowed)
}
