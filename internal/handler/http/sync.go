// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-seller-sync/internal/logger"
	"github.com/MKhiriev/go-seller-sync/internal/utils"
	"github.com/MKhiriev/go-seller-sync/models"
)

// syncData serves POST /api/{resource}/syncdata2. The seller comes from the
// token and the resource from the route; the body only carries the
// client's ids, timestamp and optional projection.
func (h *Handler) syncData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sellerID, found := utils.GetSellerIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.syncData").Msg("no seller ID was given")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var syncRequest models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&syncRequest); err != nil {
		log.Err(err).Str("func", "*Handler.syncData").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	syncRequest.SellerID = sellerID
	syncRequest.Resource = models.ResourceType(chi.URLParam(r, "resource"))

	response, err := h.services.SyncService.Sync(ctx, syncRequest)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).
			Str("func", "*Handler.syncData").
			Str("resource", string(syncRequest.Resource)).
			Int("status", status).
			Msg("sync request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	if _, err = utils.WriteSignedJSON(w, response, http.StatusOK, h.hashKey); err != nil {
		log.Err(err).Str("func", "*Handler.syncData").Msg("failed to write response")
	}
}

// getSchemas serves GET /api/sync/schemas.
func (h *Handler) getSchemas(w http.ResponseWriter, r *http.Request) {
	schemas := h.services.SyncService.Schemas(r.Context())

	if _, err := utils.WriteSignedJSON(w, schemas, http.StatusOK, h.hashKey); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getSchemas").Msg("failed to write response")
	}
}
