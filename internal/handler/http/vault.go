// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vault-sync/internal/app"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/service"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

// vaultStatus serves the cheap sync probe: server version, current vault
// revision, and the account's key derivation salt.
func (h *Handler) vaultStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	status, err := h.services.VaultService.Status(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("vault status failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	vault, err := h.services.VaultService.GetVault(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrVaultNotFound) {
			http.Error(w, app.MsgNoVaultUploadedYet, http.StatusNotFound)
			return
		}
		log.Err(err).Int64("user_id", userID).Msg("vault download failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, vault, http.StatusOK)
}

// postVault accepts an upload. A stale base revision is answered with 200 and
// the outdated status in the body: the conflict is a normal protocol outcome
// the client resolves by downloading and merging, not a transport error.
func (h *Handler) postVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var upload models.VaultUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&upload); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	resp, err := h.services.VaultService.SaveVault(ctx, userID, upload)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			http.Error(w, app.MsgInvalidUploadPayload, http.StatusBadRequest)
			return
		}
		log.Err(err).Int64("user_id", userID).Msg("vault upload failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
