package handler

import (
	"net/http"

	"github.com/meleongg/flashcard-backend/internal/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.Settings(r.Context(), userID(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var upd models.UserSettingsUpdate
	if err := decodeBody(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	settings, err := h.services.UpdateSettings(r.Context(), userID(r), upd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) userStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.UserStats(r.Context(), userID(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) reviewStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.StatsS.ReviewStats(r.Context(), userID(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.services.DeleteAccount(r.Context(), userID(r)); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
