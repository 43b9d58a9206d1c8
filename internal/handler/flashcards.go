package handler

import (
	"net/http"
	"strconv"

	"github.com/meleongg/flashcard-backend/internal/models"
)

type createFlashcardRequest struct {
	Word     string  `json:"word"`
	FolderID *string `json:"folder_id,omitempty"`
}

func (h *Handler) createFlashcard(w http.ResponseWriter, r *http.Request) {
	var req createFlashcardRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Word == "" {
		writeError(w, http.StatusBadRequest, "missing word")
		return
	}

	card, err := h.services.CreateFlashcard(r.Context(), userID(r), req.Word, req.FolderID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, card)
}

type flashcardListResponse struct {
	Total      int                `json:"total"`
	Flashcards []models.Flashcard `json:"flashcards"`
}

func (h *Handler) listFlashcards(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	cards, total, err := h.services.Flashcards(r.Context(), userID(r), skip, limit)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, flashcardListResponse{Total: total, Flashcards: cards})
}

func (h *Handler) getFlashcard(w http.ResponseWriter, r *http.Request) {
	card, err := h.services.Flashcard(r.Context(), userID(r), r.PathValue("id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, card)
}

func (h *Handler) updateFlashcard(w http.ResponseWriter, r *http.Request) {
	var upd models.FlashcardUpdate
	if err := decodeBody(r, &upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if upd.Empty() {
		writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	card, err := h.services.UpdateFlashcard(r.Context(), userID(r), r.PathValue("id"), upd)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, card)
}

func (h *Handler) deleteFlashcard(w http.ResponseWriter, r *http.Request) {
	if err := h.services.DeleteFlashcard(r.Context(), userID(r), r.PathValue("id")); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
