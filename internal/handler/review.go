package handler

import "net/http"

func (h *Handler) startReviewSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.services.StartSession(r.Context(), userID(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"session_id": session.ID})
}

type submitReviewRequest struct {
	FlashcardID string `json:"flashcard_id"`
	Quality     *int   `json:"quality"`
}

func (h *Handler) submitReview(w http.ResponseWriter, r *http.Request) {
	var req submitReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FlashcardID == "" || req.Quality == nil {
		writeError(w, http.StatusBadRequest, "missing flashcard_id or quality")
		return
	}

	card, err := h.services.SubmitReview(r.Context(), userID(r), r.PathValue("id"), req.FlashcardID, *req.Quality)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, card)
}

func (h *Handler) reviewSessionSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.services.SessionSummary(r.Context(), userID(r), r.PathValue("id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) dueFlashcards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.services.DueCards(r.Context(), userID(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cards)
}
