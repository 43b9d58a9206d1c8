package handler

import (
	"net/http"
	"strconv"

	"github.com/meleongg/flashcard-backend/internal/models"
)

type quizResponse struct {
	Session models.QuizSession `json:"session"`
	Cards   []models.QuizCard  `json:"cards"`
}

func (h *Handler) startQuiz(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var folderID *string
	if id := query.Get("folder_id"); id != "" && id != "all" {
		folderID = &id
	}
	count, _ := strconv.Atoi(query.Get("count"))
	includeReverse, _ := strconv.ParseBool(query.Get("include_reverse"))

	session, cards, err := h.services.StartQuiz(r.Context(), userID(r), folderID, count, includeReverse)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, quizResponse{Session: session, Cards: cards})
}

type quizAnswerRequest struct {
	FlashcardID string `json:"flashcard_id"`
	IsCorrect   *bool  `json:"is_correct"`
}

func (h *Handler) recordQuizAnswer(w http.ResponseWriter, r *http.Request) {
	var req quizAnswerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FlashcardID == "" || req.IsCorrect == nil {
		writeError(w, http.StatusBadRequest, "missing flashcard_id or is_correct")
		return
	}

	if err := h.services.RecordAnswer(r.Context(), userID(r), r.PathValue("id"), req.FlashcardID, *req.IsCorrect); err != nil {
		h.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
