// Package handler is the thin HTTP skin over the service layer. Handlers
// decode the request, resolve the caller from the bearer token and delegate;
// no business rules live here.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/meleongg/flashcard-backend/internal/auth"
	"github.com/meleongg/flashcard-backend/internal/models"
	"github.com/meleongg/flashcard-backend/internal/service"
	"go.uber.org/zap"
)

type ctxKey int

const userIDKey ctxKey = iota

type Handler struct {
	services *service.Service
	tokens   *auth.TokenParser
	log      *zap.Logger
}

func New(services *service.Service, tokens *auth.TokenParser, log *zap.Logger) *Handler {
	return &Handler{
		services: services,
		tokens:   tokens,
		log:      log,
	}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /flashcard", h.createFlashcard)
	mux.HandleFunc("GET /flashcards", h.listFlashcards)
	mux.HandleFunc("GET /flashcard/{id}", h.getFlashcard)
	mux.HandleFunc("PATCH /flashcard/{id}", h.updateFlashcard)
	mux.HandleFunc("DELETE /flashcard/{id}", h.deleteFlashcard)

	mux.HandleFunc("POST /folders", h.createFolder)
	mux.HandleFunc("GET /folders", h.listFolders)
	mux.HandleFunc("GET /folder/{id}", h.getFolder)
	mux.HandleFunc("PUT /folder/{id}", h.renameFolder)
	mux.HandleFunc("DELETE /folder/{id}", h.deleteFolder)
	mux.HandleFunc("GET /folder/{id}/flashcards", h.folderFlashcards)

	mux.HandleFunc("POST /review-sessions/start", h.startReviewSession)
	mux.HandleFunc("POST /review-sessions/{id}/review", h.submitReview)
	mux.HandleFunc("GET /review-sessions/{id}/summary", h.reviewSessionSummary)
	mux.HandleFunc("GET /review/due", h.dueFlashcards)

	mux.HandleFunc("GET /quiz", h.startQuiz)
	mux.HandleFunc("POST /quiz/{id}/answer", h.recordQuizAnswer)

	mux.HandleFunc("GET /settings", h.getSettings)
	mux.HandleFunc("PUT /settings", h.updateSettings)

	mux.HandleFunc("GET /stats", h.userStats)
	mux.HandleFunc("GET /stats/reviews", h.reviewStats)

	mux.HandleFunc("DELETE /account", h.deleteAccount)

	return h.withAuth(mux)
}

// withAuth resolves the bearer token into a user id and stashes it in the
// request context. Everything under this handler requires authentication.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing or invalid Authorization header")
			return
		}

		userID, err := h.tokens.UserID(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// respondError maps service failures onto HTTP statuses. Not-found covers
// both absence and foreign ownership; the two are indistinguishable on the
// wire.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRating):
		writeError(w, http.StatusBadRequest, "quality must be between 0 and 5")
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, models.ErrDuplicateName):
		writeError(w, http.StatusBadRequest, "name already exists")
	default:
		h.log.Error("request failed",
			zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
