package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/internal/service/review"
)

// reviewService defines the minimal interface needed by ReviewHandler.
type reviewService interface {
	DueCards(ctx context.Context, limit int) ([]domain.DueCard, error)
	CountDue(ctx context.Context) (int, error)
	ReviewCard(ctx context.Context, input review.ReviewCardInput) (*domain.Repetition, error)
}

// ReviewHandler serves spaced-repetition REST endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type reviewRequest struct {
	CardID  string `json:"cardId"`
	Quality int    `json:"quality"`
}

type repetitionResponse struct {
	CardID               string     `json:"cardId"`
	LastReviewed         *time.Time `json:"lastReviewed,omitempty"`
	NextReview           string     `json:"nextReview"`
	IntervalDays         int        `json:"intervalDays"`
	Easiness             float64    `json:"easiness"`
	RepetitionCount      int        `json:"repetitionCount"`
	TotalReviews         int        `json:"totalReviews"`
	SuccessfulReviews    int        `json:"successfulReviews"`
	FailedReviews        int        `json:"failedReviews"`
	SuccessRate          float64    `json:"successRate"`
	ConsecutiveSuccesses int        `json:"consecutiveSuccesses"`
	ConsecutiveFailures  int        `json:"consecutiveFailures"`
}

type dueCardResponse struct {
	Card       cardResponse       `json:"card"`
	Repetition repetitionResponse `json:"repetition"`
}

func toRepetitionResponse(rep *domain.Repetition) repetitionResponse {
	return repetitionResponse{
		CardID:               rep.CardID.String(),
		LastReviewed:         rep.LastReviewed,
		NextReview:           rep.NextReview.Format("2006-01-02"),
		IntervalDays:         rep.IntervalDays,
		Easiness:             rep.Easiness,
		RepetitionCount:      rep.RepetitionCount,
		TotalReviews:         rep.TotalReviews,
		SuccessfulReviews:    rep.SuccessfulReviews,
		FailedReviews:        rep.FailedReviews,
		SuccessRate:          rep.SuccessRate(),
		ConsecutiveSuccesses: rep.ConsecutiveSuccesses,
		ConsecutiveFailures:  rep.ConsecutiveFailures,
	}
}

// Due handles GET /api/review/due.
// Query params: limit.
func (h *ReviewHandler) Due(w http.ResponseWriter, r *http.Request) {
	due, err := h.svc.DueCards(r.Context(), intQuery(r.URL.Query().Get("limit")))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]dueCardResponse, len(due))
	for i := range due {
		out[i] = dueCardResponse{
			Card:       toCardResponse(&due[i].Card),
			Repetition: toRepetitionResponse(&due[i].Repetition),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"due": out, "count": len(out)})
}

// Count handles GET /api/review/due/count.
func (h *ReviewHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.CountDue(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// Submit handles POST /api/review.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cardID, err := uuid.Parse(req.CardID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cardId")
		return
	}

	rep, err := h.svc.ReviewCard(r.Context(), review.ReviewCardInput{
		CardID:  cardID,
		Quality: domain.Quality(req.Quality),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRepetitionResponse(rep))
}
