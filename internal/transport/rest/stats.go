package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/internal/service/stats"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	Overview(ctx context.Context) (*domain.Overview, error)
	History(ctx context.Context, input stats.HistoryInput) ([]domain.TestResult, error)
	ModeStats(ctx context.Context) ([]domain.ModeStats, error)
	WeakCards(ctx context.Context) ([]domain.WeakCard, error)
}

// StatsHandler serves statistics REST endpoints.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type levelCountsResponse struct {
	Beginner     int `json:"beginner"`
	Intermediate int `json:"intermediate"`
	Advanced     int `json:"advanced"`
	Total        int `json:"total"`
}

type reviewTotalsResponse struct {
	TotalReviews      int     `json:"totalReviews"`
	SuccessfulReviews int     `json:"successfulReviews"`
	FailedReviews     int     `json:"failedReviews"`
	SuccessRate       float64 `json:"successRate"`
}

type overviewResponse struct {
	Cards           levelCountsResponse  `json:"cards"`
	Reviews         reviewTotalsResponse `json:"reviews"`
	TotalTests      int                  `json:"totalTests"`
	TestAccuracy    float64              `json:"testAccuracy"`
	DueCount        int                  `json:"dueCount"`
	RecentResults   []testResultResponse `json:"recentResults"`
	Recommendations []string             `json:"recommendations"`
}

type modeStatsResponse struct {
	Mode        string  `json:"mode"`
	Count       int     `json:"count"`
	AvgAccuracy float64 `json:"avgAccuracy"`
	BestScore   int     `json:"bestScore"`
}

type weakCardResponse struct {
	Card       cardResponse       `json:"card"`
	Repetition repetitionResponse `json:"repetition"`
}

// Overview handles GET /api/stats/overview.
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Overview(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	recent := make([]testResultResponse, len(o.RecentResults))
	for i := range o.RecentResults {
		recent[i] = *toTestResultResponse(&o.RecentResults[i])
	}

	recs := o.Recommendations
	if recs == nil {
		recs = []string{}
	}

	writeJSON(w, http.StatusOK, overviewResponse{
		Cards: levelCountsResponse{
			Beginner:     o.Cards.Beginner,
			Intermediate: o.Cards.Intermediate,
			Advanced:     o.Cards.Advanced,
			Total:        o.Cards.Total,
		},
		Reviews: reviewTotalsResponse{
			TotalReviews:      o.Reviews.TotalReviews,
			SuccessfulReviews: o.Reviews.SuccessfulReviews,
			FailedReviews:     o.Reviews.FailedReviews,
			SuccessRate:       o.Reviews.SuccessRate(),
		},
		TotalTests:      o.TotalTests,
		TestAccuracy:    o.TestAccuracy,
		DueCount:        o.DueCount,
		RecentResults:   recent,
		Recommendations: recs,
	})
}

// History handles GET /api/stats/history.
// Query params: mode, since (RFC 3339 or YYYY-MM-DD), limit, offset.
func (h *StatsHandler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := stats.HistoryInput{
		Limit:  intQuery(q.Get("limit")),
		Offset: intQuery(q.Get("offset")),
	}

	if v := q.Get("mode"); v != "" {
		mode := domain.TestMode(v)
		input.Mode = &mode
	}
	if v := q.Get("since"); v != "" {
		since, err := parseSince(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid since")
			return
		}
		input.Since = &since
	}

	results, err := h.svc.History(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]testResultResponse, len(results))
	for i := range results {
		out[i] = *toTestResultResponse(&results[i])
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": out})
}

// Modes handles GET /api/stats/modes.
func (h *StatsHandler) Modes(w http.ResponseWriter, r *http.Request) {
	modes, err := h.svc.ModeStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]modeStatsResponse, len(modes))
	for i, m := range modes {
		out[i] = modeStatsResponse{
			Mode:        m.Mode.String(),
			Count:       m.Count,
			AvgAccuracy: m.AvgAccuracy,
			BestScore:   m.BestScore,
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"modes": out})
}

// Weak handles GET /api/stats/weak.
func (h *StatsHandler) Weak(w http.ResponseWriter, r *http.Request) {
	weak, err := h.svc.WeakCards(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]weakCardResponse, len(weak))
	for i := range weak {
		out[i] = weakCardResponse{
			Card:       toCardResponse(&weak[i].Card),
			Repetition: toRepetitionResponse(&weak[i].Repetition),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"weak": out})
}

// parseSince accepts a full RFC 3339 timestamp or a bare date.
func parseSince(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
