package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/internal/service/assessment"
)

// assessmentService defines the minimal interface needed by AssessmentHandler.
type assessmentService interface {
	Start(ctx context.Context, input assessment.StartInput) (*assessment.Question, error)
	CurrentQuestion(ctx context.Context) (*assessment.Question, error)
	SubmitAnswer(ctx context.Context, input assessment.SubmitInput) (*assessment.SubmitOutcome, error)
	Cancel(ctx context.Context) error
}

// AssessmentHandler serves quiz session REST endpoints.
type AssessmentHandler struct {
	svc assessmentService
	log *slog.Logger
}

// NewAssessmentHandler creates an AssessmentHandler.
func NewAssessmentHandler(svc assessmentService, logger *slog.Logger) *AssessmentHandler {
	return &AssessmentHandler{svc: svc, log: logger.With("handler", "assessment")}
}

type startTestRequest struct {
	Mode      string `json:"mode"`
	Direction string `json:"direction"`
}

type submitAnswerRequest struct {
	Answer string `json:"answer"`
}

type questionResponse struct {
	Index   int      `json:"index"`
	Total   int      `json:"total"`
	CardID  string   `json:"cardId"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
}

type testResultResponse struct {
	ID          string    `json:"id"`
	Mode        string    `json:"mode"`
	Direction   string    `json:"direction"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	Accuracy    float64   `json:"accuracy"`
	ResultLevel string    `json:"resultLevel"`
	CompletedAt time.Time `json:"completedAt"`
}

type submitAnswerResponse struct {
	Correct  bool                `json:"correct"`
	Expected string              `json:"expected"`
	Answered int                 `json:"answered"`
	Total    int                 `json:"total"`
	Done     bool                `json:"done"`
	Result   *testResultResponse `json:"result,omitempty"`
}

func toQuestionResponse(q *assessment.Question) questionResponse {
	return questionResponse{
		Index:   q.Index,
		Total:   q.Total,
		CardID:  q.CardID.String(),
		Prompt:  q.Prompt,
		Options: q.Options,
	}
}

func toTestResultResponse(res *domain.TestResult) *testResultResponse {
	return &testResultResponse{
		ID:          res.ID.String(),
		Mode:        res.Mode.String(),
		Direction:   res.Direction.String(),
		Score:       res.Score,
		Total:       res.Total,
		Accuracy:    res.Accuracy(),
		ResultLevel: res.ResultLevel(),
		CompletedAt: res.CompletedAt,
	}
}

// Start handles POST /api/tests.
func (h *AssessmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q, err := h.svc.Start(r.Context(), assessment.StartInput{
		Mode:      domain.TestMode(req.Mode),
		Direction: domain.Direction(req.Direction),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toQuestionResponse(q))
}

// Current handles GET /api/tests/current.
func (h *AssessmentHandler) Current(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.CurrentQuestion(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(q))
}

// Submit handles POST /api/tests/answer.
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.svc.SubmitAnswer(r.Context(), assessment.SubmitInput{Answer: req.Answer})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := submitAnswerResponse{
		Correct:  outcome.Correct,
		Expected: outcome.Expected,
		Answered: outcome.Answered,
		Total:    outcome.Total,
		Done:     outcome.Done,
	}
	if outcome.Result != nil {
		resp.Result = toTestResultResponse(outcome.Result)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Cancel handles DELETE /api/tests/current.
func (h *AssessmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Cancel(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
