package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/internal/service/vocab"
)

// vocabService defines the minimal interface needed by CardHandler.
type vocabService interface {
	CreateCard(ctx context.Context, input vocab.CreateCardInput) (*domain.Card, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error)
	ListCards(ctx context.Context, input vocab.ListCardsInput) ([]domain.Card, error)
	UpdateCard(ctx context.Context, input vocab.UpdateCardInput) (*domain.Card, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
	LevelCounts(ctx context.Context) (domain.LevelCounts, error)
}

// CardHandler serves flashcard REST endpoints.
type CardHandler struct {
	svc vocabService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc vocabService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "cards")}
}

type cardRequest struct {
	Word        *string `json:"word"`
	Translation *string `json:"translation"`
	Example     *string `json:"example"`
	Note        *string `json:"note"`
	Level       *string `json:"level"`
}

type cardResponse struct {
	ID          string    `json:"id"`
	Word        string    `json:"word"`
	Translation string    `json:"translation"`
	Example     string    `json:"example,omitempty"`
	Note        string    `json:"note,omitempty"`
	Level       string    `json:"level"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toCardResponse(c *domain.Card) cardResponse {
	return cardResponse{
		ID:          c.ID.String(),
		Word:        c.Word,
		Translation: c.Translation,
		Example:     c.Example,
		Note:        c.Note,
		Level:       c.Level.String(),
		CreatedAt:   c.CreatedAt,
	}
}

func toCardResponses(cards []domain.Card) []cardResponse {
	out := make([]cardResponse, len(cards))
	for i := range cards {
		out[i] = toCardResponse(&cards[i])
	}
	return out
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Create handles POST /api/cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req cardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.svc.CreateCard(r.Context(), vocab.CreateCardInput{
		Word:        strOrEmpty(req.Word),
		Translation: strOrEmpty(req.Translation),
		Example:     strOrEmpty(req.Example),
		Note:        strOrEmpty(req.Note),
		Level:       domain.CardLevel(strOrEmpty(req.Level)),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCardResponse(card))
}

// List handles GET /api/cards.
// Query params: level, search, limit, offset.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	input := vocab.ListCardsInput{}
	q := r.URL.Query()

	if v := q.Get("level"); v != "" {
		level := domain.CardLevel(v)
		input.Level = &level
	}
	if v := q.Get("search"); v != "" {
		input.Search = &v
	}
	input.Limit = intQuery(q.Get("limit"))
	input.Offset = intQuery(q.Get("offset"))

	cards, err := h.svc.ListCards(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"cards": toCardResponses(cards)})
}

// Get handles GET /api/cards/{id}.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	card, err := h.svc.GetCard(r.Context(), cardID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// Update handles PATCH /api/cards/{id}.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req cardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := vocab.UpdateCardInput{
		CardID:      cardID,
		Word:        req.Word,
		Translation: req.Translation,
		Example:     req.Example,
		Note:        req.Note,
	}
	if req.Level != nil {
		level := domain.CardLevel(*req.Level)
		input.Level = &level
	}

	card, err := h.svc.UpdateCard(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// Delete handles DELETE /api/cards/{id}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteCard(r.Context(), cardID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Levels handles GET /api/cards/levels.
func (h *CardHandler) Levels(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.LevelCounts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"beginner":     counts.Beginner,
		"intermediate": counts.Intermediate,
		"advanced":     counts.Advanced,
		"total":        counts.Total,
	})
}

// pathUUID parses the named path value as a UUID, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// intQuery parses a query integer, treating absence and garbage as zero.
func intQuery(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
