// Package vocab implements flashcard management: CRUD, filtering, and the
// creation of the scheduling ledger that accompanies every card.
package vocab

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (domain.Card, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.CardFilter) ([]domain.Card, error)
	CountByLevel(ctx context.Context, userID uuid.UUID) (domain.LevelCounts, error)
	Create(ctx context.Context, c domain.Card) error
	Update(ctx context.Context, c domain.Card) error
	Delete(ctx context.Context, userID, cardID uuid.UUID) error
}

type repetitionRepo interface {
	Create(ctx context.Context, rep domain.Repetition) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the vocabulary business logic.
type Service struct {
	cards cardRepo
	reps  repetitionRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new vocabulary service.
func NewService(log *slog.Logger, cards cardRepo, reps repetitionRepo, tx txManager) *Service {
	return &Service{
		cards: cards,
		reps:  reps,
		tx:    tx,
		log:   log.With("service", "vocab"),
	}
}
