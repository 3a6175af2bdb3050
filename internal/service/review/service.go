// Package review implements the spaced-repetition workflow: listing due
// cards and grading reviews with the SM-2 scheduler.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (domain.Card, error)
}

type repetitionRepo interface {
	GetByCardID(ctx context.Context, userID, cardID uuid.UUID) (domain.Repetition, error)
	Create(ctx context.Context, rep domain.Repetition) error
	Update(ctx context.Context, rep domain.Repetition) error
	ListDue(ctx context.Context, userID uuid.UUID, today time.Time, limit int) ([]domain.DueCard, error)
	CountDue(ctx context.Context, userID uuid.UUID, today time.Time) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

const defaultDueLimit = 50

// Service implements the review business logic.
type Service struct {
	cards cardRepo
	reps  repetitionRepo
	tx    txManager
	log   *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

// NewService creates a new review service.
func NewService(log *slog.Logger, cards cardRepo, reps repetitionRepo, tx txManager) *Service {
	return &Service{
		cards: cards,
		reps:  reps,
		tx:    tx,
		log:   log.With("service", "review"),
		now:   time.Now,
	}
}
