// Package stats aggregates learning progress: level counts, review totals,
// per-mode test statistics, weak cards, and rule-based recommendations.
package stats

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
	CountByLevel(ctx context.Context, userID uuid.UUID) (domain.LevelCounts, error)
}

type repetitionRepo interface {
	Totals(ctx context.Context, userID uuid.UUID) (domain.ReviewTotals, error)
	CountDue(ctx context.Context, userID uuid.UUID, today time.Time) (int, error)
	ListWeak(ctx context.Context, userID uuid.UUID, minReviews int, successThreshold float64, failStreak, limit int) ([]domain.WeakCard, error)
}

type resultRepo interface {
	List(ctx context.Context, userID uuid.UUID, filter domain.TestResultFilter) ([]domain.TestResult, error)
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TestResult, error)
	ModeStats(ctx context.Context, userID uuid.UUID) ([]domain.ModeStats, error)
	Summary(ctx context.Context, userID uuid.UUID) (tests, correct, total int, err error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Thresholds for the weak-card listing.
const (
	weakMinReviews       = 3
	weakSuccessThreshold = 70.0
	weakFailStreak       = 2
	weakLimit            = 10
)

const recentResultsLimit = 5

// Service implements the statistics business logic.
type Service struct {
	cards   cardRepo
	reps    repetitionRepo
	results resultRepo
	log     *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

// NewService creates a new statistics service.
func NewService(log *slog.Logger, cards cardRepo, reps repetitionRepo, results resultRepo) *Service {
	return &Service{
		cards:   cards,
		reps:    reps,
		results: results,
		log:     log.With("service", "stats"),
		now:     time.Now,
	}
}
