// Package assessment implements the quiz session engine: sampling cards
// into a session, generating questions per mode, grading answers, and
// persisting the final result.
package assessment

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	ListForAssessment(ctx context.Context, userID uuid.UUID) ([]domain.AssessmentCard, error)
}

type resultRepo interface {
	Create(ctx context.Context, res domain.TestResult) error
}

type sessionStore interface {
	Replace(userID uuid.UUID, s *Session)
	Mutate(userID uuid.UUID, fn func(s *Session) error) error
	Get(userID uuid.UUID) (Session, error)
	Delete(userID uuid.UUID)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the assessment knobs.
type Config struct {
	// QuestionCount is how many cards one session samples.
	QuestionCount int
	// MaxDistractors caps the wrong options per choice question.
	MaxDistractors int
}

// Service implements the assessment business logic.
type Service struct {
	cards   cardRepo
	results resultRepo
	store   sessionStore
	cfg     Config
	log     *slog.Logger

	rngMu sync.Mutex
	rng   *rand.Rand

	// now is swappable in tests.
	now func() time.Time
}

// NewService creates a new assessment service.
func NewService(log *slog.Logger, cards cardRepo, results resultRepo, store sessionStore, cfg Config) *Service {
	return &Service{
		cards:   cards,
		results: results,
		store:   store,
		cfg:     cfg,
		log:     log.With("service", "assessment"),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
}

// shuffleSlice randomizes a slice in place using the service RNG.
func shuffleSlice[T any](s *Service, items []T) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()

	s.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}
