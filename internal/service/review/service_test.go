package review

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/pkg/ctxutil"
)

var fixedNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func newTestService(cards *cardRepoMock, reps *repetitionRepoMock) *Service {
	return &Service{
		cards: cards,
		reps:  reps,
		tx:    &txManagerMock{},
		log:   slog.Default(),
		now:   func() time.Time { return fixedNow },
	}
}

func authedCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

func TestService_DueCards_DefaultLimit(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	mockReps := &repetitionRepoMock{
		ListDueFunc: func(ctx context.Context, uid uuid.UUID, today time.Time, limit int) ([]domain.DueCard, error) {
			if uid != userID {
				t.Errorf("unexpected userID: %s", uid)
			}
			if !today.Equal(domain.DateOf(fixedNow)) {
				t.Errorf("today = %v, want start of day UTC", today)
			}
			if limit != defaultDueLimit {
				t.Errorf("limit = %d, want default %d", limit, defaultDueLimit)
			}
			return []domain.DueCard{}, nil
		},
	}

	svc := newTestService(&cardRepoMock{}, mockReps)

	if _, err := svc.DueCards(authedCtx(userID), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_DueCards_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := newTestService(&cardRepoMock{}, &repetitionRepoMock{})

	_, err := svc.DueCards(context.Background(), 10)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
}

func TestService_CountDue(t *testing.T) {
	t.Parallel()

	mockReps := &repetitionRepoMock{
		CountDueFunc: func(ctx context.Context, uid uuid.UUID, today time.Time) (int, error) {
			return 7, nil
		},
	}

	svc := newTestService(&cardRepoMock{}, mockReps)

	count, err := svc.CountDue(authedCtx(uuid.New()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 7 {
		t.Errorf("count = %d, want 7", count)
	}
}

func TestService_ReviewCard_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	cardID := uuid.New()

	rep := domain.NewRepetition(userID, cardID, fixedNow.Add(-24*time.Hour))

	mockCards := &cardRepoMock{
		GetByIDFunc: func(ctx context.Context, uid, cid uuid.UUID) (domain.Card, error) {
			return domain.Card{ID: cardID, UserID: userID, Word: "w"}, nil
		},
	}

	var saved domain.Repetition
	mockReps := &repetitionRepoMock{
		GetByCardIDFunc: func(ctx context.Context, uid, cid uuid.UUID) (domain.Repetition, error) {
			return rep, nil
		},
		UpdateFunc: func(ctx context.Context, r domain.Repetition) error {
			saved = r
			return nil
		},
	}

	svc := newTestService(mockCards, mockReps)

	updated, err := svc.ReviewCard(authedCtx(userID), ReviewCardInput{CardID: cardID, Quality: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.TotalReviews != 1 || updated.SuccessfulReviews != 1 {
		t.Errorf("counters = %d/%d, want 1/1", updated.TotalReviews, updated.SuccessfulReviews)
	}
	if updated.IntervalDays != 1 {
		t.Errorf("first successful interval = %d, want 1", updated.IntervalDays)
	}
	wantNext := domain.DateOf(fixedNow).AddDate(0, 0, 1)
	if !updated.NextReview.Equal(wantNext) {
		t.Errorf("next review = %v, want %v", updated.NextReview, wantNext)
	}
	if saved.ID != rep.ID {
		t.Errorf("persisted wrong ledger row: %s", saved.ID)
	}
}

func TestService_ReviewCard_InvalidQuality(t *testing.T) {
	t.Parallel()

	svc := newTestService(&cardRepoMock{}, &repetitionRepoMock{})

	_, err := svc.ReviewCard(authedCtx(uuid.New()), ReviewCardInput{CardID: uuid.New(), Quality: 6})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
}

func TestService_ReviewCard_ForeignCard(t *testing.T) {
	t.Parallel()

	mockCards := &cardRepoMock{
		GetByIDFunc: func(ctx context.Context, uid, cid uuid.UUID) (domain.Card, error) {
			return domain.Card{}, domain.ErrNotFound
		},
	}

	svc := newTestService(mockCards, &repetitionRepoMock{})

	_, err := svc.ReviewCard(authedCtx(uuid.New()), ReviewCardInput{CardID: uuid.New(), Quality: 3})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestService_ReviewCard_MissingLedgerIsRecreated(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	cardID := uuid.New()

	mockCards := &cardRepoMock{
		GetByIDFunc: func(ctx context.Context, uid, cid uuid.UUID) (domain.Card, error) {
			return domain.Card{ID: cardID, UserID: userID}, nil
		},
	}

	created := false
	mockReps := &repetitionRepoMock{
		GetByCardIDFunc: func(ctx context.Context, uid, cid uuid.UUID) (domain.Repetition, error) {
			return domain.Repetition{}, domain.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, r domain.Repetition) error {
			created = true
			if r.CardID != cardID || r.UserID != userID {
				t.Errorf("ledger recreated for wrong pair: %s/%s", r.UserID, r.CardID)
			}
			if r.TotalReviews != 1 {
				t.Errorf("recreated ledger must already carry the review, got %d", r.TotalReviews)
			}
			return nil
		},
	}

	svc := newTestService(mockCards, mockReps)

	_, err := svc.ReviewCard(authedCtx(userID), ReviewCardInput{CardID: cardID, Quality: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected Create, not Update, for a missing ledger")
	}
}

func TestService_ReviewCard_FailureResets(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	cardID := uuid.New()

	rep := domain.NewRepetition(userID, cardID, fixedNow.Add(-30*24*time.Hour))
	rep.IntervalDays = 16
	rep.RepetitionCount = 3
	rep.TotalReviews = 3
	rep.SuccessfulReviews = 3
	rep.ConsecutiveSuccesses = 3

	mockCards := &cardRepoMock{
		GetByIDFunc: func(ctx context.Context, uid, cid uuid.UUID) (domain.Card, error) {
			return domain.Card{ID: cardID, UserID: userID}, nil
		},
	}
	mockReps := &repetitionRepoMock{
		GetByCardIDFunc: func(ctx context.Context, uid, cid uuid.UUID) (domain.Repetition, error) {
			return rep, nil
		},
		UpdateFunc: func(ctx context.Context, r domain.Repetition) error { return nil },
	}

	svc := newTestService(mockCards, mockReps)

	updated, err := svc.ReviewCard(authedCtx(userID), ReviewCardInput{CardID: cardID, Quality: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.IntervalDays != 1 || updated.RepetitionCount != 0 {
		t.Errorf("failure must reset: interval=%d count=%d", updated.IntervalDays, updated.RepetitionCount)
	}
	if updated.ConsecutiveFailures != 1 || updated.ConsecutiveSuccesses != 0 {
		t.Errorf("streaks = %d/%d, want failures 1, successes 0",
			updated.ConsecutiveFailures, updated.ConsecutiveSuccesses)
	}
}

func TestService_ReviewCard_TxFailurePropagates(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	cardID := uuid.New()
	txErr := errors.New("deadlock")

	mockCards := &cardRepoMock{
		GetByIDFunc: func(ctx context.Context, uid, cid uuid.UUID) (domain.Card, error) {
			return domain.Card{ID: cardID, UserID: userID}, nil
		},
	}
	mockReps := &repetitionRepoMock{
		GetByCardIDFunc: func(ctx context.Context, uid, cid uuid.UUID) (domain.Repetition, error) {
			return domain.NewRepetition(userID, cardID, fixedNow), nil
		},
		UpdateFunc: func(ctx context.Context, r domain.Repetition) error { return txErr },
	}

	svc := newTestService(mockCards, mockReps)

	_, err := svc.ReviewCard(authedCtx(userID), ReviewCardInput{CardID: cardID, Quality: 3})
	if !errors.Is(err, txErr) {
		t.Fatalf("got %v, want tx error", err)
	}
}
