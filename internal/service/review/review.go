package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/internal/service/review/sm2"
	"github.com/linguatrack/backend/pkg/ctxutil"
)

// ReviewCardInput holds the parameters for grading a review.
type ReviewCardInput struct {
	CardID  uuid.UUID
	Quality domain.Quality
}

// Validate checks all fields and collects all errors.
func (i *ReviewCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if !i.Quality.IsValid() {
		errs = append(errs, domain.FieldError{Field: "quality", Message: "must be between 0 and 5"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DueCards returns the current user's cards due today, most overdue first.
// A limit of 0 means the default page size.
func (s *Service) DueCards(ctx context.Context, limit int) ([]domain.DueCard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if limit <= 0 {
		limit = defaultDueLimit
	}

	due, err := s.reps.ListDue(ctx, userID, domain.DateOf(s.now()), limit)
	if err != nil {
		return nil, fmt.Errorf("list due cards: %w", err)
	}

	return due, nil
}

// CountDue returns how many cards the current user has waiting for review.
func (s *Service) CountDue(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	count, err := s.reps.CountDue(ctx, userID, domain.DateOf(s.now()))
	if err != nil {
		return 0, fmt.Errorf("count due cards: %w", err)
	}

	return count, nil
}

// ReviewCard records a graded review and reschedules the card with SM-2.
// Cards that somehow lost their ledger row get a fresh one on the spot.
func (s *Service) ReviewCard(ctx context.Context, input ReviewCardInput) (*domain.Repetition, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()

	// Ownership check happens here: a foreign card is simply not found.
	card, err := s.cards.GetByID(ctx, userID, input.CardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}

	rep, err := s.reps.GetByCardID(ctx, userID, card.ID)
	missingLedger := false
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get repetition ledger: %w", err)
		}
		rep = domain.NewRepetition(userID, card.ID, now)
		missingLedger = true
	}

	updated, err := sm2.Advance(rep, input.Quality, now)
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if missingLedger {
			if err := s.reps.Create(txCtx, updated); err != nil {
				return fmt.Errorf("create repetition ledger: %w", err)
			}
			return nil
		}
		if err := s.reps.Update(txCtx, updated); err != nil {
			return fmt.Errorf("update repetition ledger: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review recorded",
		"card_id", card.ID,
		"quality", int(input.Quality),
		"next_review", updated.NextReview.Format("2006-01-02"),
		"interval_days", updated.IntervalDays,
	)

	return &updated, nil
}
