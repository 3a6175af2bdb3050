package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/pkg/ctxutil"
)

// HistoryInput holds the filter for listing past test results.
type HistoryInput struct {
	Mode   *domain.TestMode
	Since  *time.Time
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *HistoryInput) Validate() error {
	var errs []domain.FieldError

	if i.Mode != nil && !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be multiple_choice, typing, or matching"})
	}
	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// History returns the current user's past test results, newest first.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]domain.TestResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	results, err := s.results.List(ctx, userID, domain.TestResultFilter{
		Mode:   input.Mode,
		Since:  input.Since,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list test results: %w", err)
	}

	return results, nil
}

// ModeStats returns per-mode counts, average accuracy, and best score.
// Modes the user never played are absent.
func (s *Service) ModeStats(ctx context.Context) ([]domain.ModeStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stats, err := s.results.ModeStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("mode stats: %w", err)
	}

	return stats, nil
}

// WeakCards returns the cards that keep failing, worst first.
func (s *Service) WeakCards(ctx context.Context) ([]domain.WeakCard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	weak, err := s.reps.ListWeak(ctx, userID, weakMinReviews, weakSuccessThreshold, weakFailStreak, weakLimit)
	if err != nil {
		return nil, fmt.Errorf("list weak cards: %w", err)
	}

	return weak, nil
}
