package stats

import (
	"context"
	"fmt"

	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/pkg/ctxutil"
)

// Overview assembles the dashboard for the current user.
func (s *Service) Overview(ctx context.Context) (*domain.Overview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cards, err := s.cards.CountByLevel(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count cards: %w", err)
	}

	reviews, err := s.reps.Totals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("review totals: %w", err)
	}

	dueCount, err := s.reps.CountDue(ctx, userID, domain.DateOf(s.now()))
	if err != nil {
		return nil, fmt.Errorf("count due: %w", err)
	}

	tests, correct, total, err := s.results.Summary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("test summary: %w", err)
	}

	recent, err := s.results.Recent(ctx, userID, recentResultsLimit)
	if err != nil {
		return nil, fmt.Errorf("recent results: %w", err)
	}

	overview := &domain.Overview{
		Cards:         cards,
		Reviews:       reviews,
		TotalTests:    tests,
		TestAccuracy:  domain.Accuracy(correct, total),
		DueCount:      dueCount,
		RecentResults: recent,
	}
	overview.Recommendations = recommendations(overview)

	return overview, nil
}

// recommendations applies the fixed advice rules to an assembled overview.
func recommendations(o *domain.Overview) []string {
	var recs []string

	if n := o.Cards.Beginner; n > 0 && n < 10 {
		recs = append(recs, "Add more beginner cards to build a base vocabulary.")
	}
	if n := o.Cards.Intermediate; n > 0 && n < 5 {
		recs = append(recs, "Add more intermediate cards to keep progressing.")
	}
	if o.Cards.Advanced == 0 {
		recs = append(recs, "Try adding advanced cards for harder material.")
	}
	if o.Reviews.TotalReviews > 0 && o.Reviews.SuccessRate() < 70 {
		recs = append(recs, "Your review success rate is low. Focus on repeating difficult cards.")
	}
	if o.Reviews.TotalReviews < 10 {
		recs = append(recs, "Review cards regularly to strengthen memorization.")
	}
	if o.TotalTests < 5 {
		recs = append(recs, "Take tests more often to check your knowledge.")
	}
	if o.TotalTests > 0 && o.TestAccuracy < 80 {
		recs = append(recs, "Review cards before testing to improve accuracy.")
	}

	return recs
}
