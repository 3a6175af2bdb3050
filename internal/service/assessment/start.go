package assessment

import (
	"context"
	"fmt"

	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/pkg/ctxutil"
)

// StartInput holds the parameters for starting an assessment session.
type StartInput struct {
	Mode      domain.TestMode
	Direction domain.Direction
}

// Validate checks all fields and collects all errors.
func (i *StartInput) Validate() error {
	var errs []domain.FieldError

	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be multiple_choice, typing, or matching"})
	}
	if i.Direction == "" {
		i.Direction = domain.DirectionSourceToTarget
	} else if !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be source_to_target or target_to_source"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Start creates a fresh session for the current user and returns its first
// question. An already running session is silently replaced.
func (s *Service) Start(ctx context.Context, input StartInput) (*Question, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	all, err := s.cards.ListForAssessment(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	if len(all) < input.Mode.MinCards() {
		return nil, fmt.Errorf("%s needs at least %d cards, have %d: %w",
			input.Mode, input.Mode.MinCards(), len(all), domain.ErrInsufficientCards)
	}

	sampled := s.sample(all)
	session := &Session{
		UserID:    userID,
		Mode:      input.Mode,
		Direction: input.Direction,
		Cards:     sampled,
		StartedAt: s.now(),
	}
	if input.Mode != domain.TestModeTyping {
		session.Options = s.buildOptions(sampled, all, input.Direction)
	}

	s.store.Replace(userID, session)

	s.log.InfoContext(ctx, "assessment started",
		"mode", string(input.Mode),
		"direction", string(input.Direction),
		"questions", len(sampled),
	)

	q := session.question()
	return &q, nil
}

// sample picks up to QuestionCount cards, preferring cards that already
// have at least one recorded review when enough of them exist.
func (s *Service) sample(all []domain.AssessmentCard) []domain.Card {
	n := s.cfg.QuestionCount

	var seasoned []domain.AssessmentCard
	for _, ac := range all {
		if ac.Reviewed {
			seasoned = append(seasoned, ac)
		}
	}

	pool := all
	if len(seasoned) >= n {
		pool = seasoned
	}

	pool = append([]domain.AssessmentCard(nil), pool...)
	shuffleSlice(s, pool)
	if len(pool) > n {
		pool = pool[:n]
	}

	cards := make([]domain.Card, len(pool))
	for i, ac := range pool {
		cards[i] = ac.Card
	}
	return cards
}

// buildOptions generates the fixed option set for every choice question:
// the correct value plus up to MaxDistractors distinct values drawn from
// the user's other cards, shuffled together.
func (s *Service) buildOptions(sampled []domain.Card, all []domain.AssessmentCard, dir domain.Direction) [][]string {
	options := make([][]string, len(sampled))

	for i, card := range sampled {
		correct := card.Answer(dir)

		seen := map[string]struct{}{correct: {}}
		var pool []string
		for _, ac := range all {
			if ac.ID == card.ID {
				continue
			}
			v := ac.Answer(dir)
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			pool = append(pool, v)
		}

		shuffleSlice(s, pool)
		if len(pool) > s.cfg.MaxDistractors {
			pool = pool[:s.cfg.MaxDistractors]
		}

		opts := append(pool, correct)
		shuffleSlice(s, opts)
		options[i] = opts
	}

	return options
}
