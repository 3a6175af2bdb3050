package assessment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/linguatrack/backend/internal/domain"
	"github.com/linguatrack/backend/pkg/ctxutil"
)

// SubmitInput holds one submitted answer.
type SubmitInput struct {
	Answer string
}

// SubmitOutcome tells the learner how the answer was graded and, on the
// final question, carries the persisted summary.
type SubmitOutcome struct {
	Correct  bool
	Expected string
	Answered int
	Total    int
	Done     bool
	Result   *domain.TestResult
}

// CurrentQuestion returns the question the user's session is waiting on.
func (s *Service) CurrentQuestion(ctx context.Context) (*Question, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.store.Get(userID)
	if err != nil {
		return nil, err
	}
	if session.Done() {
		// Every question is answered; only the summary save is pending.
		return nil, domain.ErrSessionNotFound
	}

	q := session.question()
	return &q, nil
}

// SubmitAnswer grades the current question, advances the session, and on
// the last question persists a TestResult and discards the session.
func (s *Service) SubmitAnswer(ctx context.Context, input SubmitInput) (*SubmitOutcome, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var outcome SubmitOutcome
	var finished Session

	err := s.store.Mutate(userID, func(session *Session) error {
		// A fully answered session survives a failed summary save. On the
		// next submit skip grading and retry only the persist step.
		if session.Done() {
			last := session.Answers[len(session.Answers)-1]
			outcome = SubmitOutcome{
				Correct:  last.Correct,
				Expected: last.Expected,
				Answered: session.Index,
				Total:    len(session.Cards),
				Done:     true,
			}
			finished = *session
			return nil
		}

		card := session.Cards[session.Index]
		expected := card.Answer(session.Direction)
		correct := gradeAnswer(session.Mode, input.Answer, expected)

		session.Answers = append(session.Answers, AnswerRecord{
			CardID:    card.ID,
			Prompt:    card.Prompt(session.Direction),
			Submitted: input.Answer,
			Expected:  expected,
			Correct:   correct,
		})
		if correct {
			session.Correct++
		} else {
			session.Wrong++
		}
		session.Index++

		outcome = SubmitOutcome{
			Correct:  correct,
			Expected: expected,
			Answered: session.Index,
			Total:    len(session.Cards),
			Done:     session.Done(),
		}
		if session.Done() {
			finished = *session
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !outcome.Done {
		return &outcome, nil
	}

	result := domain.TestResult{
		ID:             uuid.New(),
		UserID:         userID,
		Mode:           finished.Mode,
		Direction:      finished.Direction,
		Score:          finished.Correct,
		Total:          len(finished.Cards),
		CorrectAnswers: finished.Correct,
		WrongAnswers:   finished.Wrong,
		CompletedAt:    s.now().UTC(),
	}
	if err := s.results.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("save test result: %w", err)
	}
	s.store.Delete(userID)

	s.log.InfoContext(ctx, "assessment completed",
		"mode", string(result.Mode),
		"score", result.Score,
		"total", result.Total,
	)

	outcome.Result = &result
	return &outcome, nil
}

// Cancel discards the user's session without a summary. Cancelling when no
// session exists is a no-op.
func (s *Service) Cancel(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	s.store.Delete(userID)
	return nil
}

// gradeAnswer compares a submitted answer against the expected one.
// Typing forgives case and surrounding whitespace; choice modes compare
// the picked option exactly.
func gradeAnswer(mode domain.TestMode, submitted, expected string) bool {
	if mode == domain.TestModeTyping {
		return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(expected))
	}
	return submitted == expected
}
