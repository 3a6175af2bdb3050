package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssessmentCard pairs a card with a flag telling whether it has ever been
// reviewed. The question sampler prefers seasoned cards over fresh ones.
type AssessmentCard struct {
	Card
	Reviewed bool
}

// TestResult is the immutable summary of one completed assessment run.
type TestResult struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Mode           TestMode
	Direction      Direction
	Score          int
	Total          int
	CorrectAnswers int
	WrongAnswers   int
	CompletedAt    time.Time
}

// Accuracy returns the percentage of correct answers.
func (r *TestResult) Accuracy() float64 {
	return Accuracy(r.Score, r.Total)
}

// ResultLevel buckets the accuracy into a coarse verdict for display.
func (r *TestResult) ResultLevel() string {
	switch acc := r.Accuracy(); {
	case acc >= 90:
		return "excellent"
	case acc >= 75:
		return "good"
	case acc >= 60:
		return "satisfactory"
	default:
		return "poor"
	}
}
