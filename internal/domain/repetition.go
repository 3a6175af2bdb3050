package domain

import (
	"time"

	"github.com/google/uuid"
)

// Defaults for a freshly created repetition entry.
const (
	InitialIntervalDays = 1
	InitialEasiness     = 2.5
	MinEasiness         = 1.3
)

// Repetition is the scheduling ledger for one (user, card) pair. Exactly
// one entry exists per pair from the moment the card is created; all
// scheduling fields are mutated only by the SM-2 update.
type Repetition struct {
	ID           uuid.UUID
	CardID       uuid.UUID
	UserID       uuid.UUID
	LastReviewed *time.Time
	NextReview   time.Time
	IntervalDays int
	Easiness     float64
	// RepetitionCount is the current success streak driving interval
	// growth; it resets to zero on any failed review.
	RepetitionCount int

	// Lifetime counters.
	TotalReviews         int
	SuccessfulReviews    int
	FailedReviews        int
	LastQuality          int
	ConsecutiveSuccesses int
	ConsecutiveFailures  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRepetition returns the initial ledger state for a card created at
// the given time: due immediately, interval 1 day, easiness 2.5, all
// counters zero.
func NewRepetition(userID, cardID uuid.UUID, createdAt time.Time) Repetition {
	return Repetition{
		ID:           uuid.New(),
		CardID:       cardID,
		UserID:       userID,
		NextReview:   DateOf(createdAt),
		IntervalDays: InitialIntervalDays,
		Easiness:     InitialEasiness,
	}
}

// IsDue reports whether the card needs review on the given day.
func (r *Repetition) IsDue(today time.Time) bool {
	return !r.NextReview.After(DateOf(today))
}

// SuccessRate returns the percentage of successful reviews, 0 when the
// card has never been reviewed.
func (r *Repetition) SuccessRate() float64 {
	return Accuracy(r.SuccessfulReviews, r.TotalReviews)
}

// DueCard pairs a card that needs review with its ledger.
type DueCard struct {
	Card       Card
	Repetition Repetition
}

// DateOf truncates a timestamp to its calendar date in UTC. Scheduling
// works in whole days; all due-date comparisons go through this.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
