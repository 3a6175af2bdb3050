// Package sm2 implements the SM-2 spaced-repetition scheduling update.
//
// The update is a pure in-memory transform: no I/O, no clock reads. The
// caller supplies the current ledger state, the review quality and "now";
// the same inputs always produce the same output.
package sm2

import (
	"time"

	"github.com/linguatrack/backend/internal/domain"
)

// Interval progression for the first two successful reviews, in days.
const (
	firstInterval  = 1
	secondInterval = 6
)

// Advance applies a single review outcome to a repetition entry and
// returns the new state. quality outside [0,5] is rejected with a
// validation error and leaves the input untouched.
//
// The update is deliberately stateful, not idempotent: applying the same
// quality twice advances the schedule twice. Easiness is adjusted on
// every call, including failures, so repeated failures keep pushing the
// factor toward its 1.3 floor while the interval resets to one day.
func Advance(rep domain.Repetition, quality domain.Quality, now time.Time) (domain.Repetition, error) {
	if !quality.IsValid() {
		return rep, domain.NewValidationError("quality", "must be between 0 and 5")
	}

	// Lifetime counters and streaks.
	rep.TotalReviews++
	rep.LastQuality = int(quality)
	if quality.IsSuccess() {
		rep.SuccessfulReviews++
		rep.ConsecutiveSuccesses++
		rep.ConsecutiveFailures = 0
	} else {
		rep.FailedReviews++
		rep.ConsecutiveFailures++
		rep.ConsecutiveSuccesses = 0
	}

	// Interval. A failure forgets all progress; successes walk the
	// 1, 6, interval*easiness ladder.
	if !quality.IsSuccess() {
		rep.IntervalDays = firstInterval
		rep.RepetitionCount = 0
	} else {
		switch rep.RepetitionCount {
		case 0:
			rep.IntervalDays = firstInterval
		case 1:
			rep.IntervalDays = secondInterval
		default:
			rep.IntervalDays = int(float64(rep.IntervalDays) * rep.Easiness)
		}
		rep.RepetitionCount++
	}

	// Easiness factor, floored at 1.3. Applied unconditionally.
	q := float64(quality)
	ef := rep.Easiness + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ef < domain.MinEasiness {
		ef = domain.MinEasiness
	}
	rep.Easiness = ef

	// Dates are whole calendar days.
	today := domain.DateOf(now)
	rep.LastReviewed = &today
	rep.NextReview = today.AddDate(0, 0, rep.IntervalDays)

	return rep, nil
}
