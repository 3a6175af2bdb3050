package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linguatrack/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with generated credentials. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "testuser-" + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$seedhashseedhashseedhashse",
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCard creates a flashcard for the user with a unique word.
// Does NOT create a repetition entry.
func SeedCard(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, level domain.CardLevel) domain.Card {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.Card{
		ID:          uuid.New(),
		UserID:      userID,
		Word:        "word-" + suffix,
		Translation: "translation-" + suffix,
		Example:     "Example with word-" + suffix + ".",
		Level:       level,
		CreatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO cards (id, user_id, word, translation, example, note, level, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		card.ID, card.UserID, card.Word, card.Translation, card.Example, card.Note, string(card.Level), card.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard insert card: %v", err)
	}

	return card
}

// SeedCardWithRepetition creates a card plus its scheduling ledger in the
// initial state (due immediately).
func SeedCardWithRepetition(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, level domain.CardLevel) (domain.Card, domain.Repetition) {
	t.Helper()

	card := SeedCard(t, pool, userID, level)
	rep := domain.NewRepetition(userID, card.ID, card.CreatedAt)
	rep.CreatedAt = card.CreatedAt
	rep.UpdatedAt = card.CreatedAt
	InsertRepetition(t, pool, rep)

	return card, rep
}

// InsertRepetition writes a repetition row as-is. Useful for tests that need
// a ledger in a specific state (reviewed, overdue, weak).
func InsertRepetition(t *testing.T, pool *pgxpool.Pool, rep domain.Repetition) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO repetitions (
			id, card_id, user_id, last_reviewed, next_review, interval_days, easiness,
			repetition_count, total_reviews, successful_reviews, failed_reviews,
			last_quality, consecutive_successes, consecutive_failures, created_at, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		rep.ID, rep.CardID, rep.UserID, rep.LastReviewed, rep.NextReview, rep.IntervalDays, rep.Easiness,
		rep.RepetitionCount, rep.TotalReviews, rep.SuccessfulReviews, rep.FailedReviews,
		rep.LastQuality, rep.ConsecutiveSuccesses, rep.ConsecutiveFailures, rep.CreatedAt, rep.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: InsertRepetition: %v", err)
	}
}

// SeedTestResult creates a completed assessment result for the user.
func SeedTestResult(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, mode domain.TestMode, score, total int) domain.TestResult {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	res := domain.TestResult{
		ID:             uuid.New(),
		UserID:         userID,
		Mode:           mode,
		Direction:      domain.DirectionSourceToTarget,
		Score:          score,
		Total:          total,
		CorrectAnswers: score,
		WrongAnswers:   total - score,
		CompletedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO test_results (
			id, user_id, mode, direction, score, total,
			correct_answers, wrong_answers, completed_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		res.ID, res.UserID, string(res.Mode), string(res.Direction), res.Score, res.Total,
		res.CorrectAnswers, res.WrongAnswers, res.CompletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTestResult: %v", err)
	}

	return res
}
