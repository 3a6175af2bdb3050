// Package repetition implements the scheduling-ledger repository using PostgreSQL.
package repetition

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linguatrack/backend/internal/adapter/postgres"
	"github.com/linguatrack/backend/internal/domain"
)

// Repo provides repetition-ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new repetition repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const repColumns = `
	id, card_id, user_id, last_reviewed, next_review, interval_days, easiness,
	repetition_count, total_reviews, successful_reviews, failed_reviews,
	last_quality, consecutive_successes, consecutive_failures, created_at, updated_at`

const getByCardIDSQL = `
SELECT` + repColumns + `
FROM repetitions
WHERE card_id = $1 AND user_id = $2`

const insertSQL = `
INSERT INTO repetitions (
	id, card_id, user_id, last_reviewed, next_review, interval_days, easiness,
	repetition_count, total_reviews, successful_reviews, failed_reviews,
	last_quality, consecutive_successes, consecutive_failures, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

const updateSQL = `
UPDATE repetitions
SET last_reviewed = $3, next_review = $4, interval_days = $5, easiness = $6,
    repetition_count = $7, total_reviews = $8, successful_reviews = $9,
    failed_reviews = $10, last_quality = $11, consecutive_successes = $12,
    consecutive_failures = $13, updated_at = $14
WHERE card_id = $1 AND user_id = $2`

const listDueSQL = `
SELECT c.id, c.user_id, c.word, c.translation, c.example, c.note, c.level, c.created_at,` + repColumnsAliased + `
FROM repetitions r
JOIN cards c ON c.id = r.card_id
WHERE r.user_id = $1 AND r.next_review <= $2
ORDER BY r.next_review ASC, c.created_at ASC
LIMIT $3`

const countDueSQL = `
SELECT count(*) FROM repetitions
WHERE user_id = $1 AND next_review <= $2`

const totalsSQL = `
SELECT COALESCE(SUM(total_reviews), 0),
       COALESCE(SUM(successful_reviews), 0),
       COALESCE(SUM(failed_reviews), 0)
FROM repetitions
WHERE user_id = $1`

// Weak cards: reviewed at least minReviews times and either the success rate
// dropped below the threshold or the card failed twice in a row.
const listWeakSQL = `
SELECT c.id, c.user_id, c.word, c.translation, c.example, c.note, c.level, c.created_at,` + repColumnsAliased + `
FROM repetitions r
JOIN cards c ON c.id = r.card_id
WHERE r.user_id = $1
  AND r.total_reviews >= $2
  AND (r.successful_reviews * 100.0 / r.total_reviews < $3 OR r.consecutive_failures >= $4)
ORDER BY r.successful_reviews * 100.0 / r.total_reviews ASC, r.consecutive_failures DESC
LIMIT $5`

const repColumnsAliased = `
	r.id, r.card_id, r.user_id, r.last_reviewed, r.next_review, r.interval_days,
	r.easiness, r.repetition_count, r.total_reviews, r.successful_reviews,
	r.failed_reviews, r.last_quality, r.consecutive_successes,
	r.consecutive_failures, r.created_at, r.updated_at`

// GetByCardID returns the ledger row for a (user, card) pair.
func (r *Repo) GetByCardID(ctx context.Context, userID, cardID uuid.UUID) (domain.Repetition, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByCardIDSQL, cardID, userID)
	rep, err := scanRepetition(row)
	if err != nil {
		return domain.Repetition{}, postgres.MapError(err, "repetition", cardID)
	}

	return rep, nil
}

// Create inserts a new ledger row.
// A duplicate (card_id, user_id) pair results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rep domain.Repetition) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertSQL,
		rep.ID, rep.CardID, rep.UserID, rep.LastReviewed, rep.NextReview,
		rep.IntervalDays, rep.Easiness, rep.RepetitionCount, rep.TotalReviews,
		rep.SuccessfulReviews, rep.FailedReviews, rep.LastQuality,
		rep.ConsecutiveSuccesses, rep.ConsecutiveFailures, rep.CreatedAt, rep.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "repetition", rep.ID)
	}

	return nil
}

// Update rewrites all scheduling fields of a ledger row. Last write wins.
// Returns domain.ErrNotFound if no row exists for the (user, card) pair.
func (r *Repo) Update(ctx context.Context, rep domain.Repetition) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateSQL,
		rep.CardID, rep.UserID, rep.LastReviewed, rep.NextReview,
		rep.IntervalDays, rep.Easiness, rep.RepetitionCount, rep.TotalReviews,
		rep.SuccessfulReviews, rep.FailedReviews, rep.LastQuality,
		rep.ConsecutiveSuccesses, rep.ConsecutiveFailures, rep.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "repetition", rep.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repetition for card %s: %w", rep.CardID, domain.ErrNotFound)
	}

	return nil
}

// ListDue returns cards due on or before the given day, most overdue first.
func (r *Repo) ListDue(ctx context.Context, userID uuid.UUID, today time.Time, limit int) ([]domain.DueCard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listDueSQL, userID, today, limit)
	if err != nil {
		return nil, fmt.Errorf("list due cards: %w", err)
	}
	defer rows.Close()

	due, err := scanDueCards(rows)
	if err != nil {
		return nil, fmt.Errorf("list due cards: %w", err)
	}

	return due, nil
}

// CountDue returns the number of cards due on or before the given day.
func (r *Repo) CountDue(ctx context.Context, userID uuid.UUID, today time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countDueSQL, userID, today).Scan(&count); err != nil {
		return 0, fmt.Errorf("count due cards: %w", err)
	}

	return count, nil
}

// Totals sums lifetime review counters over all of the user's ledger rows.
func (r *Repo) Totals(ctx context.Context, userID uuid.UUID) (domain.ReviewTotals, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.ReviewTotals
	err := q.QueryRow(ctx, totalsSQL, userID).Scan(
		&t.TotalReviews, &t.SuccessfulReviews, &t.FailedReviews,
	)
	if err != nil {
		return domain.ReviewTotals{}, fmt.Errorf("review totals: %w", err)
	}

	return t, nil
}

// ListWeak returns cards that keep failing, worst success rate first.
func (r *Repo) ListWeak(ctx context.Context, userID uuid.UUID, minReviews int, successThreshold float64, failStreak, limit int) ([]domain.WeakCard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listWeakSQL, userID, minReviews, successThreshold, failStreak, limit)
	if err != nil {
		return nil, fmt.Errorf("list weak cards: %w", err)
	}
	defer rows.Close()

	var weak []domain.WeakCard
	for rows.Next() {
		dc, err := scanDueCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan weak card: %w", err)
		}
		weak = append(weak, domain.WeakCard{Card: dc.Card, Repetition: dc.Repetition})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weak cards: %w", err)
	}

	if weak == nil {
		weak = []domain.WeakCard{}
	}

	return weak, nil
}

func scanRepetition(row pgx.Row) (domain.Repetition, error) {
	var rep domain.Repetition
	err := row.Scan(
		&rep.ID, &rep.CardID, &rep.UserID, &rep.LastReviewed, &rep.NextReview,
		&rep.IntervalDays, &rep.Easiness, &rep.RepetitionCount, &rep.TotalReviews,
		&rep.SuccessfulReviews, &rep.FailedReviews, &rep.LastQuality,
		&rep.ConsecutiveSuccesses, &rep.ConsecutiveFailures, &rep.CreatedAt, &rep.UpdatedAt,
	)
	return rep, err
}

func scanDueCard(rows pgx.Rows) (domain.DueCard, error) {
	var dc domain.DueCard
	var level string
	err := rows.Scan(
		&dc.Card.ID, &dc.Card.UserID, &dc.Card.Word, &dc.Card.Translation,
		&dc.Card.Example, &dc.Card.Note, &level, &dc.Card.CreatedAt,
		&dc.Repetition.ID, &dc.Repetition.CardID, &dc.Repetition.UserID,
		&dc.Repetition.LastReviewed, &dc.Repetition.NextReview,
		&dc.Repetition.IntervalDays, &dc.Repetition.Easiness,
		&dc.Repetition.RepetitionCount, &dc.Repetition.TotalReviews,
		&dc.Repetition.SuccessfulReviews, &dc.Repetition.FailedReviews,
		&dc.Repetition.LastQuality, &dc.Repetition.ConsecutiveSuccesses,
		&dc.Repetition.ConsecutiveFailures, &dc.Repetition.CreatedAt, &dc.Repetition.UpdatedAt,
	)
	if err != nil {
		return domain.DueCard{}, err
	}
	dc.Card.Level = domain.CardLevel(level)

	return dc, nil
}

func scanDueCards(rows pgx.Rows) ([]domain.DueCard, error) {
	var due []domain.DueCard
	for rows.Next() {
		dc, err := scanDueCard(rows)
		if err != nil {
			return nil, err
		}
		due = append(due, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if due == nil {
		due = []domain.DueCard{}
	}

	return due, nil
}
