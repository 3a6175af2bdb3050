// Package testresult implements the assessment-result repository using PostgreSQL.
package testresult

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/linguatrack/backend/internal/adapter/postgres"
	"github.com/linguatrack/backend/internal/domain"
)

// Repo provides test-result persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new test-result repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const insertSQL = `
INSERT INTO test_results (
	id, user_id, mode, direction, score, total,
	correct_answers, wrong_answers, completed_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const recentSQL = `
SELECT id, user_id, mode, direction, score, total,
       correct_answers, wrong_answers, completed_at
FROM test_results
WHERE user_id = $1
ORDER BY completed_at DESC
LIMIT $2`

// Average accuracy is computed from stored counters with the same one-decimal
// rounding used everywhere else.
const modeStatsSQL = `
SELECT mode,
       count(*),
       COALESCE(ROUND(AVG(score * 100.0 / total)::numeric, 1), 0),
       COALESCE(MAX(score), 0)
FROM test_results
WHERE user_id = $1
GROUP BY mode`

const summarySQL = `
SELECT count(*),
       COALESCE(SUM(score), 0),
       COALESCE(SUM(total), 0)
FROM test_results
WHERE user_id = $1`

// Create inserts a completed assessment result.
func (r *Repo) Create(ctx context.Context, res domain.TestResult) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertSQL,
		res.ID, res.UserID, string(res.Mode), string(res.Direction),
		res.Score, res.Total, res.CorrectAnswers, res.WrongAnswers, res.CompletedAt,
	)
	if err != nil {
		return postgres.MapError(err, "test_result", res.ID)
	}

	return nil
}

// List returns the user's results matching the filter, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.TestResultFilter) ([]domain.TestResult, error) {
	filter = normalizeFilter(filter)

	qb := builder.
		Select("id", "user_id", "mode", "direction", "score", "total",
			"correct_answers", "wrong_answers", "completed_at").
		From("test_results").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("completed_at DESC, id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.Mode != nil {
		qb = qb.Where(sq.Eq{"mode": string(*filter.Mode)})
	}
	if filter.Since != nil {
		qb = qb.Where(sq.GtOrEq{"completed_at": *filter.Since})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list results query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list test results: %w", err)
	}
	defer rows.Close()

	results, err := scanResults(rows)
	if err != nil {
		return nil, fmt.Errorf("list test results: %w", err)
	}

	return results, nil
}

// Recent returns the user's latest results, newest first.
func (r *Repo) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TestResult, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, recentSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent test results: %w", err)
	}
	defer rows.Close()

	results, err := scanResults(rows)
	if err != nil {
		return nil, fmt.Errorf("recent test results: %w", err)
	}

	return results, nil
}

// ModeStats aggregates results per test mode. Modes the user never tried
// are absent from the slice.
func (r *Repo) ModeStats(ctx context.Context, userID uuid.UUID) ([]domain.ModeStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, modeStatsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("mode stats: %w", err)
	}
	defer rows.Close()

	var stats []domain.ModeStats
	for rows.Next() {
		var ms domain.ModeStats
		var mode string
		if err := rows.Scan(&mode, &ms.Count, &ms.AvgAccuracy, &ms.BestScore); err != nil {
			return nil, fmt.Errorf("scan mode stats: %w", err)
		}
		ms.Mode = domain.TestMode(mode)
		stats = append(stats, ms)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mode stats: %w", err)
	}

	if stats == nil {
		stats = []domain.ModeStats{}
	}

	return stats, nil
}

// Summary returns the total number of tests plus summed correct/total answer
// counts for computing overall test accuracy.
func (r *Repo) Summary(ctx context.Context, userID uuid.UUID) (tests, correct, total int, err error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if err := q.QueryRow(ctx, summarySQL, userID).Scan(&tests, &correct, &total); err != nil {
		return 0, 0, 0, fmt.Errorf("test summary: %w", err)
	}

	return tests, correct, total, nil
}

func scanResults(rows pgx.Rows) ([]domain.TestResult, error) {
	var results []domain.TestResult
	for rows.Next() {
		var res domain.TestResult
		var mode, direction string
		if err := rows.Scan(
			&res.ID, &res.UserID, &mode, &direction, &res.Score, &res.Total,
			&res.CorrectAnswers, &res.WrongAnswers, &res.CompletedAt,
		); err != nil {
			return nil, err
		}
		res.Mode = domain.TestMode(mode)
		res.Direction = domain.Direction(direction)
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if results == nil {
		results = []domain.TestResult{}
	}

	return results, nil
}
