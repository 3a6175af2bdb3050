// Package card implements the flashcard repository using PostgreSQL.
// Fixed-shape queries use raw SQL; the filtered listing is built with squirrel.
package card

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

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new card repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const cardColumns = `id, user_id, word, translation, example, note, level, created_at`

const getByIDSQL = `
SELECT ` + cardColumns + `
FROM cards
WHERE id = $1 AND user_id = $2`

const insertSQL = `
INSERT INTO cards (id, user_id, word, translation, example, note, level, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const updateSQL = `
UPDATE cards
SET word = $3, translation = $4, example = $5, note = $6, level = $7
WHERE id = $1 AND user_id = $2`

const deleteSQL = `
DELETE FROM cards WHERE id = $1 AND user_id = $2`

const countByLevelSQL = `
SELECT level, count(*) FROM cards
WHERE user_id = $1
GROUP BY level`

const listForAssessmentSQL = `
SELECT c.id, c.user_id, c.word, c.translation, c.example, c.note, c.level, c.created_at,
       COALESCE(r.total_reviews, 0) > 0 AS reviewed
FROM cards c
LEFT JOIN repetitions r ON r.card_id = c.id AND r.user_id = c.user_id
WHERE c.user_id = $1`

// GetByID returns a card by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, cardID uuid.UUID) (domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.Card
	var level string
	err := q.QueryRow(ctx, getByIDSQL, cardID, userID).Scan(
		&c.ID, &c.UserID, &c.Word, &c.Translation, &c.Example, &c.Note, &level, &c.CreatedAt,
	)
	if err != nil {
		return domain.Card{}, postgres.MapError(err, "card", cardID)
	}
	c.Level = domain.CardLevel(level)

	return c, nil
}

// List returns the user's cards matching the filter, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.CardFilter) ([]domain.Card, error) {
	filter = normalizeFilter(filter)

	qb := builder.
		Select("id", "user_id", "word", "translation", "example", "note", "level", "created_at").
		From("cards").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC, id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.Level != nil {
		qb = qb.Where(sq.Eq{"level": string(*filter.Level)})
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		qb = qb.Where(sq.Or{
			sq.ILike{"word": pattern},
			sq.ILike{"translation": pattern},
		})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	cards, err := scanCards(rows)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	return cards, nil
}

// ListForAssessment returns all of the user's cards with a reviewed flag,
// in no particular order. The caller does the sampling.
func (r *Repo) ListForAssessment(ctx context.Context, userID uuid.UUID) ([]domain.AssessmentCard, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listForAssessmentSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list cards for assessment: %w", err)
	}
	defer rows.Close()

	var cards []domain.AssessmentCard
	for rows.Next() {
		var ac domain.AssessmentCard
		var level string
		if err := rows.Scan(
			&ac.ID, &ac.UserID, &ac.Word, &ac.Translation, &ac.Example, &ac.Note,
			&level, &ac.CreatedAt, &ac.Reviewed,
		); err != nil {
			return nil, fmt.Errorf("scan assessment card: %w", err)
		}
		ac.Level = domain.CardLevel(level)
		cards = append(cards, ac)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assessment cards: %w", err)
	}

	if cards == nil {
		cards = []domain.AssessmentCard{}
	}

	return cards, nil
}

// CountByLevel returns card counts grouped by level, with the overall total.
func (r *Repo) CountByLevel(ctx context.Context, userID uuid.UUID) (domain.LevelCounts, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, countByLevelSQL, userID)
	if err != nil {
		return domain.LevelCounts{}, fmt.Errorf("count cards by level: %w", err)
	}
	defer rows.Close()

	var counts domain.LevelCounts
	for rows.Next() {
		var level string
		var n int
		if err := rows.Scan(&level, &n); err != nil {
			return domain.LevelCounts{}, fmt.Errorf("scan level count: %w", err)
		}
		switch domain.CardLevel(level) {
		case domain.CardLevelBeginner:
			counts.Beginner = n
		case domain.CardLevelIntermediate:
			counts.Intermediate = n
		case domain.CardLevelAdvanced:
			counts.Advanced = n
		}
		counts.Total += n
	}
	if err := rows.Err(); err != nil {
		return domain.LevelCounts{}, fmt.Errorf("iterate level counts: %w", err)
	}

	return counts, nil
}

// Create inserts a new card. The same word may appear on any number of a
// user's cards.
func (r *Repo) Create(ctx context.Context, c domain.Card) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, insertSQL,
		c.ID, c.UserID, c.Word, c.Translation, c.Example, c.Note, string(c.Level), c.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "card", c.ID)
	}

	return nil
}

// Update rewrites the card's editable fields.
// Returns domain.ErrNotFound if the card does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, c domain.Card) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateSQL,
		c.ID, c.UserID, c.Word, c.Translation, c.Example, c.Note, string(c.Level),
	)
	if err != nil {
		return postgres.MapError(err, "card", c.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", c.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a card by ID. The repetition ledger row goes with it via
// ON DELETE CASCADE.
// Returns domain.ErrNotFound if the card does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, cardID, userID)
	if err != nil {
		return postgres.MapError(err, "card", cardID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}

	return nil
}

func scanCards(rows pgx.Rows) ([]domain.Card, error) {
	var cards []domain.Card
	for rows.Next() {
		var c domain.Card
		var level string
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Word, &c.Translation, &c.Example, &c.Note, &level, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		c.Level = domain.CardLevel(level)
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if cards == nil {
		cards = []domain.Card{}
	}

	return cards, nil
}
