// Package reviewlog implements the append-only review log using PostgreSQL.
package reviewlog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/adapter/postgres"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
)

const table = "review_log"

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends one review event.
func (r *Repo) Create(ctx context.Context, ev domain.ReviewEvent) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "word_id", "correct", "level_from", "level_to", "reviewed_at").
		Values(ev.ID, ev.UserID, ev.WordID, ev.Correct, ev.LevelFrom, ev.LevelTo, ev.ReviewedAt)

	if _, err := postgres.Exec(ctx, q, insert); err != nil {
		return postgres.MapError(err, "review_log", ev.ID)
	}
	return nil
}

// ListByWord returns the review events of one (user, word) pair, newest
// first, with limit/offset pagination. Returns events, total count, and error.
func (r *Repo) ListByWord(ctx context.Context, userID, wordID uuid.UUID, limit, offset int) ([]domain.ReviewEvent, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	where := sq.Eq{"user_id": userID, "word_id": wordID}

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "word", wordID)
	}

	query := postgres.Builder().
		Select("id", "user_id", "word_id", "correct", "level_from", "level_to", "reviewed_at").
		From(table).
		Where(where).
		OrderBy("reviewed_at DESC", "id DESC").
		Offset(uint64(max(offset, 0)))
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	var rows []eventRow
	if err := postgres.SelectAll(ctx, q, &rows, query); err != nil {
		return nil, 0, postgres.MapError(err, "word", wordID)
	}

	events := make([]domain.ReviewEvent, len(rows))
	for i, row := range rows {
		events[i] = domain.ReviewEvent{
			ID:         row.ID,
			UserID:     row.UserID,
			WordID:     row.WordID,
			Correct:    row.Correct,
			LevelFrom:  row.LevelFrom,
			LevelTo:    row.LevelTo,
			ReviewedAt: row.ReviewedAt.UTC(),
		}
	}
	return events, total, nil
}

// ReviewDays returns the distinct UTC calendar days on or after since on
// which the user reviewed at least one word, most recent first.
func (r *Repo) ReviewDays(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select("DISTINCT (reviewed_at AT TIME ZONE 'UTC')::date AS day").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"reviewed_at": since}).
		OrderBy("day DESC")

	var rows []struct {
		Day time.Time `db:"day"`
	}
	if err := postgres.SelectAll(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	days := make([]time.Time, len(rows))
	for i, row := range rows {
		d := row.Day
		days[i] = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	return days, nil
}

type eventRow struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	WordID     uuid.UUID `db:"word_id"`
	Correct    bool      `db:"correct"`
	LevelFrom  int       `db:"level_from"`
	LevelTo    int       `db:"level_to"`
	ReviewedAt time.Time `db:"reviewed_at"`
}
