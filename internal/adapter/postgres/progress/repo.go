// Package progress implements the user progress repository using PostgreSQL.
// Queries are built with squirrel and scanned with scany.
package progress

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/adapter/postgres"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
)

const table = "user_progress"

var columns = []string{
	"id", "user_id", "word_id", "category_id", "level", "correct_count", "incorrect_count",
	"learned", "learned_at", "last_reviewed", "next_review", "created_at", "updated_at",
}

// Repo provides progress persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new progress repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Locking write path (must run inside TxManager.RunInTx)
// ---------------------------------------------------------------------------

// GetOrCreateForUpdate returns the (user, word) record locked FOR UPDATE,
// inserting a zero-state row first if none exists. created reports whether
// the row was inserted by this call.
func (r *Repo) GetOrCreateForUpdate(ctx context.Context, userID, wordID, categoryID uuid.UUID, now time.Time) (domain.ProgressRecord, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	insert := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "word_id", "category_id", "created_at", "updated_at").
		Values(uuid.New(), userID, wordID, nullableID(categoryID), now, now).
		Suffix("ON CONFLICT (user_id, word_id) DO NOTHING")

	affected, err := postgres.Exec(ctx, q, insert)
	if err != nil {
		return domain.ProgressRecord{}, false, postgres.MapError(err, "progress", wordID)
	}

	var row progressRow
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "word_id": wordID}).
		Suffix("FOR UPDATE")

	if err := postgres.SelectOne(ctx, q, &row, query); err != nil {
		return domain.ProgressRecord{}, false, postgres.MapError(err, "progress", wordID)
	}

	return row.toDomain(), affected == 1, nil
}

// Update writes the mutable fields of rec back to its row.
func (r *Repo) Update(ctx context.Context, rec domain.ProgressRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := postgres.Builder().
		Update(table).
		Set("level", rec.Level).
		Set("correct_count", rec.CorrectCount).
		Set("incorrect_count", rec.IncorrectCount).
		Set("learned", rec.Learned).
		Set("learned_at", rec.LearnedAt).
		Set("last_reviewed", rec.LastReviewed).
		Set("next_review", rec.NextReview).
		Set("updated_at", rec.UpdatedAt).
		Where(sq.Eq{"id": rec.ID})

	affected, err := postgres.Exec(ctx, q, update)
	if err != nil {
		return postgres.MapError(err, "progress", rec.WordID)
	}
	if affected == 0 {
		return postgres.MapError(fmt.Errorf("update progress: %w", domain.ErrNotFound), "progress", rec.WordID)
	}
	return nil
}

// CountLearned returns the number of learned records of a user.
func (r *Repo) CountLearned(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"user_id": userID, "learned": true})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "progress", userID)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListDue returns records with learned = false and next_review <= asOf,
// soonest first.
func (r *Repo) ListDue(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]domain.ProgressRecord, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "learned": false}).
		Where(sq.LtOrEq{"next_review": asOf}).
		OrderBy("next_review ASC", "id ASC")

	return r.list(ctx, userID, query)
}

// ListLearned returns learned records, most recently mastered first.
func (r *Repo) ListLearned(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "learned": true}).
		OrderBy("COALESCE(learned_at, updated_at) DESC", "id ASC")

	return r.list(ctx, userID, query)
}

// ListByUser returns every record of a user, most recently reviewed first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("last_reviewed DESC NULLS LAST", "id ASC")

	return r.list(ctx, userID, query)
}

// ListRecent returns the limit most recently reviewed records.
func (r *Repo) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ProgressRecord, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.NotEq{"last_reviewed": nil}).
		OrderBy("last_reviewed DESC", "id ASC").
		Limit(uint64(limit))

	return r.list(ctx, userID, query)
}

// Summarize aggregates counts and answer sums across all records of a user.
// A user without records gets a zero Summary.
func (r *Repo) Summarize(ctx context.Context, userID uuid.UUID) (domain.ProgressSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(
			"count(*) AS total",
			"count(*) FILTER (WHERE learned) AS learned",
			"COALESCE(sum(correct_count), 0) AS correct_sum",
			"COALESCE(sum(incorrect_count), 0) AS incorrect_sum",
		).
		From(table).
		Where(sq.Eq{"user_id": userID})

	var s summaryRow
	if err := postgres.SelectOne(ctx, q, &s, query); err != nil {
		return domain.ProgressSummary{}, postgres.MapError(err, "progress", userID)
	}
	return domain.ProgressSummary{
		Total:        s.Total,
		Learned:      s.Learned,
		CorrectSum:   s.CorrectSum,
		IncorrectSum: s.IncorrectSum,
	}, nil
}

// CountByCategory groups a user's records by their denormalized category.
// Records without a category are not reported.
func (r *Repo) CountByCategory(ctx context.Context, userID uuid.UUID) ([]domain.CategoryCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select(
			"category_id",
			"count(*) AS total",
			"count(*) FILTER (WHERE learned) AS learned",
		).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.NotEq{"category_id": nil}).
		GroupBy("category_id").
		OrderBy("category_id")

	var rows []categoryCountRow
	if err := postgres.SelectAll(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "progress", userID)
	}

	out := make([]domain.CategoryCount, len(rows))
	for i, row := range rows {
		out[i] = domain.CategoryCount{CategoryID: row.CategoryID, Total: row.Total, Learned: row.Learned}
	}
	return out, nil
}

func (r *Repo) list(ctx context.Context, userID uuid.UUID, query sq.SelectBuilder) ([]domain.ProgressRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []progressRow
	if err := postgres.SelectAll(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "progress", userID)
	}

	out := make([]domain.ProgressRecord, len(rows))
	for i := range rows {
		out[i] = rows[i].toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type summaryRow struct {
	Total        int `db:"total"`
	Learned      int `db:"learned"`
	CorrectSum   int `db:"correct_sum"`
	IncorrectSum int `db:"incorrect_sum"`
}

type categoryCountRow struct {
	CategoryID uuid.UUID `db:"category_id"`
	Total      int       `db:"total"`
	Learned    int       `db:"learned"`
}

type progressRow struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	WordID         uuid.UUID  `db:"word_id"`
	CategoryID     *uuid.UUID `db:"category_id"`
	Level          int        `db:"level"`
	CorrectCount   int        `db:"correct_count"`
	IncorrectCount int        `db:"incorrect_count"`
	Learned        bool       `db:"learned"`
	LearnedAt      *time.Time `db:"learned_at"`
	LastReviewed   *time.Time `db:"last_reviewed"`
	NextReview     *time.Time `db:"next_review"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (r progressRow) toDomain() domain.ProgressRecord {
	rec := domain.ProgressRecord{
		ID:             r.ID,
		UserID:         r.UserID,
		WordID:         r.WordID,
		Level:          r.Level,
		CorrectCount:   r.CorrectCount,
		IncorrectCount: r.IncorrectCount,
		Learned:        r.Learned,
		LearnedAt:      utcPtr(r.LearnedAt),
		LastReviewed:   utcPtr(r.LastReviewed),
		NextReview:     utcPtr(r.NextReview),
		CreatedAt:      r.CreatedAt.UTC(),
		UpdatedAt:      r.UpdatedAt.UTC(),
	}
	if r.CategoryID != nil {
		rec.CategoryID = *r.CategoryID
	}
	return rec
}

func nullableID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
