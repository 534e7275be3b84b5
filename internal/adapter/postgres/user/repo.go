// Package user implements the user repository using PostgreSQL. Only the
// fields the progress core reads or writes are mapped.
package user

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/adapter/postgres"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
)

var columns = []string{
	"id", "email", "name", "role", "subscription", "words_learned", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.get(ctx, id, postgres.Builder().Select(columns...).From("users").Where(sq.Eq{"id": id}))
}

// GetByIDForUpdate returns a user and locks its row until the surrounding
// transaction ends. Reviews of one user serialize on this lock.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.get(ctx, id, postgres.Builder().Select(columns...).From("users").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"))
}

// SetWordsLearned overwrites the denormalized learned-word counter.
func (r *Repo) SetWordsLearned(ctx context.Context, id uuid.UUID, count int) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update := postgres.Builder().
		Update("users").
		Set("words_learned", count).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	affected, err := postgres.Exec(ctx, q, update)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if affected == 0 {
		return postgres.MapError(domain.ErrNotFound, "user", id)
	}
	return nil
}

// ListIDs returns the IDs of all users, oldest first.
func (r *Repo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var ids []uuid.UUID
	query := postgres.Builder().Select("id").From("users").OrderBy("created_at", "id")
	if err := postgres.SelectAll(ctx, q, &ids, query); err != nil {
		return nil, postgres.MapError(err, "users", uuid.Nil)
	}
	return ids, nil
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, query sq.SelectBuilder) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row userRow
	if err := postgres.SelectOne(ctx, q, &row, query); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &domain.User{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		Role:         domain.UserRole(row.Role),
		Subscription: row.Subscription,
		WordsLearned: row.WordsLearned,
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}, nil
}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	Role         string    `db:"role"`
	Subscription string    `db:"subscription"`
	WordsLearned int       `db:"words_learned"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
