// Package vocab implements read access to words and categories using PostgreSQL.
package vocab

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/adapter/postgres"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
)

// Repo provides word and category lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vocabulary repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetWordsByIDs returns the words whose IDs are in ids. Missing IDs are
// absent from the result; order is unspecified.
func (r *Repo) GetWordsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Word, error) {
	if len(ids) == 0 {
		return []domain.Word{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select("id", "category_id", "turkish", "russian", "pronunciation",
			"example_tr", "example_ru", "image_url", "level", "created_at").
		From("words").
		Where(sq.Expr("id = ANY(?::uuid[])", ids))

	var rows []wordRow
	if err := postgres.SelectAll(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "words", ids[0])
	}

	words := make([]domain.Word, len(rows))
	for i, row := range rows {
		words[i] = row.toDomain()
	}
	return words, nil
}

// GetCategoriesByIDs returns the categories whose IDs are in ids. Missing
// IDs are absent from the result; order is unspecified.
func (r *Repo) GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error) {
	if len(ids) == 0 {
		return []domain.Category{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	query := postgres.Builder().
		Select("id", "name_tr", "name_ru", "icon", "level", "color", "created_at").
		From("categories").
		Where(sq.Expr("id = ANY(?::uuid[])", ids))

	var rows []categoryRow
	if err := postgres.SelectAll(ctx, q, &rows, query); err != nil {
		return nil, postgres.MapError(err, "categories", ids[0])
	}

	cats := make([]domain.Category, len(rows))
	for i, row := range rows {
		cats[i] = domain.Category{
			ID:        row.ID,
			NameTR:    row.NameTR,
			NameRU:    row.NameRU,
			Icon:      row.Icon,
			Level:     row.Level,
			Color:     row.Color,
			CreatedAt: row.CreatedAt.UTC(),
		}
	}
	return cats, nil
}

type wordRow struct {
	ID            uuid.UUID  `db:"id"`
	CategoryID    *uuid.UUID `db:"category_id"`
	Turkish       string     `db:"turkish"`
	Russian       string     `db:"russian"`
	Pronunciation string     `db:"pronunciation"`
	ExampleTR     string     `db:"example_tr"`
	ExampleRU     string     `db:"example_ru"`
	ImageURL      string     `db:"image_url"`
	Level         string     `db:"level"`
	CreatedAt     time.Time  `db:"created_at"`
}

func (r wordRow) toDomain() domain.Word {
	w := domain.Word{
		ID:            r.ID,
		Turkish:       r.Turkish,
		Russian:       r.Russian,
		Pronunciation: r.Pronunciation,
		ExampleTR:     r.ExampleTR,
		ExampleRU:     r.ExampleRU,
		ImageURL:      r.ImageURL,
		Level:         r.Level,
		CreatedAt:     r.CreatedAt.UTC(),
	}
	if r.CategoryID != nil {
		w.CategoryID = *r.CategoryID
	}
	return w
}

type categoryRow struct {
	ID        uuid.UUID `db:"id"`
	NameTR    string    `db:"name_tr"`
	NameRU    string    `db:"name_ru"`
	Icon      string    `db:"icon"`
	Level     string    `db:"level"`
	Color     string    `db:"color"`
	CreatedAt time.Time `db:"created_at"`
}
