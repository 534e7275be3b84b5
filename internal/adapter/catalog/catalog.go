// Package catalog resolves words and categories for the progress service.
// Lookups issued concurrently by different requests are coalesced by
// batched loaders into a single "= ANY($1)" query per table. Loaders keep
// no result cache, so content edits are visible to the next lookup.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/adapter/postgres"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
)

const (
	maxBatch     = 100
	wait         = 2 * time.Millisecond
	batchTimeout = 5 * time.Second
)

type vocabRepo interface {
	GetWordsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Word, error)
	GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error)
}

// Catalog is the item and category lookup collaborator. Safe for concurrent use.
type Catalog struct {
	repo       vocabRepo
	words      *dataloader.Loader[uuid.UUID, *domain.Word]
	categories *dataloader.Loader[uuid.UUID, *domain.Category]
}

// New creates a Catalog over the vocabulary repository.
func New(repo vocabRepo) *Catalog {
	return &Catalog{
		repo:       repo,
		words:      newLoader(newWordsBatchFn(repo)),
		categories: newLoader(newCategoriesBatchFn(repo)),
	}
}

// GetWord returns one word, or domain.ErrNotFound.
func (c *Catalog) GetWord(ctx context.Context, id uuid.UUID) (domain.Word, error) {
	words, err := c.GetWords(ctx, []uuid.UUID{id})
	if err != nil {
		return domain.Word{}, err
	}
	w, ok := words[id]
	if !ok {
		return domain.Word{}, fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return w, nil
}

// GetWords returns the words that exist among ids, keyed by ID.
// Missing IDs are omitted, not reported as errors.
func (c *Catalog) GetWords(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Word, error) {
	if postgres.InTx(ctx) {
		// A batch runs on the first caller's context; never let another
		// request's lookup join this transaction.
		words, err := c.repo.GetWordsByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		out := make(map[uuid.UUID]domain.Word, len(words))
		for _, w := range words {
			out[w.ID] = w
		}
		return out, nil
	}
	return loadMany(ctx, c.words, ids)
}

// GetCategory returns one category, or domain.ErrNotFound.
func (c *Catalog) GetCategory(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	cats, err := c.GetCategories(ctx, []uuid.UUID{id})
	if err != nil {
		return domain.Category{}, err
	}
	cat, ok := cats[id]
	if !ok {
		return domain.Category{}, fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return cat, nil
}

// GetCategories returns the categories that exist among ids, keyed by ID.
func (c *Catalog) GetCategories(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Category, error) {
	if postgres.InTx(ctx) {
		cats, err := c.repo.GetCategoriesByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		out := make(map[uuid.UUID]domain.Category, len(cats))
		for _, cat := range cats {
			out[cat.ID] = cat
		}
		return out, nil
	}
	return loadMany(ctx, c.categories, ids)
}

func loadMany[V any](ctx context.Context, l *dataloader.Loader[uuid.UUID, *V], ids []uuid.UUID) (map[uuid.UUID]V, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]V{}, nil
	}

	values, errs := l.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make(map[uuid.UUID]V, len(values))
	for i, v := range values {
		if v != nil {
			out[ids[i]] = *v
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Batch functions
// ---------------------------------------------------------------------------

func newWordsBatchFn(repo vocabRepo) dataloader.BatchFunc[uuid.UUID, *domain.Word] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Word] {
		ctx, cancel := detach(ctx)
		defer cancel()

		words, err := repo.GetWordsByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Word](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Word, len(words))
		for i := range words {
			byID[words[i].ID] = &words[i]
		}
		return mapResults(keys, byID)
	}
}

func newCategoriesBatchFn(repo vocabRepo) dataloader.BatchFunc[uuid.UUID, *domain.Category] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Category] {
		ctx, cancel := detach(ctx)
		defer cancel()

		cats, err := repo.GetCategoriesByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Category](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Category, len(cats))
		for i := range cats {
			byID[cats[i].ID] = &cats[i]
		}
		return mapResults(keys, byID)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// newLoader creates a dataloader.Loader with standard batch parameters and
// no result cache.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
		dataloader.WithCache[uuid.UUID, V](&dataloader.NoCache[uuid.UUID, V]{}),
	)
}

// detach keeps the batch alive when the request that happened to open it is
// cancelled while other requests still wait on the result.
func detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), batchTimeout)
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps found values back to key order; missing keys get nil.
func mapResults[V any](keys []uuid.UUID, byID map[uuid.UUID]*V) []*dataloader.Result[*V] {
	results := make([]*dataloader.Result[*V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[*V]{Data: byID[key]}
	}
	return results
}
