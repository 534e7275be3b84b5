package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
	"github.com/mctelektrik41-blip/sozluk-backend/pkg/ctxutil"
)

// DueForReview returns the user's unlearned words whose next review is at
// or before input.AsOf, soonest first. Records whose word no longer exists
// are skipped.
func (s *Service) DueForReview(ctx context.Context, input DueInput) ([]domain.DueWord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = s.clock()
	}

	records, err := s.progress.ListDue(ctx, userID, asOf.UTC())
	if err != nil {
		return nil, fmt.Errorf("list due: %w", err)
	}

	words, err := s.catalog.GetWords(ctx, wordIDs(records))
	if err != nil {
		return nil, fmt.Errorf("get words: %w", err)
	}

	due := make([]domain.DueWord, 0, len(records))
	for _, rec := range records {
		word, ok := words[rec.WordID]
		if !ok {
			continue
		}
		due = append(due, domain.DueWord{
			Word:          word,
			ProgressLevel: rec.Level,
			LastReviewed:  rec.LastReviewed,
			NextReview:    rec.NextReview,
		})
	}
	return due, nil
}

func wordIDs(records []domain.ProgressRecord) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.WordID)
	}
	return ids
}
