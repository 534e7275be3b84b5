package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
	"github.com/mctelektrik41-blip/sozluk-backend/pkg/ctxutil"
)

// LearnedWords returns the user's learned words with the time each was
// mastered. Records whose word no longer exists are skipped.
func (s *Service) LearnedWords(ctx context.Context) ([]domain.LearnedWord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.progress.ListLearned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list learned: %w", err)
	}

	words, err := s.catalog.GetWords(ctx, wordIDs(records))
	if err != nil {
		return nil, fmt.Errorf("get words: %w", err)
	}

	learned := make([]domain.LearnedWord, 0, len(records))
	for _, rec := range records {
		word, ok := words[rec.WordID]
		if !ok {
			continue
		}
		learned = append(learned, domain.LearnedWord{
			Word:       word,
			MasteredAt: masteredAt(rec),
		})
	}
	return learned, nil
}

// masteredAt falls back to updated_at for rows that predate learned_at.
func masteredAt(rec domain.ProgressRecord) time.Time {
	if rec.LearnedAt != nil {
		return *rec.LearnedAt
	}
	return rec.UpdatedAt
}
