package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// RecountWordsLearned recomputes words_learned for every user from their
// progress records and returns the number of users processed. Each user
// is recounted in its own transaction under the user row lock.
func (s *Service) RecountWordsLearned(ctx context.Context) (int, error) {
	ids, err := s.users.ListIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}

	for i, id := range ids {
		if err := s.recountUser(ctx, id); err != nil {
			return i, fmt.Errorf("recount user %s: %w", id, err)
		}
	}

	s.log.InfoContext(ctx, "words learned recounted", slog.Int("users", len(ids)))
	return len(ids), nil
}

func (s *Service) recountUser(ctx context.Context, userID uuid.UUID) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.users.GetByIDForUpdate(txCtx, userID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		learned, err := s.progress.CountLearned(txCtx, userID)
		if err != nil {
			return fmt.Errorf("count learned: %w", err)
		}
		if err := s.users.SetWordsLearned(txCtx, userID, learned); err != nil {
			return fmt.Errorf("set words learned: %w", err)
		}
		return nil
	})
}
