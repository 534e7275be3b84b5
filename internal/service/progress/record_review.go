package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
	"github.com/mctelektrik41-blip/sozluk-backend/pkg/ctxutil"
)

// RecordReview applies one review outcome to the user's record for a word
// and refreshes the user's learned-word counter. The word must exist; a
// missing word fails with domain.ErrNotFound before anything is written.
func (s *Service) RecordReview(ctx context.Context, input RecordReviewInput) (ReviewResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ReviewResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return ReviewResult{}, err
	}

	word, err := s.catalog.GetWord(ctx, input.WordID)
	if err != nil {
		return ReviewResult{}, fmt.Errorf("get word: %w", err)
	}

	now := s.clock()
	var result ReviewResult

	// The user row lock serializes all reviews of this user, so the
	// recount below always sees every committed transition.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.users.GetByIDForUpdate(txCtx, userID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		rec, created, err := s.progress.GetOrCreateForUpdate(txCtx, userID, word.ID, word.CategoryID, now)
		if err != nil {
			return fmt.Errorf("get progress: %w", err)
		}

		prevLevel := clampLevel(rec.Level)
		updated := Apply(rec, input.Correct, now)

		if err := s.progress.Update(txCtx, updated); err != nil {
			return fmt.Errorf("update progress: %w", err)
		}

		if err := s.reviews.Create(txCtx, domain.ReviewEvent{
			ID:         uuid.New(),
			UserID:     userID,
			WordID:     word.ID,
			Correct:    input.Correct,
			LevelFrom:  prevLevel,
			LevelTo:    updated.Level,
			ReviewedAt: now,
		}); err != nil {
			return fmt.Errorf("create review log: %w", err)
		}

		learned, err := s.progress.CountLearned(txCtx, userID)
		if err != nil {
			return fmt.Errorf("count learned: %w", err)
		}
		if err := s.users.SetWordsLearned(txCtx, userID, learned); err != nil {
			return fmt.Errorf("set words learned: %w", err)
		}

		result = ReviewResult{
			Record:        updated,
			Word:          word,
			PreviousLevel: prevLevel,
			WordsLearned:  learned,
			Created:       created,
		}
		return nil
	})
	if err != nil {
		return ReviewResult{}, err
	}

	if s.metrics != nil {
		s.metrics.ReviewRecorded(input.Correct, result.PreviousLevel, result.Record.Level, domain.MaxLevel)
	}

	s.log.InfoContext(ctx, "review recorded",
		slog.String("user_id", userID.String()),
		slog.String("word_id", word.ID.String()),
		slog.Bool("correct", input.Correct),
		slog.Int("level_from", result.PreviousLevel),
		slog.Int("level_to", result.Record.Level),
		slog.Bool("learned", result.Record.Learned),
		slog.Int("words_learned", result.WordsLearned),
	)

	return result, nil
}
