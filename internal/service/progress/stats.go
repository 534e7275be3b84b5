package progress

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
	"github.com/mctelektrik41-blip/sozluk-backend/pkg/ctxutil"
)

// streakLookbackDays bounds how far back review days are loaded.
const streakLookbackDays = 366

// Stats aggregates the user's progress: totals, accuracy, per-category
// breakdown, most recent activity and the daily review streak. A user
// without records gets zero values and empty lists.
func (s *Service) Stats(ctx context.Context) (domain.ProgressStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ProgressStats{}, domain.ErrUnauthorized
	}

	now := s.clock()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var (
		summary    domain.ProgressSummary
		counts     []domain.CategoryCount
		recent     []domain.ProgressRecord
		reviewDays []time.Time
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		summary, err = s.progress.Summarize(gctx, userID)
		if err != nil {
			return fmt.Errorf("summarize: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		counts, err = s.progress.CountByCategory(gctx, userID)
		if err != nil {
			return fmt.Errorf("count by category: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		recent, err = s.progress.ListRecent(gctx, userID, s.recentLimit())
		if err != nil {
			return fmt.Errorf("list recent: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		reviewDays, err = s.reviews.ReviewDays(gctx, userID, today.AddDate(0, 0, -streakLookbackDays))
		if err != nil {
			return fmt.Errorf("review days: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.ProgressStats{}, err
	}

	// Second stage: resolve display names for categories and recent words.
	var (
		categories map[uuid.UUID]domain.Category
		words      map[uuid.UUID]domain.Word
	)

	g2, gctx2 := errgroup.WithContext(ctx)

	g2.Go(func() error {
		ids := make([]uuid.UUID, 0, len(counts))
		for _, c := range counts {
			ids = append(ids, c.CategoryID)
		}
		var err error
		categories, err = s.catalog.GetCategories(gctx2, ids)
		if err != nil {
			return fmt.Errorf("get categories: %w", err)
		}
		return nil
	})

	g2.Go(func() error {
		var err error
		words, err = s.catalog.GetWords(gctx2, wordIDs(recent))
		if err != nil {
			return fmt.Errorf("get words: %w", err)
		}
		return nil
	})

	if err := g2.Wait(); err != nil {
		return domain.ProgressStats{}, err
	}

	return domain.ProgressStats{
		TotalWords:         summary.Total,
		WordsLearned:       summary.Learned,
		WordsInProgress:    summary.Total - summary.Learned,
		Accuracy:           accuracy(summary.CorrectSum, summary.IncorrectSum),
		Streak:             calculateStreak(reviewDays, today),
		CategoriesProgress: categoryProgress(counts, categories),
		RecentActivity:     recentActivity(recent, words),
	}, nil
}

// accuracy returns the percentage of correct answers rounded to one
// decimal place, or 0 without attempts.
func accuracy(correct, incorrect int) float64 {
	attempts := correct + incorrect
	if attempts == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(attempts)*1000) / 10
}

// categoryProgress omits categories that no longer exist.
func categoryProgress(counts []domain.CategoryCount, categories map[uuid.UUID]domain.Category) []domain.CategoryProgress {
	out := make([]domain.CategoryProgress, 0, len(counts))
	for _, c := range counts {
		cat, ok := categories[c.CategoryID]
		if !ok {
			continue
		}
		var percent float64
		if c.Total > 0 {
			percent = float64(c.Learned) / float64(c.Total) * 100
		}
		out = append(out, domain.CategoryProgress{
			CategoryID: c.CategoryID,
			NameTR:     cat.NameTR,
			NameRU:     cat.NameRU,
			Total:      c.Total,
			Learned:    c.Learned,
			Percent:    percent,
		})
	}
	return out
}

// recentActivity omits records whose word no longer exists.
func recentActivity(records []domain.ProgressRecord, words map[uuid.UUID]domain.Word) []domain.RecentActivity {
	out := make([]domain.RecentActivity, 0, len(records))
	for _, rec := range records {
		word, ok := words[rec.WordID]
		if !ok {
			continue
		}
		lastReviewed := rec.UpdatedAt
		if rec.LastReviewed != nil {
			lastReviewed = *rec.LastReviewed
		}
		out = append(out, domain.RecentActivity{
			WordID:       rec.WordID,
			Turkish:      word.Turkish,
			Russian:      word.Russian,
			Level:        rec.Level,
			LastReviewed: lastReviewed,
		})
	}
	return out
}

// calculateStreak counts consecutive review days ending today, or ending
// yesterday when there was no review yet today. days must be sorted
// newest first.
func calculateStreak(days []time.Time, today time.Time) int {
	if len(days) == 0 {
		return 0
	}

	sameDay := func(a, b time.Time) bool {
		return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
	}

	expected := today
	if !sameDay(days[0], today) {
		expected = today.AddDate(0, 0, -1)
	}

	streak := 0
	for _, d := range days {
		if !sameDay(d, expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
