package progress

import (
	"time"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
)

// Apply returns rec after one review outcome. It is pure: the caller owns
// persistence. A zero-value record is the state before the first review.
func Apply(rec domain.ProgressRecord, correct bool, now time.Time) domain.ProgressRecord {
	level := clampLevel(rec.Level)
	wasLearned := rec.Learned

	if correct {
		rec.CorrectCount++
		level = min(level+1, domain.MaxLevel)
	} else {
		rec.IncorrectCount++
		level = max(level-1, domain.MinLevel)
	}

	rec.Level = level
	rec.Learned = level >= domain.MaxLevel

	switch {
	case rec.Learned && (!wasLearned || rec.LearnedAt == nil):
		rec.LearnedAt = ptr(now)
	case !rec.Learned:
		rec.LearnedAt = nil
	}

	next := NextReview(level, now)
	rec.LastReviewed = ptr(now)
	rec.NextReview = &next
	rec.UpdatedAt = now
	return rec
}

func clampLevel(level int) int {
	return min(max(level, domain.MinLevel), domain.MaxLevel)
}

func ptr[T any](v T) *T {
	return &v
}
