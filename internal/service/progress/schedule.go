package progress

import (
	"time"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
)

const day = 24 * time.Hour

// reviewIntervals maps a level to the time until the word is due again.
var reviewIntervals = [domain.MaxLevel + 1]time.Duration{
	0,
	1 * day,
	3 * day,
	7 * day,
	15 * day,
	30 * day,
}

// ReviewInterval returns the review interval for level. Levels outside
// [MinLevel, MaxLevel] get the level-0 interval.
func ReviewInterval(level int) time.Duration {
	if level < domain.MinLevel || level > domain.MaxLevel {
		return reviewIntervals[domain.MinLevel]
	}
	return reviewIntervals[level]
}

// NextReview returns when a word at level becomes due, counted from now.
func NextReview(level int, now time.Time) time.Time {
	return now.Add(ReviewInterval(level))
}
