package domain

import (
	"time"

	"github.com/google/uuid"
)

// Level bounds. A record is learned once it reaches MaxLevel.
const (
	MinLevel = 0
	MaxLevel = 5
)

// ProgressRecord is a user's mastery state for one word. The pair
// (UserID, WordID) is unique; the record is created on the first review.
type ProgressRecord struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	WordID         uuid.UUID
	CategoryID     uuid.UUID
	Level          int
	CorrectCount   int
	IncorrectCount int
	Learned        bool
	LearnedAt      *time.Time
	LastReviewed   *time.Time
	NextReview     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsDue reports whether the record should be reviewed at asOf.
// Learned records are never due.
func (p *ProgressRecord) IsDue(asOf time.Time) bool {
	if p.Learned || p.NextReview == nil {
		return false
	}
	return !p.NextReview.After(asOf)
}

// Attempts returns the total number of reviews recorded.
func (p *ProgressRecord) Attempts() int {
	return p.CorrectCount + p.IncorrectCount
}

// ReviewEvent is one row of the append-only review log.
type ReviewEvent struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	WordID     uuid.UUID
	Correct    bool
	LevelFrom  int
	LevelTo    int
	ReviewedAt time.Time
}

// DueWord is a due progress record joined with its word.
type DueWord struct {
	Word          Word
	ProgressLevel int
	LastReviewed  *time.Time
	NextReview    *time.Time
}

// LearnedWord is a learned progress record joined with its word.
type LearnedWord struct {
	Word       Word
	MasteredAt time.Time
}

// CategoryProgress is the per-category row of ProgressStats.
type CategoryProgress struct {
	CategoryID uuid.UUID
	NameTR     string
	NameRU     string
	Total      int
	Learned    int
	Percent    float64
}

// RecentActivity is one of the most recently reviewed words.
type RecentActivity struct {
	WordID       uuid.UUID
	Turkish      string
	Russian      string
	Level        int
	LastReviewed time.Time
}

// ProgressStats aggregates all progress records of a user.
type ProgressStats struct {
	TotalWords         int
	WordsLearned       int
	WordsInProgress    int
	Accuracy           float64
	Streak             int
	CategoriesProgress []CategoryProgress
	RecentActivity     []RecentActivity
}

// ProgressSummary is the raw per-user aggregate behind ProgressStats.
type ProgressSummary struct {
	Total        int
	Learned      int
	CorrectSum   int
	IncorrectSum int
}

// CategoryCount is the number of touched and learned words in one category.
type CategoryCount struct {
	CategoryID uuid.UUID
	Total      int
	Learned    int
}
