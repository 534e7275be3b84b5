package progress

import "github.com/mctelektrik41-blip/sozluk-backend/internal/domain"

// ReviewResult is the outcome of RecordReview.
type ReviewResult struct {
	Record        domain.ProgressRecord
	Word          domain.Word
	PreviousLevel int
	WordsLearned  int
	// Created is true when this review created the progress record.
	Created bool
}

// BecameLearned reports whether this review flipped the word to learned.
func (r ReviewResult) BecameLearned() bool {
	return r.Record.Learned && r.PreviousLevel < domain.MaxLevel
}
