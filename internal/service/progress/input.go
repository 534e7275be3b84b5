package progress

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
)

// RecordReviewInput holds the parameters for recording one review.
type RecordReviewInput struct {
	WordID  uuid.UUID
	Correct bool
}

// Validate checks all fields and collects all errors.
func (i *RecordReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DueInput holds the parameters for listing due words. A zero AsOf means now.
type DueInput struct {
	AsOf time.Time
}

// HistoryInput holds the parameters for listing the review log of a word.
type HistoryInput struct {
	WordID uuid.UUID
	Limit  int
	Offset int
}

// Validate checks all fields against maxLimit and collects all errors.
func (i *HistoryInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", maxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
