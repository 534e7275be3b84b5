package progress

import (
	"context"
	"fmt"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
	"github.com/mctelektrik41-blip/sozluk-backend/pkg/ctxutil"
)

// History returns one page of the user's review log for a word, newest
// first, and the total number of events. A zero limit means the maximum.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]domain.ReviewEvent, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	maxLimit := s.historyMaxLimit()
	if err := input.Validate(maxLimit); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = maxLimit
	}

	events, total, err := s.reviews.ListByWord(ctx, userID, input.WordID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list review log: %w", err)
	}
	if events == nil {
		events = []domain.ReviewEvent{}
	}
	return events, total, nil
}
