package progress

import (
	"context"
	"fmt"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
	"github.com/mctelektrik41-blip/sozluk-backend/pkg/ctxutil"
)

// ListProgress returns every progress record of the user.
func (s *Service) ListProgress(ctx context.Context) ([]domain.ProgressRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	if records == nil {
		records = []domain.ProgressRecord{}
	}
	return records, nil
}
