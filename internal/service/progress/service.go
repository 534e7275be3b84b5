// Package progress tracks per-user mastery of vocabulary words: it applies
// review outcomes, schedules the next review and aggregates statistics.
package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type progressRepo interface {
	GetOrCreateForUpdate(ctx context.Context, userID, wordID, categoryID uuid.UUID, now time.Time) (domain.ProgressRecord, bool, error)
	Update(ctx context.Context, rec domain.ProgressRecord) error
	CountLearned(ctx context.Context, userID uuid.UUID) (int, error)
	ListDue(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]domain.ProgressRecord, error)
	ListLearned(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ProgressRecord, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ProgressRecord, error)
	Summarize(ctx context.Context, userID uuid.UUID) (domain.ProgressSummary, error)
	CountByCategory(ctx context.Context, userID uuid.UUID) ([]domain.CategoryCount, error)
}

type reviewLogRepo interface {
	Create(ctx context.Context, ev domain.ReviewEvent) error
	ListByWord(ctx context.Context, userID, wordID uuid.UUID, limit, offset int) ([]domain.ReviewEvent, int, error)
	ReviewDays(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
}

type userRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetWordsLearned(ctx context.Context, id uuid.UUID, count int) error
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

type catalog interface {
	GetWord(ctx context.Context, id uuid.UUID) (domain.Word, error)
	GetWords(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Word, error)
	GetCategories(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Category, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type reviewMetrics interface {
	ReviewRecorded(correct bool, levelFrom, levelTo, maxLevel int)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the tunables of the progress service.
type Config struct {
	RecentActivityLimit int
	HistoryMaxLimit     int
}

// Service implements the progress business logic.
type Service struct {
	progress progressRepo
	reviews  reviewLogRepo
	users    userRepo
	catalog  catalog
	tx       txManager
	metrics  reviewMetrics
	log      *slog.Logger
	cfg      Config
	now      func() time.Time
}

// NewService creates a new Progress service. metrics may be nil.
func NewService(
	log *slog.Logger,
	progress progressRepo,
	reviews reviewLogRepo,
	users userRepo,
	catalog catalog,
	tx txManager,
	metrics reviewMetrics,
	cfg Config,
) *Service {
	return &Service{
		progress: progress,
		reviews:  reviews,
		users:    users,
		catalog:  catalog,
		tx:       tx,
		metrics:  metrics,
		log:      log.With("service", "progress"),
		cfg:      cfg,
		now:      time.Now,
	}
}

// clock returns the current time in UTC.
func (s *Service) clock() time.Time {
	if s.now == nil {
		return time.Now().UTC()
	}
	return s.now().UTC()
}

func (s *Service) recentLimit() int {
	if s.cfg.RecentActivityLimit <= 0 {
		return 10
	}
	return s.cfg.RecentActivityLimit
}

func (s *Service) historyMaxLimit() int {
	if s.cfg.HistoryMaxLimit <= 0 {
		return 200
	}
	return s.cfg.HistoryMaxLimit
}
