package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/service/progress"
)

// progressService defines the minimal interface needed by ProgressHandler.
type progressService interface {
	RecordReview(ctx context.Context, input progress.RecordReviewInput) (progress.ReviewResult, error)
	DueForReview(ctx context.Context, input progress.DueInput) ([]domain.DueWord, error)
	LearnedWords(ctx context.Context) ([]domain.LearnedWord, error)
	Stats(ctx context.Context) (domain.ProgressStats, error)
	ListProgress(ctx context.Context) ([]domain.ProgressRecord, error)
	History(ctx context.Context, input progress.HistoryInput) ([]domain.ReviewEvent, int, error)
}

// ProgressHandler serves the progress REST endpoints.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress")}
}

// Messages shown to the learner after a review.
const (
	msgCorrect   = "İlerleme kaydedildi"
	msgIncorrect = "Tekrar dene!"
)

// ---------------------------------------------------------------------------
// Wire types
// ---------------------------------------------------------------------------

type reviewRequest struct {
	WordID  string `json:"word_id"`
	Correct *bool  `json:"correct"`
}

type reviewResponse struct {
	Success      bool             `json:"success"`
	WordsLearned int              `json:"words_learned"`
	Message      string           `json:"message"`
	Progress     progressResponse `json:"progress"`
}

type progressResponse struct {
	ID             string     `json:"progress_id"`
	WordID         string     `json:"word_id"`
	CategoryID     string     `json:"category_id,omitempty"`
	Level          int        `json:"level"`
	CorrectCount   int        `json:"correct_count"`
	IncorrectCount int        `json:"incorrect_count"`
	Learned        bool       `json:"learned"`
	LearnedAt      *time.Time `json:"learned_at,omitempty"`
	LastReviewed   *time.Time `json:"last_reviewed"`
	NextReview     *time.Time `json:"next_review"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type wordResponse struct {
	WordID        string `json:"word_id"`
	CategoryID    string `json:"category_id,omitempty"`
	Turkish       string `json:"turkish"`
	Russian       string `json:"russian"`
	Pronunciation string `json:"pronunciation,omitempty"`
	ExampleTR     string `json:"example_tr,omitempty"`
	ExampleRU     string `json:"example_ru,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	Level         string `json:"level,omitempty"`
}

type dueWordResponse struct {
	wordResponse
	ProgressLevel int        `json:"progress_level"`
	LastReviewed  *time.Time `json:"last_reviewed"`
	NextReview    *time.Time `json:"next_review"`
}

type learnedWordResponse struct {
	wordResponse
	MasteredAt time.Time `json:"mastered_at"`
}

type wordListResponse[T any] struct {
	Count int `json:"count"`
	Words []T `json:"words"`
}

type statsResponse struct {
	TotalWords         int                  `json:"total_words"`
	WordsLearned       int                  `json:"words_learned"`
	WordsInProgress    int                  `json:"words_in_progress"`
	Accuracy           float64              `json:"accuracy"`
	Streak             int                  `json:"streak"`
	CategoriesProgress []categoryStatsJSON  `json:"categories_progress"`
	RecentActivity     []recentActivityJSON `json:"recent_activity"`
}

type categoryStatsJSON struct {
	CategoryID string  `json:"category_id"`
	NameTR     string  `json:"name_tr"`
	NameRU     string  `json:"name_ru"`
	Total      int     `json:"total"`
	Learned    int     `json:"learned"`
	Percent    float64 `json:"percent"`
}

type recentActivityJSON struct {
	WordID       string    `json:"word_id"`
	Turkish      string    `json:"turkish"`
	Russian      string    `json:"russian"`
	Level        int       `json:"level"`
	LastReviewed time.Time `json:"last_reviewed"`
}

type historyResponse struct {
	Total  int               `json:"total"`
	Events []reviewEventJSON `json:"events"`
}

type reviewEventJSON struct {
	ID         string    `json:"id"`
	WordID     string    `json:"word_id"`
	Correct    bool      `json:"correct"`
	LevelFrom  int       `json:"level_from"`
	LevelTo    int       `json:"level_to"`
	ReviewedAt time.Time `json:"reviewed_at"`
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// Update handles POST /api/progress/update.
func (h *ProgressHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.review(w, r, req.WordID, req.Correct)
}

// Review handles POST /api/progress/{word_id}/review.
func (h *ProgressHandler) Review(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.review(w, r, r.PathValue("word_id"), req.Correct)
}

func (h *ProgressHandler) review(w http.ResponseWriter, r *http.Request, rawWordID string, correct *bool) {
	var fields []domain.FieldError
	wordID, err := uuid.Parse(rawWordID)
	if err != nil {
		fields = append(fields, domain.FieldError{Field: "word_id", Message: "must be a UUID"})
	}
	if correct == nil {
		fields = append(fields, domain.FieldError{Field: "correct", Message: "required"})
	}
	if len(fields) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(fields))
		return
	}

	res, err := h.svc.RecordReview(r.Context(), progress.RecordReviewInput{WordID: wordID, Correct: *correct})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	msg := msgIncorrect
	if *correct {
		msg = msgCorrect
	}
	writeJSON(w, http.StatusOK, reviewResponse{
		Success:      true,
		WordsLearned: res.WordsLearned,
		Message:      msg,
		Progress:     toProgressResponse(res.Record),
	})
}

// List handles GET /api/progress.
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.ListProgress(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]progressResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toProgressResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

// Due handles GET /api/progress/words-to-review. An optional as_of query
// parameter (RFC 3339) replaces the current time.
func (h *ProgressHandler) Due(w http.ResponseWriter, r *http.Request) {
	var input progress.DueInput
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		asOf, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("as_of", "must be an RFC 3339 timestamp"))
			return
		}
		input.AsOf = asOf
	}

	due, err := h.svc.DueForReview(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	words := make([]dueWordResponse, 0, len(due))
	for _, d := range due {
		words = append(words, dueWordResponse{
			wordResponse:  toWordResponse(d.Word),
			ProgressLevel: d.ProgressLevel,
			LastReviewed:  d.LastReviewed,
			NextReview:    d.NextReview,
		})
	}
	writeJSON(w, http.StatusOK, wordListResponse[dueWordResponse]{Count: len(words), Words: words})
}

// Learned handles GET /api/progress/learned-words.
func (h *ProgressHandler) Learned(w http.ResponseWriter, r *http.Request) {
	learned, err := h.svc.LearnedWords(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	words := make([]learnedWordResponse, 0, len(learned))
	for _, l := range learned {
		words = append(words, learnedWordResponse{
			wordResponse: toWordResponse(l.Word),
			MasteredAt:   l.MasteredAt,
		})
	}
	writeJSON(w, http.StatusOK, wordListResponse[learnedWordResponse]{Count: len(words), Words: words})
}

// Stats handles GET /api/progress/stats.
func (h *ProgressHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := statsResponse{
		TotalWords:         stats.TotalWords,
		WordsLearned:       stats.WordsLearned,
		WordsInProgress:    stats.WordsInProgress,
		Accuracy:           stats.Accuracy,
		Streak:             stats.Streak,
		CategoriesProgress: make([]categoryStatsJSON, 0, len(stats.CategoriesProgress)),
		RecentActivity:     make([]recentActivityJSON, 0, len(stats.RecentActivity)),
	}
	for _, c := range stats.CategoriesProgress {
		resp.CategoriesProgress = append(resp.CategoriesProgress, categoryStatsJSON{
			CategoryID: c.CategoryID.String(),
			NameTR:     c.NameTR,
			NameRU:     c.NameRU,
			Total:      c.Total,
			Learned:    c.Learned,
			Percent:    c.Percent,
		})
	}
	for _, a := range stats.RecentActivity {
		resp.RecentActivity = append(resp.RecentActivity, recentActivityJSON{
			WordID:       a.WordID.String(),
			Turkish:      a.Turkish,
			Russian:      a.Russian,
			Level:        a.Level,
			LastReviewed: a.LastReviewed,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// History handles GET /api/progress/{word_id}/history.
func (h *ProgressHandler) History(w http.ResponseWriter, r *http.Request) {
	var fields []domain.FieldError

	wordID, err := uuid.Parse(r.PathValue("word_id"))
	if err != nil {
		fields = append(fields, domain.FieldError{Field: "word_id", Message: "must be a UUID"})
	}
	limit, ok := queryInt(r, "limit")
	if !ok {
		fields = append(fields, domain.FieldError{Field: "limit", Message: "must be an integer"})
	}
	offset, ok := queryInt(r, "offset")
	if !ok {
		fields = append(fields, domain.FieldError{Field: "offset", Message: "must be an integer"})
	}
	if len(fields) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(fields))
		return
	}

	events, total, err := h.svc.History(r.Context(), progress.HistoryInput{WordID: wordID, Limit: limit, Offset: offset})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := historyResponse{Total: total, Events: make([]reviewEventJSON, 0, len(events))}
	for _, ev := range events {
		resp.Events = append(resp.Events, reviewEventJSON{
			ID:         ev.ID.String(),
			WordID:     ev.WordID.String(),
			Correct:    ev.Correct,
			LevelFrom:  ev.LevelFrom,
			LevelTo:    ev.LevelTo,
			ReviewedAt: ev.ReviewedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

// queryInt reads an optional integer query parameter; absent means 0.
func queryInt(r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	return v, err == nil
}

func optionalID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

func toWordResponse(w domain.Word) wordResponse {
	return wordResponse{
		WordID:        w.ID.String(),
		CategoryID:    optionalID(w.CategoryID),
		Turkish:       w.Turkish,
		Russian:       w.Russian,
		Pronunciation: w.Pronunciation,
		ExampleTR:     w.ExampleTR,
		ExampleRU:     w.ExampleRU,
		ImageURL:      w.ImageURL,
		Level:         w.Level,
	}
}

func toProgressResponse(rec domain.ProgressRecord) progressResponse {
	return progressResponse{
		ID:             rec.ID.String(),
		WordID:         rec.WordID.String(),
		CategoryID:     optionalID(rec.CategoryID),
		Level:          rec.Level,
		CorrectCount:   rec.CorrectCount,
		IncorrectCount: rec.IncorrectCount,
		Learned:        rec.Learned,
		LearnedAt:      rec.LearnedAt,
		LastReviewed:   rec.LastReviewed,
		NextReview:     rec.NextReview,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}
