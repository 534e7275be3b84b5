package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a student user with words_learned = 0.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		Role:         domain.UserRoleStudent,
		Subscription: "free",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, role, subscription, words_learned, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, 0, $6, $7)`,
		user.ID, user.Email, user.Name, string(user.Role), user.Subscription, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedCategory creates a category with unique names.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	suffix := uniqueSuffix()
	cat := domain.Category{
		ID:        uuid.New(),
		NameTR:    "Kategori " + suffix,
		NameRU:    "Категория " + suffix,
		Icon:      "📘",
		Level:     "A1",
		Color:     "#3366ff",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, name_tr, name_ru, icon, level, color, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		cat.ID, cat.NameTR, cat.NameRU, cat.Icon, cat.Level, cat.Color, cat.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return cat
}

// SeedWord creates a word in the given category.
func SeedWord(t *testing.T, pool *pgxpool.Pool, categoryID uuid.UUID, turkish, russian string) domain.Word {
	t.Helper()

	w := domain.Word{
		ID:            uuid.New(),
		CategoryID:    categoryID,
		Turkish:       turkish,
		Russian:       russian,
		Pronunciation: "[" + turkish + "]",
		ExampleTR:     turkish + " örnek.",
		ExampleRU:     russian + " пример.",
		Level:         "A1",
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO words (id, category_id, turkish, russian, pronunciation, example_tr, example_ru, image_url, level, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		w.ID, w.CategoryID, w.Turkish, w.Russian, w.Pronunciation, w.ExampleTR, w.ExampleRU, w.ImageURL, w.Level, w.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord: %v", err)
	}

	return w
}

// SeedProgress inserts a progress row directly, bypassing the transition logic.
// learned is derived from level to satisfy the table constraint.
func SeedProgress(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, word domain.Word, level int, nextReview time.Time) domain.ProgressRecord {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	next := nextReview.UTC().Truncate(time.Microsecond)
	rec := domain.ProgressRecord{
		ID:           uuid.New(),
		UserID:       userID,
		WordID:       word.ID,
		CategoryID:   word.CategoryID,
		Level:        level,
		CorrectCount: level,
		Learned:      level >= domain.MaxLevel,
		LastReviewed: &now,
		NextReview:   &next,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if rec.Learned {
		rec.LearnedAt = &now
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_progress (id, user_id, word_id, category_id, level, correct_count, incorrect_count,
		                            learned, learned_at, last_reviewed, next_review, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8, $9, $10, $11, $12)`,
		rec.ID, rec.UserID, rec.WordID, rec.CategoryID, rec.Level, rec.CorrectCount,
		rec.Learned, rec.LearnedAt, rec.LastReviewed, rec.NextReview, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProgress: %v", err)
	}

	return rec
}
