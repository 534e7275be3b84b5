package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a Turkish/Russian vocabulary pair a user can be quizzed on.
type Word struct {
	ID            uuid.UUID
	CategoryID    uuid.UUID
	Turkish       string
	Russian       string
	Pronunciation string
	ExampleTR     string
	ExampleRU     string
	ImageURL      string
	Level         string
	CreatedAt     time.Time
}

// Category groups words by topic.
type Category struct {
	ID        uuid.UUID
	NameTR    string
	NameRU    string
	Icon      string
	Level     string
	Color     string
	CreatedAt time.Time
}
