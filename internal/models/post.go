package models

import (
	"time"

	"github.com/google/uuid"
)

// PostDB represents a blog post record in the database.
// UserID is always the authenticated author, never client-supplied.
type PostDB struct {
	PostID     uuid.UUID `json:"id" db:"post_id"`             // Primary key
	UserID     uuid.UUID `json:"userId" db:"user_id"`         // Author reference
	CategoryID uuid.UUID `json:"categoryId" db:"category_id"` // Category reference
	Title      string    `json:"title" db:"title"`            // Trimmed title
	Content    string    `json:"content" db:"content"`        // Trimmed content
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`   // Creation timestamp
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`   // Last update timestamp
}

// BlogEvent is published to Kafka on post mutations.
type BlogEvent struct {
	EventID   string `json:"event_id"`
	Event     string `json:"event"` // post_created, post_updated, post_deleted
	PostID    string `json:"post_id"`
	UserID    string `json:"user_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
