package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryDB represents a blog category record in the database.
type CategoryDB struct {
	CategoryID uuid.UUID `json:"id" db:"category_id"`       // Primary key
	Name       string    `json:"name" db:"name"`            // Unique, trimmed name
	CreatedAt  time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"` // Last update timestamp
}
