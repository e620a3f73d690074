package domain

import (
	"time"

	"github.com/google/uuid"
)

// Album is a named collection of media attached to exactly one Travel.
// Albums have no update or delete operation.
type Album struct {
	ID          int64
	UUID        uuid.UUID
	Title       string
	Description string
	TravelID    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
