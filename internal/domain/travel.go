// Package domain contains the core data types for the travel logbook.
// It is imported by every other internal package (repo, service, handler).
package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TravelStatus is the lifecycle state of a Travel.
// The only transition is ACTIVE → DELETED; DELETED is terminal.
type TravelStatus string

const (
	TravelStatusActive  TravelStatus = "ACTIVE"
	TravelStatusDeleted TravelStatus = "DELETED"
)

// DescriptionMinWords is the minimum number of words a travel description
// must contain when one is supplied.
const DescriptionMinWords = 5

// descriptionWord matches one word-like token of a description.
// A token starts with an ASCII letter followed by at least one lowercase
// letter, digit, hyphen, apostrophe or Latin-1 accented letter.
var descriptionWord = regexp.MustCompile(`[a-zA-Z][-'0-9a-zÀ-ÿ]+`)

// Travel is a trip owned by a user, optionally shared, with a budget and an
// optional date range. Travels are soft-deleted through Status.
type Travel struct {
	ID          int64
	UUID        uuid.UUID
	Name        string
	Budget      decimal.Decimal
	StartedAt   *time.Time
	EndedAt     *time.Time
	Description *string
	Status      TravelStatus
	IsShared    bool
	UserID      int64
	PlaceID     *int64 // nil when the travel is not tied to a place
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsDeleted reports whether the travel has been soft-deleted.
func (t Travel) IsDeleted() bool {
	return t.Status == TravelStatusDeleted
}

// TravelInput carries the caller-supplied fields shared by create and update.
type TravelInput struct {
	Name        string
	Budget      decimal.Decimal
	StartedAt   *time.Time
	EndedAt     *time.Time
	Description *string
	IsShared    bool
}

// CountDescriptionWords returns the number of word-like tokens in s.
func CountDescriptionWords(s string) int {
	return len(descriptionWord.FindAllStringIndex(s, -1))
}
