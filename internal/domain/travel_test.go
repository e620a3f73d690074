package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/travelbook/internal/domain"
)

func TestCountDescriptionWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"single letters are not words", "A b c d e f", 0},
		{"short sentence", "A short test case", 3},
		{"long sentence", "A somewhat longer valid description here", 5},
		{"hyphen and apostrophe stay inside a word", "l'été day-trip", 2},
		{"accented letters", "Très belle journée à Montréal", 4},
		{"digits after the first letter", "route66 and a1 are roads", 5},
		{"upper case after the first letter splits", "HELLO world", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CountDescriptionWords(tt.in))
		})
	}
}

func TestTravel_IsDeleted(t *testing.T) {
	assert.False(t, domain.Travel{Status: domain.TravelStatusActive}.IsDeleted())
	assert.True(t, domain.Travel{Status: domain.TravelStatusDeleted}.IsDeleted())
}

func TestUser_IsAdmin(t *testing.T) {
	assert.True(t, domain.User{Roles: []string{domain.RoleUser, domain.RoleAdmin}}.IsAdmin())
	assert.False(t, domain.User{Roles: []string{domain.RoleUser}}.IsAdmin())
	assert.False(t, domain.User{}.IsAdmin())
}
