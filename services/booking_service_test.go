package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenandcrys/auth-me/errors"
	"github.com/kenandcrys/auth-me/models"
)

func day(s string) time.Time {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func booking(id uint, start, end string) models.Booking {
	return models.Booking{ID: id, SpotID: 1, StartDate: day(start), EndDate: day(end)}
}

func TestFindConflict(t *testing.T) {
	existing := []models.Booking{booking(7, "2026-09-10", "2026-09-15")}

	tests := []struct {
		name     string
		start    string
		end      string
		conflict bool
	}{
		{"identical range", "2026-09-10", "2026-09-15", true},
		{"overlaps the start", "2026-09-08", "2026-09-11", true},
		{"overlaps the end", "2026-09-14", "2026-09-18", true},
		{"inside the existing range", "2026-09-11", "2026-09-14", true},
		{"fully contains the existing range", "2026-09-05", "2026-09-20", true},
		{"shares only the start endpoint", "2026-09-07", "2026-09-10", true},
		{"shares only the end endpoint", "2026-09-15", "2026-09-18", true},
		{"entirely before", "2026-09-01", "2026-09-05", false},
		{"entirely after", "2026-09-20", "2026-09-25", false},
		{"adjacent, ends the day before", "2026-09-05", "2026-09-09", false},
		{"adjacent, starts the day after", "2026-09-16", "2026-09-20", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindConflict(existing, day(tt.start), day(tt.end), 0)
			if tt.conflict {
				require.NotNil(t, got)
				assert.Equal(t, uint(7), got.ID)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestFindConflictExcludesSelf(t *testing.T) {
	existing := []models.Booking{
		booking(7, "2026-09-10", "2026-09-15"),
		booking(8, "2026-09-20", "2026-09-25"),
	}

	// Rescheduling booking 7 within its own range must not conflict with itself.
	assert.Nil(t, FindConflict(existing, day("2026-09-11"), day("2026-09-14"), 7))

	// But it still conflicts with the other booking on the spot.
	got := FindConflict(existing, day("2026-09-18"), day("2026-09-21"), 7)
	require.NotNil(t, got)
	assert.Equal(t, uint(8), got.ID)
}

func TestFindConflictEmpty(t *testing.T) {
	assert.Nil(t, FindConflict(nil, day("2026-09-10"), day("2026-09-15"), 0))
}

func TestConflictFieldErrors(t *testing.T) {
	errs := ConflictFieldErrors()
	assert.Contains(t, errs, "startDate")
	assert.Contains(t, errs, "endDate")

	// Mutating the returned map must not leak into later calls.
	errs["startDate"] = "changed"
	assert.NotEqual(t, "changed", ConflictFieldErrors()["startDate"])
}

func TestIsConflictError(t *testing.T) {
	assert.True(t, IsConflictError(newConflictError()))
	assert.False(t, IsConflictError(errors.NewAppError(errors.ErrCodeDBError, "db down", nil)))
	assert.False(t, IsConflictError(nil))
}
