package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	assert.NoError(t, err)
	return d
}

func TestBookingStateAt(t *testing.T) {
	b := Booking{
		StartDate: mustDate(t, "2026-09-10"),
		EndDate:   mustDate(t, "2026-09-15"),
	}

	tests := []struct {
		name string
		now  string
		want string
	}{
		{"before the stay", "2026-09-01", BookingUpcoming},
		{"on the start date", "2026-09-10", BookingActive},
		{"mid stay", "2026-09-12", BookingActive},
		{"on the end date", "2026-09-15", BookingActive},
		{"after the stay", "2026-09-20", BookingPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.StateAt(mustDate(t, tt.now)))
		})
	}
}

func TestBookingStartedAndEnded(t *testing.T) {
	b := Booking{
		StartDate: mustDate(t, "2026-09-10"),
		EndDate:   mustDate(t, "2026-09-15"),
	}

	assert.False(t, b.StartedAt(mustDate(t, "2026-09-09")))
	assert.True(t, b.StartedAt(mustDate(t, "2026-09-10")))
	assert.True(t, b.StartedAt(mustDate(t, "2026-09-20")))

	assert.False(t, b.EndedAt(mustDate(t, "2026-09-15")))
	assert.True(t, b.EndedAt(mustDate(t, "2026-09-16")))
}
