package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kenandcrys/auth-me/models"
)

func TestNewBookingResponse(t *testing.T) {
	start, _ := time.Parse(models.DateLayout, "2026-09-10")
	end, _ := time.Parse(models.DateLayout, "2026-09-15")
	created := time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)

	b := models.Booking{
		ID:        3,
		SpotID:    7,
		UserID:    11,
		StartDate: start,
		EndDate:   end,
		CreatedAt: created,
		UpdatedAt: created,
	}

	resp := NewBookingResponse(b, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, uint(3), resp.ID)
	assert.Equal(t, "2026-09-10", resp.StartDate)
	assert.Equal(t, "2026-09-15", resp.EndDate)
	assert.Equal(t, "2026-08-01 09:30:00", resp.CreatedAt)
	assert.Equal(t, models.BookingUpcoming, resp.Status)

	resp = NewBookingResponse(b, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, models.BookingActive, resp.Status)

	resp = NewBookingResponse(b, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, models.BookingPast, resp.Status)
}
