package builders

import (
	"time"

	"github.com/kenandcrys/auth-me/models"
)

// BookingBuilder assembles a booking step by step.
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder creates a fresh builder.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithRenter sets the booking user.
func (b *BookingBuilder) WithRenter(userID uint) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

// WithSpot sets the booked spot.
func (b *BookingBuilder) WithSpot(spotID uint) *BookingBuilder {
	b.booking.SpotID = spotID
	return b
}

// WithDates sets the stay range.
func (b *BookingBuilder) WithDates(start, end time.Time) *BookingBuilder {
	b.booking.StartDate = start
	b.booking.EndDate = end
	return b
}

// Build returns the assembled booking.
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
