package models

import (
	"time"
)

// DateLayout is the wire format for booking and calendar dates.
const DateLayout = "2006-01-02"

// Booking lifecycle states, derived from the date range against a clock.
// Active and Past are terminal with respect to mutation.
const (
	BookingUpcoming = "upcoming"
	BookingActive   = "active"
	BookingPast     = "past"
)

type Booking struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SpotID    uint      `json:"spotId" gorm:"index;not null"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	StartDate time.Time `json:"startDate" gorm:"type:date;not null"`
	EndDate   time.Time `json:"endDate" gorm:"type:date;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Spot      Spot      `json:"spot,omitempty" gorm:"foreignKey:SpotID"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// StateAt reports the lifecycle state of the booking at the given instant.
func (b *Booking) StateAt(now time.Time) string {
	switch {
	case b.EndDate.Before(now):
		return BookingPast
	case b.StartDate.After(now):
		return BookingUpcoming
	default:
		return BookingActive
	}
}

// StartedAt reports whether the booking has already begun.
func (b *Booking) StartedAt(now time.Time) bool {
	return !b.StartDate.After(now)
}

// EndedAt reports whether the booking is entirely in the past.
func (b *Booking) EndedAt(now time.Time) bool {
	return b.EndDate.Before(now)
}
