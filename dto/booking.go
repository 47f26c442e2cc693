package dto

import (
	"time"

	"github.com/kenandcrys/auth-me/models"
)

type BookingDatesRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

type BookingResponse struct {
	ID        uint   `json:"id"`
	SpotID    uint   `json:"spotId"`
	UserID    uint   `json:"userId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	Status    string `json:"status"`
}

// SpotBookingResponse is what non-owners see when listing a spot's
// bookings: dates only, no renter identity.
type SpotBookingResponse struct {
	SpotID    uint   `json:"spotId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type OwnerBookingResponse struct {
	BookingResponse
	User RenterInfo `json:"User"`
}

type RenterInfo struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type UserBookingResponse struct {
	BookingResponse
	Spot SpotResponse `json:"Spot"`
}

type BookingListResponse struct {
	Bookings []UserBookingResponse `json:"Bookings"`
}

type SpotBookingListResponse struct {
	Bookings interface{} `json:"Bookings"`
}

func NewBookingResponse(b models.Booking, now time.Time) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		SpotID:    b.SpotID,
		UserID:    b.UserID,
		StartDate: b.StartDate.Format(models.DateLayout),
		EndDate:   b.EndDate.Format(models.DateLayout),
		CreatedAt: b.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: b.UpdatedAt.Format("2006-01-02 15:04:05"),
		Status:    b.StateAt(now),
	}
}
