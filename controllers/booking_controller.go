package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kenandcrys/auth-me/builders"
	"github.com/kenandcrys/auth-me/config"
	"github.com/kenandcrys/auth-me/dto"
	apperrors "github.com/kenandcrys/auth-me/errors"
	"github.com/kenandcrys/auth-me/middleware"
	"github.com/kenandcrys/auth-me/models"
	"github.com/kenandcrys/auth-me/response"
	"github.com/kenandcrys/auth-me/services"
	"github.com/kenandcrys/auth-me/services/notification"
	"github.com/kenandcrys/auth-me/utils"
	"github.com/kenandcrys/auth-me/validator"
)

// BookingController carries the notifier so booking lifecycle events can
// be pushed to websocket clients.
type BookingController struct {
	notifier notification.Service
}

func NewBookingController(notifier notification.Service) *BookingController {
	return &BookingController{notifier: notifier}
}

func (bc *BookingController) notify(spotName string, booking models.Booking, event string) {
	if bc.notifier == nil {
		return
	}
	msg := notification.NewBookingMessageBuilder(
		spotName,
		booking.StartDate.Format(models.DateLayout),
		booking.EndDate.Format(models.DateLayout),
		event,
	).Build()
	if err := bc.notifier.SendMessage(msg); err != nil {
		utils.LogError("failed to broadcast booking notification: %v", err)
	}
}

// GetCurrentUserBookings lists the renter's bookings with their spots.
func (bc *BookingController) GetCurrentUserBookings(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var bookings []models.Booking
	if err := config.DB.Preload("Spot").Preload("Spot.SpotImages").
		Where("user_id = ?", userID).
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	now := time.Now()
	results := make([]dto.UserBookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		results = append(results, dto.UserBookingResponse{
			BookingResponse: dto.NewBookingResponse(booking, now),
			Spot:            dto.NewSpotResponse(booking.Spot),
		})
	}

	response.Success(c, dto.BookingListResponse{Bookings: results})
}

// GetSpotBookings lists a spot's bookings. The spot owner sees full
// records with renter names; everyone else sees dates only.
func (bc *BookingController) GetSpotBookings(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	spotID := c.Param("spotId")

	var spot models.Spot
	if err := config.DB.First(&spot, spotID).Error; err != nil {
		response.NotFound(c, "Spot couldn't be found")
		return
	}

	var bookings []models.Booking
	if err := config.DB.Preload("User").
		Where("spot_id = ?", spot.ID).
		Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	now := time.Now()
	if spot.OwnerID == userID {
		results := make([]dto.OwnerBookingResponse, 0, len(bookings))
		for _, booking := range bookings {
			results = append(results, dto.OwnerBookingResponse{
				BookingResponse: dto.NewBookingResponse(booking, now),
				User: dto.RenterInfo{
					ID:        booking.User.ID,
					FirstName: booking.User.FirstName,
					LastName:  booking.User.LastName,
				},
			})
		}
		response.Success(c, dto.SpotBookingListResponse{Bookings: results})
		return
	}

	results := make([]dto.SpotBookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		results = append(results, dto.SpotBookingResponse{
			SpotID:    booking.SpotID,
			StartDate: booking.StartDate.Format(models.DateLayout),
			EndDate:   booking.EndDate.Format(models.DateLayout),
		})
	}
	response.Success(c, dto.SpotBookingListResponse{Bookings: results})
}

// CreateSpotBooking books a spot for the current user. Order of checks:
// spot existence, range validity, then the conflict check inside the
// insert transaction.
func (bc *BookingController) CreateSpotBooking(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	spotID := c.Param("spotId")

	var spot models.Spot
	if err := config.DB.First(&spot, spotID).Error; err != nil {
		response.NotFound(c, "Spot couldn't be found")
		return
	}

	var req dto.BookingDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{
			"startDate": "startDate is required",
			"endDate":   "endDate is required",
		})
		return
	}

	start, end, err := validator.ValidateBookingDates(req.StartDate, req.EndDate)
	if err != nil {
		response.ValidationError(c, map[string]string{
			"endDate": apperrors.GetAppError(err).Message,
		})
		return
	}

	booking := builders.NewBookingBuilder().
		WithRenter(userID).
		WithSpot(spot.ID).
		WithDates(start, end).
		Build()

	if err := services.BookSpot(config.DB, booking); err != nil {
		if services.IsConflictError(err) {
			response.Conflict(c, "Sorry, this spot is already booked for the specified dates",
				services.ConflictFieldErrors())
			return
		}
		response.ServerError(c)
		return
	}

	invalidateSpotCaches(spot.ID)
	bc.notify(spot.Name, *booking, "created")
	response.Success(c, dto.NewBookingResponse(*booking, time.Now()))
}

// UpdateBooking moves a booking to a new date range. Renter only, and only
// while the booking has not ended.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	bookingID := c.Param("bookingId")

	var booking models.Booking
	if err := config.DB.Preload("Spot").First(&booking, bookingID).Error; err != nil {
		response.NotFound(c, "Booking couldn't be found")
		return
	}

	if booking.UserID != userID {
		response.Forbidden(c)
		return
	}

	now := time.Now()
	if booking.EndedAt(now) {
		response.ForbiddenMessage(c, "Past bookings can't be modified")
		return
	}

	var req dto.BookingDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, map[string]string{
			"startDate": "startDate is required",
			"endDate":   "endDate is required",
		})
		return
	}

	start, end, err := validator.ValidateBookingDates(req.StartDate, req.EndDate)
	if err != nil {
		response.ValidationError(c, map[string]string{
			"endDate": apperrors.GetAppError(err).Message,
		})
		return
	}

	if err := services.RescheduleBooking(config.DB, &booking, start, end); err != nil {
		if services.IsConflictError(err) {
			response.Conflict(c, "Sorry, this spot is already booked for the specified dates",
				services.ConflictFieldErrors())
			return
		}
		response.ServerError(c)
		return
	}

	invalidateSpotCaches(booking.SpotID)
	bc.notify(booking.Spot.Name, booking, "updated")
	response.Success(c, dto.NewBookingResponse(booking, now))
}

// DeleteBooking cancels a booking before it starts. Allowed for the renter
// or the spot owner.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	bookingID := c.Param("bookingId")

	var booking models.Booking
	if err := config.DB.Preload("Spot").First(&booking, bookingID).Error; err != nil {
		response.NotFound(c, "Booking couldn't be found")
		return
	}

	if booking.UserID != userID && booking.Spot.OwnerID != userID {
		response.Forbidden(c)
		return
	}

	now := time.Now()
	if booking.StartedAt(now) {
		response.ForbiddenMessage(c, "Bookings that have been started can't be deleted")
		return
	}

	if err := config.DB.Delete(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateSpotCaches(booking.SpotID)
	bc.notify(booking.Spot.Name, booking, "cancelled")
	response.Deleted(c)
}
