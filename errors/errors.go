package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a category of application failure.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden       ErrorCode = "FORBIDDEN"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"

	// Spot errors
	ErrCodeSpotNotFound ErrorCode = "SPOT_NOT_FOUND"
	ErrCodeInvalidSpot  ErrorCode = "INVALID_SPOT"
	ErrCodeInvalidCoord ErrorCode = "INVALID_COORDINATE"

	// Booking errors
	ErrCodeBookingNotFound ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeInvalidRange    ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeBookingConflict ErrorCode = "BOOKING_CONFLICT"
	ErrCodeBookingStarted  ErrorCode = "BOOKING_STARTED"
	ErrCodeBookingPast     ErrorCode = "BOOKING_PAST"

	// Review errors
	ErrCodeReviewNotFound  ErrorCode = "REVIEW_NOT_FOUND"
	ErrCodeDuplicateReview ErrorCode = "DUPLICATE_REVIEW"
	ErrCodeInvalidStars    ErrorCode = "INVALID_STARS"
	ErrCodeImageLimit      ErrorCode = "IMAGE_LIMIT_REACHED"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError carries a code, a user-facing message and the wrapped cause.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Spot errors
	ErrSpotNotFound = errors.New("spot not found")
	ErrNotSpotOwner = errors.New("spot does not belong to the current user")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingConflict = errors.New("spot is already booked for the specified dates")
	ErrBookingStarted  = errors.New("bookings that have been started can't be deleted")
	ErrBookingPast     = errors.New("past bookings can't be modified")
	ErrInvalidRange    = errors.New("endDate cannot be on or before startDate")

	// Review errors
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("user already has a review for this spot")
	ErrImageLimit      = errors.New("maximum number of images for this review was reached")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
