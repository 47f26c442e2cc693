package validator

import (
	"regexp"
	"strconv"
	"time"

	playground "github.com/go-playground/validator/v10"

	"github.com/kenandcrys/auth-me/errors"
	"github.com/kenandcrys/auth-me/models"
)

var validate = playground.New()

// ValidateStruct runs tag-based validation for inputs that arrive outside
// of gin's binding path (seeding, jobs).
func ValidateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), err)
	}
	return nil
}

// ValidateSpot checks the field constraints of a spot before it is persisted.
// Returns a field->message map alongside the error for the 400 envelope.
func ValidateSpot(spot *models.Spot) (map[string]string, error) {
	fieldErrors := map[string]string{}

	if spot.Address == "" {
		fieldErrors["address"] = "Street address is required"
	}
	if spot.City == "" {
		fieldErrors["city"] = "City is required"
	}
	if spot.State == "" {
		fieldErrors["state"] = "State is required"
	}
	if spot.Country == "" {
		fieldErrors["country"] = "Country is required"
	}
	if err := spot.ValidateCoordinates(); err != nil {
		if spot.Lat < -90 || spot.Lat > 90 {
			fieldErrors["lat"] = "Latitude is not valid"
		}
		if spot.Lng < -180 || spot.Lng > 180 {
			fieldErrors["lng"] = "Longitude is not valid"
		}
	}
	if err := spot.ValidateName(); err != nil {
		fieldErrors["name"] = "Name must be between 2 and 50 characters"
	}
	if spot.Description == "" {
		fieldErrors["description"] = "Description is required"
	}
	if spot.Price < 0 {
		fieldErrors["price"] = "Price per day must be greater than or equal to 0"
	}

	if len(fieldErrors) > 0 {
		return fieldErrors, errors.NewAppError(errors.ErrCodeValidation, "Bad Request", nil)
	}
	return nil, nil
}

// ValidateBookingDates parses the wire dates and enforces the strict
// start-before-end input constraint. Equal or inverted ranges never reach
// the conflict checker.
func ValidateBookingDates(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(models.DateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "startDate must be a valid date", err)
	}

	end, err := time.Parse(models.DateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "endDate must be a valid date", err)
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidRange, "endDate cannot be on or before startDate", nil)
	}

	return start, end, nil
}

// ValidateReview checks review text and the stars range.
func ValidateReview(text string, stars int) error {
	if isBlank(text) {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Review text is required", nil)
	}
	if stars < 1 || stars > 5 {
		return errors.NewAppError(errors.ErrCodeInvalidStars, "Stars must be an integer from 1 to 5", nil)
	}
	return nil
}

// ValidateSignup re-checks signup fields that binding tags cannot express.
func ValidateSignup(email, username, password string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email", nil)
	}
	if len(username) < 4 {
		return errors.NewAppError(errors.ErrCodeValidation, "Username must have at least 4 characters", nil)
	}
	if isValidEmail(username) {
		return errors.NewAppError(errors.ErrCodeValidation, "Username cannot be an email", nil)
	}
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Password must have at least 6 characters", nil)
	}
	return nil
}

// SpotListFilters is the parsed form of the spot listing query string.
type SpotListFilters struct {
	Page     int
	Size     int
	MinLat   *float64
	MaxLat   *float64
	MinLng   *float64
	MaxLng   *float64
	MinPrice *float64
	MaxPrice *float64
}

// ValidateSpotListQuery parses listing filters. Out-of-range page/size fall
// back to defaults; invalid bound filters are collected as field errors.
func ValidateSpotListQuery(query map[string]string) (SpotListFilters, map[string]string) {
	filters := SpotListFilters{Page: 1, Size: 20}
	fieldErrors := map[string]string{}

	if raw, ok := query["page"]; ok && raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page >= 1 && page <= 10 {
			filters.Page = page
		}
	}
	if raw, ok := query["size"]; ok && raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size >= 1 && size <= 20 {
			filters.Size = size
		}
	}

	parseBound := func(key string, min, max float64, message string) *float64 {
		raw, ok := query[key]
		if !ok || raw == "" {
			return nil
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < min || value > max {
			fieldErrors[key] = message
			return nil
		}
		return &value
	}

	filters.MinLat = parseBound("minLat", -90, 90, "Minimum latitude is invalid")
	filters.MaxLat = parseBound("maxLat", -90, 90, "Maximum latitude is invalid")
	filters.MinLng = parseBound("minLng", -180, 180, "Minimum longitude is invalid")
	filters.MaxLng = parseBound("maxLng", -180, 180, "Maximum longitude is invalid")
	filters.MinPrice = parseBound("minPrice", 0, 1e12, "Minimum price must be greater than or equal to 0")
	filters.MaxPrice = parseBound("maxPrice", 0, 1e12, "Maximum price must be greater than or equal to 0")

	if len(fieldErrors) > 0 {
		return filters, fieldErrors
	}
	return filters, nil
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
var blankRegex = regexp.MustCompile(`^\s*$`)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isBlank(s string) bool {
	return blankRegex.MatchString(s)
}
