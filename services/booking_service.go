package services

import (
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/kenandcrys/auth-me/errors"
	"github.com/kenandcrys/auth-me/models"
)

// FindConflict scans existing bookings for one whose date range overlaps
// [start, end] under inclusive-endpoint semantics: a conflict exists when
// existing.StartDate <= end AND existing.EndDate >= start. This covers the
// case of a proposed range fully containing an existing booking, which a
// check of the endpoints alone would miss. excludeID skips a booking when
// re-validating an update in place; zero excludes nothing.
func FindConflict(existing []models.Booking, start, end time.Time, excludeID uint) *models.Booking {
	for i := range existing {
		b := &existing[i]
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if !b.StartDate.After(end) && !b.EndDate.Before(start) {
			return b
		}
	}
	return nil
}

// CheckBookingConflict fetches the spot's bookings and runs FindConflict
// over them. Read-only; callers persist after a clean check.
func CheckBookingConflict(db *gorm.DB, spotID uint, start, end time.Time, excludeID uint) (*models.Booking, error) {
	var bookings []models.Booking
	if err := db.Where("spot_id = ?", spotID).Find(&bookings).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load bookings", err)
	}
	return FindConflict(bookings, start, end, excludeID), nil
}

var conflictFieldErrors = map[string]string{
	"startDate": "Start date conflicts with an existing booking",
	"endDate":   "End date conflicts with an existing booking",
}

// ConflictFieldErrors is the per-field error map attached to conflict
// rejections.
func ConflictFieldErrors() map[string]string {
	out := make(map[string]string, len(conflictFieldErrors))
	for k, v := range conflictFieldErrors {
		out[k] = v
	}
	return out
}

func newConflictError() error {
	return errors.NewAppError(errors.ErrCodeBookingConflict,
		"Sorry, this spot is already booked for the specified dates", errors.ErrBookingConflict)
}

// serializableTx holds the isolation level for the booking write path.
// At READ COMMITTED two concurrent bookings can both scan, both see no
// conflict, and both commit; SERIALIZABLE makes Postgres abort one of
// them with a serialization failure instead.
var serializableTx = &sql.TxOptions{Isolation: sql.LevelSerializable}

// BookSpot re-runs the conflict check and inserts the booking inside a
// serializable transaction, closing the check-then-insert race between
// concurrent requests for the same spot. The losing transaction of a
// serialization abort is surfaced as a booking conflict.
func BookSpot(db *gorm.DB, booking *models.Booking) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		conflict, err := CheckBookingConflict(tx, booking.SpotID, booking.StartDate, booking.EndDate, 0)
		if err != nil {
			return err
		}
		if conflict != nil {
			return newConflictError()
		}
		if err := tx.Create(booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "failed to create booking", err)
		}
		return nil
	}, serializableTx)
	if isSerializationFailure(err) {
		return newConflictError()
	}
	return err
}

// RescheduleBooking moves an existing booking to a new range, re-checked
// against the spot's other bookings in the same serializable transaction
// as the write.
func RescheduleBooking(db *gorm.DB, booking *models.Booking, start, end time.Time) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		conflict, err := CheckBookingConflict(tx, booking.SpotID, start, end, booking.ID)
		if err != nil {
			return err
		}
		if conflict != nil {
			return newConflictError()
		}
		booking.StartDate = start
		booking.EndDate = end
		if err := tx.Save(booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "failed to update booking", err)
		}
		return nil
	}, serializableTx)
	if isSerializationFailure(err) {
		return newConflictError()
	}
	return err
}

// IsConflictError reports whether err came out of the conflict checker.
func IsConflictError(err error) bool {
	appErr := errors.GetAppError(err)
	return appErr != nil && appErr.Code == errors.ErrCodeBookingConflict
}
