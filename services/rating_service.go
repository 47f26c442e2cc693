package services

import (
	"math"

	"gorm.io/gorm"

	"github.com/kenandcrys/auth-me/errors"
	"github.com/kenandcrys/auth-me/models"
)

// ComputeRating returns the arithmetic mean of the stars rounded to one
// decimal place, and the review count. An empty slice yields (0, 0).
func ComputeRating(stars []int) (float64, int) {
	if len(stars) == 0 {
		return 0, 0
	}

	total := 0
	for _, s := range stars {
		total += s
	}

	average := float64(total) / float64(len(stars))
	return math.Round(average*10) / 10, len(stars)
}

// UpdateSpotRating recomputes a spot's avgRating and numReviews from its
// reviews and persists both derived columns. Runs after every review
// create, update and delete, and nightly from the reconciliation job.
func UpdateSpotRating(db *gorm.DB, spotID uint) (float64, int, error) {
	var reviews []models.Review
	if err := db.Where("spot_id = ?", spotID).Find(&reviews).Error; err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to load reviews", err)
	}

	stars := make([]int, 0, len(reviews))
	for _, r := range reviews {
		stars = append(stars, r.Stars)
	}

	average, count := ComputeRating(stars)

	if err := db.Model(&models.Spot{}).
		Where("id = ?", spotID).
		Updates(map[string]interface{}{
			"avg_rating":  average,
			"num_reviews": count,
		}).Error; err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to update spot rating", err)
	}

	return average, count, nil
}

// ReconcileAllRatings recomputes the derived rating columns for every
// spot. Used by the nightly cron job to repair any drift.
func ReconcileAllRatings(db *gorm.DB) (int, error) {
	var spotIDs []uint
	if err := db.Model(&models.Spot{}).Pluck("id", &spotIDs).Error; err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "failed to list spots", err)
	}

	updated := 0
	for _, id := range spotIDs {
		if _, _, err := UpdateSpotRating(db, id); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
