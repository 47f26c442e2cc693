package services

import (
	"gorm.io/gorm"

	"github.com/kenandcrys/auth-me/services/logger"
)

// RatingReconcilerAdapter satisfies jobs.RatingReconciler over a live
// database handle.
type RatingReconcilerAdapter struct {
	db  *gorm.DB
	log logger.Logger
}

func NewRatingReconciler(db *gorm.DB, log logger.Logger) *RatingReconcilerAdapter {
	return &RatingReconcilerAdapter{db: db, log: log}
}

func (a *RatingReconcilerAdapter) ReconcileRatings() (int, error) {
	updated, err := ReconcileAllRatings(a.db)
	if err != nil {
		a.log.Error("rating reconciliation stopped: %v", err)
		return updated, err
	}
	a.log.Info("reconciled ratings for %d spots", updated)
	return updated, nil
}
