package jobs

import (
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// RatingReconciler recomputes every spot's derived rating columns.
type RatingReconciler interface {
	ReconcileRatings() (int, error)
}

var ratingReconciler RatingReconciler

// SetRatingReconciler installs the implementation used by the nightly job.
func SetRatingReconciler(r RatingReconciler) {
	ratingReconciler = r
}

// InitCronJobs registers the nightly rating reconciliation, running at
// midnight. Repairs any drift between stored aggregates and reviews.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		if ratingReconciler == nil {
			log.Printf("rating reconciler not configured, skipping run")
			return
		}
		updated, err := ratingReconciler.ReconcileRatings()
		if err != nil {
			log.Printf("rating reconciliation failed after %d spots: %v", updated, err)
			return
		}
		log.Printf("rating reconciliation completed, %d spots updated", updated)
		if m != nil {
			_ = m.Broadcast([]byte("spot ratings reconciled"))
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
