// Package sweep close job postings that have passed their deadline.
package sweep

import (
	"time"

	"github.com/sirupsen/logrus"

	"talentbridge-backend/internal/database"
	"talentbridge-backend/internal/model"
)

// DeactivateExpiredJobs flips is_active off for every active job whose deadline
// is strictly in the past. One bulk update, idempotent, safe to run alongside
// request traffic. Returns the number of jobs closed.
func DeactivateExpiredJobs(db *database.DBinstanceStruct) (int64, error) {
	result := db.Model(&model.Job{}).
		Where("is_active = ? AND deadline < ?", true, time.Now()).
		Update("is_active", false)

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// Run executes the sweep on every tick until stop is closed.
func Run(db *database.DBinstanceStruct, interval time.Duration, stop <-chan struct{}) {
	log := logrus.WithField("component", "sweeper")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			count, err := DeactivateExpiredJobs(db)
			if err != nil {
				log.WithError(err).Error("deactivation sweep failed")
				continue
			}
			if count > 0 {
				log.WithField("closed", count).Info("closed expired jobs")
			}
		case <-stop:
			return
		}
	}
}
