package store

import "github.com/startupcomply/comply/internal/models"

type ActivityRepository struct {
	kv *KV
}

func NewActivityRepository(kv *KV) *ActivityRepository {
	return &ActivityRepository{kv: kv}
}

// GetAll returns the log newest-first.
func (repo *ActivityRepository) GetAll() []models.Activity {
	return Read(repo.kv, KeyActivities, []models.Activity{})
}

// Add prepends the entry and evicts the oldest once the cap is exceeded.
func (repo *ActivityRepository) Add(activity models.Activity) {
	repo.kv.WithLock(KeyActivities, func() {
		activities := repo.GetAll()
		activities = append([]models.Activity{activity}, activities...)
		if len(activities) > ActivityLogCap {
			activities = activities[:ActivityLogCap]
		}
		Write(repo.kv, KeyActivities, activities)
	})
}
