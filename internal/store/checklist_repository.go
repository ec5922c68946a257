package store

import (
	"time"

	"github.com/startupcomply/comply/internal/models"
)

type ChecklistRepository struct {
	kv *KV
}

func NewChecklistRepository(kv *KV) *ChecklistRepository {
	return &ChecklistRepository{kv: kv}
}

func (repo *ChecklistRepository) GetAll() []models.Checklist {
	return Read(repo.kv, KeyChecklists, defaultChecklists())
}

func (repo *ChecklistRepository) Find(id string) (models.Checklist, bool) {
	for _, checklist := range repo.GetAll() {
		if checklist.ID == id {
			return checklist, true
		}
	}
	return models.Checklist{}, false
}

func (repo *ChecklistRepository) Add(checklist models.Checklist) {
	repo.kv.WithLock(KeyChecklists, func() {
		checklists := repo.GetAll()
		checklists = append(checklists, checklist)
		Write(repo.kv, KeyChecklists, checklists)
	})
}

// Update replaces the checklist with a matching id and stamps UpdatedAt.
// Every item mutation flows through here, so the stamp is refreshed on each
// of them. Unknown ids are a no-op.
func (repo *ChecklistRepository) Update(checklist models.Checklist) {
	repo.kv.WithLock(KeyChecklists, func() {
		checklists := repo.GetAll()
		for index := range checklists {
			if checklists[index].ID == checklist.ID {
				checklist.UpdatedAt = time.Now()
				checklists[index] = checklist
				Write(repo.kv, KeyChecklists, checklists)
				break
			}
		}
	})
}

func (repo *ChecklistRepository) Delete(id string) {
	repo.kv.WithLock(KeyChecklists, func() {
		checklists := repo.GetAll()
		filtered := make([]models.Checklist, 0, len(checklists))
		for _, checklist := range checklists {
			if checklist.ID != id {
				filtered = append(filtered, checklist)
			}
		}
		Write(repo.kv, KeyChecklists, filtered)
	})
}
