package store

import "github.com/startupcomply/comply/internal/models"

type TemplateRepository struct {
	kv *KV
}

func NewTemplateRepository(kv *KV) *TemplateRepository {
	return &TemplateRepository{kv: kv}
}

func (repo *TemplateRepository) GetAll() []models.Template {
	return Read(repo.kv, KeyTemplates, defaultTemplates())
}

// IncrementDownloads bumps the monotonic download counter and returns the
// updated record. Unknown ids are a no-op.
func (repo *TemplateRepository) IncrementDownloads(id int) (models.Template, bool) {
	var updated models.Template
	found := false
	repo.kv.WithLock(KeyTemplates, func() {
		templates := repo.GetAll()
		for index := range templates {
			if templates[index].ID == id {
				templates[index].Downloads++
				updated = templates[index]
				found = true
				Write(repo.kv, KeyTemplates, templates)
				break
			}
		}
	})
	return updated, found
}
