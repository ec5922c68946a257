package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/startupcomply/comply/internal/models"
)

type TemplateStore interface {
	GetAll() []models.Template
	IncrementDownloads(id int) (models.Template, bool)
}

type TemplateService struct {
	templates  TemplateStore
	activities ActivityRecorder
	viewer     DisplayNameSource
}

func NewTemplateService(templates TemplateStore, activities ActivityRecorder, viewer DisplayNameSource) *TemplateService {
	return &TemplateService{
		templates:  templates,
		activities: activities,
		viewer:     viewer,
	}
}

func (service *TemplateService) List() []models.Template {
	return service.templates.GetAll()
}

// RecordDownload bumps the template's download counter and logs the
// download. Unknown ids are a no-op returning false.
func (service *TemplateService) RecordDownload(id int) (models.Template, bool) {
	template, found := service.templates.IncrementDownloads(id)
	if !found {
		return models.Template{}, false
	}

	service.activities.Add(models.Activity{
		ID:        uuid.NewString(),
		Action:    "Downloaded template: " + template.Title,
		User:      service.viewer.CurrentDisplayName(),
		Timestamp: time.Now(),
		Type:      models.ActivityTypeTemplate,
	})
	return template, true
}
