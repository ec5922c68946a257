package services

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/startupcomply/comply/internal/models"
)

type ChecklistStore interface {
	GetAll() []models.Checklist
	Find(id string) (models.Checklist, bool)
	Add(checklist models.Checklist)
	Update(checklist models.Checklist)
	Delete(id string)
}

// DisplayNameSource supplies the denormalized name stamped into completion
// metadata and activity entries.
type DisplayNameSource interface {
	CurrentDisplayName() string
}

type ChecklistService struct {
	checklists ChecklistStore
	activities ActivityRecorder
	viewer     DisplayNameSource
}

func NewChecklistService(checklists ChecklistStore, activities ActivityRecorder, viewer DisplayNameSource) *ChecklistService {
	return &ChecklistService{
		checklists: checklists,
		activities: activities,
		viewer:     viewer,
	}
}

type CreateChecklistInput struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Framework   string                `json:"framework"`
	Priority    string                `json:"priority"`
	DueDate     string                `json:"dueDate"`
	Items       []CreateChecklistItem `json:"items"`
}

type CreateChecklistItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Assignee    string `json:"assignee"`
	Priority    string `json:"priority"`
}

func (service *ChecklistService) List() []models.Checklist {
	return service.checklists.GetAll()
}

func (service *ChecklistService) Get(id string) (models.Checklist, bool) {
	return service.checklists.Find(id)
}

func (service *ChecklistService) Create(input CreateChecklistInput) models.Checklist {
	now := time.Now()
	checklist := models.Checklist{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Framework:   input.Framework,
		Priority:    defaultString(input.Priority, models.PriorityMedium),
		DueDate:     input.DueDate,
		Items:       make([]models.ChecklistItem, 0, len(input.Items)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, item := range input.Items {
		checklist.Items = append(checklist.Items, service.buildItem(checklist, item))
	}

	service.checklists.Add(checklist)
	service.recordActivity("Created checklist: "+checklist.Title, models.ActivityTypeChecklist)
	return checklist
}

// Update replaces the stored checklist; the repository refreshes UpdatedAt.
// Unknown ids are a silent no-op.
func (service *ChecklistService) Update(checklist models.Checklist) {
	service.checklists.Update(checklist)
}

func (service *ChecklistService) Delete(id string) {
	checklist, found := service.checklists.Find(id)
	service.checklists.Delete(id)
	if found {
		service.recordActivity("Deleted checklist: "+checklist.Title, models.ActivityTypeChecklist)
	}
}

func (service *ChecklistService) AddItem(checklistID string, input CreateChecklistItem) (models.Checklist, bool) {
	checklist, found := service.checklists.Find(checklistID)
	if !found {
		return models.Checklist{}, false
	}

	checklist.Items = append(checklist.Items, service.buildItem(checklist, input))
	service.checklists.Update(checklist)
	return service.refresh(checklistID, checklist)
}

func (service *ChecklistService) DeleteItem(checklistID string, itemID string) (models.Checklist, bool) {
	checklist, found := service.checklists.Find(checklistID)
	if !found {
		return models.Checklist{}, false
	}

	filtered := make([]models.ChecklistItem, 0, len(checklist.Items))
	for _, item := range checklist.Items {
		if item.ID != itemID {
			filtered = append(filtered, item)
		}
	}
	checklist.Items = filtered
	service.checklists.Update(checklist)
	return service.refresh(checklistID, checklist)
}

// ToggleItem flips an item's completed flag. Completing stamps CompletedAt
// and CompletedBy; reopening clears both rather than restoring prior
// values. The mutation flows through the update path so the checklist's
// UpdatedAt refreshes.
func (service *ChecklistService) ToggleItem(checklistID string, itemID string) (models.Checklist, bool) {
	checklist, found := service.checklists.Find(checklistID)
	if !found {
		return models.Checklist{}, false
	}

	itemFound := false
	for index := range checklist.Items {
		item := &checklist.Items[index]
		if item.ID != itemID {
			continue
		}
		itemFound = true

		item.Completed = !item.Completed
		if item.Completed {
			completedAt := time.Now()
			item.CompletedAt = &completedAt
			item.CompletedBy = service.viewer.CurrentDisplayName()
			service.recordActivity("Completed task: "+item.Title, models.ActivityTypeTask)
		} else {
			item.CompletedAt = nil
			item.CompletedBy = ""
			service.recordActivity("Reopened task: "+item.Title, models.ActivityTypeTask)
		}
		break
	}
	if !itemFound {
		return models.Checklist{}, false
	}

	service.checklists.Update(checklist)
	return service.refresh(checklistID, checklist)
}

// Progress is the rounded completion percentage; a checklist with no items
// sits at 0, never NaN.
func Progress(checklist models.Checklist) int {
	total := len(checklist.Items)
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(checklist.CompletedCount()) / float64(total) * 100))
}

func (service *ChecklistService) buildItem(checklist models.Checklist, input CreateChecklistItem) models.ChecklistItem {
	return models.ChecklistItem{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Assignee:    input.Assignee,
		Priority:    defaultString(input.Priority, checklist.Priority),
		Category:    checklist.Category,
		Framework:   checklist.Framework,
	}
}

// refresh re-reads the checklist so callers see the repository's UpdatedAt
// stamp.
func (service *ChecklistService) refresh(checklistID string, fallback models.Checklist) (models.Checklist, bool) {
	if stored, found := service.checklists.Find(checklistID); found {
		return stored, true
	}
	return fallback, true
}

func (service *ChecklistService) recordActivity(action string, activityType string) {
	service.activities.Add(models.Activity{
		ID:        uuid.NewString(),
		Action:    action,
		User:      service.viewer.CurrentDisplayName(),
		Timestamp: time.Now(),
		Type:      activityType,
	})
}
