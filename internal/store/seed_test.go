package store

import (
	"testing"

	"github.com/startupcomply/comply/internal/models"
)

func TestFreshStoreServesSeedData(t *testing.T) {
	repos := NewRepositories(newTestKV(t))

	if got := len(repos.Checklists.GetAll()); got != 4 {
		t.Fatalf("expected 4 seeded checklists, got %d", got)
	}
	if got := len(repos.Templates.GetAll()); got != 8 {
		t.Fatalf("expected 8 seeded templates, got %d", got)
	}
	if got := len(repos.TeamMembers.GetAll()); got != 3 {
		t.Fatalf("expected 3 seeded team members, got %d", got)
	}
	if got := len(repos.Notifications.GetAll()); got != 3 {
		t.Fatalf("expected 3 seeded notifications, got %d", got)
	}
	if got := len(repos.Reports.GetAll()); got != 1 {
		t.Fatalf("expected 1 seeded report, got %d", got)
	}
}

func TestSeedDataIsNotPersistedByReads(t *testing.T) {
	kv := newTestKV(t)
	repos := NewRepositories(kv)

	// Reads must serve defaults without writing them back.
	repos.Checklists.GetAll()
	repos.Templates.GetAll()

	if stored := Read(kv, KeyChecklists, []models.Checklist(nil)); stored != nil {
		t.Fatalf("checklist seed must not be written by a read")
	}
	if stored := Read(kv, KeyTemplates, []models.Template(nil)); stored != nil {
		t.Fatalf("template seed must not be written by a read")
	}
}

func TestSeededGDPRChecklistHasCompletionMetadata(t *testing.T) {
	repos := NewRepositories(newTestKV(t))

	checklists := repos.Checklists.GetAll()
	gdpr := checklists[0]
	if gdpr.Framework != "GDPR" {
		t.Fatalf("expected the first seeded checklist to be GDPR, got %s", gdpr.Framework)
	}
	if gdpr.CompletedCount() != 2 {
		t.Fatalf("expected 2 completed GDPR items, got %d", gdpr.CompletedCount())
	}
	for _, item := range gdpr.Items {
		if item.Completed && (item.CompletedAt == nil || item.CompletedBy == "") {
			t.Fatalf("completed item %s is missing completion metadata", item.ID)
		}
		if !item.Completed && (item.CompletedAt != nil || item.CompletedBy != "") {
			t.Fatalf("open item %s carries completion metadata", item.ID)
		}
	}
}
