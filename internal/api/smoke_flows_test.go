package api

import (
	"net/http"
	"testing"
)

func TestHealthEndpointIsPublic(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/healthz", nil, ""), http.StatusOK)
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", body["status"])
	}
}

func TestChecklistFlowSmoke(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	cookie := signupTestUser(t, app, "smoke@startupcomply.com")

	listBody := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/checklists", nil, cookie), http.StatusOK)
	checklists := responseList(t, listBody, "checklists")
	if len(checklists) != 4 {
		t.Fatalf("expected 4 seeded checklists, got %d", len(checklists))
	}
	first, _ := checklists[0].(map[string]any)
	if _, ok := first["progress"]; !ok {
		t.Fatalf("checklist payloads must carry a progress field")
	}

	// Completing an open item on the seeded GDPR checklist moves it from
	// 2 of 5 to 3 of 5 done.
	toggled := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/checklists/1/items/1-3/toggle", nil, cookie), http.StatusOK)
	if toggled["progress"] != float64(60) {
		t.Fatalf("expected progress 60 after the toggle, got %v", toggled["progress"])
	}
	items := responseList(t, toggled, "items")
	item, _ := items[2].(map[string]any)
	if item["completed"] != true || item["completedBy"] != "Jane Doe" {
		t.Fatalf("expected the toggled item to carry completion metadata, got %v", item)
	}

	created := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/checklists", map[string]any{
		"title":     "Vendor security review",
		"framework": "SOC 2",
		"items":     []map[string]any{{"title": "Collect vendor list"}},
	}, cookie), http.StatusCreated)
	createdID, _ := created["id"].(string)
	if createdID == "" {
		t.Fatalf("expected a generated checklist id")
	}

	doJSON(t, app, jsonRequest(t, http.MethodDelete, "/api/checklists/"+createdID, nil, cookie), http.StatusOK)
	doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/checklists/"+createdID, nil, cookie), http.StatusNotFound)

	// The flow above leaves a visible activity trail.
	activityBody := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/activities", nil, cookie), http.StatusOK)
	if len(responseList(t, activityBody, "activities")) == 0 {
		t.Fatalf("expected recorded activities after the flow")
	}
}

func TestTemplateDownloadSmoke(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	cookie := signupTestUser(t, app, "smoke@startupcomply.com")

	listBody := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/templates", nil, cookie), http.StatusOK)
	templates := responseList(t, listBody, "templates")
	if len(templates) != 8 {
		t.Fatalf("expected 8 seeded templates, got %d", len(templates))
	}
	first, _ := templates[0].(map[string]any)
	before, _ := first["downloads"].(float64)

	downloadBody := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/templates/1/download", nil, cookie), http.StatusOK)
	template, _ := downloadBody["template"].(map[string]any)
	if template == nil || template["downloads"] != before+1 {
		t.Fatalf("expected the download counter to move from %v, got %v", before, downloadBody["template"])
	}

	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/templates/999/download", nil, cookie), http.StatusNotFound)
}

func TestTeamFlowSmoke(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	cookie := signupTestUser(t, app, "smoke@startupcomply.com")

	invited := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/team", map[string]any{
		"firstName": "Dana",
		"lastName":  "Reyes",
		"email":     "dana@startupcomply.com",
		"role":      "Manager",
	}, cookie), http.StatusCreated)
	member, _ := invited["member"].(map[string]any)
	if member == nil || member["status"] != "pending" {
		t.Fatalf("expected a pending invitation, got %v", invited["member"])
	}

	listBody := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/team", nil, cookie), http.StatusOK)
	if got := len(responseList(t, listBody, "members")); got != 4 {
		t.Fatalf("expected 3 seeded members plus the invite, got %d", got)
	}
}

func TestNotificationFlowSmoke(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	cookie := signupTestUser(t, app, "smoke@startupcomply.com")

	listBody := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/notifications", nil, cookie), http.StatusOK)
	notifications := responseList(t, listBody, "notifications")
	if len(notifications) != 3 {
		t.Fatalf("expected 3 seeded notifications, got %d", len(notifications))
	}

	doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/notifications/read-all", nil, cookie), http.StatusOK)

	after := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/notifications", nil, cookie), http.StatusOK)
	if after["unreadCount"] != float64(0) {
		t.Fatalf("expected 0 unread after read-all, got %v", after["unreadCount"])
	}
}

func TestReportGenerationSmoke(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	cookie := signupTestUser(t, app, "smoke@startupcomply.com")

	generated := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/reports/generate", map[string]any{
		"type": "compliance",
	}, cookie), http.StatusCreated)
	report, _ := generated["report"].(map[string]any)
	if report == nil || report["status"] != "completed" {
		t.Fatalf("expected a completed report, got %v", generated["report"])
	}
	data, _ := report["data"].(map[string]any)
	if data == nil || data["totalChecklists"] != float64(4) {
		t.Fatalf("expected the seeded checklists in the aggregate, got %v", report["data"])
	}
	// 2 of the 11 seeded items are complete.
	if data["complianceScore"] != float64(18) {
		t.Fatalf("expected a compliance score of 18, got %v", data["complianceScore"])
	}

	listBody := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/reports", nil, cookie), http.StatusOK)
	reports := responseList(t, listBody, "reports")
	if len(reports) != 2 {
		t.Fatalf("expected the seed report plus the generated one, got %d", len(reports))
	}
	newest, _ := reports[0].(map[string]any)
	if newest["id"] != report["id"] {
		t.Fatalf("expected the generated report at the head of the log")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	cookie := signupTestUser(t, app, "smoke@startupcomply.com")

	settings := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/settings/notifications", nil, cookie), http.StatusOK)
	if settings["emailNotifications"] != true {
		t.Fatalf("expected email notifications on by default, got %v", settings["emailNotifications"])
	}

	settings["emailNotifications"] = false
	doJSON(t, app, jsonRequest(t, http.MethodPut, "/api/settings/notifications", settings, cookie), http.StatusOK)

	stored := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/settings/notifications", nil, cookie), http.StatusOK)
	if stored["emailNotifications"] != false {
		t.Fatalf("expected the update to stick, got %v", stored["emailNotifications"])
	}
}
