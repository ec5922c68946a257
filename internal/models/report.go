package models

import "time"

const (
	ReportStatusGenerating = "generating"
	ReportStatusCompleted  = "completed"
	ReportStatusFailed     = "failed"
)

const (
	ReportTypeCompliance = "compliance"
	ReportTypeActivity   = "activity"
)

// Report snapshots an aggregate at generation time. Data's shape depends on
// Type; unrecognized types carry an empty object.
type Report struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Type        string         `json:"type"`
	GeneratedAt time.Time      `json:"generatedAt"`
	GeneratedBy string         `json:"generatedBy"`
	Status      string         `json:"status"`
	Data        any            `json:"data"`
	Filters     map[string]any `json:"filters"`
}

type ComplianceReportData struct {
	TotalChecklists     int `json:"totalChecklists"`
	CompletedChecklists int `json:"completedChecklists"`
	OverdueTasks        int `json:"overdueTasks"`
	ComplianceScore     int `json:"complianceScore"`
}

type ActivityReportData struct {
	TotalActivities  int            `json:"totalActivities"`
	RecentActivities []Activity     `json:"recentActivities"`
	ActivityByType   map[string]int `json:"activityByType"`
}
