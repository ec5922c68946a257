package store

import (
	"time"

	"github.com/startupcomply/comply/internal/models"
)

// Default seed collections, materialized whenever a collection is read
// before anything was persisted under its key. A fresh instance is
// demonstrable out of the box: four framework checklists, a template
// library, a small roster and a handful of notifications.

func defaultChecklists() []models.Checklist {
	now := time.Now()
	dueIn := func(days int) string {
		return now.AddDate(0, 0, days).Format(models.DueDateLayout)
	}
	completedAt := func(daysAgo int) *time.Time {
		completed := now.AddDate(0, 0, -daysAgo)
		return &completed
	}

	return []models.Checklist{
		{
			ID:          "1",
			Title:       "GDPR Compliance Checklist",
			Description: "Complete guide to GDPR compliance requirements",
			Category:    "Privacy",
			Framework:   "GDPR",
			Priority:    models.PriorityHigh,
			DueDate:     dueIn(30),
			CreatedAt:   now,
			UpdatedAt:   now,
			Items: []models.ChecklistItem{
				{
					ID:          "1-1",
					Title:       "Conduct Data Audit",
					Description: "Map all personal data processing activities",
					Completed:   true,
					Priority:    models.PriorityHigh,
					Category:    "Privacy",
					Framework:   "GDPR",
					CompletedAt: completedAt(1),
					CompletedBy: "Legal Team",
				},
				{
					ID:          "1-2",
					Title:       "Update Privacy Policy",
					Description: "Ensure privacy policy meets GDPR requirements",
					Completed:   true,
					Priority:    models.PriorityHigh,
					Category:    "Privacy",
					Framework:   "GDPR",
					CompletedAt: completedAt(2),
					CompletedBy: "Legal Team",
				},
				{
					ID:          "1-3",
					Title:       "Implement Data Subject Rights",
					Description: "Set up processes for data subject requests",
					Completed:   false,
					DueDate:     dueIn(15),
					Priority:    models.PriorityHigh,
					Category:    "Privacy",
					Framework:   "GDPR",
					Assignee:    "IT Team",
				},
				{
					ID:          "1-4",
					Title:       "Data Protection Impact Assessment",
					Description: "Conduct DPIA for high-risk processing",
					Completed:   false,
					DueDate:     dueIn(20),
					Priority:    models.PriorityMedium,
					Category:    "Privacy",
					Framework:   "GDPR",
					Assignee:    "Legal Team",
				},
				{
					ID:          "1-5",
					Title:       "Staff Training",
					Description: "Train staff on GDPR requirements",
					Completed:   false,
					DueDate:     dueIn(25),
					Priority:    models.PriorityMedium,
					Category:    "Privacy",
					Framework:   "GDPR",
					Assignee:    "HR Team",
				},
			},
		},
		{
			ID:          "2",
			Title:       "SOC 2 Type II Preparation",
			Description: "Security controls and audit preparation",
			Category:    "Security",
			Framework:   "SOC 2",
			Priority:    models.PriorityMedium,
			DueDate:     dueIn(60),
			CreatedAt:   now,
			UpdatedAt:   now,
			Items: []models.ChecklistItem{
				{
					ID:          "2-1",
					Title:       "Security Policy Documentation",
					Description: "Document all security policies and procedures",
					Completed:   false,
					DueDate:     dueIn(30),
					Priority:    models.PriorityHigh,
					Category:    "Security",
					Framework:   "SOC 2",
					Assignee:    "IT Security",
				},
				{
					ID:          "2-2",
					Title:       "Access Control Review",
					Description: "Review and document access controls",
					Completed:   false,
					DueDate:     dueIn(45),
					Priority:    models.PriorityHigh,
					Category:    "Security",
					Framework:   "SOC 2",
					Assignee:    "IT Security",
				},
			},
		},
		{
			ID:          "3",
			Title:       "ISO 27001 Implementation",
			Description: "Information Security Management System implementation",
			Category:    "Security",
			Framework:   "ISO 27001",
			Priority:    models.PriorityMedium,
			DueDate:     dueIn(90),
			CreatedAt:   now,
			UpdatedAt:   now,
			Items: []models.ChecklistItem{
				{
					ID:          "3-1",
					Title:       "Risk Assessment",
					Description: "Conduct comprehensive information security risk assessment",
					Completed:   false,
					DueDate:     dueIn(30),
					Priority:    models.PriorityHigh,
					Category:    "Security",
					Framework:   "ISO 27001",
					Assignee:    "Security Team",
				},
				{
					ID:          "3-2",
					Title:       "Security Controls Implementation",
					Description: "Implement required security controls from Annex A",
					Completed:   false,
					DueDate:     dueIn(60),
					Priority:    models.PriorityHigh,
					Category:    "Security",
					Framework:   "ISO 27001",
					Assignee:    "IT Team",
				},
			},
		},
		{
			ID:          "4",
			Title:       "HIPAA Compliance Assessment",
			Description: "Healthcare data protection compliance review",
			Category:    "Healthcare",
			Framework:   "HIPAA",
			Priority:    models.PriorityHigh,
			DueDate:     dueIn(45),
			CreatedAt:   now,
			UpdatedAt:   now,
			Items: []models.ChecklistItem{
				{
					ID:          "4-1",
					Title:       "PHI Inventory",
					Description: "Identify and catalog all Protected Health Information",
					Completed:   false,
					DueDate:     dueIn(15),
					Priority:    models.PriorityHigh,
					Category:    "Healthcare",
					Framework:   "HIPAA",
					Assignee:    "Compliance Team",
				},
				{
					ID:          "4-2",
					Title:       "Business Associate Agreements",
					Description: "Review and update all BAAs with vendors",
					Completed:   false,
					DueDate:     dueIn(30),
					Priority:    models.PriorityMedium,
					Category:    "Healthcare",
					Framework:   "HIPAA",
					Assignee:    "Legal Team",
				},
			},
		},
	}
}

func defaultTemplates() []models.Template {
	now := time.Now()
	updatedDaysAgo := func(days int) string {
		return now.AddDate(0, 0, -days).Format(models.DueDateLayout)
	}

	return []models.Template{
		{
			ID:          1,
			Title:       "Privacy Policy Template",
			Description: "GDPR-compliant privacy policy template for websites",
			Category:    "Privacy",
			Framework:   "GDPR",
			Format:      "DOC",
			Size:        "45 KB",
			Downloads:   2340,
			Rating:      4.8,
			LastUpdated: updatedDaysAgo(5),
		},
		{
			ID:          2,
			Title:       "Data Processing Agreement",
			Description: "Standard DPA template for third-party processors",
			Category:    "Privacy",
			Framework:   "GDPR",
			Format:      "PDF",
			Size:        "120 KB",
			Downloads:   1890,
			Rating:      4.9,
			LastUpdated: updatedDaysAgo(7),
		},
		{
			ID:          3,
			Title:       "SOC 2 Audit Checklist",
			Description: "Comprehensive checklist for SOC 2 Type II audits",
			Category:    "Security",
			Framework:   "SOC 2",
			Format:      "XLSX",
			Size:        "250 KB",
			Downloads:   1560,
			Rating:      4.7,
			LastUpdated: updatedDaysAgo(10),
		},
		{
			ID:          4,
			Title:       "Risk Assessment Template",
			Description: "ISO 27001 compliant risk assessment framework",
			Category:    "Security",
			Framework:   "ISO 27001",
			Format:      "DOC",
			Size:        "180 KB",
			Downloads:   2100,
			Rating:      4.6,
			LastUpdated: updatedDaysAgo(3),
		},
		{
			ID:          5,
			Title:       "Incident Response Plan",
			Description: "Comprehensive incident response and recovery plan",
			Category:    "Security",
			Framework:   "Multiple",
			Format:      "PDF",
			Size:        "320 KB",
			Downloads:   1750,
			Rating:      4.8,
			LastUpdated: updatedDaysAgo(12),
		},
		{
			ID:          6,
			Title:       "HIPAA Risk Analysis",
			Description: "Healthcare risk analysis template for HIPAA compliance",
			Category:    "Healthcare",
			Framework:   "HIPAA",
			Format:      "XLSX",
			Size:        "200 KB",
			Downloads:   980,
			Rating:      4.9,
			LastUpdated: updatedDaysAgo(8),
		},
		{
			ID:          7,
			Title:       "Employee Handbook Template",
			Description: "Comprehensive employee handbook with compliance sections",
			Category:    "HR",
			Framework:   "Multiple",
			Format:      "DOC",
			Size:        "450 KB",
			Downloads:   1200,
			Rating:      4.5,
			LastUpdated: updatedDaysAgo(6),
		},
		{
			ID:          8,
			Title:       "Vendor Assessment Questionnaire",
			Description: "Security and compliance assessment for third-party vendors",
			Category:    "Security",
			Framework:   "Multiple",
			Format:      "XLSX",
			Size:        "85 KB",
			Downloads:   890,
			Rating:      4.7,
			LastUpdated: updatedDaysAgo(4),
		},
	}
}

func defaultTeamMembers() []models.TeamMember {
	now := time.Now()

	return []models.TeamMember{
		{
			ID:          "1",
			FirstName:   "Demo",
			LastName:    "User",
			Email:       "demo@startupcomply.com",
			Role:        models.RoleAdmin,
			Department:  "Legal",
			JobTitle:    "Compliance Officer",
			Status:      models.MemberStatusActive,
			JoinedAt:    now.AddDate(0, 0, -90),
			LastActive:  now,
			Permissions: models.PermissionsForRole(models.RoleAdmin),
		},
		{
			ID:          "2",
			FirstName:   "Sarah",
			LastName:    "Johnson",
			Email:       "sarah.johnson@startupcomply.com",
			Role:        models.RoleManager,
			Department:  "IT",
			JobTitle:    "IT Security Manager",
			Status:      models.MemberStatusActive,
			JoinedAt:    now.AddDate(0, 0, -60),
			LastActive:  now.Add(-2 * time.Hour),
			Permissions: models.PermissionsForRole(models.RoleManager),
		},
		{
			ID:          "3",
			FirstName:   "Michael",
			LastName:    "Chen",
			Email:       "michael.chen@startupcomply.com",
			Role:        models.RoleMember,
			Department:  "HR",
			JobTitle:    "HR Specialist",
			Status:      models.MemberStatusActive,
			JoinedAt:    now.AddDate(0, 0, -30),
			LastActive:  now.Add(-24 * time.Hour),
			Permissions: models.PermissionsForRole(models.RoleMember),
		},
	}
}

func defaultNotifications() []models.Notification {
	now := time.Now()

	return []models.Notification{
		{
			ID:        "1",
			Title:     "GDPR Task Due Soon",
			Message:   "Data Protection Impact Assessment is due in 3 days",
			Type:      models.NotificationWarning,
			Read:      false,
			CreatedAt: now.Add(-2 * time.Hour),
			ActionURL: "/checklists/1",
		},
		{
			ID:        "2",
			Title:     "New Template Available",
			Message:   "CCPA Compliance Template has been added to the library",
			Type:      models.NotificationInfo,
			Read:      false,
			CreatedAt: now.Add(-6 * time.Hour),
			ActionURL: "/templates",
		},
		{
			ID:        "3",
			Title:     "Task Completed",
			Message:   "Privacy Policy Update has been marked as complete",
			Type:      models.NotificationSuccess,
			Read:      true,
			CreatedAt: now.Add(-24 * time.Hour),
			ActionURL: "/checklists/1",
		},
	}
}

func defaultReports() []models.Report {
	return []models.Report{
		{
			ID:          "1",
			Title:       "Monthly Compliance Report",
			Type:        models.ReportTypeCompliance,
			GeneratedAt: time.Now().AddDate(0, 0, -7),
			GeneratedBy: "Demo User",
			Status:      models.ReportStatusCompleted,
			Data: models.ComplianceReportData{
				TotalChecklists:     4,
				CompletedChecklists: 0,
				OverdueTasks:        0,
				ComplianceScore:     25,
			},
			Filters: map[string]any{"dateRange": "last30days"},
		},
	}
}
