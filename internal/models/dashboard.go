package models

// DashboardOverview aggregates the headline numbers shown on the dashboard home.
type DashboardOverview struct {
	TotalSchools  int           `json:"totalSchools"`
	TotalAdmins   int           `json:"totalAdmins"`
	TotalStudents int           `json:"totalStudents"`
	TotalTeachers int           `json:"totalTeachers"`
	ActiveSchools int           `json:"activeSchools"`
	RecentSchools []School      `json:"recentSchools"`
	RecentAdmins  []SchoolAdmin `json:"recentAdmins"`
}
