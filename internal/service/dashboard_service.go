package service

import (
	"github.com/noah-isme/sma-adp-dashboard/internal/models"
)

type schoolLister interface {
	List(search string) []models.School
}

type adminLister interface {
	List(search string) []models.SchoolAdmin
}

// DefaultRecentLimit is how many records the overview lists per collection.
const DefaultRecentLimit = 4

// DashboardService composes the dashboard home from the live entity collections.
type DashboardService struct {
	schools     schoolLister
	admins      adminLister
	recentLimit int
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(schools schoolLister, admins adminLister, recentLimit int) *DashboardService {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &DashboardService{schools: schools, admins: admins, recentLimit: recentLimit}
}

// Overview returns totals and the first records of each collection.
func (s *DashboardService) Overview() models.DashboardOverview {
	schools := s.schools.List("")
	admins := s.admins.List("")

	overview := models.DashboardOverview{
		TotalSchools:  len(schools),
		TotalAdmins:   len(admins),
		RecentSchools: head(schools, s.recentLimit),
		RecentAdmins:  head(admins, s.recentLimit),
	}
	for _, school := range schools {
		overview.TotalStudents += school.StudentsCount
		overview.TotalTeachers += school.TeachersCount
		if school.Status == models.StatusActive {
			overview.ActiveSchools++
		}
	}
	return overview
}

func head[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
