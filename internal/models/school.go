package models

// Status is the two-value lifecycle flag shared by schools and school admins.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// School represents a tenant school managed from the dashboard.
type School struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Address       string `json:"address" yaml:"address"`
	City          string `json:"city" yaml:"city"`
	Phone         string `json:"phone" yaml:"phone"`
	Email         string `json:"email" yaml:"email"`
	StudentsCount int    `json:"studentsCount" yaml:"studentsCount"`
	TeachersCount int    `json:"teachersCount" yaml:"teachersCount"`
	Status        Status `json:"status" yaml:"status"`
	CreatedAt     Date   `json:"createdAt" yaml:"createdAt"`
}
