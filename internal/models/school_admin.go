package models

// LastLoginNever marks an admin that has not signed in yet.
const LastLoginNever = "Never"

// SchoolAdmin represents an administrator account attached to a school.
//
// SchoolName is a snapshot of the referenced school's name taken when the admin was last
// written. SchoolID is not checked against the school collection.
type SchoolAdmin struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Email      string `json:"email" yaml:"email"`
	Phone      string `json:"phone" yaml:"phone"`
	SchoolID   string `json:"schoolId" yaml:"schoolId"`
	SchoolName string `json:"schoolName" yaml:"schoolName"`
	Status     Status `json:"status" yaml:"status"`
	LastLogin  string `json:"lastLogin" yaml:"lastLogin"`
	CreatedAt  Date   `json:"createdAt" yaml:"createdAt"`
}
