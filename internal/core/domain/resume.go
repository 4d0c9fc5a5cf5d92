package domain

import (
	"errors"
	"time"
)

// Status represents the lifecycle state of a resume.
type Status string

const (
	StatusDraft  Status = "draft"
	StatusActive Status = "active"
)

var ErrResumeNotFound = errors.New("resume not found")
var ErrInvalidStatus = errors.New("invalid resume status")

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	return s == StatusDraft || s == StatusActive
}

// PersonalDetails holds the contact block of a resume.
type PersonalDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	ZipCode   string `json:"zip_code,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Website   string `json:"website,omitempty"`
	Summary   string `json:"summary"`
}

// Education is a single schooling entry.
type Education struct {
	ID           string `json:"id"`
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	GPA          string `json:"gpa,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Experience is a single employment entry.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// Skills separates hard and soft skills.
type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// Payload is the structured body of a resume.
type Payload struct {
	Personal   PersonalDetails `json:"personal"`
	Education  []Education     `json:"education"`
	Experience []Experience    `json:"experience"`
	Skills     Skills          `json:"skills"`
}

// Resume is the core aggregate root. A resume is only reachable through
// its owner's index; OwnerID never changes after creation.
type Resume struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Payload   Payload   `json:"payload"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
