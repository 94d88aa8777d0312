package db

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered applicant account
type User struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	ApplicationType string    `json:"application_type"`
	PasswordHash    string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MedicalSchool is one catalog entry for the school recommender
type MedicalSchool struct {
	ID                uuid.UUID `json:"id"`
	SchoolName        string    `json:"school_name"`
	DegreeType        string    `json:"degree_type"`        // MD or DO
	ApplicationSystem string    `json:"application_system"` // AMCAS, AACOMAS, TMDSAS
	MissionStatement  string    `json:"mission_statement"`
	PrimaryCategory   string    `json:"primary_category"` // archetype name, e.g. "The Investigator"
	CreatedAt         time.Time `json:"created_at"`
}

// SchoolFilters holds optional filters for listing medical schools
type SchoolFilters struct {
	Search string // substring match on school name
	Degree string // MD or DO
	System string // AMCAS, AACOMAS, TMDSAS
	Limit  int
}
