package models

import "time"

// Project statuses
const (
	ProjectInProgress = "in_progress"
	ProjectFinished   = "finished"
	ProjectOnHold     = "on_hold"
)

// ValidProjectStatus reports whether s is a known project status.
func ValidProjectStatus(s string) bool {
	return s == ProjectInProgress || s == ProjectFinished || s == ProjectOnHold
}

type Project struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Customer  string    `json:"customer"`
	Manager   string    `json:"manager"` // free-text manager name, matched against user names
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateProjectRequest represents the request body for creating a project.
// TemplateID optionally pre-seeds the checklist from a template, with every
// seeded item taking BasePlannedDate.
type CreateProjectRequest struct {
	Name            string `json:"name"`
	Customer        string `json:"customer"`
	Manager         string `json:"manager"`
	TemplateID      *int   `json:"template_id,omitempty"`
	BasePlannedDate string `json:"base_planned_date,omitempty"`
}

// UpdateProjectRequest represents the request body for updating a project
type UpdateProjectRequest struct {
	Name     string `json:"name"`
	Customer string `json:"customer"`
	Manager  string `json:"manager"`
	Status   string `json:"status"`
}
