package models

import "time"

// Template is a named, ordered set of inspection-item texts used to
// pre-populate a new project's checklist.
type Template struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Items     []string  `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TemplateRequest represents the create/update body for a template
type TemplateRequest struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// KnowledgeBaseEntry is a reusable inspection-item text grouped by category.
type KnowledgeBaseEntry struct {
	ID        int       `json:"id"`
	Category  string    `json:"category"`
	Item      string    `json:"item"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// KnowledgeBaseRequest represents the create/update body for an entry
type KnowledgeBaseRequest struct {
	Category string `json:"category"`
	Item     string `json:"item"`
}
