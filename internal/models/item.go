package models

import (
	"time"

	"qsplan-backend/internal/timeutil"
)

// ItemStatus is the approval state of an inspection item
type ItemStatus string

const (
	StatusRejected ItemStatus = "rejected"
	StatusPending  ItemStatus = "pending"
	StatusApproved ItemStatus = "approved"
)

// ValidStatus reports whether s is a known item status.
func ValidStatus(s ItemStatus) bool {
	return s == StatusRejected || s == StatusPending || s == StatusApproved
}

// FileRef is a staged upload committed to an item as a document or attachment.
type FileRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// InspectionItem is one checklist row in a project's quality-control plan.
//
// Status is one-way gated: a manager may only push rejected -> pending; only
// an admin/auditor may resolve pending -> approved or push any state back to
// rejected. Approval stamps ClosedDate and Reviewer, rejection clears
// ClosedDate and stamps Reviewer.
type InspectionItem struct {
	Key         int        `json:"key"`
	ProjectID   int        `json:"project_id"`
	Item        string     `json:"item"`
	Action      string     `json:"action"`
	Author      string     `json:"author"`
	Reviewer    string     `json:"reviewer"`
	PlannedDate string     `json:"planned_date"` // ISO YYYY-MM-DD
	ClosedDate  string     `json:"closed_date"`  // ISO YYYY-MM-DD, empty until approved
	Documents   []FileRef  `json:"documents"`
	Status      ItemStatus `json:"status"`
	Comment     string     `json:"comment"`
	Attachments []FileRef  `json:"attachments"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewInspectionItem creates an item in its initial state: rejected, no
// reviewer, no closed date.
func NewInspectionItem(projectID int, text, plannedDate string) *InspectionItem {
	now := time.Now()
	return &InspectionItem{
		ProjectID:   projectID,
		Item:        text,
		PlannedDate: plannedDate,
		Status:      StatusRejected,
		Documents:   []FileRef{},
		Attachments: []FileRef{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SubmitForReview moves a rejected item to pending. Manager action; no other
// field changes.
func (i *InspectionItem) SubmitForReview(actor *User) error {
	if !PermissionsFor(actor.Role).CanSubmitForReview {
		return ErrForbidden
	}
	if i.Status != StatusRejected {
		return ErrInvalidTransition
	}
	i.Status = StatusPending
	i.UpdatedAt = time.Now()
	return nil
}

// Approve resolves a pending item. Stamps the closed date with the acting
// day and records the reviewer.
func (i *InspectionItem) Approve(actor *User, now time.Time) error {
	if !PermissionsFor(actor.Role).CanResolveReview {
		return ErrForbidden
	}
	if i.Status != StatusPending {
		return ErrInvalidTransition
	}
	i.Status = StatusApproved
	i.ClosedDate = timeutil.FormatDate(now)
	i.Reviewer = actor.Name
	i.UpdatedAt = time.Now()
	return nil
}

// Reject pushes an item back to rejected from any state, clearing the closed
// date and recording the reviewer.
func (i *InspectionItem) Reject(actor *User) error {
	if !PermissionsFor(actor.Role).CanResolveReview {
		return ErrForbidden
	}
	i.Status = StatusRejected
	i.ClosedDate = ""
	i.Reviewer = actor.Name
	i.UpdatedAt = time.Now()
	return nil
}

// Transition applies the requested target status under the role gates above.
func (i *InspectionItem) Transition(actor *User, target ItemStatus, now time.Time) error {
	switch target {
	case StatusPending:
		return i.SubmitForReview(actor)
	case StatusApproved:
		return i.Approve(actor, now)
	case StatusRejected:
		return i.Reject(actor)
	default:
		return ErrInvalidTransition
	}
}

// Overdue reports whether the item's planned date has passed without
// approval, relative to the given ISO date.
func (i *InspectionItem) Overdue(today string) bool {
	if i.Status == StatusApproved || i.PlannedDate == "" {
		return false
	}
	return timeutil.IsBefore(i.PlannedDate, today)
}

// CreateItemRequest represents the request body for adding an item
type CreateItemRequest struct {
	Item        string `json:"item"`
	PlannedDate string `json:"planned_date"`
}

// UpdateMeasureRequest represents the manager's measure edit
type UpdateMeasureRequest struct {
	Action string `json:"action"`
	Author string `json:"author"`
}

// UpdateRemarksRequest represents the reviewer's remarks edit
type UpdateRemarksRequest struct {
	Comment     string    `json:"comment"`
	Attachments []FileRef `json:"attachments"`
}

// UpdateDocumentsRequest replaces an item's document list wholesale
type UpdateDocumentsRequest struct {
	Documents []FileRef `json:"documents"`
}

// ChangeStatusRequest represents a status transition request
type ChangeStatusRequest struct {
	Status ItemStatus `json:"status"`
}
