package models

import (
	"testing"
	"time"
)

var (
	admin   = &User{Name: "Alice", Role: RoleAdmin}
	auditor = &User{Name: "Judith", Role: RoleAuditor}
	manager = &User{Name: "Max", Role: RoleManager}
)

func TestNewInspectionItemStartsRejected(t *testing.T) {
	item := NewInspectionItem(1, "Fire extinguisher check", "2025-09-01")

	if item.Status != StatusRejected {
		t.Errorf("expected status %s, got %s", StatusRejected, item.Status)
	}
	if item.ClosedDate != "" {
		t.Errorf("expected empty closed date, got %q", item.ClosedDate)
	}
	if item.Reviewer != "" {
		t.Errorf("expected empty reviewer, got %q", item.Reviewer)
	}
	if item.Item != "Fire extinguisher check" || item.PlannedDate != "2025-09-01" {
		t.Errorf("unexpected item fields: %+v", item)
	}
	if item.Documents == nil || item.Attachments == nil {
		t.Error("document lists must be initialized empty, not nil")
	}
}

func TestManagerSubmitsForReview(t *testing.T) {
	item := NewInspectionItem(1, "Check welds", "2025-09-01")

	if err := item.SubmitForReview(manager); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Status != StatusPending {
		t.Errorf("expected status %s, got %s", StatusPending, item.Status)
	}
	// no side effects beyond the status itself
	if item.ClosedDate != "" || item.Reviewer != "" {
		t.Errorf("submit must not touch closed date or reviewer: %+v", item)
	}
}

func TestSubmitForReviewRequiresManagerRole(t *testing.T) {
	item := NewInspectionItem(1, "Check welds", "2025-09-01")

	if err := item.SubmitForReview(auditor); err != ErrForbidden {
		t.Errorf("expected ErrForbidden for auditor, got %v", err)
	}
}

func TestSubmitForReviewOnlyFromRejected(t *testing.T) {
	item := NewInspectionItem(1, "Check welds", "2025-09-01")
	item.Status = StatusPending

	if err := item.SubmitForReview(manager); err != ErrInvalidTransition {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestAuditorApprovesPendingItem(t *testing.T) {
	item := NewInspectionItem(1, "Check welds", "2025-09-01")
	item.Status = StatusPending

	day := time.Date(2025, 9, 10, 14, 30, 0, 0, time.UTC)
	if err := item.Approve(auditor, day); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.Status != StatusApproved {
		t.Errorf("expected status %s, got %s", StatusApproved, item.Status)
	}
	if item.ClosedDate != "2025-09-10" {
		t.Errorf("expected closed date 2025-09-10, got %q", item.ClosedDate)
	}
	if item.Reviewer != "Judith" {
		t.Errorf("expected reviewer Judith, got %q", item.Reviewer)
	}
}

func TestManagerCannotApprove(t *testing.T) {
	item := NewInspectionItem(1, "Check welds", "2025-09-01")
	item.Status = StatusPending

	if err := item.Approve(manager, time.Now()); err != ErrForbidden {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if item.Status != StatusPending {
		t.Errorf("failed approve must not mutate item, status is %s", item.Status)
	}
}

func TestApproveOnlyFromPending(t *testing.T) {
	item := NewInspectionItem(1, "Check welds", "2025-09-01")

	if err := item.Approve(admin, time.Now()); err != ErrInvalidTransition {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestRejectClearsClosedDate(t *testing.T) {
	item := NewInspectionItem(1, "Check welds", "2025-09-01")
	item.Status = StatusPending
	if err := item.Approve(admin, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := item.Reject(auditor); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Status != StatusRejected {
		t.Errorf("expected status %s, got %s", StatusRejected, item.Status)
	}
	if item.ClosedDate != "" {
		t.Errorf("expected closed date cleared, got %q", item.ClosedDate)
	}
	if item.Reviewer != "Judith" {
		t.Errorf("expected reviewer Judith, got %q", item.Reviewer)
	}
}

func TestManagerCannotReject(t *testing.T) {
	item := NewInspectionItem(1, "Check welds", "2025-09-01")
	item.Status = StatusPending

	if err := item.Reject(manager); err != ErrForbidden {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestTransitionDispatch(t *testing.T) {
	item := NewInspectionItem(1, "Check welds", "2025-09-01")

	if err := item.Transition(manager, StatusPending, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := item.Transition(manager, StatusApproved, time.Now()); err != ErrForbidden {
		t.Errorf("manager approve must be forbidden, got %v", err)
	}
	if err := item.Transition(admin, "bogus", time.Now()); err != ErrInvalidTransition {
		t.Errorf("expected ErrInvalidTransition for unknown status, got %v", err)
	}
	if err := item.Transition(admin, StatusApproved, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOverdue(t *testing.T) {
	item := NewInspectionItem(1, "Check welds", "2025-09-01")

	if !item.Overdue("2025-09-02") {
		t.Error("unapproved item past its planned date must be overdue")
	}
	if item.Overdue("2025-09-01") {
		t.Error("item due today is not overdue")
	}

	item.Status = StatusApproved
	if item.Overdue("2025-09-02") {
		t.Error("approved items are never overdue")
	}
}
