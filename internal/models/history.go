package models

import "time"

// History event kinds
const (
	HistoryAddItem       = "add_item"
	HistoryRemarksChange = "remarks_change"
	HistoryItemStatus    = "item_status"
)

// HistoryCap is the number of most-recent events kept per scope.
const HistoryCap = 20

// HistoryEvent is one entry in the append-only activity log.
type HistoryEvent struct {
	ID          int       `json:"id"`
	Kind        string    `json:"kind"`
	By          string    `json:"by"`
	Message     string    `json:"message"`
	ProjectID   int       `json:"project_id"`
	ProjectName string    `json:"project_name"`
	Timestamp   time.Time `json:"timestamp"`
}
