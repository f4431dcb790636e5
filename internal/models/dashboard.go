package models

// ItemSummary is a dashboard row referencing an item within its project.
type ItemSummary struct {
	ProjectID   int        `json:"project_id"`
	ProjectName string     `json:"project_name"`
	Key         int        `json:"key"`
	Item        string     `json:"item"`
	PlannedDate string     `json:"planned_date"`
	Status      ItemStatus `json:"status"`
}

// DashboardStatistics is the aggregate payload behind /dashboard/statistics.
type DashboardStatistics struct {
	PendingItems  []ItemSummary  `json:"pending_items"`
	PendingCount  int            `json:"pending_count"`
	OverdueItems  []ItemSummary  `json:"overdue_items"`
	OverdueCount  int            `json:"overdue_count"`
	StatusCounts  map[string]int `json:"status_counts"`  // project status -> count
	ProjectCount  int            `json:"project_count"`
	ItemCount     int            `json:"item_count"`
	ApprovedCount int            `json:"approved_count"`
}
