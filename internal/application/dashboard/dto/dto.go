package dto

// DailyCount is one point of the ticket line chart.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

type AdminStatsDTO struct {
	TotalUsers        int64        `json:"total_users"`
	TotalAssets       int64        `json:"total_assets"`
	OpenTickets       int64        `json:"open_tickets"`
	AvgResolutionTime string       `json:"avg_resolution_time"`
	DailyTicketCounts []DailyCount `json:"daily_ticket_counts"`
	UserRoleCounts    []RoleCount  `json:"user_role_counts"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// SummaryDTO is the per-user landing view. Scope is "created" for
// employees and "assigned" for staff.
type SummaryDTO struct {
	Scope        string        `json:"scope"`
	TicketCounts []StatusCount `json:"ticket_counts"`
	TotalTickets int64         `json:"total_tickets"`
	AssetsHeld   int           `json:"assets_held"`
}
