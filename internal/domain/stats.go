package domain

type HazardStats struct {
	ReportCount    int64            `json:"report_count"`
	ReportsByKind  map[string]int64 `json:"reports_by_kind"`
	RecipientCount int64            `json:"recipient_count"`
	WindowMinutes  int              `json:"window_minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"` // 1 day max
}
