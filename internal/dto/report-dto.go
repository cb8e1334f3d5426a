package dto

// Строка реестра заявок для отчета (JSON или xlsx).
type RequestReportRowDTO struct {
	ID            string  `json:"id"`
	Subject       string  `json:"subject"`
	Equipment     string  `json:"equipment"`
	Category      string  `json:"category"`
	Team          string  `json:"team"`
	Technician    string  `json:"technician"`
	Type          string  `json:"type"`
	Stage         string  `json:"stage"`
	Priority      int     `json:"priority"`
	ScheduledDate string  `json:"scheduled_date"`
	DurationHours float64 `json:"duration_hours"`
	Overdue       bool    `json:"overdue"`
	CreatedAt     string  `json:"created_at"`
}
