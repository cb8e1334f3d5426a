package entities

import "time"

// MaintenanceRequest — заявка на обслуживание. Stage — свободный граф
// (любая стадия достижима из любой), а не строгий конвейер.
type MaintenanceRequest struct {
	ID            string    `json:"id"`
	Subject       string    `json:"subject"`
	EquipmentID   string    `json:"equipmentId"`
	Type          string    `json:"type"`
	Stage         string    `json:"stage"`
	ScheduledDate string    `json:"scheduledDate"`
	Duration      float64   `json:"duration"`
	Priority      int       `json:"priority"`
	TechnicianID  string    `json:"technicianId"`
	TeamID        string    `json:"teamId"`
	Company       string    `json:"company"`
	Notes         string    `json:"notes"`
	Instructions  string    `json:"instructions"`
	Comments      []Comment `json:"comments"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Comment — запись в журнале работ. После добавления не редактируется
// и не удаляется; порядок хранения — от старых к новым.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
