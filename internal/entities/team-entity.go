package entities

type MaintenanceTeam struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
	Company string   `json:"company"`
}
