package entities

// Equipment — единица оборудования. TeamID — слабая ссылка на команду,
// Category и TechnicianID — свободный текст, целостность не проверяется.
type Equipment struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SerialNumber string `json:"serialNumber"`
	PurchaseDate string `json:"purchaseDate"`
	Warranty     string `json:"warranty"`
	Location     string `json:"location"`
	Department   string `json:"department"`
	Employee     string `json:"employee"`
	TeamID       string `json:"teamId"`
	TechnicianID string `json:"technicianId"`
	Category     string `json:"category"`
	Company      string `json:"company"`
	Description  string `json:"description"`
	AssignedDate string `json:"assignedDate"`
	ScrapDate    string `json:"scrapDate"`
	IsScrap      bool   `json:"isScrap"`
}
