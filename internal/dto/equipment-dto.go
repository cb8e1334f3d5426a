package dto

type CreateEquipmentDTO struct {
	Name         string `json:"name" validate:"required"`
	SerialNumber string `json:"serialNumber"`
	PurchaseDate string `json:"purchaseDate" validate:"omitempty,date_only"`
	Warranty     string `json:"warranty" validate:"omitempty,date_only"`
	Location     string `json:"location"`
	Department   string `json:"department"`
	Employee     string `json:"employee"`
	TeamID       string `json:"teamId"`
	TechnicianID string `json:"technicianId"`
	Category     string `json:"category"`
	Company      string `json:"company"`
	Description  string `json:"description"`
	AssignedDate string `json:"assignedDate" validate:"omitempty,date_only"`
}

type UpdateEquipmentDTO struct {
	Name         *string `json:"name"`
	SerialNumber *string `json:"serialNumber"`
	PurchaseDate *string `json:"purchaseDate" validate:"omitempty,date_only"`
	Warranty     *string `json:"warranty" validate:"omitempty,date_only"`
	Location     *string `json:"location"`
	Department   *string `json:"department"`
	Employee     *string `json:"employee"`
	TeamID       *string `json:"teamId"`
	TechnicianID *string `json:"technicianId"`
	Category     *string `json:"category"`
	Company      *string `json:"company"`
	Description  *string `json:"description"`
	AssignedDate *string `json:"assignedDate" validate:"omitempty,date_only"`
	ScrapDate    *string `json:"scrapDate" validate:"omitempty,date_only"`
	IsScrap      *bool   `json:"isScrap"`
}
