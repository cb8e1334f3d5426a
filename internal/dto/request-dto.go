package dto

type CreateRequestDTO struct {
	Subject       string  `json:"subject" validate:"required"`
	EquipmentID   string  `json:"equipmentId" validate:"required"`
	Type          string  `json:"type" validate:"omitempty,request_type"`
	Stage         string  `json:"stage" validate:"omitempty,kanban_stage"`
	ScheduledDate string  `json:"scheduledDate" validate:"omitempty,date_only"`
	Duration      float64 `json:"duration" validate:"gte=0"`
	Priority      int     `json:"priority" validate:"omitempty,min=1,max=3"`
	TechnicianID  string  `json:"technicianId"`
	TeamID        string  `json:"teamId"`
	Company       string  `json:"company"`
	Notes         string  `json:"notes"`
	Instructions  string  `json:"instructions"`
}

// UpdateRequestDTO: id, createdAt и comments через update не меняются,
// комментарии добавляются только через AddComment.
type UpdateRequestDTO struct {
	Subject       *string  `json:"subject"`
	EquipmentID   *string  `json:"equipmentId"`
	Type          *string  `json:"type" validate:"omitempty,request_type"`
	Stage         *string  `json:"stage" validate:"omitempty,kanban_stage"`
	ScheduledDate *string  `json:"scheduledDate" validate:"omitempty,date_only"`
	Duration      *float64 `json:"duration" validate:"omitempty,gte=0"`
	Priority      *int     `json:"priority" validate:"omitempty,min=1,max=3"`
	TechnicianID  *string  `json:"technicianId"`
	TeamID        *string  `json:"teamId"`
	Company       *string  `json:"company"`
	Notes         *string  `json:"notes"`
	Instructions  *string  `json:"instructions"`
}

type TransitionRequestDTO struct {
	Stage string `json:"stage" validate:"required,kanban_stage"`
}

type CreateCommentDTO struct {
	Author string `json:"author"`
	Text   string `json:"text" validate:"required"`
}
