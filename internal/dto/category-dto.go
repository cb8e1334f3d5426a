package dto

type CreateCategoryDTO struct {
	Name        string `json:"name" validate:"required"`
	Responsible string `json:"responsible"`
	Company     string `json:"company"`
}

type UpdateCategoryDTO struct {
	Name        *string `json:"name"`
	Responsible *string `json:"responsible"`
	Company     *string `json:"company"`
}
