package dto

type CreateTeamDTO struct {
	Name    string   `json:"name" validate:"required"`
	Members []string `json:"members"`
	Company string   `json:"company"`
}

type UpdateTeamDTO struct {
	Name    *string   `json:"name"`
	Members *[]string `json:"members"`
	Company *string   `json:"company"`
}
