package entities

// Category. Оборудование ссылается на категорию по имени, а не по ID —
// переименование категории молча "осиротит" поле category у оборудования.
// Известное слабое место исходных данных, сохраняем как есть.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Responsible string `json:"responsible"`
	Company     string `json:"company"`
}
