// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"maintenance-system/pkg/constants"
)

// RegisterCustomValidations регистрирует доменные правила валидации
// в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("kanban_stage", isKanbanStage); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_type", isRequestType); err != nil {
		return err
	}
	if err := v.RegisterValidation("date_only", isDateOnly); err != nil {
		return err
	}
	return nil
}

func isKanbanStage(fl validator.FieldLevel) bool {
	return constants.IsValidStage(fl.Field().String())
}

func isRequestType(fl validator.FieldLevel) bool {
	return constants.IsValidType(fl.Field().String())
}

var dateOnlyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func isDateOnly(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !dateOnlyRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(constants.DateOnly, s)
	return err == nil
}
