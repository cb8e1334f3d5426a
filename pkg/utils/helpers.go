package utils

import (
	"time"

	"maintenance-system/pkg/constants"
)

func StringPtr(s string) *string { return &s }

func IntPtr(n int) *int { return &n }

func Float64Ptr(f float64) *float64 { return &f }

func BoolPtr(b bool) *bool { return &b }

// Today возвращает сегодняшнюю дату в формате форм (YYYY-MM-DD).
func Today() string {
	return time.Now().Format(constants.DateOnly)
}

func ParseDateOnly(s string) (time.Time, error) {
	return time.Parse(constants.DateOnly, s)
}
