package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		request  entities.MaintenanceRequest
		expected bool
	}{
		{
			name: "заявка без плановой даты младше 72 часов",
			request: entities.MaintenanceRequest{
				Stage:     constants.StageNew,
				CreatedAt: now.Add(-71 * time.Hour),
			},
			expected: false,
		},
		{
			name: "заявка без плановой даты старше 72 часов",
			request: entities.MaintenanceRequest{
				Stage:     constants.StageNew,
				CreatedAt: now.Add(-73 * time.Hour),
			},
			expected: true,
		},
		{
			name: "ровно 72 часа — еще не просрочена",
			request: entities.MaintenanceRequest{
				Stage:     constants.StageInProgress,
				CreatedAt: now.Add(-overdueAfter),
			},
			expected: false,
		},
		{
			name: "плановая дата в прошлом",
			request: entities.MaintenanceRequest{
				Stage:         constants.StageNew,
				ScheduledDate: "2024-06-10",
				CreatedAt:     now,
			},
			expected: true,
		},
		{
			name: "плановая дата сегодня — уже наступила",
			request: entities.MaintenanceRequest{
				Stage:         constants.StageInProgress,
				ScheduledDate: "2024-06-15",
				CreatedAt:     now,
			},
			expected: true,
		},
		{
			name: "плановая дата в будущем",
			request: entities.MaintenanceRequest{
				Stage:         constants.StageNew,
				ScheduledDate: "2024-06-20",
				CreatedAt:     now.Add(-200 * time.Hour),
			},
			expected: false,
		},
		{
			name: "repaired никогда не просрочена",
			request: entities.MaintenanceRequest{
				Stage:         constants.StageRepaired,
				ScheduledDate: "2024-06-01",
				CreatedAt:     now.Add(-500 * time.Hour),
			},
			expected: false,
		},
		{
			name: "scrap никогда не просрочена",
			request: entities.MaintenanceRequest{
				Stage:     constants.StageScrap,
				CreatedAt: now.Add(-500 * time.Hour),
			},
			expected: false,
		},
		{
			name: "нечитаемая плановая дата трактуется как отсутствующая",
			request: entities.MaintenanceRequest{
				Stage:         constants.StageNew,
				ScheduledDate: "15.06.2024",
				CreatedAt:     now.Add(-100 * time.Hour),
			},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsOverdue(tc.request, now))
		})
	}
}
