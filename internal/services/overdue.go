package services

import (
	"time"

	"maintenance-system/internal/entities"
	"maintenance-system/pkg/constants"
)

const overdueAfter = 72 * time.Hour

// IsOverdue — правило просрочки, общее для жизненного цикла и аналитики:
//   - финальные стадии (repaired, scrap) не бывают просроченными;
//   - без scheduledDate заявка просрочена спустя 3 суток после создания;
//   - со scheduledDate заявка просрочена, как только наступил назначенный день
//     (дата сравнивается по полуночи, без времени суток).
//
// Нечитаемый scheduledDate трактуется как отсутствующий.
func IsOverdue(r entities.MaintenanceRequest, now time.Time) bool {
	if constants.IsTerminalStage(r.Stage) {
		return false
	}
	if r.ScheduledDate == "" {
		return now.Sub(r.CreatedAt) > overdueAfter
	}
	scheduled, err := time.ParseInLocation(constants.DateOnly, r.ScheduledDate, now.Location())
	if err != nil {
		return now.Sub(r.CreatedAt) > overdueAfter
	}
	return scheduled.Before(now)
}
