package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/internal/store"
	"maintenance-system/pkg/constants"
)

func TestTechnicianLoad(t *testing.T) {
	assert.Equal(t, 0, technicianLoad(nil), "пустой список — нулевая загрузка, без деления на ноль")

	assert.Equal(t, 0, technicianLoad([]entities.MaintenanceRequest{
		{Stage: constants.StageRepaired},
		{Stage: constants.StageScrap},
	}), "финальные стадии не участвуют в расчете")

	// 1 in-progress из 3 нефинальных = 33%
	assert.Equal(t, 33, technicianLoad([]entities.MaintenanceRequest{
		{Stage: constants.StageNew},
		{Stage: constants.StageNew},
		{Stage: constants.StageInProgress},
		{Stage: constants.StageRepaired},
	}))

	// 2 из 3 = 66.67 -> округление до 67
	assert.Equal(t, 67, technicianLoad([]entities.MaintenanceRequest{
		{Stage: constants.StageInProgress},
		{Stage: constants.StageInProgress},
		{Stage: constants.StageNew},
	}))
}

func TestCriticalEquipmentCount(t *testing.T) {
	equipment := []entities.Equipment{
		{ID: "eq1"},
		{ID: "eq2", IsScrap: true},
		{ID: "eq3"},
	}
	requests := []entities.MaintenanceRequest{
		{EquipmentID: "eq1", Stage: constants.StageNew},
		{EquipmentID: "eq1", Stage: constants.StageInProgress},
		{EquipmentID: "eq1", Stage: constants.StageNew},
		{EquipmentID: "eq3", Stage: constants.StageNew},
		{EquipmentID: "eq3", Stage: constants.StageRepaired},
		{EquipmentID: "eq3", Stage: constants.StageNew},
		{EquipmentID: "eq3", Stage: constants.StageScrap},
	}

	// eq1 — три открытых; eq2 — списано; eq3 — только две открытых
	assert.Equal(t, 2, criticalEquipmentCount(equipment, requests))
}

func TestRequestsByTeam_IncludesZeroCounts(t *testing.T) {
	teams := []entities.MaintenanceTeam{
		{ID: "team1", Name: "Mechanics"},
		{ID: "team2", Name: "Electricians"},
	}
	requests := []entities.MaintenanceRequest{
		{TeamID: "team1", Stage: constants.StageNew},
		{TeamID: "team1", Stage: constants.StageScrap},
	}

	result := requestsByTeam(teams, requests)
	require.Len(t, result, 2)
	assert.Equal(t, dto.CountByGroupDTO{Name: "Mechanics", Count: 2}, result[0])
	assert.Equal(t, dto.CountByGroupDTO{Name: "Electricians", Count: 0}, result[1])
}

func TestRequestsByCategory(t *testing.T) {
	equipment := []entities.Equipment{
		{ID: "eq1", Category: "Power"},
		{ID: "eq2", Category: "Computer"},
		{ID: "eq3"}, // без категории
	}
	requests := []entities.MaintenanceRequest{
		{EquipmentID: "eq1"},
		{EquipmentID: "eq2"},
		{EquipmentID: "eq1"},
		{EquipmentID: "eq3"},
		{EquipmentID: "ghost"}, // висячая ссылка
	}

	result := requestsByCategory(equipment, requests)
	require.Len(t, result, 3)
	// Порядок — по первому появлению
	assert.Equal(t, dto.CountByGroupDTO{Name: "Power", Count: 2}, result[0])
	assert.Equal(t, dto.CountByGroupDTO{Name: "Computer", Count: 1}, result[1])
	assert.Equal(t, dto.CountByGroupDTO{Name: constants.UncategorizedLabel, Count: 2}, result[2])
}

func TestGetDashboardStats(t *testing.T) {
	storage := store.NewMemoryStore()
	requestRepo := repositories.NewRequestRepository(storage)
	equipmentRepo := repositories.NewEquipmentRepository(storage)
	teamRepo := repositories.NewTeamRepository(storage)
	svc := NewDashboardService(requestRepo, equipmentRepo, teamRepo, zap.NewNop())

	ctx := context.Background()
	now := time.Now()

	require.NoError(t, equipmentRepo.AddEquipment(ctx, entities.Equipment{ID: "eq1", Name: "Generator", Category: "Power"}))
	require.NoError(t, equipmentRepo.AddEquipment(ctx, entities.Equipment{ID: "eq2", Name: "Old Press", Category: "Manufacturing", IsScrap: true}))
	require.NoError(t, teamRepo.AddTeam(ctx, entities.MaintenanceTeam{ID: "team1", Name: "Mechanics"}))
	require.NoError(t, teamRepo.AddTeam(ctx, entities.MaintenanceTeam{ID: "team2", Name: "Electricians"}))

	fixtures := []entities.MaintenanceRequest{
		{ID: "r1", EquipmentID: "eq1", TeamID: "team1", Stage: constants.StageNew, CreatedAt: now.Add(-100 * time.Hour)},
		{ID: "r2", EquipmentID: "eq1", TeamID: "team1", Stage: constants.StageInProgress, CreatedAt: now},
		{ID: "r3", EquipmentID: "eq2", TeamID: "team1", Stage: constants.StageRepaired, CreatedAt: now.Add(-200 * time.Hour)},
		{ID: "r4", EquipmentID: "eq2", TeamID: "", Stage: constants.StageScrap, CreatedAt: now},
	}
	for _, r := range fixtures {
		require.NoError(t, requestRepo.AddRequest(ctx, r))
	}

	stats, err := svc.GetDashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.OpenRequests, "new + in-progress")
	assert.Equal(t, 1, stats.OverdueRequests, "только r1 старше 72 часов")
	assert.Equal(t, 50, stats.TechnicianLoad, "1 in-progress из 2 открытых")
	assert.Equal(t, 1, stats.CriticalEquipment, "eq2 списано; у eq1 лишь две открытых")

	assert.Equal(t, dto.StageCountsDTO{New: 1, InProgress: 1, Repaired: 1, Scrap: 1}, stats.ByStage)

	require.Len(t, stats.ByTeam, 2)
	assert.Equal(t, dto.CountByGroupDTO{Name: "Mechanics", Count: 3}, stats.ByTeam[0])
	assert.Equal(t, dto.CountByGroupDTO{Name: "Electricians", Count: 0}, stats.ByTeam[1])

	require.Len(t, stats.ByCategory, 2)
	assert.Equal(t, dto.CountByGroupDTO{Name: "Power", Count: 2}, stats.ByCategory[0])
	assert.Equal(t, dto.CountByGroupDTO{Name: "Manufacturing", Count: 2}, stats.ByCategory[1])
}

func TestRequestsForDate(t *testing.T) {
	storage := store.NewMemoryStore()
	requestRepo := repositories.NewRequestRepository(storage)
	svc := NewDashboardService(requestRepo, repositories.NewEquipmentRepository(storage), repositories.NewTeamRepository(storage), zap.NewNop())

	ctx := context.Background()
	fixtures := []entities.MaintenanceRequest{
		{ID: "r1", Type: constants.TypePreventive, ScheduledDate: "2024-06-15"},
		{ID: "r2", Type: constants.TypeCorrective, ScheduledDate: "2024-06-15"},
		{ID: "r3", Type: constants.TypePreventive, ScheduledDate: "2024-06-16"},
		{ID: "r4", Type: constants.TypePreventive, ScheduledDate: ""},
	}
	for _, r := range fixtures {
		require.NoError(t, requestRepo.AddRequest(ctx, r))
	}

	// Пустой тип — preventive по умолчанию
	matched, err := svc.RequestsForDate(ctx, "2024-06-15", "")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "r1", matched[0].ID)

	matched, err = svc.RequestsForDate(ctx, "2024-06-15", constants.TypeCorrective)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "r2", matched[0].ID)

	matched, err = svc.RequestsForDate(ctx, "2024-01-01", constants.TypePreventive)
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestRequestsForEquipment(t *testing.T) {
	storage := store.NewMemoryStore()
	requestRepo := repositories.NewRequestRepository(storage)
	svc := NewDashboardService(requestRepo, repositories.NewEquipmentRepository(storage), repositories.NewTeamRepository(storage), zap.NewNop())

	ctx := context.Background()
	fixtures := []entities.MaintenanceRequest{
		{ID: "r1", EquipmentID: "eq1", Stage: constants.StageNew},
		{ID: "r2", EquipmentID: "eq1", Stage: constants.StageRepaired},
		{ID: "r3", EquipmentID: "eq2", Stage: constants.StageNew},
	}
	for _, r := range fixtures {
		require.NoError(t, requestRepo.AddRequest(ctx, r))
	}

	all, err := svc.RequestsForEquipment(ctx, "eq1", false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	open, err := svc.RequestsForEquipment(ctx, "eq1", true)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "r1", open[0].ID)
}
