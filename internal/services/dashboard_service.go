package services

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/constants"
)

type DashboardServiceInterface interface {
	GetDashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
	RequestsForDate(ctx context.Context, date string, requestType string) ([]entities.MaintenanceRequest, error)
	RequestsForEquipment(ctx context.Context, equipmentID string, openOnly bool) ([]entities.MaintenanceRequest, error)
}

// DashboardService — read-only проекции над текущим снимком хранилища.
// Ничего не кеширует: коллекции маленькие, пересчет на каждый вызов.
type DashboardService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	logger        *zap.Logger
}

func NewDashboardService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		teamRepo:      teamRepo,
		logger:        logger,
	}
}

func (s *DashboardService) GetDashboardStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		s.logger.Error("Dashboard fetching error", zap.Error(err))
		return nil, err
	}
	equipment, err := s.equipmentRepo.GetEquipment(ctx)
	if err != nil {
		s.logger.Error("Dashboard fetching error", zap.Error(err))
		return nil, err
	}
	teams, err := s.teamRepo.GetTeams(ctx)
	if err != nil {
		s.logger.Error("Dashboard fetching error", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	return &dto.DashboardStatsDTO{
		TechnicianLoad:    technicianLoad(requests),
		OpenRequests:      openRequestsCount(requests),
		OverdueRequests:   overdueRequestsCount(requests, now),
		CriticalEquipment: criticalEquipmentCount(equipment, requests),
		ByStage:           requestsByStage(requests),
		ByTeam:            requestsByTeam(teams, requests),
		ByCategory:        requestsByCategory(equipment, requests),
	}, nil
}

// RequestsForDate — выборка для ячейки календаря: заявки, назначенные на
// указанный день. Пустой requestType по умолчанию означает preventive.
func (s *DashboardService) RequestsForDate(ctx context.Context, date string, requestType string) ([]entities.MaintenanceRequest, error) {
	if requestType == "" {
		requestType = constants.TypePreventive
	}
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]entities.MaintenanceRequest, 0)
	for _, r := range requests {
		if r.ScheduledDate == date && r.Type == requestType {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (s *DashboardService) RequestsForEquipment(ctx context.Context, equipmentID string, openOnly bool) ([]entities.MaintenanceRequest, error) {
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]entities.MaintenanceRequest, 0)
	for _, r := range requests {
		if r.EquipmentID != equipmentID {
			continue
		}
		if openOnly && constants.IsTerminalStage(r.Stage) {
			continue
		}
		matched = append(matched, r)
	}
	return matched, nil
}

// --- чистые агрегаты над снимком коллекций ---

func openRequestsCount(requests []entities.MaintenanceRequest) int {
	count := 0
	for _, r := range requests {
		if !constants.IsTerminalStage(r.Stage) {
			count++
		}
	}
	return count
}

func overdueRequestsCount(requests []entities.MaintenanceRequest, now time.Time) int {
	count := 0
	for _, r := range requests {
		if IsOverdue(r, now) {
			count++
		}
	}
	return count
}

// technicianLoad: доля заявок in-progress среди нефинальных, в процентах.
// При нуле открытых заявок возвращает 0, а не делит на ноль.
func technicianLoad(requests []entities.MaintenanceRequest) int {
	active, total := 0, 0
	for _, r := range requests {
		if constants.IsTerminalStage(r.Stage) {
			continue
		}
		total++
		if r.Stage == constants.StageInProgress {
			active++
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(active) / float64(total) * 100))
}

// criticalEquipmentCount: оборудование критично, если списано либо имеет
// три и более открытых заявок.
func criticalEquipmentCount(equipment []entities.Equipment, requests []entities.MaintenanceRequest) int {
	openByEquipment := make(map[string]int)
	for _, r := range requests {
		if !constants.IsTerminalStage(r.Stage) {
			openByEquipment[r.EquipmentID]++
		}
	}

	count := 0
	for _, eq := range equipment {
		if eq.IsScrap || openByEquipment[eq.ID] >= 3 {
			count++
		}
	}
	return count
}

func requestsByStage(requests []entities.MaintenanceRequest) dto.StageCountsDTO {
	var counts dto.StageCountsDTO
	for _, r := range requests {
		switch r.Stage {
		case constants.StageNew:
			counts.New++
		case constants.StageInProgress:
			counts.InProgress++
		case constants.StageRepaired:
			counts.Repaired++
		case constants.StageScrap:
			counts.Scrap++
		}
	}
	return counts
}

// requestsByTeam: каждая команда присутствует ровно один раз,
// в том числе с нулевым счетчиком.
func requestsByTeam(teams []entities.MaintenanceTeam, requests []entities.MaintenanceRequest) []dto.CountByGroupDTO {
	result := make([]dto.CountByGroupDTO, 0, len(teams))
	for _, team := range teams {
		count := 0
		for _, r := range requests {
			if r.TeamID == team.ID {
				count++
			}
		}
		result = append(result, dto.CountByGroupDTO{Name: team.Name, Count: count})
	}
	return result
}

// requestsByCategory группирует заявки по категории их оборудования.
// Битая ссылка или пустая категория попадают в "Uncategorized";
// порядок групп — по первому появлению.
func requestsByCategory(equipment []entities.Equipment, requests []entities.MaintenanceRequest) []dto.CountByGroupDTO {
	categoryByEquipment := make(map[string]string, len(equipment))
	for _, eq := range equipment {
		categoryByEquipment[eq.ID] = eq.Category
	}

	order := make([]string, 0)
	counts := make(map[string]int)
	for _, r := range requests {
		category := categoryByEquipment[r.EquipmentID]
		if category == "" {
			category = constants.UncategorizedLabel
		}
		if _, seen := counts[category]; !seen {
			order = append(order, category)
		}
		counts[category]++
	}

	result := make([]dto.CountByGroupDTO, 0, len(order))
	for _, name := range order {
		result = append(result, dto.CountByGroupDTO{Name: name, Count: counts[name]})
	}
	return result
}
