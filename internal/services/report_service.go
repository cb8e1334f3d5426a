package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
)

type ReportServiceInterface interface {
	GetRequestRegister(ctx context.Context) ([]dto.RequestReportRowDTO, error)
}

// ReportService собирает реестр заявок с разыменованными слабыми ссылками
// (оборудование, команда). Битые ссылки отдаются как "Unknown"/"Unassigned".
type ReportService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	logger        *zap.Logger
}

func NewReportService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		teamRepo:      teamRepo,
		logger:        logger,
	}
}

func (s *ReportService) GetRequestRegister(ctx context.Context) ([]dto.RequestReportRowDTO, error) {
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, err
	}
	equipment, err := s.equipmentRepo.GetEquipment(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.GetTeams(ctx)
	if err != nil {
		return nil, err
	}

	equipmentByID := make(map[string]entities.Equipment, len(equipment))
	for _, eq := range equipment {
		equipmentByID[eq.ID] = eq
	}
	teamNameByID := make(map[string]string, len(teams))
	for _, team := range teams {
		teamNameByID[team.ID] = team.Name
	}

	now := time.Now()
	rows := make([]dto.RequestReportRowDTO, 0, len(requests))
	for _, r := range requests {
		equipmentName, category := "Unknown", "Uncategorized"
		if eq, ok := equipmentByID[r.EquipmentID]; ok {
			equipmentName = eq.Name
			if eq.Category != "" {
				category = eq.Category
			}
		}
		teamName := teamNameByID[r.TeamID]
		if teamName == "" {
			teamName = "Unassigned"
		}
		technician := r.TechnicianID
		if technician == "" {
			technician = "Unassigned"
		}

		rows = append(rows, dto.RequestReportRowDTO{
			ID:            r.ID,
			Subject:       r.Subject,
			Equipment:     equipmentName,
			Category:      category,
			Team:          teamName,
			Technician:    technician,
			Type:          r.Type,
			Stage:         r.Stage,
			Priority:      r.Priority,
			ScheduledDate: r.ScheduledDate,
			DurationHours: r.Duration,
			Overdue:       IsOverdue(r, now),
			CreatedAt:     r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return rows, nil
}
