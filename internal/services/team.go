package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	apperrors "maintenance-system/pkg/errors"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error)
	FindTeam(ctx context.Context, id string) (*entities.MaintenanceTeam, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.MaintenanceTeam, error)
	UpdateTeam(ctx context.Context, id string, payload dto.UpdateTeamDTO) (*entities.MaintenanceTeam, error)
	DeleteTeam(ctx context.Context, id string) error
}

type TeamService struct {
	teamRepo repositories.TeamRepositoryInterface
	logger   *zap.Logger
}

func NewTeamService(teamRepo repositories.TeamRepositoryInterface, logger *zap.Logger) TeamServiceInterface {
	return &TeamService{teamRepo: teamRepo, logger: logger}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	return s.teamRepo.GetTeams(ctx)
}

func (s *TeamService) FindTeam(ctx context.Context, id string) (*entities.MaintenanceTeam, error) {
	return s.teamRepo.FindTeam(ctx, id)
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.MaintenanceTeam, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return nil, apperrors.NewInvalidInputError("поле 'name' обязательно")
	}

	team := entities.MaintenanceTeam{
		ID:      uuid.NewString(),
		Name:    payload.Name,
		Members: payload.Members,
		Company: payload.Company,
	}
	if team.Members == nil {
		team.Members = []string{}
	}
	if err := s.teamRepo.AddTeam(ctx, team); err != nil {
		s.logger.Error("не удалось сохранить команду", zap.Error(err))
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, id string, payload dto.UpdateTeamDTO) (*entities.MaintenanceTeam, error) {
	return s.teamRepo.UpdateTeam(ctx, id, func(team *entities.MaintenanceTeam) {
		if payload.Name != nil {
			team.Name = *payload.Name
		}
		if payload.Members != nil {
			team.Members = *payload.Members
		}
		if payload.Company != nil {
			team.Company = *payload.Company
		}
	})
}

func (s *TeamService) DeleteTeam(ctx context.Context, id string) error {
	return s.teamRepo.DeleteTeam(ctx, id)
}
