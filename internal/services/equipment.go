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
	"maintenance-system/pkg/utils"
)

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(equipmentRepo repositories.EquipmentRepositoryInterface, logger *zap.Logger) EquipmentServiceInterface {
	return &EquipmentService{equipmentRepo: equipmentRepo, logger: logger}
}

func (s *EquipmentService) GetEquipment(ctx context.Context) ([]entities.Equipment, error) {
	return s.equipmentRepo.GetEquipment(ctx)
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return nil, apperrors.NewInvalidInputError("поле 'name' обязательно")
	}

	item := entities.Equipment{
		ID:           uuid.NewString(),
		Name:         payload.Name,
		SerialNumber: payload.SerialNumber,
		PurchaseDate: payload.PurchaseDate,
		Warranty:     payload.Warranty,
		Location:     payload.Location,
		Department:   payload.Department,
		Employee:     payload.Employee,
		TeamID:       payload.TeamID,
		TechnicianID: payload.TechnicianID,
		Category:     payload.Category,
		Company:      payload.Company,
		Description:  payload.Description,
		AssignedDate: payload.AssignedDate,
	}
	if err := s.equipmentRepo.AddEquipment(ctx, item); err != nil {
		s.logger.Error("не удалось сохранить оборудование", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	return s.equipmentRepo.UpdateEquipment(ctx, id, func(eq *entities.Equipment) {
		if payload.Name != nil {
			eq.Name = *payload.Name
		}
		if payload.SerialNumber != nil {
			eq.SerialNumber = *payload.SerialNumber
		}
		if payload.PurchaseDate != nil {
			eq.PurchaseDate = *payload.PurchaseDate
		}
		if payload.Warranty != nil {
			eq.Warranty = *payload.Warranty
		}
		if payload.Location != nil {
			eq.Location = *payload.Location
		}
		if payload.Department != nil {
			eq.Department = *payload.Department
		}
		if payload.Employee != nil {
			eq.Employee = *payload.Employee
		}
		if payload.TeamID != nil {
			eq.TeamID = *payload.TeamID
		}
		if payload.TechnicianID != nil {
			eq.TechnicianID = *payload.TechnicianID
		}
		if payload.Category != nil {
			eq.Category = *payload.Category
		}
		if payload.Company != nil {
			eq.Company = *payload.Company
		}
		if payload.Description != nil {
			eq.Description = *payload.Description
		}
		if payload.AssignedDate != nil {
			eq.AssignedDate = *payload.AssignedDate
		}
		if payload.ScrapDate != nil {
			eq.ScrapDate = *payload.ScrapDate
		}
		if payload.IsScrap != nil {
			eq.IsScrap = *payload.IsScrap
			// Инвариант: isScrap=true всегда с датой списания.
			if eq.IsScrap && eq.ScrapDate == "" {
				eq.ScrapDate = utils.Today()
			}
		}
	})
}

// DeleteEquipment удаляет запись без каскада: заявки на это оборудование
// остаются с висячей ссылкой equipmentId.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) error {
	return s.equipmentRepo.DeleteEquipment(ctx, id)
}
