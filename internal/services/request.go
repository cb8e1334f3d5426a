package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/entities"
	"maintenance-system/internal/repositories"
	"maintenance-system/pkg/constants"
	apperrors "maintenance-system/pkg/errors"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id string, payload dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error)
	TransitionRequest(ctx context.Context, id string, newStage string) (*entities.MaintenanceRequest, error)
	AddComment(ctx context.Context, requestID string, payload dto.CreateCommentDTO) (*entities.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id string) error
}

// RequestService — движок жизненного цикла заявки: создание, merge-обновления,
// переходы по стадиям (включая побочный эффект scrap) и журнал работ.
type RequestService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	logger        *zap.Logger
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (s *RequestService) GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	return s.requestRepo.GetRequests(ctx)
}

func (s *RequestService) FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
	return s.requestRepo.FindRequest(ctx, id)
}

func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error) {
	if strings.TrimSpace(payload.Subject) == "" {
		return nil, apperrors.NewInvalidInputError("поле 'subject' обязательно")
	}
	if strings.TrimSpace(payload.EquipmentID) == "" {
		return nil, apperrors.NewInvalidInputError("поле 'equipmentId' обязательно")
	}

	now := time.Now()
	request := entities.MaintenanceRequest{
		ID:            uuid.NewString(),
		Subject:       payload.Subject,
		EquipmentID:   payload.EquipmentID,
		Type:          payload.Type,
		Stage:         payload.Stage,
		ScheduledDate: payload.ScheduledDate,
		Duration:      payload.Duration,
		Priority:      payload.Priority,
		TechnicianID:  payload.TechnicianID,
		TeamID:        payload.TeamID,
		Company:       payload.Company,
		Notes:         payload.Notes,
		Instructions:  payload.Instructions,
		Comments:      []entities.Comment{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if request.Type == "" {
		request.Type = constants.TypeCorrective
	}
	if request.Stage == "" {
		request.Stage = constants.StageNew
	}
	if request.Priority == 0 {
		request.Priority = 1
	}

	if err := s.requestRepo.AddRequest(ctx, request); err != nil {
		s.logger.Error("не удалось сохранить новую заявку", zap.Error(err))
		return nil, err
	}
	return &request, nil
}

func (s *RequestService) UpdateRequest(ctx context.Context, id string, payload dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error) {
	return s.requestRepo.UpdateRequest(ctx, id, func(r *entities.MaintenanceRequest) {
		if payload.Subject != nil {
			r.Subject = *payload.Subject
		}
		if payload.EquipmentID != nil {
			r.EquipmentID = *payload.EquipmentID
		}
		if payload.Type != nil {
			r.Type = *payload.Type
		}
		if payload.Stage != nil {
			r.Stage = *payload.Stage
		}
		if payload.ScheduledDate != nil {
			r.ScheduledDate = *payload.ScheduledDate
		}
		if payload.Duration != nil {
			r.Duration = *payload.Duration
		}
		if payload.Priority != nil {
			r.Priority = *payload.Priority
		}
		if payload.TechnicianID != nil {
			r.TechnicianID = *payload.TechnicianID
		}
		if payload.TeamID != nil {
			r.TeamID = *payload.TeamID
		}
		if payload.Company != nil {
			r.Company = *payload.Company
		}
		if payload.Notes != nil {
			r.Notes = *payload.Notes
		}
		if payload.Instructions != nil {
			r.Instructions = *payload.Instructions
		}
		r.UpdatedAt = time.Now()
	})
}

// TransitionRequest переводит заявку в новую стадию. Граф переходов свободный:
// запрещенных ребер нет. Переход в scrap дополнительно помечает оборудование
// списанным; подтверждение перехода — забота UI, движок выполняет его безусловно.
func (s *RequestService) TransitionRequest(ctx context.Context, id string, newStage string) (*entities.MaintenanceRequest, error) {
	if !constants.IsValidStage(newStage) {
		return nil, apperrors.NewInvalidInputError("неизвестная стадия: %q", newStage)
	}

	request, err := s.requestRepo.UpdateRequest(ctx, id, func(r *entities.MaintenanceRequest) {
		r.Stage = newStage
		r.UpdatedAt = time.Now()
	})
	if err != nil {
		return nil, err
	}

	if newStage == constants.StageScrap {
		s.scrapEquipment(ctx, request)
	}
	return request, nil
}

// scrapEquipment — пост-переходный хук стадии scrap. Сначала обновляется заявка,
// затем оборудование; отката нет. Битая ссылка на оборудование — не ошибка:
// заявка может ссылаться на уже удаленную единицу.
func (s *RequestService) scrapEquipment(ctx context.Context, request *entities.MaintenanceRequest) {
	today := time.Now().Format(constants.DateOnly)
	_, err := s.equipmentRepo.UpdateEquipment(ctx, request.EquipmentID, func(eq *entities.Equipment) {
		eq.IsScrap = true
		eq.ScrapDate = today
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("scrap: оборудование не найдено, заявка переведена без побочного эффекта",
				zap.String("requestId", request.ID),
				zap.String("equipmentId", request.EquipmentID))
			return
		}
		s.logger.Error("scrap: не удалось пометить оборудование списанным",
			zap.String("requestId", request.ID),
			zap.String("equipmentId", request.EquipmentID),
			zap.Error(err))
	}
}

func (s *RequestService) AddComment(ctx context.Context, requestID string, payload dto.CreateCommentDTO) (*entities.MaintenanceRequest, error) {
	text := strings.TrimSpace(payload.Text)
	if text == "" {
		return nil, apperrors.NewInvalidInputError("текст комментария не может быть пустым")
	}
	author := strings.TrimSpace(payload.Author)
	if author == "" {
		author = "Unknown"
	}

	comment := entities.Comment{
		ID:        uuid.NewString(),
		Author:    author,
		Text:      text,
		Timestamp: time.Now(),
	}
	return s.requestRepo.UpdateRequest(ctx, requestID, func(r *entities.MaintenanceRequest) {
		r.Comments = append(r.Comments, comment)
		r.UpdatedAt = comment.Timestamp
	})
}

func (s *RequestService) DeleteRequest(ctx context.Context, id string) error {
	return s.requestRepo.DeleteRequest(ctx, id)
}
