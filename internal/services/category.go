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

type CategoryServiceInterface interface {
	GetCategories(ctx context.Context) ([]entities.Category, error)
	FindCategory(ctx context.Context, id string) (*entities.Category, error)
	CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*entities.Category, error)
	UpdateCategory(ctx context.Context, id string, payload dto.UpdateCategoryDTO) (*entities.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface, logger *zap.Logger) CategoryServiceInterface {
	return &CategoryService{categoryRepo: categoryRepo, logger: logger}
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]entities.Category, error) {
	return s.categoryRepo.GetCategories(ctx)
}

func (s *CategoryService) FindCategory(ctx context.Context, id string) (*entities.Category, error) {
	return s.categoryRepo.FindCategory(ctx, id)
}

func (s *CategoryService) CreateCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*entities.Category, error) {
	if strings.TrimSpace(payload.Name) == "" {
		return nil, apperrors.NewInvalidInputError("поле 'name' обязательно")
	}

	category := entities.Category{
		ID:          uuid.NewString(),
		Name:        payload.Name,
		Responsible: payload.Responsible,
		Company:     payload.Company,
	}
	if err := s.categoryRepo.AddCategory(ctx, category); err != nil {
		s.logger.Error("не удалось сохранить категорию", zap.Error(err))
		return nil, err
	}
	return &category, nil
}

// UpdateCategory: переименование категории намеренно НЕ трогает оборудование —
// ссылки по имени останутся осиротевшими, так ведут себя исходные данные.
func (s *CategoryService) UpdateCategory(ctx context.Context, id string, payload dto.UpdateCategoryDTO) (*entities.Category, error) {
	return s.categoryRepo.UpdateCategory(ctx, id, func(category *entities.Category) {
		if payload.Name != nil {
			category.Name = *payload.Name
		}
		if payload.Responsible != nil {
			category.Responsible = *payload.Responsible
		}
		if payload.Company != nil {
			category.Company = *payload.Company
		}
	})
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepo.DeleteCategory(ctx, id)
}
