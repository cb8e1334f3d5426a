package repositories

import (
	"context"
	"encoding/json"
	"sync"

	"maintenance-system/internal/entities"
	"maintenance-system/internal/store"
	apperrors "maintenance-system/pkg/errors"
)

type CategoryRepositoryInterface interface {
	GetCategories(ctx context.Context) ([]entities.Category, error)
	FindCategory(ctx context.Context, id string) (*entities.Category, error)
	AddCategory(ctx context.Context, category entities.Category) error
	UpdateCategory(ctx context.Context, id string, apply func(*entities.Category)) (*entities.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type categoryRepository struct {
	storage store.RecordStore
	mu      sync.Mutex
}

func NewCategoryRepository(storage store.RecordStore) CategoryRepositoryInterface {
	return &categoryRepository{storage: storage}
}

func (r *categoryRepository) load(ctx context.Context) ([]entities.Category, error) {
	doc, err := r.storage.GetAll(ctx, store.CollectionCategories)
	if err != nil {
		return nil, err
	}
	categories := make([]entities.Category, 0)
	if len(doc) == 0 {
		return categories, nil
	}
	if err := json.Unmarshal(doc, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) save(ctx context.Context, categories []entities.Category) error {
	doc, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return r.storage.SetAll(ctx, store.CollectionCategories, doc)
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]entities.Category, error) {
	return r.load(ctx)
}

func (r *categoryRepository) FindCategory(ctx context.Context, id string) (*entities.Category, error) {
	categories, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *categoryRepository) AddCategory(ctx context.Context, category entities.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	categories, err := r.load(ctx)
	if err != nil {
		return err
	}
	categories = append(categories, category)
	return r.save(ctx, categories)
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, id string, apply func(*entities.Category)) (*entities.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	categories, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].ID == id {
			apply(&categories[i])
			if err := r.save(ctx, categories); err != nil {
				return nil, err
			}
			return &categories[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	categories, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := categories[:0]
	found := false
	for _, category := range categories {
		if category.ID == id {
			found = true
			continue
		}
		kept = append(kept, category)
	}
	if !found {
		return apperrors.ErrNotFound
	}
	return r.save(ctx, kept)
}
