package repositories

import (
	"context"
	"encoding/json"
	"sync"

	"maintenance-system/internal/entities"
	"maintenance-system/internal/store"
	apperrors "maintenance-system/pkg/errors"
)

type EquipmentRepositoryInterface interface {
	GetEquipment(ctx context.Context) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	AddEquipment(ctx context.Context, item entities.Equipment) error
	UpdateEquipment(ctx context.Context, id string, apply func(*entities.Equipment)) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type equipmentRepository struct {
	storage store.RecordStore
	mu      sync.Mutex
}

func NewEquipmentRepository(storage store.RecordStore) EquipmentRepositoryInterface {
	return &equipmentRepository{storage: storage}
}

func (r *equipmentRepository) load(ctx context.Context) ([]entities.Equipment, error) {
	doc, err := r.storage.GetAll(ctx, store.CollectionEquipment)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Equipment, 0)
	if len(doc) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(doc, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *equipmentRepository) save(ctx context.Context, items []entities.Equipment) error {
	doc, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.storage.SetAll(ctx, store.CollectionEquipment, doc)
}

func (r *equipmentRepository) GetEquipment(ctx context.Context) ([]entities.Equipment, error) {
	return r.load(ctx)
}

func (r *equipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *equipmentRepository) AddEquipment(ctx context.Context, item entities.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	items = append(items, item)
	return r.save(ctx, items)
}

// UpdateEquipment выполняет цикл "прочитал-изменил-записал" под мьютексом,
// мутация передается замыканием.
func (r *equipmentRepository) UpdateEquipment(ctx context.Context, id string, apply func(*entities.Equipment)) (*entities.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			apply(&items[i])
			if err := r.save(ctx, items); err != nil {
				return nil, err
			}
			return &items[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *equipmentRepository) DeleteEquipment(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return apperrors.ErrNotFound
	}
	return r.save(ctx, kept)
}
