package repositories

import (
	"context"
	"encoding/json"
	"sync"

	"maintenance-system/internal/entities"
	"maintenance-system/internal/store"
	apperrors "maintenance-system/pkg/errors"
)

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error)
	AddRequest(ctx context.Context, request entities.MaintenanceRequest) error
	UpdateRequest(ctx context.Context, id string, apply func(*entities.MaintenanceRequest)) (*entities.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id string) error
}

type requestRepository struct {
	storage store.RecordStore
	mu      sync.Mutex
}

func NewRequestRepository(storage store.RecordStore) RequestRepositoryInterface {
	return &requestRepository{storage: storage}
}

func (r *requestRepository) load(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	doc, err := r.storage.GetAll(ctx, store.CollectionRequests)
	if err != nil {
		return nil, err
	}
	requests := make([]entities.MaintenanceRequest, 0)
	if len(doc) == 0 {
		return requests, nil
	}
	if err := json.Unmarshal(doc, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) save(ctx context.Context, requests []entities.MaintenanceRequest) error {
	doc, err := json.Marshal(requests)
	if err != nil {
		return err
	}
	return r.storage.SetAll(ctx, store.CollectionRequests, doc)
}

func (r *requestRepository) GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	return r.load(ctx)
}

func (r *requestRepository) FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
	requests, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].ID == id {
			return &requests[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *requestRepository) AddRequest(ctx context.Context, request entities.MaintenanceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	requests, err := r.load(ctx)
	if err != nil {
		return err
	}
	requests = append(requests, request)
	return r.save(ctx, requests)
}

// UpdateRequest — единственная точка мутации заявки: и merge-обновления,
// и переходы стадий, и добавление комментариев приходят сюда замыканием.
func (r *requestRepository) UpdateRequest(ctx context.Context, id string, apply func(*entities.MaintenanceRequest)) (*entities.MaintenanceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	requests, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].ID == id {
			apply(&requests[i])
			if err := r.save(ctx, requests); err != nil {
				return nil, err
			}
			return &requests[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *requestRepository) DeleteRequest(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	requests, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := requests[:0]
	found := false
	for _, request := range requests {
		if request.ID == id {
			found = true
			continue
		}
		kept = append(kept, request)
	}
	if !found {
		return apperrors.ErrNotFound
	}
	return r.save(ctx, kept)
}
