package repositories

import (
	"context"
	"encoding/json"
	"sync"

	"maintenance-system/internal/entities"
	"maintenance-system/internal/store"
	apperrors "maintenance-system/pkg/errors"
)

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error)
	FindTeam(ctx context.Context, id string) (*entities.MaintenanceTeam, error)
	AddTeam(ctx context.Context, team entities.MaintenanceTeam) error
	UpdateTeam(ctx context.Context, id string, apply func(*entities.MaintenanceTeam)) (*entities.MaintenanceTeam, error)
	DeleteTeam(ctx context.Context, id string) error
}

type teamRepository struct {
	storage store.RecordStore
	mu      sync.Mutex
}

func NewTeamRepository(storage store.RecordStore) TeamRepositoryInterface {
	return &teamRepository{storage: storage}
}

func (r *teamRepository) load(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	doc, err := r.storage.GetAll(ctx, store.CollectionTeams)
	if err != nil {
		return nil, err
	}
	teams := make([]entities.MaintenanceTeam, 0)
	if len(doc) == 0 {
		return teams, nil
	}
	if err := json.Unmarshal(doc, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) save(ctx context.Context, teams []entities.MaintenanceTeam) error {
	doc, err := json.Marshal(teams)
	if err != nil {
		return err
	}
	return r.storage.SetAll(ctx, store.CollectionTeams, doc)
}

func (r *teamRepository) GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	return r.load(ctx)
}

func (r *teamRepository) FindTeam(ctx context.Context, id string) (*entities.MaintenanceTeam, error) {
	teams, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		if teams[i].ID == id {
			return &teams[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *teamRepository) AddTeam(ctx context.Context, team entities.MaintenanceTeam) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	teams, err := r.load(ctx)
	if err != nil {
		return err
	}
	teams = append(teams, team)
	return r.save(ctx, teams)
}

func (r *teamRepository) UpdateTeam(ctx context.Context, id string, apply func(*entities.MaintenanceTeam)) (*entities.MaintenanceTeam, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	teams, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		if teams[i].ID == id {
			apply(&teams[i])
			if err := r.save(ctx, teams); err != nil {
				return nil, err
			}
			return &teams[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *teamRepository) DeleteTeam(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	teams, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := teams[:0]
	found := false
	for _, team := range teams {
		if team.ID == id {
			found = true
			continue
		}
		kept = append(kept, team)
	}
	if !found {
		return apperrors.ErrNotFound
	}
	return r.save(ctx, kept)
}
