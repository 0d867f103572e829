package models

import (
	"context"
	"sync"
)

type TourRepo interface {
	Create(ctx context.Context, tour *Tour) error
	GetByID(ctx context.Context, id string) (*Tour, error)
	ListByCompany(ctx context.Context, companyID string) ([]*Tour, error)
	Update(ctx context.Context, tour *Tour) error
	Delete(ctx context.Context, id string) error
}

type MemoryTourRepo struct {
	mu    sync.RWMutex
	tours []*Tour
}

func NewMemoryTourRepo() *MemoryTourRepo {
	return &MemoryTourRepo{}
}

func cloneTour(t *Tour) *Tour {
	cp := *t
	cp.Schedules = append([]TourSchedule(nil), t.Schedules...)
	cp.PickupLocations = append([]string(nil), t.PickupLocations...)
	return &cp
}

func (r *MemoryTourRepo) Create(ctx context.Context, tour *Tour) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tours = append(r.tours, cloneTour(tour))
	return nil
}

func (r *MemoryTourRepo) GetByID(ctx context.Context, id string) (*Tour, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tours {
		if t.ID == id {
			return cloneTour(t), nil
		}
	}
	return nil, NotFoundError{Resource: "tour", ID: id}
}

func (r *MemoryTourRepo) ListByCompany(ctx context.Context, companyID string) ([]*Tour, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Tour
	for _, t := range r.tours {
		if companyID == "" || t.CompanyID == companyID {
			out = append(out, cloneTour(t))
		}
	}
	return out, nil
}

func (r *MemoryTourRepo) Update(ctx context.Context, tour *Tour) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tours {
		if t.ID == tour.ID {
			r.tours[i] = cloneTour(tour)
			return nil
		}
	}
	return NotFoundError{Resource: "tour", ID: tour.ID}
}

func (r *MemoryTourRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tours {
		if t.ID == id {
			r.tours = append(r.tours[:i], r.tours[i+1:]...)
			return nil
		}
	}
	return NotFoundError{Resource: "tour", ID: id}
}
