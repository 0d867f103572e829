package models

import (
	"context"
	"sync"
)

type BookingRepo interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	// List returns every booking, optionally narrowed by company, in
	// insertion order.
	List(ctx context.Context, companyID string) ([]*Booking, error)
	ListByCPF(ctx context.Context, cpf string) ([]*Booking, error)
	// UpdateStatus moves a booking to a new status. The terminal-state rule
	// is enforced here, under the collection lock: nothing ever leaves
	// Cancelada.
	UpdateStatus(ctx context.Context, id string, status BookingStatus) (*Booking, error)
}

type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings []*Booking
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{}
}

func (r *MemoryBookingRepo) Create(ctx context.Context, booking *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *booking
	r.bookings = append(r.bookings, &cp)
	return nil
}

func (r *MemoryBookingRepo) GetByID(ctx context.Context, id string) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, NotFoundError{Resource: "booking", ID: id}
}

func (r *MemoryBookingRepo) List(ctx context.Context, companyID string) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Booking
	for _, b := range r.bookings {
		if companyID == "" || b.CompanyID == companyID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepo) ListByCPF(ctx context.Context, cpf string) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Booking
	for _, b := range r.bookings {
		if b.CustomerCPF == cpf {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepo) UpdateStatus(ctx context.Context, id string, status BookingStatus) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.ID != id {
			continue
		}
		if b.Status == StatusCancelada {
			return nil, InvalidTransitionError{BookingID: id, From: b.Status, To: status}
		}
		b.Status = status
		cp := *b
		return &cp, nil
	}
	return nil, NotFoundError{Resource: "booking", ID: id}
}
