package models

import (
	"context"
	"sync"
)

type SellerRepo interface {
	Create(ctx context.Context, seller *Seller) error
	GetByID(ctx context.Context, id string) (*Seller, error)
	List(ctx context.Context) ([]*Seller, error)
	Update(ctx context.Context, seller *Seller) error
	Delete(ctx context.Context, id string) error
}

type MemorySellerRepo struct {
	mu      sync.RWMutex
	sellers []*Seller
}

func NewMemorySellerRepo() *MemorySellerRepo {
	return &MemorySellerRepo{}
}

func (r *MemorySellerRepo) Create(ctx context.Context, seller *Seller) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *seller
	r.sellers = append(r.sellers, &cp)
	return nil
}

func (r *MemorySellerRepo) GetByID(ctx context.Context, id string) (*Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sellers {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, NotFoundError{Resource: "seller", ID: id}
}

func (r *MemorySellerRepo) List(ctx context.Context) ([]*Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Seller, 0, len(r.sellers))
	for _, s := range r.sellers {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemorySellerRepo) Update(ctx context.Context, seller *Seller) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.sellers {
		if s.ID == seller.ID {
			cp := *seller
			r.sellers[i] = &cp
			return nil
		}
	}
	return NotFoundError{Resource: "seller", ID: seller.ID}
}

func (r *MemorySellerRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.sellers {
		if s.ID == id {
			r.sellers = append(r.sellers[:i], r.sellers[i+1:]...)
			return nil
		}
	}
	return NotFoundError{Resource: "seller", ID: id}
}
