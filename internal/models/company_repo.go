package models

import (
	"context"
	"sync"
)

type CompanyRepo interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	GetBySlug(ctx context.Context, slug string) (*Company, error)
	List(ctx context.Context) ([]*Company, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id string) error
}

// MemoryCompanyRepo stores companies in insertion order. Reads hand out
// copies so callers can never mutate committed state in place.
type MemoryCompanyRepo struct {
	mu        sync.RWMutex
	companies []*Company
}

func NewMemoryCompanyRepo() *MemoryCompanyRepo {
	return &MemoryCompanyRepo{}
}

func (r *MemoryCompanyRepo) Create(ctx context.Context, company *Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.companies {
		if c.Slug == company.Slug {
			return ConflictError{Resource: "company", Msg: "slug " + company.Slug + " is already taken"}
		}
	}
	cp := *company
	r.companies = append(r.companies, &cp)
	return nil
}

func (r *MemoryCompanyRepo) GetByID(ctx context.Context, id string) (*Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.companies {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, NotFoundError{Resource: "company", ID: id}
}

func (r *MemoryCompanyRepo) GetBySlug(ctx context.Context, slug string) (*Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.companies {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, NotFoundError{Resource: "company", ID: slug}
}

func (r *MemoryCompanyRepo) List(ctx context.Context) ([]*Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Company, 0, len(r.companies))
	for _, c := range r.companies {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemoryCompanyRepo) Update(ctx context.Context, company *Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.companies {
		if c.Slug == company.Slug && c.ID != company.ID {
			return ConflictError{Resource: "company", Msg: "slug " + company.Slug + " is already taken"}
		}
	}
	for i, c := range r.companies {
		if c.ID == company.ID {
			cp := *company
			r.companies[i] = &cp
			return nil
		}
	}
	return NotFoundError{Resource: "company", ID: company.ID}
}

func (r *MemoryCompanyRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.companies {
		if c.ID == id {
			r.companies = append(r.companies[:i], r.companies[i+1:]...)
			return nil
		}
	}
	return NotFoundError{Resource: "company", ID: id}
}
