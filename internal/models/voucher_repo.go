package models

import (
	"context"
	"strings"
	"sync"
)

type VoucherRepo interface {
	// Insert adds a voucher, failing with ConflictError when the code is
	// already taken. Lookup and uniqueness are case-insensitive.
	Insert(ctx context.Context, voucher *Voucher) error
	GetByCode(ctx context.Context, code string) (*Voucher, error)
	// ListBySeller returns the seller's vouchers, optionally narrowed to one
	// company when companyID is non-empty.
	ListBySeller(ctx context.Context, sellerID, companyID string) ([]*Voucher, error)
	Delete(ctx context.Context, code string) error
}

type MemoryVoucherRepo struct {
	mu       sync.RWMutex
	vouchers []*Voucher
}

func NewMemoryVoucherRepo() *MemoryVoucherRepo {
	return &MemoryVoucherRepo{}
}

func (r *MemoryVoucherRepo) Insert(ctx context.Context, voucher *Voucher) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.vouchers {
		if strings.EqualFold(v.Code, voucher.Code) {
			return ConflictError{Resource: "voucher", Msg: "code " + voucher.Code + " already exists"}
		}
	}
	cp := *voucher
	r.vouchers = append(r.vouchers, &cp)
	return nil
}

func (r *MemoryVoucherRepo) GetByCode(ctx context.Context, code string) (*Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.vouchers {
		if strings.EqualFold(v.Code, code) {
			cp := *v
			return &cp, nil
		}
	}
	return nil, NotFoundError{Resource: "voucher", ID: code}
}

func (r *MemoryVoucherRepo) ListBySeller(ctx context.Context, sellerID, companyID string) ([]*Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Voucher
	for _, v := range r.vouchers {
		if v.SellerID != sellerID {
			continue
		}
		if companyID != "" && v.CompanyID != companyID {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemoryVoucherRepo) Delete(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, v := range r.vouchers {
		if strings.EqualFold(v.Code, code) {
			r.vouchers = append(r.vouchers[:i], r.vouchers[i+1:]...)
			return nil
		}
	}
	return NotFoundError{Resource: "voucher", ID: code}
}
