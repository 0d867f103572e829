package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/ilhadomel/passeios/internal/helpers"
	"github.com/ilhadomel/passeios/internal/models"
)

// voucherIssueAttempts bounds code regeneration when the random suffix
// collides with an existing voucher.
const voucherIssueAttempts = 10

type ReferralService struct {
	vouchers  models.VoucherRepo
	sellers   models.SellerRepo
	companies models.CompanyRepo
	baseURL   string
}

func NewReferralService(vouchers models.VoucherRepo, sellers models.SellerRepo, companies models.CompanyRepo, baseURL string) *ReferralService {
	return &ReferralService{
		vouchers:  vouchers,
		sellers:   sellers,
		companies: companies,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Resolve decides which seller, if any, gets credit for a booking.
//
// An explicit seller id from a referral link always wins and is not checked
// against the company: the link was built for that company by the seller
// tooling. Otherwise a typed voucher code is looked up case-insensitively
// and must belong to the target company. With neither input the booking is
// anonymous and the returned id is empty.
func (rs *ReferralService) Resolve(ctx context.Context, rc models.ReferralContext) (string, error) {
	if rc.ExplicitSellerID != "" {
		return rc.ExplicitSellerID, nil
	}
	code := strings.TrimSpace(rc.VoucherCode)
	if code == "" {
		return "", nil
	}
	voucher, err := rs.vouchers.GetByCode(ctx, code)
	if err != nil {
		if models.IsNotFound(err) {
			return "", models.AttributionError{Code: code, Msg: "voucher not found"}
		}
		return "", err
	}
	if voucher.CompanyID != rc.TargetCompanyID {
		return "", models.AttributionError{Code: code, Msg: "voucher not valid for this company"}
	}
	return voucher.SellerID, nil
}

// IssueVoucher creates a new company-scoped code for a seller. Codes look
// like JOAO-GOLFINHOS-123; on a suffix collision a fresh code is generated
// and the insert retried.
func (rs *ReferralService) IssueVoucher(ctx context.Context, sellerID, companyID string) (*models.Voucher, error) {
	seller, err := rs.sellers.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	company, err := rs.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	prefix := helpers.FirstWord(seller.Name) + "-" + helpers.FirstWord(company.Name)
	for attempt := 0; attempt < voucherIssueAttempts; attempt++ {
		voucher := &models.Voucher{
			Code:      fmt.Sprintf("%s-%d", prefix, 100+rand.IntN(900)),
			SellerID:  seller.ID,
			CompanyID: company.ID,
		}
		err := rs.vouchers.Insert(ctx, voucher)
		if err == nil {
			return voucher, nil
		}
		if !models.IsConflict(err) {
			return nil, err
		}
	}
	return nil, models.ConflictError{Resource: "voucher", Msg: "could not generate a unique code"}
}

func (rs *ReferralService) ListVouchers(ctx context.Context, sellerID, companyID string) ([]*models.Voucher, error) {
	if _, err := rs.sellers.GetByID(ctx, sellerID); err != nil {
		return nil, err
	}
	return rs.vouchers.ListBySeller(ctx, sellerID, companyID)
}

func (rs *ReferralService) DeleteVoucher(ctx context.Context, code string) error {
	return rs.vouchers.Delete(ctx, code)
}

// ReferralLink builds the shareable URL that tags a sale to a seller. The
// public site uses hash routing, so the path rides behind "#".
func (rs *ReferralService) ReferralLink(ctx context.Context, companyID, sellerID string) (string, error) {
	if _, err := rs.sellers.GetByID(ctx, sellerID); err != nil {
		return "", err
	}
	company, err := rs.companies.GetByID(ctx, companyID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/#/company/%s?sellerId=%s", rs.baseURL, company.Slug, sellerID), nil
}

// ReferralQR renders the referral link as a 256x256 PNG.
func (rs *ReferralService) ReferralQR(ctx context.Context, companyID, sellerID string) ([]byte, error) {
	link, err := rs.ReferralLink(ctx, companyID, sellerID)
	if err != nil {
		return nil, err
	}
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %v", err)
	}
	return png, nil
}

// VoucherSheet renders a printable PDF with the seller's codes for one
// company plus the referral link.
func (rs *ReferralService) VoucherSheet(ctx context.Context, sellerID, companyID string) ([]byte, error) {
	seller, err := rs.sellers.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	company, err := rs.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	vouchers, err := rs.vouchers.ListBySeller(ctx, sellerID, companyID)
	if err != nil {
		return nil, err
	}
	link, err := rs.ReferralLink(ctx, companyID, sellerID)
	if err != nil {
		return nil, err
	}
	return helpers.VoucherSheetPDF(seller, company, vouchers, link)
}
