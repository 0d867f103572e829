package services

import (
	"context"
	"strings"
	"testing"

	"github.com/ilhadomel/passeios/internal/models"
)

func TestResolveExplicitSellerWins(t *testing.T) {
	env := newTestEnv()

	// Conflicting inputs: link says seller-2, voucher belongs to seller-1.
	sellerID, err := env.referral.Resolve(context.Background(), models.ReferralContext{
		ExplicitSellerID: "seller-2",
		VoucherCode:      "JOAO-GOLFINHOS-123",
		TargetCompanyID:  "company-1",
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sellerID != "seller-2" {
		t.Errorf("explicit seller id should win, got %q", sellerID)
	}
}

func TestResolveVoucherCaseInsensitive(t *testing.T) {
	env := newTestEnv()

	sellerID, err := env.referral.Resolve(context.Background(), models.ReferralContext{
		VoucherCode:     "joao-golfinhos-123",
		TargetCompanyID: "company-1",
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sellerID != "seller-1" {
		t.Errorf("expected seller-1, got %q", sellerID)
	}
}

func TestResolveVoucherCompanyMismatch(t *testing.T) {
	env := newTestEnv()

	_, err := env.referral.Resolve(context.Background(), models.ReferralContext{
		VoucherCode:     "JOAO-GOLFINHOS-123",
		TargetCompanyID: "company-2",
	})
	if !models.IsAttribution(err) {
		t.Fatalf("expected AttributionError, got %v", err)
	}
}

func TestResolveVoucherNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.referral.Resolve(context.Background(), models.ReferralContext{
		VoucherCode:     "NO-SUCH-CODE",
		TargetCompanyID: "company-1",
	})
	if !models.IsAttribution(err) {
		t.Fatalf("expected AttributionError, got %v", err)
	}
}

func TestResolveNoInputsIsAnonymous(t *testing.T) {
	env := newTestEnv()

	sellerID, err := env.referral.Resolve(context.Background(), models.ReferralContext{
		TargetCompanyID: "company-1",
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if sellerID != "" {
		t.Errorf("expected no attribution, got %q", sellerID)
	}
}

func TestIssueVoucherGeneratesUniqueCodes(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		voucher, err := env.referral.IssueVoucher(ctx, "seller-1", "company-2")
		if err != nil {
			t.Fatalf("IssueVoucher failed on attempt %d: %v", i, err)
		}
		if !strings.HasPrefix(voucher.Code, "JOAO-MAR-") {
			t.Errorf("unexpected code format: %q", voucher.Code)
		}
		key := strings.ToLower(voucher.Code)
		if seen[key] {
			t.Errorf("duplicate voucher code issued: %q", voucher.Code)
		}
		seen[key] = true
	}
}

func TestIssueVoucherUnknownSeller(t *testing.T) {
	env := newTestEnv()

	_, err := env.referral.IssueVoucher(context.Background(), "seller-99", "company-1")
	if !models.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestReferralLink(t *testing.T) {
	env := newTestEnv()

	link, err := env.referral.ReferralLink(context.Background(), "company-1", "seller-1")
	if err != nil {
		t.Fatalf("ReferralLink failed: %v", err)
	}
	want := "http://localhost:3000/#/company/baia-dos-golfinhos?sellerId=seller-1"
	if link != want {
		t.Errorf("got %q, want %q", link, want)
	}
}

func TestReferralQRProducesPNG(t *testing.T) {
	env := newTestEnv()

	png, err := env.referral.ReferralQR(context.Background(), "company-1", "seller-1")
	if err != nil {
		t.Fatalf("ReferralQR failed: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("expected PNG bytes")
	}
	if string(png[1:4]) != "PNG" {
		t.Errorf("output is not a PNG")
	}
}

func TestVoucherSheetProducesPDF(t *testing.T) {
	env := newTestEnv()

	pdf, err := env.referral.VoucherSheet(context.Background(), "seller-1", "company-1")
	if err != nil {
		t.Fatalf("VoucherSheet failed: %v", err)
	}
	if !strings.HasPrefix(string(pdf), "%PDF") {
		t.Errorf("output is not a PDF")
	}
}
