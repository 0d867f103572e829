package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/ilhadomel/passeios/internal/models"
)

func TestPlatformReportTotals(t *testing.T) {
	env := newTestEnv()

	report, err := env.report.Platform(context.Background())
	if err != nil {
		t.Fatalf("Platform failed: %v", err)
	}
	// Fixtures: 375.00 + 120.00 + 360.00 + 770.00, none cancelled.
	if report.TotalRevenue != 162500 {
		t.Errorf("total revenue: got %s, want 1625.00", report.TotalRevenue)
	}
	if report.TotalBookings != 4 {
		t.Errorf("total bookings: got %d, want 4", report.TotalBookings)
	}
	// Commission over attributed sales only: 10% of 375+120+770.
	if report.TotalCommission != 12650 {
		t.Errorf("total commission: got %s, want 126.50", report.TotalCommission)
	}
}

func TestSellerCommissionExcludesCancelled(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	// seller-1 holds bookings of 375.00 (company-1) and 770.00 (company-2).
	// Cancel the first: 10% of 770.00 remains.
	if _, err := env.bookings.UpdateStatus(ctx, "booking-1", models.StatusCancelada); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	row, err := env.report.SellerSales(ctx, "seller-1")
	if err != nil {
		t.Fatalf("SellerSales failed: %v", err)
	}
	if row.SalesCount != 1 {
		t.Errorf("sales count: got %d, want 1", row.SalesCount)
	}
	if row.Revenue != 77000 {
		t.Errorf("revenue: got %s, want 770.00", row.Revenue)
	}
	if row.Commission != 7700 {
		t.Errorf("commission: got %s, want 77.00", row.Commission)
	}
}

func TestSellerCommissionScenario(t *testing.T) {
	// A seller with two live bookings of 120.00 and 770.00 earns 89.00.
	env := newTestEnv()
	ctx := context.Background()

	bookings := models.NewMemoryBookingRepo()
	b1 := *mustGet(t, env.bookings, "booking-2")
	b1.SellerID = "seller-1"
	if err := bookings.Create(ctx, &b1); err != nil {
		t.Fatal(err)
	}
	b2 := *mustGet(t, env.bookings, "booking-4")
	if err := bookings.Create(ctx, &b2); err != nil {
		t.Fatal(err)
	}

	report := NewReportService(bookings, env.companies, env.sellers, 10)
	row, err := report.SellerSales(ctx, "seller-1")
	if err != nil {
		t.Fatalf("SellerSales failed: %v", err)
	}
	if row.Commission != 8900 {
		t.Errorf("commission: got %s, want 89.00", row.Commission)
	}
}

func TestCompanyReportExcludesCancelled(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	if _, err := env.bookings.UpdateStatus(ctx, "booking-3", models.StatusCancelada); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	report, err := env.report.Platform(ctx)
	if err != nil {
		t.Fatalf("Platform failed: %v", err)
	}
	for _, row := range report.ByCompany {
		if row.CompanyID == "company-1" {
			if row.BookingsCount != 1 {
				t.Errorf("company-1 bookings: got %d, want 1", row.BookingsCount)
			}
			if row.Revenue != 37500 {
				t.Errorf("company-1 revenue: got %s, want 375.00", row.Revenue)
			}
		}
	}
}

func TestPlatformReportIdempotent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	first, err := env.report.Platform(ctx)
	if err != nil {
		t.Fatalf("Platform failed: %v", err)
	}
	second, err := env.report.Platform(ctx)
	if err != nil {
		t.Fatalf("Platform failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("same booking set produced different reports")
	}
}

func TestReportSortStableOnTies(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	// Give seller-2 the same revenue as seller-1 by adding a balancing
	// booking; insertion order must break the tie.
	bookings := models.NewMemoryBookingRepo()
	for _, b := range models.DemoBookings() {
		if err := bookings.Create(ctx, b); err != nil {
			t.Fatal(err)
		}
	}
	extra := *mustGet(t, env.bookings, "booking-2")
	extra.ID = "booking-5"
	extra.TotalPrice = 114500 - extra.TotalPrice // seller-2 total == 1145.00
	if err := bookings.Create(ctx, &extra); err != nil {
		t.Fatal(err)
	}

	report := NewReportService(bookings, env.companies, env.sellers, 10)
	out, err := report.Platform(ctx)
	if err != nil {
		t.Fatalf("Platform failed: %v", err)
	}
	if len(out.BySeller) != 2 {
		t.Fatalf("expected 2 seller rows, got %d", len(out.BySeller))
	}
	if out.BySeller[0].Revenue != out.BySeller[1].Revenue {
		t.Fatalf("fixture no longer produces a tie: %s vs %s", out.BySeller[0].Revenue, out.BySeller[1].Revenue)
	}
	if out.BySeller[0].SellerID != "seller-1" {
		t.Errorf("tie must keep first-seen order; got %q first", out.BySeller[0].SellerID)
	}
}

func TestCompanySellersReport(t *testing.T) {
	env := newTestEnv()

	rows, err := env.report.CompanySellers(context.Background(), "company-2")
	if err != nil {
		t.Fatalf("CompanySellers failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// seller-1 sold 770.00 for company-2, seller-2 sold 120.00.
	if rows[0].SellerID != "seller-1" || rows[0].Revenue != 77000 {
		t.Errorf("unexpected top row: %+v", rows[0])
	}
	if rows[1].Commission != 1200 {
		t.Errorf("seller-2 commission: got %s, want 12.00", rows[1].Commission)
	}
}

func mustGet(t *testing.T, repo models.BookingRepo, id string) *models.Booking {
	t.Helper()
	b, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("fixture booking %s missing: %v", id, err)
	}
	return b
}
