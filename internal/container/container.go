package container

import (
	"context"
	"log/slog"

	"github.com/ilhadomel/passeios/internal/config"
	"github.com/ilhadomel/passeios/internal/models"
	"github.com/ilhadomel/passeios/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger *slog.Logger
	Config *config.Config

	Companies models.CompanyRepo
	Tours     models.TourRepo
	Sellers   models.SellerRepo
	Vouchers  models.VoucherRepo
	Bookings  models.BookingRepo

	CatalogService  *services.CatalogService
	ReferralService *services.ReferralService
	BookingService  *services.BookingService
	ReportService   *services.ReportService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config) *Container {
	companies := models.NewMemoryCompanyRepo()
	tours := models.NewMemoryTourRepo()
	sellers := models.NewMemorySellerRepo()
	vouchers := models.NewMemoryVoucherRepo()
	bookings := models.NewMemoryBookingRepo()

	if cfg.SeedDemoData {
		seedDemoData(logger, companies, tours, sellers, vouchers, bookings)
	}

	catalogService := services.NewCatalogService(companies, tours, sellers, bookings)
	referralService := services.NewReferralService(vouchers, sellers, companies, cfg.PublicBaseURL)
	bookingService := services.NewBookingService(bookings, tours, companies, sellers, referralService)
	reportService := services.NewReportService(bookings, companies, sellers, cfg.CommissionPercent)

	return &Container{
		Logger:          logger,
		Config:          cfg,
		Companies:       companies,
		Tours:           tours,
		Sellers:         sellers,
		Vouchers:        vouchers,
		Bookings:        bookings,
		CatalogService:  catalogService,
		ReferralService: referralService,
		BookingService:  bookingService,
		ReportService:   reportService,
	}
}

func seedDemoData(logger *slog.Logger, companies *models.MemoryCompanyRepo, tours *models.MemoryTourRepo, sellers *models.MemorySellerRepo, vouchers *models.MemoryVoucherRepo, bookings *models.MemoryBookingRepo) {
	ctx := context.Background()
	for _, c := range models.DemoCompanies() {
		if err := companies.Create(ctx, c); err != nil {
			logger.Warn("skipping demo company", "id", c.ID, "error", err)
		}
	}
	for _, t := range models.DemoTours() {
		if err := tours.Create(ctx, t); err != nil {
			logger.Warn("skipping demo tour", "id", t.ID, "error", err)
		}
	}
	for _, s := range models.DemoSellers() {
		if err := sellers.Create(ctx, s); err != nil {
			logger.Warn("skipping demo seller", "id", s.ID, "error", err)
		}
	}
	for _, v := range models.DemoVouchers() {
		if err := vouchers.Insert(ctx, v); err != nil {
			logger.Warn("skipping demo voucher", "code", v.Code, "error", err)
		}
	}
	for _, b := range models.DemoBookings() {
		if err := bookings.Create(ctx, b); err != nil {
			logger.Warn("skipping demo booking", "id", b.ID, "error", err)
		}
	}
	logger.Info("Demo data loaded")
}
