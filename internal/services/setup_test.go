package services

import (
	"context"

	"github.com/ilhadomel/passeios/internal/models"
)

type testEnv struct {
	companies *models.MemoryCompanyRepo
	tours     *models.MemoryTourRepo
	sellers   *models.MemorySellerRepo
	vouchers  *models.MemoryVoucherRepo
	bookings  *models.MemoryBookingRepo

	catalog  *CatalogService
	referral *ReferralService
	booking  *BookingService
	report   *ReportService
}

// newTestEnv wires every service against fresh in-memory repositories loaded
// with the demo fixtures: two companies, two sellers, four tours, two
// vouchers and four bookings.
func newTestEnv() *testEnv {
	ctx := context.Background()
	env := &testEnv{
		companies: models.NewMemoryCompanyRepo(),
		tours:     models.NewMemoryTourRepo(),
		sellers:   models.NewMemorySellerRepo(),
		vouchers:  models.NewMemoryVoucherRepo(),
		bookings:  models.NewMemoryBookingRepo(),
	}
	for _, c := range models.DemoCompanies() {
		if err := env.companies.Create(ctx, c); err != nil {
			panic(err)
		}
	}
	for _, t := range models.DemoTours() {
		if err := env.tours.Create(ctx, t); err != nil {
			panic(err)
		}
	}
	for _, s := range models.DemoSellers() {
		if err := env.sellers.Create(ctx, s); err != nil {
			panic(err)
		}
	}
	for _, v := range models.DemoVouchers() {
		if err := env.vouchers.Insert(ctx, v); err != nil {
			panic(err)
		}
	}
	for _, b := range models.DemoBookings() {
		if err := env.bookings.Create(ctx, b); err != nil {
			panic(err)
		}
	}

	env.catalog = NewCatalogService(env.companies, env.tours, env.sellers, env.bookings)
	env.referral = NewReferralService(env.vouchers, env.sellers, env.companies, "http://localhost:3000")
	env.booking = NewBookingService(env.bookings, env.tours, env.companies, env.sellers, env.referral)
	env.report = NewReportService(env.bookings, env.companies, env.sellers, 10)
	return env
}

func validBookingInput() *models.BookingInput {
	return &models.BookingInput{
		TourID:                 "tour-1",
		CustomerName:           "Carlos Silva",
		CustomerCPF:            "111.222.333-44",
		BookingDate:            "2024-09-01",
		SelectedTime:           "09:00",
		SelectedPickupLocation: "Trapiche de Brasília",
		Passengers:             models.BookingPassengers{Adults: 2, Children: 1},
	}
}
