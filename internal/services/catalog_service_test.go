package services

import (
	"context"
	"testing"

	"github.com/ilhadomel/passeios/internal/models"
)

func TestCreateCompanyDerivesSlug(t *testing.T) {
	env := newTestEnv()

	company, err := env.catalog.CreateCompany(context.Background(), &models.CompanyInput{
		Name:         "Passeios & Trilhas do Sul",
		ContactEmail: "contato@trilhas.com",
	})
	if err != nil {
		t.Fatalf("CreateCompany failed: %v", err)
	}
	if company.Slug != "passeios-trilhas-do-sul" {
		t.Errorf("slug: got %q", company.Slug)
	}
}

func TestCreateCompanyDuplicateSlug(t *testing.T) {
	env := newTestEnv()

	// Same derived slug as the seeded "Baía dos Golfinhos".
	_, err := env.catalog.CreateCompany(context.Background(), &models.CompanyInput{
		Name:         "Baia dos Golfinhos",
		ContactEmail: "outro@golfinhos.com",
	})
	if !models.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestDeleteCompanyBlockedByTours(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	err := env.catalog.DeleteCompany(ctx, "company-1")
	if !models.IsConflict(err) {
		t.Fatalf("expected ConflictError while tours exist, got %v", err)
	}

	// A company without tours can be removed.
	fresh, err := env.catalog.CreateCompany(ctx, &models.CompanyInput{
		Name:         "Empresa Vazia",
		ContactEmail: "vazia@email.com",
	})
	if err != nil {
		t.Fatalf("CreateCompany failed: %v", err)
	}
	if err := env.catalog.DeleteCompany(ctx, fresh.ID); err != nil {
		t.Fatalf("DeleteCompany failed: %v", err)
	}
}

func TestCreateTourValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.catalog.CreateTour(ctx, "company-1", &models.TourInput{
		Name:            "Sem Horários",
		Schedules:       []models.TourSchedule{},
		PickupLocations: []string{"Trapiche"},
	})
	if !models.IsValidation(err) {
		t.Fatalf("expected ValidationError for empty schedules, got %v", err)
	}

	_, err = env.catalog.CreateTour(ctx, "company-1", &models.TourInput{
		Name:            "Preço Negativo",
		Pricing:         models.TourPricing{Adult: -100},
		Schedules:       []models.TourSchedule{{Time: "10:00", Capacity: 10}},
		PickupLocations: []string{"Trapiche"},
	})
	if !models.IsValidation(err) {
		t.Fatalf("expected ValidationError for negative price, got %v", err)
	}

	_, err = env.catalog.CreateTour(ctx, "company-99", &models.TourInput{
		Name:            "Empresa Fantasma",
		Schedules:       []models.TourSchedule{{Time: "10:00", Capacity: 10}},
		PickupLocations: []string{"Trapiche"},
	})
	if !models.IsNotFound(err) {
		t.Fatalf("expected NotFoundError for unknown company, got %v", err)
	}
}

func TestUpdateTourKeepsOwner(t *testing.T) {
	env := newTestEnv()

	tour, err := env.catalog.UpdateTour(context.Background(), "tour-1", &models.TourInput{
		Name:            "Passeio com Golfinhos II",
		Pricing:         models.TourPricing{Adult: 16000, Child: 8000},
		Schedules:       []models.TourSchedule{{Time: "10:00", Capacity: 18}},
		PickupLocations: []string{"Trapiche de Brasília"},
	})
	if err != nil {
		t.Fatalf("UpdateTour failed: %v", err)
	}
	if tour.CompanyID != "company-1" {
		t.Errorf("company id must be immutable, got %q", tour.CompanyID)
	}
}

func TestDeleteTourBlockedByActiveBookings(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	// tour-1 carries the confirmed booking-1.
	err := env.catalog.DeleteTour(ctx, "tour-1")
	if !models.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}

	// Once every booking on the tour is cancelled, deletion goes through.
	if _, err := env.bookings.UpdateStatus(ctx, "booking-1", models.StatusCancelada); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if err := env.catalog.DeleteTour(ctx, "tour-1"); err != nil {
		t.Fatalf("DeleteTour failed: %v", err)
	}
}

func TestSellerCRUD(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	seller, err := env.catalog.CreateSeller(ctx, &models.SellerInput{
		Name:  "Pedro Vendas",
		Email: "pedro@vendas.com",
	})
	if err != nil {
		t.Fatalf("CreateSeller failed: %v", err)
	}

	updated, err := env.catalog.UpdateSeller(ctx, seller.ID, &models.SellerInput{
		Name:  "Pedro V. Silva",
		Email: "pedro@vendas.com",
	})
	if err != nil {
		t.Fatalf("UpdateSeller failed: %v", err)
	}
	if updated.Name != "Pedro V. Silva" {
		t.Errorf("name not updated: %q", updated.Name)
	}

	if err := env.catalog.DeleteSeller(ctx, seller.ID); err != nil {
		t.Fatalf("DeleteSeller failed: %v", err)
	}
	if _, err := env.catalog.GetSeller(ctx, seller.ID); !models.IsNotFound(err) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
}

func TestCreateSellerRejectsBadEmail(t *testing.T) {
	env := newTestEnv()

	_, err := env.catalog.CreateSeller(context.Background(), &models.SellerInput{
		Name:  "Sem Email",
		Email: "not-an-email",
	})
	if !models.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
