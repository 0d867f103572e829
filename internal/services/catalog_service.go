package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ilhadomel/passeios/internal/helpers"
	"github.com/ilhadomel/passeios/internal/models"
)

// CatalogService owns companies, tours and sellers: the read-mostly data the
// booking and reporting flows build on. All mutation goes through the master
// admin or a company's own dashboard.
type CatalogService struct {
	companies models.CompanyRepo
	tours     models.TourRepo
	sellers   models.SellerRepo
	bookings  models.BookingRepo
}

func NewCatalogService(companies models.CompanyRepo, tours models.TourRepo, sellers models.SellerRepo, bookings models.BookingRepo) *CatalogService {
	return &CatalogService{
		companies: companies,
		tours:     tours,
		sellers:   sellers,
		bookings:  bookings,
	}
}

func (cs *CatalogService) CreateCompany(ctx context.Context, input *models.CompanyInput) (*models.Company, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.ValidationError{Msg: err.Error()}
	}
	slug := helpers.Slugify(input.Name)
	if slug == "" {
		return nil, models.ValidationError{Field: "name", Msg: "name must contain at least one letter or digit"}
	}
	company := &models.Company{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Slug:         slug,
		Description:  input.Description,
		LogoURL:      input.LogoURL,
		ContactEmail: input.ContactEmail,
	}
	if err := cs.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// UpdateCompany re-derives the slug from the new name; the repository
// rejects the update when the derived slug collides with another company.
func (cs *CatalogService) UpdateCompany(ctx context.Context, id string, input *models.CompanyInput) (*models.Company, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.ValidationError{Msg: err.Error()}
	}
	company, err := cs.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	company.Name = input.Name
	company.Slug = helpers.Slugify(input.Name)
	company.Description = input.Description
	company.LogoURL = input.LogoURL
	company.ContactEmail = input.ContactEmail
	if err := cs.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// DeleteCompany is blocked while the company still owns tours, so bookings
// and reports never point at an orphaned catalog entry.
func (cs *CatalogService) DeleteCompany(ctx context.Context, id string) error {
	if _, err := cs.companies.GetByID(ctx, id); err != nil {
		return err
	}
	tours, err := cs.tours.ListByCompany(ctx, id)
	if err != nil {
		return err
	}
	if len(tours) > 0 {
		return models.ConflictError{Resource: "company", Msg: "delete its tours first"}
	}
	return cs.companies.Delete(ctx, id)
}

func (cs *CatalogService) ListCompanies(ctx context.Context) ([]*models.Company, error) {
	return cs.companies.List(ctx)
}

func (cs *CatalogService) GetCompanyBySlug(ctx context.Context, slug string) (*models.Company, []*models.Tour, error) {
	company, err := cs.companies.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	tours, err := cs.tours.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, nil, err
	}
	return company, tours, nil
}

func (cs *CatalogService) CreateTour(ctx context.Context, companyID string, input *models.TourInput) (*models.Tour, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.ValidationError{Msg: err.Error()}
	}
	if err := validatePricing(input.Pricing); err != nil {
		return nil, err
	}
	if _, err := cs.companies.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	tour := &models.Tour{
		ID:              uuid.NewString(),
		CompanyID:       companyID,
		Name:            input.Name,
		Description:     input.Description,
		Duration:        input.Duration,
		Pricing:         input.Pricing,
		Schedules:       input.Schedules,
		PickupLocations: input.PickupLocations,
	}
	if err := cs.tours.Create(ctx, tour); err != nil {
		return nil, err
	}
	return tour, nil
}

// UpdateTour edits everything except the owner: companyId is immutable.
// Existing bookings keep their frozen totals regardless of pricing edits.
func (cs *CatalogService) UpdateTour(ctx context.Context, tourID string, input *models.TourInput) (*models.Tour, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.ValidationError{Msg: err.Error()}
	}
	if err := validatePricing(input.Pricing); err != nil {
		return nil, err
	}
	tour, err := cs.tours.GetByID(ctx, tourID)
	if err != nil {
		return nil, err
	}
	tour.Name = input.Name
	tour.Description = input.Description
	tour.Duration = input.Duration
	tour.Pricing = input.Pricing
	tour.Schedules = input.Schedules
	tour.PickupLocations = input.PickupLocations
	if err := cs.tours.Update(ctx, tour); err != nil {
		return nil, err
	}
	return tour, nil
}

// DeleteTour is blocked while the tour has bookings that are not cancelled.
func (cs *CatalogService) DeleteTour(ctx context.Context, tourID string) error {
	tour, err := cs.tours.GetByID(ctx, tourID)
	if err != nil {
		return err
	}
	bookings, err := cs.bookings.List(ctx, tour.CompanyID)
	if err != nil {
		return err
	}
	for _, b := range bookings {
		if b.TourID == tourID && b.Status != models.StatusCancelada {
			return models.ConflictError{Resource: "tour", Msg: "tour has active bookings"}
		}
	}
	return cs.tours.Delete(ctx, tourID)
}

func (cs *CatalogService) GetTour(ctx context.Context, id string) (*models.Tour, error) {
	return cs.tours.GetByID(ctx, id)
}

func (cs *CatalogService) ListTours(ctx context.Context, companyID string) ([]*models.Tour, error) {
	return cs.tours.ListByCompany(ctx, companyID)
}

func (cs *CatalogService) CreateSeller(ctx context.Context, input *models.SellerInput) (*models.Seller, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.ValidationError{Msg: err.Error()}
	}
	seller := &models.Seller{
		ID:    uuid.NewString(),
		Name:  input.Name,
		Email: input.Email,
	}
	if err := cs.sellers.Create(ctx, seller); err != nil {
		return nil, err
	}
	return seller, nil
}

func (cs *CatalogService) UpdateSeller(ctx context.Context, id string, input *models.SellerInput) (*models.Seller, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.ValidationError{Msg: err.Error()}
	}
	seller, err := cs.sellers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	seller.Name = input.Name
	seller.Email = input.Email
	if err := cs.sellers.Update(ctx, seller); err != nil {
		return nil, err
	}
	return seller, nil
}

func (cs *CatalogService) DeleteSeller(ctx context.Context, id string) error {
	return cs.sellers.Delete(ctx, id)
}

func (cs *CatalogService) ListSellers(ctx context.Context) ([]*models.Seller, error) {
	return cs.sellers.List(ctx)
}

func (cs *CatalogService) GetSeller(ctx context.Context, id string) (*models.Seller, error) {
	return cs.sellers.GetByID(ctx, id)
}

func validatePricing(p models.TourPricing) error {
	if p.Adult < 0 || p.Child < 0 || p.Infant < 0 {
		return models.ValidationError{Field: "pricing", Msg: "tier prices cannot be negative"}
	}
	return nil
}
