package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ilhadomel/passeios/internal/models"
)

type BookingService struct {
	bookings  models.BookingRepo
	tours     models.TourRepo
	companies models.CompanyRepo
	sellers   models.SellerRepo
	referrals *ReferralService
}

func NewBookingService(bookings models.BookingRepo, tours models.TourRepo, companies models.CompanyRepo, sellers models.SellerRepo, referrals *ReferralService) *BookingService {
	return &BookingService{
		bookings:  bookings,
		tours:     tours,
		companies: companies,
		sellers:   sellers,
		referrals: referrals,
	}
}

// Create validates the booking request, resolves seller attribution and
// freezes the total price. A voucher that fails attribution blocks the whole
// booking; it never falls back to an anonymous sale.
func (bs *BookingService) Create(ctx context.Context, input *models.BookingInput) (*models.Booking, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, models.ValidationError{Msg: err.Error()}
	}

	tour, err := bs.tours.GetByID(ctx, input.TourID)
	if err != nil {
		return nil, err
	}
	if !tour.HasSchedule(input.SelectedTime) {
		return nil, models.ValidationError{Field: "selected_time", Msg: input.SelectedTime + " is not a schedule of this tour"}
	}
	if !tour.HasPickupLocation(input.SelectedPickupLocation) {
		return nil, models.ValidationError{Field: "selected_pickup_location", Msg: input.SelectedPickupLocation + " is not a pickup location of this tour"}
	}
	if _, err := time.Parse("2006-01-02", input.BookingDate); err != nil {
		return nil, models.ValidationError{Field: "booking_date", Msg: "expected format YYYY-MM-DD"}
	}

	sellerID, err := bs.referrals.Resolve(ctx, models.ReferralContext{
		ExplicitSellerID: input.SellerID,
		VoucherCode:      input.VoucherCode,
		TargetCompanyID:  tour.CompanyID,
	})
	if err != nil {
		return nil, err
	}

	total, err := tour.Quote(input.Passengers)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:                     uuid.NewString(),
		TourID:                 tour.ID,
		CompanyID:              tour.CompanyID,
		CustomerName:           strings.TrimSpace(input.CustomerName),
		CustomerCPF:            strings.TrimSpace(input.CustomerCPF),
		BookingDate:            input.BookingDate,
		SelectedTime:           input.SelectedTime,
		SelectedPickupLocation: input.SelectedPickupLocation,
		Passengers:             input.Passengers,
		TotalPrice:             total,
		SellerID:               sellerID,
		Status:                 models.StatusPendente,
		CreatedAt:              time.Now().UTC(),
	}
	if err := bs.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// SetStatus applies a lifecycle transition on behalf of an actor. Company
// staff and the master admin move bookings freely between states; customers
// may only cancel, and only with the exact CPF stored on the booking. The
// terminal rule on Cancelada is enforced by the repository for every actor.
func (bs *BookingService) SetStatus(ctx context.Context, bookingID string, newStatus models.BookingStatus, actor models.Actor) (*models.Booking, error) {
	if _, err := models.ParseBookingStatus(string(newStatus)); err != nil {
		return nil, err
	}

	booking, err := bs.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case models.RoleMaster:
	case models.RoleCompany:
		if actor.CompanyID != booking.CompanyID {
			return nil, models.UnauthorizedError{Msg: "booking belongs to another company"}
		}
	case models.RoleCustomer:
		if newStatus != models.StatusCancelada {
			return nil, models.UnauthorizedError{Msg: "customers may only cancel their bookings"}
		}
		if strings.TrimSpace(actor.CustomerCPF) != booking.CustomerCPF {
			return nil, models.UnauthorizedError{Msg: "document does not match this booking"}
		}
	default:
		return nil, models.UnauthorizedError{Msg: "role cannot change booking status"}
	}

	return bs.bookings.UpdateStatus(ctx, bookingID, newStatus)
}

// CancelByCustomer is the customer self-service path: cancel by booking id
// plus ownership proof.
func (bs *BookingService) CancelByCustomer(ctx context.Context, bookingID, cpf string) (*models.Booking, error) {
	return bs.SetStatus(ctx, bookingID, models.StatusCancelada, models.Actor{
		Role:        models.RoleCustomer,
		CustomerCPF: cpf,
	})
}

// SearchByCPF returns the customer's bookings, enriched with tour, company
// and seller names for display. The match is exact string equality on the
// stored document value.
func (bs *BookingService) SearchByCPF(ctx context.Context, cpf string) ([]*models.BookingSummary, error) {
	cpf = strings.TrimSpace(cpf)
	if cpf == "" {
		return nil, models.ValidationError{Field: "cpf", Msg: "document is required"}
	}
	bookings, err := bs.bookings.ListByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}

	summaries := make([]*models.BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		summary := &models.BookingSummary{Booking: *b}
		if tour, err := bs.tours.GetByID(ctx, b.TourID); err == nil {
			summary.TourName = tour.Name
		}
		if company, err := bs.companies.GetByID(ctx, b.CompanyID); err == nil {
			summary.CompanyName = company.Name
			summary.CompanyContactEmail = company.ContactEmail
		}
		if b.SellerID != "" {
			if seller, err := bs.sellers.GetByID(ctx, b.SellerID); err == nil {
				summary.SellerName = seller.Name
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// ListForCompany returns a company's bookings, optionally filtered by
// status, newest booking date first.
func (bs *BookingService) ListForCompany(ctx context.Context, companyID string, status models.BookingStatus) ([]*models.Booking, error) {
	if companyID == "" {
		return nil, models.ValidationError{Field: "company_id", Msg: "company is required"}
	}
	if status != "" {
		if _, err := models.ParseBookingStatus(string(status)); err != nil {
			return nil, err
		}
	}

	bookings, err := bs.bookings.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if status != "" {
		filtered := bookings[:0]
		for _, b := range bookings {
			if b.Status == status {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].BookingDate > bookings[j].BookingDate
	})
	return bookings, nil
}

func (bs *BookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	return bs.bookings.GetByID(ctx, id)
}
