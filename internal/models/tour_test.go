package models

import "testing"

func dolphinTour() *Tour {
	return &Tour{
		ID:        "tour-1",
		CompanyID: "company-1",
		Name:      "Passeio de Barco aos Golfinhos",
		Pricing:   TourPricing{Adult: 15000, Child: 7500, Infant: 0},
		Schedules: []TourSchedule{{Time: "09:00", Capacity: 20}},
	}
}

func TestQuoteFamilyMix(t *testing.T) {
	tour := dolphinTour()
	total, err := tour.Quote(BookingPassengers{Adults: 2, Children: 1, Infants: 1})
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if total != 37500 {
		t.Errorf("total = %s, want 375.00", total)
	}
}

func TestQuotePaidInfantTier(t *testing.T) {
	tour := dolphinTour()
	tour.Pricing.Infant = 1000
	total, err := tour.Quote(BookingPassengers{Adults: 1, Infants: 2})
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if total != 17000 {
		t.Errorf("total = %s, want 170.00", total)
	}
}

func TestQuoteInfantsOnlyRejected(t *testing.T) {
	tour := dolphinTour()
	if _, err := tour.Quote(BookingPassengers{Infants: 3}); !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestQuoteNegativeCountRejected(t *testing.T) {
	tour := dolphinTour()
	if _, err := tour.Quote(BookingPassengers{Adults: 2, Children: -1}); !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestScheduleAndPickupLookups(t *testing.T) {
	tour := dolphinTour()
	tour.PickupLocations = []string{"Trapiche de Brasília"}
	if !tour.HasSchedule("09:00") {
		t.Error("expected 09:00 to be a known departure")
	}
	if tour.HasSchedule("10:00") {
		t.Error("10:00 should not be a known departure")
	}
	if !tour.HasPickupLocation("Trapiche de Brasília") {
		t.Error("expected pickup location to match")
	}
	if tour.HasPickupLocation("Trapiche") {
		t.Error("partial pickup names should not match")
	}
}
