package models

// TourPricing holds the per-passenger unit price for each age tier.
type TourPricing struct {
	Adult  Cents `json:"adult"`
	Child  Cents `json:"child"`
	Infant Cents `json:"infant"`
}

type TourSchedule struct {
	Time     string `json:"time" binding:"required" validate:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0" validate:"required,gt=0"`
}

type Tour struct {
	ID              string         `json:"id"`
	CompanyID       string         `json:"company_id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Duration        string         `json:"duration"`
	Pricing         TourPricing    `json:"pricing"`
	Schedules       []TourSchedule `json:"schedules"`
	PickupLocations []string       `json:"pickup_locations"`
}

type TourInput struct {
	Name            string         `json:"name" binding:"required" validate:"required"`
	Description     string         `json:"description"`
	Duration        string         `json:"duration"`
	Pricing         TourPricing    `json:"pricing"`
	Schedules       []TourSchedule `json:"schedules" binding:"required,min=1,dive" validate:"required,min=1,dive"`
	PickupLocations []string       `json:"pickup_locations" binding:"required,min=1" validate:"required,min=1"`
}

func (t *Tour) HasSchedule(time string) bool {
	for _, s := range t.Schedules {
		if s.Time == time {
			return true
		}
	}
	return false
}

func (t *Tour) HasPickupLocation(loc string) bool {
	for _, p := range t.PickupLocations {
		if p == loc {
			return true
		}
	}
	return false
}

// Quote computes the total price for a passenger mix. Infants alone do not
// make a valid booking: at least one adult or child is required.
func (t *Tour) Quote(p BookingPassengers) (Cents, error) {
	if p.Adults < 0 || p.Children < 0 || p.Infants < 0 {
		return 0, ValidationError{Field: "passengers", Msg: "counts cannot be negative"}
	}
	if p.Adults+p.Children == 0 {
		return 0, ValidationError{Field: "passengers", Msg: "at least one adult or child is required"}
	}
	total := Cents(p.Adults)*t.Pricing.Adult +
		Cents(p.Children)*t.Pricing.Child +
		Cents(p.Infants)*t.Pricing.Infant
	return total, nil
}
