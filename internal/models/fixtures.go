package models

import "time"

// Demo data for local development and tests: two companies, two sellers,
// four tours, two vouchers and four historical bookings.

func DemoCompanies() []*Company {
	return []*Company{
		{
			ID:           "company-1",
			Name:         "Baía dos Golfinhos",
			Slug:         "baia-dos-golfinhos",
			Description:  "Viva a experiência única de navegar com os golfinhos em seu habitat natural.",
			LogoURL:      "https://picsum.photos/seed/golfinhos/200",
			ContactEmail: "contato@golfinhos.com",
		},
		{
			ID:           "company-2",
			Name:         "Mar Azul Ecoturismo",
			Slug:         "mar-azul-ecoturismo",
			Description:  "Explore as belezas naturais da Ilha do Mel com nossos roteiros ecológicos.",
			LogoURL:      "https://picsum.photos/seed/marazul/200",
			ContactEmail: "contato@marazul.com",
		},
	}
}

func DemoSellers() []*Seller {
	return []*Seller{
		{ID: "seller-1", Name: "João Guia", Email: "joao.guia@email.com"},
		{ID: "seller-2", Name: "Maria Agente", Email: "maria.agente@email.com"},
	}
}

func DemoVouchers() []*Voucher {
	return []*Voucher{
		{Code: "JOAO-GOLFINHOS-123", SellerID: "seller-1", CompanyID: "company-1"},
		{Code: "MARIA-MARAZUL-ABC", SellerID: "seller-2", CompanyID: "company-2"},
	}
}

func DemoTours() []*Tour {
	return []*Tour{
		{
			ID:          "tour-1",
			CompanyID:   "company-1",
			Name:        "Passeio com Golfinhos",
			Description: "Um passeio de 3 horas para observação de golfinhos na baía.",
			Duration:    "3 horas",
			Pricing:     TourPricing{Adult: 15000, Child: 7500, Infant: 0},
			Schedules: []TourSchedule{
				{Time: "09:00", Capacity: 20},
				{Time: "14:00", Capacity: 25},
			},
			PickupLocations: []string{"Trapiche de Brasília", "Trapiche de Encantadas"},
		},
		{
			ID:          "tour-2",
			CompanyID:   "company-1",
			Name:        "Pôr do Sol na Fortaleza",
			Description: "Aprecie o pôr do sol espetacular com um passeio de barco até a Fortaleza.",
			Duration:    "2 horas",
			Pricing:     TourPricing{Adult: 9000, Child: 4500, Infant: 0},
			Schedules: []TourSchedule{
				{Time: "16:00", Capacity: 30},
			},
			PickupLocations: []string{"Trapiche de Brasília"},
		},
		{
			ID:          "tour-3",
			CompanyID:   "company-2",
			Name:        "Trilha Aquática Ecológica",
			Description: "Navegue por mangues e aprenda sobre o ecossistema local.",
			Duration:    "4 horas",
			Pricing:     TourPricing{Adult: 12000, Child: 6000, Infant: 1000},
			Schedules: []TourSchedule{
				{Time: "08:30", Capacity: 15},
				{Time: "13:30", Capacity: 15},
			},
			PickupLocations: []string{"Trapiche de Encantadas"},
		},
		{
			ID:          "tour-4",
			CompanyID:   "company-2",
			Name:        "Volta à Ilha",
			Description: "Um dia inteiro de passeio conhecendo os principais pontos da Ilha do Mel.",
			Duration:    "8 horas",
			Pricing:     TourPricing{Adult: 25000, Child: 12500, Infant: 2000},
			Schedules: []TourSchedule{
				{Time: "09:00", Capacity: 40},
			},
			PickupLocations: []string{"Trapiche de Brasília", "Trapiche de Encantadas"},
		},
	}
}

func DemoBookings() []*Booking {
	return []*Booking{
		{
			ID:                     "booking-1",
			TourID:                 "tour-1",
			CompanyID:              "company-1",
			CustomerName:           "Carlos Silva",
			CustomerCPF:            "111.222.333-44",
			BookingDate:            "2024-08-10",
			SelectedTime:           "09:00",
			SelectedPickupLocation: "Trapiche de Brasília",
			Passengers:             BookingPassengers{Adults: 2, Children: 1},
			TotalPrice:             37500,
			SellerID:               "seller-1",
			Status:                 StatusConfirmada,
			CreatedAt:              time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:                     "booking-2",
			TourID:                 "tour-3",
			CompanyID:              "company-2",
			CustomerName:           "Ana Pereira",
			CustomerCPF:            "555.666.777-88",
			BookingDate:            "2024-08-12",
			SelectedTime:           "08:30",
			SelectedPickupLocation: "Trapiche de Encantadas",
			Passengers:             BookingPassengers{Adults: 1},
			TotalPrice:             12000,
			SellerID:               "seller-2",
			Status:                 StatusConfirmada,
			CreatedAt:              time.Date(2024, 8, 2, 11, 0, 0, 0, time.UTC),
		},
		{
			ID:                     "booking-3",
			TourID:                 "tour-2",
			CompanyID:              "company-1",
			CustomerName:           "Beatriz Costa",
			CustomerCPF:            "999.888.777-66",
			BookingDate:            "2024-08-15",
			SelectedTime:           "16:00",
			SelectedPickupLocation: "Trapiche de Brasília",
			Passengers:             BookingPassengers{Adults: 4},
			TotalPrice:             36000,
			Status:                 StatusPendente,
			CreatedAt:              time.Date(2024, 8, 3, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:                     "booking-4",
			TourID:                 "tour-4",
			CompanyID:              "company-2",
			CustomerName:           "Lucas Mendes",
			CustomerCPF:            "123.456.789-00",
			BookingDate:            "2024-08-18",
			SelectedTime:           "09:00",
			SelectedPickupLocation: "Trapiche de Encantadas",
			Passengers:             BookingPassengers{Adults: 2, Children: 2, Infants: 1},
			TotalPrice:             77000,
			SellerID:               "seller-1",
			Status:                 StatusConfirmada,
			CreatedAt:              time.Date(2024, 8, 4, 14, 0, 0, 0, time.UTC),
		},
	}
}
