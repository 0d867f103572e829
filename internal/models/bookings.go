package models

import (
	"fmt"
	"time"
)

type BookingStatus string

// Booking lifecycle states. Pendente is the only initial state and Cancelada
// is terminal: once cancelled, a booking never changes status again.
const (
	StatusPendente   BookingStatus = "Pendente"
	StatusConfirmada BookingStatus = "Confirmada"
	StatusCancelada  BookingStatus = "Cancelada"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPendente, StatusConfirmada, StatusCancelada:
		return BookingStatus(s), nil
	}
	return "", ValidationError{Field: "status", Msg: fmt.Sprintf("unknown status %q", s)}
}

type BookingPassengers struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

type Booking struct {
	ID                     string            `json:"id"`
	TourID                 string            `json:"tour_id"`
	CompanyID              string            `json:"company_id"`
	CustomerName           string            `json:"customer_name"`
	CustomerCPF            string            `json:"customer_cpf"`
	BookingDate            string            `json:"booking_date"`
	SelectedTime           string            `json:"selected_time"`
	SelectedPickupLocation string            `json:"selected_pickup_location"`
	Passengers             BookingPassengers `json:"passengers"`
	// TotalPrice is frozen at creation time and never recomputed, even when
	// the tour's pricing changes later.
	TotalPrice Cents         `json:"total_price"`
	SellerID   string        `json:"seller_id,omitempty"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

// BookingInput is what the public booking surface submits. SellerID arrives
// from a referral link's query parameter; VoucherCode is typed by the
// customer. The resolver decides which one wins.
type BookingInput struct {
	TourID                 string            `json:"tour_id" binding:"required" validate:"required"`
	CustomerName           string            `json:"customer_name" binding:"required" validate:"required"`
	CustomerCPF            string            `json:"customer_cpf" binding:"required" validate:"required"`
	BookingDate            string            `json:"booking_date" binding:"required" validate:"required"`
	SelectedTime           string            `json:"selected_time" binding:"required" validate:"required"`
	SelectedPickupLocation string            `json:"selected_pickup_location" binding:"required" validate:"required"`
	Passengers             BookingPassengers `json:"passengers"`
	SellerID               string            `json:"seller_id"`
	VoucherCode            string            `json:"voucher_code"`
}

// BookingSummary is a booking enriched with the names a customer needs to
// recognise it on the self-service surface.
type BookingSummary struct {
	Booking
	TourName            string `json:"tour_name"`
	CompanyName         string `json:"company_name"`
	CompanyContactEmail string `json:"company_contact_email"`
	SellerName          string `json:"seller_name,omitempty"`
}

type ActorRole string

const (
	RoleMaster   ActorRole = "MASTER"
	RoleCompany  ActorRole = "COMPANY"
	RoleSeller   ActorRole = "SELLER"
	RoleCustomer ActorRole = "CUSTOMER"
)

// Actor identifies who is mutating a booking. Company staff carry their
// company id; customers prove ownership with the CPF stored on the booking.
type Actor struct {
	Role        ActorRole
	CompanyID   string
	CustomerCPF string
}
