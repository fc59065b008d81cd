package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// FlightDetail is a persisted snapshot of provider flight data, shared by
// all bookings of the same flight on the same date
type FlightDetail struct {
	ID              uuid.UUID `json:"id" db:"id"`
	FlightID        string    `json:"flight_id" db:"flight_id"`
	Airline         string    `json:"airline" db:"airline"`
	FlightNumber    string    `json:"flight_number" db:"flight_number"`
	From            string    `json:"from" db:"origin"`
	To              string    `json:"to" db:"destination"`
	DepartureTime   string    `json:"departure_time" db:"departure_time"`
	ArrivalTime     string    `json:"arrival_time" db:"arrival_time"`
	Duration        string    `json:"duration" db:"duration"`
	Price           float64   `json:"price" db:"price"`
	SeatsAvailable  int       `json:"seats_available" db:"seats_available"`
	Aircraft        string    `json:"aircraft" db:"aircraft"`
	CarbonFootprint float64   `json:"carbon_footprint" db:"carbon_footprint"`
	EcoRating       float64   `json:"eco_rating" db:"eco_rating"`
	Date            string    `json:"date" db:"date"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Booking represents a confirmed flight booking. Emissions are computed at
// booking time and never change afterwards, even when the booking is
// cancelled
type Booking struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	UserID          uuid.UUID  `json:"user_id" db:"user_id"`
	FlightDetailsID uuid.UUID  `json:"flight_details_id" db:"flight_details_id"`
	Emissions       float64    `json:"emissions" db:"emissions"`
	Status          string     `json:"status" db:"status"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt       *time.Time `json:"-" db:"deleted_at"`

	FlightDetail *FlightDetail `json:"flight_details,omitempty" db:"-"`
}

// PassengerDetail carries per-passenger booking information
type PassengerDetail struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    string `json:"date_of_birth"`
	PassportNumber string `json:"passport_number"`
}

// BookFlightRequest is the payload for booking a flight
type BookFlightRequest struct {
	FlightID         string            `json:"flight_id"`
	Date             string            `json:"date"`
	Class            string            `json:"class"`
	Passengers       int               `json:"passengers"`
	PassengerDetails []PassengerDetail `json:"passenger_details"`
	ContactEmail     string            `json:"contact_email"`
	ContactPhone     string            `json:"contact_phone,omitempty"`
}

// BookingConfirmation is returned to the client after a successful booking
type BookingConfirmation struct {
	BookingID        uuid.UUID         `json:"booking_id"`
	BookingReference string            `json:"booking_reference"`
	FlightID         string            `json:"flight_id"`
	FlightDetails    Flight            `json:"flight_details"`
	Passengers       int               `json:"passengers"`
	TotalPrice       float64           `json:"total_price"`
	PassengerDetails []PassengerDetail `json:"passenger_details"`
	ContactEmail     string            `json:"contact_email"`
	ContactPhone     string            `json:"contact_phone,omitempty"`
	BookingDate      string            `json:"booking_date"`
	Status           string            `json:"status"`
	DistanceKm       float64           `json:"distance_km"`
	EmissionsKg      float64           `json:"emissions_kg"`
}

// BookingEvent is published to NSQ on booking lifecycle changes
type BookingEvent struct {
	BookingID uuid.UUID `json:"booking_id"`
	UserID    uuid.UUID `json:"user_id"`
	FlightID  string    `json:"flight_id"`
	Status    string    `json:"status"`
	Emissions float64   `json:"emissions"`
	Timestamp time.Time `json:"timestamp"`
}
