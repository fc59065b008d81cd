package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/models"
)

func validBookingRequest() models.BookFlightRequest {
	return models.BookFlightRequest{
		FlightID:   "FL001",
		Date:       "2025-09-01",
		Class:      "economy",
		Passengers: 2,
		PassengerDetails: []models.PassengerDetail{
			{FirstName: "Ada", LastName: "Lovelace", DateOfBirth: "1990-12-10", PassportNumber: "P1234567"},
			{FirstName: "Alan", LastName: "Turing", DateOfBirth: "1992-06-23", PassportNumber: "P7654321"},
		},
		ContactEmail: "ada@example.com",
	}
}

func fl001() *models.Flight {
	return &models.Flight{
		ID:             "FL001",
		Airline:        "Green Airlines",
		From:           "JFK",
		To:             "LAX",
		Price:          299.99,
		SeatsAvailable: 45,
	}
}

func expectRoute(f *flightFixture) {
	f.provider.EXPECT().
		GetAirport(gomock.Any(), "JFK").
		Return(&models.Airport{Code: "JFK", Latitude: 40.6413, Longitude: -73.7781}, nil)
	f.provider.EXPECT().
		GetAirport(gomock.Any(), "LAX").
		Return(&models.Airport{Code: "LAX", Latitude: 33.9416, Longitude: -118.4085}, nil)
}

func TestBookFlight_Success(t *testing.T) {
	f := newFlightFixture(t)
	userID := uuid.New()
	req := validBookingRequest()

	f.provider.EXPECT().GetFlightDetails(gomock.Any(), "FL001").Return(fl001(), nil)
	expectRoute(f)

	detailID := uuid.New()
	f.bookingRepo.EXPECT().
		UpsertFlightDetail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, detail *models.FlightDetail) (*models.FlightDetail, error) {
			assert.Equal(t, "FL001", detail.FlightID)
			assert.Equal(t, "2025-09-01", detail.Date)
			detail.ID = detailID
			return detail, nil
		})

	var createdBooking *models.Booking
	f.bookingRepo.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking *models.Booking) error {
			createdBooking = booking
			return nil
		})

	f.reportCache.EXPECT().ClearUserCache(gomock.Any(), userID).Return(nil)
	f.gateway.EXPECT().
		PublishBookingEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.BookingEvent) error {
			assert.Equal(t, models.BookingStatusConfirmed, event.Status)
			assert.Equal(t, "FL001", event.FlightID)
			return nil
		})

	confirmation, err := f.uc.BookFlight(context.Background(), userID, req)

	assert.NoError(t, err)
	assert.Equal(t, userID, createdBooking.UserID)
	assert.Equal(t, detailID, createdBooking.FlightDetailsID)
	assert.Equal(t, models.BookingStatusConfirmed, createdBooking.Status)
	// JFK-LAX is long haul, emissions must be positive and scaled to 2 pax
	assert.Greater(t, createdBooking.Emissions, 1000.0)
	assert.Equal(t, createdBooking.Emissions, confirmation.EmissionsKg)

	assert.Len(t, confirmation.BookingReference, 10)
	assert.Equal(t, "GT", confirmation.BookingReference[:2])
	assert.Equal(t, 599.98, confirmation.TotalPrice)
	assert.InDelta(t, 3974.34, confirmation.DistanceKm, 1.0)
}

func TestBookFlight_ValidationFailures(t *testing.T) {
	f := newFlightFixture(t)
	userID := uuid.New()

	mutations := []struct {
		name   string
		mutate func(*models.BookFlightRequest)
	}{
		{"missing flight id", func(r *models.BookFlightRequest) { r.FlightID = "" }},
		{"zero passengers", func(r *models.BookFlightRequest) { r.Passengers = 0 }},
		{"too many passengers", func(r *models.BookFlightRequest) { r.Passengers = 11 }},
		{"no passenger details", func(r *models.BookFlightRequest) { r.PassengerDetails = nil }},
		{"count mismatch", func(r *models.BookFlightRequest) { r.Passengers = 1 }},
		{"missing passport", func(r *models.BookFlightRequest) { r.PassengerDetails[0].PassportNumber = "" }},
		{"bad email", func(r *models.BookFlightRequest) { r.ContactEmail = "not-an-email" }},
		{"bad date", func(r *models.BookFlightRequest) { r.Date = "September 1st" }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest()
			tt.mutate(&req)

			_, err := f.uc.BookFlight(context.Background(), userID, req)

			assert.Error(t, err)
			assert.True(t, apperrors.IsInvalidInput(err))
		})
	}
}

func TestBookFlight_UnknownFlight(t *testing.T) {
	f := newFlightFixture(t)
	userID := uuid.New()

	f.provider.EXPECT().
		GetFlightDetails(gomock.Any(), "FL001").
		Return(nil, apperrors.NotFoundf("flight FL001 not found"))

	_, err := f.uc.BookFlight(context.Background(), userID, validBookingRequest())

	assert.True(t, apperrors.IsNotFound(err))
}

func TestBookFlight_InsufficientSeats(t *testing.T) {
	f := newFlightFixture(t)
	userID := uuid.New()

	flight := fl001()
	flight.SeatsAvailable = 1
	f.provider.EXPECT().GetFlightDetails(gomock.Any(), "FL001").Return(flight, nil)

	_, err := f.uc.BookFlight(context.Background(), userID, validBookingRequest())

	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestBookFlight_MissingAirportCoordinates(t *testing.T) {
	f := newFlightFixture(t)
	userID := uuid.New()

	f.provider.EXPECT().GetFlightDetails(gomock.Any(), "FL001").Return(fl001(), nil)
	f.provider.EXPECT().
		GetAirport(gomock.Any(), "JFK").
		Return(nil, apperrors.NotFoundf("airport JFK not found"))

	_, err := f.uc.BookFlight(context.Background(), userID, validBookingRequest())

	assert.True(t, apperrors.IsNotFound(err))
}

func TestBookFlight_SucceedsWhenCacheClearFails(t *testing.T) {
	f := newFlightFixture(t)
	userID := uuid.New()

	f.provider.EXPECT().GetFlightDetails(gomock.Any(), "FL001").Return(fl001(), nil)
	expectRoute(f)
	f.bookingRepo.EXPECT().
		UpsertFlightDetail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, detail *models.FlightDetail) (*models.FlightDetail, error) {
			return detail, nil
		})
	f.bookingRepo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil)
	f.reportCache.EXPECT().ClearUserCache(gomock.Any(), userID).Return(assert.AnError)
	f.gateway.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(assert.AnError)

	confirmation, err := f.uc.BookFlight(context.Background(), userID, validBookingRequest())

	assert.NoError(t, err)
	assert.NotNil(t, confirmation)
}

func TestCancelBooking_Success(t *testing.T) {
	f := newFlightFixture(t)
	userID := uuid.New()
	bookingID := uuid.New()

	booking := &models.Booking{
		ID:        bookingID,
		UserID:    userID,
		Emissions: 300.0,
		Status:    models.BookingStatusConfirmed,
		FlightDetail: &models.FlightDetail{
			FlightID: "FL001",
		},
	}

	f.bookingRepo.EXPECT().GetBooking(gomock.Any(), userID, bookingID).Return(booking, nil)
	f.bookingRepo.EXPECT().CancelBooking(gomock.Any(), userID, bookingID).Return(nil)
	f.reportCache.EXPECT().ClearUserCache(gomock.Any(), userID).Return(nil)
	f.gateway.EXPECT().
		PublishBookingEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.BookingEvent) error {
			assert.Equal(t, models.BookingStatusCancelled, event.Status)
			assert.Equal(t, 300.0, event.Emissions)
			return nil
		})

	err := f.uc.CancelBooking(context.Background(), userID, bookingID)

	assert.NoError(t, err)
}

func TestCancelBooking_NotFound(t *testing.T) {
	f := newFlightFixture(t)
	userID := uuid.New()
	bookingID := uuid.New()

	f.bookingRepo.EXPECT().
		GetBooking(gomock.Any(), userID, bookingID).
		Return(nil, apperrors.NotFoundf("booking not found"))

	err := f.uc.CancelBooking(context.Background(), userID, bookingID)

	assert.True(t, apperrors.IsNotFound(err))
}
