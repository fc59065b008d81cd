package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/services/flights/mocks"
)

func newFlightsContext(t *testing.T, method, target string, body interface{}, userID *uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	e := echo.New()
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("user_id", *userID)
	}
	return c, rec
}

func TestSearchFlights_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFlightUseCase(ctrl)
	handler := NewFlightsHandler(mockUC)

	req := models.FlightSearchRequest{From: "JFK", To: "LAX", Date: "2025-09-01", Passengers: 2}
	result := &models.FlightSearchResult{
		Flights:        []models.Flight{{ID: "FL001", Airline: "Green Airlines"}},
		SearchCriteria: req,
		TotalCount:     1,
	}

	mockUC.EXPECT().
		SearchFlights(gomock.Any(), req).
		Return(result, nil)

	c, rec := newFlightsContext(t, http.MethodPost, "/flights/search", req, nil)

	err := handler.SearchFlights(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "FL001")
}

func TestSearchFlights_InvalidInputReturns422(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFlightUseCase(ctrl)
	handler := NewFlightsHandler(mockUC)

	req := models.FlightSearchRequest{From: "JFK", To: "JFK", Date: "2025-09-01"}

	mockUC.EXPECT().
		SearchFlights(gomock.Any(), req).
		Return(nil, apperrors.InvalidInputf("origin and destination airports must differ"))

	c, rec := newFlightsContext(t, http.MethodPost, "/flights/search", req, nil)

	err := handler.SearchFlights(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestBookFlight_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFlightUseCase(ctrl)
	handler := NewFlightsHandler(mockUC)

	userID := uuid.New()
	req := models.BookFlightRequest{
		FlightID:   "FL001",
		Date:       "2025-09-01",
		Passengers: 1,
		PassengerDetails: []models.PassengerDetail{
			{FirstName: "Ada", LastName: "Lovelace", DateOfBirth: "1990-01-01", PassportNumber: "X1234567"},
		},
		ContactEmail: "ada@example.com",
	}
	confirmation := &models.BookingConfirmation{
		BookingID:        uuid.New(),
		BookingReference: "GT1A2B3C4D",
		FlightID:         "FL001",
		Passengers:       1,
		Status:           models.BookingStatusConfirmed,
		EmissionsKg:      715.38,
	}

	mockUC.EXPECT().
		BookFlight(gomock.Any(), userID, req).
		Return(confirmation, nil)

	c, rec := newFlightsContext(t, http.MethodPost, "/flights/book", req, &userID)

	err := handler.BookFlight(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "GT1A2B3C4D")
}

func TestBookFlight_MissingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFlightUseCase(ctrl)
	handler := NewFlightsHandler(mockUC)

	c, rec := newFlightsContext(t, http.MethodPost, "/flights/book", models.BookFlightRequest{}, nil)

	err := handler.BookFlight(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetFlight_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFlightUseCase(ctrl)
	handler := NewFlightsHandler(mockUC)

	mockUC.EXPECT().
		GetFlight(gomock.Any(), "FL999").
		Return(nil, apperrors.NotFoundf("flight not found"))

	c, rec := newFlightsContext(t, http.MethodGet, "/flights/FL999", nil, nil)
	c.SetParamNames("flightID")
	c.SetParamValues("FL999")

	err := handler.GetFlight(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBooking_MalformedIDReturns404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFlightUseCase(ctrl)
	handler := NewFlightsHandler(mockUC)

	userID := uuid.New()
	c, rec := newFlightsContext(t, http.MethodGet, "/bookings/not-a-uuid", nil, &userID)
	c.SetParamNames("bookingID")
	c.SetParamValues("not-a-uuid")

	err := handler.GetBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelBooking_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockFlightUseCase(ctrl)
	handler := NewFlightsHandler(mockUC)

	userID := uuid.New()
	bookingID := uuid.New()

	mockUC.EXPECT().
		CancelBooking(gomock.Any(), userID, bookingID).
		Return(nil)

	c, rec := newFlightsContext(t, http.MethodDelete, "/bookings/"+bookingID.String(), nil, &userID)
	c.SetParamNames("bookingID")
	c.SetParamValues(bookingID.String())

	err := handler.CancelBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
