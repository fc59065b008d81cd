package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/services/emissions/mocks"
)

func newEmissionsContext(t *testing.T, method, target string, body interface{}, userID *uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
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

func TestCalculateEmissions_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmissionsUseCase(ctrl)
	handler := NewEmissionsHandler(mockUC)

	userID := uuid.New()
	req := models.CalculateEmissionsRequest{
		From:       "JFK",
		To:         "LAX",
		Class:      "economy",
		Passengers: 2,
	}
	estimate := &models.EmissionEstimate{
		From:        "JFK",
		To:          "LAX",
		Class:       "economy",
		Passengers:  2,
		DistanceKm:  3974.34,
		EmissionsKg: 1430.76,
	}

	mockUC.EXPECT().
		CalculateRouteEmissions(gomock.Any(), req).
		Return(estimate, nil)

	c, rec := newEmissionsContext(t, http.MethodPost, "/emissions/calculate", req, &userID)

	err := handler.CalculateEmissions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1430.76")
}

func TestCalculateEmissions_InvalidInputReturns422(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmissionsUseCase(ctrl)
	handler := NewEmissionsHandler(mockUC)

	userID := uuid.New()
	req := models.CalculateEmissionsRequest{From: "JFK", To: "JFK"}

	mockUC.EXPECT().
		CalculateRouteEmissions(gomock.Any(), req).
		Return(nil, apperrors.InvalidInputf("origin and destination airports must differ"))

	c, rec := newEmissionsContext(t, http.MethodPost, "/emissions/calculate", req, &userID)

	err := handler.CalculateEmissions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetEmissionsSummary_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmissionsUseCase(ctrl)
	handler := NewEmissionsHandler(mockUC)

	userID := uuid.New()
	summary := &models.UserEmissionsSummary{
		UserID:      userID,
		UserName:    "Test Traveler",
		PeriodType:  models.PeriodMonthly,
		Periods:     []models.PeriodSummary{},
		GeneratedAt: time.Now().UTC(),
	}

	mockUC.EXPECT().
		GetEmissionsSummary(gomock.Any(), userID, models.PeriodMonthly).
		Return(summary, nil)

	c, rec := newEmissionsContext(t, http.MethodGet, "/emissions/summary", nil, &userID)

	err := handler.GetEmissionsSummary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Test Traveler")
}

func TestGetEmissionsSummary_DefaultsToMonthly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmissionsUseCase(ctrl)
	handler := NewEmissionsHandler(mockUC)

	userID := uuid.New()
	mockUC.EXPECT().
		GetEmissionsSummary(gomock.Any(), userID, models.PeriodMonthly).
		Return(&models.UserEmissionsSummary{Periods: []models.PeriodSummary{}}, nil)

	c, rec := newEmissionsContext(t, http.MethodGet, "/emissions/summary", nil, &userID)

	err := handler.GetEmissionsSummary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetEmissionsSummary_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmissionsUseCase(ctrl)
	handler := NewEmissionsHandler(mockUC)

	userID := uuid.New()
	c, rec := newEmissionsContext(t, http.MethodGet, "/emissions/summary?period=hourly", nil, &userID)

	err := handler.GetEmissionsSummary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetEmissionsSummary_DateRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmissionsUseCase(ctrl)
	handler := NewEmissionsHandler(mockUC)

	userID := uuid.New()
	expectedRange := models.DateRange{
		Start: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
	}

	mockUC.EXPECT().
		GetEmissionsSummaryByDateRange(gomock.Any(), userID, expectedRange, models.PeriodWeekly).
		Return(&models.UserEmissionsSummary{Periods: []models.PeriodSummary{}}, nil)

	c, rec := newEmissionsContext(t, http.MethodGet,
		"/emissions/summary?period=weekly&start_date=2025-07-01&end_date=2025-07-31", nil, &userID)

	err := handler.GetEmissionsSummary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetEmissionsSummary_PartialDateRangeRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmissionsUseCase(ctrl)
	handler := NewEmissionsHandler(mockUC)

	userID := uuid.New()
	c, rec := newEmissionsContext(t, http.MethodGet,
		"/emissions/summary?start_date=2025-07-01", nil, &userID)

	err := handler.GetEmissionsSummary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetEmissionsSummary_MissingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmissionsUseCase(ctrl)
	handler := NewEmissionsHandler(mockUC)

	c, rec := newEmissionsContext(t, http.MethodGet, "/emissions/summary", nil, nil)

	err := handler.GetEmissionsSummary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClearEmissionsCache_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmissionsUseCase(ctrl)
	handler := NewEmissionsHandler(mockUC)

	userID := uuid.New()
	mockUC.EXPECT().
		ClearUserCache(gomock.Any(), userID).
		Return(nil)

	c, rec := newEmissionsContext(t, http.MethodDelete, "/emissions/cache", nil, &userID)

	err := handler.ClearEmissionsCache(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClearEmissionsCache_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockEmissionsUseCase(ctrl)
	handler := NewEmissionsHandler(mockUC)

	userID := uuid.New()
	mockUC.EXPECT().
		ClearUserCache(gomock.Any(), userID).
		Return(errors.New("connection refused"))

	c, rec := newEmissionsContext(t, http.MethodDelete, "/emissions/cache", nil, &userID)

	err := handler.ClearEmissionsCache(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
