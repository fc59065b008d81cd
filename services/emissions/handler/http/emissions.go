package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greentrip/greentrip/internal/pkg/logger"
	"github.com/greentrip/greentrip/internal/pkg/middleware"
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/internal/utils"
	"github.com/greentrip/greentrip/services/emissions"
)

// EmissionsHandler handles HTTP requests for emission calculations and
// reports
type EmissionsHandler struct {
	emissionsUC emissions.EmissionsUseCase
}

// NewEmissionsHandler creates a new emissions HTTP handler
func NewEmissionsHandler(emissionsUC emissions.EmissionsUseCase) *EmissionsHandler {
	return &EmissionsHandler{
		emissionsUC: emissionsUC,
	}
}

// CalculateEmissions handles route emission estimate requests
func (h *EmissionsHandler) CalculateEmissions(c echo.Context) error {
	var req models.CalculateEmissionsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	estimate, err := h.emissionsUC.CalculateRouteEmissions(c.Request().Context(), req)
	if err != nil {
		logger.Warn("Failed to calculate route emissions",
			logger.String("from", req.From),
			logger.String("to", req.To),
			logger.ErrorField(err))
		return utils.MapErrorResponse(c, err, "Failed to calculate emissions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Emissions calculated successfully", estimate)
}

// GetEmissionsSummary handles report requests for the authenticated user.
// An optional start/end date pair restricts the report to that range.
func (h *EmissionsHandler) GetEmissionsSummary(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	period, err := models.ParsePeriodGranularity(c.QueryParam("period"))
	if err != nil {
		return utils.UnprocessableEntityResponse(c, err.Error())
	}

	startParam := c.QueryParam("start_date")
	endParam := c.QueryParam("end_date")
	if (startParam == "") != (endParam == "") {
		return utils.UnprocessableEntityResponse(c, "start_date and end_date must be provided together")
	}

	ctx := c.Request().Context()

	if startParam == "" {
		summary, err := h.emissionsUC.GetEmissionsSummary(ctx, userID, period)
		if err != nil {
			logger.Error("Failed to generate emissions summary",
				logger.String("user_id", userID.String()),
				logger.String("period", string(period)),
				logger.ErrorField(err))
			return utils.MapErrorResponse(c, err, "Failed to generate emissions summary")
		}
		return utils.SuccessResponse(c, http.StatusOK, "Emissions summary generated successfully", summary)
	}

	start, err := models.ParseDate(startParam)
	if err != nil {
		return utils.UnprocessableEntityResponse(c, "start_date must be a Y-M-D date")
	}
	end, err := models.ParseDate(endParam)
	if err != nil {
		return utils.UnprocessableEntityResponse(c, "end_date must be a Y-M-D date")
	}

	summary, err := h.emissionsUC.GetEmissionsSummaryByDateRange(ctx, userID, models.DateRange{Start: start, End: end}, period)
	if err != nil {
		logger.Error("Failed to generate ranged emissions summary",
			logger.String("user_id", userID.String()),
			logger.String("period", string(period)),
			logger.ErrorField(err))
		return utils.MapErrorResponse(c, err, "Failed to generate emissions summary")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Emissions summary generated successfully", summary)
}

// ClearEmissionsCache drops the authenticated user's cached summaries
func (h *EmissionsHandler) ClearEmissionsCache(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.emissionsUC.ClearUserCache(c.Request().Context(), userID); err != nil {
		logger.Error("Failed to clear emissions report cache",
			logger.String("user_id", userID.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to clear emissions cache")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Emissions cache cleared successfully", nil)
}
