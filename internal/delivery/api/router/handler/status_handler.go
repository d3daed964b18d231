package handler

import (
	"net/http"

	"restomap/internal/delivery/api/response"
	"restomap/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StatusHandler exposes the controller state and its error channel
type StatusHandler struct {
	restaurantUC usecase.RestaurantUsecase
}

// NewStatusHandler is the constructor for StatusHandler
func NewStatusHandler(restaurantUC usecase.RestaurantUsecase) *StatusHandler {
	return &StatusHandler{restaurantUC: restaurantUC}
}

// StatusResponse describes what the controller is doing
type StatusResponse struct {
	Busy  bool                 `json:"busy"`
	State usecase.CatalogState `json:"state"`
	Count int                  `json:"count"`
}

// Status returns the busy flag and state
func (h *StatusHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, StatusResponse{
		Busy:  h.restaurantUC.Busy(),
		State: h.restaurantUC.State(),
		Count: len(h.restaurantUC.ListRestaurants()),
	})
}

// CurrentError returns the unacknowledged error, or null
func (h *StatusHandler) CurrentError(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.restaurantUC.CurrentError())
}

// ClearError acknowledges the current error
func (h *StatusHandler) ClearError(c echo.Context) error {
	h.restaurantUC.ClearError()

	return c.NoContent(http.StatusNoContent)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
