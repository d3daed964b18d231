package handler

import (
	"log/slog"
	"net/http"

	"restomap/internal/delivery/api/response"
	"restomap/internal/domain/entity"
	"restomap/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler exposes the places search
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// SearchResult pairs a candidate with the add form it pre-fills
type SearchResult struct {
	Candidate *entity.PlaceCandidate       `json:"candidate"`
	Draft     *entity.RestaurantSubmission `json:"draft"`
}

// SearchPlaces looks up candidates for the q parameter
func (h *SearchHandler) SearchPlaces(c echo.Context) error {
	candidates, err := h.searchUC.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	results := make([]SearchResult, 0, len(candidates))
	for _, candidate := range candidates {
		results = append(results, SearchResult{
			Candidate: candidate,
			Draft:     h.searchUC.Draft(candidate),
		})
	}

	return response.Success(c, http.StatusOK, results)
}
