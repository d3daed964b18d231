package handler

import (
	"log/slog"
	"net/http"
	"time"

	"restomap/internal/delivery/api/response"
	"restomap/internal/domain/entity"
	domainerrors "restomap/internal/domain/errors"
	"restomap/internal/domain/service"
	"restomap/internal/infra/qrcode"
	"restomap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultNearbyRadiusMeters = 1000
	geoJSONContentType        = "application/geo+json"
	pngContentType            = "image/png"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	QRCodeSvc    service.QRCodeService
	Logger       *slog.Logger
}

// RestaurantHandler exposes the catalog controller over HTTP
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	qrCodeSvc    service.QRCodeService
	logger       *slog.Logger
	now          func() time.Time
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		qrCodeSvc:    params.QRCodeSvc,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// CreateRestaurantRequest is the add form. type and halal hold an enumeration value;
// "Autre" selects the matching custom field instead.
type CreateRestaurantRequest struct {
	Name                 string                   `json:"name"`
	Type                 string                   `json:"type"`
	CustomType           string                   `json:"customType"`
	Halal                string                   `json:"halal"`
	CustomHalal          string                   `json:"customHalal"`
	Coords               []float64                `json:"coords"`
	External             *entity.ExternalMetadata `json:"external"`
	Gmaps                string                   `json:"gmaps"`
	InitialUserName      string                   `json:"initialUserName"`
	InitialRating        any                      `json:"initialRating"`
	InitialRatingComment string                   `json:"initialRatingComment"`
}

func (r *CreateRestaurantRequest) toSubmission() *entity.RestaurantSubmission {
	return &entity.RestaurantSubmission{
		Name:                 r.Name,
		Cuisine:              entity.ParseChoice(r.Type, r.CustomType),
		Halal:                entity.ParseChoice(r.Halal, r.CustomHalal),
		Coordinates:          r.Coords,
		External:             r.External,
		MapLink:              r.Gmaps,
		InitialUserName:      r.InitialUserName,
		InitialRating:        r.InitialRating,
		InitialRatingComment: r.InitialRatingComment,
	}
}

// AddRatingRequest is the rating form
type AddRatingRequest struct {
	UserName string `json:"userName"`
	Rating   any    `json:"rating"`
	Comment  string `json:"comment"`
}

// NearbyQuery is the query string of the nearby search
type NearbyQuery struct {
	Lat    float64 `validate:"gte=-90,lte=90"`
	Lng    float64 `validate:"gte=-180,lte=180"`
	Radius float64 `validate:"gt=0,lte=50000"`
}

// ListRestaurants returns the current snapshot
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	return response.Success(c, http.StatusOK, newRestaurantViews(h.restaurantUC.ListRestaurants()))
}

// RefreshRestaurants re-reads the store and returns the new snapshot
func (h *RestaurantHandler) RefreshRestaurants(c echo.Context) error {
	start := h.now()
	h.restaurantUC.Refresh(c.Request().Context())

	if reported := h.reportedSince(start); reported != nil {
		return response.Reported(c, reported)
	}

	return response.Success(c, http.StatusOK, newRestaurantViews(h.restaurantUC.ListRestaurants()))
}

// CreateRestaurant validates and stores a new restaurant
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	var req CreateRestaurantRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	if !h.restaurantUC.SaveRestaurant(c.Request().Context(), req.toSubmission()) {
		return response.Reported(c, h.restaurantUC.CurrentError())
	}

	return response.Success(c, http.StatusCreated, newRestaurantViews(h.restaurantUC.ListRestaurants()))
}

// AddRating appends a rating to a restaurant of the current snapshot
func (h *RestaurantHandler) AddRating(c echo.Context) error {
	id := c.Param("id")

	restaurant, err := h.restaurantUC.Restaurant(id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	submission := &entity.RatingSubmission{
		UserName: req.UserName,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if !h.restaurantUC.AddRating(c.Request().Context(), id, restaurant.UserRatings, submission) {
		return response.Reported(c, h.restaurantUC.CurrentError())
	}

	if updated, err := h.restaurantUC.Restaurant(id); err == nil {
		restaurant = updated
	}

	return response.Success(c, http.StatusCreated, newRestaurantView(restaurant))
}

// RandomRestaurant picks one restaurant of the snapshot
func (h *RestaurantHandler) RandomRestaurant(c echo.Context) error {
	restaurant, err := h.restaurantUC.Random()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRestaurantView(restaurant))
}

// NearbyRestaurants lists restaurants around a point, closest first
func (h *RestaurantHandler) NearbyRestaurants(c echo.Context) error {
	query := NearbyQuery{Radius: defaultNearbyRadiusMeters}
	if err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &query.Lat).
		MustFloat64("lng", &query.Lng).
		Float64("radius", &query.Radius).
		BindError(); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "lat and lng are required numbers")
	}

	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	center := entity.Coordinates{Lat: query.Lat, Lng: query.Lng}

	return response.Success(c, http.StatusOK, newNearbyViews(h.restaurantUC.Nearby(center, query.Radius)))
}

// MapFeatures returns the snapshot as a GeoJSON FeatureCollection
func (h *RestaurantHandler) MapFeatures(c echo.Context) error {
	data, err := h.restaurantUC.MapFeatures().MarshalJSON()
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, geoJSONContentType, data)
}

// MapLinkQR renders the restaurant's map link as a PNG QR code
func (h *RestaurantHandler) MapLinkQR(c echo.Context) error {
	restaurant, err := h.restaurantUC.Restaurant(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCodeSvc.GenerateMapLinkQR(restaurant)
	if errors.Is(err, qrcode.ErrNoMapLink) {
		return response.NotFound(c, domainerrors.ErrNotFound.ErrorCode(), "Aucun lien de carte pour ce restaurant")
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, pngContentType, png)
}

// reportedSince returns the current error if it was reported at or after start.
func (h *RestaurantHandler) reportedSince(start time.Time) *entity.ReportedError {
	reported := h.restaurantUC.CurrentError()
	if reported == nil || reported.ReportedAt.Before(start) {
		return nil
	}

	return reported
}
