// Package places searches restaurants through the Google Places API (New).
package places

import (
	"context"
	"log/slog"
	"strings"

	"restomap/config"
	"restomap/internal/domain/entity"
	"restomap/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/option"
	placesapi "google.golang.org/api/places/v1"
)

const (
	fieldMaskHeader = "X-Goog-FieldMask"
	fieldMask       = "places.id,places.displayName,places.formattedAddress,places.location,places.rating," +
		"places.userRatingCount,places.types,places.internationalPhoneNumber,places.websiteUri," +
		"places.googleMapsUri,places.priceLevel,places.regularOpeningHours"

	querySuffix = " restaurant"

	unknownName    = "Unknown"
	unknownAddress = "Adresse non disponible"

	defaultLanguageCode   = "fr"
	defaultMaxResultCount = 15
	defaultCenterLat      = 48.8566
	defaultCenterLng      = 2.3522
	defaultRadiusMeters   = 15000
)

// ErrMissingAPIKey is returned by searches when no API key is configured.
var ErrMissingAPIKey = errors.New("places API key is not configured")

type placesService struct {
	api            *placesapi.Service
	languageCode   string
	maxResultCount int64
	center         entity.Coordinates
	radiusMeters   float64
	logger         *slog.Logger
}

// NewPlacesService creates a Places text search client from configuration
func NewPlacesService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PlacesService, error) {
	s := &placesService{
		languageCode:   defaultLanguageCode,
		maxResultCount: defaultMaxResultCount,
		center:         entity.Coordinates{Lat: defaultCenterLat, Lng: defaultCenterLng},
		radiusMeters:   defaultRadiusMeters,
		logger:         logger,
	}

	placesCfg := cfg.Places
	if placesCfg == nil || placesCfg.APIKey == "" {
		logger.Warn("Places API key not configured, search is disabled")

		return s, nil
	}

	if placesCfg.LanguageCode != "" {
		s.languageCode = placesCfg.LanguageCode
	}
	if placesCfg.MaxResultCount > 0 {
		s.maxResultCount = int64(placesCfg.MaxResultCount)
	}
	if placesCfg.CenterLat != 0 || placesCfg.CenterLng != 0 {
		s.center = entity.Coordinates{Lat: placesCfg.CenterLat, Lng: placesCfg.CenterLng}
	}
	if placesCfg.RadiusMeters > 0 {
		s.radiusMeters = placesCfg.RadiusMeters
	}

	opts := []option.ClientOption{option.WithAPIKey(placesCfg.APIKey)}
	if placesCfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(placesCfg.Endpoint))
	}

	api, err := placesapi.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create places client")
	}
	s.api = api

	return s, nil
}

// SearchText runs a text search biased around the configured center
func (s *placesService) SearchText(ctx context.Context, query string) ([]*entity.PlaceCandidate, error) {
	if s.api == nil {
		return nil, errors.WithStack(ErrMissingAPIKey)
	}

	req := &placesapi.GoogleMapsPlacesV1SearchTextRequest{
		TextQuery:      strings.TrimSpace(query) + querySuffix,
		LanguageCode:   s.languageCode,
		MaxResultCount: s.maxResultCount,
		LocationBias: &placesapi.GoogleMapsPlacesV1SearchTextRequestLocationBias{
			Circle: &placesapi.GoogleMapsPlacesV1Circle{
				Center: &placesapi.GoogleTypeLatLng{
					Latitude:  s.center.Lat,
					Longitude: s.center.Lng,
				},
				Radius: s.radiusMeters,
			},
		},
	}

	call := s.api.Places.SearchText(req).Context(ctx)
	call.Header().Set(fieldMaskHeader, fieldMask)

	resp, err := call.Do()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, errors.Wrap(err, "places text search failed")
	}

	candidates := make([]*entity.PlaceCandidate, 0, len(resp.Places))
	for _, place := range resp.Places {
		if place == nil {
			continue
		}
		candidates = append(candidates, toCandidate(place))
	}

	s.logger.Debug("Places search completed",
		slog.String("query", query),
		slog.Int("results", len(candidates)),
	)

	return candidates, nil
}

func toCandidate(place *placesapi.GoogleMapsPlacesV1Place) *entity.PlaceCandidate {
	candidate := &entity.PlaceCandidate{
		PlaceID:     place.Id,
		Name:        unknownName,
		Address:     unknownAddress,
		Rating:      place.Rating,
		RatingCount: int(place.UserRatingCount),
		Types:       place.Types,
		Phone:       place.InternationalPhoneNumber,
		Website:     place.WebsiteUri,
		MapsURI:     place.GoogleMapsUri,
		PriceLevel:  place.PriceLevel,
		Cuisine:     entity.ExtractCuisineType(place.Types),
	}
	if place.DisplayName != nil && place.DisplayName.Text != "" {
		candidate.Name = place.DisplayName.Text
	}
	if place.FormattedAddress != "" {
		candidate.Address = place.FormattedAddress
	}
	if place.Location != nil {
		candidate.Lat = place.Location.Latitude
		candidate.Lng = place.Location.Longitude
	}
	if place.RegularOpeningHours != nil {
		candidate.OpeningHours = place.RegularOpeningHours.WeekdayDescriptions
	}

	return candidate
}
