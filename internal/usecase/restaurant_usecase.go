package usecase

import (
	"context"

	"restomap/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// CatalogState is the phase of the restaurant controller
type CatalogState string

const (
	StateIdle     CatalogState = "idle"
	StateFetching CatalogState = "fetching"
	StateMutating CatalogState = "mutating"
)

// NearbyRestaurant pairs a restaurant with its distance from a search center
type NearbyRestaurant struct {
	Restaurant     *entity.Restaurant `json:"restaurant"`
	DistanceMeters float64            `json:"distanceMeters"`
}

// RestaurantUsecase owns the in-memory catalog and orchestrates validated writes
// followed by a full re-fetch. Write operations report failures through the
// error channel and return false instead of an error.
type RestaurantUsecase interface {
	// ListRestaurants returns a copy of the current snapshot, ordered as the store returned it
	ListRestaurants() []*entity.Restaurant

	// Refresh replaces the snapshot with the store's ordered collection; failures only reach the error channel
	Refresh(ctx context.Context)

	// SaveRestaurant validates and creates a restaurant with its initial rating
	SaveRestaurant(ctx context.Context, submission *entity.RestaurantSubmission) bool

	// AddRating appends a rating to existingRatings and replaces the stored ratings of the restaurant
	AddRating(ctx context.Context, restaurantID string, existingRatings []entity.RatingEntry, submission *entity.RatingSubmission) bool

	// Busy reports whether a save or add operation is in flight
	Busy() bool

	// State returns the current controller phase
	State() CatalogState

	// CurrentError returns the unacknowledged error, or nil
	CurrentError() *entity.ReportedError

	// ClearError acknowledges the current error
	ClearError()

	// Subscribe registers fn to receive a fresh snapshot after each successful refresh
	Subscribe(fn func([]*entity.Restaurant)) (unsubscribe func())

	// Restaurant returns one restaurant from the snapshot
	Restaurant(id string) (*entity.Restaurant, error)

	// Random picks one restaurant from the snapshot
	Random() (*entity.Restaurant, error)

	// Nearby returns restaurants within radiusMeters of center, closest first
	Nearby(center entity.Coordinates, radiusMeters float64) []NearbyRestaurant

	// MapFeatures returns the restaurants that have coordinates as GeoJSON points
	MapFeatures() *geojson.FeatureCollection
}
