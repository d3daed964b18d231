package handler

import (
	"restomap/internal/domain/entity"
	"restomap/internal/usecase"
)

// RestaurantView is a restaurant with the fields the map client derives for display
type RestaurantView struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	CuisineType   string                   `json:"type"`
	Halal         string                   `json:"halal"`
	Emoji         string                   `json:"emoji"`
	Coordinates   []float64                `json:"coords,omitempty"`
	MapURL        string                   `json:"mapUrl,omitempty"`
	External      *entity.ExternalMetadata `json:"external,omitempty"`
	PriceDisplay  string                   `json:"priceDisplay,omitempty"`
	UserRatings   []entity.RatingEntry     `json:"userRatings"`
	AverageRating string                   `json:"averageRating,omitempty"`
	RatingCount   int                      `json:"ratingCount"`
}

// NearbyView is a restaurant with its distance from the requested center
type NearbyView struct {
	RestaurantView
	DistanceMeters float64 `json:"distanceMeters"`
}

func newRestaurantView(r *entity.Restaurant) RestaurantView {
	view := RestaurantView{
		ID:            r.ID,
		Name:          r.Name,
		CuisineType:   r.CuisineType,
		Halal:         r.Halal,
		Emoji:         entity.CuisineEmoji(r.CuisineType),
		MapURL:        r.MapURL(),
		External:      r.External,
		UserRatings:   r.UserRatings,
		AverageRating: entity.FormatAverageRating(r.UserRatings),
		RatingCount:   len(r.UserRatings),
	}
	if view.UserRatings == nil {
		view.UserRatings = []entity.RatingEntry{}
	}
	if r.Coordinates != nil {
		view.Coordinates = r.Coordinates.Pair()
	}
	if r.External != nil {
		view.PriceDisplay = entity.PriceDisplay(r.External.PriceLevel)
	}

	return view
}

func newRestaurantViews(restaurants []*entity.Restaurant) []RestaurantView {
	views := make([]RestaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, newRestaurantView(r))
	}

	return views
}

func newNearbyViews(nearby []usecase.NearbyRestaurant) []NearbyView {
	views := make([]NearbyView, 0, len(nearby))
	for _, n := range nearby {
		views = append(views, NearbyView{
			RestaurantView: newRestaurantView(n.Restaurant),
			DistanceMeters: n.DistanceMeters,
		})
	}

	return views
}
