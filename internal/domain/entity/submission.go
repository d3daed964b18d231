package entity

import "time"

// RestaurantSubmission is the not-yet-validated add form.
// InitialRating holds whatever the client sent (string or number).
type RestaurantSubmission struct {
	Name                 string            `json:"name"`
	Cuisine              Choice            `json:"type"`
	Halal                Choice            `json:"halal"`
	Coordinates          []float64         `json:"coords"`
	External             *ExternalMetadata `json:"external,omitempty"`
	MapLink              string            `json:"gmaps"`
	InitialUserName      string            `json:"initialUserName"`
	InitialRating        any               `json:"initialRating"`
	InitialRatingComment string            `json:"initialRatingComment"`
}

// RatingSubmission is the not-yet-validated rating form.
type RatingSubmission struct {
	UserName string `json:"userName"`
	Rating   any    `json:"rating"`
	Comment  string `json:"comment"`
}

// NewRatingEntry builds the entry stored for a validated rating value.
func NewRatingEntry(authorName string, value float64, comment string, now time.Time) RatingEntry {
	return RatingEntry{
		AuthorName: authorName,
		Value:      value,
		Comment:    comment,
		CreatedAt:  now,
	}
}

// ToRestaurant resolves the Choices and builds a restaurant whose only rating is the creator's.
// It must only be called on a validated submission; initialRating is the parsed rating value.
func (s *RestaurantSubmission) ToRestaurant(initialRating float64, now time.Time) *Restaurant {
	restaurant := &Restaurant{
		Name:        s.Name,
		CuisineType: s.Cuisine.Text(),
		Halal:       s.Halal.Text(),
		MapLink:     s.MapLink,
		UserRatings: []RatingEntry{
			NewRatingEntry(s.InitialUserName, initialRating, s.InitialRatingComment, now),
		},
	}
	if len(s.Coordinates) == 2 {
		restaurant.Coordinates = &Coordinates{Lat: s.Coordinates[0], Lng: s.Coordinates[1]}
	}
	if s.External != nil {
		ext := *s.External
		restaurant.External = &ext
	}

	return restaurant
}
