// Package model holds the document shapes shared by the Firestore and in-memory stores.
// Field names match the documents already stored in the restaurants collection.
package model

import (
	"time"

	"restomap/internal/domain/entity"
)

// isoLayout matches the millisecond ISO-8601 dates already stored on rating entries.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// RestaurantModel is the document stored in the restaurants collection.
type RestaurantModel struct {
	ID                 string            `firestore:"-" docstore:"id"`
	Name               string            `firestore:"name" docstore:"name"`
	Type               string            `firestore:"type" docstore:"type"`
	Halal              string            `firestore:"halal" docstore:"halal"`
	GoogleRating       float64           `firestore:"googleRating,omitempty" docstore:"googleRating,omitempty"`
	GoogleRatingCount  int               `firestore:"googleRatingCount,omitempty" docstore:"googleRatingCount,omitempty"`
	GoogleAddress      string            `firestore:"googleAddress,omitempty" docstore:"googleAddress,omitempty"`
	GooglePhone        string            `firestore:"googlePhone,omitempty" docstore:"googlePhone,omitempty"`
	GoogleWebsite      string            `firestore:"googleWebsite,omitempty" docstore:"googleWebsite,omitempty"`
	GooglePriceLevel   string            `firestore:"googlePriceLevel,omitempty" docstore:"googlePriceLevel,omitempty"`
	GoogleOpeningHours []string          `firestore:"googleOpeningHours,omitempty" docstore:"googleOpeningHours,omitempty"`
	UserRatings        []UserRatingModel `firestore:"userRatings" docstore:"userRatings"`
	Coords             []float64         `firestore:"coords,omitempty" docstore:"coords,omitempty"`
	Gmaps              string            `firestore:"gmaps" docstore:"gmaps"`
}

// UserRatingModel is one element of a restaurant's userRatings array.
type UserRatingModel struct {
	UserName string  `firestore:"userName" docstore:"userName"`
	Rating   float64 `firestore:"rating" docstore:"rating"`
	Comment  string  `firestore:"comment" docstore:"comment"`
	Date     string  `firestore:"date" docstore:"date"`
}

// FromRestaurant converts a domain restaurant into its stored document.
func FromRestaurant(data *entity.Restaurant) *RestaurantModel {
	if data == nil {
		return nil
	}

	m := &RestaurantModel{
		ID:          data.ID,
		Name:        data.Name,
		Type:        data.CuisineType,
		Halal:       data.Halal,
		UserRatings: FromRatings(data.UserRatings),
		Gmaps:       data.MapLink,
	}
	if data.Coordinates != nil {
		m.Coords = data.Coordinates.Pair()
	}
	if ext := data.External; ext != nil {
		m.GoogleRating = ext.Rating
		m.GoogleRatingCount = ext.RatingCount
		m.GoogleAddress = ext.Address
		m.GooglePhone = ext.Phone
		m.GoogleWebsite = ext.Website
		m.GooglePriceLevel = ext.PriceLevel
		m.GoogleOpeningHours = append([]string(nil), ext.OpeningHours...)
	}

	return m
}

// ToEntity converts a stored document into a domain restaurant.
// Documents without a two-element coords array yield a restaurant without coordinates.
func (m *RestaurantModel) ToEntity() *entity.Restaurant {
	if m == nil {
		return nil
	}

	r := &entity.Restaurant{
		ID:          m.ID,
		Name:        m.Name,
		CuisineType: m.Type,
		Halal:       m.Halal,
		UserRatings: ToRatings(m.UserRatings),
		MapLink:     m.Gmaps,
	}
	if len(m.Coords) == 2 {
		r.Coordinates = &entity.Coordinates{Lat: m.Coords[0], Lng: m.Coords[1]}
	}
	if m.hasExternal() {
		r.External = &entity.ExternalMetadata{
			Rating:       m.GoogleRating,
			RatingCount:  m.GoogleRatingCount,
			Address:      m.GoogleAddress,
			Phone:        m.GooglePhone,
			Website:      m.GoogleWebsite,
			PriceLevel:   m.GooglePriceLevel,
			OpeningHours: append([]string(nil), m.GoogleOpeningHours...),
		}
	}

	return r
}

func (m *RestaurantModel) hasExternal() bool {
	return m.GoogleRating != 0 ||
		m.GoogleRatingCount != 0 ||
		m.GoogleAddress != "" ||
		m.GooglePhone != "" ||
		m.GoogleWebsite != "" ||
		m.GooglePriceLevel != "" ||
		len(m.GoogleOpeningHours) > 0
}

// FromRatings converts rating entries into the stored array.
func FromRatings(ratings []entity.RatingEntry) []UserRatingModel {
	out := make([]UserRatingModel, len(ratings))
	for i, r := range ratings {
		out[i] = UserRatingModel{
			UserName: r.AuthorName,
			Rating:   r.Value,
			Comment:  r.Comment,
			Date:     formatDate(r.CreatedAt),
		}
	}

	return out
}

// ToRatings converts the stored array into rating entries. Unparseable dates become the zero time.
func ToRatings(ratings []UserRatingModel) []entity.RatingEntry {
	out := make([]entity.RatingEntry, len(ratings))
	for i, r := range ratings {
		out[i] = entity.RatingEntry{
			AuthorName: r.UserName,
			Value:      r.Rating,
			Comment:    r.Comment,
			CreatedAt:  parseDate(r.Date),
		}
	}

	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(isoLayout)
}

func parseDate(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}

	return t
}
