package model

import (
	"testing"
	"time"

	"restomap/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRestaurant_LegacyFieldNames(t *testing.T) {
	created := time.Date(2026, 3, 1, 13, 4, 5, 120_000_000, time.FixedZone("CET", 3600))
	r := &entity.Restaurant{
		Name:        "Le Test",
		CuisineType: "Italien",
		Halal:       "Oui",
		Coordinates: &entity.Coordinates{Lat: 48.85, Lng: 2.35},
		External:    &entity.ExternalMetadata{Rating: 4.4, RatingCount: 12, PriceLevel: "PRICE_LEVEL_MODERATE"},
		UserRatings: []entity.RatingEntry{{AuthorName: "Sam", Value: 4.5, CreatedAt: created}},
		MapLink:     "https://maps.google.com/?cid=1",
	}

	m := FromRestaurant(r)

	assert.Equal(t, "Italien", m.Type)
	assert.Equal(t, []float64{48.85, 2.35}, m.Coords)
	assert.Equal(t, 4.4, m.GoogleRating)
	assert.Equal(t, "PRICE_LEVEL_MODERATE", m.GooglePriceLevel)
	assert.Equal(t, "https://maps.google.com/?cid=1", m.Gmaps)
	require.Len(t, m.UserRatings, 1)
	assert.Equal(t, UserRatingModel{
		UserName: "Sam",
		Rating:   4.5,
		Comment:  "",
		Date:     "2026-03-01T12:04:05.120Z",
	}, m.UserRatings[0])
}

func TestRestaurantModel_ToEntity_LegacyDocument(t *testing.T) {
	m := &RestaurantModel{
		ID:     "abc",
		Name:   "Ancien",
		Type:   "Kebab",
		Halal:  "AVS-Achahada..",
		Coords: []float64{48.85},
		UserRatings: []UserRatingModel{
			{UserName: "A", Rating: 3, Date: "2024-05-01T10:00:00.000Z"},
			{UserName: "B", Rating: 5, Date: "not a date"},
		},
	}

	r := m.ToEntity()

	assert.Equal(t, "abc", r.ID)
	assert.Nil(t, r.Coordinates)
	assert.Nil(t, r.External)
	require.Len(t, r.UserRatings, 2)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), r.UserRatings[0].CreatedAt.UTC())
	assert.True(t, r.UserRatings[1].CreatedAt.IsZero())
}

func TestFromErrorLog(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	m := FromErrorLog(&entity.ErrorLog{
		Message:   "boom",
		Timestamp: ts,
		ClientContext: entity.ClientContext{
			Service:   "restomap",
			Env:       "develop",
			Instance:  "i-1",
			RequestID: "req-1",
		},
	})

	assert.Equal(t, "2026-03-01T12:00:00.000Z", m.Timestamp)
	assert.NotNil(t, m.Details)
	assert.Equal(t, "req-1", m.ClientContext.RequestID)
	assert.Empty(t, m.ID)
}
