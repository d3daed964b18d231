// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"slices"
	"time"

	"github.com/paulmach/orb"
)

// Coordinates is a geographic position in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point returns the position as an orb point (longitude first).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// Pair returns the position as the [lat, lng] pair used by map clients.
func (c Coordinates) Pair() []float64 {
	return []float64{c.Lat, c.Lng}
}

// ExternalMetadata is the snapshot copied from the places search when the restaurant is created.
// It is never refreshed afterwards.
type ExternalMetadata struct {
	Rating       float64  `json:"rating,omitempty"` // 0 when the place had no rating
	RatingCount  int      `json:"ratingCount"`
	Address      string   `json:"address,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Website      string   `json:"website,omitempty"`
	PriceLevel   string   `json:"priceLevel,omitempty"`
	OpeningHours []string `json:"openingHours,omitempty"`
}

// RatingEntry is a single user's rating. Entries are append-only.
type RatingEntry struct {
	AuthorName string    `json:"authorName"`
	Value      float64   `json:"value"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Restaurant is a catalog entry shown as a pin on the map.
type Restaurant struct {
	ID          string            // Assigned by the store on creation.
	Name        string            // Display name.
	CuisineType string            // Effective cuisine text (custom text already substituted).
	Halal       string            // Effective halal certification text.
	Coordinates *Coordinates      // Nil for legacy documents without a position.
	External    *ExternalMetadata // Nil when not created from a places search.
	UserRatings []RatingEntry     // Chronological.
	MapLink     string            // URI of an external map view.
}

// Clone returns a deep copy safe to hand to consumers.
func (r *Restaurant) Clone() *Restaurant {
	if r == nil {
		return nil
	}

	cp := *r
	if r.Coordinates != nil {
		coords := *r.Coordinates
		cp.Coordinates = &coords
	}
	if r.External != nil {
		ext := *r.External
		ext.OpeningHours = slices.Clone(r.External.OpeningHours)
		cp.External = &ext
	}
	cp.UserRatings = slices.Clone(r.UserRatings)

	return &cp
}

// HasCoordinates reports whether the restaurant can be placed on a map.
func (r *Restaurant) HasCoordinates() bool {
	return r.Coordinates != nil
}

// MapURL returns the stored map link, or a Google Maps query URL built from the coordinates.
func (r *Restaurant) MapURL() string {
	if r.MapLink != "" {
		return r.MapLink
	}
	if r.Coordinates == nil {
		return ""
	}

	return MapsQueryURL(r.Coordinates.Lat, r.Coordinates.Lng)
}

// MapsQueryURL builds the fallback Google Maps link for a position.
func MapsQueryURL(lat, lng float64) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%v,%v", lat, lng)
}
