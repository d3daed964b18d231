// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"restomap/internal/domain/entity"
)

// RestaurantRepository defines the document store operations on the restaurant collection.
// Implementations return *errors.StoreError from the domain errors package so the
// failure text always carries a classifier.
type RestaurantRepository interface {
	// ListRestaurants returns the whole collection ordered by name ascending.
	ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error)

	// CreateRestaurant stores a new restaurant and returns the id assigned by the store.
	CreateRestaurant(ctx context.Context, restaurant *entity.Restaurant) (string, error)

	// UpdateUserRatings replaces the userRatings field of one restaurant and touches nothing else.
	UpdateUserRatings(ctx context.Context, id string, ratings []entity.RatingEntry) error
}

// ErrorLogRepository appends records to the error log collection.
type ErrorLogRepository interface {
	AppendErrorLog(ctx context.Context, record *entity.ErrorLog) error
}
