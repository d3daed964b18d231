package service

import (
	"context"

	"restomap/internal/domain/entity"
)

// PlacesService queries an external places database
type PlacesService interface {
	// SearchText returns candidate places matching a free text query
	SearchText(ctx context.Context, query string) ([]*entity.PlaceCandidate, error)
}
