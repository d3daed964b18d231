package usecase

import (
	"context"

	"restomap/internal/domain/entity"
)

// SearchUsecase looks up candidate places to add to the catalog
type SearchUsecase interface {
	// Search returns candidates for a free text query; short queries return no results
	Search(ctx context.Context, query string) ([]*entity.PlaceCandidate, error)

	// Draft pre-fills a restaurant submission from a candidate
	Draft(candidate *entity.PlaceCandidate) *entity.RestaurantSubmission
}
