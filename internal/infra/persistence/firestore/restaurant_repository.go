package firestore

import (
	"context"

	"restomap/internal/domain/entity"
	domainerrors "restomap/internal/domain/errors"
	"restomap/internal/domain/repository"
	"restomap/internal/infra/persistence/model"

	gcfirestore "cloud.google.com/go/firestore"
)

const (
	fieldName        = "name"
	fieldUserRatings = "userRatings"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	client     *gcfirestore.Client
	collection string
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(store *Store) repository.RestaurantRepository {
	return &restaurantRepository{
		client:     store.client,
		collection: store.restaurantsCollection,
	}
}

// ListRestaurants returns the whole collection ordered by name ascending.
func (repo *restaurantRepository) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	snaps, err := repo.client.Collection(repo.collection).
		OrderBy(fieldName, gcfirestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, storeError("list", err)
	}

	restaurants := make([]*entity.Restaurant, 0, len(snaps))
	for _, snap := range snaps {
		var doc model.RestaurantModel
		if err := snap.DataTo(&doc); err != nil {
			return nil, storeError("list", err)
		}
		doc.ID = snap.Ref.ID

		restaurants = append(restaurants, doc.ToEntity())
	}

	return restaurants, nil
}

// CreateRestaurant stores a new restaurant under a generated document ID.
func (repo *restaurantRepository) CreateRestaurant(ctx context.Context, restaurant *entity.Restaurant) (string, error) {
	ref, _, err := repo.client.Collection(repo.collection).Add(ctx, model.FromRestaurant(restaurant))
	if err != nil {
		return "", storeError("create", err)
	}

	return ref.ID, nil
}

// UpdateUserRatings replaces the userRatings field of one restaurant.
// Updating a document that does not exist fails with not-found.
func (repo *restaurantRepository) UpdateUserRatings(ctx context.Context, id string, ratings []entity.RatingEntry) error {
	if id == "" {
		return domainerrors.NewStoreError("updateUserRatings", domainerrors.ClassInvalidArgument, nil)
	}

	_, err := repo.client.Collection(repo.collection).Doc(id).Update(ctx, []gcfirestore.Update{
		{Path: fieldUserRatings, Value: model.FromRatings(ratings)},
	})
	if err != nil {
		return storeError("updateUserRatings", err)
	}

	return nil
}
