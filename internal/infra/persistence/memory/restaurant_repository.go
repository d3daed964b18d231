package memory

import (
	"context"

	"restomap/internal/domain/entity"
	domainerrors "restomap/internal/domain/errors"
	"restomap/internal/domain/repository"
	"restomap/internal/infra/persistence/model"

	"gocloud.dev/docstore"
)

const (
	fieldName        = "name"
	fieldUserRatings = "userRatings"
)

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	coll *docstore.Collection
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(store *Store) repository.RestaurantRepository {
	return &restaurantRepository{
		coll: store.restaurants,
	}
}

// ListRestaurants returns the whole collection ordered by name ascending.
func (repo *restaurantRepository) ListRestaurants(ctx context.Context) ([]*entity.Restaurant, error) {
	iter := repo.coll.Query().OrderBy(fieldName, docstore.Ascending).Get(ctx)
	defer iter.Stop()

	restaurants := make([]*entity.Restaurant, 0)
	for {
		var doc model.RestaurantModel
		err := iter.Next(ctx, &doc)
		if isEOF(err) {
			break
		}
		if err != nil {
			return nil, storeError("list", err)
		}

		restaurants = append(restaurants, doc.ToEntity())
	}

	return restaurants, nil
}

// CreateRestaurant stores a new restaurant under a generated key.
func (repo *restaurantRepository) CreateRestaurant(ctx context.Context, restaurant *entity.Restaurant) (string, error) {
	doc := model.FromRestaurant(restaurant)
	doc.ID = ""

	if err := repo.coll.Create(ctx, doc); err != nil {
		return "", storeError("create", err)
	}

	return doc.ID, nil
}

// UpdateUserRatings replaces the userRatings field of one restaurant.
func (repo *restaurantRepository) UpdateUserRatings(ctx context.Context, id string, ratings []entity.RatingEntry) error {
	if id == "" {
		return domainerrors.NewStoreError("updateUserRatings", domainerrors.ClassInvalidArgument, nil)
	}

	doc := &model.RestaurantModel{ID: id}
	mods := docstore.Mods{fieldUserRatings: model.FromRatings(ratings)}

	if err := repo.coll.Update(ctx, doc, mods); err != nil {
		return storeError("updateUserRatings", err)
	}

	return nil
}
