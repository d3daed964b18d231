package memory

import (
	"context"
	"testing"
	"time"

	"restomap/internal/domain/entity"
	domainerrors "restomap/internal/domain/errors"
	"restomap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func newRestaurant(name string) *entity.Restaurant {
	return &entity.Restaurant{
		Name:        name,
		CuisineType: "Pizza",
		Halal:       "Musulmans",
		Coordinates: &entity.Coordinates{Lat: 48.85, Lng: 2.35},
		UserRatings: []entity.RatingEntry{{
			AuthorName: "Sam",
			Value:      4,
			CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		}},
	}
}

func TestRestaurantRepository_CreateAndListOrderedByName(t *testing.T) {
	ctx := context.Background()
	repo := NewRestaurantRepository(openTestStore(t))

	ids := make(map[string]string)
	for _, name := range []string{"Zeta", "Alpha", "Mu"} {
		id, err := repo.CreateRestaurant(ctx, newRestaurant(name))
		require.NoError(t, err)
		require.NotEmpty(t, id)
		ids[name] = id
	}

	restaurants, err := repo.ListRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 3)

	assert.Equal(t, "Alpha", restaurants[0].Name)
	assert.Equal(t, "Mu", restaurants[1].Name)
	assert.Equal(t, "Zeta", restaurants[2].Name)
	assert.Equal(t, ids["Alpha"], restaurants[0].ID)
	assert.Equal(t, &entity.Coordinates{Lat: 48.85, Lng: 2.35}, restaurants[0].Coordinates)
	require.Len(t, restaurants[0].UserRatings, 1)
	assert.Equal(t, "Sam", restaurants[0].UserRatings[0].AuthorName)
	assert.True(t, restaurants[0].UserRatings[0].CreatedAt.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestRestaurantRepository_ListEmpty(t *testing.T) {
	repo := NewRestaurantRepository(openTestStore(t))

	restaurants, err := repo.ListRestaurants(context.Background())

	require.NoError(t, err)
	assert.Empty(t, restaurants)
}

func TestRestaurantRepository_UpdateUserRatingsReplacesOnlyRatings(t *testing.T) {
	ctx := context.Background()
	repo := NewRestaurantRepository(openTestStore(t))

	id, err := repo.CreateRestaurant(ctx, newRestaurant("Alpha"))
	require.NoError(t, err)

	ratings := []entity.RatingEntry{
		{AuthorName: "Sam", Value: 4},
		{AuthorName: "Lea", Value: 2.5, Comment: "bof"},
	}
	require.NoError(t, repo.UpdateUserRatings(ctx, id, ratings))

	restaurants, err := repo.ListRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 1)

	got := restaurants[0]
	assert.Equal(t, "Alpha", got.Name)
	assert.Equal(t, "Pizza", got.CuisineType)
	require.Len(t, got.UserRatings, 2)
	assert.Equal(t, "Lea", got.UserRatings[1].AuthorName)
	assert.Equal(t, 2.5, got.UserRatings[1].Value)
	assert.Equal(t, "bof", got.UserRatings[1].Comment)
}

func TestRestaurantRepository_UpdateUnknownIsNotFound(t *testing.T) {
	repo := NewRestaurantRepository(openTestStore(t))

	err := repo.UpdateUserRatings(context.Background(), "missing", nil)

	var storeErr *domainerrors.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, domainerrors.ClassNotFound, storeErr.Classifier())
	assert.Contains(t, err.Error(), "not-found")
}

func TestRestaurantRepository_UpdateEmptyID(t *testing.T) {
	repo := NewRestaurantRepository(openTestStore(t))

	err := repo.UpdateUserRatings(context.Background(), "", nil)

	assert.Contains(t, err.Error(), "invalid-argument")
}

func TestErrorLogRepository_AppendErrorLog(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	repo := NewErrorLogRepository(store)

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.AppendErrorLog(ctx, &entity.ErrorLog{
			Message:   "boom",
			Details:   map[string]any{"operation": "refresh", "error": "unavailable"},
			Timestamp: time.Now(),
		}))
	}

	iter := store.errorLogs.Query().Get(ctx)
	defer iter.Stop()

	var docs []model.ErrorLogModel
	for {
		var doc model.ErrorLogModel
		err := iter.Next(ctx, &doc)
		if isEOF(err) {
			break
		}
		require.NoError(t, err)
		docs = append(docs, doc)
	}

	require.Len(t, docs, 2)
	assert.NotEqual(t, docs[0].ID, docs[1].ID)
	assert.Equal(t, "refresh", docs[0].Details["operation"])
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want domainerrors.Classifier
	}{
		{name: "context deadline", err: errors.Wrap(context.DeadlineExceeded, "list"), want: domainerrors.ClassDeadlineExceeded},
		{name: "unknown", err: errors.New("boom"), want: domainerrors.ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}
