package impl

import (
	"cmp"
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"restomap/config"
	deliverycontext "restomap/internal/delivery/context"
	"restomap/internal/domain/entity"
	domainerrors "restomap/internal/domain/errors"
	"restomap/internal/domain/repository"
	"restomap/internal/domain/service"
	"restomap/internal/domain/validation"
	"restomap/internal/errors"
	"restomap/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

const (
	operationRefresh   = "refresh"
	operationSave      = "save"
	operationAddRating = "addRating"
)

type restaurantService struct {
	repo       repository.RestaurantRepository
	reporter   usecase.ErrorReporter
	publisher  service.EventPublisher
	logger     *slog.Logger
	instanceID string
	now        func() time.Time
	pick       func(n int) int

	mu          sync.RWMutex
	restaurants []*entity.Restaurant

	// Counters rather than flags: concurrent operations are not serialized.
	mutating atomic.Int32
	fetching atomic.Int32

	subMu       sync.Mutex
	subscribers map[uint64]func([]*entity.Restaurant)
	nextSubID   uint64
}

// NewRestaurantService creates the restaurant controller
func NewRestaurantService(
	repo repository.RestaurantRepository,
	reporter usecase.ErrorReporter,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RestaurantUsecase {
	return &restaurantService{
		repo:        repo,
		reporter:    reporter,
		publisher:   publisher,
		logger:      logger,
		instanceID:  cfg.Env.InstanceID,
		now:         time.Now,
		pick:        rand.IntN,
		subscribers: make(map[uint64]func([]*entity.Restaurant)),
	}
}

// ListRestaurants returns a copy of the current snapshot
func (s *restaurantService) ListRestaurants() []*entity.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneRestaurants(s.restaurants)
}

// Refresh fetches the ordered collection and replaces the snapshot.
// On failure the snapshot is left untouched and the error goes to the error channel.
func (s *restaurantService) Refresh(ctx context.Context) {
	s.fetching.Add(1)
	defer s.fetching.Add(-1)

	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		s.reporter.Report(ctx, errors.Join(domainerrors.ErrRefreshFailed, err), map[string]any{
			"operation": operationRefresh,
		})

		return
	}

	s.mu.Lock()
	s.restaurants = restaurants
	s.mu.Unlock()

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Catalog refreshed",
		slog.Int("count", len(restaurants)),
	)

	s.notify(restaurants)
}

// SaveRestaurant validates the submission, creates the restaurant and refreshes the snapshot
func (s *restaurantService) SaveRestaurant(ctx context.Context, submission *entity.RestaurantSubmission) bool {
	s.mutating.Add(1)
	defer s.mutating.Add(-1)

	details := map[string]any{
		"operation":  operationSave,
		"submission": submission,
	}

	if submission == nil {
		s.reporter.Report(ctx, domainerrors.ErrValidationFailed, details)

		return false
	}

	if err := validation.ValidateRestaurant(submission); err != nil {
		s.reporter.Report(ctx, err, details)

		return false
	}

	initialRating, _ := validation.ParseRating(submission.InitialRating)
	restaurant := submission.ToRestaurant(initialRating, s.now())

	id, err := s.repo.CreateRestaurant(ctx, restaurant)
	if err != nil {
		s.reporter.Report(ctx, err, details)

		return false
	}

	s.publish(ctx, service.EventRestaurantCreated, id)
	s.Refresh(ctx)

	return true
}

// AddRating appends a rating to existingRatings and replaces the stored ratings.
// existingRatings itself is never modified.
func (s *restaurantService) AddRating(
	ctx context.Context,
	restaurantID string,
	existingRatings []entity.RatingEntry,
	submission *entity.RatingSubmission,
) bool {
	s.mutating.Add(1)
	defer s.mutating.Add(-1)

	details := map[string]any{
		"operation":        operationAddRating,
		"restaurantId":     restaurantID,
		"ratingSubmission": submission,
	}

	if submission == nil {
		s.reporter.Report(ctx, domainerrors.ErrValidationFailed, details)

		return false
	}

	if err := validation.ValidateRating(submission); err != nil {
		s.reporter.Report(ctx, err, details)

		return false
	}

	value, _ := validation.ParseRating(submission.Rating)

	updated := make([]entity.RatingEntry, 0, len(existingRatings)+1)
	updated = append(updated, existingRatings...)
	updated = append(updated, entity.NewRatingEntry(submission.UserName, value, submission.Comment, s.now()))

	if err := s.repo.UpdateUserRatings(ctx, restaurantID, updated); err != nil {
		s.reporter.Report(ctx, err, details)

		return false
	}

	s.publish(ctx, service.EventRatingAdded, restaurantID)
	s.Refresh(ctx)

	return true
}

// Busy reports whether a save or add operation is in flight
func (s *restaurantService) Busy() bool {
	return s.mutating.Load() > 0
}

// State returns Fetching while any refresh runs (including the one ending a mutation),
// Mutating while a write is in flight, Idle otherwise
func (s *restaurantService) State() usecase.CatalogState {
	switch {
	case s.fetching.Load() > 0:
		return usecase.StateFetching
	case s.mutating.Load() > 0:
		return usecase.StateMutating
	default:
		return usecase.StateIdle
	}
}

// CurrentError returns the unacknowledged error, or nil
func (s *restaurantService) CurrentError() *entity.ReportedError {
	return s.reporter.Current()
}

// ClearError acknowledges the current error
func (s *restaurantService) ClearError() {
	s.reporter.Clear()
}

// Subscribe registers fn to receive a fresh snapshot after each successful refresh
func (s *restaurantService) Subscribe(fn func([]*entity.Restaurant)) func() {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subscribers, id)
			s.subMu.Unlock()
		})
	}
}

// Restaurant returns one restaurant from the snapshot
func (s *restaurantService) Restaurant(id string) (*entity.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.restaurants {
		if r.ID == id {
			return r.Clone(), nil
		}
	}

	return nil, domainerrors.ErrRestaurantNotFound
}

// Random picks one restaurant from the snapshot
func (s *restaurantService) Random() (*entity.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.restaurants) == 0 {
		return nil, domainerrors.ErrEmptyCatalog
	}

	return s.restaurants[s.pick(len(s.restaurants))].Clone(), nil
}

// Nearby returns restaurants within radiusMeters of center, closest first
func (s *restaurantService) Nearby(center entity.Coordinates, radiusMeters float64) []usecase.NearbyRestaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	origin := center.Point()
	nearby := make([]usecase.NearbyRestaurant, 0)
	for _, r := range s.restaurants {
		if !r.HasCoordinates() {
			continue
		}

		distance := geo.Distance(origin, r.Coordinates.Point())
		if distance > radiusMeters {
			continue
		}

		nearby = append(nearby, usecase.NearbyRestaurant{
			Restaurant:     r.Clone(),
			DistanceMeters: distance,
		})
	}

	slices.SortStableFunc(nearby, func(a, b usecase.NearbyRestaurant) int {
		return cmp.Compare(a.DistanceMeters, b.DistanceMeters)
	})

	return nearby
}

// MapFeatures returns the restaurants that have coordinates as GeoJSON points
func (s *restaurantService) MapFeatures() *geojson.FeatureCollection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fc := geojson.NewFeatureCollection()
	for _, r := range s.restaurants {
		if !r.HasCoordinates() {
			continue
		}

		feature := geojson.NewFeature(r.Coordinates.Point())
		feature.ID = r.ID
		feature.Properties = geojson.Properties{
			"name":          r.Name,
			"cuisineType":   r.CuisineType,
			"halal":         r.Halal,
			"emoji":         entity.CuisineEmoji(r.CuisineType),
			"averageRating": entity.FormatAverageRating(r.UserRatings),
			"ratingCount":   len(r.UserRatings),
			"mapUrl":        r.MapURL(),
		}
		if r.External != nil {
			feature.Properties["price"] = entity.PriceDisplay(r.External.PriceLevel)
		}

		fc.Append(feature)
	}

	return fc
}

// publish announces a catalog change; failures are logged and never reach the user
func (s *restaurantService) publish(ctx context.Context, eventType service.CatalogEventType, restaurantID string) {
	event := &service.CatalogEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.NewString(),
		Type:         eventType,
		RestaurantID: restaurantID,
		Origin:       s.instanceID,
		OccurredAt:   s.now(),
	}

	if err := s.publisher.PublishCatalogEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to publish catalog event",
			slog.String("type", string(eventType)),
			slog.String("restaurant_id", restaurantID),
			slog.Any("error", err),
		)
	}
}

func (s *restaurantService) notify(restaurants []*entity.Restaurant) {
	s.subMu.Lock()
	subscribers := make([]func([]*entity.Restaurant), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subscribers {
		fn(cloneRestaurants(restaurants))
	}
}

func cloneRestaurants(restaurants []*entity.Restaurant) []*entity.Restaurant {
	cloned := make([]*entity.Restaurant, len(restaurants))
	for i, r := range restaurants {
		cloned[i] = r.Clone()
	}

	return cloned
}
