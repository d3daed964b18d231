package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"restomap/config"
	deliverycontext "restomap/internal/delivery/context"
	"restomap/internal/domain/entity"
	domainerrors "restomap/internal/domain/errors"
	"restomap/internal/domain/service"
	"restomap/internal/errors"
	"restomap/internal/usecase"
)

const defaultMinQueryLength = 3

type searchService struct {
	places         service.PlacesService
	minQueryLength int
	timeout        time.Duration
	logger         *slog.Logger
}

// NewSearchService creates the places search use case
func NewSearchService(places service.PlacesService, cfg *config.Config, logger *slog.Logger) usecase.SearchUsecase {
	s := &searchService{
		places:         places,
		minQueryLength: defaultMinQueryLength,
		logger:         logger,
	}
	if cfg.Places != nil {
		if cfg.Places.MinQueryLength > 0 {
			s.minQueryLength = cfg.Places.MinQueryLength
		}
		s.timeout = cfg.Places.Timeout
	}

	return s
}

// Search returns candidates for a query. Queries shorter than the minimum length
// return an empty list without calling the provider.
func (s *searchService) Search(ctx context.Context, query string) ([]*entity.PlaceCandidate, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < s.minQueryLength {
		return []*entity.PlaceCandidate{}, nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	candidates, err := s.places.SearchText(ctx, query)
	if err != nil {
		// Superseded searches are returned as is
		if errors.Is(err, context.Canceled) {
			return nil, err
		}

		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Places search failed",
			slog.String("query", query),
			slog.Any("error", err),
		)

		return nil, errors.Join(domainerrors.ErrSearchFailed, err)
	}

	return candidates, nil
}

// Draft pre-fills a restaurant submission from a candidate
func (s *searchService) Draft(candidate *entity.PlaceCandidate) *entity.RestaurantSubmission {
	if candidate == nil {
		return &entity.RestaurantSubmission{}
	}

	return candidate.Draft()
}
