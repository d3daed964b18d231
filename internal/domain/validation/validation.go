// Package validation checks restaurant and rating submissions before anything reaches the store.
package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"restomap/internal/domain/entity"
	domainerrors "restomap/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

const (
	ratingRangeTag = "gte=1,lte=5"
	coordinatesTag = "len=2"
)

var validate = validator.New()

// ParseRating converts a string or numeric rating into a float.
// It returns false for nil, blank or non-numeric strings and NaN.
func ParseRating(x any) (float64, bool) {
	var value float64

	switch v := x.(type) {
	case nil:
		return 0, false
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		value = parsed
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		value = parsed
	case float64:
		value = v
	case float32:
		value = float64(v)
	case int:
		value = float64(v)
	case int32:
		value = float64(v)
	case int64:
		value = float64(v)
	case uint:
		value = float64(v)
	case uint32:
		value = float64(v)
	case uint64:
		value = float64(v)
	default:
		return 0, false
	}

	if math.IsNaN(value) {
		return 0, false
	}

	return value, true
}

// IsValidRating reports whether x parses as a number within [1, 5] inclusive.
func IsValidRating(x any) bool {
	value, ok := ParseRating(x)
	if !ok {
		return false
	}

	return validate.Var(value, ratingRangeTag) == nil
}

// ValidateRestaurant checks an add form. The first failing rule wins.
func ValidateRestaurant(s *entity.RestaurantSubmission) error {
	if !s.Halal.IsSelected() {
		return domainerrors.ErrHalalMissing
	}
	if !s.Cuisine.IsSelected() {
		return domainerrors.ErrCuisineMissing
	}
	if s.Cuisine.IsOther() && !s.Cuisine.HasText() {
		return domainerrors.ErrCustomCuisineMissing
	}
	if s.Halal.IsOther() && !s.Halal.HasText() {
		return domainerrors.ErrCustomHalalMissing
	}
	if !validCoordinates(s.Coordinates) {
		return domainerrors.ErrCoordinatesMissing
	}
	if isBlank(s.InitialUserName) {
		return domainerrors.ErrInitialAuthorMissing
	}
	if isMissing(s.InitialRating) {
		return domainerrors.ErrInitialRatingMissing
	}
	if !IsValidRating(s.InitialRating) {
		return domainerrors.ErrRatingOutOfRange
	}
	if isBlank(s.Name) {
		return domainerrors.ErrNameMissing
	}

	return nil
}

// ValidateRating checks a rating form for an existing restaurant.
func ValidateRating(s *entity.RatingSubmission) error {
	if isBlank(s.UserName) {
		return domainerrors.ErrAuthorMissing
	}
	if isMissing(s.Rating) {
		return domainerrors.ErrRatingMissing
	}
	if !IsValidRating(s.Rating) {
		return domainerrors.ErrRatingOutOfRange
	}

	return nil
}

func validCoordinates(coords []float64) bool {
	if validate.Var(coords, coordinatesTag) != nil {
		return false
	}
	for _, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// isMissing treats nil and blank strings as an absent rating; numbers are always present.
func isMissing(x any) bool {
	switch v := x.(type) {
	case nil:
		return true
	case string:
		return isBlank(v)
	case json.Number:
		return isBlank(string(v))
	default:
		return false
	}
}
