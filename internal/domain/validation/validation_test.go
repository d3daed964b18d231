package validation

import (
	"encoding/json"
	"math"
	"testing"

	"restomap/internal/domain/entity"
	domainerrors "restomap/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{name: "lower bound", input: 1.0, want: true},
		{name: "upper bound", input: 5.0, want: true},
		{name: "just below lower bound", input: 0.999, want: false},
		{name: "just above upper bound", input: 5.001, want: false},
		{name: "decimal inside range", input: 3.7, want: true},
		{name: "integer inside range", input: 4, want: true},
		{name: "zero", input: 0, want: false},
		{name: "negative", input: -2.5, want: false},
		{name: "numeric string", input: "4.5", want: true},
		{name: "padded numeric string", input: " 2 ", want: true},
		{name: "string out of range", input: "7", want: false},
		{name: "empty string", input: "", want: false},
		{name: "non numeric string", input: "abc", want: false},
		{name: "nil", input: nil, want: false},
		{name: "NaN", input: math.NaN(), want: false},
		{name: "infinity", input: math.Inf(1), want: false},
		{name: "json number", input: json.Number("5"), want: true},
		{name: "unsupported type", input: []int{3}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsValidRating(tt.input))
		})
	}
}

func validSubmission() *entity.RestaurantSubmission {
	return &entity.RestaurantSubmission{
		Name:            "Le Test",
		Cuisine:         entity.Known("Italien"),
		Halal:           entity.Known("Oui"),
		Coordinates:     []float64{48.85, 2.35},
		InitialUserName: "Sam",
		InitialRating:   "4.5",
	}
}

func TestValidateRestaurant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(s *entity.RestaurantSubmission)
		wantErr error
	}{
		{
			name:   "valid submission",
			mutate: func(*entity.RestaurantSubmission) {},
		},
		{
			name:    "halal unset",
			mutate:  func(s *entity.RestaurantSubmission) { s.Halal = entity.Choice{} },
			wantErr: domainerrors.ErrHalalMissing,
		},
		{
			name: "halal checked before cuisine",
			mutate: func(s *entity.RestaurantSubmission) {
				s.Halal = entity.Choice{}
				s.Cuisine = entity.Choice{}
			},
			wantErr: domainerrors.ErrHalalMissing,
		},
		{
			name:    "cuisine unset",
			mutate:  func(s *entity.RestaurantSubmission) { s.Cuisine = entity.Known("") },
			wantErr: domainerrors.ErrCuisineMissing,
		},
		{
			name:    "cuisine other without text",
			mutate:  func(s *entity.RestaurantSubmission) { s.Cuisine = entity.ParseChoice("Autre", "   ") },
			wantErr: domainerrors.ErrCustomCuisineMissing,
		},
		{
			name:    "halal other without text",
			mutate:  func(s *entity.RestaurantSubmission) { s.Halal = entity.Other("") },
			wantErr: domainerrors.ErrCustomHalalMissing,
		},
		{
			name: "other with text passes",
			mutate: func(s *entity.RestaurantSubmission) {
				s.Cuisine = entity.Other("Ouzbek")
				s.Halal = entity.Other("Certif locale")
			},
		},
		{
			name:    "coordinates missing",
			mutate:  func(s *entity.RestaurantSubmission) { s.Coordinates = nil },
			wantErr: domainerrors.ErrCoordinatesMissing,
		},
		{
			name:    "coordinates wrong length",
			mutate:  func(s *entity.RestaurantSubmission) { s.Coordinates = []float64{48.85, 2.35, 0} },
			wantErr: domainerrors.ErrCoordinatesMissing,
		},
		{
			name:    "coordinates not numeric",
			mutate:  func(s *entity.RestaurantSubmission) { s.Coordinates = []float64{math.NaN(), 2.35} },
			wantErr: domainerrors.ErrCoordinatesMissing,
		},
		{
			name:    "initial author blank",
			mutate:  func(s *entity.RestaurantSubmission) { s.InitialUserName = "  " },
			wantErr: domainerrors.ErrInitialAuthorMissing,
		},
		{
			name:    "initial rating absent",
			mutate:  func(s *entity.RestaurantSubmission) { s.InitialRating = nil },
			wantErr: domainerrors.ErrInitialRatingMissing,
		},
		{
			name:    "initial rating empty string",
			mutate:  func(s *entity.RestaurantSubmission) { s.InitialRating = "" },
			wantErr: domainerrors.ErrInitialRatingMissing,
		},
		{
			name:    "initial rating out of range",
			mutate:  func(s *entity.RestaurantSubmission) { s.InitialRating = 5.001 },
			wantErr: domainerrors.ErrRatingOutOfRange,
		},
		{
			name:    "initial rating non numeric",
			mutate:  func(s *entity.RestaurantSubmission) { s.InitialRating = "great" },
			wantErr: domainerrors.ErrRatingOutOfRange,
		},
		{
			name:    "name blank checked last",
			mutate:  func(s *entity.RestaurantSubmission) { s.Name = "" },
			wantErr: domainerrors.ErrNameMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := validSubmission()
			tt.mutate(s)

			err := ValidateRestaurant(s)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   entity.RatingSubmission
		wantErr error
	}{
		{name: "valid", input: entity.RatingSubmission{UserName: "B", Rating: "3"}},
		{name: "valid numeric", input: entity.RatingSubmission{UserName: "B", Rating: 1}},
		{
			name:    "blank author",
			input:   entity.RatingSubmission{UserName: " ", Rating: "3"},
			wantErr: domainerrors.ErrAuthorMissing,
		},
		{
			name:    "missing rating",
			input:   entity.RatingSubmission{UserName: "B"},
			wantErr: domainerrors.ErrRatingMissing,
		},
		{
			name:    "rating above range",
			input:   entity.RatingSubmission{UserName: "B", Rating: "7"},
			wantErr: domainerrors.ErrRatingOutOfRange,
		},
		{
			name:    "rating below range",
			input:   entity.RatingSubmission{UserName: "B", Rating: 0.5},
			wantErr: domainerrors.ErrRatingOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateRating(&tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
