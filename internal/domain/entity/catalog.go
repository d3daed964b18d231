package entity

import (
	"fmt"
	"slices"
)

// CuisineTypes lists the cuisines offered in the add form, OtherSentinel last.
var CuisineTypes = []string{
	"Italien",
	"Libanais",
	"Turque",
	"Kebab",
	"Fast Food",
	"Pizza",
	"Japonais",
	"Chinois",
	"Thaï",
	"Vietnamien",
	"Africain",
	"Coréen",
	"Indien",
	"Mexicain",
	"Américain",
	"Burger",
	"Steakhouse",
	"Méditerranéen",
	"Café",
	"Boulangerie",
	OtherSentinel,
}

// HalalCertifications lists the certification options, OtherSentinel last.
var HalalCertifications = []string{
	"AVS-Achahada..",
	"Autre certif",
	"Musulmans",
	"PAS Halal",
	OtherSentinel,
}

var cuisineEmojis = map[string]string{
	"Italien":       "🇮🇹",
	"Pizza":         "🍕",
	"Libanais":      "🇱🇧",
	"Turque":        "🇹🇷",
	"Kebab":         "🥙",
	"Fast Food":     "🍔",
	"Burger":        "🍔",
	"Japonais":      "🍱",
	"Sushi":         "🍣",
	"Chinois":       "🥡",
	"Thaï":          "🍜",
	"Vietnamien":    "🍜",
	"Africain":      "🥘",
	"Coréen":        "🍜",
	"Indien":        "🍛",
	"Mexicain":      "🌮",
	"Américain":     "🍔",
	"Steakhouse":    "🥩",
	"Méditerranéen": "🫒",
	"Café":          "☕",
	"Boulangerie":   "🥐",
	OtherSentinel:   "🍽️",
}

// placeTypeCuisines maps Google place types to catalog cuisines.
var placeTypeCuisines = map[string]string{
	"chinese_restaurant":       "Chinois",
	"japanese_restaurant":      "Japonais",
	"italian_restaurant":       "Italien",
	"french_restaurant":        "Français",
	"indian_restaurant":        "Indien",
	"thai_restaurant":          "Thaï",
	"vietnamese_restaurant":    "Vietnamien",
	"korean_restaurant":        "Coréen",
	"mexican_restaurant":       "Mexicain",
	"american_restaurant":      "Américain",
	"mediterranean_restaurant": "Méditerranéen",
	"seafood_restaurant":       "Fruits de mer",
	"steak_house":              "Steakhouse",
	"sushi_restaurant":         "Sushi",
	"pizza_restaurant":         "Pizza",
	"hamburger_restaurant":     "Burger",
	"fast_food_restaurant":     "Fast Food",
	"cafe":                     "Café",
	"bakery":                   "Boulangerie",
}

var priceDisplays = map[string]string{
	"PRICE_LEVEL_FREE":           "Gratuit",
	"PRICE_LEVEL_INEXPENSIVE":    "€",
	"PRICE_LEVEL_MODERATE":       "€€",
	"PRICE_LEVEL_EXPENSIVE":      "€€€",
	"PRICE_LEVEL_VERY_EXPENSIVE": "€€€€",
}

// IsKnownCuisine reports whether the value belongs to the cuisine enumeration.
func IsKnownCuisine(value string) bool {
	return slices.Contains(CuisineTypes, value)
}

// CuisineEmoji returns the pin emoji for a cuisine, falling back to the generic plate.
func CuisineEmoji(cuisine string) string {
	if emoji, ok := cuisineEmojis[cuisine]; ok {
		return emoji
	}

	return cuisineEmojis[OtherSentinel]
}

// ExtractCuisineType returns the cuisine of the first mapped place type, or "" when none maps.
func ExtractCuisineType(placeTypes []string) string {
	for _, placeType := range placeTypes {
		if cuisine, ok := placeTypeCuisines[placeType]; ok {
			return cuisine
		}
	}

	return ""
}

// PriceDisplay converts a Google price level into euro symbols; unknown levels yield "".
func PriceDisplay(priceLevel string) string {
	return priceDisplays[priceLevel]
}

// AverageRating returns the mean of the user ratings, false when there are none.
func AverageRating(ratings []RatingEntry) (float64, bool) {
	if len(ratings) == 0 {
		return 0, false
	}

	var sum float64
	for _, r := range ratings {
		sum += r.Value
	}

	return sum / float64(len(ratings)), true
}

// FormatAverageRating formats the average with one decimal, "" when there are no ratings.
func FormatAverageRating(ratings []RatingEntry) string {
	avg, ok := AverageRating(ratings)
	if !ok {
		return ""
	}

	return fmt.Sprintf("%.1f", avg)
}
