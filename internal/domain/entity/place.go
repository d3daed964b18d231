package entity

// PlaceCandidate is one result of an external places search.
type PlaceCandidate struct {
	PlaceID      string   `json:"placeId"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Lat          float64  `json:"lat"`
	Lng          float64  `json:"lng"`
	Rating       float64  `json:"rating,omitempty"`
	RatingCount  int      `json:"userRatingCount"`
	Types        []string `json:"types,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Website      string   `json:"website,omitempty"`
	MapsURI      string   `json:"googleMapsUri,omitempty"`
	PriceLevel   string   `json:"priceLevel,omitempty"`
	OpeningHours []string `json:"openingHours,omitempty"`
	Cuisine      string   `json:"cuisineType,omitempty"`
}

// Coordinates returns the candidate position.
func (p *PlaceCandidate) Coordinates() Coordinates {
	return Coordinates{Lat: p.Lat, Lng: p.Lng}
}

// Metadata snapshots the external fields copied onto a new restaurant.
func (p *PlaceCandidate) Metadata() *ExternalMetadata {
	return &ExternalMetadata{
		Rating:       p.Rating,
		RatingCount:  p.RatingCount,
		Address:      p.Address,
		Phone:        p.Phone,
		Website:      p.Website,
		PriceLevel:   p.PriceLevel,
		OpeningHours: append([]string(nil), p.OpeningHours...),
	}
}

// Draft pre-fills an add form from the candidate. Halal is left unselected.
func (p *PlaceCandidate) Draft() *RestaurantSubmission {
	mapLink := p.MapsURI
	if mapLink == "" {
		mapLink = MapsQueryURL(p.Lat, p.Lng)
	}

	return &RestaurantSubmission{
		Name:        p.Name,
		Cuisine:     Known(p.Cuisine),
		Coordinates: p.Coordinates().Pair(),
		External:    p.Metadata(),
		MapLink:     mapLink,
	}
}
