package models

// Flight represents a bookable flight offered by a provider
type Flight struct {
	ID              string  `json:"id"`
	Airline         string  `json:"airline"`
	FlightNumber    string  `json:"flight_number"`
	From            string  `json:"from"`
	To              string  `json:"to"`
	DepartureTime   string  `json:"departure_time"`
	ArrivalTime     string  `json:"arrival_time"`
	Duration        string  `json:"duration"`
	Price           float64 `json:"price"`
	SeatsAvailable  int     `json:"seats_available"`
	Aircraft        string  `json:"aircraft"`
	CarbonFootprint float64 `json:"carbon_footprint"`
	EcoRating       float64 `json:"eco_rating"`
	Date            string  `json:"date,omitempty"`
	TotalPrice      float64 `json:"total_price,omitempty"`
}

// Airport represents an airport known to the flight provider
type Airport struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Geohash   string  `json:"geohash,omitempty"`
}

// FlightSearchRequest is the payload for flight searches
type FlightSearchRequest struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Date       string `json:"date"`
	Passengers int    `json:"passengers"`
}

// FlightSearchResult is the response envelope for flight searches
type FlightSearchResult struct {
	Flights         []Flight            `json:"flights"`
	SearchCriteria  FlightSearchRequest `json:"search_criteria"`
	TotalCount      int                 `json:"total_count"`
	SearchTimestamp string              `json:"search_timestamp"`
}
