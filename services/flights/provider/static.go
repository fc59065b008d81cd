package provider

import (
	"context"
	"sort"
	"strings"

	"github.com/greentrip/greentrip/internal/pkg/apperrors"
	"github.com/greentrip/greentrip/internal/pkg/models"
	"github.com/greentrip/greentrip/internal/utils"
)

// StaticProvider serves a fixed flight and airport inventory. It stands in
// for a GDS integration and backs the development and test environments.
type StaticProvider struct {
	flights  map[string]models.Flight
	airports map[string]models.Airport
}

// NewStaticProvider creates a provider with the built-in inventory. Airport
// payloads are tagged with their geohash at construction time.
func NewStaticProvider() *StaticProvider {
	p := &StaticProvider{
		flights: map[string]models.Flight{
			"FL001": {
				ID:              "FL001",
				Airline:         "Green Airlines",
				FlightNumber:    "GA101",
				From:            "JFK",
				To:              "LAX",
				DepartureTime:   "10:00",
				ArrivalTime:     "13:30",
				Duration:        "5h 30m",
				Price:           299.99,
				SeatsAvailable:  45,
				Aircraft:        "Boeing 737",
				CarbonFootprint: 0.85,
				EcoRating:       4.2,
			},
			"FL002": {
				ID:              "FL002",
				Airline:         "EcoJet",
				FlightNumber:    "EJ202",
				From:            "LAX",
				To:              "JFK",
				DepartureTime:   "14:15",
				ArrivalTime:     "22:45",
				Duration:        "6h 30m",
				Price:           349.99,
				SeatsAvailable:  32,
				Aircraft:        "Airbus A320neo",
				CarbonFootprint: 0.72,
				EcoRating:       4.5,
			},
			"FL003": {
				ID:              "FL003",
				Airline:         "Sustainable Airways",
				FlightNumber:    "SA303",
				From:            "ORD",
				To:              "SFO",
				DepartureTime:   "08:30",
				ArrivalTime:     "11:45",
				Duration:        "4h 15m",
				Price:           199.99,
				SeatsAvailable:  67,
				Aircraft:        "Boeing 787 Dreamliner",
				CarbonFootprint: 0.68,
				EcoRating:       4.8,
			},
			"FL004": {
				ID:              "FL004",
				Airline:         "Green Airlines",
				FlightNumber:    "GA404",
				From:            "SFO",
				To:              "ORD",
				DepartureTime:   "16:00",
				ArrivalTime:     "22:15",
				Duration:        "4h 15m",
				Price:           249.99,
				SeatsAvailable:  28,
				Aircraft:        "Airbus A350",
				CarbonFootprint: 0.71,
				EcoRating:       4.6,
			},
		},
		airports: map[string]models.Airport{
			"JFK": {
				Code:      "JFK",
				Name:      "John F. Kennedy International Airport",
				City:      "New York",
				Country:   "USA",
				Latitude:  40.6413,
				Longitude: -73.7781,
			},
			"LAX": {
				Code:      "LAX",
				Name:      "Los Angeles International Airport",
				City:      "Los Angeles",
				Country:   "USA",
				Latitude:  33.9416,
				Longitude: -118.4085,
			},
			"ORD": {
				Code:      "ORD",
				Name:      "O'Hare International Airport",
				City:      "Chicago",
				Country:   "USA",
				Latitude:  41.9742,
				Longitude: -87.9073,
			},
			"SFO": {
				Code:      "SFO",
				Name:      "San Francisco International Airport",
				City:      "San Francisco",
				Country:   "USA",
				Latitude:  37.6213,
				Longitude: -122.3790,
			},
			"MIA": {
				Code:      "MIA",
				Name:      "Miami International Airport",
				City:      "Miami",
				Country:   "USA",
				Latitude:  25.7959,
				Longitude: -80.2870,
			},
			"SEA": {
				Code:      "SEA",
				Name:      "Seattle-Tacoma International Airport",
				City:      "Seattle",
				Country:   "USA",
				Latitude:  47.4502,
				Longitude: -122.3088,
			},
		},
	}

	for code, airport := range p.airports {
		airport.Geohash = utils.EncodeGeoPoint(
			utils.GeoPoint{Latitude: airport.Latitude, Longitude: airport.Longitude},
			utils.AirportGeohashPrecision,
		)
		p.airports[code] = airport
	}

	return p
}

// SearchFlights returns flights matching from/to with enough seats for the
// requested passengers, cheapest first. Each result is stamped with the
// requested date and the total price for the whole party.
func (p *StaticProvider) SearchFlights(ctx context.Context, from, to, date string, passengers int) ([]models.Flight, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	matches := []models.Flight{}
	for _, flight := range p.flights {
		if flight.From != from || flight.To != to || flight.SeatsAvailable < passengers {
			continue
		}
		flight.Date = date
		flight.TotalPrice = flight.Price * float64(passengers)
		matches = append(matches, flight)
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Price < matches[j].Price })
	return matches, nil
}

// GetFlightDetails returns a single flight by provider ID
func (p *StaticProvider) GetFlightDetails(ctx context.Context, flightID string) (*models.Flight, error) {
	flight, ok := p.flights[flightID]
	if !ok {
		return nil, apperrors.NotFoundf("flight %s not found", flightID)
	}
	return &flight, nil
}

// GetAirports returns all known airports sorted by IATA code
func (p *StaticProvider) GetAirports(ctx context.Context) ([]models.Airport, error) {
	airports := make([]models.Airport, 0, len(p.airports))
	for _, airport := range p.airports {
		airports = append(airports, airport)
	}
	sort.Slice(airports, func(i, j int) bool { return airports[i].Code < airports[j].Code })
	return airports, nil
}

// GetAirport returns a single airport by IATA code
func (p *StaticProvider) GetAirport(ctx context.Context, code string) (*models.Airport, error) {
	airport, ok := p.airports[strings.ToUpper(code)]
	if !ok {
		return nil, apperrors.NotFoundf("airport %s not found", code)
	}
	return &airport, nil
}
