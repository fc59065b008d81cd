package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EarthRadiusKm is the mean radius of the Earth in kilometers
const EarthRadiusKm = 6371.0

// AirportGeohashPrecision is the geohash length used to tag airport payloads
const AirportGeohashPrecision = 6

// CalculateDistance calculates the great-circle distance between two points
// in kilometers using the Haversine formula. The result is symmetric and
// exactly zero for identical points
func CalculateDistance(point1, point2 GeoPoint) float64 {
	// Convert latitude and longitude from degrees to radians
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	// Haversine formula
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// EncodeGeoPoint converts a point to a geohash string with the given precision
func EncodeGeoPoint(point GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}

// DecodeGeohash converts a geohash string back to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}
