package domain

// GeoCoordinates is a validated observer location. Latitude is north positive, longitude east positive.
type GeoCoordinates struct {
	Latitude  float64 `validate:"gte=-90,lte=90"`
	Longitude float64 `validate:"gte=-180,lte=180"`
	Altitude  float64 // meters, optional
	Name      string
}
