package jpmesh

// Coordinate is a validated latitude/longitude pair in degrees.
// It is immutable; construct one through NewCoordinate.
type Coordinate struct {
	lat float64
	lon float64
}

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// NewCoordinate validates lat and lon independently. The accepted range is
// the full globe; whether a coordinate falls inside the territory covered by
// the mesh system is checked when a level-1 cell is derived from it.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	if lat < minLatitude || lat > maxLatitude {
		return Coordinate{}, &OutOfRangeError{Axis: AxisLatitude, Value: lat, Min: minLatitude, Max: maxLatitude}
	}
	if lon < minLongitude || lon > maxLongitude {
		return Coordinate{}, &OutOfRangeError{Axis: AxisLongitude, Value: lon, Min: minLongitude, Max: maxLongitude}
	}
	return Coordinate{lat: lat, lon: lon}, nil
}

// Latitude returns the latitude in degrees.
func (c Coordinate) Latitude() float64 { return c.lat }

// Longitude returns the longitude in degrees.
func (c Coordinate) Longitude() float64 { return c.lon }
