package jpmesh

import (
	"fmt"
	"math"
	"strconv"
)

// Level-1 cell size in degrees: 40 minutes of latitude by 1 degree of
// longitude, roughly 80km on a side.
const (
	Mesh1Height = 40.0 / 60.0
	Mesh1Width  = 1.0
)

// Legal ranges of the two 2-digit code fields, derived from the territory
// bounds: floor(20*1.5)=30 .. floor((46-40')*1.5)=68 for latitude and
// 122-100=22 .. 155-1-100=54 for longitude.
const (
	mesh1LatFieldMin = 30
	mesh1LatFieldMax = 68
	mesh1LonFieldMin = 22
	mesh1LonFieldMax = 54
)

// Mesh1 is a first-order cell, the root of the hierarchy. Its code is two
// 2-digit decimal fields: floor(latitude * 1.5) and floor(longitude - 100).
// The cell containing Tokyo (35.7N 139.7E) is "5339".
type Mesh1 struct {
	code string
}

// NewMesh1 validates code as a level-1 mesh code.
func NewMesh1(code string) (Mesh1, error) {
	if len(code) != 4 {
		return Mesh1{}, invalidCode(code, "level-1 code must be 4 digits")
	}
	latField, err := strconv.Atoi(code[0:2])
	if err != nil {
		return Mesh1{}, invalidCode(code, "latitude field is not decimal")
	}
	lonField, err := strconv.Atoi(code[2:4])
	if err != nil {
		return Mesh1{}, invalidCode(code, "longitude field is not decimal")
	}
	if latField < mesh1LatFieldMin || latField > mesh1LatFieldMax {
		return Mesh1{}, invalidCode(code, "latitude field %d outside [%d, %d]", latField, mesh1LatFieldMin, mesh1LatFieldMax)
	}
	if lonField < mesh1LonFieldMin || lonField > mesh1LonFieldMax {
		return Mesh1{}, invalidCode(code, "longitude field %d outside [%d, %d]", lonField, mesh1LonFieldMin, mesh1LonFieldMax)
	}
	return Mesh1{code: code}, nil
}

// Mesh1FromCoordinate bins c into its level-1 cell. This is the single place
// the territory bounds are enforced; the deeper levels build on it.
func Mesh1FromCoordinate(c Coordinate) (Mesh1, error) {
	if c.lat < Southernmost || c.lat >= Northernmost {
		return Mesh1{}, &OutOfRangeError{Axis: AxisLatitude, Value: c.lat, Min: Southernmost, Max: Northernmost}
	}
	if c.lon < Westernmost || c.lon >= Easternmost {
		return Mesh1{}, &OutOfRangeError{Axis: AxisLongitude, Value: c.lon, Min: Westernmost, Max: Easternmost}
	}
	latField := int(math.Floor(c.lat * 1.5))
	lonField := int(math.Floor(c.lon - 100))
	return NewMesh1(fmt.Sprintf("%02d%02d", latField, lonField))
}

func (m Mesh1) Code() string { return m.code }

func (m Mesh1) Level() int { return 1 }

func (m Mesh1) North() float64 { return m.South() + Mesh1Height }

func (m Mesh1) East() float64 { return m.West() + Mesh1Width }

func (m Mesh1) South() float64 {
	return float64(m.latField()) / 1.5
}

func (m Mesh1) West() float64 {
	return float64(m.lonField()) + 100
}

func (m Mesh1) Center() Coordinate    { return center(m) }
func (m Mesh1) NorthEast() Coordinate { return northEast(m) }
func (m Mesh1) SouthEast() Coordinate { return southEast(m) }
func (m Mesh1) SouthWest() Coordinate { return southWest(m) }
func (m Mesh1) NorthWest() Coordinate { return northWest(m) }

// NorthMesh returns the cell directly north. The derived code failing
// validation means the cell would lie outside the covered territory.
func (m Mesh1) NorthMesh() (Mesh1, error) {
	return NewMesh1(fmt.Sprintf("%02d%s", m.latField()+1, m.code[2:4]))
}

// EastMesh returns the cell directly east.
func (m Mesh1) EastMesh() (Mesh1, error) {
	return NewMesh1(fmt.Sprintf("%s%02d", m.code[0:2], m.lonField()+1))
}

// SouthMesh returns the cell directly south.
func (m Mesh1) SouthMesh() (Mesh1, error) {
	return NewMesh1(fmt.Sprintf("%02d%s", m.latField()-1, m.code[2:4]))
}

// WestMesh returns the cell directly west.
func (m Mesh1) WestMesh() (Mesh1, error) {
	return NewMesh1(fmt.Sprintf("%s%02d", m.code[0:2], m.lonField()-1))
}

func (m Mesh1) NorthEastMesh() (Mesh1, error) { return northEastMesh(m) }
func (m Mesh1) SouthEastMesh() (Mesh1, error) { return southEastMesh(m) }
func (m Mesh1) SouthWestMesh() (Mesh1, error) { return southWestMesh(m) }
func (m Mesh1) NorthWestMesh() (Mesh1, error) { return northWestMesh(m) }

// IsNeighboring reports whether other is one orthogonal step from m.
func (m Mesh1) IsNeighboring(other Mesh1) Direction { return isNeighboring(m, other) }

// Fields are re-parsed from the code on every access; the code was validated
// at construction so parsing cannot fail.
func (m Mesh1) latField() int {
	n, _ := strconv.Atoi(m.code[0:2])
	return n
}

func (m Mesh1) lonField() int {
	n, _ := strconv.Atoi(m.code[2:4])
	return n
}
