// Package jpmesh converts between geographic coordinates and the codes of
// Japan's standard hierarchical area-mesh grid, and derives cell extents and
// adjacent cells from a code.
//
// Six levels nest inside each other: level 1 is an 80km-class cell addressed
// by a 4-digit code, levels 2 and 3 subdivide decimally (8x8 and 10x10), and
// levels 4 to 6 each split the parent into 2x2 quadrants. The code string is
// the single source of truth: a cell never stores its parent or its extent,
// both are recomputed from the digits on demand.
package jpmesh

// Bounds of the territory covered by the mesh system, in degrees.
const (
	Southernmost = 20.0
	Northernmost = 46.0
	Westernmost  = 122.0
	Easternmost  = 155.0
)

// Mesh is the query surface shared by every level: the code, the four cell
// boundaries, and the derived center and corner coordinates.
type Mesh interface {
	// Code returns the mesh code string.
	Code() string
	// Level returns the nesting depth, 1 through 6.
	Level() int
	// North returns the latitude of the northern edge in degrees.
	North() float64
	// South returns the latitude of the southern edge in degrees.
	South() float64
	// East returns the longitude of the eastern edge in degrees.
	East() float64
	// West returns the longitude of the western edge in degrees.
	West() float64
	// Center returns the midpoint of the cell.
	Center() Coordinate
	NorthEast() Coordinate
	SouthEast() Coordinate
	SouthWest() Coordinate
	NorthWest() Coordinate
}

// Cell is the full per-level surface, including navigation to adjacent cells
// of the same level. The type parameter keeps moves closed over the concrete
// level: a level-3 cell's neighbor is a level-3 cell.
type Cell[M any] interface {
	Mesh
	NorthMesh() (M, error)
	EastMesh() (M, error)
	SouthMesh() (M, error)
	WestMesh() (M, error)
	NorthEastMesh() (M, error)
	SouthEastMesh() (M, error)
	SouthWestMesh() (M, error)
	NorthWestMesh() (M, error)
}

// Direction reports where a cell sits relative to another, as decided by
// IsNeighboring. Only the four orthogonal one-step relations are recognized;
// diagonal or more distant cells are DirectionNone.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionNorth
	DirectionEast
	DirectionSouth
	DirectionWest
)

func (d Direction) String() string {
	switch d {
	case DirectionNorth:
		return "north"
	case DirectionEast:
		return "east"
	case DirectionSouth:
		return "south"
	case DirectionWest:
		return "west"
	default:
		return "none"
	}
}

// ParseCode constructs the mesh for a code, picking the level by code length
// (4, 6, 8, 9, 10 or 11 characters for levels 1 through 6).
func ParseCode(code string) (Mesh, error) {
	switch len(code) {
	case 4:
		return NewMesh1(code)
	case 6:
		return NewMesh2(code)
	case 8:
		return NewMesh3(code)
	case 9:
		return NewMesh4(code)
	case 10:
		return NewMesh5(code)
	case 11:
		return NewMesh6(code)
	default:
		return nil, invalidCode(code, "length %d matches no mesh level", len(code))
	}
}

// FromCoordinate bins c into the cell of the requested level, 1 through 6.
func FromCoordinate(level int, c Coordinate) (Mesh, error) {
	switch level {
	case 1:
		return Mesh1FromCoordinate(c)
	case 2:
		return Mesh2FromCoordinate(c)
	case 3:
		return Mesh3FromCoordinate(c)
	case 4:
		return Mesh4FromCoordinate(c)
	case 5:
		return Mesh5FromCoordinate(c)
	case 6:
		return Mesh6FromCoordinate(c)
	default:
		return nil, invalidCode("", "mesh level %d does not exist", level)
	}
}

// bounds is the minimal extent surface the corner helpers need.
type bounds interface {
	North() float64
	South() float64
	East() float64
	West() float64
}

func center(b bounds) Coordinate {
	return Coordinate{lat: (b.North() + b.South()) / 2, lon: (b.East() + b.West()) / 2}
}

func northEast(b bounds) Coordinate { return Coordinate{lat: b.North(), lon: b.East()} }
func southEast(b bounds) Coordinate { return Coordinate{lat: b.South(), lon: b.East()} }
func southWest(b bounds) Coordinate { return Coordinate{lat: b.South(), lon: b.West()} }
func northWest(b bounds) Coordinate { return Coordinate{lat: b.North(), lon: b.West()} }

// Diagonal moves compose the two orthogonal moves, latitude first. Either
// leg failing means the diagonal cell is outside the covered territory.
func northEastMesh[M Cell[M]](m M) (M, error) {
	n, err := m.NorthMesh()
	if err != nil {
		var zero M
		return zero, err
	}
	return n.EastMesh()
}

func southEastMesh[M Cell[M]](m M) (M, error) {
	s, err := m.SouthMesh()
	if err != nil {
		var zero M
		return zero, err
	}
	return s.EastMesh()
}

func southWestMesh[M Cell[M]](m M) (M, error) {
	s, err := m.SouthMesh()
	if err != nil {
		var zero M
		return zero, err
	}
	return s.WestMesh()
}

func northWestMesh[M Cell[M]](m M) (M, error) {
	n, err := m.NorthMesh()
	if err != nil {
		var zero M
		return zero, err
	}
	return n.WestMesh()
}

// isNeighboring decides adjacency structurally: other is a neighbor exactly
// when one of the four orthogonal moves from m lands on other's code. A move
// that fails (edge of the territory) simply cannot match.
func isNeighboring[M Cell[M]](m, other M) Direction {
	if n, err := m.NorthMesh(); err == nil && n.Code() == other.Code() {
		return DirectionNorth
	}
	if e, err := m.EastMesh(); err == nil && e.Code() == other.Code() {
		return DirectionEast
	}
	if s, err := m.SouthMesh(); err == nil && s.Code() == other.Code() {
		return DirectionSouth
	}
	if w, err := m.WestMesh(); err == nil && w.Code() == other.Code() {
		return DirectionWest
	}
	return DirectionNone
}
