package jpmesh

// Level-3 cell size: 30 seconds by 45 seconds, roughly 1km. This is the
// "standard" mesh most statistics are published against.
const (
	Mesh3Height = 30.0 / 3600.0
	Mesh3Width  = 45.0 / 3600.0
)

var level3 = decimalLevel[Mesh2]{
	length:    8,
	digitMax:  9,
	height:    Mesh3Height,
	width:     Mesh3Width,
	parse:     NewMesh2,
	fromCoord: Mesh2FromCoordinate,
}

// Mesh3 is a third-order cell, one of the 10x10 subdivisions of a level-2
// cell. Its code appends a row digit and a column digit, each 0..9.
type Mesh3 struct {
	code string
}

// NewMesh3 validates code as a level-3 mesh code.
func NewMesh3(code string) (Mesh3, error) {
	if err := level3.validate(code); err != nil {
		return Mesh3{}, err
	}
	return Mesh3{code: code}, nil
}

// Mesh3FromCoordinate bins c into its level-3 cell.
func Mesh3FromCoordinate(c Coordinate) (Mesh3, error) {
	code, err := level3.codeForCoordinate(c)
	if err != nil {
		return Mesh3{}, err
	}
	return NewMesh3(code)
}

// Mesh1 returns the level-1 cell containing this cell.
func (m Mesh3) Mesh1() Mesh1 { return m.Mesh2().Mesh1() }

// Mesh2 returns the level-2 cell containing this cell.
func (m Mesh3) Mesh2() Mesh2 { return level3.parent(m.code) }

func (m Mesh3) Code() string { return m.code }

func (m Mesh3) Level() int { return 3 }

func (m Mesh3) North() float64 { return m.South() + Mesh3Height }
func (m Mesh3) East() float64  { return m.West() + Mesh3Width }
func (m Mesh3) South() float64 { return level3.south(m.code) }
func (m Mesh3) West() float64  { return level3.west(m.code) }

func (m Mesh3) Center() Coordinate    { return center(m) }
func (m Mesh3) NorthEast() Coordinate { return northEast(m) }
func (m Mesh3) SouthEast() Coordinate { return southEast(m) }
func (m Mesh3) SouthWest() Coordinate { return southWest(m) }
func (m Mesh3) NorthWest() Coordinate { return northWest(m) }

func (m Mesh3) NorthMesh() (Mesh3, error) {
	code, err := level3.northCode(m.code)
	if err != nil {
		return Mesh3{}, err
	}
	return NewMesh3(code)
}

func (m Mesh3) EastMesh() (Mesh3, error) {
	code, err := level3.eastCode(m.code)
	if err != nil {
		return Mesh3{}, err
	}
	return NewMesh3(code)
}

func (m Mesh3) SouthMesh() (Mesh3, error) {
	code, err := level3.southCode(m.code)
	if err != nil {
		return Mesh3{}, err
	}
	return NewMesh3(code)
}

func (m Mesh3) WestMesh() (Mesh3, error) {
	code, err := level3.westCode(m.code)
	if err != nil {
		return Mesh3{}, err
	}
	return NewMesh3(code)
}

func (m Mesh3) NorthEastMesh() (Mesh3, error) { return northEastMesh(m) }
func (m Mesh3) SouthEastMesh() (Mesh3, error) { return southEastMesh(m) }
func (m Mesh3) SouthWestMesh() (Mesh3, error) { return southWestMesh(m) }
func (m Mesh3) NorthWestMesh() (Mesh3, error) { return northWestMesh(m) }

// IsNeighboring reports whether other is one orthogonal step from m.
func (m Mesh3) IsNeighboring(other Mesh3) Direction { return isNeighboring(m, other) }
