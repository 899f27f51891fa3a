package jpmesh

// Level-2 cell size: 5 minutes by 7 minutes 30 seconds, roughly 10km.
const (
	Mesh2Height = 5.0 / 60.0
	Mesh2Width  = 7.0/60.0 + 30.0/3600.0
)

var level2 = decimalLevel[Mesh1]{
	length:    6,
	digitMax:  7,
	height:    Mesh2Height,
	width:     Mesh2Width,
	parse:     NewMesh1,
	fromCoord: Mesh1FromCoordinate,
}

// Mesh2 is a second-order cell, one of the 8x8 subdivisions of a level-1
// cell. Its code appends a row digit and a column digit, each 0..7, to the
// parent code.
type Mesh2 struct {
	code string
}

// NewMesh2 validates code as a level-2 mesh code.
func NewMesh2(code string) (Mesh2, error) {
	if err := level2.validate(code); err != nil {
		return Mesh2{}, err
	}
	return Mesh2{code: code}, nil
}

// Mesh2FromCoordinate bins c into its level-2 cell.
func Mesh2FromCoordinate(c Coordinate) (Mesh2, error) {
	code, err := level2.codeForCoordinate(c)
	if err != nil {
		return Mesh2{}, err
	}
	return NewMesh2(code)
}

// Mesh1 returns the level-1 cell containing this cell.
func (m Mesh2) Mesh1() Mesh1 { return level2.parent(m.code) }

func (m Mesh2) Code() string { return m.code }

func (m Mesh2) Level() int { return 2 }

func (m Mesh2) North() float64 { return m.South() + Mesh2Height }
func (m Mesh2) East() float64  { return m.West() + Mesh2Width }
func (m Mesh2) South() float64 { return level2.south(m.code) }
func (m Mesh2) West() float64  { return level2.west(m.code) }

func (m Mesh2) Center() Coordinate    { return center(m) }
func (m Mesh2) NorthEast() Coordinate { return northEast(m) }
func (m Mesh2) SouthEast() Coordinate { return southEast(m) }
func (m Mesh2) SouthWest() Coordinate { return southWest(m) }
func (m Mesh2) NorthWest() Coordinate { return northWest(m) }

func (m Mesh2) NorthMesh() (Mesh2, error) {
	code, err := level2.northCode(m.code)
	if err != nil {
		return Mesh2{}, err
	}
	return NewMesh2(code)
}

func (m Mesh2) EastMesh() (Mesh2, error) {
	code, err := level2.eastCode(m.code)
	if err != nil {
		return Mesh2{}, err
	}
	return NewMesh2(code)
}

func (m Mesh2) SouthMesh() (Mesh2, error) {
	code, err := level2.southCode(m.code)
	if err != nil {
		return Mesh2{}, err
	}
	return NewMesh2(code)
}

func (m Mesh2) WestMesh() (Mesh2, error) {
	code, err := level2.westCode(m.code)
	if err != nil {
		return Mesh2{}, err
	}
	return NewMesh2(code)
}

func (m Mesh2) NorthEastMesh() (Mesh2, error) { return northEastMesh(m) }
func (m Mesh2) SouthEastMesh() (Mesh2, error) { return southEastMesh(m) }
func (m Mesh2) SouthWestMesh() (Mesh2, error) { return southWestMesh(m) }
func (m Mesh2) NorthWestMesh() (Mesh2, error) { return northWestMesh(m) }

// IsNeighboring reports whether other is one orthogonal step from m.
func (m Mesh2) IsNeighboring(other Mesh2) Direction { return isNeighboring(m, other) }
