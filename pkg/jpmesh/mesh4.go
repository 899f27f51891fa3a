package jpmesh

// Level-4 cell size: 15 seconds by 22.5 seconds, roughly 500m.
const (
	Mesh4Height = 15.0 / 3600.0
	Mesh4Width  = 22.5 / 3600.0
)

var level4 = quadLevel[Mesh3]{
	length:    9,
	height:    Mesh4Height,
	width:     Mesh4Width,
	parse:     NewMesh3,
	fromCoord: Mesh3FromCoordinate,
}

// Mesh4 is a half cell: one quadrant of a level-3 cell, selected by a single
// digit 1..4 appended to the parent code.
type Mesh4 struct {
	code string
}

// NewMesh4 validates code as a level-4 mesh code.
func NewMesh4(code string) (Mesh4, error) {
	if err := level4.validate(code); err != nil {
		return Mesh4{}, err
	}
	return Mesh4{code: code}, nil
}

// Mesh4FromCoordinate bins c into its level-4 cell.
func Mesh4FromCoordinate(c Coordinate) (Mesh4, error) {
	code, err := level4.codeForCoordinate(c)
	if err != nil {
		return Mesh4{}, err
	}
	return NewMesh4(code)
}

// Mesh1 returns the level-1 cell containing this cell.
func (m Mesh4) Mesh1() Mesh1 { return m.Mesh3().Mesh1() }

// Mesh2 returns the level-2 cell containing this cell.
func (m Mesh4) Mesh2() Mesh2 { return m.Mesh3().Mesh2() }

// Mesh3 returns the level-3 cell containing this cell.
func (m Mesh4) Mesh3() Mesh3 { return level4.parent(m.code) }

func (m Mesh4) Code() string { return m.code }

func (m Mesh4) Level() int { return 4 }

func (m Mesh4) North() float64 { return m.South() + Mesh4Height }
func (m Mesh4) East() float64  { return m.West() + Mesh4Width }
func (m Mesh4) South() float64 { return level4.south(m.code) }
func (m Mesh4) West() float64  { return level4.west(m.code) }

func (m Mesh4) Center() Coordinate    { return center(m) }
func (m Mesh4) NorthEast() Coordinate { return northEast(m) }
func (m Mesh4) SouthEast() Coordinate { return southEast(m) }
func (m Mesh4) SouthWest() Coordinate { return southWest(m) }
func (m Mesh4) NorthWest() Coordinate { return northWest(m) }

func (m Mesh4) NorthMesh() (Mesh4, error) {
	code, err := level4.northCode(m.code)
	if err != nil {
		return Mesh4{}, err
	}
	return NewMesh4(code)
}

func (m Mesh4) EastMesh() (Mesh4, error) {
	code, err := level4.eastCode(m.code)
	if err != nil {
		return Mesh4{}, err
	}
	return NewMesh4(code)
}

func (m Mesh4) SouthMesh() (Mesh4, error) {
	code, err := level4.southCode(m.code)
	if err != nil {
		return Mesh4{}, err
	}
	return NewMesh4(code)
}

func (m Mesh4) WestMesh() (Mesh4, error) {
	code, err := level4.westCode(m.code)
	if err != nil {
		return Mesh4{}, err
	}
	return NewMesh4(code)
}

func (m Mesh4) NorthEastMesh() (Mesh4, error) { return northEastMesh(m) }
func (m Mesh4) SouthEastMesh() (Mesh4, error) { return southEastMesh(m) }
func (m Mesh4) SouthWestMesh() (Mesh4, error) { return southWestMesh(m) }
func (m Mesh4) NorthWestMesh() (Mesh4, error) { return northWestMesh(m) }

// IsNeighboring reports whether other is one orthogonal step from m.
func (m Mesh4) IsNeighboring(other Mesh4) Direction { return isNeighboring(m, other) }
