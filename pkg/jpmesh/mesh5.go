package jpmesh

// Level-5 cell size: 7.5 seconds by 11.25 seconds, roughly 250m.
const (
	Mesh5Height = 7.5 / 3600.0
	Mesh5Width  = 11.25 / 3600.0
)

var level5 = quadLevel[Mesh4]{
	length:    10,
	height:    Mesh5Height,
	width:     Mesh5Width,
	parse:     NewMesh4,
	fromCoord: Mesh4FromCoordinate,
}

// Mesh5 is a quarter cell: one quadrant of a level-4 cell.
type Mesh5 struct {
	code string
}

// NewMesh5 validates code as a level-5 mesh code.
func NewMesh5(code string) (Mesh5, error) {
	if err := level5.validate(code); err != nil {
		return Mesh5{}, err
	}
	return Mesh5{code: code}, nil
}

// Mesh5FromCoordinate bins c into its level-5 cell.
func Mesh5FromCoordinate(c Coordinate) (Mesh5, error) {
	code, err := level5.codeForCoordinate(c)
	if err != nil {
		return Mesh5{}, err
	}
	return NewMesh5(code)
}

// Mesh3 returns the level-3 cell containing this cell.
func (m Mesh5) Mesh3() Mesh3 { return m.Mesh4().Mesh3() }

// Mesh4 returns the level-4 cell containing this cell.
func (m Mesh5) Mesh4() Mesh4 { return level5.parent(m.code) }

func (m Mesh5) Code() string { return m.code }

func (m Mesh5) Level() int { return 5 }

func (m Mesh5) North() float64 { return m.South() + Mesh5Height }
func (m Mesh5) East() float64  { return m.West() + Mesh5Width }
func (m Mesh5) South() float64 { return level5.south(m.code) }
func (m Mesh5) West() float64  { return level5.west(m.code) }

func (m Mesh5) Center() Coordinate    { return center(m) }
func (m Mesh5) NorthEast() Coordinate { return northEast(m) }
func (m Mesh5) SouthEast() Coordinate { return southEast(m) }
func (m Mesh5) SouthWest() Coordinate { return southWest(m) }
func (m Mesh5) NorthWest() Coordinate { return northWest(m) }

func (m Mesh5) NorthMesh() (Mesh5, error) {
	code, err := level5.northCode(m.code)
	if err != nil {
		return Mesh5{}, err
	}
	return NewMesh5(code)
}

func (m Mesh5) EastMesh() (Mesh5, error) {
	code, err := level5.eastCode(m.code)
	if err != nil {
		return Mesh5{}, err
	}
	return NewMesh5(code)
}

func (m Mesh5) SouthMesh() (Mesh5, error) {
	code, err := level5.southCode(m.code)
	if err != nil {
		return Mesh5{}, err
	}
	return NewMesh5(code)
}

func (m Mesh5) WestMesh() (Mesh5, error) {
	code, err := level5.westCode(m.code)
	if err != nil {
		return Mesh5{}, err
	}
	return NewMesh5(code)
}

func (m Mesh5) NorthEastMesh() (Mesh5, error) { return northEastMesh(m) }
func (m Mesh5) SouthEastMesh() (Mesh5, error) { return southEastMesh(m) }
func (m Mesh5) SouthWestMesh() (Mesh5, error) { return southWestMesh(m) }
func (m Mesh5) NorthWestMesh() (Mesh5, error) { return northWestMesh(m) }

// IsNeighboring reports whether other is one orthogonal step from m.
func (m Mesh5) IsNeighboring(other Mesh5) Direction { return isNeighboring(m, other) }
