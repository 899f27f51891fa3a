package jpmesh

// Level-6 cell size: 3.75 seconds by 5.625 seconds, roughly 125m.
const (
	Mesh6Height = 3.75 / 3600.0
	Mesh6Width  = 5.625 / 3600.0
)

var level6 = quadLevel[Mesh5]{
	length:    11,
	height:    Mesh6Height,
	width:     Mesh6Width,
	parse:     NewMesh5,
	fromCoord: Mesh5FromCoordinate,
}

// Mesh6 is an eighth cell: one quadrant of a level-5 cell, the finest level
// of the hierarchy.
type Mesh6 struct {
	code string
}

// NewMesh6 validates code as a level-6 mesh code.
func NewMesh6(code string) (Mesh6, error) {
	if err := level6.validate(code); err != nil {
		return Mesh6{}, err
	}
	return Mesh6{code: code}, nil
}

// Mesh6FromCoordinate bins c into its level-6 cell.
func Mesh6FromCoordinate(c Coordinate) (Mesh6, error) {
	code, err := level6.codeForCoordinate(c)
	if err != nil {
		return Mesh6{}, err
	}
	return NewMesh6(code)
}

// Mesh4 returns the level-4 cell containing this cell.
func (m Mesh6) Mesh4() Mesh4 { return m.Mesh5().Mesh4() }

// Mesh5 returns the level-5 cell containing this cell.
func (m Mesh6) Mesh5() Mesh5 { return level6.parent(m.code) }

func (m Mesh6) Code() string { return m.code }

func (m Mesh6) Level() int { return 6 }

func (m Mesh6) North() float64 { return m.South() + Mesh6Height }
func (m Mesh6) East() float64  { return m.West() + Mesh6Width }
func (m Mesh6) South() float64 { return level6.south(m.code) }
func (m Mesh6) West() float64  { return level6.west(m.code) }

func (m Mesh6) Center() Coordinate    { return center(m) }
func (m Mesh6) NorthEast() Coordinate { return northEast(m) }
func (m Mesh6) SouthEast() Coordinate { return southEast(m) }
func (m Mesh6) SouthWest() Coordinate { return southWest(m) }
func (m Mesh6) NorthWest() Coordinate { return northWest(m) }

func (m Mesh6) NorthMesh() (Mesh6, error) {
	code, err := level6.northCode(m.code)
	if err != nil {
		return Mesh6{}, err
	}
	return NewMesh6(code)
}

func (m Mesh6) EastMesh() (Mesh6, error) {
	code, err := level6.eastCode(m.code)
	if err != nil {
		return Mesh6{}, err
	}
	return NewMesh6(code)
}

func (m Mesh6) SouthMesh() (Mesh6, error) {
	code, err := level6.southCode(m.code)
	if err != nil {
		return Mesh6{}, err
	}
	return NewMesh6(code)
}

func (m Mesh6) WestMesh() (Mesh6, error) {
	code, err := level6.westCode(m.code)
	if err != nil {
		return Mesh6{}, err
	}
	return NewMesh6(code)
}

func (m Mesh6) NorthEastMesh() (Mesh6, error) { return northEastMesh(m) }
func (m Mesh6) SouthEastMesh() (Mesh6, error) { return southEastMesh(m) }
func (m Mesh6) SouthWestMesh() (Mesh6, error) { return southWestMesh(m) }
func (m Mesh6) NorthWestMesh() (Mesh6, error) { return northWestMesh(m) }

// IsNeighboring reports whether other is one orthogonal step from m.
func (m Mesh6) IsNeighboring(other Mesh6) Direction { return isNeighboring(m, other) }
