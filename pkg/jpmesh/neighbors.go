package jpmesh

// NeighborSet holds the codes of the eight cells around one cell. A
// direction that falls outside the covered territory is the empty string.
type NeighborSet struct {
	North     string
	NorthEast string
	East      string
	SouthEast string
	South     string
	SouthWest string
	West      string
	NorthWest string
}

// NeighborsOf collects the neighbor codes of m at its own level.
func NeighborsOf(m Mesh) NeighborSet {
	switch t := m.(type) {
	case Mesh1:
		return neighborSet(t)
	case Mesh2:
		return neighborSet(t)
	case Mesh3:
		return neighborSet(t)
	case Mesh4:
		return neighborSet(t)
	case Mesh5:
		return neighborSet(t)
	case Mesh6:
		return neighborSet(t)
	default:
		return NeighborSet{}
	}
}

func neighborSet[M Cell[M]](m M) NeighborSet {
	code := func(c M, err error) string {
		if err != nil {
			return ""
		}
		return c.Code()
	}
	return NeighborSet{
		North:     code(m.NorthMesh()),
		NorthEast: code(m.NorthEastMesh()),
		East:      code(m.EastMesh()),
		SouthEast: code(m.SouthEastMesh()),
		South:     code(m.SouthMesh()),
		SouthWest: code(m.SouthWestMesh()),
		West:      code(m.WestMesh()),
		NorthWest: code(m.NorthWestMesh()),
	}
}
