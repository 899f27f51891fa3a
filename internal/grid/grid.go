// Package grid enumerates the mesh cells of one level that intersect a
// bounding box, by walking neighbor cells from the south-west corner.
package grid

import (
	"errors"
	"fmt"

	"github.com/geofront-jp/jismesh-grid/pkg/jpmesh"
)

// ErrTooManyCells is returned when a scan would exceed the caller's cell
// budget; the caller should use a smaller bbox or a coarser level.
var ErrTooManyCells = errors.New("bbox expands to too many cells")

// BBox is a half-open geographic query window: cells are included while
// their south-west anchor lies below North/East.
type BBox struct {
	West  float64
	South float64
	East  float64
	North float64
}

func (b BBox) Validate() error {
	if b.South < -90 || b.North > 90 {
		return fmt.Errorf("latitude must be in [-90, 90]")
	}
	if b.West < -180 || b.East > 180 {
		return fmt.Errorf("longitude must be in [-180, 180]")
	}
	if b.East <= b.West || b.North <= b.South {
		return fmt.Errorf("bbox must satisfy east > west and north > south")
	}
	return nil
}

// clip intersects the bbox with the mesh territory. ok is false when
// nothing remains.
func (b BBox) clip() (BBox, bool) {
	out := b
	if out.West < jpmesh.Westernmost {
		out.West = jpmesh.Westernmost
	}
	if out.South < jpmesh.Southernmost {
		out.South = jpmesh.Southernmost
	}
	if out.East > jpmesh.Easternmost {
		out.East = jpmesh.Easternmost
	}
	if out.North > jpmesh.Northernmost {
		out.North = jpmesh.Northernmost
	}
	if out.West >= out.East || out.South >= out.North {
		return BBox{}, false
	}
	return out, true
}

// Scan returns the cells of the level intersecting bb, west to east then
// south to north. The bbox is clipped to the territory first; a bbox
// entirely outside yields an empty result, not an error.
func Scan(level int, bb BBox, maxCells int) ([]jpmesh.Mesh, error) {
	if err := bb.Validate(); err != nil {
		return nil, err
	}
	clipped, ok := bb.clip()
	if !ok {
		return nil, nil
	}
	origin, err := jpmesh.NewCoordinate(clipped.South, clipped.West)
	if err != nil {
		return nil, err
	}
	switch level {
	case 1:
		return collect(jpmesh.Mesh1FromCoordinate, origin, clipped, maxCells)
	case 2:
		return collect(jpmesh.Mesh2FromCoordinate, origin, clipped, maxCells)
	case 3:
		return collect(jpmesh.Mesh3FromCoordinate, origin, clipped, maxCells)
	case 4:
		return collect(jpmesh.Mesh4FromCoordinate, origin, clipped, maxCells)
	case 5:
		return collect(jpmesh.Mesh5FromCoordinate, origin, clipped, maxCells)
	case 6:
		return collect(jpmesh.Mesh6FromCoordinate, origin, clipped, maxCells)
	default:
		return nil, fmt.Errorf("mesh level %d does not exist", level)
	}
}

func collect[M jpmesh.Cell[M]](
	fromCoord func(jpmesh.Coordinate) (M, error),
	origin jpmesh.Coordinate,
	bb BBox,
	maxCells int,
) ([]jpmesh.Mesh, error) {
	rowStart, err := fromCoord(origin)
	if err != nil {
		return nil, err
	}
	var out []jpmesh.Mesh
	for {
		cell := rowStart
		for {
			if maxCells > 0 && len(out) >= maxCells {
				return nil, ErrTooManyCells
			}
			out = append(out, cell)
			next, err := cell.EastMesh()
			if err != nil || next.West() >= bb.East {
				break // territory edge or past the window
			}
			cell = next
		}
		up, err := rowStart.NorthMesh()
		if err != nil || up.South() >= bb.North {
			return out, nil
		}
		rowStart = up
	}
}
