// Package geojson renders mesh cells as GeoJSON features: one closed
// polygon ring plus the code and level as attributes.
package geojson

import (
	"github.com/geofront-jp/jismesh-grid/pkg/jpmesh"
)

type Geometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// FromMesh renders one cell. GeoJSON positions are [lon, lat]; the ring runs
// counter-clockwise from the south-west corner and closes on itself.
func FromMesh(m jpmesh.Mesh) Feature {
	ring := [][2]float64{
		{m.West(), m.South()},
		{m.East(), m.South()},
		{m.East(), m.North()},
		{m.West(), m.North()},
		{m.West(), m.South()},
	}
	c := m.Center()
	return Feature{
		Type:     "Feature",
		Geometry: Geometry{Type: "Polygon", Coordinates: [][][2]float64{ring}},
		Properties: map[string]any{
			"code":       m.Code(),
			"level":      m.Level(),
			"center_lat": c.Latitude(),
			"center_lon": c.Longitude(),
		},
	}
}

// Collection renders a set of cells in input order.
func Collection(meshes []jpmesh.Mesh) FeatureCollection {
	features := make([]Feature, 0, len(meshes))
	for _, m := range meshes {
		features = append(features, FromMesh(m))
	}
	return FeatureCollection{Type: "FeatureCollection", Features: features}
}
