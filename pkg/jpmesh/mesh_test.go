package jpmesh

import (
	"errors"
	"testing"
)

func TestParseCode_DispatchesByLength(t *testing.T) {
	cases := []struct {
		code  string
		level int
	}{
		{"5339", 1},
		{"533935", 2},
		{"53393599", 3},
		{"533935991", 4},
		{"5339359911", 5},
		{"53393599111", 6},
	}
	for _, tc := range cases {
		m, err := ParseCode(tc.code)
		if err != nil {
			t.Fatalf("ParseCode(%q): %v", tc.code, err)
		}
		if m.Level() != tc.level {
			t.Errorf("ParseCode(%q).Level() = %d, want %d", tc.code, m.Level(), tc.level)
		}
		if m.Code() != tc.code {
			t.Errorf("round-trip of %q returned %q", tc.code, m.Code())
		}
	}

	for _, code := range []string{"", "53393", "533935991112"} {
		_, err := ParseCode(code)
		if err == nil {
			t.Errorf("ParseCode(%q): expected error", code)
			continue
		}
		var ic *InvalidCodeError
		if !errors.As(err, &ic) {
			t.Errorf("ParseCode(%q): expected InvalidCodeError, got %T", code, err)
		}
	}
}

func TestFromCoordinate_AllLevels(t *testing.T) {
	c := mustCoordinate(t, 35.6585805, 139.7454329)
	lengths := map[int]int{1: 4, 2: 6, 3: 8, 4: 9, 5: 10, 6: 11}
	for level := 1; level <= 6; level++ {
		m, err := FromCoordinate(level, c)
		if err != nil {
			t.Fatalf("FromCoordinate(%d): %v", level, err)
		}
		if m.Level() != level {
			t.Errorf("level = %d, want %d", m.Level(), level)
		}
		if len(m.Code()) != lengths[level] {
			t.Errorf("level %d code %q has length %d, want %d",
				level, m.Code(), len(m.Code()), lengths[level])
		}
	}
	if _, err := FromCoordinate(0, c); err == nil {
		t.Error("FromCoordinate(0): expected error")
	}
	if _, err := FromCoordinate(7, c); err == nil {
		t.Error("FromCoordinate(7): expected error")
	}
}

// Half-open containment: the binned cell holds the coordinate on or above
// its south/west edge and strictly below its north/east edge.
func TestFromCoordinate_Containment(t *testing.T) {
	coords := []Coordinate{
		mustCoordinate(t, 35.6585805, 139.7454329),
		mustCoordinate(t, 43.0686, 141.3508),
		mustCoordinate(t, 26.2124, 127.6809),
		mustCoordinate(t, Southernmost, Westernmost),
		mustCoordinate(t, 35.0+20.0/60.0, 139.0), // exact level-1 cell anchor
	}
	for _, c := range coords {
		for level := 1; level <= 6; level++ {
			m, err := FromCoordinate(level, c)
			if err != nil {
				t.Fatalf("level %d (%v, %v): %v", level, c.Latitude(), c.Longitude(), err)
			}
			if c.Latitude() < m.South() || c.Latitude() >= m.North() {
				t.Errorf("level %d: lat %v outside [%v, %v)", level, c.Latitude(), m.South(), m.North())
			}
			if c.Longitude() < m.West() || c.Longitude() >= m.East() {
				t.Errorf("level %d: lon %v outside [%v, %v)", level, c.Longitude(), m.West(), m.East())
			}
		}
	}
}

// The cell height and width are level constants, independent of which
// digits were used to reach the cell.
func TestExtentConsistency(t *testing.T) {
	dims := map[int][2]float64{
		1: {Mesh1Height, Mesh1Width},
		2: {Mesh2Height, Mesh2Width},
		3: {Mesh3Height, Mesh3Width},
		4: {Mesh4Height, Mesh4Width},
		5: {Mesh5Height, Mesh5Width},
		6: {Mesh6Height, Mesh6Width},
	}
	codes := []string{
		"3022", "6854", "5339",
		"533935", "302200",
		"53393599", "68540000",
		"533935991", "302200004",
		"5339779933", "5330309011",
		"53393599111", "68540000144",
	}
	for _, code := range codes {
		m, err := ParseCode(code)
		if err != nil {
			t.Fatalf("ParseCode(%q): %v", code, err)
		}
		want := dims[m.Level()]
		if got := m.North() - m.South(); !almostEqual(got, want[0]) {
			t.Errorf("%s: height = %v, want %v", code, got, want[0])
		}
		if got := m.East() - m.West(); !almostEqual(got, want[1]) {
			t.Errorf("%s: width = %v, want %v", code, got, want[1])
		}
	}
}

func TestNeighborsOf(t *testing.T) {
	m, err := ParseCode("533935991")
	if err != nil {
		t.Fatal(err)
	}
	ns := NeighborsOf(m)
	want := NeighborSet{
		North:     "533935993",
		NorthEast: "533935994",
		East:      "533935992",
		SouthEast: "533935894",
		South:     "533935893",
		SouthWest: "533935884",
		West:      "533935982",
		NorthWest: "533935984",
	}
	if ns != want {
		t.Errorf("NeighborsOf = %+v, want %+v", ns, want)
	}
}

func TestNeighborsOf_TerritoryCorner(t *testing.T) {
	m, err := ParseCode("3022")
	if err != nil {
		t.Fatal(err)
	}
	ns := NeighborsOf(m)
	if ns.South != "" || ns.West != "" || ns.SouthWest != "" || ns.SouthEast != "" || ns.NorthWest != "" {
		t.Errorf("expected empty south/west directions at the corner, got %+v", ns)
	}
	if ns.North != "3122" || ns.East != "3023" || ns.NorthEast != "3123" {
		t.Errorf("unexpected interior directions: %+v", ns)
	}
}

func TestDirectionString(t *testing.T) {
	cases := map[Direction]string{
		DirectionNone:  "none",
		DirectionNorth: "north",
		DirectionEast:  "east",
		DirectionSouth: "south",
		DirectionWest:  "west",
	}
	for d, want := range cases {
		if d.String() != want {
			t.Errorf("%d.String() = %q, want %q", d, d.String(), want)
		}
	}
}
