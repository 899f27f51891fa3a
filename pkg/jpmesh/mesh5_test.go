package jpmesh

import "testing"

func TestNewMesh5(t *testing.T) {
	for _, code := range []string{"5339359911", "5339359924", "5339359932"} {
		m, err := NewMesh5(code)
		if err != nil {
			t.Fatalf("NewMesh5(%q): %v", code, err)
		}
		if m.Code() != code {
			t.Errorf("Code() = %q, want %q", m.Code(), code)
		}
	}
	for _, code := range []string{"5339359910", "5339359915", "533935991", "53393599111"} {
		if _, err := NewMesh5(code); err == nil {
			t.Errorf("NewMesh5(%q): expected error", code)
		}
	}
}

func TestMesh5_Extent(t *testing.T) {
	parent, err := NewMesh4("533935991")
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		code        string
		south, west float64
	}{
		{"5339359911", parent.South(), parent.West()},
		{"5339359912", parent.South(), parent.West() + Mesh5Width},
		{"5339359913", parent.South() + Mesh5Height, parent.West()},
		{"5339359914", parent.South() + Mesh5Height, parent.West() + Mesh5Width},
	}
	for _, tc := range cases {
		m, err := NewMesh5(tc.code)
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(m.South(), tc.south) || !almostEqual(m.West(), tc.west) {
			t.Errorf("%s: anchor = (%v, %v), want (%v, %v)",
				tc.code, m.South(), m.West(), tc.south, tc.west)
		}
	}
}

func TestMesh5FromCoordinate_RoundTrip(t *testing.T) {
	m, err := Mesh5FromCoordinate(mustCoordinate(t, 35.6585805, 139.7454329))
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Mesh3().Code(); got != "53393599" {
		t.Errorf("Mesh3().Code() = %q, want %q", got, "53393599")
	}
	back, err := Mesh5FromCoordinate(m.Center())
	if err != nil {
		t.Fatal(err)
	}
	if back.Code() != m.Code() {
		t.Errorf("center of %q binned to %q", m.Code(), back.Code())
	}
}

// Quadrant carries that cross several ancestor levels at once: each of these
// starts in a corner cell whose move has to ascend all the way to level 1.
func TestMesh5_NeighborsWithDeepCarry(t *testing.T) {
	cases := []struct {
		code string
		move func(Mesh5) (Mesh5, error)
		want string
	}{
		{"5339779933", Mesh5.NorthMesh, "5439070911"},
		{"5339779944", Mesh5.EastMesh, "5340709033"},
		{"5039000011", Mesh5.SouthMesh, "4939709033"},
		{"5330309011", Mesh5.WestMesh, "5329379922"},
	}
	for _, tc := range cases {
		m, err := NewMesh5(tc.code)
		if err != nil {
			t.Fatal(err)
		}
		got, err := tc.move(m)
		if err != nil {
			t.Errorf("%s: %v", tc.code, err)
			continue
		}
		if got.Code() != tc.want {
			t.Errorf("%s: moved to %q, want %q", tc.code, got.Code(), tc.want)
		}
	}
}

func TestMesh5_NeighborSymmetry(t *testing.T) {
	codes := []string{"5339359911", "5339779933", "5330309011"}
	for _, code := range codes {
		m, err := NewMesh5(code)
		if err != nil {
			t.Fatal(err)
		}
		n, err := m.NorthMesh()
		if err != nil {
			t.Fatalf("%s: NorthMesh: %v", code, err)
		}
		back, err := n.SouthMesh()
		if err != nil {
			t.Fatalf("%s: SouthMesh: %v", n.Code(), err)
		}
		if back.Code() != code {
			t.Errorf("north then south of %q = %q", code, back.Code())
		}
	}
}
