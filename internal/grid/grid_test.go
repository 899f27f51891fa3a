package grid

import (
	"errors"
	"testing"
)

func TestScanLevel1(t *testing.T) {
	bb := BBox{West: 139.0, South: 35.0, East: 141.0, North: 36.0}
	cells, err := Scan(1, bb, 0)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := []string{"5239", "5240", "5339", "5340"}
	if len(cells) != len(want) {
		t.Fatalf("got %d cells, want %d", len(cells), len(want))
	}
	for i, w := range want {
		if cells[i].Code() != w {
			t.Errorf("cells[%d] = %s, want %s", i, cells[i].Code(), w)
		}
	}
}

func TestScanLevel3(t *testing.T) {
	bb := BBox{West: 139.7, South: 35.65, East: 139.775, North: 35.675}
	cells, err := Scan(3, bb, 0)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	// 6 cells per row, 3 rows
	if len(cells) != 18 {
		t.Fatalf("got %d cells, want 18", len(cells))
	}
	if cells[0].Code() != "53393586" {
		t.Fatalf("first cell = %s, want 53393586", cells[0].Code())
	}
	found := false
	for _, c := range cells {
		if c.Code() == "53393599" {
			found = true
		}
	}
	if !found {
		t.Fatalf("scan missed 53393599")
	}
}

func TestScanCellBudget(t *testing.T) {
	bb := BBox{West: 139.0, South: 35.0, East: 141.0, North: 36.0}
	if _, err := Scan(1, bb, 2); !errors.Is(err, ErrTooManyCells) {
		t.Fatalf("err = %v, want ErrTooManyCells", err)
	}
}

func TestScanClipsToTerritory(t *testing.T) {
	// straddles the western edge; only the inside part should be scanned
	bb := BBox{West: 121.0, South: 24.0, East: 123.0, North: 24.5}
	cells, err := Scan(1, bb, 0)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	for _, c := range cells {
		if c.West() < 122.0 {
			t.Fatalf("cell %s starts west of the territory", c.Code())
		}
	}
	if len(cells) == 0 {
		t.Fatalf("expected cells inside the territory")
	}

	// fully outside is empty, not an error
	outside, err := Scan(3, BBox{West: 0, South: 0, East: 10, North: 10}, 0)
	if err != nil || outside != nil {
		t.Fatalf("outside scan = %v, %v; want nil, nil", outside, err)
	}
}

func TestScanRejectsBadInput(t *testing.T) {
	if _, err := Scan(1, BBox{West: 140, South: 35, East: 139, North: 36}, 0); err == nil {
		t.Fatalf("expected error for inverted bbox")
	}
	if _, err := Scan(1, BBox{West: 139, South: 35, East: 140, North: 95}, 0); err == nil {
		t.Fatalf("expected error for latitude out of range")
	}
	if _, err := Scan(7, BBox{West: 139, South: 35, East: 140, North: 36}, 0); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
