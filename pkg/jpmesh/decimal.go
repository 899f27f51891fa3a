package jpmesh

import "math"

// decimalLevel carries the code arithmetic shared by the decimally
// subdivided levels (2 and 3). The code extends the parent code with a row
// digit and a column digit counting cells from the parent's south-west
// corner; digitMax is 7 for an 8x8 split and 9 for a 10x10 split.
//
// Carry rule: stepping a digit past digitMax resets it to 0 and moves to the
// parent's neighbor on that side; stepping below 0 mirrors this with
// digitMax. The move fails only when the parent itself has no neighbor
// there, which is the edge of the covered territory.
type decimalLevel[P Cell[P]] struct {
	length    int
	digitMax  int
	height    float64
	width     float64
	parse     func(string) (P, error)
	fromCoord func(Coordinate) (P, error)
}

func (l decimalLevel[P]) validate(code string) error {
	if len(code) != l.length {
		return invalidCode(code, "code must be %d digits", l.length)
	}
	if _, err := l.parse(code[:l.length-2]); err != nil {
		return err
	}
	row, col := l.digits(code)
	if row < 0 || row > l.digitMax {
		return invalidCode(code, "row digit outside 0..%d", l.digitMax)
	}
	if col < 0 || col > l.digitMax {
		return invalidCode(code, "column digit outside 0..%d", l.digitMax)
	}
	return nil
}

// parent reparses the prefix. The code was validated at construction, so the
// prefix is a valid parent code.
func (l decimalLevel[P]) parent(code string) P {
	p, _ := l.parse(code[:l.length-2])
	return p
}

func (l decimalLevel[P]) digits(code string) (row, col int) {
	return int(code[l.length-2] - '0'), int(code[l.length-1] - '0')
}

func (l decimalLevel[P]) withDigits(prefix string, row, col int) string {
	return prefix + string(byte('0'+row)) + string(byte('0'+col))
}

func (l decimalLevel[P]) south(code string) float64 {
	row, _ := l.digits(code)
	return l.parent(code).South() + l.height*float64(row)
}

func (l decimalLevel[P]) west(code string) float64 {
	_, col := l.digits(code)
	return l.parent(code).West() + l.width*float64(col)
}

func (l decimalLevel[P]) codeForCoordinate(c Coordinate) (string, error) {
	p, err := l.fromCoord(c)
	if err != nil {
		return "", err
	}
	row := int(math.Floor((c.lat - p.South()) / l.height))
	col := int(math.Floor((c.lon - p.West()) / l.width))
	return l.withDigits(p.Code(), row, col), nil
}

func (l decimalLevel[P]) northCode(code string) (string, error) {
	row, col := l.digits(code)
	if row == l.digitMax {
		p, err := l.parent(code).NorthMesh()
		if err != nil {
			return "", err
		}
		return l.withDigits(p.Code(), 0, col), nil
	}
	return l.withDigits(code[:l.length-2], row+1, col), nil
}

func (l decimalLevel[P]) eastCode(code string) (string, error) {
	row, col := l.digits(code)
	if col == l.digitMax {
		p, err := l.parent(code).EastMesh()
		if err != nil {
			return "", err
		}
		return l.withDigits(p.Code(), row, 0), nil
	}
	return l.withDigits(code[:l.length-2], row, col+1), nil
}

func (l decimalLevel[P]) southCode(code string) (string, error) {
	row, col := l.digits(code)
	if row == 0 {
		p, err := l.parent(code).SouthMesh()
		if err != nil {
			return "", err
		}
		return l.withDigits(p.Code(), l.digitMax, col), nil
	}
	return l.withDigits(code[:l.length-2], row-1, col), nil
}

func (l decimalLevel[P]) westCode(code string) (string, error) {
	row, col := l.digits(code)
	if col == 0 {
		p, err := l.parent(code).WestMesh()
		if err != nil {
			return "", err
		}
		return l.withDigits(p.Code(), row, l.digitMax), nil
	}
	return l.withDigits(code[:l.length-2], row, col-1), nil
}
