package jpmesh

// quadLevel carries the code arithmetic shared by the binary-quadrant levels
// (4, 5 and 6). The code extends the parent code with a single digit 1..4
// selecting one quarter of the parent: 1=south-west, 2=south-east,
// 3=north-west, 4=north-east (digit = 2*latBit + 1 + lonBit).
//
// Carry rule: a move that stays inside the parent flips the digit's latitude
// bit (+/-2) or longitude bit (+/-1); a move that leaves the parent ascends
// to the parent's neighbor on that side and re-enters at the opposite edge
// with the same bit flipped back. The three levels differ only in which
// ancestor performs the carry.
type quadLevel[P Cell[P]] struct {
	length    int
	height    float64
	width     float64
	parse     func(string) (P, error)
	fromCoord func(Coordinate) (P, error)
}

func (l quadLevel[P]) validate(code string) error {
	if len(code) != l.length {
		return invalidCode(code, "code must be %d digits", l.length)
	}
	if _, err := l.parse(code[:l.length-1]); err != nil {
		return err
	}
	if d := l.digit(code); d < 1 || d > 4 {
		return invalidCode(code, "quadrant digit must be 1..4")
	}
	return nil
}

// parent reparses the prefix, which is valid for any constructed code.
func (l quadLevel[P]) parent(code string) P {
	p, _ := l.parse(code[:l.length-1])
	return p
}

func (l quadLevel[P]) digit(code string) int {
	return int(code[l.length-1] - '0')
}

func (l quadLevel[P]) withDigit(prefix string, digit int) string {
	return prefix + string(byte('0'+digit))
}

func (l quadLevel[P]) south(code string) float64 {
	south := l.parent(code).South()
	if d := l.digit(code); d >= 3 {
		return south + l.height
	}
	return south
}

func (l quadLevel[P]) west(code string) float64 {
	west := l.parent(code).West()
	if d := l.digit(code); d == 2 || d == 4 {
		return west + l.width
	}
	return west
}

func (l quadLevel[P]) codeForCoordinate(c Coordinate) (string, error) {
	p, err := l.fromCoord(c)
	if err != nil {
		return "", err
	}
	latBit, lonBit := 0, 0
	if c.lat >= p.South()+l.height {
		latBit = 1
	}
	if c.lon >= p.West()+l.width {
		lonBit = 1
	}
	return l.withDigit(p.Code(), 2*latBit+1+lonBit), nil
}

func (l quadLevel[P]) northCode(code string) (string, error) {
	d := l.digit(code)
	if d <= 2 {
		return l.withDigit(code[:l.length-1], d+2), nil
	}
	p, err := l.parent(code).NorthMesh()
	if err != nil {
		return "", err
	}
	return l.withDigit(p.Code(), d-2), nil
}

func (l quadLevel[P]) eastCode(code string) (string, error) {
	d := l.digit(code)
	if d == 1 || d == 3 {
		return l.withDigit(code[:l.length-1], d+1), nil
	}
	p, err := l.parent(code).EastMesh()
	if err != nil {
		return "", err
	}
	return l.withDigit(p.Code(), d-1), nil
}

func (l quadLevel[P]) southCode(code string) (string, error) {
	d := l.digit(code)
	if d >= 3 {
		return l.withDigit(code[:l.length-1], d-2), nil
	}
	p, err := l.parent(code).SouthMesh()
	if err != nil {
		return "", err
	}
	return l.withDigit(p.Code(), d+2), nil
}

func (l quadLevel[P]) westCode(code string) (string, error) {
	d := l.digit(code)
	if d == 2 || d == 4 {
		return l.withDigit(code[:l.length-1], d-1), nil
	}
	p, err := l.parent(code).WestMesh()
	if err != nil {
		return "", err
	}
	return l.withDigit(p.Code(), d+1), nil
}
