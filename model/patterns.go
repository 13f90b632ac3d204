package model

// Pattern is a rectangular mask of live cells that can be stamped into a Universe
type Pattern struct {
	Name string
	// Rows holds one string per row, 'X' marks a live cell and any other rune a dead one
	Rows []string
	// Anchor is the cell of the mask placed on the coordinate passed to Stamp
	Anchor Coord
}

var (
	// Glider travels one cell down and right every 4 generations
	Glider = Pattern{
		Name: "glider",
		Rows: []string{
			".X.",
			"..X",
			"XXX",
		},
		Anchor: Coord{Row: 1, Col: 1},
	}

	// Pulsar is a period 3 oscillator
	Pulsar = Pattern{
		Name: "pulsar",
		Rows: []string{
			"..XXX...XXX..",
			".............",
			"X....X.X....X",
			"X....X.X....X",
			"X....X.X....X",
			"..XXX...XXX..",
			".............",
			"..XXX...XXX..",
			"X....X.X....X",
			"X....X.X....X",
			"X....X.X....X",
			".............",
			"..XXX...XXX..",
		},
		Anchor: Coord{Row: 6, Col: 6},
	}

	// Blinker is a period 2 oscillator
	Blinker = Pattern{
		Name:   "blinker",
		Rows:   []string{"XXX"},
		Anchor: Coord{Row: 0, Col: 1},
	}

	// Block is the smallest still life
	Block = Pattern{
		Name: "block",
		Rows: []string{
			"XX",
			"XX",
		},
	}
)

// Cells returns the live cells of the pattern as offsets from its anchor
func (p Pattern) Cells() []Coord {
	var cells []Coord
	for r, line := range p.Rows {
		for c, ch := range []byte(line) {
			if ch == 'X' {
				cells = append(cells, Coord{Row: r - p.Anchor.Row, Col: c - p.Anchor.Col})
			}
		}
	}
	return cells
}

// Stamp ORs the pattern into the universe with its anchor on (row, col).
// Cells the pattern leaves dead are not modified.
func (u *Universe) Stamp(p Pattern, row, col int) {
	if u.isEmpty() {
		return
	}
	for _, c := range p.Cells() {
		u.cells.Set(u.index(row+c.Row, col+c.Col), true)
	}
}

// PutGlider stamps a glider centered on (row, col)
func (u *Universe) PutGlider(row, col int) {
	u.logf("putting glider on row %d col %d", row, col)
	u.Stamp(Glider, row, col)
}

// PutPulsar stamps a pulsar whose top left corner is (row-6, col-6)
func (u *Universe) PutPulsar(row, col int) {
	u.logf("putting pulsar on row %d col %d", row, col)
	u.Stamp(Pulsar, row, col)
}
