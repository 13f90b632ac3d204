package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	// DefaultDensity is the probability that a cell starts alive after New or Reset
	DefaultDensity = 0.3

	cellAlive = "◻"
	cellDead  = "◼"
)

// ErrInvalidDimensions is returned when a universe cannot be allocated for the requested size
var ErrInvalidDimensions = errors.New("invalid universe dimensions")

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Logger receives diagnostic messages from mutating operations. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// Coord addresses a single cell
type Coord struct {
	Row int
	Col int
}

// Option configures a Universe at construction time
type Option func(*Universe)

// WithRandom sets the source used by New and Reset
func WithRandom(src RandomSource) Option {
	return func(u *Universe) {
		if src != nil {
			u.random = src
		}
	}
}

// WithSeed seeds a deterministic PCG source for New and Reset
func WithSeed(seed int64) Option {
	return WithRandom(rand.New(rand.NewPCG(uint64(seed), 0)))
}

// WithDensity overrides DefaultDensity
func WithDensity(density float64) Option {
	return func(u *Universe) {
		u.density = min(max(density, 0), 1)
	}
}

// WithLogger sets the sink for diagnostic messages
func WithLogger(logger Logger) Option {
	return func(u *Universe) {
		u.logger = logger
	}
}

// globalRandom draws from the math/rand/v2 top-level generator
type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }

/*
Universe is a toroidal Game of Life grid.

Cells are packed one bit each in row-major order: the cell at (row, col) is bit row*width+col.
Coordinates passed to any method wrap around both axes, so (-1, -1) is the bottom right cell.
A Universe is not safe for concurrent use.
*/
type Universe struct {
	width      int
	height     int
	generation int

	cells *bitSet
	next  *bitSet

	density float64
	random  RandomSource
	logger  Logger
}

// New creates a universe with every cell alive with probability DefaultDensity
func New(width, height int, opts ...Option) (*Universe, error) {
	u, err := NewEmpty(width, height, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "[New] failed to create %dx%d universe", width, height)
	}
	u.randomize()
	return u, nil
}

// NewEmpty creates a universe with every cell dead
func NewEmpty(width, height int, opts ...Option) (*Universe, error) {
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewEmpty] negative size %dx%d", width, height)
	}
	if width != 0 && height > math.MaxInt/width {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewEmpty] size %dx%d overflows", width, height)
	}

	u := &Universe{
		width:   width,
		height:  height,
		cells:   newBitSet(width * height),
		next:    newBitSet(width * height),
		density: DefaultDensity,
		random:  globalRandom{},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// Width returns the number of columns
func (u *Universe) Width() int {
	return u.width
}

// Height returns the number of rows
func (u *Universe) Height() int {
	return u.height
}

// Generation returns the number of ticks since construction or the last Reset
func (u *Universe) Generation() int {
	return u.generation
}

// Cells exposes the packed cell words without copying. Bit i%32 of word i/32 holds cell i.
// The slice is only valid until the next mutating call and must not be written to.
func (u *Universe) Cells() []uint32 {
	return u.cells.Words()
}

// Alive reports whether the cell at (row, col) is alive
func (u *Universe) Alive(row, col int) bool {
	if u.isEmpty() {
		return false
	}
	return u.cells.Get(u.index(row, col))
}

// CountLiving returns the number of living cells
func (u *Universe) CountLiving() int {
	return u.cells.Count()
}

// Hash returns an MD5 digest of the current generation
func (u *Universe) Hash() string {
	h := md5.New()
	buf := make([]byte, 4)
	for _, w := range u.cells.Words() {
		binary.LittleEndian.PutUint32(buf, w)
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Reset re-randomizes every cell and restarts the generation count
func (u *Universe) Reset() {
	u.randomize()
	u.generation = 0
}

// ToggleCell flips the cell at (row, col)
func (u *Universe) ToggleCell(row, col int) {
	u.logf("toggling cell on row %d col %d", row, col)
	if u.isEmpty() {
		return
	}
	u.cells.Toggle(u.index(row, col))
}

// SetCells marks every listed cell alive, leaving the others untouched
func (u *Universe) SetCells(cells ...Coord) {
	if u.isEmpty() {
		return
	}
	for _, c := range cells {
		u.cells.Set(u.index(c.Row, c.Col), true)
	}
}

// EmptyCells kills every cell
func (u *Universe) EmptyCells() {
	u.cells.Clear()
}

// Tick advances the universe by one generation
func (u *Universe) Tick() {
	if u.isEmpty() {
		return
	}

	u.next.CopyFrom(u.cells)
	for row := range u.height {
		for col := range u.width {
			idx := row*u.width + col
			alive := rules.ApplyConwayRules(u.liveNeighborCount(row, col), u.cells.Get(idx))
			u.next.Set(idx, alive)
		}
	}

	u.cells, u.next = u.next, u.cells
	u.generation++
}

// Render returns one line per row, each preceded by a line break
func (u *Universe) Render() string {
	if u.isEmpty() {
		return ""
	}

	var b strings.Builder
	b.Grow(u.width*u.height*len(cellAlive) + u.height)
	for i := range u.cells.Len() {
		if i%u.width == 0 {
			b.WriteByte('\n')
		}
		if u.cells.Get(i) {
			b.WriteString(cellAlive)
		} else {
			b.WriteString(cellDead)
		}
	}
	return b.String()
}

// String implements fmt.Stringer
func (u *Universe) String() string {
	return u.Render()
}

// liveNeighborCount counts the living cells among the 8 toroidal neighbors of (row, col)
func (u *Universe) liveNeighborCount(row, col int) (count int) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			neighbor := ((row+dr+u.height)%u.height)*u.width + (col+dc+u.width)%u.width
			if u.cells.Get(neighbor) {
				count++
			}
		}
	}
	return
}

// index maps (row, col) onto its bit, wrapping both coordinates
func (u *Universe) index(row, col int) int {
	row = (row%u.height + u.height) % u.height
	col = (col%u.width + u.width) % u.width
	return row*u.width + col
}

func (u *Universe) randomize() {
	for i := range u.cells.Len() {
		u.cells.Set(i, u.random.Float64() < u.density)
	}
}

func (u *Universe) isEmpty() bool {
	return u.width == 0 || u.height == 0
}

func (u *Universe) logf(format string, v ...any) {
	if u.logger != nil {
		u.logger.Printf(format, v...)
	}
}
