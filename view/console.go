// Package view provides an interactive terminal front end for a model.Universe.
package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
)

const (
	universeView = "universe"
	statusView   = "status"
	helpView     = "help"

	statusWidth     = 30
	defaultInterval = 100 * time.Millisecond
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func(g *gocui.Gui, v *gocui.View) error
	view    string
}

// Console runs a universe inside a gocui screen.
// Every universe access happens on the gocui main loop goroutine.
type Console struct {
	gui      *gocui.Gui
	universe *model.Universe
	history  *model.History
	interval time.Duration
	keys     []keyBinding

	au         aurora.Aurora
	liveFiller string
	deadFiller string

	paused   bool
	stagnant bool
	selected model.Coord
}

// NewConsole creates the terminal UI. The caller must not touch u until Run returns.
func NewConsole(u *model.Universe, interval time.Duration, colors bool) (*Console, error) {
	c := newConsole(u, interval, colors)

	gui, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "[NewConsole] failed to create gui")
	}
	gui.Mouse = true
	gui.SetManagerFunc(c.layout)
	c.gui = gui

	for _, kb := range c.keys {
		if err := gui.SetKeybinding(kb.view, kb.key, gocui.ModNone, kb.handler); err != nil {
			gui.Close()
			return nil, errors.Wrapf(err, "[NewConsole] failed to bind %s", kb.name)
		}
	}
	return c, nil
}

func newConsole(u *model.Universe, interval time.Duration, colors bool) *Console {
	if interval <= 0 {
		interval = defaultInterval
	}
	au := aurora.NewAurora(colors)
	c := &Console{
		universe:   u,
		history:    model.NewHistory(model.DefaultHistoryDepth),
		interval:   interval,
		au:         au,
		liveFiller: au.Green("█").String(),
		deadFiller: "░",
		selected:   model.Coord{Row: u.Height() / 2, Col: u.Width() / 2},
	}
	c.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause", c.cmdPause, ""},
		{'n', "N", "Step", c.cmdStep, ""},
		{'g', "G", "Glider", c.cmdGlider, ""},
		{'p', "P", "Pulsar", c.cmdPulsar, ""},
		{'r', "R", "Randomize", c.cmdReset, ""},
		{'c', "C", "Clear", c.cmdClear, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", c.cmdClick, universeView},
	}
	return c
}

// Run starts the ticker and the gui main loop, returning when the user quits or ctx is done
func (c *Console) Run(ctx context.Context) error {
	defer c.gui.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer cancel()
		if err := c.gui.MainLoop(); err != nil && err != gocui.ErrQuit {
			return errors.Wrap(err, "[Run] gui main loop failed")
		}
		return nil
	})

	eg.Go(func() error {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				c.gui.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
				return nil
			case <-ticker.C:
				c.gui.Update(c.onTick)
			}
		}
	})

	return eg.Wait()
}

func (c *Console) onTick(g *gocui.Gui) error {
	if c.paused {
		return nil
	}
	c.step()
	return c.refresh(g)
}

// step advances the universe and records whether it stopped evolving
func (c *Console) step() {
	c.universe.Tick()
	c.stagnant = c.history.Observe(c.universe.Hash())
}

// resetHistory forgets cycle detection after the user edits the universe
func (c *Console) resetHistory() {
	c.history.Clear()
	c.stagnant = false
}

func (c *Console) refresh(g *gocui.Gui) error {
	if v, err := g.View(universeView); err == nil {
		v.Clear()
		maxW, maxH := v.Size()
		fmt.Fprint(v, renderUniverse(c.universe, c.liveFiller, c.deadFiller, maxW, maxH))
	}
	if v, err := g.View(statusView); err == nil {
		v.Clear()
		for _, line := range c.statusLines() {
			fmt.Fprintln(v, line)
		}
	}
	return nil
}

func (c *Console) statusLines() []string {
	mode := c.au.Cyan("running").String()
	switch {
	case c.paused:
		mode = c.au.Blue("paused").String()
	case c.stagnant:
		mode = c.au.Red("stagnant").String()
	}
	return []string{
		c.prop("Size", "%d x %d", c.universe.Width(), c.universe.Height()),
		c.prop("Generation", "%d", c.universe.Generation()),
		c.prop("Living", "%d", c.universe.CountLiving()),
		c.prop("Interval", "%v", c.interval),
		c.prop("Selected", "%d,%d", c.selected.Row, c.selected.Col),
		c.prop("Mode", "%s", mode),
	}
}

func (c *Console) prop(name string, format string, values ...any) string {
	return " " + c.au.Green(name).String() + ": " + fmt.Sprintf(format, values...)
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(universeView, 0, 0, maxX-statusWidth-2, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Universe"
		v.Frame = true
		if _, err := g.SetCurrentView(universeView); err != nil {
			return err
		}
	}

	if v, err := g.SetView(statusView, maxX-statusWidth-1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView(helpView, -1, maxY-3, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		fmt.Fprintln(v, c.helpLine())
	}

	return c.refresh(g)
}

func (c *Console) helpLine() string {
	var b strings.Builder
	b.WriteString("KEYS: ")
	for i, k := range c.keys {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.au.Green(k.name).String())
		b.WriteString(": ")
		b.WriteString(k.descr)
	}
	return b.String()
}

func (c *Console) cmdQuit(_ *gocui.Gui, _ *gocui.View) error {
	return gocui.ErrQuit
}

func (c *Console) cmdPause(g *gocui.Gui, _ *gocui.View) error {
	c.paused = !c.paused
	return c.refresh(g)
}

func (c *Console) cmdStep(g *gocui.Gui, _ *gocui.View) error {
	c.step()
	return c.refresh(g)
}

func (c *Console) cmdGlider(g *gocui.Gui, _ *gocui.View) error {
	c.universe.PutGlider(c.selected.Row, c.selected.Col)
	c.resetHistory()
	return c.refresh(g)
}

func (c *Console) cmdPulsar(g *gocui.Gui, _ *gocui.View) error {
	c.universe.PutPulsar(c.selected.Row, c.selected.Col)
	c.resetHistory()
	return c.refresh(g)
}

func (c *Console) cmdReset(g *gocui.Gui, _ *gocui.View) error {
	c.universe.Reset()
	c.resetHistory()
	return c.refresh(g)
}

func (c *Console) cmdClear(g *gocui.Gui, _ *gocui.View) error {
	c.universe.EmptyCells()
	c.resetHistory()
	return c.refresh(g)
}

func (c *Console) cmdClick(g *gocui.Gui, v *gocui.View) error {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	cell, ok := cellFromCursor(ox+cx, oy+cy, c.universe.Width(), c.universe.Height())
	if !ok {
		return nil
	}
	c.selected = cell
	c.universe.ToggleCell(cell.Row, cell.Col)
	c.resetHistory()
	return c.refresh(g)
}

// cellFromCursor maps a view position onto a cell, one column per cell
func cellFromCursor(x, y, width, height int) (model.Coord, bool) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return model.Coord{}, false
	}
	return model.Coord{Row: y, Col: x}, true
}

// renderUniverse draws at most maxW x maxH cells, one glyph each
func renderUniverse(u *model.Universe, live, dead string, maxW, maxH int) string {
	var (
		b    strings.Builder
		rows = min(u.Height(), maxH)
		cols = min(u.Width(), maxW)
	)
	for row := range rows {
		// line feed char
		if row != 0 {
			b.WriteByte('\n')
		}
		for col := range cols {
			if u.Alive(row, col) {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}
