package view

import (
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/model"
)

func newTestConsole(t *testing.T, width, height int) *Console {
	t.Helper()
	u, err := model.NewEmpty(width, height)
	if err != nil {
		t.Fatalf("NewEmpty: %v", err)
	}
	return newConsole(u, 0, false)
}

func TestCellFromCursor(t *testing.T) {
	tests := []struct {
		x, y int
		want model.Coord
		ok   bool
	}{
		{0, 0, model.Coord{Row: 0, Col: 0}, true},
		{4, 2, model.Coord{Row: 2, Col: 4}, true},
		{5, 2, model.Coord{}, false},
		{1, 3, model.Coord{}, false},
		{-1, 0, model.Coord{}, false},
	}
	for _, tt := range tests {
		got, ok := cellFromCursor(tt.x, tt.y, 5, 3)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("cellFromCursor(%d, %d) = %v, %v, expected %v, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRenderUniverse(t *testing.T) {
	c := newTestConsole(t, 4, 3)
	c.universe.SetCells(model.Coord{Row: 0, Col: 0}, model.Coord{Row: 2, Col: 3})

	if got, want := renderUniverse(c.universe, "#", ".", 10, 10), "#...\n....\n...#"; got != want {
		t.Fatalf("render = %q, expected %q", got, want)
	}
	// cropped to the view size
	if got, want := renderUniverse(c.universe, "#", ".", 2, 2), "#.\n.."; got != want {
		t.Fatalf("cropped render = %q, expected %q", got, want)
	}
}

func TestConsoleStepDetectsStagnation(t *testing.T) {
	c := newTestConsole(t, 6, 6)
	c.universe.Stamp(model.Block, 2, 2)

	c.step()
	if c.stagnant {
		t.Fatal("first generation reported stagnant")
	}
	c.step()
	if !c.stagnant {
		t.Fatal("block not reported stagnant")
	}
	if c.universe.Generation() != 2 {
		t.Fatalf("generation %d, expected 2", c.universe.Generation())
	}

	c.resetHistory()
	if c.stagnant || c.history.Len() != 0 {
		t.Fatal("resetHistory kept state")
	}
}

func TestConsoleDefaults(t *testing.T) {
	c := newTestConsole(t, 8, 6)
	if c.interval != defaultInterval {
		t.Fatalf("interval %v, expected %v", c.interval, defaultInterval)
	}
	if c.selected != (model.Coord{Row: 3, Col: 4}) {
		t.Fatalf("selected %v, expected the center", c.selected)
	}

	u, _ := model.NewEmpty(2, 2)
	if got := newConsole(u, time.Second, false).interval; got != time.Second {
		t.Fatalf("interval %v, expected 1s", got)
	}
}

func TestStatusLines(t *testing.T) {
	c := newTestConsole(t, 8, 6)
	c.universe.Stamp(model.Blinker, 1, 1)
	c.paused = true

	status := strings.Join(c.statusLines(), "\n")
	for _, want := range []string{"Size: 8 x 6", "Generation: 0", "Living: 3", "Mode: paused"} {
		if !strings.Contains(status, want) {
			t.Fatalf("status %q missing %q", status, want)
		}
	}

	help := c.helpLine()
	if !strings.Contains(help, "G: Glider") || !strings.Contains(help, "MOUSE: Toggle cell") {
		t.Fatalf("help line %q missing bindings", help)
	}
}
