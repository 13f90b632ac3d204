package model

import (
	"bytes"
	"testing"
)

func TestTerminalRendererDisplay(t *testing.T) {
	u, err := NewEmpty(3, 2)
	if err != nil {
		t.Fatalf("NewEmpty: %v", err)
	}
	u.SetCells(Coord{Row: 0, Col: 1}, Coord{Row: 1, Col: 0})

	var out bytes.Buffer
	if err := NewTerminalRenderer(&out, false).Display(u); err != nil {
		t.Fatalf("Display: %v", err)
	}
	want := "  ██  \n██    \n"
	if out.String() != want {
		t.Fatalf("Display wrote %q, expected %q", out.String(), want)
	}
}

func TestTerminalRendererColors(t *testing.T) {
	u, err := NewEmpty(1, 1)
	if err != nil {
		t.Fatalf("NewEmpty: %v", err)
	}
	u.ToggleCell(0, 0)

	var out bytes.Buffer
	if err := NewTerminalRenderer(&out, true).Display(u); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("\x1b[")) {
		t.Fatalf("expected ANSI escape in %q", out.String())
	}
}

func TestTerminalRendererStatus(t *testing.T) {
	var out bytes.Buffer
	NewTerminalRenderer(&out, false).Status("Gen", "%d", 12)
	if out.String() != "Gen: 12\n" {
		t.Fatalf("Status wrote %q", out.String())
	}
}
