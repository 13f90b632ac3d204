package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/logrusorgru/aurora"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer draws a universe two columns per cell
type TerminalRenderer struct {
	out io.Writer
	au  aurora.Aurora
}

// NewTerminalRenderer creates a renderer writing to out, colouring live cells when colors is set
func NewTerminalRenderer(out io.Writer, colors bool) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{out: out, au: aurora.NewAurora(colors)}
}

// Display renders the universe to the output
func (r *TerminalRenderer) Display(u *Universe) error {
	var (
		w     = bufio.NewWriter(r.out)
		alive = r.au.Green(gridPosBlock).String()
	)
	for row := range u.Height() {
		for col := range u.Width() {
			if u.Alive(row, col) {
				w.WriteString(alive)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Status prints a labelled status value
func (r *TerminalRenderer) Status(label string, format string, args ...any) {
	fmt.Fprintf(r.out, "%s: %s\n", r.au.Cyan(label).String(), fmt.Sprintf(format, args...))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out, "Error clearing terminal:", err)
	}
}
