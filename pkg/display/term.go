package display

import (
	"fmt"
	"log"
	"os"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// Term drives a real ANSI terminal on stdout. It keeps only the state the
// core needs: geometry, raw-mode bookkeeping and the status line.
type Term struct {
	rows, cols int
	savedState *term.State
	out        *os.File
	in         *os.File
	screen     *Screen
}

// NewTerm creates a Term bound to the process stdio and queries the initial
// size.
func NewTerm() *Term {
	t := &Term{out: os.Stdout, in: os.Stdin, rows: 24, cols: 80}
	t.Resize()
	t.screen = NewScreen(t.cols, t.rows)
	return t
}

// Paint renders the viewport rows through the screen image; only rows that
// actually changed reach the terminal.
func (t *Term) Paint(rows []string) {
	for y, text := range rows {
		t.screen.SetRow(y, text, 0)
	}
	for y := len(rows); y < t.rows-1; y++ {
		t.screen.SetRow(y, "", 0)
	}
	t.screen.Flush(t.out)
}

func (t *Term) Lines() int   { return t.rows }
func (t *Term) Columns() int { return t.cols }

// Resize re-reads the terminal geometry. The pty size is authoritative;
// term.GetSize is the fallback for plain ttys.
func (t *Term) Resize() {
	if ws, err := pty.GetsizeFull(t.out); err == nil && ws.Rows > 0 && ws.Cols > 0 {
		t.rows, t.cols = int(ws.Rows), int(ws.Cols)
	} else if cols, rows, err := term.GetSize(int(t.out.Fd())); err == nil && rows > 0 && cols > 0 {
		t.rows, t.cols = rows, cols
	}
	if t.screen != nil {
		t.screen.Resize(t.cols, t.rows)
	}
}

// Message writes s on the status line (the last terminal row).
func (t *Term) Message(s string) {
	fmt.Fprintf(t.out, "\x1b[%d;1H\x1b[K%s", t.rows, s)
}

// Error writes s on the status line in reverse video and reports that it
// printed.
func (t *Term) Error(s string) bool {
	if s == "" {
		return false
	}
	fmt.Fprintf(t.out, "\x1b[%d;1H\x1b[K\x1b[7m%s\x1b[0m", t.rows, s)
	return true
}

func (t *Term) UpdateLine(y int) {
	// The row is repainted by the next refresh; clearing it here avoids
	// stale tails after deletions.
	fmt.Fprintf(t.out, "\x1b[%d;1H\x1b[K", y+1)
}

func (t *Term) ScrollWindow(y, n int) {
	if n > 0 {
		fmt.Fprintf(t.out, "\x1b[%d;%dr\x1b[%d;1H\x1b[%dL\x1b[r", y+1, t.rows-1, y+1, n)
	} else if n < 0 {
		fmt.Fprintf(t.out, "\x1b[%d;%dr\x1b[%d;1H\x1b[%dM\x1b[r", y+1, t.rows-1, y+1, -n)
	}
}

func (t *Term) ResetWindow() {
	fmt.Fprint(t.out, "\x1b[2J\x1b[H")
	if t.screen != nil {
		t.screen.Invalidate()
	}
}

func (t *Term) RefreshWindow() {}

func (t *Term) ClearScreen() {
	fmt.Fprint(t.out, "\x1b[2J\x1b[H")
	if t.screen != nil {
		t.screen.Invalidate()
	}
}

func (t *Term) DelayUpdate() {}

func (t *Term) Bell() { fmt.Fprint(t.out, "\a") }

func (t *Term) Flash() { fmt.Fprint(t.out, "\x1b[?5h\x1b[?5l") }

// EnterInteractive puts the terminal into raw mode.
func (t *Term) EnterInteractive() error {
	st, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	t.savedState = st
	return nil
}

// LeaveInteractive restores the terminal state saved by EnterInteractive.
func (t *Term) LeaveInteractive() error {
	if t.savedState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.savedState); err != nil {
		log.Printf("[WARN] Failed to restore terminal state: %v", err)
		return err
	}
	t.savedState = nil
	return nil
}
