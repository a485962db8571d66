package main

import (
	"bufio"
	"os"

	"github.com/amantus-ai/vibedit/pkg/display"
	"github.com/amantus-ai/vibedit/pkg/editor"
)

// defaultBindings is the minimal built-in keymap: control keys to actions.
// Other bytes from 0x20 up self-insert; unbound control bytes are ignored.
var defaultBindings = map[byte]editor.Action{
	0x01: editor.ActMoveSOL,     // ^A
	0x02: editor.ActMoveLeft,    // ^B
	0x04: editor.ActDeleteChar,  // ^D
	0x05: editor.ActMoveEOL,     // ^E
	0x06: editor.ActMoveRight,   // ^F
	0x08: editor.ActBackspace,   // ^H
	0x09: editor.ActInsertTab,   // ^I
	0x0B: editor.ActDeleteEOL,   // ^K
	0x0C: editor.ActRefresh,     // ^L
	0x0D: editor.ActInsertLine,  // ^M
	0x0E: editor.ActLineDown,    // ^N
	0x10: editor.ActLineUp,      // ^P
	0x11: editor.ActQuit,        // ^Q
	0x12: editor.ActRedo,        // ^R
	0x13: editor.ActSave,        // ^S
	0x15: editor.ActUndo,        // ^U
	0x16: editor.ActNextPage,    // ^V
	0x18: editor.ActExit,        // ^X
	0x19: editor.ActPrevPage,    // ^Y
	0x7F: editor.ActBackspace,   // DEL
}

// mainLoop reads keys, dispatches actions and repaints the viewport until
// an exit action terminates the process.
func mainLoop(e *editor.Editor, d *display.Term) error {
	in := bufio.NewReader(os.Stdin)
	render(e, d)
	for {
		c, err := in.ReadByte()
		if err != nil {
			return err
		}
		b := e.Current()
		switch {
		case c == 0x1B:
			handleEscape(e, in)
		case defaultBindings[c] != editor.ActNone:
			e.Do(b, defaultBindings[c], -1, nil)
		case c >= 0x20:
			e.Do(b, editor.ActInsertChar, int(c), nil)
		}
		render(e, d)
	}
}

// handleEscape decodes the common CSI cursor sequences.
func handleEscape(e *editor.Editor, in *bufio.Reader) {
	b := e.Current()
	c, err := in.ReadByte()
	if err != nil || c != '[' {
		return
	}
	c, err = in.ReadByte()
	if err != nil {
		return
	}
	switch c {
	case 'A':
		e.Do(b, editor.ActLineUp, -1, nil)
	case 'B':
		e.Do(b, editor.ActLineDown, -1, nil)
	case 'C':
		e.Do(b, editor.ActMoveRight, -1, nil)
	case 'D':
		e.Do(b, editor.ActMoveLeft, -1, nil)
	case 'H':
		e.Do(b, editor.ActMoveSOL, -1, nil)
	case 'F':
		e.Do(b, editor.ActMoveEOL, -1, nil)
	case '5':
		in.ReadByte() // trailing ~
		e.Do(b, editor.ActPrevPage, -1, nil)
	case '6':
		in.ReadByte()
		e.Do(b, editor.ActNextPage, -1, nil)
	case '3':
		in.ReadByte()
		e.Do(b, editor.ActDeleteChar, -1, nil)
	}
}

// render paints the visible window of the current buffer.
func render(e *editor.Editor, d *display.Term) {
	b := e.Current()
	rows := make([]string, 0, d.Lines()-1)
	for i := b.WinY(); i < b.WinY()+d.Lines()-1; i++ {
		line := b.Line(i)
		if line == nil {
			break
		}
		rows = append(rows, string(line))
	}
	d.Paint(rows)
}
