package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/amantus-ai/vibedit/pkg/display"
	"github.com/amantus-ai/vibedit/pkg/prompt"
)

// terminalPrompter asks on the status line and reads a reply from stdin.
// ESC as the first byte aborts.
type terminalPrompter struct {
	d *display.Term
}

func (t *terminalPrompter) readLine(label, def string) (string, error) {
	t.d.Message(fmt.Sprintf("%s [%s]: ", label, def))
	r := bufio.NewReader(os.Stdin)
	var out []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			return "", prompt.ErrAborted
		}
		switch {
		case c == 0x1B:
			return "", prompt.ErrAborted
		case c == '\r' || c == '\n':
			if len(out) == 0 {
				return def, nil
			}
			return string(out), nil
		case c == 0x7F || c == 0x08:
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			out = append(out, c)
		}
		t.d.Message(fmt.Sprintf("%s [%s]: %s", label, def, out))
	}
}

func (t *terminalPrompter) Number(label string, def int) (int, error) {
	s, err := t.readLine(label, strconv.Itoa(def))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, prompt.ErrNotANumber
	}
	return n, nil
}

func (t *terminalPrompter) String(label, def string, preferUTF8 bool) (string, error) {
	return t.readLine(label, def)
}

func (t *terminalPrompter) File(label, def string) (string, error) {
	return t.readLine(label, def)
}

func (t *terminalPrompter) Response(label string, def bool) bool {
	r, err := t.Char(label+" (y/n)", 'n')
	if err != nil {
		return false
	}
	return r == 'y' || r == 'Y'
}

func (t *terminalPrompter) Char(label string, def rune) (rune, error) {
	t.d.Message(label)
	r := bufio.NewReader(os.Stdin)
	c, _, err := r.ReadRune()
	if err != nil || c == 0x1B {
		return 0, prompt.ErrAborted
	}
	if c == '\r' || c == '\n' {
		return def, nil
	}
	return c, nil
}

func (t *terminalPrompter) Document(names []string) (int, error) {
	for i, n := range names {
		t.d.Message(fmt.Sprintf("%2d %s", i, n))
	}
	return t.Number("Document", 0)
}
