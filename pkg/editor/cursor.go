package editor

import (
	"fmt"
	"strconv"

	"github.com/amantus-ai/vibedit/pkg/enc"
)

// resyncPos reconciles the codepoint index and the visual position with the
// byte position after a structural change.
func (e *Editor) resyncPos(b *Buffer) {
	if !b.Opt.FreeForm && b.curPos > b.lineLen() {
		b.curPos = b.lineLen()
	}
	b.curChar = enc.Chars(b.curLD.Data, minInt(b.curPos, b.lineLen()), b.Encoding)
	if b.curPos > b.lineLen() {
		b.curChar += b.curPos - b.lineLen()
	}
	e.keepCursorOnScreen(b)
}

// keepCursorOnScreen scrolls the viewport minimally so the cursor is
// visible, then recomputes the visual coordinates.
func (e *Editor) keepCursorOnScreen(b *Buffer) {
	rows := e.windowRows()
	cols := e.Display.Columns()

	if b.curLine < b.winY {
		b.winY = b.curLine
	}
	if b.curLine >= b.winY+rows {
		b.winY = b.curLine - rows + 1
	}
	b.curY = b.curLine - b.winY

	col := enc.Width(b.curLD.Data, b.curPos, b.Opt.TabSize, b.Encoding)
	if col < b.winX {
		b.winX = col
	}
	if col >= b.winX+cols {
		b.winX = col - cols + 1
	}
	b.curX = col - b.winX
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// setLine moves the cursor to line n without touching the column state.
func (b *Buffer) setLine(n int) {
	if n < 0 {
		n = 0
	}
	if n >= b.store.Count() {
		n = b.store.Count() - 1
	}
	for b.curLine < n {
		b.curLD = b.curLD.Next()
		b.curLine++
	}
	for b.curLine > n {
		b.curLD = b.curLD.Prev()
		b.curLine--
	}
}

// gotoLine moves to line n (0-based), keeping the column.
func (e *Editor) gotoLine(b *Buffer, n int) {
	col := b.visualCol()
	b.setLine(n)
	e.gotoColumn(b, col)
}

// gotoPos moves to byte position pos on the current line.
func (e *Editor) gotoPos(b *Buffer, pos int) {
	if pos < 0 {
		pos = 0
	}
	if !b.Opt.FreeForm && pos > b.lineLen() {
		pos = b.lineLen()
	}
	b.curPos = pos
	e.resyncPos(b)
}

// gotoColumn moves to the given absolute visual column. In free-form mode
// the cursor may land past the end of the line.
func (e *Editor) gotoColumn(b *Buffer, col int) {
	pos, reached := enc.PosOfColumn(b.curLD.Data, col, b.Opt.TabSize, b.Encoding)
	if b.Opt.FreeForm && reached < col && pos >= b.lineLen() {
		pos = b.lineLen() + (col - enc.Width(b.curLD.Data, b.lineLen(), b.Opt.TabSize, b.Encoding))
	}
	b.curPos = pos
	e.resyncPos(b)
}

func (e *Editor) lineUp(b *Buffer) Status {
	if b.curLine == 0 {
		return Error
	}
	col := b.visualCol()
	b.setLine(b.curLine - 1)
	e.gotoColumn(b, col)
	return OK
}

func (e *Editor) lineDown(b *Buffer) Status {
	if b.curLine == b.store.Count()-1 {
		return Error
	}
	col := b.visualCol()
	b.setLine(b.curLine + 1)
	e.gotoColumn(b, col)
	return OK
}

func (e *Editor) charLeft(b *Buffer) Status {
	if b.curPos > b.lineLen() {
		b.curPos--
		e.resyncPos(b)
		return OK
	}
	if b.curPos > 0 {
		b.curPos = enc.PrevPos(b.curLD.Data, b.curPos, b.Encoding)
		e.resyncPos(b)
		return OK
	}
	if b.curLine == 0 {
		return Error
	}
	b.setLine(b.curLine - 1)
	e.gotoPos(b, b.lineLen())
	return OK
}

func (e *Editor) charRight(b *Buffer) Status {
	if b.Opt.FreeForm {
		b.curPos = enc.NextPos(b.curLD.Data, b.curPos, b.Encoding)
		e.resyncPos(b)
		return OK
	}
	if b.curPos < b.lineLen() {
		b.curPos = enc.NextPos(b.curLD.Data, b.curPos, b.Encoding)
		e.resyncPos(b)
		return OK
	}
	if b.curLine == b.store.Count()-1 {
		return Error
	}
	b.setLine(b.curLine + 1)
	e.gotoPos(b, 0)
	return OK
}

// prevPage moves the cursor to the top of the screen, or scrolls one page
// if it is already there.
func (e *Editor) prevPage(b *Buffer) Status {
	rows := e.windowRows()
	if b.curY > 0 {
		e.gotoLine(b, b.winY)
		return OK
	}
	if b.curLine == 0 {
		return Error
	}
	target := b.curLine - (rows - 1)
	if target < 0 {
		target = 0
	}
	b.winY = maxInt(0, b.winY-(rows-1))
	e.gotoLine(b, target)
	return OK
}

// nextPage moves the cursor to the bottom of the screen, or scrolls one
// page if it is already there.
func (e *Editor) nextPage(b *Buffer) Status {
	rows := e.windowRows()
	bottom := minInt(b.winY+rows-1, b.store.Count()-1)
	if b.curLine < bottom {
		e.gotoLine(b, bottom)
		return OK
	}
	if b.curLine == b.store.Count()-1 {
		return Error
	}
	target := minInt(b.curLine+(rows-1), b.store.Count()-1)
	b.winY += rows - 1
	e.gotoLine(b, target)
	return OK
}

// pageUp and pageDown scroll a full page keeping the cursor row.
func (e *Editor) pageUp(b *Buffer) Status {
	if b.curLine == 0 {
		return Error
	}
	rows := e.windowRows()
	b.winY = maxInt(0, b.winY-rows)
	e.gotoLine(b, maxInt(0, b.curLine-rows))
	return OK
}

func (e *Editor) pageDown(b *Buffer) Status {
	if b.curLine == b.store.Count()-1 {
		return Error
	}
	rows := e.windowRows()
	b.winY += rows
	e.gotoLine(b, minInt(b.store.Count()-1, b.curLine+rows))
	return OK
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (e *Editor) moveToSOL(b *Buffer) {
	b.curPos = 0
	e.resyncPos(b)
}

func (e *Editor) moveToEOL(b *Buffer) {
	b.curPos = b.lineLen()
	e.resyncPos(b)
}

func (e *Editor) moveToSOF(b *Buffer) {
	b.setLine(0)
	b.curPos = 0
	e.resyncPos(b)
}

func (e *Editor) moveToEOF(b *Buffer) {
	b.setLine(b.store.Count() - 1)
	b.curPos = b.lineLen()
	e.resyncPos(b)
}

// moveTOS and moveBOS jump to the top and bottom screen rows.
func (e *Editor) moveTOS(b *Buffer) Status {
	e.gotoLine(b, b.winY)
	return OK
}

func (e *Editor) moveBOS(b *Buffer) Status {
	e.gotoLine(b, minInt(b.winY+e.windowRows()-1, b.store.Count()-1))
	return OK
}

// toggleSOFEOF alternates between start and end of the document.
func (e *Editor) toggleSOFEOF(b *Buffer) {
	if b.curLine == 0 && b.curPos == 0 {
		e.moveToEOF(b)
	} else {
		e.moveToSOF(b)
	}
}

// toggleSOLEOL alternates between start and end of the line.
func (e *Editor) toggleSOLEOL(b *Buffer) {
	if b.curPos == 0 {
		e.moveToEOL(b)
	} else {
		e.moveToSOL(b)
	}
}

// indentWidth is the visual width of a line's leading whitespace, or -1 for
// blank lines.
func indentWidth(line []byte, tabSize int, k enc.Kind) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i == len(line) {
		return -1
	}
	return enc.Width(line, i, tabSize, k)
}

// moveIncUp and moveIncDown jump to the closest line above/below whose
// indentation differs from the current one.
func (e *Editor) moveIncUp(b *Buffer) Status {
	return e.moveInc(b, -1)
}

func (e *Editor) moveIncDown(b *Buffer) Status {
	return e.moveInc(b, 1)
}

func (e *Editor) moveInc(b *Buffer, dir int) Status {
	start := indentWidth(b.curLD.Data, b.Opt.TabSize, b.Encoding)
	for n := b.curLine + dir; n >= 0 && n < b.store.Count(); n += dir {
		w := indentWidth(b.Line(n), b.Opt.TabSize, b.Encoding)
		if w >= 0 && w != start {
			b.setLine(n)
			e.gotoColumn(b, w)
			return OK
		}
	}
	return Error
}

// searchWord moves to the start of the next (dir > 0) or previous (dir < 0)
// word, crossing line boundaries.
func (e *Editor) searchWord(b *Buffer, dir int) Status {
	if dir > 0 {
		return e.nextWord(b)
	}
	return e.prevWord(b)
}

func (e *Editor) nextWord(b *Buffer) Status {
	pos, line, ld := b.curPos, b.curLine, b.curLD
	inWord := pos < ld.Len() && enc.IsWord(enc.CharAt(ld.Data, pos, b.Encoding))
	for {
		if pos >= ld.Len() {
			next := ld.Next()
			if next == nil {
				return Error
			}
			ld, line, pos = next, line+1, 0
			inWord = false
			if pos < ld.Len() && enc.IsWord(enc.CharAt(ld.Data, pos, b.Encoding)) {
				break
			}
			continue
		}
		isw := enc.IsWord(enc.CharAt(ld.Data, pos, b.Encoding))
		if isw && !inWord {
			break
		}
		inWord = isw
		pos = enc.NextPos(ld.Data, pos, b.Encoding)
	}
	b.setLine(line)
	e.gotoPos(b, pos)
	return OK
}

func (e *Editor) prevWord(b *Buffer) Status {
	pos, line, ld := b.curPos, b.curLine, b.curLD
	for {
		if pos == 0 {
			prev := ld.Prev()
			if prev == nil {
				return Error
			}
			ld, line = prev, line-1
			pos = ld.Len()
			continue
		}
		p := enc.PrevPos(ld.Data, minInt(pos, ld.Len()), b.Encoding)
		if !enc.IsWord(enc.CharAt(ld.Data, p, b.Encoding)) {
			pos = p
			continue
		}
		// inside or at the end of a word: walk to its start
		for p > 0 {
			q := enc.PrevPos(ld.Data, p, b.Encoding)
			if !enc.IsWord(enc.CharAt(ld.Data, q, b.Encoding)) {
				break
			}
			p = q
		}
		b.setLine(line)
		e.gotoPos(b, p)
		return OK
	}
}

// moveToEOW moves just past the end of the current word.
func (e *Editor) moveToEOW(b *Buffer) Status {
	pos := b.curPos
	if pos >= b.lineLen() || !enc.IsWord(enc.CharAt(b.curLD.Data, pos, b.Encoding)) {
		return Error
	}
	for pos < b.lineLen() && enc.IsWord(enc.CharAt(b.curLD.Data, pos, b.Encoding)) {
		pos = enc.NextPos(b.curLD.Data, pos, b.Encoding)
	}
	e.gotoPos(b, pos)
	return OK
}

// adjustView scrolls the viewport so the cursor lands where the spec says:
// T/M/B with an optional count position the row, L/C/R the column. An empty
// spec means "M".
func (e *Editor) adjustView(b *Buffer, spec string) Status {
	if spec == "" {
		spec = "M"
	}
	rows := e.windowRows()
	i := 0
	for i < len(spec) {
		op := spec[i]
		i++
		j := i
		for j < len(spec) && spec[j] >= '0' && spec[j] <= '9' {
			j++
		}
		n := 0
		if j > i {
			v, err := strconv.Atoi(spec[i:j])
			if err != nil {
				return Error
			}
			n = v
		}
		i = j
		switch op {
		case 'T', 't':
			b.winY = maxInt(0, b.curLine-n)
		case 'B', 'b':
			b.winY = maxInt(0, b.curLine-(rows-1-n))
		case 'M', 'm':
			b.winY = maxInt(0, b.curLine-rows/2)
		case 'L', 'l':
			b.winX = maxInt(0, enc.Width(b.curLD.Data, b.curPos, b.Opt.TabSize, b.Encoding)-n)
		case 'R', 'r':
			b.winX = maxInt(0, enc.Width(b.curLD.Data, b.curPos, b.Opt.TabSize, b.Encoding)-(e.Display.Columns()-1-n))
		case 'C', 'c':
			b.winX = maxInt(0, enc.Width(b.curLD.Data, b.curPos, b.Opt.TabSize, b.Encoding)-e.Display.Columns()/2)
		default:
			return Error
		}
	}
	e.keepCursorOnScreen(b)
	return OK
}

// viewShiftSpec builds the AdjustView argument that recreates a vertical
// shift, e.g. "T3" or "B2".
func viewShiftSpec(shift int) string {
	if shift > 0 {
		return fmt.Sprintf("T%d", shift)
	}
	return fmt.Sprintf("B%d", -shift)
}
