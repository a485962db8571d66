package editor

import (
	"github.com/amantus-ai/vibedit/pkg/enc"
	"github.com/amantus-ai/vibedit/pkg/textstore"
)

// wordWrap splits the current line at the last word break before the
// cursor. On success it returns the cursor's byte position within the
// carried tail; with no break available it returns -1 and Error, and the
// line is left alone.
func (e *Editor) wordWrap(b *Buffer) (int, Status) {
	line := b.curLD.Data
	limit := minInt(b.curPos, len(line))

	split := -1
	for i := 0; i < limit; i = enc.NextPos(line, i, b.Encoding) {
		if line[i] == ' ' || line[i] == '\t' {
			split = enc.NextPos(line, i, b.Encoding)
		}
	}
	if split <= 0 {
		return -1, Error
	}

	tailPos := b.curPos - split
	e.freezeAttributes(b)
	e.insertOneLine(b, b.curLD, b.curLine, split)
	e.reparseCurrent(b)
	return tailPos, OK
}

// autoIndentLine copies the leading whitespace of the previous line onto
// ld, capped at maxCols visual columns. Returns the number of bytes
// inserted.
func (e *Editor) autoIndentLine(b *Buffer, line int, ld *textstore.Line, maxCols int) int {
	prev := ld.Prev()
	if prev == nil {
		return 0
	}
	src := prev.Data
	end := 0
	col := 0
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		w := enc.CharWidth(rune(src[end]), col, b.Opt.TabSize)
		if col+w > maxCols {
			break
		}
		col += w
		end++
	}
	if end == 0 {
		return 0
	}
	indent := append([]byte{}, src[:end]...)
	e.insertStream(b, ld, line, 0, indent)
	return end
}
