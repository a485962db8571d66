package editor

import (
	"math"

	"github.com/amantus-ai/vibedit/pkg/enc"
)

// insertChar performs one character insertion at the cursor: encoding
// promotion, overwrite, free-form padding, then word wrap and auto-indent
// when the margin is crossed.
func (e *Editor) insertChar(b *Buffer, c rune) Status {
	if b.Opt.ReadOnly {
		return FileIsReadOnly
	}
	if c == 0 {
		return CantInsert0
	}
	if st := b.promote(c); st != OK {
		return st
	}
	e.lastInsertedChar = int(c)

	e.freezeAttributes(b)

	// One chain covers the insertion and any word-wrap split it triggers.
	b.undo.Begin()
	defer b.undo.End()
	if !b.Opt.Insert && b.curPos < b.lineLen() {
		e.deleteOneChar(b, b.curLD, b.curLine, b.curPos)
	}
	if b.curPos > b.lineLen() {
		// Free-form: pad with spaces up to the insertion position.
		e.insertSpaces(b, b.curLD, b.curLine, b.lineLen(), b.curPos-b.lineLen())
	}
	e.insertOneChar(b, b.curLD, b.curLine, b.curPos, c)
	e.needAttrUpd = true

	e.resyncPos(b)
	e.charRight(b)

	margin := b.Opt.RightMargin
	if margin == 0 {
		// ne_columns-1 avoids a double horizontal scroll on every wrap.
		margin = e.Display.Columns() - 1
	}
	if b.Opt.WordWrap && b.visualCol() >= margin {
		if tailPos, st := e.wordWrap(b); st == OK {
			indent := 0
			if b.Opt.AutoIndent {
				if next := b.curLD.Next(); next != nil {
					indent = e.autoIndentLine(b, b.curLine+1, next, math.MaxInt)
				}
			}
			e.moveToSOL(b)
			e.lineDown(b)
			e.gotoPos(b, tailPos+indent)
			e.Display.ScrollWindow(b.curY, 1)
			return OK
		}
	}
	e.reparseCurrent(b)
	e.Display.UpdateLine(b.curY)
	return OK
}

// backspaceDelete runs count repetitions of Backspace or DeleteChar under a
// single undo chain, with the tab-aware space collapse and the line joins.
func (e *Editor) backspaceDelete(b *Buffer, back bool, count int) Status {
	if b.Opt.ReadOnly {
		return FileIsReadOnly
	}

	b.undo.Begin()
	for i := 0; i < count && !e.stopped(); i++ {
		if back {
			if b.curPos == 0 {
				if b.curLine == 0 {
					b.undo.End()
					return Error
				}
				// Backspace at start of line deletes at the end of the
				// previous one.
				e.charLeft(b)
			} else {
				if !b.Opt.Tabs && b.Opt.TabSize > 0 && b.visualCol()%b.Opt.TabSize == 0 &&
					(b.curPos > b.lineLen() || b.curLD.Data[b.curPos-1] == ' ') {
					// Deleting spaces from a tabbing position: march left to
					// the previous tab stop or until the spaces end.
					for {
						e.charLeft(b)
						if b.visualCol()%b.Opt.TabSize == 0 {
							break
						}
						if b.curPos <= b.lineLen() && (b.curPos == 0 || b.curLD.Data[b.curPos-1] != ' ') {
							break
						}
					}
				} else {
					e.charLeft(b)
				}
				if b.curPos >= b.lineLen() {
					// Not over text: free form turns the backspace into a
					// plain move.
					continue
				}
			}
		}

		// From here on this is a delete at the cursor.

		if !b.Opt.Tabs && b.Opt.TabSize > 0 && b.curPos < b.lineLen() && b.curLD.Data[b.curPos] == ' ' &&
			(b.visualCol()%b.Opt.TabSize == 0 || b.curPos == 0 || b.curLD.Data[b.curPos-1] != ' ') {
			col := 0
			for {
				col++
				if (b.visualCol()+col)%b.Opt.TabSize == 0 {
					break
				}
				if b.curPos+col >= b.lineLen() || b.curLD.Data[b.curPos+col] != ' ' {
					break
				}
			}
			// A whole column of spaces spanning to the next tab stop is
			// collapsed into one logical tab.
			if col > 1 && (b.visualCol()+col)%b.Opt.TabSize == 0 {
				e.freezeAttributes(b)
				e.deleteStream(b, b.curLD, b.curLine, b.curPos, col)
				e.insertOneChar(b, b.curLD, b.curLine, b.curPos, '\t')
			}
		}

		if b.curPos > b.lineLen() {
			col := b.visualCol()
			// Past end of line: free form. Deleting here joins with the
			// next line, which needs the gap padded first.
			if b.curLD.Next() == nil {
				continue
			}
			if b.lineLen() == 0 {
				e.autoIndentLine(b, b.curLine, b.curLD, col)
				e.resyncPos(b)
			}
			e.insertSpaces(b, b.curLD, b.curLine, b.lineLen(),
				col-enc.Width(b.curLD.Data, b.lineLen(), b.Opt.TabSize, b.Encoding))
			b.curPos = b.lineLen()
			e.resyncPos(b)
		}

		e.freezeAttributes(b)

		if b.curPos < b.lineLen() {
			e.deleteOneChar(b, b.curLD, b.curLine, b.curPos)
			e.resyncPos(b)
			e.Display.UpdateLine(b.curY)
		} else {
			if b.curLD.Next() == nil {
				// Delete at the very end of the buffer is a no-op.
				continue
			}
			// Joining two lines. The join keeps the current line and removes
			// its successor; an empty current line keeps its incoming state.
			saved := b.curLD.Highlight
			e.deleteOneChar(b, b.curLD, b.curLine, b.curPos)
			if b.syn != nil && b.curPos == 0 {
				b.curLD.Highlight = saved
			}
			e.reparseCurrent(b)
			e.resyncPos(b)
			e.Display.ScrollWindow(b.curY+1, -1)
		}
	}
	e.needAttrUpd = true
	b.undo.End()
	if e.stopped() {
		return Stopped
	}
	return OK
}
