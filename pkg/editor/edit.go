package editor

import (
	"github.com/amantus-ai/vibedit/pkg/enc"
	"github.com/amantus-ai/vibedit/pkg/textstore"
	"github.com/amantus-ai/vibedit/pkg/undo"
)

// The primitive mutations. Every primitive records its inverse in the undo
// log and invalidates the frozen attributes when it touches the current
// line. Callers bracket composites with undo chains.

// insertStream splices data into ld at pos.
func (e *Editor) insertStream(b *Buffer, ld *textstore.Line, line, pos int, data []byte) {
	if len(data) == 0 {
		return
	}
	ld.Insert(pos, data)
	if b.Opt.DoUndo {
		b.undo.Record(undo.Op{Kind: undo.OpDelete, Line: line, Pos: pos, N: len(data)})
	} else {
		b.undo.SetModified(true)
	}
	if ld == b.curLD {
		b.attrValid = false
	}
}

// deleteStream removes n bytes from ld at pos and returns them.
func (e *Editor) deleteStream(b *Buffer, ld *textstore.Line, line, pos, n int) []byte {
	removed := ld.Delete(pos, n)
	if len(removed) == 0 {
		return nil
	}
	if b.Opt.DoUndo {
		b.undo.Record(undo.Op{Kind: undo.OpInsert, Line: line, Pos: pos, Data: removed})
	} else {
		b.undo.SetModified(true)
	}
	if ld == b.curLD {
		b.attrValid = false
	}
	return removed
}

// insertOneChar inserts codepoint c at pos using the buffer encoding.
func (e *Editor) insertOneChar(b *Buffer, ld *textstore.Line, line, pos int, c rune) {
	e.insertStream(b, ld, line, pos, enc.RuneBytes(c, b.Encoding))
}

// insertSpaces pads with n spaces at pos.
func (e *Editor) insertSpaces(b *Buffer, ld *textstore.Line, line, pos, n int) {
	if n <= 0 {
		return
	}
	pad := make([]byte, n)
	for i := range pad {
		pad[i] = ' '
	}
	e.insertStream(b, ld, line, pos, pad)
}

// deleteOneChar removes the codepoint at pos, joining with the next line
// when pos is at the end of the line. Returns Error at the very end of the
// buffer.
func (e *Editor) deleteOneChar(b *Buffer, ld *textstore.Line, line, pos int) Status {
	if pos < ld.Len() {
		n := enc.NextPos(ld.Data, pos, b.Encoding) - pos
		e.deleteStream(b, ld, line, pos, n)
		return OK
	}
	if ld.Next() == nil {
		return Error
	}
	e.joinLines(b, ld, line)
	return OK
}

// joinLines merges ld with its successor.
func (e *Editor) joinLines(b *Buffer, ld *textstore.Line, line int) {
	seam := b.store.Join(ld)
	if seam < 0 {
		return
	}
	if b.Opt.DoUndo {
		b.undo.Record(undo.Op{Kind: undo.OpSplit, Line: line, Pos: seam})
	} else {
		b.undo.SetModified(true)
	}
	if ld == b.curLD {
		b.attrValid = false
	}
}

// insertOneLine splits ld at pos; the new successor holds the suffix.
func (e *Editor) insertOneLine(b *Buffer, ld *textstore.Line, line, pos int) *textstore.Line {
	nl := b.store.Split(ld, pos)
	nl.Highlight = ld.Highlight
	if b.Opt.DoUndo {
		b.undo.Record(undo.Op{Kind: undo.OpJoin, Line: line})
	} else {
		b.undo.SetModified(true)
	}
	if ld == b.curLD {
		b.attrValid = false
	}
	return nl
}

// deleteOneLine removes the whole current line, pushing its content on the
// undelete stack. The cursor descriptor is advanced before the old line
// goes away.
func (e *Editor) deleteOneLine(b *Buffer, ld *textstore.Line, line int) Status {
	content := append([]byte{}, ld.Data...)
	b.deletedLines = append(b.deletedLines, content)

	if ld.Next() != nil {
		e.deleteStream(b, ld, line, 0, ld.Len())
		e.joinLines(b, ld, line)
		return OK
	}
	if ld.Prev() != nil {
		prev := ld.Prev()
		e.deleteStream(b, ld, line, 0, ld.Len())
		b.curLD = prev
		b.curLine = line - 1
		e.joinLines(b, prev, line-1)
		b.curPos = minInt(b.curPos, b.curLD.Len())
		return OK
	}
	// Only line of the buffer: it just becomes empty.
	if ld.Len() == 0 {
		b.deletedLines = b.deletedLines[:len(b.deletedLines)-1]
		return Error
	}
	e.deleteStream(b, ld, line, 0, ld.Len())
	b.curPos = 0
	return OK
}

// undeleteLine reinserts the most recently deleted line above the current
// one and leaves the cursor on it.
func (e *Editor) undeleteLine(b *Buffer) Status {
	if len(b.deletedLines) == 0 {
		return Error
	}
	content := b.deletedLines[len(b.deletedLines)-1]
	b.deletedLines = b.deletedLines[:len(b.deletedLines)-1]

	b.undo.Begin()
	e.gotoPos(b, 0)
	e.insertOneLine(b, b.curLD, b.curLine, 0)
	e.insertStream(b, b.curLD, b.curLine, 0, content)
	b.undo.End()
	e.resyncPos(b)
	return OK
}

// deleteToEOL removes everything from pos to the end of the line.
func (e *Editor) deleteToEOL(b *Buffer, ld *textstore.Line, line, pos int) {
	if pos < ld.Len() {
		e.deleteStream(b, ld, line, pos, ld.Len()-pos)
	}
}

// applyOp performs one undo record and returns its inverse. It also drops
// the cursor at the site of the change so undo lands where the edit was.
func (e *Editor) applyOp(b *Buffer, op undo.Op) undo.Op {
	ld := b.store.Nth(op.Line)
	switch op.Kind {
	case undo.OpInsert:
		ld.Insert(op.Pos, op.Data)
		e.placeCursor(b, op.Line, op.Pos+len(op.Data))
		return undo.Op{Kind: undo.OpDelete, Line: op.Line, Pos: op.Pos, N: len(op.Data)}
	case undo.OpDelete:
		removed := ld.Delete(op.Pos, op.N)
		e.placeCursor(b, op.Line, op.Pos)
		return undo.Op{Kind: undo.OpInsert, Line: op.Line, Pos: op.Pos, Data: removed}
	case undo.OpSplit:
		nl := b.store.Split(ld, op.Pos)
		nl.Highlight = ld.Highlight
		e.placeCursor(b, op.Line+1, 0)
		return undo.Op{Kind: undo.OpJoin, Line: op.Line}
	case undo.OpJoin:
		seam := b.store.Join(ld)
		e.placeCursor(b, op.Line, seam)
		return undo.Op{Kind: undo.OpSplit, Line: op.Line, Pos: seam}
	}
	return op
}

// placeCursor repositions after an undo step; the line descriptor pointer
// must be rebuilt because structural ops may have freed the old one.
func (e *Editor) placeCursor(b *Buffer, line, pos int) {
	if line >= b.store.Count() {
		line = b.store.Count() - 1
	}
	b.curLine = line
	b.curLD = b.store.Nth(line)
	b.curPos = minInt(pos, b.curLD.Len())
	b.attrValid = false
	e.resyncPos(b)
}

// undoStep runs one undo step through the log.
func (e *Editor) undoStep(b *Buffer) Status {
	if !b.undo.Undo(func(op undo.Op) undo.Op { return e.applyOp(b, op) }) {
		return Error
	}
	e.afterHistoryStep(b)
	return OK
}

// redoStep reapplies one undone step.
func (e *Editor) redoStep(b *Buffer) Status {
	if !b.undo.Redo(func(op undo.Op) undo.Op { return e.applyOp(b, op) }) {
		return Error
	}
	e.afterHistoryStep(b)
	return OK
}

func (e *Editor) afterHistoryStep(b *Buffer) {
	b.attrValid = false
	if b.syn != nil {
		e.updateSyntaxStates(b, 0, b.store.First(), nil)
		e.needAttrUpd = true
	}
}
