package editor

import (
	"github.com/amantus-ai/vibedit/pkg/clip"
	"github.com/amantus-ai/vibedit/pkg/enc"
)

// Block (selection) lifecycle and the clip operations. A horizontal block
// runs from the mark to the cursor in reading order; a vertical block is
// the rectangle between the mark column and the cursor column.

// blockExtent normalizes the marked region. Returns start line, start pos,
// end line, end pos (positions are byte offsets on their lines).
func (e *Editor) blockExtent(b *Buffer) (sl, sp, el, ep int) {
	sl, el = b.blockStartLine, b.curLine
	startPos, _ := enc.PosOfColumn(b.Line(b.blockStartLine), b.blockStartCol, b.Opt.TabSize, b.Encoding)
	sp, ep = startPos, b.curPos
	if sl > el || (sl == el && sp > ep) {
		sl, el = el, sl
		sp, ep = minInt(ep, len(b.Line(sl))), startPos
	}
	ep = minInt(ep, len(b.Line(el)))
	return
}

// copyToClip captures the horizontal block into clip n, optionally cutting
// it.
func (e *Editor) copyToClip(b *Buffer, n int, cut bool) Status {
	if !b.marking {
		return MarkBlockFirst
	}
	sl, sp, el, ep := e.blockExtent(b)

	c := &clip.Clip{}
	if sl == el {
		line := b.Line(sl)
		if sp > ep {
			sp, ep = ep, sp
		}
		c.Lines = append(c.Lines, append([]byte{}, line[sp:ep]...))
	} else {
		first := b.Line(sl)
		c.Lines = append(c.Lines, append([]byte{}, first[minInt(sp, len(first)):]...))
		for i := sl + 1; i < el; i++ {
			c.Lines = append(c.Lines, append([]byte{}, b.Line(i)...))
		}
		c.Lines = append(c.Lines, append([]byte{}, b.Line(el)[:ep]...))
	}
	e.Clips.Put(n, c)

	if cut {
		return e.eraseBlock(b)
	}
	return OK
}

// eraseBlock deletes the horizontal block under one undo chain and leaves
// the cursor at the block start.
func (e *Editor) eraseBlock(b *Buffer) Status {
	if !b.marking {
		return MarkBlockFirst
	}
	sl, sp, el, ep := e.blockExtent(b)

	b.undo.Begin()
	defer b.undo.End()

	b.setLine(sl)
	sp = minInt(sp, b.lineLen())
	if sl == el {
		if sp > ep {
			sp, ep = ep, sp
		}
		e.deleteStream(b, b.curLD, sl, sp, ep-sp)
	} else {
		e.deleteStream(b, b.curLD, sl, sp, b.lineLen()-sp)
		for i := sl + 1; i < el; i++ {
			next := b.curLD.Next()
			e.deleteStream(b, next, sl+1, 0, next.Len())
			e.joinLines(b, b.curLD, sl)
		}
		next := b.curLD.Next()
		e.deleteStream(b, next, sl+1, 0, ep)
		e.joinLines(b, b.curLD, sl)
	}
	e.gotoPos(b, sp)
	if b.syn != nil {
		e.updateSyntaxStates(b, sl, b.curLD, nil)
		e.needAttrUpd = true
	}
	return OK
}

// vertExtent normalizes the rectangle of a vertical block. The column
// under the cursor is part of the rectangle, so right is exclusive after
// the +1.
func (e *Editor) vertExtent(b *Buffer) (top, bottom, left, right int) {
	top, bottom = b.blockStartLine, b.curLine
	if top > bottom {
		top, bottom = bottom, top
	}
	left, right = b.blockStartCol, b.visualCol()
	if left > right {
		left, right = right, left
	}
	right++
	return
}

// copyVertToClip captures the rectangle into clip n.
func (e *Editor) copyVertToClip(b *Buffer, n int, cut bool) Status {
	if !b.marking {
		return MarkBlockFirst
	}
	top, bottom, left, right := e.vertExtent(b)

	c := &clip.Clip{Vertical: true}
	for i := top; i <= bottom; i++ {
		line := b.Line(i)
		lp, _ := enc.PosOfColumn(line, left, b.Opt.TabSize, b.Encoding)
		rp, _ := enc.PosOfColumn(line, right, b.Opt.TabSize, b.Encoding)
		seg := append([]byte{}, line[minInt(lp, len(line)):minInt(rp, len(line))]...)
		// Pad short lines so the rectangle stays rectangular.
		for enc.Width(seg, len(seg), b.Opt.TabSize, b.Encoding) < right-left {
			seg = append(seg, ' ')
		}
		c.Lines = append(c.Lines, seg)
	}
	e.Clips.Put(n, c)

	if cut {
		return e.eraseVertBlock(b)
	}
	return OK
}

// eraseVertBlock removes the rectangle.
func (e *Editor) eraseVertBlock(b *Buffer) Status {
	if !b.marking {
		return MarkBlockFirst
	}
	top, bottom, left, right := e.vertExtent(b)

	b.undo.Begin()
	defer b.undo.End()
	for i := top; i <= bottom && !e.stopped(); i++ {
		ld := b.store.Nth(i)
		lp, _ := enc.PosOfColumn(ld.Data, left, b.Opt.TabSize, b.Encoding)
		rp, _ := enc.PosOfColumn(ld.Data, right, b.Opt.TabSize, b.Encoding)
		if rp > lp {
			e.deleteStream(b, ld, i, lp, rp-lp)
		}
	}
	b.setLine(top)
	e.gotoColumn(b, left)
	if b.syn != nil {
		e.updateSyntaxStates(b, top, b.curLD, nil)
		e.needAttrUpd = true
	}
	if e.stopped() {
		return Stopped
	}
	return OK
}

// pasteToBuffer inserts clip n horizontally at the cursor. The cursor stays
// at the paste start.
func (e *Editor) pasteToBuffer(b *Buffer, n int) Status {
	c := e.Clips.Get(n)
	if c == nil || c.Height() == 0 {
		return Error
	}

	b.undo.Begin()
	defer b.undo.End()

	startLine, startPos := b.curLine, minInt(b.curPos, b.lineLen())
	if c.Height() == 1 {
		e.insertStream(b, b.curLD, b.curLine, startPos, c.Lines[0])
	} else {
		e.insertOneLine(b, b.curLD, b.curLine, startPos)
		e.insertStream(b, b.curLD, b.curLine, startPos, c.Lines[0])
		ld := b.curLD.Next()
		line := b.curLine + 1
		for i := 1; i < c.Height()-1; i++ {
			e.insertOneLine(b, ld, line, 0)
			e.insertStream(b, ld, line, 0, c.Lines[i])
			ld = ld.Next()
			line++
		}
		e.insertStream(b, ld, line, 0, c.Lines[c.Height()-1])
	}
	b.setLine(startLine)
	e.gotoPos(b, startPos)
	if b.syn != nil {
		e.updateSyntaxStates(b, startLine, b.curLD, nil)
		e.needAttrUpd = true
	}
	return OK
}

// pasteVertToBuffer inserts a rectangle at the cursor column. Rows past the
// end of the buffer are created; short lines are padded with spaces up to
// the paste column.
func (e *Editor) pasteVertToBuffer(b *Buffer, n int) Status {
	c := e.Clips.Get(n)
	if c == nil || c.Height() == 0 {
		return Error
	}

	b.undo.Begin()
	defer b.undo.End()

	startLine := b.curLine
	col := b.visualCol()
	ld := b.curLD
	line := startLine
	for i := 0; i < c.Height(); i++ {
		if ld == nil {
			last := b.store.Last()
			e.insertOneLine(b, last, b.store.Count()-1, last.Len())
			ld = last.Next()
			line = b.store.Count() - 1
		}
		pos, reached := enc.PosOfColumn(ld.Data, col, b.Opt.TabSize, b.Encoding)
		if reached < col {
			e.insertSpaces(b, ld, line, ld.Len(), col-reached)
			pos = ld.Len()
		}
		e.insertStream(b, ld, line, pos, c.Lines[i])
		ld = ld.Next()
		line++
	}
	b.setLine(startLine)
	e.gotoColumn(b, col)
	if b.syn != nil {
		e.updateSyntaxStates(b, startLine, b.curLD, nil)
		e.needAttrUpd = true
	}
	return OK
}
