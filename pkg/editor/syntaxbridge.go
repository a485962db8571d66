package editor

import (
	"github.com/amantus-ai/vibedit/pkg/syntax"
	"github.com/amantus-ai/vibedit/pkg/textstore"
)

// The bridge between the editing core and the syntax engine. Each line
// stores the highlighter state incoming to it; the attributes of the
// current line are frozen lazily, and every structural edit re-parses
// forward until the per-line states stabilize.

// freezeAttributes recomputes the byte-wise attributes of the current line
// if they are stale. Mutations that inspect or patch attributes call this
// first.
func (e *Editor) freezeAttributes(b *Buffer) {
	if b.syn == nil || b.attrValid {
		return
	}
	attrs, next := b.syn.Parse(b.curLD.Data, b.curLD.Highlight)
	b.attrBuf = attrs
	b.nextState = next
	b.attrValid = true
}

// pokeNextState stores the current line's outgoing state into the next
// line. Call after any mutation that may have changed the outgoing state.
func (e *Editor) pokeNextState(b *Buffer) {
	if b.syn == nil {
		return
	}
	if next := b.curLD.Next(); next != nil {
		next.Highlight = b.nextState
	}
}

// reparseCurrent recomputes the current line's outgoing state and
// propagates it.
func (e *Editor) reparseCurrent(b *Buffer) {
	if b.syn == nil {
		return
	}
	_, next := b.syn.Parse(b.curLD.Data, b.curLD.Highlight)
	b.nextState = next
	b.attrValid = false
	e.pokeNextState(b)
}

// updateSyntaxStates re-parses forward from ld (at index line) until the
// incoming states stabilize or until is reached. Returns the index of the
// last line whose state changed.
func (e *Editor) updateSyntaxStates(b *Buffer, line int, ld *textstore.Line, until *textstore.Line) int {
	if b.syn == nil {
		return line
	}
	state := ld.Highlight
	last := line
	for cur := ld; cur != nil; cur = cur.Next() {
		if cur != ld && cur.Highlight == state {
			break
		}
		cur.Highlight = state
		_, state = b.syn.Parse(cur.Data, state)
		last = line
		line++
		if until != nil && cur == until {
			break
		}
	}
	return last
}

// resetSyntaxStates forgets every per-line state; used when the buffer
// encoding flips under the highlighter.
func (e *Editor) resetSyntaxStates(b *Buffer) {
	for cur := b.store.First(); cur != nil; cur = cur.Next() {
		cur.Highlight = syntax.State(0)
	}
	b.attrValid = false
	if b.syn != nil {
		e.updateSyntaxStates(b, 0, b.store.First(), nil)
	}
}
