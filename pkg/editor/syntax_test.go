package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amantus-ai/vibedit/pkg/syntax"
)

// parenEngine's state is the number of unclosed parentheses, a stand-in for
// any stateful highlighter.
type parenEngine struct{}

func (parenEngine) Name() string { return "paren" }

func (parenEngine) Parse(line []byte, incoming syntax.State) ([]syntax.Attr, syntax.State) {
	attrs := make([]syntax.Attr, len(line))
	st := incoming
	for i, c := range line {
		switch c {
		case '(':
			st++
		case ')':
			if st > 0 {
				st--
			}
		}
		attrs[i] = syntax.Attr(st)
	}
	return attrs, st
}

func syntaxEditor(t *testing.T) (*Editor, *Buffer) {
	e, b := testEditor(nil)
	e.LoadSyntax = func(name string) (syntax.Engine, error) { return parenEngine{}, nil }
	require.Equal(t, OK, e.Do(b, ActSyntax, -1, sp("paren")))
	return e, b
}

func lineStates(b *Buffer) []syntax.State {
	var out []syntax.State
	for ld := b.store.First(); ld != nil; ld = ld.Next() {
		out = append(out, ld.Highlight)
	}
	return out
}

func TestSyntaxStatePropagation(t *testing.T) {
	e, b := syntaxEditor(t)
	e.Do(b, ActInsertString, -1, sp("(("))
	e.Do(b, ActInsertLine, -1, nil)
	e.Do(b, ActInsertString, -1, sp(")"))
	e.Do(b, ActInsertLine, -1, nil)
	e.Do(b, ActInsertString, -1, sp("tail"))

	e.updateSyntaxStates(b, 0, b.store.First(), nil)
	assert.Equal(t, []syntax.State{0, 2, 1}, lineStates(b))
}

func TestSyntaxStateConsistencyAfterEdits(t *testing.T) {
	e, b := syntaxEditor(t)
	e.Do(b, ActInsertString, -1, sp("(("))
	e.Do(b, ActInsertLine, -1, nil)
	e.Do(b, ActInsertString, -1, sp("x"))

	// closing both parens on line 0 changes line 1's incoming state
	e.Do(b, ActMoveSOF, -1, nil)
	e.Do(b, ActMoveEOL, -1, nil)
	e.Do(b, ActInsertString, -1, sp("))"))
	e.updateSyntaxStates(b, 0, b.store.First(), nil)

	states := lineStates(b)
	require.Len(t, states, 2)
	assert.Equal(t, syntax.State(0), states[0])
	assert.Equal(t, syntax.State(0), states[1])

	// invariant: parse(line_i, incoming_i) == incoming_{i+1}
	for ld := b.store.First(); ld.Next() != nil; ld = ld.Next() {
		_, out := b.syn.Parse(ld.Data, ld.Highlight)
		assert.Equal(t, out, ld.Next().Highlight)
	}
}

func TestSyntaxJoinPreservesState(t *testing.T) {
	e, b := syntaxEditor(t)
	e.Do(b, ActInsertString, -1, sp("("))
	e.Do(b, ActInsertLine, -1, nil)
	e.Do(b, ActInsertLine, -1, nil)
	e.Do(b, ActInsertString, -1, sp("end"))
	e.updateSyntaxStates(b, 0, b.store.First(), nil)

	// delete the empty middle line by joining
	e.Do(b, ActGotoLine, 2, nil)
	e.Do(b, ActMoveSOL, -1, nil)
	e.Do(b, ActBackspace, -1, nil)
	e.updateSyntaxStates(b, 0, b.store.First(), nil)

	for ld := b.store.First(); ld.Next() != nil; ld = ld.Next() {
		_, out := b.syn.Parse(ld.Data, ld.Highlight)
		assert.Equal(t, out, ld.Next().Highlight)
	}
}

func TestSyntaxActionGuards(t *testing.T) {
	e, b := testEditor(nil)
	e.DoSyntax = false
	assert.Equal(t, SyntaxNotEnabled, e.Do(b, ActSyntax, -1, sp("go")))

	e2, b2 := syntaxEditor(t)
	require.NotNil(t, b2.syn)
	// "*" clears the ruleset
	require.Equal(t, OK, e2.Do(b2, ActSyntax, -1, sp("*")))
	assert.Nil(t, b2.syn)
}

func TestAdjustView(t *testing.T) {
	e, b := testEditor(nil)
	for i := 0; i < 60; i++ {
		e.Do(b, ActInsertLine, -1, nil)
	}
	e.Do(b, ActGotoLine, 50, nil)

	require.Equal(t, OK, e.Do(b, ActAdjustView, -1, sp("T3")))
	assert.Equal(t, 46, b.WinY())
	assert.Equal(t, 3, b.CurY())

	require.Equal(t, OK, e.Do(b, ActAdjustView, -1, sp("B2")))
	// Null display: 24 rows, 23 text rows; cursor 2 rows above the bottom
	assert.Equal(t, 20, b.CurY())

	require.Equal(t, Error, e.Do(b, ActAdjustView, -1, sp("Q9")))
}

func TestViewportFollowsCursor(t *testing.T) {
	e, b := testEditor(nil)
	for i := 0; i < 60; i++ {
		e.Do(b, ActInsertLine, -1, nil)
	}
	// 23 text rows: line 60 is far below the first window
	assert.Equal(t, 60, b.CurLine())
	assert.True(t, b.WinY() > 0)
	assert.Equal(t, b.CurLine()-b.WinY(), b.CurY())

	e.Do(b, ActMoveSOF, -1, nil)
	assert.Equal(t, 0, b.WinY())
	assert.Equal(t, 0, b.CurY())
}

func TestPagingMotion(t *testing.T) {
	e, b := testEditor(nil)
	for i := 0; i < 100; i++ {
		e.Do(b, ActInsertLine, -1, nil)
	}
	e.Do(b, ActMoveSOF, -1, nil)

	e.Do(b, ActNextPage, -1, nil)
	assert.Equal(t, 22, b.CurLine()) // bottom of first screen
	e.Do(b, ActNextPage, -1, nil)
	assert.Equal(t, 44, b.CurLine())
	e.Do(b, ActPrevPage, -1, nil)
	assert.Equal(t, b.WinY(), b.CurLine())
}

func TestToggleMotions(t *testing.T) {
	e, b := testEditor(nil)
	e.Do(b, ActInsertString, -1, sp("hello"))

	e.Do(b, ActToggleSEOL, -1, nil)
	assert.Equal(t, 0, b.CurPos())
	e.Do(b, ActToggleSEOL, -1, nil)
	assert.Equal(t, 5, b.CurPos())

	e.Do(b, ActToggleSEOF, -1, nil)
	assert.Equal(t, 0, b.CurLine())
	assert.Equal(t, 0, b.CurPos())
	e.Do(b, ActToggleSEOF, -1, nil)
	assert.Equal(t, 5, b.CurPos())
}
