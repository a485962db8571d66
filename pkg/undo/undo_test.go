package undo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doc is a single-line document; ops address it by Pos only.
type doc struct {
	text []byte
}

func (d *doc) apply(op Op) Op {
	switch op.Kind {
	case OpInsert:
		d.text = append(d.text[:op.Pos], append(append([]byte{}, op.Data...), d.text[op.Pos:]...)...)
		return Op{Kind: OpDelete, Pos: op.Pos, N: len(op.Data)}
	case OpDelete:
		removed := append([]byte{}, d.text[op.Pos:op.Pos+op.N]...)
		d.text = append(d.text[:op.Pos], d.text[op.Pos+op.N:]...)
		return Op{Kind: OpInsert, Pos: op.Pos, Data: removed}
	}
	panic("unexpected op")
}

// insert performs an edit and records its inverse, the way EditOps do.
func (d *doc) insert(l *Log, pos int, s string) {
	d.apply(Op{Kind: OpInsert, Pos: pos, Data: []byte(s)})
	l.Record(Op{Kind: OpDelete, Pos: pos, N: len(s)})
}

func TestUndoRedoRoundTrip(t *testing.T) {
	d := &doc{}
	l := New()

	d.insert(l, 0, "hello")
	d.insert(l, 5, " world")
	require.Equal(t, "hello world", string(d.text))
	require.Equal(t, 2, l.CurStep())

	assert.True(t, l.Undo(d.apply))
	assert.Equal(t, "hello", string(d.text))
	assert.True(t, l.Undo(d.apply))
	assert.Equal(t, "", string(d.text))
	assert.False(t, l.Undo(d.apply))

	assert.True(t, l.Redo(d.apply))
	assert.Equal(t, "hello", string(d.text))
	assert.True(t, l.Redo(d.apply))
	assert.Equal(t, "hello world", string(d.text))
	assert.False(t, l.Redo(d.apply))
}

func TestChainGroupsIntoOneStep(t *testing.T) {
	d := &doc{}
	l := New()

	l.Begin()
	d.insert(l, 0, "a")
	d.insert(l, 1, "b")
	l.End()
	require.Equal(t, "ab", string(d.text))
	require.Equal(t, 1, l.CurStep())

	assert.True(t, l.Undo(d.apply))
	assert.Equal(t, "", string(d.text))
}

func TestNestedChains(t *testing.T) {
	d := &doc{}
	l := New()

	l.Begin()
	d.insert(l, 0, "a")
	l.Begin()
	d.insert(l, 1, "b")
	l.End()
	assert.Equal(t, 0, l.CurStep()) // still open
	d.insert(l, 2, "c")
	l.End()
	assert.Equal(t, 1, l.CurStep())

	l.Undo(d.apply)
	assert.Equal(t, "", string(d.text))
	l.Redo(d.apply)
	assert.Equal(t, "abc", string(d.text))
}

func TestRecordTruncatesRedo(t *testing.T) {
	d := &doc{}
	l := New()

	d.insert(l, 0, "a")
	d.insert(l, 1, "b")
	l.Undo(d.apply)
	d.insert(l, 1, "c")
	assert.Equal(t, "ac", string(d.text))
	assert.False(t, l.CanRedo())

	l.Undo(d.apply)
	l.Undo(d.apply)
	assert.Equal(t, "", string(d.text))
}

func TestSavePointTracksModified(t *testing.T) {
	d := &doc{}
	l := New()
	assert.False(t, l.Modified())

	d.insert(l, 0, "x")
	assert.True(t, l.Modified())

	l.SetSavePoint()
	assert.False(t, l.Modified())

	l.Undo(d.apply)
	assert.True(t, l.Modified())
	l.Redo(d.apply)
	assert.False(t, l.Modified())

	// editing after undoing past the save point makes it unreachable
	l.Undo(d.apply)
	d.insert(l, 0, "y")
	assert.True(t, l.Modified())
	assert.Equal(t, -1, l.LastSaveStep())
}

func TestClear(t *testing.T) {
	d := &doc{}
	l := New()
	l.Begin()
	d.insert(l, 0, "x")
	l.Clear()
	assert.Equal(t, 0, l.Depth())
	assert.False(t, l.CanUndo())
	assert.False(t, l.Modified())
}
