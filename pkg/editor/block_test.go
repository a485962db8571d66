package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amantus-ai/vibedit/pkg/clip"
	"github.com/amantus-ai/vibedit/pkg/display"
)

func fill(e *Editor, b *Buffer, lines ...string) {
	for i, l := range lines {
		if i > 0 {
			e.Do(b, ActInsertLine, -1, nil)
		}
		s := l
		e.Do(b, ActInsertString, -1, &s)
	}
	e.Do(b, ActMoveSOF, -1, nil)
}

func TestCutPasteHorizontal(t *testing.T) {
	e, b := testEditor(nil)
	fill(e, b, "hello world")
	e.Do(b, ActMoveRight, 6, nil)
	e.Do(b, ActMark, 1, nil)
	e.Do(b, ActMoveEOL, -1, nil)

	require.Equal(t, OK, e.Do(b, ActCut, -1, nil))
	assert.Equal(t, "hello ", b.Text())
	assert.False(t, b.marking)

	e.Do(b, ActMoveSOL, -1, nil)
	require.Equal(t, OK, e.Do(b, ActPaste, -1, nil))
	assert.Equal(t, "worldhello ", b.Text())
}

func TestCopyMultiline(t *testing.T) {
	e, b := testEditor(nil)
	fill(e, b, "one", "two", "three")
	e.Do(b, ActMark, 1, nil)
	e.Do(b, ActGotoLine, 3, nil)
	e.Do(b, ActMoveEOL, -1, nil)

	require.Equal(t, OK, e.Do(b, ActCopy, -1, nil))
	c := e.Clips.Get(0)
	require.NotNil(t, c)
	assert.Equal(t, 3, c.Height())
	assert.Equal(t, "one", string(c.Lines[0]))
	assert.Equal(t, "three", string(c.Lines[2]))
	// copy does not mutate
	assert.Equal(t, "one\ntwo\nthree", b.Text())
}

func TestEraseBlock(t *testing.T) {
	e, b := testEditor(nil)
	fill(e, b, "one", "two", "three")
	e.Do(b, ActMoveRight, 2, nil)
	e.Do(b, ActMark, 1, nil)
	e.Do(b, ActGotoLine, 3, nil)
	e.Do(b, ActMoveSOL, -1, nil)
	e.Do(b, ActMoveRight, 3, nil)

	require.Equal(t, OK, e.Do(b, ActErase, -1, nil))
	assert.Equal(t, "onee", b.Text())

	// a single undo step restores the block
	e.Do(b, ActUndo, -1, nil)
	assert.Equal(t, "one\ntwo\nthree", b.Text())
}

func TestVerticalCutPasteScenario(t *testing.T) {
	e, b := testEditor(nil)
	fill(e, b, "abcd", "efgh", "ijkl")

	// mark vertical from (0,1) to (2,3)
	e.Do(b, ActMoveRight, 1, nil)
	e.Do(b, ActMarkVert, 1, nil)
	e.Do(b, ActGotoLine, 3, nil)
	e.Do(b, ActGotoColumn, 4, nil)

	require.Equal(t, OK, e.Do(b, ActCut, -1, nil))
	assert.Equal(t, "a\ne\ni", b.Text())

	c := e.Clips.Get(0)
	require.NotNil(t, c)
	assert.True(t, c.Vertical)
	assert.Equal(t, []string{"bcd", "fgh", "jkl"}, clipStrings(c))

	e.Do(b, ActMoveSOF, -1, nil)
	require.Equal(t, OK, e.Do(b, ActPasteVert, -1, nil))
	assert.Equal(t, "bcda\nfghe\njkli", b.Text())
}

func clipStrings(c *clip.Clip) []string {
	out := make([]string, len(c.Lines))
	for i, l := range c.Lines {
		out[i] = string(l)
	}
	return out
}

func TestVerticalPastePastEndOfBuffer(t *testing.T) {
	e, b := testEditor(nil)
	fill(e, b, "xy")
	e.Clips.Put(0, &clip.Clip{Vertical: true, Lines: [][]byte{[]byte("a"), []byte("b"), []byte("c")}})

	require.Equal(t, OK, e.Do(b, ActPasteVert, -1, nil))
	// missing rows are created, short lines padded to the paste column
	assert.Equal(t, "axy\nb\nc", b.Text())
}

func TestVerticalPastePadsShortLines(t *testing.T) {
	e, b := testEditor(nil)
	fill(e, b, "long line", "x", "another")
	e.Do(b, ActGotoColumn, 5, nil)
	e.Clips.Put(0, &clip.Clip{Vertical: true, Lines: [][]byte{[]byte("A"), []byte("B"), []byte("C")}})

	require.Equal(t, OK, e.Do(b, ActPasteVert, -1, nil))
	assert.Equal(t, "longA line\nx   B\nanotCher", b.Text())
}

func TestGotoMark(t *testing.T) {
	e, b := testEditor(nil)
	fill(e, b, "one", "two")
	assert.Equal(t, Error, e.Do(b, ActGotoMark, -1, nil))

	e.Do(b, ActMark, 1, nil)
	e.Do(b, ActGotoLine, 2, nil)
	require.Equal(t, OK, e.Do(b, ActGotoMark, -1, nil))
	assert.Equal(t, 0, b.CurLine())
}

func TestMarkBlockFirst(t *testing.T) {
	e, b := testEditor(nil)
	fill(e, b, "text")
	assert.Equal(t, Error, e.Do(b, ActCopy, -1, nil))
	null := e.Display.(*display.Null)
	assert.Contains(t, null.Errors, MarkBlockFirst.String())
}

func TestThroughFilter(t *testing.T) {
	e, b := testEditor(nil)
	fill(e, b, "banana", "apple")
	e.Do(b, ActMark, 1, nil)
	e.Do(b, ActGotoLine, 2, nil)
	e.Do(b, ActMoveEOL, -1, nil)

	require.Equal(t, OK, e.Do(b, ActThrough, -1, sp("sort")))
	assert.Contains(t, b.Text(), "apple\nbanana")
	// the scratch clip is released on exit
	assert.Nil(t, e.Clips.Get(clip.Scratch))
}

func TestThroughFailingCommand(t *testing.T) {
	e, b := testEditor(nil)
	fill(e, b, "data")
	before := b.Text()

	assert.Equal(t, Error, e.Do(b, ActThrough, -1, sp("exit 3")))
	assert.Equal(t, before, b.Text())
	assert.Nil(t, e.Clips.Get(clip.Scratch))
}

func TestClipSaveLoadRoundTrip(t *testing.T) {
	e, b := testEditor(nil)
	fill(e, b, "alpha", "beta")
	e.Do(b, ActMark, 1, nil)
	e.Do(b, ActGotoLine, 2, nil)
	e.Do(b, ActMoveEOL, -1, nil)
	require.Equal(t, OK, e.Do(b, ActCopy, -1, nil))

	path := t.TempDir() + "/clip.txt"
	require.Equal(t, OK, e.Do(b, ActSaveClip, -1, sp(path)))

	e.Clips.Put(0, nil)
	require.Equal(t, OK, e.Do(b, ActOpenClip, -1, sp(path)))
	assert.Equal(t, []string{"alpha", "beta"}, clipStrings(e.Clips.Get(0)))
}
