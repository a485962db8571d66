package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetRowDirtyTracking(t *testing.T) {
	s := NewScreen(10, 3)
	var out bytes.Buffer

	s.SetRow(0, "hello", 0)
	assert.Equal(t, 1, s.Flush(&out))

	// same content: nothing to repaint
	s.SetRow(0, "hello", 0)
	assert.Equal(t, 0, s.Flush(&out))

	s.SetRow(0, "hellx", 0)
	s.SetRow(2, "tail", 0)
	assert.Equal(t, 2, s.Flush(&out))
}

func TestInvalidateRepaintsAll(t *testing.T) {
	s := NewScreen(4, 2)
	var out bytes.Buffer
	s.Flush(&out)
	s.Invalidate()
	assert.Equal(t, 2, s.Flush(&out))
}

func TestResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetRow(0, "abcd", 0)
	s.Resize(6, 3)
	var out bytes.Buffer
	assert.Equal(t, 3, s.Flush(&out))
	assert.Contains(t, out.String(), "abcd")
}

func TestWideRunesOccupyTwoCells(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetRow(0, "日x", 0)
	var out bytes.Buffer
	s.Flush(&out)
	assert.Contains(t, out.String(), "日x")
}

func TestNullDisplayRecords(t *testing.T) {
	n := NewNull()
	n.Message("hi")
	assert.False(t, n.Error(""))
	n.Error("bad")
	assert.Equal(t, []string{"hi"}, n.Messages)
	assert.Equal(t, []string{"bad"}, n.Errors)
	assert.Equal(t, 24, n.Lines())
}
