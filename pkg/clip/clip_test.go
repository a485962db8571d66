package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextRoundTrip(t *testing.T) {
	c := &Clip{Lines: [][]byte{[]byte("one"), []byte("two")}}
	assert.Equal(t, "one\ntwo", string(c.Text(false)))
	assert.Equal(t, "one\r\ntwo", string(c.Text(true)))

	back := FromText([]byte("one\r\ntwo"))
	assert.Equal(t, 2, back.Height())
	assert.Equal(t, "one", string(back.Lines[0]))
	assert.Equal(t, "two", string(back.Lines[1]))
}

func TestFromTextEmpty(t *testing.T) {
	c := FromText(nil)
	assert.Equal(t, 1, c.Height())
	assert.Empty(t, c.Lines[0])
}

func TestWidth(t *testing.T) {
	c := &Clip{Vertical: true, Lines: [][]byte{[]byte("ab"), []byte("abcd")}}
	assert.Equal(t, 4, c.Width())
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get(0))
	c := &Clip{Lines: [][]byte{[]byte("x")}}
	r.Put(3, c)
	assert.Same(t, c, r.Get(3))
	r.Put(Scratch, c)
	assert.Same(t, c, r.Get(Scratch))
	r.Put(3, nil)
	assert.Nil(t, r.Get(3))
}
