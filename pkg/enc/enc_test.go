package enc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want Kind
	}{
		{"empty", nil, ASCII},
		{"plain", []byte("hello"), ASCII},
		{"utf8", []byte("héllo"), UTF8},
		{"latin1", []byte{'h', 0xE9, 'l'}, EightBit},
		{"truncated utf8", []byte{0xC3}, EightBit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.in))
		})
	}
}

func TestNextPrevPos(t *testing.T) {
	line := []byte("aé\tz")
	assert.Equal(t, 1, NextPos(line, 0, UTF8))
	assert.Equal(t, 3, NextPos(line, 1, UTF8))
	assert.Equal(t, 1, PrevPos(line, 3, UTF8))
	assert.Equal(t, 0, PrevPos(line, 1, UTF8))
	// 8-bit buffers advance byte by byte
	assert.Equal(t, 2, NextPos(line, 1, EightBit))
	// past end of line moves one byte at a time (free form)
	assert.Equal(t, 9, NextPos(line, 8, UTF8))
}

func TestCharAt(t *testing.T) {
	line := []byte("aé")
	assert.Equal(t, 'a', CharAt(line, 0, UTF8))
	assert.Equal(t, 'é', CharAt(line, 1, UTF8))
	assert.Equal(t, rune(0xC3), CharAt(line, 1, EightBit))
}

func TestWidthTabs(t *testing.T) {
	line := []byte("a\tb")
	assert.Equal(t, 0, Width(line, 0, 8, ASCII))
	assert.Equal(t, 1, Width(line, 1, 8, ASCII))
	assert.Equal(t, 8, Width(line, 2, 8, ASCII))
	assert.Equal(t, 9, Width(line, 3, 8, ASCII))
	// free-form positions past EOL count one column per byte
	assert.Equal(t, 11, Width(line, 5, 8, ASCII))
}

func TestPosOfColumn(t *testing.T) {
	line := []byte("a\tbc")
	pos, reached := PosOfColumn(line, 8, 8, ASCII)
	assert.Equal(t, 2, pos)
	assert.Equal(t, 8, reached)
	// landing inside the tab stays before it
	pos, reached = PosOfColumn(line, 4, 8, ASCII)
	assert.Equal(t, 1, pos)
	assert.Equal(t, 1, reached)
}

func TestChars(t *testing.T) {
	line := []byte("héllo")
	assert.Equal(t, 2, Chars(line, 3, UTF8))
	assert.Equal(t, 3, Chars(line, 3, EightBit))
}

func TestClassOf(t *testing.T) {
	assert.Equal(t, ClassLetter, ClassOf('x'))
	assert.Equal(t, ClassLetter, ClassOf('_'))
	assert.Equal(t, ClassDigit, ClassOf('7'))
	assert.Equal(t, ClassSpace, ClassOf(' '))
	assert.Equal(t, ClassPunct, ClassOf('.'))
}
