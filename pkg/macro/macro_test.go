package macro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func TestRecordCopiesString(t *testing.T) {
	m := New()
	s := "find me"
	m.Record("Find", NoArg, &s)
	s = "mutated"
	assert.Equal(t, "find me", *m.Steps[0].Str)
}

func TestOptimizeMergesInsertChars(t *testing.T) {
	m := New()
	m.Record(VerbInsertChar, 'h', nil)
	m.Record(VerbInsertChar, 'i', nil)
	m.Record("LineDown", 2, nil)
	m.Record(VerbInsertChar, 'x', nil)
	m.Optimize()

	require.Len(t, m.Steps, 3)
	assert.Equal(t, VerbInsertString, m.Steps[0].Verb)
	assert.Equal(t, "hi", *m.Steps[0].Str)
	assert.Equal(t, "LineDown", m.Steps[1].Verb)
	// a lone insertion stays a character step
	assert.Equal(t, VerbInsertChar, m.Steps[2].Verb)
	assert.Equal(t, int('x'), m.Steps[2].Num)
}

func TestMarshalParseRoundTrip(t *testing.T) {
	m := New()
	m.Record("InsertString", NoArg, str("hello \"world\""))
	m.Record("LineDown", 3, nil)
	m.Record("MoveEOL", NoArg, nil)

	data := m.Marshal(false)
	back, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, back.Steps, 3)
	assert.Equal(t, m.Steps, back.Steps)

	// CRLF output parses identically
	back2, err := Parse(m.Marshal(true))
	require.NoError(t, err)
	assert.Equal(t, m.Steps, back2.Steps)
}

func TestParseSkipsBlankAndComments(t *testing.T) {
	m, err := Parse([]byte("# a comment\n\nLineUp 2\n"))
	require.NoError(t, err)
	require.Len(t, m.Steps, 1)
	assert.Equal(t, "LineUp", m.Steps[0].Verb)
	assert.Equal(t, 2, m.Steps[0].Num)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("GotoLine twelve"))
	assert.Error(t, err)
	_, err = Parse([]byte("Find \"unterminated"))
	assert.Error(t, err)
}
