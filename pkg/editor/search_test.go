package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amantus-ai/vibedit/pkg/enc"
	"github.com/amantus-ai/vibedit/pkg/prompt"
)

func TestFindForwardAndBackward(t *testing.T) {
	e, b := testEditor(nil)
	e.Do(b, ActInsertString, -1, sp("one two one"))
	e.Do(b, ActMoveSOF, -1, nil)

	require.Equal(t, OK, e.Do(b, ActFind, -1, sp("one")))
	assert.Equal(t, 0, b.CurPos())

	// repeat moves past the current match
	require.Equal(t, OK, e.Do(b, ActRepeatLast, -1, nil))
	assert.Equal(t, 8, b.CurPos())

	e.Do(b, ActSearchBack, 1, nil)
	require.Equal(t, OK, e.Do(b, ActRepeatLast, -1, nil))
	assert.Equal(t, 0, b.CurPos())
}

func TestFindCaseSensitivity(t *testing.T) {
	e, b := testEditor(nil)
	e.Do(b, ActInsertString, -1, sp("Hello"))
	e.Do(b, ActMoveSOF, -1, nil)

	// case-insensitive by default
	require.Equal(t, OK, e.Do(b, ActFind, -1, sp("hello")))

	e.Do(b, ActMoveSOF, -1, nil)
	e.Do(b, ActCaseSearch, 1, nil)
	assert.Equal(t, Error, e.Do(b, ActFind, -1, sp("hello")))
}

func TestFindAcrossLines(t *testing.T) {
	e, b := testEditor(nil)
	e.Do(b, ActInsertString, -1, sp("first"))
	e.Do(b, ActInsertLine, -1, nil)
	e.Do(b, ActInsertString, -1, sp("target here"))
	e.Do(b, ActMoveSOF, -1, nil)

	require.Equal(t, OK, e.Do(b, ActFind, -1, sp("target")))
	assert.Equal(t, 1, b.CurLine())
	assert.Equal(t, 0, b.CurPos())
}

func TestFindRegExp(t *testing.T) {
	e, b := testEditor(nil)
	e.Do(b, ActInsertString, -1, sp("abc123def"))
	e.Do(b, ActMoveSOF, -1, nil)

	require.Equal(t, OK, e.Do(b, ActFindRegExp, -1, sp("[0-9]+")))
	assert.Equal(t, 3, b.CurPos())

	// invalid pattern
	e.Do(b, ActMoveSOF, -1, nil)
	assert.Equal(t, Error, e.Do(b, ActFindRegExp, -1, sp("[")))
}

func TestReplaceAll(t *testing.T) {
	e, b := testEditor(&prompt.Scripted{Strings: []string{"aaa", "cc"}})
	e.Do(b, ActInsertString, -1, sp("aaa bbb aaa"))
	e.Do(b, ActMoveSOF, -1, nil)

	require.Equal(t, OK, e.Do(b, ActReplaceAll, -1, nil))
	assert.Equal(t, "cc bbb cc", b.Text())

	// one undo step reverts every replacement
	e.Do(b, ActUndo, -1, nil)
	assert.Equal(t, "aaa bbb aaa", b.Text())
}

func TestReplaceOnce(t *testing.T) {
	e, b := testEditor(&prompt.Scripted{Strings: []string{"bbb", "x"}})
	e.Do(b, ActInsertString, -1, sp("aaa bbb aaa"))
	e.Do(b, ActMoveSOF, -1, nil)

	require.Equal(t, OK, e.Do(b, ActReplaceOnce, -1, nil))
	assert.Equal(t, "aaa x aaa", b.Text())
}

func TestReplaceRegExpBackreference(t *testing.T) {
	e, b := testEditor(&prompt.Scripted{Strings: []string{`(\w+)@`, `<\1>@`}})
	e.Do(b, ActInsertString, -1, sp("mail bob@host"))
	e.Do(b, ActMoveSOF, -1, nil)
	b.lastWasRegexp = true

	require.Equal(t, OK, e.Do(b, ActReplaceAll, -1, nil))
	assert.Equal(t, "mail <bob>@host", b.Text())
}

func TestReplaceAllEncodingGuard(t *testing.T) {
	e, b := testEditor(&prompt.Scripted{Strings: []string{"é", "e"}})
	b.Opt.UTF8Auto = false
	e.Do(b, ActInsertChar, 0xE9, nil)
	require.Equal(t, enc.EightBit, b.Encoding)
	before := b.Text()

	assert.Equal(t, IncompatibleSearchStringEncoding, e.Do(b, ActReplaceAll, -1, nil))
	assert.Equal(t, before, b.Text())
}

func TestFindEncodingGuard(t *testing.T) {
	e, b := testEditor(nil)
	b.Opt.UTF8Auto = false
	e.Do(b, ActInsertChar, 0xE9, nil)

	assert.Equal(t, IncompatibleSearchStringEncoding, e.Do(b, ActFind, -1, sp("é")))
}

func TestNoSearchString(t *testing.T) {
	e, b := testEditor(nil)
	assert.Equal(t, NoSearchString, e.Do(b, ActRepeatLast, -1, nil))
}

func TestMatchBracket(t *testing.T) {
	e, b := testEditor(nil)
	e.Do(b, ActInsertString, -1, sp("f(a, (b))"))
	e.Do(b, ActMoveSOF, -1, nil)
	e.Do(b, ActMoveRight, 1, nil) // on the first '('

	require.Equal(t, OK, e.Do(b, ActMatchBracket, -1, nil))
	assert.Equal(t, 8, b.CurPos())
	require.Equal(t, OK, e.Do(b, ActMatchBracket, -1, nil))
	assert.Equal(t, 1, b.CurPos())
}

func TestCaseConversions(t *testing.T) {
	e, b := testEditor(nil)
	e.Do(b, ActInsertString, -1, sp("hello world"))
	e.Do(b, ActMoveSOF, -1, nil)

	require.Equal(t, OK, e.Do(b, ActToUpper, -1, nil))
	assert.Equal(t, "HELLO world", b.Text())

	require.Equal(t, OK, e.Do(b, ActCapitalize, -1, nil))
	assert.Equal(t, "HELLO World", b.Text())

	e.Do(b, ActMoveSOF, -1, nil)
	require.Equal(t, OK, e.Do(b, ActToLower, 2, nil))
	assert.Equal(t, "hello world", b.Text())
}

func TestCenter(t *testing.T) {
	e, b := testEditor(nil)
	b.Opt.RightMargin = 11
	e.Do(b, ActInsertString, -1, sp("hey"))
	e.Do(b, ActMoveSOF, -1, nil)
	require.Equal(t, OK, e.Do(b, ActCenter, -1, nil))
	assert.Equal(t, "    hey", b.Text())
}

func TestParagraphReflow(t *testing.T) {
	e, b := testEditor(nil)
	b.Opt.RightMargin = 12
	e.Do(b, ActInsertString, -1, sp("the quick brown fox jumps"))
	e.Do(b, ActMoveSOF, -1, nil)

	require.Equal(t, OK, e.Do(b, ActParagraph, -1, nil))
	assert.Equal(t, "the quick\nbrown fox\njumps", b.Text())
}

func TestShift(t *testing.T) {
	e, b := testEditor(nil)
	e.Do(b, ActInsertString, -1, sp("code"))

	require.Equal(t, OK, e.Do(b, ActShift, -1, sp(">2s")))
	assert.Equal(t, "  code", b.Text())

	require.Equal(t, OK, e.Do(b, ActShift, -1, sp("<2s")))
	assert.Equal(t, "code", b.Text())

	// left shift with insufficient whitespace changes nothing
	assert.Equal(t, Error, e.Do(b, ActShift, -1, sp("<1s")))
	assert.Equal(t, "code", b.Text())
}

func TestAutoComplete(t *testing.T) {
	e, b := testEditor(nil)
	e.Do(b, ActInsertString, -1, sp("elephant "))
	e.Do(b, ActInsertString, -1, sp("ele"))

	require.Equal(t, OK, e.Do(b, ActAutoComplete, -1, nil))
	assert.Equal(t, "elephant elephant", b.Text())
}

func TestAutoCompleteNoMatch(t *testing.T) {
	e, b := testEditor(nil)
	e.Do(b, ActInsertString, -1, sp("zzz"))
	require.Equal(t, OK, e.Do(b, ActAutoComplete, -1, nil))
	assert.Equal(t, "zzz", b.Text())
}
