package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadPrefs(t *testing.T) {
	e, b := testEditor(nil)
	b.Opt.TabSize = 3
	b.Opt.AutoIndent = true
	b.Opt.WordWrap = true
	path := t.TempDir() + "/prefs.yaml"

	require.Equal(t, OK, e.Do(b, ActSavePrefs, -1, sp(path)))

	e2, b2 := testEditor(nil)
	require.Equal(t, OK, e2.Do(b2, ActLoadPrefs, -1, sp(path)))
	assert.Equal(t, 3, b2.Opt.TabSize)
	assert.True(t, b2.Opt.AutoIndent)
	assert.True(t, b2.Opt.WordWrap)
}

func TestAutoPrefsOnSave(t *testing.T) {
	dir := t.TempDir()
	docs := t.TempDir()
	e, b := testEditor(nil)
	e.PrefsDir = dir
	b.Opt.TabSize = 5
	// an unnamed buffer has no extension to key the prefs on
	assert.Equal(t, Error, e.Do(b, ActSaveAutoPrefs, -1, nil))

	path := docs + "/f.go"
	require.Equal(t, OK, e.Do(b, ActSaveAs, -1, sp(path)))
	require.Equal(t, OK, e.Do(b, ActSaveAutoPrefs, -1, nil))

	// a fresh buffer opening a .go file picks the prefs up
	e2, b2 := testEditor(nil)
	e2.PrefsDir = dir
	require.Equal(t, OK, e2.Do(b2, ActOpen, 0, sp(path)))
	assert.Equal(t, 5, b2.Opt.TabSize)
}

func TestSaveDefPrefs(t *testing.T) {
	e, b := testEditor(nil)
	e.PrefsDir = t.TempDir()
	require.Equal(t, OK, e.Do(b, ActSaveDefPrefs, -1, nil))
}

func TestGlobalFlags(t *testing.T) {
	e, b := testEditor(nil)
	require.True(t, e.StatusBar)
	e.Do(b, ActStatusBar, -1, nil)
	assert.False(t, e.StatusBar)
	e.Do(b, ActFastGUI, 1, nil)
	assert.True(t, e.FastGUI)
	e.Do(b, ActVerboseMacros, 1, nil)
	assert.True(t, e.VerboseMacros)
	e.Do(b, ActTurbo, 100, nil)
	assert.Equal(t, 100, e.Turbo)
	e.Do(b, ActClipNumber, 7, nil)
	assert.Equal(t, 7, b.Opt.CurClip)
}

func TestAutoMatchRange(t *testing.T) {
	e, b := testEditor(nil)
	assert.Equal(t, InvalidMatchMode, e.Do(b, ActAutoMatchBracket, 16, nil))
	require.Equal(t, OK, e.Do(b, ActAutoMatchBracket, 5, nil))
	assert.Equal(t, 5, b.Opt.AutoMatch)
}

func TestCRLFPersistsOnSave(t *testing.T) {
	e, b := testEditor(nil)
	e.Do(b, ActInsertString, -1, sp("one"))
	e.Do(b, ActInsertLine, -1, nil)
	e.Do(b, ActInsertString, -1, sp("two"))
	e.Do(b, ActCRLF, 1, nil)

	path := t.TempDir() + "/crlf.txt"
	require.Equal(t, OK, e.Do(b, ActSaveAs, -1, sp(path)))

	e2, b2 := testEditor(nil)
	require.Equal(t, OK, e2.Do(b2, ActOpen, 0, sp(path)))
	assert.True(t, b2.IsCRLF)
	assert.Equal(t, "one\ntwo", b2.Text())
}
