package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDocument(t *testing.T) {
	d := SplitDocument([]byte("one\ntwo\n"), false)
	require.Len(t, d.Lines, 2)
	assert.Equal(t, "one", string(d.Lines[0]))
	assert.False(t, d.IsCRLF)

	d = SplitDocument([]byte("one\r\ntwo\r\n"), false)
	require.Len(t, d.Lines, 2)
	assert.Equal(t, "one", string(d.Lines[0]))
	assert.True(t, d.IsCRLF)

	// mixed endings are not CRLF
	d = SplitDocument([]byte("one\r\ntwo\n"), false)
	assert.False(t, d.IsCRLF)

	// binary keeps CRs
	d = SplitDocument([]byte("one\r\n"), true)
	assert.Equal(t, "one\r", string(d.Lines[0]))
	assert.False(t, d.IsCRLF)

	// empty input still yields one line
	d = SplitDocument(nil, false)
	require.Len(t, d.Lines, 1)
}

func TestDocumentRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	lines := [][]byte{[]byte("alpha"), []byte("beta")}

	require.NoError(t, SaveDocument(path, lines, false))
	d, err := LoadDocument(path, false)
	require.NoError(t, err)
	assert.Equal(t, lines, d.Lines)

	require.NoError(t, SaveDocument(path, lines, true))
	d, err = LoadDocument(path, false)
	require.NoError(t, err)
	assert.Equal(t, lines, d.Lines)
	assert.True(t, d.IsCRLF)
}

func TestLoadDocumentErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadDocument(dir, false)
	assert.ErrorIs(t, err, ErrIsDirectory)

	_, err = LoadDocument(filepath.Join(dir, "missing"), false)
	assert.True(t, os.IsNotExist(err))

	big := filepath.Join(dir, "big")
	require.NoError(t, os.WriteFile(big, make([]byte, 128), 0644))
	old := MaxFileSize
	MaxFileSize = 64
	defer func() { MaxFileSize = old }()
	_, err = LoadDocument(big, false)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestPrefsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := AutoPrefsPath(dir, "go")
	p := &Prefs{Tabs: true, TabSize: 4, AutoIndent: true, Syntax: "go"}

	require.NoError(t, SavePrefs(path, p))
	back, err := LoadPrefs(path)
	require.NoError(t, err)
	assert.Equal(t, p, back)
}
