package editor

import (
	"github.com/amantus-ai/vibedit/pkg/clip"
	"github.com/amantus-ai/vibedit/pkg/macro"
	"github.com/amantus-ai/vibedit/pkg/storage"
)

// loadClip reads a file into clip n.
func (e *Editor) loadClip(b *Buffer, n int, path string) Status {
	data, err := storage.LoadBytes(path)
	if err != nil {
		return IOError
	}
	e.Clips.Put(n, clip.FromText(data))
	return OK
}

// saveClip writes clip n using the buffer's line-terminator convention.
func (e *Editor) saveClip(b *Buffer, n int, path string) Status {
	c := e.Clips.Get(n)
	if c == nil {
		return Error
	}
	if err := storage.SaveBytes(path, c.Text(b.IsCRLF)); err != nil {
		return IOError
	}
	return OK
}

// saveMacro serializes the current macro.
func (e *Editor) saveMacro(b *Buffer, path string) Status {
	if err := storage.SaveBytes(path, b.curMacro.Marshal(b.IsCRLF)); err != nil {
		return IOError
	}
	return OK
}

// openMacro replaces the current macro with a serialized one.
func (e *Editor) openMacro(b *Buffer, path string) Status {
	data, err := storage.LoadBytes(path)
	if err != nil {
		return IOError
	}
	m, err := macro.Parse(data)
	if err != nil {
		return Error
	}
	b.curMacro = m
	return OK
}

// saveAutoPrefsFor writes the buffer's options as the auto-prefs for name.
func (e *Editor) saveAutoPrefsFor(b *Buffer, name string) Status {
	if name == "" || e.PrefsDir == "" {
		return Error
	}
	if err := storage.SavePrefs(storage.AutoPrefsPath(e.PrefsDir, name), b.Opt.toPrefs(b.synName)); err != nil {
		return IOError
	}
	return OK
}
