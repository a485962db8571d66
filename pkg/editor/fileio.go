package editor

import (
	"errors"
	"log"
	"os"

	"github.com/amantus-ai/vibedit/pkg/storage"
	"github.com/amantus-ai/vibedit/pkg/syntax"
)

// loadFileInBuffer replaces the buffer content with the file at path.
func (e *Editor) loadFileInBuffer(b *Buffer, path string) Status {
	doc, err := storage.LoadDocument(path, b.Opt.Binary || b.Opt.PreserveCR)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrIsDirectory):
		return FileIsDirectory
	case errors.Is(err, storage.ErrTooLarge):
		return FileIsTooLarge
	default:
		return IOError
	}
	b.setText(doc.Lines)
	b.IsCRLF = doc.IsCRLF
	b.externallyModified = false
	if b.syn != nil {
		e.updateSyntaxStates(b, 0, b.store.First(), nil)
	}
	return OK
}

// saveBufferToFile writes the buffer to path. The save point moves on
// success.
func (e *Editor) saveBufferToFile(b *Buffer, path string) Status {
	var lines [][]byte
	for ld := b.store.First(); ld != nil; ld = ld.Next() {
		lines = append(lines, ld.Data)
	}
	if err := storage.SaveDocument(path, lines, b.IsCRLF); err != nil {
		log.Printf("[ERROR] Failed to save %s: %v", path, err)
		return IOError
	}
	b.undo.SetSavePoint()
	b.externallyModified = false
	return OK
}

// changeFilename renames the buffer and rewires the external-change
// watcher.
func (e *Editor) changeFilename(b *Buffer, path string) {
	if e.watcher != nil && b.Filename != "" {
		e.watcher.Remove(b.Filename)
	}
	b.Filename = path
	e.watchFile(path)
}

// loadAutoPrefs applies the auto-prefs for the given extension, if they
// exist, and loads the associated syntax.
func (e *Editor) loadAutoPrefs(b *Buffer, ext string) Status {
	if ext == "" || e.PrefsDir == "" {
		return OK
	}
	p, err := storage.LoadPrefs(storage.AutoPrefsPath(e.PrefsDir, ext))
	if err != nil {
		if os.IsNotExist(err) {
			return OK
		}
		return IOError
	}
	b.Opt.fromPrefs(p)
	name := p.Syntax
	if name == "" {
		name = ext
	}
	e.loadSyntaxByName(b, name)
	return OK
}

// loadSyntaxByName attaches a ruleset, falling back to none when the loader
// cannot resolve it.
func (e *Editor) loadSyntaxByName(b *Buffer, name string) Status {
	if !e.DoSyntax || e.LoadSyntax == nil {
		return SyntaxNotEnabled
	}
	eng, err := e.LoadSyntax(name)
	if err != nil || eng == nil {
		b.syn = nil
		b.synName = ""
		return Error
	}
	b.syn = eng
	b.synName = name
	b.attrValid = false
	for ld := b.store.First(); ld != nil; ld = ld.Next() {
		ld.Highlight = syntax.State(0)
	}
	e.updateSyntaxStates(b, 0, b.store.First(), nil)
	e.needAttrUpd = true
	return OK
}

// savePrefs and loadPrefs round-trip the option record through a prefs
// file.
func (e *Editor) savePrefs(b *Buffer, path string) Status {
	if err := storage.SavePrefs(path, b.Opt.toPrefs(b.synName)); err != nil {
		return IOError
	}
	return OK
}

func (e *Editor) loadPrefs(b *Buffer, path string) Status {
	p, err := storage.LoadPrefs(path)
	if err != nil {
		return IOError
	}
	b.Opt.fromPrefs(p)
	if p.Syntax != "" {
		e.loadSyntaxByName(b, p.Syntax)
	}
	return OK
}
