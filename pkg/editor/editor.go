package editor

import (
	"log"
	"os"
	"sync/atomic"

	"github.com/amantus-ai/vibedit/pkg/clip"
	"github.com/amantus-ai/vibedit/pkg/display"
	"github.com/amantus-ai/vibedit/pkg/macro"
	"github.com/amantus-ai/vibedit/pkg/prompt"
	"github.com/amantus-ai/vibedit/pkg/storage"
	"github.com/amantus-ai/vibedit/pkg/syntax"
)

// SyntaxLoader resolves a ruleset name to an engine.
type SyntaxLoader func(name string) (syntax.Engine, error)

// Editor is the process-wide editing context: the buffer ring, the global
// options and the collaborators. All mutation happens on the caller's
// goroutine; only the stop flag is touched concurrently (by the signal
// handler).
type Editor struct {
	Display  display.Display
	Prompter prompt.Prompter

	Clips *clip.Registry

	buffers []*Buffer
	cur     int

	stop atomic.Bool

	// Global options.
	Turbo         int
	FastGUI       bool
	StatusBar     bool
	VerboseMacros bool
	ReqOrder      bool
	IOUTF8        bool
	EscapeTimeVal int

	// DoSyntax gates highlighting globally.
	DoSyntax     bool
	LoadSyntax   SyntaxLoader
	needAttrUpd  bool

	// PrefsDir is where auto-prefs live.
	PrefsDir string

	macros map[string]*macro.Macro

	watcher *storage.Watcher

	// ExitFunc terminates the process; tests replace it.
	ExitFunc func(code int)

	openNamedSticky  bool
	lastInsertedChar int
	dispatchDepth    int
}

// New creates an editor with one empty buffer.
func New(d display.Display, p prompt.Prompter) *Editor {
	e := &Editor{
		Display:          d,
		Prompter:         p,
		Clips:            clip.NewRegistry(),
		Turbo:            0,
		StatusBar:        true,
		DoSyntax:         true,
		EscapeTimeVal:    10,
		macros:           make(map[string]*macro.Macro),
		ExitFunc:         os.Exit,
		lastInsertedChar: ' ',
	}
	e.buffers = append(e.buffers, NewBuffer())
	return e
}

// Current returns the current buffer.
func (e *Editor) Current() *Buffer { return e.buffers[e.cur] }

// Buffers returns the open buffers in ring order.
func (e *Editor) Buffers() []*Buffer { return e.buffers }

// Stop requests cooperative cancellation. Safe to call from a signal
// handler goroutine.
func (e *Editor) Stop() { e.stop.Store(true) }

func (e *Editor) stopped() bool { return e.stop.Load() }

// EnableWatcher starts flagging buffers whose files change on disk.
func (e *Editor) EnableWatcher() error {
	w, err := storage.NewWatcher(func(path string) {
		for _, b := range e.buffers {
			if b.Filename == path {
				b.externallyModified = true
			}
		}
	})
	if err != nil {
		return err
	}
	e.watcher = w
	return nil
}

// CloseWatcher stops the file watcher if one is running.
func (e *Editor) CloseWatcher() {
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			log.Printf("[WARN] Failed to close file watcher: %v", err)
		}
		e.watcher = nil
	}
}

func (e *Editor) watchFile(path string) {
	if e.watcher == nil || path == "" {
		return
	}
	if err := e.watcher.Add(path); err != nil && os.Getenv("VIBEDIT_DEBUG") != "" {
		log.Printf("[DEBUG] Failed to watch %s: %v", path, err)
	}
}

// windowRows is the number of text rows; the last terminal row is the
// status line.
func (e *Editor) windowRows() int {
	r := e.Display.Lines() - 1
	if r < 1 {
		r = 1
	}
	return r
}

// printError reports s and returns whether it was an error at all.
func (e *Editor) printError(s Status) bool {
	if s == OK {
		return false
	}
	msg := s.String()
	if msg == "" {
		msg = "Error."
	}
	e.Display.Error(msg)
	return true
}

// withRecordingSuppressed runs a composite that recurses into the
// dispatcher without recording the inner actions.
func (e *Editor) withRecordingSuppressed(b *Buffer, fn func() Status) Status {
	saved := b.recording
	b.recording = false
	defer func() { b.recording = saved }()
	return fn()
}

// addBuffer inserts nb after the current buffer and makes it current.
func (e *Editor) addBuffer(nb *Buffer) {
	e.buffers = append(e.buffers[:e.cur+1], append([]*Buffer{nb}, e.buffers[e.cur+1:]...)...)
	e.cur++
}

// removeCurrent drops the current buffer and reports whether any remain.
func (e *Editor) removeCurrent() bool {
	e.buffers = append(e.buffers[:e.cur], e.buffers[e.cur+1:]...)
	if len(e.buffers) == 0 {
		return false
	}
	if e.cur >= len(e.buffers) {
		e.cur = 0
	}
	return true
}

// bufferNamed finds an open buffer by filename.
func (e *Editor) bufferNamed(name string) *Buffer {
	for _, b := range e.buffers {
		if b.Filename == name && name != "" {
			return b
		}
	}
	return nil
}

// modifiedBuffers reports whether any buffer has unsaved changes.
func (e *Editor) modifiedBuffers() bool {
	for _, b := range e.buffers {
		if b.Modified() {
			return true
		}
	}
	return false
}
