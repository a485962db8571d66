package editor

import (
	"fmt"
	"log"
	"os"

	"github.com/amantus-ai/vibedit/pkg/macro"
	"github.com/amantus-ai/vibedit/pkg/storage"
)

// recordAction appends the raw invocation to the buffer's macro before the
// action executes, so playback replays the same arguments.
func (e *Editor) recordAction(b *Buffer, a Action, c int, p *string) {
	if !b.recording {
		return
	}
	b.curMacro.Record(a.String(), c, p)
}

// playMacro replays a macro once. Playback aborts on the first non-OK
// outcome.
func (e *Editor) playMacro(b *Buffer, m *macro.Macro) Status {
	for _, st := range m.Steps {
		if e.stopped() {
			return Stopped
		}
		a, ok := ActionByName(st.Verb)
		if !ok {
			e.Display.Error(fmt.Sprintf("Unknown command: %s", st.Verb))
			return Error
		}
		var p *string
		if st.Str != nil {
			v := *st.Str
			p = &v
		}
		if res := e.Do(e.Current(), a, st.Num, p); res != OK {
			return res
		}
	}
	return OK
}

// executeNamedMacro runs a macro by name, loading and caching it on first
// use the way the macro registry works.
func (e *Editor) executeNamedMacro(b *Buffer, name string) Status {
	m, ok := e.macros[name]
	if !ok {
		data, err := storage.LoadBytes(name)
		if err != nil {
			if os.Getenv("VIBEDIT_DEBUG") != "" {
				log.Printf("[DEBUG] Failed to load macro %s: %v", name, err)
			}
			return IOError
		}
		parsed, err := macro.Parse(data)
		if err != nil {
			e.Display.Error(fmt.Sprintf("Bad macro %s: %v", name, err))
			return Error
		}
		m = parsed
		e.macros[name] = m
	}
	return e.playMacro(b, m)
}

// unloadMacros empties the named-macro cache.
func (e *Editor) unloadMacros() {
	e.macros = make(map[string]*macro.Macro)
}

// executeCommandLine parses and runs one command line, the Exec action's
// engine.
func (e *Editor) executeCommandLine(b *Buffer, line string) Status {
	m, err := macro.Parse([]byte(line))
	if err != nil {
		e.Display.Error(fmt.Sprintf("Bad command: %v", err))
		return Error
	}
	if m.Len() == 0 {
		return OK
	}
	if _, ok := ActionByName(m.Steps[0].Verb); !ok {
		// Not a built-in verb: try it as a named macro.
		return e.executeNamedMacro(b, m.Steps[0].Verb)
	}
	return e.playMacro(b, m)
}
