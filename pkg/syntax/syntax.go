// Package syntax defines the contract between the editing core and the
// syntax highlighter. The core never parses; it only threads per-line states
// through an Engine and caches byte-wise attributes for the current line.
package syntax

// State is the highlighter's state at the beginning of a line. It is opaque
// to the core: the only operations are storing it and comparing it.
type State int

// Attr is a per-byte highlight class.
type Attr byte

// Engine parses a single line given the state left by the previous line and
// returns the byte-wise attributes plus the state handed to the next line.
// Parse must be pure: same input line and state, same output.
type Engine interface {
	Name() string
	Parse(line []byte, incoming State) (attrs []Attr, outgoing State)
}

// Nop is an engine that highlights nothing. Useful as a stand-in when a
// ruleset fails to load.
type Nop struct{}

func (Nop) Name() string { return "none" }

func (Nop) Parse(line []byte, incoming State) ([]Attr, State) {
	return make([]Attr, len(line)), incoming
}
