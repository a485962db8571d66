// Package textstore holds document text as a doubly-linked list of line
// descriptors between two sentinel nodes. A store is never empty: even an
// empty document has one empty line.
package textstore

import "github.com/amantus-ai/vibedit/pkg/syntax"

// Line is one line of text plus its metadata. Data never contains line
// terminators; those belong to the store structure.
type Line struct {
	Data []byte
	// Highlight is the syntax state incoming to this line, i.e. the state
	// produced by parsing every previous line.
	Highlight syntax.State

	prev, next *Line
	sentinel   bool
}

// Len returns the byte length of the line.
func (l *Line) Len() int { return len(l.Data) }

// Prev returns the previous line, or nil at the first line.
func (l *Line) Prev() *Line {
	if l.prev == nil || l.prev.sentinel {
		return nil
	}
	return l.prev
}

// Next returns the next line, or nil at the last line.
func (l *Line) Next() *Line {
	if l.next == nil || l.next.sentinel {
		return nil
	}
	return l.next
}

// Insert splices data into the line at pos. pos must be within [0, Len].
func (l *Line) Insert(pos int, data []byte) {
	if len(data) == 0 {
		return
	}
	l.Data = append(l.Data, make([]byte, len(data))...)
	copy(l.Data[pos+len(data):], l.Data[pos:])
	copy(l.Data[pos:], data)
}

// Delete removes n bytes at pos and returns them as a fresh slice.
func (l *Line) Delete(pos, n int) []byte {
	if pos+n > len(l.Data) {
		n = len(l.Data) - pos
	}
	if n <= 0 {
		return nil
	}
	removed := make([]byte, n)
	copy(removed, l.Data[pos:pos+n])
	l.Data = append(l.Data[:pos], l.Data[pos+n:]...)
	return removed
}

// Store is the ordered sequence of lines.
type Store struct {
	head, tail Line
	count      int
}

// New creates a store holding a single empty line.
func New() *Store {
	s := &Store{}
	s.head.sentinel = true
	s.tail.sentinel = true
	s.head.next = &s.tail
	s.tail.prev = &s.head
	s.Append(&Line{})
	return s
}

// Count returns the number of lines.
func (s *Store) Count() int { return s.count }

// First returns the first line.
func (s *Store) First() *Line { return s.head.Next() }

// Last returns the last line.
func (s *Store) Last() *Line { return s.tail.prev }

// Nth returns the n-th line (0-based), or nil when out of range. O(n): it
// walks the list from the first line.
func (s *Store) Nth(n int) *Line {
	if n < 0 || n >= s.count {
		return nil
	}
	l := s.First()
	for ; n > 0; n-- {
		l = l.Next()
	}
	return l
}

// IndexOf returns the 0-based index of l. O(n).
func (s *Store) IndexOf(l *Line) int {
	i := 0
	for cur := s.First(); cur != nil; cur = cur.Next() {
		if cur == l {
			return i
		}
		i++
	}
	return -1
}

// Append adds l as the last line.
func (s *Store) Append(l *Line) {
	s.insertBetween(l, s.tail.prev, &s.tail)
}

// InsertAfter splices l after ref.
func (s *Store) InsertAfter(ref, l *Line) {
	s.insertBetween(l, ref, ref.next)
}

// InsertBefore splices l before ref.
func (s *Store) InsertBefore(ref, l *Line) {
	s.insertBetween(l, ref.prev, ref)
}

func (s *Store) insertBetween(l, a, b *Line) {
	l.prev = a
	l.next = b
	a.next = l
	b.prev = l
	s.count++
}

// Remove unlinks l. The store is left empty-but-valid only by callers that
// immediately re-insert; external callers must preserve the one-line minimum.
func (s *Store) Remove(l *Line) {
	l.prev.next = l.next
	l.next.prev = l.prev
	l.prev, l.next = nil, nil
	s.count--
}

// Split breaks l at pos: l keeps the prefix and a new successor line holding
// the suffix is returned. The new line inherits no highlight state; callers
// poke the correct one in.
func (s *Store) Split(l *Line, pos int) *Line {
	suffix := make([]byte, len(l.Data)-pos)
	copy(suffix, l.Data[pos:])
	l.Data = l.Data[:pos]
	nl := &Line{Data: suffix}
	s.InsertAfter(l, nl)
	return nl
}

// Join appends the next line's bytes to l and removes the next line. It
// returns the byte position of the seam, or -1 if l is the last line.
func (s *Store) Join(l *Line) int {
	next := l.Next()
	if next == nil {
		return -1
	}
	seam := len(l.Data)
	l.Data = append(l.Data, next.Data...)
	s.Remove(next)
	return seam
}

// Bytes flattens the store with the given line separator. Used by clip and
// file round-trips.
func (s *Store) Bytes(sep []byte) []byte {
	var out []byte
	for l := s.First(); l != nil; l = l.Next() {
		out = append(out, l.Data...)
		if l.Next() != nil {
			out = append(out, sep...)
		}
	}
	return out
}
