package editor

import (
	"bytes"
	"regexp"
	"sort"
	"strings"

	"github.com/amantus-ai/vibedit/pkg/enc"
)

// The find/replace machinery. The cursor is the search head: a successful
// find leaves it on the first byte of the match and remembers the match
// extent for the following replace.

// lastMatch captures the most recent successful match.
type lastMatch struct {
	len        int
	empty      bool
	submatches [][]byte
}

// checkSearchEncoding applies the encoding compatibility rule for a search
// or replace string.
func checkSearchEncoding(b *Buffer, s string) bool {
	k := enc.Detect([]byte(s))
	return k == enc.ASCII || b.Encoding == enc.ASCII || k == b.Encoding
}

// checkReplaceEncoding additionally validates the replace string against
// the search string.
func checkReplaceEncoding(b *Buffer, search, replace string) bool {
	sk := enc.Detect([]byte(search))
	rk := enc.Detect([]byte(replace))
	if rk != enc.ASCII && b.Encoding != enc.ASCII && rk != b.Encoding {
		return false
	}
	if sk != enc.ASCII && rk != enc.ASCII && sk != rk {
		return false
	}
	return true
}

// doFind searches for the buffer's find string from the cursor. skip moves
// off the current position first, which is what repeated searches need.
func (e *Editor) doFind(b *Buffer, isRegexp, skip bool) Status {
	if !b.hasFindString || b.findString == "" {
		return NoSearchString
	}
	if isRegexp {
		return e.findRegexp(b, skip)
	}
	return e.findPlain(b, skip)
}

func (e *Editor) findPlain(b *Buffer, skip bool) Status {
	pat := []byte(b.findString)
	fold := !b.Opt.CaseSearch
	if fold {
		pat = bytes.ToLower(pat)
	}

	match := func(line []byte, from int, backward bool) int {
		hay := line
		if fold {
			hay = bytes.ToLower(hay)
		}
		if backward {
			if from > len(hay) {
				from = len(hay)
			}
			return bytes.LastIndex(hay[:from], pat)
		}
		if from > len(hay) {
			return -1
		}
		i := bytes.Index(hay[from:], pat)
		if i < 0 {
			return -1
		}
		return from + i
	}

	if !b.Opt.SearchBack {
		from := b.curPos
		if skip {
			from = enc.NextPos(b.curLD.Data, b.curPos, b.Encoding)
		}
		line := b.curLine
		for ld := b.curLD; ld != nil; ld = ld.Next() {
			if i := match(ld.Data, from, false); i >= 0 {
				b.setLine(line)
				e.gotoPos(b, i)
				b.last = lastMatch{len: len(b.findString), empty: len(b.findString) == 0}
				return OK
			}
			from = 0
			line++
		}
		return NotFound
	}

	// Backward: LastIndex over line[:from] already excludes the current
	// position, so only a non-skipping search widens the window.
	from := b.curPos
	if !skip {
		from += len(pat)
	}
	line := b.curLine
	for ld := b.curLD; ld != nil; ld = ld.Prev() {
		if i := match(ld.Data, from, true); i >= 0 {
			b.setLine(line)
			e.gotoPos(b, i)
			b.last = lastMatch{len: len(b.findString), empty: len(b.findString) == 0}
			return OK
		}
		line--
		if prev := ld.Prev(); prev != nil {
			from = prev.Len() + len(pat)
		}
	}
	return NotFound
}

func (e *Editor) compileFind(b *Buffer) (*regexp.Regexp, Status) {
	pat := b.findString
	if !b.Opt.CaseSearch {
		pat = "(?i)" + pat
	}
	re, err := regexp.Compile(pat)
	if err != nil {
		return nil, InvalidString
	}
	return re, OK
}

func (e *Editor) findRegexp(b *Buffer, skip bool) Status {
	re, st := e.compileFind(b)
	if st != OK {
		return st
	}

	record := func(line []byte, loc []int) {
		m := lastMatch{len: loc[1] - loc[0], empty: loc[1] == loc[0]}
		subs := re.FindSubmatch(line[loc[0]:loc[1]])
		for _, s := range subs {
			m.submatches = append(m.submatches, append([]byte{}, s...))
		}
		b.last = m
	}

	if !b.Opt.SearchBack {
		from := b.curPos
		if skip {
			from = enc.NextPos(b.curLD.Data, b.curPos, b.Encoding)
		}
		line := b.curLine
		for ld := b.curLD; ld != nil; ld = ld.Next() {
			if from <= ld.Len() {
				if loc := re.FindIndex(ld.Data[from:]); loc != nil {
					at := from + loc[0]
					b.setLine(line)
					e.gotoPos(b, at)
					record(ld.Data, []int{at, from + loc[1]})
					return OK
				}
			}
			from = 0
			line++
		}
		return NotFound
	}

	limit := b.curPos
	if !skip {
		limit = b.curPos + 1
	}
	line := b.curLine
	for ld := b.curLD; ld != nil; ld = ld.Prev() {
		best := -1
		var bestLoc []int
		for _, loc := range re.FindAllIndex(ld.Data, -1) {
			if loc[0] < limit {
				best = loc[0]
				bestLoc = loc
			}
		}
		if best >= 0 {
			b.setLine(line)
			e.gotoPos(b, best)
			record(ld.Data, bestLoc)
			return OK
		}
		line--
		if prev := ld.Prev(); prev != nil {
			limit = prev.Len() + 1
		}
	}
	return NotFound
}

// expandReplacement substitutes \0..\9 backreferences from the last regexp
// match. A backslash before any other character is literal.
func expandReplacement(with string, subs [][]byte) []byte {
	var out []byte
	for i := 0; i < len(with); i++ {
		if with[i] == '\\' && i+1 < len(with) {
			d := with[i+1]
			if d >= '0' && d <= '9' {
				n := int(d - '0')
				if n < len(subs) {
					out = append(out, subs[n]...)
				}
				i++
				continue
			}
			out = append(out, d)
			i++
			continue
		}
		out = append(out, with[i])
	}
	return out
}

// doReplace replaces the last match, which starts at the cursor.
func (e *Editor) doReplace(b *Buffer, with string, isRegexp bool) Status {
	if b.Encoding == enc.ASCII {
		b.Encoding = enc.Detect([]byte(with))
	}
	repl := []byte(with)
	if isRegexp {
		repl = expandReplacement(with, b.last.submatches)
	}

	e.freezeAttributes(b)
	b.undo.Begin()
	if b.last.len > 0 {
		e.deleteStream(b, b.curLD, b.curLine, b.curPos, b.last.len)
	}
	e.insertStream(b, b.curLD, b.curLine, b.curPos, repl)
	b.undo.End()

	e.gotoPos(b, b.curPos+len(repl))
	e.reparseCurrent(b)
	if b.syn != nil {
		e.needAttrUpd = true
		e.updateSyntaxStates(b, b.curLine, b.curLD, nil)
	}
	return OK
}

// bracket pairs for MatchBracket.
var bracketPairs = map[byte]struct {
	other byte
	dir   int
}{
	'(': {')', 1}, '[': {']', 1}, '{': {'}', 1}, '<': {'>', 1},
	')': {'(', -1}, ']': {'[', -1}, '}': {'{', -1}, '>': {'<', -1},
}

// matchBracket moves to the bracket matching the one under the cursor.
func (e *Editor) matchBracket(b *Buffer) Status {
	if b.curPos >= b.lineLen() {
		return NotFound
	}
	c := b.curLD.Data[b.curPos]
	pair, ok := bracketPairs[c]
	if !ok {
		return NotFound
	}

	depth := 0
	line := b.curLine
	ld := b.curLD
	pos := b.curPos
	for ld != nil {
		data := ld.Data
		for pos >= 0 && pos < len(data) {
			switch data[pos] {
			case c:
				depth++
			case pair.other:
				depth--
				if depth == 0 {
					b.setLine(line)
					e.gotoPos(b, pos)
					return OK
				}
			}
			pos += pair.dir
		}
		if pair.dir > 0 {
			ld = ld.Next()
			line++
			pos = 0
		} else {
			ld = ld.Prev()
			line--
			if ld != nil {
				pos = ld.Len() - 1
			}
		}
	}
	return NotFound
}

// harvestPrefix returns the word fragment immediately left of the cursor
// and its starting byte position.
func harvestPrefix(b *Buffer) (string, int) {
	start := minInt(b.curPos, b.lineLen())
	for start > 0 {
		p := enc.PrevPos(b.curLD.Data, start, b.Encoding)
		if !enc.IsWord(enc.CharAt(b.curLD.Data, p, b.Encoding)) {
			break
		}
		start = p
	}
	return string(b.curLD.Data[start:minInt(b.curPos, b.lineLen())]), start
}

// collectCompletions gathers every word with the given prefix across all
// buffers, sorted and deduplicated.
func (e *Editor) collectCompletions(prefix string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, buf := range e.buffers {
		for ld := buf.store.First(); ld != nil; ld = ld.Next() {
			data := ld.Data
			i := 0
			for i < len(data) {
				if !enc.IsWord(enc.CharAt(data, i, buf.Encoding)) {
					i = enc.NextPos(data, i, buf.Encoding)
					continue
				}
				j := i
				for j < len(data) && enc.IsWord(enc.CharAt(data, j, buf.Encoding)) {
					j = enc.NextPos(data, j, buf.Encoding)
				}
				w := string(data[i:j])
				if w != prefix && strings.HasPrefix(w, prefix) && !seen[w] {
					seen[w] = true
					out = append(out, w)
				}
				i = j
			}
		}
	}
	sort.Strings(out)
	return out
}
