package editor

import (
	"strings"
	"unicode"

	"github.com/amantus-ai/vibedit/pkg/enc"
)

type caseMode int

const (
	caseUpper caseMode = iota
	caseLower
	caseCapitalize
)

// caseWord rewrites the word at the cursor and leaves the cursor just past
// it. Non-word characters under the cursor are skipped first.
func (e *Editor) caseWord(b *Buffer, mode caseMode) Status {
	for b.curPos < b.lineLen() && !enc.IsWord(enc.CharAt(b.curLD.Data, b.curPos, b.Encoding)) {
		b.curPos = enc.NextPos(b.curLD.Data, b.curPos, b.Encoding)
	}
	if b.curPos >= b.lineLen() {
		e.resyncPos(b)
		return Error
	}

	start := b.curPos
	end := start
	for end < b.lineLen() && enc.IsWord(enc.CharAt(b.curLD.Data, end, b.Encoding)) {
		end = enc.NextPos(b.curLD.Data, end, b.Encoding)
	}

	word := string(b.curLD.Data[start:end])
	var out string
	switch mode {
	case caseUpper:
		out = strings.ToUpper(word)
	case caseLower:
		out = strings.ToLower(word)
	case caseCapitalize:
		first := true
		out = strings.Map(func(r rune) rune {
			if first {
				first = false
				return unicode.ToUpper(r)
			}
			return unicode.ToLower(r)
		}, strings.ToLower(word))
	}

	if st := b.promote(widestRune(out)); st != OK {
		return st
	}

	e.freezeAttributes(b)
	if out != word {
		e.deleteStream(b, b.curLD, b.curLine, start, end-start)
		e.insertStream(b, b.curLD, b.curLine, start, []byte(out))
	}
	e.gotoPos(b, start+len(out))
	e.reparseCurrent(b)
	return OK
}

func widestRune(s string) rune {
	var w rune = 'a'
	for _, r := range s {
		if r > w {
			w = r
		}
	}
	return w
}

// center centers the current line within the right margin, trimming the
// surrounding whitespace first.
func (e *Editor) center(b *Buffer) Status {
	margin := b.Opt.RightMargin
	if margin == 0 {
		margin = e.Display.Columns() - 1
	}

	line := b.curLD.Data
	start := 0
	for start < len(line) && (line[start] == ' ' || line[start] == '\t') {
		start++
	}
	end := len(line)
	for end > start && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	if start == end {
		// Blank lines lose their whitespace.
		if len(line) > 0 {
			e.deleteStream(b, b.curLD, b.curLine, 0, len(line))
			e.gotoPos(b, 0)
		}
		return OK
	}

	body := append([]byte{}, line[start:end]...)
	width := enc.Width(body, len(body), b.Opt.TabSize, b.Encoding)
	pad := 0
	if margin > width {
		pad = (margin - width) / 2
	}

	e.freezeAttributes(b)
	e.deleteStream(b, b.curLD, b.curLine, 0, len(line))
	padded := make([]byte, pad, pad+len(body))
	for i := range padded {
		padded[i] = ' '
	}
	e.insertStream(b, b.curLD, b.curLine, 0, append(padded, body...))
	e.gotoPos(b, 0)
	e.reparseCurrent(b)
	return OK
}

// paragraph re-flows the paragraph starting at the current line to the
// right margin. The first line keeps its own indent; continuation lines use
// the indent of the paragraph's second line when there is one. The cursor
// ends at the start of the line after the paragraph, or at the end of the
// paragraph's last line when no line follows.
func (e *Editor) paragraph(b *Buffer) Status {
	margin := b.Opt.RightMargin
	if margin == 0 {
		margin = e.Display.Columns() - 1
	}

	if isBlank(b.curLD.Data) {
		if e.lineDown(b) != OK {
			return Error
		}
		return OK
	}

	// Collect the paragraph's extent and words.
	firstIndent := leadingWhitespace(b.curLD.Data)
	contIndent := firstIndent
	var words []string
	count := 0
	for ld := b.curLD; ld != nil && !isBlank(ld.Data); ld = ld.Next() {
		if count == 1 {
			contIndent = leadingWhitespace(ld.Data)
		}
		for _, w := range strings.Fields(string(ld.Data)) {
			words = append(words, w)
		}
		count++
	}

	b.undo.Begin()
	defer b.undo.End()

	// Remove the old paragraph body line by line, leaving one empty line.
	e.gotoPos(b, 0)
	for i := 1; i < count; i++ {
		e.deleteStream(b, b.curLD, b.curLine, 0, b.curLD.Len())
		e.joinLines(b, b.curLD, b.curLine)
	}
	e.deleteStream(b, b.curLD, b.curLine, 0, b.curLD.Len())

	// Re-emit wrapped lines.
	indent := firstIndent
	var cur []byte
	flushed := 0
	flush := func(last bool) {
		e.insertStream(b, b.curLD, b.curLine, 0, cur)
		flushed++
		if !last {
			e.insertOneLine(b, b.curLD, b.curLine, b.curLD.Len())
			b.setLine(b.curLine + 1)
			b.curPos = 0
		}
		cur = nil
	}
	for _, w := range words {
		if len(cur) == 0 {
			cur = append([]byte(indent), w...)
			indent = contIndent
			continue
		}
		candidate := append(append(append([]byte{}, cur...), ' '), w...)
		if enc.Width(candidate, len(candidate), b.Opt.TabSize, b.Encoding) > margin {
			flush(false)
			cur = append([]byte(indent), w...)
		} else {
			cur = candidate
		}
	}
	flush(true)

	if b.syn != nil {
		e.updateSyntaxStates(b, maxInt(0, b.curLine-flushed), b.store.Nth(maxInt(0, b.curLine-flushed)), nil)
	}
	if e.lineDown(b) == OK {
		e.moveToSOL(b)
	} else {
		e.moveToEOL(b)
	}
	return OK
}

func isBlank(line []byte) bool {
	for _, c := range line {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}

func leadingWhitespace(line []byte) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return string(line[:i])
}

// shift indents or outdents the marked block (or the current line) per the
// parameter string "[<|>] [N] [s|t]". Left shifts are all-or-nothing: if
// any line lacks the leading whitespace, nothing changes.
func (e *Editor) shift(b *Buffer, spec string) Status {
	right := true
	n := 1
	useTabs := b.Opt.ShiftTabs && b.Opt.Tabs

	s := strings.TrimSpace(spec)
	for len(s) > 0 {
		switch {
		case s[0] == '<':
			right = false
			s = strings.TrimSpace(s[1:])
		case s[0] == '>':
			right = true
			s = strings.TrimSpace(s[1:])
		case s[0] >= '0' && s[0] <= '9':
			j := 0
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			v := 0
			for _, d := range s[:j] {
				v = v*10 + int(d-'0')
			}
			n = v
			s = strings.TrimSpace(s[j:])
		case s[0] == 's' || s[0] == 'S':
			useTabs = false
			s = strings.TrimSpace(s[1:])
		case s[0] == 't' || s[0] == 'T':
			useTabs = true
			s = strings.TrimSpace(s[1:])
		default:
			return Error
		}
	}

	first, last := b.curLine, b.curLine
	if b.marking {
		first, last = b.blockStartLine, b.curLine
		if first > last {
			first, last = last, first
		}
	}

	unit := byte(' ')
	per := n
	if useTabs {
		unit = '\t'
	}

	if !right {
		// Verify every non-blank line can give up the requested amount.
		for i := first; i <= last; i++ {
			line := b.Line(i)
			if isBlank(line) {
				continue
			}
			avail := 0
			for _, c := range line {
				if c == unit {
					avail++
				} else {
					break
				}
			}
			if avail < per {
				return Error
			}
		}
	}

	b.undo.Begin()
	defer b.undo.End()
	for i := first; i <= last && !e.stopped(); i++ {
		ld := b.store.Nth(i)
		if isBlank(ld.Data) {
			continue
		}
		if right {
			pad := make([]byte, per)
			for j := range pad {
				pad[j] = unit
			}
			e.insertStream(b, ld, i, 0, pad)
		} else {
			e.deleteStream(b, ld, i, 0, per)
		}
	}
	e.resyncPos(b)
	if b.syn != nil {
		e.updateSyntaxStates(b, first, b.store.Nth(first), nil)
	}
	if e.stopped() {
		return Stopped
	}
	return OK
}
