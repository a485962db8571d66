package editor

import "fmt"

// replaceLoop is the interactive replace state machine shared by Replace,
// ReplaceOnce and ReplaceAll. The responses are Y(es), N(o), L(ast),
// A(ll), Q(uit) and F/B to flip the search direction mid-session.
func (e *Editor) replaceLoop(b *Buffer, a Action, c int, p *string) Status {
	if b.Opt.ReadOnly {
		return FileIsReadOnly
	}

	find := b.findString
	if !b.hasFindString || find == "" {
		label := "Find"
		if b.lastWasRegexp {
			label = "Find RegExp"
		}
		s, err := e.Prompter.String(label, "", preferUTF8(b))
		if err != nil {
			return Error
		}
		find = s
	}
	if !checkSearchEncoding(b, find) {
		return IncompatibleSearchStringEncoding
	}
	if find != b.findString || !b.hasFindString {
		b.findString = find
		b.hasFindString = true
		b.findStringChanged = true
	}

	if p == nil {
		label := "Replace"
		if b.lastWasRegexp {
			label = "Replace RegExp"
		}
		s, err := e.Prompter.String(label, b.replaceString, preferUTF8(b))
		if err != nil {
			return Error
		}
		p = &s
	}
	if !checkReplaceEncoding(b, find, *p) {
		return IncompatibleReplaceStringEncoding
	}

	b.lastWasReplace = true
	b.replaceString = *p
	b.hasReplaceString = true

	var resp rune
	firstSearch := true
	numReplace := 0
	chainOpen := false
	if a == ActReplaceAll {
		b.undo.Begin()
		chainOpen = true
	}
	closeChain := func() {
		if chainOpen {
			b.undo.End()
			chainOpen = false
		}
	}

	var st Status
	for !e.stopped() {
		skip := !firstSearch && a != ActReplaceAll && resp != 'A' && resp != 'Y'
		if st = e.doFind(b, b.lastWasRegexp, skip); st != OK {
			break
		}

		if resp != 'A' && a != ActReplaceAll && a != ActReplaceOnce {
			e.Display.RefreshWindow()
			label := "Replace (Yes/No/Last/All/Quit/Backward)"
			if b.Opt.SearchBack {
				label = "Replace (Yes/No/Last/All/Quit/Forward)"
			}
			r, err := e.Prompter.Char(label, 'n')
			if err != nil {
				break
			}
			resp = upcase(r)
			if resp == 'Q' {
				break
			}
			if resp == 'A' {
				b.undo.Begin()
				chainOpen = true
			}
		}

		if resp == 'A' || resp == 'Y' || resp == 'L' || a == ActReplaceOnce || a == ActReplaceAll {
			st = e.doReplace(b, b.replaceString, b.lastWasRegexp)
			if st == OK {
				numReplace++
				if b.last.empty {
					if b.Opt.SearchBack {
						st = e.charLeft(b)
					} else {
						st = e.charRight(b)
					}
				}
			}
			if e.printError(st) {
				closeChain()
				return Error
			}
		}

		if (resp == 'B' && !b.Opt.SearchBack) || (resp == 'F' && b.Opt.SearchBack) {
			b.Opt.SearchBack = !b.Opt.SearchBack
			b.findStringChanged = true
		}

		if a == ActReplaceOnce || resp == 'L' {
			break
		}
		firstSearch = false
	}
	closeChain()

	if numReplace > 0 {
		plural := ""
		if numReplace > 1 {
			plural = "s"
		}
		e.Display.Message(fmt.Sprintf("%d replacement%s made.", numReplace, plural))
	}
	if e.stopped() {
		return Stopped
	}

	if st != OK && st != NotFound {
		e.printError(st)
		return Error
	}
	if st == NotFound && firstSearch {
		e.printError(NotFound)
		return Error
	}
	return OK
}

func upcase(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

// repeatLast replays the last find or replace with the stored strings,
// directions and encodings.
func (e *Editor) repeatLast(b *Buffer, count int) Status {
	if b.Opt.ReadOnly && b.lastWasReplace {
		return FileIsReadOnly
	}
	if !b.hasFindString || b.findString == "" {
		return NoSearchString
	}
	if b.lastWasReplace && !b.hasReplaceString {
		return NoReplaceString
	}
	if !checkSearchEncoding(b, b.findString) {
		return IncompatibleSearchStringEncoding
	}
	if b.lastWasReplace && !checkReplaceEncoding(b, b.findString, b.replaceString) {
		return IncompatibleReplaceStringEncoding
	}

	for i := 0; i < count; i++ {
		st := e.doFind(b, b.lastWasRegexp, !b.lastWasReplace)
		if e.printError(st) || st != OK {
			return Error
		}
		if b.lastWasReplace {
			st = e.doReplace(b, b.replaceString, b.lastWasRegexp)
			if st == OK && b.last.empty {
				if b.Opt.SearchBack {
					st = e.charLeft(b)
				} else {
					st = e.charRight(b)
				}
			}
			if e.printError(st) || st != OK {
				return Error
			}
		}
	}
	return OK
}

// autoComplete finds the word prefix left of the cursor, picks a
// completion, and swaps it in inside one undo chain with recording
// suspended.
func (e *Editor) autoComplete(b *Buffer, p *string) Status {
	start := b.curPos
	if p == nil {
		prefix, s := harvestPrefix(b)
		p = &prefix
		start = s
	}
	e.Display.Message(fmt.Sprintf("AutoComplete: prefix \"%s\"", *p))

	matches := e.collectCompletions(*p)
	if len(matches) == 0 {
		e.Display.Message(AutocompleteNoMatch.String())
		return OK
	}
	word := matches[0]
	if len(matches) > 1 {
		i, err := e.Prompter.Document(matches)
		if err != nil || i < 0 || i >= len(matches) {
			return OK
		}
		word = matches[i]
	}

	return e.withRecordingSuppressed(b, func() Status {
		st := OK
		b.undo.Begin()
		if start < b.curPos {
			st = e.Do(b, ActDeletePrevWord, 1, nil)
		}
		if st == OK {
			w := word
			st = e.Do(b, ActInsertString, macroNoArg, &w)
		}
		b.undo.End()
		if e.printError(st) {
			return Error
		}
		return st
	})
}

// macroNoArg mirrors the reserved "unspecified" integer argument.
const macroNoArg = -1
