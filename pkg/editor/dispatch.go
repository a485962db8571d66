package editor

import (
	"errors"
	"fmt"
	"math"
	"os"
	"syscall"

	"github.com/amantus-ai/vibedit/pkg/enc"
	"github.com/amantus-ai/vibedit/pkg/prompt"
	"github.com/amantus-ai/vibedit/pkg/subprocess"
)

// normalize turns the unspecified integer argument (-1) into 1, which is
// what most commands want as a repetition count.
func normalize(c int) int {
	if c < 0 {
		return 1
	}
	return c
}

// numericStatus converts a failed numeric request: an abort is OK (the
// action silently does nothing), anything else was not a number.
func numericStatus(err error) Status {
	if errors.Is(err, prompt.ErrAborted) {
		return OK
	}
	return NotANumber
}

// repeat runs fn c times, stopping early on error or cancellation.
func (e *Editor) repeat(c int, fn func() Status) Status {
	var st Status
	for i := 0; i < c && st == OK && !e.stopped(); i++ {
		st = fn()
	}
	if e.stopped() {
		return Stopped
	}
	return st
}

// preferUTF8 tells prompts how to decode keyboard input for this buffer.
func preferUTF8(b *Buffer) bool {
	return b.Encoding == enc.UTF8 || (b.Encoding == enc.ASCII && b.Opt.UTF8Auto)
}

// Do dispatches one action against a buffer. c is the integer argument (-1
// for "unspecified"); p is the optional string argument, owned by the
// dispatcher on every return path. For flag actions c follows the on/off/
// toggle triple.
func (e *Editor) Do(b *Buffer, a Action, c int, p *string) Status {
	// The stop flag survives recursive dispatches (composites, macro play)
	// so a signal cancels the whole composite, not just the innermost call.
	if e.dispatchDepth == 0 {
		e.stop.Store(false)
	}
	e.dispatchDepth++
	defer func() { e.dispatchDepth-- }()

	if b.recording && a != ActRecord {
		e.recordAction(b, a, c, p)
	}

	switch a {

	case ActExit:
		for _, buf := range e.buffers {
			if !buf.Modified() {
				continue
			}
			if buf.Filename == "" || !e.saveBufferToFile(buf, buf.Filename).IsOK() {
				e.printError(CantSaveExitSuspended)
				return Error
			}
		}
		e.CloseWatcher()
		e.Display.LeaveInteractive()
		e.ExitFunc(0)
		return OK

	case ActQuit:
		if e.modifiedBuffers() && !e.Prompter.Response("Some documents have not been saved; are you sure?", false) {
			return Error
		}
		e.CloseWatcher()
		e.Display.LeaveInteractive()
		e.ExitFunc(0)
		return OK

	case ActPushPrefs:
		return e.repeat(normalize(c), func() Status {
			b.prefsStack = append(b.prefsStack, b.Opt)
			return OK
		})

	case ActPopPrefs:
		return e.repeat(normalize(c), func() Status {
			if len(b.prefsStack) == 0 {
				return Error
			}
			b.Opt = b.prefsStack[len(b.prefsStack)-1]
			b.prefsStack = b.prefsStack[:len(b.prefsStack)-1]
			return OK
		})

	case ActLineUp:
		return e.repeat(normalize(c), func() Status { return e.lineUp(b) })

	case ActLineDown:
		return e.repeat(normalize(c), func() Status { return e.lineDown(b) })

	case ActPrevPage:
		return e.repeat(normalize(c), func() Status { return e.prevPage(b) })

	case ActNextPage:
		return e.repeat(normalize(c), func() Status { return e.nextPage(b) })

	case ActPageUp:
		return e.repeat(normalize(c), func() Status { return e.pageUp(b) })

	case ActPageDown:
		return e.repeat(normalize(c), func() Status { return e.pageDown(b) })

	case ActMoveLeft:
		return e.repeat(normalize(c), func() Status { return e.charLeft(b) })

	case ActMoveRight:
		return e.repeat(normalize(c), func() Status { return e.charRight(b) })

	case ActMoveSOL:
		e.moveToSOL(b)
		return OK

	case ActMoveEOL:
		e.moveToEOL(b)
		return OK

	case ActMoveSOF:
		e.moveToSOF(b)
		return OK

	case ActMoveEOF:
		e.Display.DelayUpdate()
		e.moveToEOF(b)
		return OK

	case ActMoveTOS:
		return e.moveTOS(b)

	case ActMoveBOS:
		return e.moveBOS(b)

	case ActAdjustView:
		spec := ""
		if p != nil {
			spec = *p
		}
		return e.adjustView(b, spec)

	case ActToggleSEOF:
		e.toggleSOFEOF(b)
		return OK

	case ActToggleSEOL:
		e.toggleSOLEOL(b)
		return OK

	case ActNextWord:
		return e.repeat(normalize(c), func() Status { return e.searchWord(b, 1) })

	case ActPrevWord:
		return e.repeat(normalize(c), func() Status { return e.searchWord(b, -1) })

	case ActDeletePrevWord, ActDeleteNextWord:
		return e.withRecordingSuppressed(b, func() Status {
			count := normalize(c)
			e.Display.DelayUpdate()
			b.undo.Begin()
			var st Status
			for i := 0; i < count && st == OK && !e.stopped(); i++ {
				st = e.deleteWord(b, a == ActDeletePrevWord)
			}
			b.undo.End()
			if e.stopped() {
				return Stopped
			}
			return st
		})

	case ActMoveEOW:
		e.moveToEOW(b)
		return OK

	case ActMoveIncUp:
		e.moveIncUp(b)
		return OK

	case ActMoveIncDown:
		e.moveIncDown(b)
		return OK

	case ActUnsetBookmark:
		if p != nil && *p == "*" {
			b.bookmarkMask = 0
			b.curBookmark = 0
			e.Display.Message("All bookmarks cleared.")
			return OK
		}
		fallthrough
	case ActSetBookmark, ActGotoBookmark:
		slot, relative, st := e.parseBookmarkArg(b, a, p)
		if st != OK {
			return st
		}
		switch a {
		case ActSetBookmark:
			b.bookmarks[slot] = Bookmark{Line: b.curLine, Pos: b.curPos, CurY: b.curY}
			b.bookmarkMask |= 1 << slot
			b.curBookmark = slot
			e.Display.Message(fmt.Sprintf("Bookmark %c set", bookmarkLabel(slot)))
		case ActUnsetBookmark:
			if b.bookmarkMask&(1<<slot) == 0 {
				return BookmarkNotSet
			}
			b.bookmarkMask &^= 1 << slot
			e.Display.Message(fmt.Sprintf("Bookmark %c unset", bookmarkLabel(slot)))
		case ActGotoBookmark:
			if b.bookmarkMask&(1<<slot) == 0 {
				return BookmarkNotSet
			}
			prevLine, prevPos, prevY := b.curLine, b.curPos, b.curY
			b.curBookmark = slot
			e.Display.DelayUpdate()
			e.gotoLine(b, b.bookmarks[slot].Line)
			e.gotoPos(b, b.bookmarks[slot].Pos)
			if shift := b.curY - b.bookmarks[slot].CurY; shift != 0 {
				e.adjustView(b, viewShiftSpec(shift))
			}
			b.bookmarks[0] = Bookmark{Line: prevLine, Pos: prevPos, CurY: prevY}
			b.bookmarkMask |= 1
			if relative {
				e.Display.Message(fmt.Sprintf("At bookmark %c", bookmarkLabel(slot)))
			}
		}
		return OK

	case ActGotoLine:
		if c < 0 {
			n, err := e.Prompter.Number("Line", b.curLine+1)
			if err != nil {
				return numericStatus(err)
			}
			c = n
		}
		if c == 0 || c > b.store.Count() {
			c = b.store.Count()
		}
		e.gotoLine(b, c-1)
		return OK

	case ActGotoColumn:
		if c < 0 {
			n, err := e.Prompter.Number("Column", b.visualCol()+1)
			if err != nil {
				return numericStatus(err)
			}
			c = n
		}
		if c > 0 {
			c--
		}
		e.gotoColumn(b, c)
		return OK

	case ActInsertString:
		// The inner InsertChar calls must not be recorded a second time.
		return e.withRecordingSuppressed(b, func() Status {
			if p == nil {
				s, err := e.Prompter.String("String", "", preferUTF8(b))
				if err != nil {
					return Error
				}
				p = &s
			}
			strEnc := enc.Detect([]byte(*p))
			if !(b.Encoding == enc.ASCII || strEnc == enc.ASCII || b.Encoding == strEnc) {
				return InvalidString
			}
			// Promotion inside InsertChar could cover only part of the
			// string when UTF-8 auto-detection is off, so commit up front.
			if b.Encoding == enc.ASCII {
				b.Encoding = strEnc
			}
			st := OK
			b.undo.Begin()
			data := []byte(*p)
			for i := 0; i < len(data) && st == OK; i = enc.NextPos(data, i, strEnc) {
				st = e.Do(b, ActInsertChar, int(enc.CharAt(data, i, strEnc)), nil)
			}
			b.undo.End()
			return st
		})

	case ActTabs:
		setFlag(&b.Opt.Tabs, c)
		return OK

	case ActShiftTabs:
		setFlag(&b.Opt.ShiftTabs, c)
		return OK

	case ActAutoMatchBracket:
		if c < 0 {
			n, err := e.Prompter.Number("Match mode (sum of 0:none, 1:brightness, 2:inverse, 4:bold, 8:underline)", b.Opt.AutoMatch)
			if err != nil {
				if errors.Is(err, prompt.ErrAborted) {
					return OK
				}
				return InvalidMatchMode
			}
			c = n
		}
		if c < 0 || c > 15 {
			return InvalidMatchMode
		}
		b.Opt.AutoMatch = c
		return OK

	case ActInsertTab:
		return e.withRecordingSuppressed(b, func() Status {
			count := normalize(c)
			st := OK
			b.undo.Begin()
			if b.Opt.Tabs {
				for ; count > 0 && st == OK; count-- {
					st = e.Do(b, ActInsertChar, '\t', nil)
				}
			} else {
				for ; count > 0 && st == OK; count-- {
					for {
						st = e.Do(b, ActInsertChar, ' ', nil)
						if st != OK || b.Opt.TabSize == 0 || b.visualCol()%b.Opt.TabSize == 0 {
							break
						}
					}
				}
			}
			b.undo.End()
			return st
		})

	case ActInsertChar:
		if b.Opt.ReadOnly {
			return FileIsReadOnly
		}
		if c < 0 {
			n, err := e.Prompter.Number("Char code", e.lastInsertedChar)
			if err != nil {
				return numericStatus(err)
			}
			c = n
		}
		if c == 0 {
			return CantInsert0
		}
		return e.insertChar(b, rune(c))

	case ActBackspace, ActDeleteChar:
		return e.backspaceDelete(b, a == ActBackspace, normalize(c))

	case ActInsertLine:
		if b.Opt.ReadOnly {
			return FileIsReadOnly
		}
		count := normalize(c)
		for i := 0; i < count && !e.stopped(); i++ {
			e.freezeAttributes(b)
			b.undo.Begin()
			nl := e.insertOneLine(b, b.curLD, b.curLine, minInt(b.curPos, b.lineLen()))
			e.reparseCurrent(b)
			indent := 0
			if b.Opt.AutoIndent {
				indent = e.autoIndentLine(b, b.curLine+1, nl, math.MaxInt)
			}
			b.undo.End()
			e.moveToSOL(b)
			e.lineDown(b)
			e.gotoPos(b, indent)
			e.Display.ScrollWindow(b.curY, 1)
		}
		e.needAttrUpd = true
		if e.stopped() {
			return Stopped
		}
		return OK

	case ActDeleteLine:
		if b.Opt.ReadOnly {
			return FileIsReadOnly
		}
		count := normalize(c)
		col := b.visualCol()
		st := OK
		b.undo.Begin()
		for i := 0; i < count && !e.stopped(); i++ {
			if st = e.deleteOneLine(b, b.curLD, b.curLine); st != OK {
				break
			}
			e.Display.ScrollWindow(b.curY, -1)
		}
		b.undo.End()
		e.needAttrUpd = true
		e.resyncPos(b)
		e.gotoColumn(b, col)
		if b.syn != nil {
			e.updateSyntaxStates(b, b.curLine, b.curLD, nil)
		}
		if e.stopped() {
			return Stopped
		}
		return st

	case ActUndelLine:
		if b.Opt.ReadOnly {
			return FileIsReadOnly
		}
		count := normalize(c)
		st := OK
		b.undo.Begin()
		for i := 0; i < count && !e.stopped(); i++ {
			if st = e.undeleteLine(b); st != OK {
				break
			}
		}
		b.undo.End()
		if b.syn != nil {
			e.needAttrUpd = true
			e.updateSyntaxStates(b, b.curLine, b.curLD, nil)
		}
		if e.stopped() {
			return Stopped
		}
		return st

	case ActDeleteEOL:
		if b.Opt.ReadOnly {
			return FileIsReadOnly
		}
		e.freezeAttributes(b)
		e.deleteToEOL(b, b.curLD, b.curLine, minInt(b.curPos, b.lineLen()))
		e.reparseCurrent(b)
		e.needAttrUpd = true
		e.Display.UpdateLine(b.curY)
		return OK

	case ActSave:
		if b.Filename != "" {
			v := b.Filename
			p = &v
		}
		fallthrough
	case ActSaveAs:
		if p == nil {
			f, err := e.Prompter.File("Filename", b.Filename)
			if err != nil {
				return OK
			}
			p = &f
		}
		e.Display.Message("Saving...")
		if st := e.saveBufferToFile(b, *p); st != OK {
			e.printError(st)
			return Error
		}
		oldExt := b.extension()
		e.changeFilename(b, *p)
		if newExt := b.extension(); newExt != "" && newExt != oldExt {
			e.loadSyntaxByName(b, newExt)
			if b.Opt.AutoPrefs {
				e.loadAutoPrefs(b, newExt)
			}
			e.Display.ResetWindow()
		}
		e.Display.Message("Saved.")
		return OK

	case ActKeyCode:
		e.Display.Message("Press a key to see its code:")
		k, err := e.Prompter.Char("Key", 0)
		if err != nil {
			return OK
		}
		e.Display.Message(fmt.Sprintf("Key code: 0x%02x", k))
		return OK

	case ActClear:
		if b.Modified() && !e.Prompter.Response(DocumentNotSaved.String(), false) {
			return Error
		}
		b.setText(nil)
		b.Filename = ""
		e.Display.ResetWindow()
		return OK

	case ActOpenNew:
		nb := NewBuffer()
		e.addBuffer(nb)
		b = nb
		e.Display.ResetWindow()
		fallthrough
	case ActOpen:
		if b.Modified() && !e.Prompter.Response(DocumentNotSaved.String(), false) {
			if a == ActOpenNew {
				e.Do(b, ActCloseDoc, 1, nil)
			}
			return Error
		}
		if p == nil {
			f, err := e.Prompter.File("Filename", b.Filename)
			if err == nil {
				p = &f
			}
		}
		if p != nil {
			dup := e.bufferNamed(*p)
			proceed := dup == nil || dup == b || (e.openNamedSticky && c == 0)
			if !proceed {
				proceed = e.Prompter.Response("A document with the same name exists; open anyway?", false)
				if proceed {
					e.openNamedSticky = true
				}
			}
			if proceed {
				b.syn = nil // so auto-prefs can pick the right syntax
				if b.Opt.AutoPrefs {
					if i := extensionOf(*p); i != "" {
						e.loadAutoPrefs(b, i)
					}
				}
				st := e.loadFileInBuffer(b, *p)
				if st != FileIsMigrated && st != FileIsDirectory && st != IOError && st != FileIsTooLarge && st != OutOfMemory {
					e.changeFilename(b, *p)
				}
				e.printError(st)
				e.Display.ResetWindow()
				return OK
			}
		}
		if a == ActOpenNew {
			e.Do(b, ActCloseDoc, 1, nil)
		}
		return Error

	case ActAbout:
		e.Display.Message("vibedit - a terminal text editor")
		return OK

	case ActRefresh:
		e.Display.ClearScreen()
		e.Display.Resize()
		e.keepCursorOnScreen(e.Current())
		e.Display.ResetWindow()
		return OK

	case ActFind, ActFindRegExp:
		st := OK
		if p == nil {
			s, err := e.Prompter.String(map[bool]string{false: "Find", true: "Find RegExp"}[a == ActFindRegExp], b.findString, preferUTF8(b))
			if err == nil {
				p = &s
			}
		}
		if p != nil {
			if !checkSearchEncoding(b, *p) {
				return IncompatibleSearchStringEncoding
			}
			b.findString = *p
			b.hasFindString = true
			b.findStringChanged = true
			st = e.doFind(b, a == ActFindRegExp, false)
			e.printError(st)
		}
		b.lastWasReplace = false
		b.lastWasRegexp = a == ActFindRegExp
		if st != OK {
			return Error
		}
		return OK

	case ActReplace, ActReplaceOnce, ActReplaceAll:
		return e.replaceLoop(b, a, c, p)

	case ActRepeatLast:
		return e.repeatLast(b, normalize(c))

	case ActMatchBracket:
		st := e.matchBracket(b)
		if e.printError(st) {
			return Error
		}
		return OK

	case ActAlert:
		e.Display.Bell()
		return OK

	case ActBeep:
		e.Display.Bell()
		return OK

	case ActFlash:
		e.Display.Flash()
		return OK

	case ActEscapeTime:
		if c < 0 {
			n, err := e.Prompter.Number("Timeout (1/10s)", -1)
			if err != nil {
				return numericStatus(err)
			}
			c = n
		}
		if c >= 256 {
			return EscapeTimeOutOfRange
		}
		e.EscapeTimeVal = c
		return OK

	case ActTabSize:
		if c < 0 {
			n, err := e.Prompter.Number("TAB size", b.Opt.TabSize)
			if err != nil || n <= 0 {
				if err != nil {
					return numericStatus(err)
				}
				return NotANumber
			}
			c = n
		}
		if c <= 0 || c >= e.Display.Columns()/2 {
			return TabSizeOutOfRange
		}
		e.moveToSOL(b)
		b.Opt.TabSize = c
		e.Display.ResetWindow()
		return OK

	case ActTurbo:
		if c < 0 {
			n, err := e.Prompter.Number("Turbo threshold", e.Turbo)
			if err != nil {
				return numericStatus(err)
			}
			c = n
		}
		e.Turbo = c
		return OK

	case ActClipNumber:
		if c < 0 {
			n, err := e.Prompter.Number("Clip number", b.Opt.CurClip)
			if err != nil {
				return numericStatus(err)
			}
			c = n
		}
		b.Opt.CurClip = c
		return OK

	case ActRightMargin:
		if c < 0 {
			n, err := e.Prompter.Number("Right margin", b.Opt.RightMargin)
			if err != nil {
				return numericStatus(err)
			}
			c = n
		}
		b.Opt.RightMargin = c
		return OK

	case ActFreeForm:
		setFlag(&b.Opt.FreeForm, c)
		return OK

	case ActPreserveCR:
		setFlag(&b.Opt.PreserveCR, c)
		return OK

	case ActCRLF:
		setFlag(&b.IsCRLF, c)
		return OK

	case ActVisualBell:
		setFlag(&b.Opt.VisualBell, c)
		return OK

	case ActStatusBar:
		setFlag(&e.StatusBar, c)
		return OK

	case ActHexCode:
		setFlag(&b.Opt.HexCode, c)
		return OK

	case ActFastGUI:
		setFlag(&e.FastGUI, c)
		return OK

	case ActInsert:
		setFlag(&b.Opt.Insert, c)
		return OK

	case ActWordWrap:
		setFlag(&b.Opt.WordWrap, c)
		return OK

	case ActAutoIndent:
		setFlag(&b.Opt.AutoIndent, c)
		return OK

	case ActVerboseMacros:
		setFlag(&e.VerboseMacros, c)
		return OK

	case ActAutoPrefs:
		setFlag(&b.Opt.AutoPrefs, c)
		return OK

	case ActBinary:
		setFlag(&b.Opt.Binary, c)
		return OK

	case ActNoFileReq:
		setFlag(&b.Opt.NoFileReq, c)
		return OK

	case ActRequestOrder:
		setFlag(&e.ReqOrder, c)
		return OK

	case ActUTF8Auto:
		setFlag(&b.Opt.UTF8Auto, c)
		return OK

	case ActUTF8:
		old := b.Encoding
		detected := enc.Detect(b.store.Bytes([]byte("\n")))
		if (c < 0 && b.Encoding != enc.UTF8) || c > 0 {
			if detected == enc.ASCII || detected == enc.UTF8 {
				b.Encoding = enc.UTF8
			} else {
				return BufferIsNotUTF8
			}
		} else if detected == enc.ASCII {
			b.Encoding = enc.ASCII
		} else {
			b.Encoding = enc.EightBit
		}
		if old != b.Encoding {
			e.resetSyntaxStates(b)
			b.undo.Clear()
			b.atomicUndo = false
		}
		b.attrValid = false
		e.needAttrUpd = false
		e.moveToSOL(b)
		e.Display.ResetWindow()
		return OK

	case ActUTF8IO:
		setFlag(&e.IOUTF8, c)
		e.Display.ResetWindow()
		return OK

	case ActModified:
		modified := b.Modified()
		setFlag(&modified, c)
		b.undo.SetModified(modified)
		return OK

	case ActDoUndo:
		setFlag(&b.Opt.DoUndo, c)
		if !b.Opt.DoUndo {
			b.undo.Clear()
			b.atomicUndo = false
		}
		return OK

	case ActReadOnly:
		setFlag(&b.Opt.ReadOnly, c)
		return OK

	case ActCaseSearch:
		setFlag(&b.Opt.CaseSearch, c)
		b.findStringChanged = true
		return OK

	case ActSearchBack:
		setFlag(&b.Opt.SearchBack, c)
		b.findStringChanged = true
		return OK

	case ActAtomicUndo:
		if !b.Opt.DoUndo {
			return UndoNotEnabled
		}
		var level int
		switch {
		case p != nil && *p == "":
			return InvalidLevel
		case p == nil:
			if b.undo.Depth() > 0 {
				level = b.undo.Depth() - 1
			} else {
				level = 1
			}
		case (*p)[0] == '0':
			level = 0
		case (*p)[0] == '-':
			if b.undo.Depth() > 0 {
				level = b.undo.Depth() - 1
			}
		case (*p)[0] == '+' || (*p)[0] == '1':
			level = b.undo.Depth() + 1
		default:
			return InvalidLevel
		}
		for level > b.undo.Depth() {
			b.undo.Begin()
		}
		for level < b.undo.Depth() {
			b.undo.End()
		}
		b.atomicUndo = level > 0
		e.Display.Message(fmt.Sprintf("AtomicUndo level: %d", level))
		return OK

	case ActRecord:
		recording := b.recording
		setFlag(&recording, c)
		if recording && !b.recording {
			b.curMacro.Reset()
			e.Display.Message("Starting macro recording...")
		} else if !recording && b.recording {
			e.Display.Message("Macro recording completed.")
		}
		b.recording = recording
		return OK

	case ActPlay:
		if b.recording || b.executingMacro {
			return Error
		}
		if c < 0 {
			n, err := e.Prompter.Number("Times", 1)
			if err != nil || n <= 0 {
				if err != nil {
					return numericStatus(err)
				}
				return NotANumber
			}
			c = n
		}
		b.executingMacro = true
		st := OK
		for i := 0; i < c && st == OK; i++ {
			st = e.playMacro(b, b.curMacro)
		}
		b.executingMacro = false
		if e.printError(st) {
			return Error
		}
		return OK

	case ActSaveMacro:
		if p == nil {
			f, err := e.Prompter.File("Macro name", "")
			if err != nil {
				return Error
			}
			p = &f
		}
		e.Display.Message("Saving...")
		b.curMacro.Optimize()
		if st := e.saveMacro(b, *p); st != OK {
			e.printError(st)
			return Error
		}
		e.Display.Message("Saved.")
		return OK

	case ActOpenMacro:
		if p == nil {
			f, err := e.Prompter.File("Macro name", "")
			if err != nil {
				return Error
			}
			p = &f
		}
		if st := e.openMacro(b, *p); st != OK {
			return Error
		}
		return OK

	case ActMacro:
		if p == nil {
			f, err := e.Prompter.File("Macro name", "")
			if err != nil {
				return Error
			}
			p = &f
		}
		st := e.executeNamedMacro(b, *p)
		if e.printError(st) {
			return Error
		}
		return st

	case ActUnloadMacros:
		e.unloadMacros()
		return OK

	case ActNewDoc:
		e.addBuffer(NewBuffer())
		e.Display.ResetWindow()
		return OK

	case ActCloseDoc:
		if b.Modified() && !e.Prompter.Response(DocumentNotSaved.String(), false) {
			return Error
		}
		if e.watcher != nil && b.Filename != "" {
			e.watcher.Remove(b.Filename)
		}
		if !e.removeCurrent() {
			e.CloseWatcher()
			e.Display.LeaveInteractive()
			e.ExitFunc(0)
			return Error
		}
		e.keepCursorOnScreen(e.Current())
		e.Display.ResetWindow()
		// Always an error so callers and macros stop acting on a buffer
		// that no longer exists.
		return Error

	case ActNextDoc:
		e.cur = (e.cur + 1) % len(e.buffers)
		e.keepCursorOnScreen(e.Current())
		e.Display.ResetWindow()
		e.needAttrUpd = false
		b.attrValid = false
		return OK

	case ActPrevDoc:
		e.cur = (e.cur - 1 + len(e.buffers)) % len(e.buffers)
		e.keepCursorOnScreen(e.Current())
		e.Display.ResetWindow()
		e.needAttrUpd = false
		b.attrValid = false
		return OK

	case ActSelectDoc:
		names := make([]string, len(e.buffers))
		for i, buf := range e.buffers {
			names[i] = buf.Name()
		}
		i, err := e.Prompter.Document(names)
		if err != nil || i < 0 || i >= len(e.buffers) {
			return Error
		}
		e.cur = i
		e.keepCursorOnScreen(e.Current())
		e.Display.ResetWindow()
		e.needAttrUpd = false
		b.attrValid = false
		return OK

	case ActMark, ActMarkVert:
		marking := b.marking
		setFlag(&marking, c)
		b.marking = marking
		if !b.marking {
			return OK
		}
		if a == ActMark {
			e.Display.Message("Block start marked.")
		} else {
			e.Display.Message("Vertical block start marked.")
		}
		b.markIsVertical = a == ActMarkVert
		b.blockStartLine = b.curLine
		b.blockStartCol = b.visualCol()
		return OK

	case ActCut:
		if b.Opt.ReadOnly {
			return FileIsReadOnly
		}
		fallthrough
	case ActCopy:
		n := b.Opt.CurClip
		if c >= 0 {
			n = c
		}
		var st Status
		if b.markIsVertical {
			st = e.copyVertToClip(b, n, a == ActCut)
		} else {
			st = e.copyToClip(b, n, a == ActCut)
		}
		if e.printError(st) {
			return Error
		}
		b.marking = false
		return OK

	case ActErase:
		if b.Opt.ReadOnly {
			return FileIsReadOnly
		}
		var st Status
		if b.markIsVertical {
			st = e.eraseVertBlock(b)
		} else {
			st = e.eraseBlock(b)
		}
		if e.printError(st) {
			return Error
		}
		b.marking = false
		return OK

	case ActPaste, ActPasteVert:
		if b.Opt.ReadOnly {
			return FileIsReadOnly
		}
		n := b.Opt.CurClip
		if c >= 0 {
			n = c
		}
		var st Status
		if a == ActPaste {
			st = e.pasteToBuffer(b, n)
		} else {
			st = e.pasteVertToBuffer(b, n)
		}
		if e.printError(st) {
			return Error
		}
		return OK

	case ActGotoMark:
		if !b.marking {
			e.printError(MarkBlockFirst)
			return Error
		}
		e.Display.DelayUpdate()
		e.gotoLine(b, b.blockStartLine)
		e.gotoColumn(b, b.blockStartCol)
		return OK

	case ActOpenClip:
		if p == nil {
			f, err := e.Prompter.File("Clip name", "")
			if err != nil {
				return Error
			}
			p = &f
		}
		st := e.loadClip(b, b.Opt.CurClip, *p)
		if e.printError(st) {
			return Error
		}
		return OK

	case ActSaveClip:
		if p == nil {
			f, err := e.Prompter.File("Clip name", "")
			if err != nil {
				return Error
			}
			p = &f
		}
		e.Display.Message("Saving...")
		st := e.saveClip(b, b.Opt.CurClip, *p)
		if e.printError(st) {
			return Error
		}
		e.Display.Message("Saved.")
		return OK

	case ActExec:
		if p == nil {
			s, err := e.Prompter.String("Command", b.commandLine, preferUTF8(b))
			if err != nil {
				return Error
			}
			p = &s
		}
		b.commandLine = *p
		st := e.executeCommandLine(b, *p)
		if e.printError(st) {
			return Error
		}
		return st

	case ActSystem:
		if p == nil {
			s, err := e.Prompter.String("Shell command", "", preferUTF8(b))
			if err != nil {
				return Error
			}
			p = &s
		}
		st := OK
		e.Display.LeaveInteractive()
		if err := subprocess.System(*p); err != nil {
			st = ExternalCommandError
		}
		e.Display.EnterInteractive()
		e.Display.Resize()
		e.keepCursorOnScreen(e.Current())
		e.Display.ResetWindow()
		if e.printError(st) {
			return Error
		}
		return OK

	case ActThrough:
		return e.through(b, p)

	case ActToUpper:
		return e.caseRun(b, normalize(c), caseUpper)

	case ActToLower:
		return e.caseRun(b, normalize(c), caseLower)

	case ActCapitalize:
		return e.caseRun(b, normalize(c), caseCapitalize)

	case ActCenter:
		if b.Opt.ReadOnly {
			return FileIsReadOnly
		}
		count := normalize(c)
		st := OK
		b.undo.Begin()
		for i := 0; i < count && st == OK && !e.stopped(); i++ {
			if st = e.center(b); st != OK {
				break
			}
			e.needAttrUpd = true
			b.attrValid = false
			e.Display.UpdateLine(b.curY)
			e.moveToSOL(b)
			if e.lineDown(b) != OK {
				break
			}
		}
		b.undo.End()
		if e.stopped() {
			st = Stopped
		}
		if e.printError(st) {
			return Error
		}
		return OK

	case ActParagraph:
		if b.Opt.ReadOnly {
			return FileIsReadOnly
		}
		st := e.repeat(normalize(c), func() Status { return e.paragraph(b) })
		if e.printError(st) {
			return Error
		}
		return OK

	case ActShift:
		if b.Opt.ReadOnly {
			return FileIsReadOnly
		}
		spec := ""
		if p != nil {
			spec = *p
		}
		st := e.shift(b, spec)
		if e.stopped() {
			st = Stopped
		}
		if e.printError(st) {
			return Error
		}
		return OK

	case ActLoadPrefs:
		if p == nil {
			f, err := e.Prompter.File("Prefs name", "")
			if err != nil {
				return Error
			}
			p = &f
		}
		st := e.loadPrefs(b, *p)
		if e.printError(st) {
			return Error
		}
		return OK

	case ActSavePrefs:
		if p == nil {
			f, err := e.Prompter.File("Prefs name", "")
			if err != nil {
				return Error
			}
			p = &f
		}
		st := e.savePrefs(b, *p)
		if e.printError(st) {
			return Error
		}
		return OK

	case ActLoadAutoPrefs:
		st := e.loadAutoPrefs(b, b.extension())
		if e.printError(st) {
			return Error
		}
		return OK

	case ActSaveAutoPrefs:
		st := e.saveAutoPrefsFor(b, b.extension())
		if e.printError(st) {
			return Error
		}
		return OK

	case ActSaveDefPrefs:
		st := e.saveAutoPrefsFor(b, "default")
		if e.printError(st) {
			return Error
		}
		return OK

	case ActSyntax:
		if !e.DoSyntax {
			return SyntaxNotEnabled
		}
		if p == nil {
			s, err := e.Prompter.String("Syntax", b.synName, preferUTF8(b))
			if err != nil {
				return Error
			}
			p = &s
		}
		st := OK
		if *p == "*" {
			b.syn = nil
			b.synName = ""
		} else {
			st = e.loadSyntaxByName(b, *p)
		}
		if st == OK {
			e.Display.ResetWindow()
			return OK
		}
		e.printError(st)
		return Error

	case ActEscape:
		// The menu surface lives outside the core.
		return OK

	case ActUndo:
		if b.Opt.ReadOnly {
			return FileIsReadOnly
		}
		if !b.Opt.DoUndo {
			return UndoNotEnabled
		}
		e.Display.DelayUpdate()
		if b.atomicUndo {
			b.atomicUndo = false
			for b.undo.Depth() > 0 {
				b.undo.End()
			}
			e.Display.Message("AtomicUndo level: 0")
		}
		st := e.repeat(normalize(c), func() Status { return e.undoStep(b) })
		e.Display.RefreshWindow()
		if e.printError(st) {
			return Error
		}
		return OK

	case ActRedo:
		if b.Opt.ReadOnly {
			return FileIsReadOnly
		}
		if !b.Opt.DoUndo {
			return UndoNotEnabled
		}
		e.Display.DelayUpdate()
		st := e.repeat(normalize(c), func() Status { return e.redoStep(b) })
		e.Display.RefreshWindow()
		if e.printError(st) {
			return Error
		}
		return OK

	case ActFlags:
		e.Display.Message("tabs shift_tabs insert word_wrap free_form auto_indent read_only ...")
		return OK

	case ActHelp:
		if p != nil {
			e.Display.Message(fmt.Sprintf("Help: %s", *p))
		} else {
			e.Display.Message("Help")
		}
		return OK

	case ActSuspend:
		e.Display.LeaveInteractive()
		syscall.Kill(os.Getpid(), syscall.SIGTSTP)
		e.Display.EnterInteractive()
		e.Display.Resize()
		e.keepCursorOnScreen(e.Current())
		return OK

	case ActAutoComplete:
		return e.autoComplete(b, p)
	}

	return OK
}

// deleteWord removes one word to the left or right of the cursor by walking
// there and issuing backspaces, the way the composite actions do.
func (e *Editor) deleteWord(b *Buffer, prev bool) Status {
	if prev {
		rightLine, rightPos := b.curLine, b.curPos
		st := e.Do(b, ActPrevWord, 1, nil)
		if st != OK {
			return st
		}
		leftLine, leftPos := b.curLine, b.curPos
		e.gotoLine(b, rightLine)
		e.gotoPos(b, rightPos)
		for st == OK && !e.stopped() && (b.curLine > leftLine || (b.curLine == leftLine && b.curPos > leftPos)) {
			st = e.Do(b, ActBackspace, 1, nil)
		}
		return st
	}
	leftLine, leftPos := b.curLine, b.curPos
	st := e.Do(b, ActNextWord, 1, nil)
	if st != OK {
		return st
	}
	for st == OK && !e.stopped() && (b.curLine > leftLine || (b.curLine == leftLine && b.curPos > leftPos)) {
		st = e.Do(b, ActBackspace, 1, nil)
	}
	return st
}

// caseRun applies a case conversion c times under one undo chain.
func (e *Editor) caseRun(b *Buffer, count int, mode caseMode) Status {
	if b.Opt.ReadOnly {
		return FileIsReadOnly
	}
	b.undo.Begin()
	st := e.repeat(count, func() Status { return e.caseWord(b, mode) })
	b.undo.End()
	if e.printError(st) {
		return Error
	}
	return OK
}

func extensionOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
		if path[i] == '/' {
			break
		}
	}
	return ""
}
