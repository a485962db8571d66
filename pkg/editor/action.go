package editor

import "strings"

// Action identifies one editor command. The names are the stable verbs of
// the command language; macros serialize them.
type Action int

const (
	ActNone Action = iota
	ActExit
	ActQuit
	ActPushPrefs
	ActPopPrefs
	ActLineUp
	ActLineDown
	ActPrevPage
	ActNextPage
	ActPageUp
	ActPageDown
	ActMoveLeft
	ActMoveRight
	ActMoveSOL
	ActMoveEOL
	ActMoveSOF
	ActMoveEOF
	ActMoveTOS
	ActMoveBOS
	ActMoveEOW
	ActMoveIncUp
	ActMoveIncDown
	ActAdjustView
	ActToggleSEOF
	ActToggleSEOL
	ActNextWord
	ActPrevWord
	ActDeletePrevWord
	ActDeleteNextWord
	ActSetBookmark
	ActGotoBookmark
	ActUnsetBookmark
	ActGotoLine
	ActGotoColumn
	ActInsertString
	ActInsertTab
	ActInsertChar
	ActBackspace
	ActDeleteChar
	ActInsertLine
	ActDeleteLine
	ActUndelLine
	ActDeleteEOL
	ActSave
	ActSaveAs
	ActKeyCode
	ActClear
	ActOpen
	ActOpenNew
	ActAbout
	ActRefresh
	ActFind
	ActFindRegExp
	ActReplace
	ActReplaceOnce
	ActReplaceAll
	ActRepeatLast
	ActMatchBracket
	ActAlert
	ActBeep
	ActFlash
	ActEscapeTime
	ActTabSize
	ActTurbo
	ActClipNumber
	ActRightMargin
	ActTabs
	ActShiftTabs
	ActAutoMatchBracket
	ActFreeForm
	ActPreserveCR
	ActCRLF
	ActVisualBell
	ActStatusBar
	ActHexCode
	ActFastGUI
	ActInsert
	ActWordWrap
	ActAutoIndent
	ActVerboseMacros
	ActAutoPrefs
	ActBinary
	ActNoFileReq
	ActRequestOrder
	ActUTF8Auto
	ActUTF8
	ActUTF8IO
	ActModified
	ActDoUndo
	ActReadOnly
	ActCaseSearch
	ActSearchBack
	ActAtomicUndo
	ActRecord
	ActPlay
	ActSaveMacro
	ActOpenMacro
	ActMacro
	ActUnloadMacros
	ActNewDoc
	ActCloseDoc
	ActNextDoc
	ActPrevDoc
	ActSelectDoc
	ActMark
	ActMarkVert
	ActCut
	ActCopy
	ActErase
	ActPaste
	ActPasteVert
	ActGotoMark
	ActOpenClip
	ActSaveClip
	ActExec
	ActSystem
	ActThrough
	ActToUpper
	ActToLower
	ActCapitalize
	ActCenter
	ActParagraph
	ActShift
	ActLoadPrefs
	ActSavePrefs
	ActLoadAutoPrefs
	ActSaveAutoPrefs
	ActSaveDefPrefs
	ActSyntax
	ActEscape
	ActUndo
	ActRedo
	ActFlags
	ActHelp
	ActSuspend
	ActAutoComplete
	actionCount
)

var actionNames = [...]string{
	ActNone:             "None",
	ActExit:             "Exit",
	ActQuit:             "Quit",
	ActPushPrefs:        "PushPrefs",
	ActPopPrefs:         "PopPrefs",
	ActLineUp:           "LineUp",
	ActLineDown:         "LineDown",
	ActPrevPage:         "PrevPage",
	ActNextPage:         "NextPage",
	ActPageUp:           "PageUp",
	ActPageDown:         "PageDown",
	ActMoveLeft:         "MoveLeft",
	ActMoveRight:        "MoveRight",
	ActMoveSOL:          "MoveSOL",
	ActMoveEOL:          "MoveEOL",
	ActMoveSOF:          "MoveSOF",
	ActMoveEOF:          "MoveEOF",
	ActMoveTOS:          "MoveTOS",
	ActMoveBOS:          "MoveBOS",
	ActMoveEOW:          "MoveEOW",
	ActMoveIncUp:        "MoveIncUp",
	ActMoveIncDown:      "MoveIncDown",
	ActAdjustView:       "AdjustView",
	ActToggleSEOF:       "ToggleSEOF",
	ActToggleSEOL:       "ToggleSEOL",
	ActNextWord:         "NextWord",
	ActPrevWord:         "PrevWord",
	ActDeletePrevWord:   "DeletePrevWord",
	ActDeleteNextWord:   "DeleteNextWord",
	ActSetBookmark:      "SetBookmark",
	ActGotoBookmark:     "GotoBookmark",
	ActUnsetBookmark:    "UnsetBookmark",
	ActGotoLine:         "GotoLine",
	ActGotoColumn:       "GotoColumn",
	ActInsertString:     "InsertString",
	ActInsertTab:        "InsertTab",
	ActInsertChar:       "InsertChar",
	ActBackspace:        "Backspace",
	ActDeleteChar:       "DeleteChar",
	ActInsertLine:       "InsertLine",
	ActDeleteLine:       "DeleteLine",
	ActUndelLine:        "UndelLine",
	ActDeleteEOL:        "DeleteEOL",
	ActSave:             "Save",
	ActSaveAs:           "SaveAs",
	ActKeyCode:          "KeyCode",
	ActClear:            "Clear",
	ActOpen:             "Open",
	ActOpenNew:          "OpenNew",
	ActAbout:            "About",
	ActRefresh:          "Refresh",
	ActFind:             "Find",
	ActFindRegExp:       "FindRegExp",
	ActReplace:          "Replace",
	ActReplaceOnce:      "ReplaceOnce",
	ActReplaceAll:       "ReplaceAll",
	ActRepeatLast:       "RepeatLast",
	ActMatchBracket:     "MatchBracket",
	ActAlert:            "Alert",
	ActBeep:             "Beep",
	ActFlash:            "Flash",
	ActEscapeTime:       "EscapeTime",
	ActTabSize:          "TabSize",
	ActTurbo:            "Turbo",
	ActClipNumber:       "ClipNumber",
	ActRightMargin:      "RightMargin",
	ActTabs:             "Tabs",
	ActShiftTabs:        "ShiftTabs",
	ActAutoMatchBracket: "AutoMatchBracket",
	ActFreeForm:         "FreeForm",
	ActPreserveCR:       "PreserveCR",
	ActCRLF:             "CRLF",
	ActVisualBell:       "VisualBell",
	ActStatusBar:        "StatusBar",
	ActHexCode:          "HexCode",
	ActFastGUI:          "FastGUI",
	ActInsert:           "Insert",
	ActWordWrap:         "WordWrap",
	ActAutoIndent:       "AutoIndent",
	ActVerboseMacros:    "VerboseMacros",
	ActAutoPrefs:        "AutoPrefs",
	ActBinary:           "Binary",
	ActNoFileReq:        "NoFileReq",
	ActRequestOrder:     "RequestOrder",
	ActUTF8Auto:         "UTF8Auto",
	ActUTF8:             "UTF8",
	ActUTF8IO:           "UTF8IO",
	ActModified:         "Modified",
	ActDoUndo:           "DoUndo",
	ActReadOnly:         "ReadOnly",
	ActCaseSearch:       "CaseSearch",
	ActSearchBack:       "SearchBack",
	ActAtomicUndo:       "AtomicUndo",
	ActRecord:           "Record",
	ActPlay:             "Play",
	ActSaveMacro:        "SaveMacro",
	ActOpenMacro:        "OpenMacro",
	ActMacro:            "Macro",
	ActUnloadMacros:     "UnloadMacros",
	ActNewDoc:           "NewDoc",
	ActCloseDoc:         "CloseDoc",
	ActNextDoc:          "NextDoc",
	ActPrevDoc:          "PrevDoc",
	ActSelectDoc:        "SelectDoc",
	ActMark:             "Mark",
	ActMarkVert:         "MarkVert",
	ActCut:              "Cut",
	ActCopy:             "Copy",
	ActErase:            "Erase",
	ActPaste:            "Paste",
	ActPasteVert:        "PasteVert",
	ActGotoMark:         "GotoMark",
	ActOpenClip:         "OpenClip",
	ActSaveClip:         "SaveClip",
	ActExec:             "Exec",
	ActSystem:           "System",
	ActThrough:          "Through",
	ActToUpper:          "ToUpper",
	ActToLower:          "ToLower",
	ActCapitalize:       "Capitalize",
	ActCenter:           "Center",
	ActParagraph:        "Paragraph",
	ActShift:            "Shift",
	ActLoadPrefs:        "LoadPrefs",
	ActSavePrefs:        "SavePrefs",
	ActLoadAutoPrefs:    "LoadAutoPrefs",
	ActSaveAutoPrefs:    "SaveAutoPrefs",
	ActSaveDefPrefs:     "SaveDefPrefs",
	ActSyntax:           "Syntax",
	ActEscape:           "Escape",
	ActUndo:             "Undo",
	ActRedo:             "Redo",
	ActFlags:            "Flags",
	ActHelp:             "Help",
	ActSuspend:          "Suspend",
	ActAutoComplete:     "AutoComplete",
}

var actionsByName = func() map[string]Action {
	m := make(map[string]Action, len(actionNames))
	for a, n := range actionNames {
		m[strings.ToLower(n)] = Action(a)
	}
	return m
}()

// String returns the action's verb.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "None"
	}
	return actionNames[a]
}

// ActionByName resolves a verb case-insensitively.
func ActionByName(name string) (Action, bool) {
	a, ok := actionsByName[strings.ToLower(name)]
	return a, ok
}
