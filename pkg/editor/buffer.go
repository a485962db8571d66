package editor

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/amantus-ai/vibedit/pkg/enc"
	"github.com/amantus-ai/vibedit/pkg/macro"
	"github.com/amantus-ai/vibedit/pkg/syntax"
	"github.com/amantus-ai/vibedit/pkg/textstore"
	"github.com/amantus-ai/vibedit/pkg/undo"
)

// NumBookmarks is the number of bookmark slots: '-' is slot 0 (also the
// automatic previous-position slot), '0'..'9' are slots 1..10.
const NumBookmarks = 11

// Bookmark is one remembered position.
type Bookmark struct {
	Line int
	Pos  int
	CurY int
}

// Buffer is one open document and all its editing state.
type Buffer struct {
	ID       uuid.UUID
	Filename string
	IsCRLF   bool
	Encoding enc.Kind

	store *textstore.Store

	// Logical and visual cursor state. curLine indexes lines, curPos is a
	// byte offset, curChar a codepoint index; curY/curX are viewport
	// coordinates and winX/winY the viewport origin.
	curLine int
	curLD   *textstore.Line
	curPos  int
	curChar int
	curY    int
	curX    int
	winX    int
	winY    int

	Opt Options

	undo       *undo.Log
	atomicUndo bool

	syn       syntax.Engine
	synName   string
	attrBuf   []syntax.Attr
	attrValid bool
	nextState syntax.State

	findString        string
	replaceString     string
	hasFindString     bool
	hasReplaceString  bool
	findStringChanged bool
	lastWasRegexp     bool
	lastWasReplace    bool
	last              lastMatch

	bookmarks    [NumBookmarks]Bookmark
	bookmarkMask int
	curBookmark  int

	marking        bool
	markIsVertical bool
	blockStartLine int
	blockStartCol  int

	curMacro       *macro.Macro
	recording      bool
	executingMacro bool

	commandLine string

	// deletedLines backs UndelLine.
	deletedLines [][]byte

	prefsStack []Options

	externallyModified bool
}

// NewBuffer creates an empty unnamed buffer.
func NewBuffer() *Buffer {
	b := &Buffer{
		ID:       uuid.New(),
		store:    textstore.New(),
		Opt:      DefaultOptions(),
		undo:     undo.New(),
		curMacro: macro.New(),
	}
	b.curLD = b.store.First()
	return b
}

// Name returns the display name of the buffer.
func (b *Buffer) Name() string {
	if b.Filename == "" {
		return "<unnamed>"
	}
	return b.Filename
}

// Modified reports whether the buffer differs from its saved state.
func (b *Buffer) Modified() bool { return b.undo.Modified() }

// CanUndo and CanRedo report whether history steps are available.
func (b *Buffer) CanUndo() bool { return b.undo.CanUndo() }
func (b *Buffer) CanRedo() bool { return b.undo.CanRedo() }

// NumLines returns the line count.
func (b *Buffer) NumLines() int { return b.store.Count() }

// CurLine and CurPos expose the logical cursor.
func (b *Buffer) CurLine() int { return b.curLine }
func (b *Buffer) CurPos() int  { return b.curPos }

// CurY and CurX expose the visual cursor; WinY and WinX the viewport
// origin.
func (b *Buffer) CurY() int { return b.curY }
func (b *Buffer) CurX() int { return b.curX }
func (b *Buffer) WinY() int { return b.winY }
func (b *Buffer) WinX() int { return b.winX }

// Line returns the bytes of the n-th line, nil when out of range.
func (b *Buffer) Line(n int) []byte {
	if l := b.store.Nth(n); l != nil {
		return l.Data
	}
	return nil
}

// Text flattens the buffer with LF separators. Test and clip helper.
func (b *Buffer) Text() string { return string(b.store.Bytes([]byte("\n"))) }

// setText replaces the whole content. Used by loads; clears undo.
func (b *Buffer) setText(lines [][]byte) {
	b.store = textstore.New()
	first := b.store.First()
	for i, l := range lines {
		if i == 0 {
			first.Data = append([]byte{}, l...)
			continue
		}
		b.store.Append(&textstore.Line{Data: append([]byte{}, l...)})
	}
	b.curLD = b.store.First()
	b.curLine, b.curPos, b.curChar = 0, 0, 0
	b.curX, b.curY, b.winX, b.winY = 0, 0, 0, 0
	b.undo.Clear()
	b.atomicUndo = false
	b.attrValid = false
	b.deletedLines = nil
	b.bookmarkMask = 0
	b.marking = false
	allBytes := b.store.Bytes([]byte("\n"))
	b.Encoding = enc.Detect(allBytes)
}

// extension returns the lower-cased filename extension without the dot.
func (b *Buffer) extension() string {
	ext := filepath.Ext(b.Filename)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// lineLen is the byte length of the current line.
func (b *Buffer) lineLen() int { return b.curLD.Len() }

// visualCol is the cursor's absolute visual column.
func (b *Buffer) visualCol() int { return b.winX + b.curX }

// promote applies the encoding promotion rule for an incoming codepoint.
func (b *Buffer) promote(c rune) Status {
	if b.Encoding == enc.ASCII {
		if c > 0xFF {
			b.Encoding = enc.UTF8
		} else if c > 0x7F {
			if b.Opt.UTF8Auto {
				b.Encoding = enc.UTF8
			} else {
				b.Encoding = enc.EightBit
			}
		}
	}
	if c > 0xFF && b.Encoding == enc.EightBit {
		return InvalidCharacter
	}
	return OK
}
