package editor

import "github.com/amantus-ai/vibedit/pkg/storage"

// Options is the per-buffer option record. Every flag is driven by a command
// following the on/off/toggle triple.
type Options struct {
	Tabs        bool
	ShiftTabs   bool
	TabSize     int
	Insert      bool
	WordWrap    bool
	RightMargin int
	FreeForm    bool
	PreserveCR  bool
	Binary      bool
	ReadOnly    bool
	DoUndo      bool
	AutoIndent  bool
	AutoPrefs   bool
	NoFileReq   bool
	UTF8Auto    bool
	CaseSearch  bool
	SearchBack  bool
	HexCode     bool
	VisualBell  bool
	AutoMatch   int
	CurClip     int
}

// DefaultOptions mirrors the factory configuration.
func DefaultOptions() Options {
	return Options{
		Tabs:      true,
		TabSize:   8,
		Insert:    true,
		DoUndo:    true,
		AutoPrefs: true,
		UTF8Auto:  true,
	}
}

// setFlag applies the on/off/toggle triple: c < 0 toggles, c == 0 clears,
// c > 0 sets.
func setFlag(flag *bool, c int) {
	if c < 0 {
		*flag = !*flag
	} else {
		*flag = c != 0
	}
}

// toPrefs converts the record to its serialized form.
func (o *Options) toPrefs(syntaxName string) *storage.Prefs {
	return &storage.Prefs{
		Tabs:        o.Tabs,
		ShiftTabs:   o.ShiftTabs,
		TabSize:     o.TabSize,
		Insert:      o.Insert,
		WordWrap:    o.WordWrap,
		RightMargin: o.RightMargin,
		FreeForm:    o.FreeForm,
		PreserveCR:  o.PreserveCR,
		Binary:      o.Binary,
		ReadOnly:    o.ReadOnly,
		DoUndo:      o.DoUndo,
		AutoIndent:  o.AutoIndent,
		AutoPrefs:   o.AutoPrefs,
		NoFileReq:   o.NoFileReq,
		UTF8Auto:    o.UTF8Auto,
		CaseSearch:  o.CaseSearch,
		SearchBack:  o.SearchBack,
		HexCode:     o.HexCode,
		VisualBell:  o.VisualBell,
		AutoMatch:   o.AutoMatch,
		CurClip:     o.CurClip,
		Syntax:      syntaxName,
	}
}

// fromPrefs overwrites the record from its serialized form.
func (o *Options) fromPrefs(p *storage.Prefs) {
	o.Tabs = p.Tabs
	o.ShiftTabs = p.ShiftTabs
	o.TabSize = p.TabSize
	o.Insert = p.Insert
	o.WordWrap = p.WordWrap
	o.RightMargin = p.RightMargin
	o.FreeForm = p.FreeForm
	o.PreserveCR = p.PreserveCR
	o.Binary = p.Binary
	o.ReadOnly = p.ReadOnly
	o.DoUndo = p.DoUndo
	o.AutoIndent = p.AutoIndent
	o.AutoPrefs = p.AutoPrefs
	o.NoFileReq = p.NoFileReq
	o.UTF8Auto = p.UTF8Auto
	o.CaseSearch = p.CaseSearch
	o.SearchBack = p.SearchBack
	o.HexCode = p.HexCode
	o.VisualBell = p.VisualBell
	o.AutoMatch = p.AutoMatch
	o.CurClip = p.CurClip
	if o.TabSize <= 0 {
		o.TabSize = 8
	}
}
