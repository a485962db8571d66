package editor

// Status is the outcome of an action or primitive. OK, Error and Stopped are
// the generic outcomes; everything else names a specific failure with a
// user-facing message.
type Status int

const (
	OK Status = iota
	Error
	Stopped
	CantSaveExitSuspended
	FileIsReadOnly
	CantInsert0
	InvalidCharacter
	InvalidString
	InvalidBookmarkDesignation
	InvalidMatchMode
	InvalidLevel
	BookmarkNotSet
	NoUnsetBookmarksToSet
	NoSetBookmarksToGoto
	NoSetBookmarksToUnset
	NotANumber
	OutOfMemory
	IncompatibleSearchStringEncoding
	IncompatibleReplaceStringEncoding
	NoSearchString
	NoReplaceString
	UndoNotEnabled
	SyntaxNotEnabled
	BufferIsNotUTF8
	TabSizeOutOfRange
	EscapeTimeOutOfRange
	ExternalCommandError
	CantOpenTemporaryFile
	MarkBlockFirst
	FileIsMigrated
	FileIsDirectory
	FileIsTooLarge
	IOError
	NotFound
	AutocompleteNoMatch
	DocumentNotSaved
)

var statusMessages = map[Status]string{
	OK:                                "",
	Error:                             "",
	Stopped:                           "Stopped.",
	CantSaveExitSuspended:             "Can't save; exit suspended.",
	FileIsReadOnly:                    "This file is read-only.",
	CantInsert0:                       "Can't insert character code 0.",
	InvalidCharacter:                  "Invalid character.",
	InvalidString:                     "Invalid string.",
	InvalidBookmarkDesignation:        "Invalid bookmark designation.",
	InvalidMatchMode:                  "Invalid match mode.",
	InvalidLevel:                      "Invalid level.",
	BookmarkNotSet:                    "Bookmark not set.",
	NoUnsetBookmarksToSet:             "No unset bookmarks to set.",
	NoSetBookmarksToGoto:              "No set bookmarks to go to.",
	NoSetBookmarksToUnset:             "No set bookmarks to unset.",
	NotANumber:                        "Not a number.",
	OutOfMemory:                       "Out of memory.",
	IncompatibleSearchStringEncoding:  "Search string encoding is incompatible with the buffer.",
	IncompatibleReplaceStringEncoding: "Replace string encoding is incompatible with the buffer.",
	NoSearchString:                    "No search string.",
	NoReplaceString:                   "No replace string.",
	UndoNotEnabled:                    "Undo is not enabled.",
	SyntaxNotEnabled:                  "Syntax highlighting is not enabled.",
	BufferIsNotUTF8:                   "This buffer is not UTF-8 encoded.",
	TabSizeOutOfRange:                 "TAB size out of range.",
	EscapeTimeOutOfRange:              "Escape time out of range.",
	ExternalCommandError:              "External command error.",
	CantOpenTemporaryFile:             "Can't open temporary file.",
	MarkBlockFirst:                    "Mark a block first.",
	FileIsMigrated:                    "File is migrated.",
	FileIsDirectory:                   "File is a directory.",
	FileIsTooLarge:                    "File is too large.",
	IOError:                           "I/O error.",
	NotFound:                          "Not found.",
	AutocompleteNoMatch:               "No matching words.",
	DocumentNotSaved:                  "This document is not saved; are you sure?",
}

// String returns the user-facing message for s.
func (s Status) String() string { return statusMessages[s] }

// IsOK reports success.
func (s Status) IsOK() bool { return s == OK }
