package editor

import (
	"github.com/amantus-ai/vibedit/pkg/clip"
	"github.com/amantus-ai/vibedit/pkg/storage"
	"github.com/amantus-ai/vibedit/pkg/subprocess"
)

// through filters the marked block (or nothing) through a shell command and
// pastes the command's stdout in its place. The scratch clip and both temp
// files are scoped to the call and released on every exit path.
func (e *Editor) through(b *Buffer, p *string) Status {
	if b.Opt.ReadOnly {
		return FileIsReadOnly
	}
	if !b.marking {
		b.markIsVertical = false
	}
	if p == nil {
		s, err := e.Prompter.String("Filter", "", preferUTF8(b))
		if err != nil {
			return Error
		}
		p = &s
	}

	st := OK
	tmpIn, tmpOut, cleanup, err := subprocess.TempPair()
	if err != nil {
		st = CantOpenTemporaryFile
	} else {
		defer cleanup()
		defer e.Clips.Put(clip.Scratch, nil)

		e.Clips.Put(clip.Scratch, &clip.Clip{Lines: [][]byte{{}}})

		if b.marking {
			st = e.copyBlockToScratch(b)
		}
		if !b.marking || st == OK {
			data := e.Clips.Get(clip.Scratch).Text(b.IsCRLF)
			if err := storage.SaveBytes(tmpIn, data); err != nil {
				st = IOError
			} else {
				e.Display.LeaveInteractive()
				runErr := subprocess.Filter(*p, tmpIn, tmpOut)
				e.Display.EnterInteractive()

				if runErr != nil {
					st = ExternalCommandError
				} else if out, err := storage.LoadBytes(tmpOut); err != nil {
					st = IOError
				} else {
					filtered := clip.FromText(out)
					filtered.Vertical = b.markIsVertical
					e.Clips.Put(clip.Scratch, filtered)

					b.undo.Begin()
					if b.marking {
						if b.markIsVertical {
							e.eraseVertBlock(b)
						} else {
							e.eraseBlock(b)
						}
					}
					if b.markIsVertical {
						st = e.pasteVertToBuffer(b, clip.Scratch)
					} else {
						st = e.pasteToBuffer(b, clip.Scratch)
					}
					b.undo.End()
					b.marking = false
				}
			}
		}
	}

	e.Display.Resize()
	e.keepCursorOnScreen(e.Current())
	e.Display.ResetWindow()
	if e.printError(st) {
		return Error
	}
	return OK
}

func (e *Editor) copyBlockToScratch(b *Buffer) Status {
	if b.markIsVertical {
		return e.copyVertToClip(b, clip.Scratch, false)
	}
	return e.copyToClip(b, clip.Scratch, false)
}
