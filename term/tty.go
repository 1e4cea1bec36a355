// Package term runs the explorer inside a true-colour terminal.
package term

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Open when stdio is not a TTY.
var ErrNotTerminal = errors.New("not a terminal")

const (
	syncBegin = ansi.SetModeSynchronizedOutput
	syncEnd   = ansi.ResetModeSynchronizedOutput

	// any-motion mouse reports use SGR encoding so columns past 223 survive
	enterSeq = ansi.SetModeAltScreenSaveCursor + ansi.HideCursor + ansi.ResetModeAutoWrap +
		ansi.EraseEntireScreen + ansi.CursorHomePosition +
		ansi.SetModeMouseAnyEvent + ansi.SetModeMouseExtSgr
	exitSeq = ansi.ResetModeMouseAnyEvent + ansi.ResetModeMouseExtSgr + ansi.ResetStyle +
		ansi.SetModeAutoWrap + ansi.ShowCursor + ansi.ResetModeAltScreenSaveCursor
)

// TTY owns the terminal while the explorer runs.
type TTY struct {
	in, out *os.File
	state   *term.State
}

// Open switches in to raw mode and out to the alternate screen.
func Open(in, out *os.File) (*TTY, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) || !term.IsTerminal(int(out.Fd())) {
		return nil, ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	if _, err := fmt.Fprint(out, enterSeq); err != nil {
		_ = term.Restore(fd, state)
		return nil, err
	}
	return &TTY{in: in, out: out, state: state}, nil
}

// Size is the terminal size in cells.
func (t *TTY) Size() (cols, rows int, err error) {
	return term.GetSize(int(t.out.Fd()))
}

// Close leaves the alternate screen and restores the previous mode.
func (t *TTY) Close() error {
	_, _ = fmt.Fprint(t.out, exitSeq)
	return term.Restore(int(t.in.Fd()), t.state)
}

// GridSize is the frame that fits cols×rows cells: two pixels per cell
// vertically and one row kept for the status bar.
func GridSize(cols, rows int) (width, height int) {
	return cols, max(rows-1, 1) * 2
}

// CellToPixel maps a 0-based cell to the upper pixel it shows.
func CellToPixel(col, row int) (x, y int) {
	return col, row * 2
}
