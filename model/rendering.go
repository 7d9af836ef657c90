package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = "O"
	gridPosDead  = "-"
)

// Render returns the frame for rows 0..height-1 and columns 0..width-1.
// The top and left border are drawn, the bottom and right border are not.
func Render(width, height int, g *Grid) (string, error) {
	var sb strings.Builder
	sb.Grow((width + 1) * height)
	for y := range height {
		for x := range width {
			cell, err := g.Get(Coord{X: x, Y: y})
			if err != nil {
				return "", errors.Wrap(err, "[Render]")
			}
			if cell.Living {
				sb.WriteString(gridPosAlive)
			} else {
				sb.WriteString(gridPosDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display writes the grid followed by a blank separator line
func (r *TerminalRenderer) Display(w io.Writer, g *Grid) error {
	frame, err := Render(g.GetWidth(), g.GetHeight(), g)
	if err != nil {
		return errors.Wrap(err, "[Display]")
	}
	if _, err = fmt.Fprintln(w, frame); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}
