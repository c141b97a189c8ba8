package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrNotFound means the level has no file and no manifest entry.
	ErrNotFound = errors.New("level not found")
	// ErrBadFormat means the level text does not describe a valid grid.
	ErrBadFormat = errors.New("level has a bad format")
)

// Parse reads a text grid: Height lines of Width characters, top row first.
// Trailing blank lines are ignored.
func Parse(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	return ParseLines(lines)
}

// ParseLines builds a grid from rows of text, top row first.
func ParseLines(lines []string) (*Grid, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) != Height {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrBadFormat, len(lines), Height)
	}
	g := New(Width, Height)
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != Width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrBadFormat, row+1, len(runes), Width)
		}
		y := Height - 1 - row
		for x, r := range runes {
			c, ok := runeCells[r]
			if !ok {
				return nil, fmt.Errorf("%w: row %d column %d: unknown cell %q", ErrBadFormat, row+1, x+1, r)
			}
			g.Set(x, y, c)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks the structural rules every level must satisfy: exactly one
// player start and a solid wall border.
func (g *Grid) Validate() error {
	if n := g.Count(PlayerStart); n != 1 {
		return fmt.Errorf("%w: %d player starts, want 1", ErrBadFormat, n)
	}
	for x := 0; x < g.Width; x++ {
		if g.At(x, 0) != Wall || g.At(x, g.Height-1) != Wall {
			return fmt.Errorf("%w: border open at column %d", ErrBadFormat, x+1)
		}
	}
	for y := 0; y < g.Height; y++ {
		if g.At(0, y) != Wall || g.At(g.Width-1, y) != Wall {
			return fmt.Errorf("%w: border open at row %d", ErrBadFormat, g.Height-y)
		}
	}
	return nil
}

// Format renders g in the text form Parse reads.
func (g *Grid) Format() string {
	var b strings.Builder
	for y := g.Height - 1; y >= 0; y-- {
		for x := 0; x < g.Width; x++ {
			b.WriteRune(g.At(x, y).Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
