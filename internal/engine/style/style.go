// Package style maps every cell kind to its on-screen representation.
package style

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/Faultbox/voxelview/internal/engine/palette"
	"github.com/Faultbox/voxelview/internal/game/world"
)

// Style errors.
var (
	ErrMissingStyle = errors.New("missing style")
	ErrInvalidGlyph = errors.New("glyph must be a single character")
)

// Style is the foreground, background and glyph drawn for one cell kind.
type Style struct {
	Fg    palette.Color
	Bg    palette.Color
	Glyph rune
}

// Glyph starts a style with the given glyph, white on black.
func Glyph(ch rune) Style {
	return Style{Fg: palette.White, Bg: palette.Black, Glyph: ch}
}

// WithFg returns a copy with a different foreground.
func (s Style) WithFg(c palette.Color) Style {
	s.Fg = c
	return s
}

// WithBg returns a copy with a different background.
func (s Style) WithBg(c palette.Color) Style {
	s.Bg = c
	return s
}

// Table is an immutable cell kind -> style mapping.
type Table struct {
	entries map[world.Cell]Style
}

// New builds a table from entries. Every kind in world.Cells must be present.
func New(entries map[world.Cell]Style) (*Table, error) {
	t := &Table{entries: make(map[world.Cell]Style, len(entries))}
	for c, s := range entries {
		t.entries[c] = s
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Default returns the built-in table. It panics if a cell kind lacks a style.
func Default() *Table {
	t, err := New(map[world.Cell]Style{
		world.Void:       Glyph(' ').WithFg(palette.DarkCyan).WithBg(palette.DarkCyan),
		world.Floor:      Glyph('.').WithFg(palette.LightSalmon),
		world.Rock:       Glyph('#').WithFg(palette.Gray50).WithBg(palette.Gray30),
		world.Grass:      Glyph('`').WithFg(palette.Green).WithBg(palette.Black),
		world.TallGrass:  Glyph('\'').WithFg(palette.Green4).WithBg(palette.Black),
		world.ShortGrass: Glyph(',').WithFg(palette.WebGreen).WithBg(palette.Black),
		world.Dirt:       Glyph('.').WithFg(palette.Brown4).WithBg(palette.Black),
		world.Water:      Glyph('~').WithFg(palette.WhiteSmoke).WithBg(palette.DarkBlue),
	})
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) validate() error {
	var missing []string
	for _, c := range world.Cells() {
		if _, ok := t.entries[c]; !ok {
			missing = append(missing, c.String())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w for %v", ErrMissingStyle, missing)
	}
	return nil
}

// Lookup returns the style of cell. A kind without a style is a programming
// error and panics.
func (t *Table) Lookup(cell world.Cell) Style {
	s, ok := t.entries[cell]
	if !ok {
		panic(fmt.Sprintf("style: no entry for cell %s", cell))
	}
	return s
}

// Override replaces parts of a style. Empty fields keep the current value.
type Override struct {
	Glyph string `yaml:"glyph"`
	Fg    string `yaml:"fg"`
	Bg    string `yaml:"bg"`
}

// WithOverrides returns a copy of the table with overrides applied, keyed by
// cell name.
func (t *Table) WithOverrides(overrides map[string]Override) (*Table, error) {
	out := &Table{entries: make(map[world.Cell]Style, len(t.entries))}
	for c, s := range t.entries {
		out.entries[c] = s
	}

	// Sorted for stable error messages.
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cell, err := world.ParseCell(name)
		if err != nil {
			return nil, fmt.Errorf("style override: %w", err)
		}
		s, err := apply(out.entries[cell], overrides[name])
		if err != nil {
			return nil, fmt.Errorf("style override %s: %w", name, err)
		}
		out.entries[cell] = s
	}
	return out, nil
}

func apply(s Style, o Override) (Style, error) {
	if o.Glyph != "" {
		if utf8.RuneCountInString(o.Glyph) != 1 {
			return s, fmt.Errorf("%w: %q", ErrInvalidGlyph, o.Glyph)
		}
		r, _ := utf8.DecodeRuneInString(o.Glyph)
		s.Glyph = r
	}
	if o.Fg != "" {
		c, err := palette.ParseHex(o.Fg)
		if err != nil {
			return s, fmt.Errorf("fg: %w", err)
		}
		s.Fg = c
	}
	if o.Bg != "" {
		c, err := palette.ParseHex(o.Bg)
		if err != nil {
			return s, fmt.Errorf("bg: %w", err)
		}
		s.Bg = c
	}
	return s, nil
}
