package config

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/grid2048/internal/core"
)

// Hex resolves a color slot to its hex string. ColorDefault resolves to ""
// so frontends keep the terminal's own colors.
func (t Theme) Hex(c core.Color) string {
	switch c {
	case core.ColorDefault:
		return ""
	case core.ColorGrid:
		return t.Background
	case core.ColorEmpty:
		return t.Empty
	case core.ColorText:
		return t.Text
	case core.ColorHint:
		return t.Hint
	}

	if v, ok := c.TileValue(); ok {
		if hex, ok := t.Tiles[v]; ok {
			return hex
		}
	}
	return t.Empty
}

// RGBA resolves a color slot for pixel rendering.
// Unparseable or default colors resolve to opaque black.
func (t Theme) RGBA(c core.Color) color.Color {
	hex := t.Hex(c)
	if hex == "" {
		return color.Black
	}
	col, err := colorful.Hex(hex)
	if err != nil {
		return color.Black
	}
	return col
}

// Validate checks every color in the theme.
func (t Theme) Validate() error {
	named := []struct {
		field string
		hex   string
	}{
		{"background", t.Background},
		{"empty", t.Empty},
		{"text", t.Text},
		{"hint", t.Hint},
	}
	for _, n := range named {
		if _, err := colorful.Hex(n.hex); err != nil {
			return fmt.Errorf("config: theme.%s %q: %w", n.field, n.hex, err)
		}
	}

	values := make([]int, 0, len(t.Tiles))
	for v := range t.Tiles {
		values = append(values, v)
	}
	sort.Ints(values)

	for _, v := range values {
		if v < 2 || v&(v-1) != 0 {
			return fmt.Errorf("config: theme.tiles: %d is not a tile value", v)
		}
		if _, err := colorful.Hex(t.Tiles[v]); err != nil {
			return fmt.Errorf("config: theme.tiles.%d %q: %w", v, t.Tiles[v], err)
		}
	}
	return nil
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if err := c.Theme.Validate(); err != nil {
		return err
	}
	if c.Window.TileSize <= 0 {
		return fmt.Errorf("config: window.tile_size must be positive, got %d", c.Window.TileSize)
	}
	if c.Window.FontSize <= 0 {
		return fmt.Errorf("config: window.font_size must be positive, got %g", c.Window.FontSize)
	}
	return nil
}
