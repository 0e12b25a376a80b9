// Package config provides YAML-based configuration for the presentation
// layers: the tile palette and the window geometry. Board size and spawn
// values are fixed by the puzzle and are not configurable.
package config

// Config is the root of the configuration file.
type Config struct {
	Theme  Theme        `yaml:"theme"`
	Window WindowConfig `yaml:"window"`
}

// Theme maps board elements to hex colors ("#rrggbb").
type Theme struct {
	Background string         `yaml:"background"` // grid lines and window background
	Empty      string         `yaml:"empty"`      // unoccupied cells and tiles without an entry
	Text       string         `yaml:"text"`       // tile labels
	Hint       string         `yaml:"hint"`       // title and help text
	Tiles      map[int]string `yaml:"tiles"`      // tile value -> color
}

// WindowConfig defines the graphical window.
type WindowConfig struct {
	Title    string  `yaml:"title"`
	TileSize int     `yaml:"tile_size"` // pixels per cell edge
	FontSize float64 `yaml:"font_size"` // label font size in pixels
}
