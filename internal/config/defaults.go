package config

import (
	_ "embed"
)

//go:embed defaults/grid2048.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Theme: Theme{
			Background: "#bbada0",
			Empty:      "#ccc0b3",
			Text:       "#ffffff",
			Hint:       "#776e65",
			Tiles: map[int]string{
				2:    "#eee4da",
				4:    "#ede0c8",
				8:    "#f2b179",
				16:   "#f59563",
				32:   "#f67c5f",
				64:   "#f65e3b",
				128:  "#edcf72",
				256:  "#edcc61",
				512:  "#edc850",
				1024: "#edc53f",
				2048: "#edc22e",
			},
		},
		Window: WindowConfig{
			Title:    "2048",
			TileSize: 100,
			FontSize: 40,
		},
	}
}
