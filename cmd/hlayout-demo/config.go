package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/cellkit/cellkit/surface"
)

// demoConfig is the top-level TOML structure
type demoConfig struct {
	Container containerConfig `toml:"container"`
	Widgets   widgetConfig    `toml:"widgets"`
}

type containerConfig struct {
	X       int `toml:"x"`
	Y       int `toml:"y"`
	W       int `toml:"w"`
	H       int `toml:"h"`
	Spacing int `toml:"spacing"`
	Bottom  int `toml:"bottom_padding"`
}

type widgetConfig struct {
	LeftColor   []uint8 `toml:"left_color"`
	RightColor  []uint8 `toml:"right_color"`
	BorderColor []uint8 `toml:"border_color"`
}

const defaultConfigTOML = `# hlayout-demo layout and colors
# Colors are [r, g, b] triples.

[container]
x = 20
y = 2
w = 60
h = 16
spacing = 2
bottom_padding = 1

[widgets]
left_color = [0, 120, 200]
right_color = [200, 80, 0]
border_color = [255, 255, 255]
`

// configPath returns the full path to the demo config file
func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "cellkit", "hlayout.toml"), nil
}

// loadConfig reads the demo config, creating it with defaults when missing
func loadConfig() (demoConfig, error) {
	var cfg demoConfig

	path, err := configPath()
	if err != nil {
		return cfg, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return cfg, fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultConfigTOML), 0644); wErr != nil {
			return cfg, fmt.Errorf("write default config: %w", wErr)
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// rgbFrom converts a [r, g, b] TOML triple, falling back when malformed
func rgbFrom(triple []uint8, fallback surface.RGB) surface.RGB {
	if len(triple) != 3 {
		return fallback
	}
	return surface.RGB{R: triple[0], G: triple[1], B: triple[2]}
}
