/*
Package config reads the optional homepage.cfg settings file.

The file is TOML. Every setting has a default, and a missing file is the same
as an empty one. For example:

	sitetitle = "Jane Doe"

	[schedule]
	url = "https://cal.com/jane/30min"
	text = "Want to talk? Pick a time:"

	[preview]
	publications = 5
	projects = 3

	[serve]
	expires = "5m"
	staticexpires = "24h"

	[serve.headers]
	X-Frame-Options = "DENY"
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the settings file looked up in the working directory.
const DefaultFile = "homepage.cfg"

// Schedule configures the meeting link in the contact block.
type Schedule struct {
	URL  string `toml:"url"`
	Text string `toml:"text"`
}

// Preview limits how many items the index page shows.
type Preview struct {
	Publications int `toml:"publications"`
	Projects     int `toml:"projects"`
}

// Serve configures the preview server.
type Serve struct {
	Expires       Duration          `toml:"expires"`       // for pages
	StaticExpires Duration          `toml:"staticexpires"` // for everything else
	Headers       map[string]string `toml:"headers"`
}

// Config contains the settings from the homepage.cfg file.
type Config struct {
	SiteTitle string   `toml:"sitetitle"`
	Schedule  Schedule `toml:"schedule"`
	Preview   Preview  `toml:"preview"`
	Serve     Serve    `toml:"serve"`
}

// Default returns the settings used when there is no file.
func Default() *Config {
	return &Config{
		SiteTitle: "Personal Homepage",
		Schedule: Schedule{
			URL:  "https://cal.com/yeqi-huang/discussion?duration=30",
			Text: "If you wanna discuss with me, use this tool:",
		},
		Preview: Preview{
			Publications: 10,
			Projects:     6,
		},
	}
}

// Parse reads settings from b on top of the defaults.
func Parse(b []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("Cannot parse config file: %w", err)
	}
	return cfg, nil
}

// Load returns the settings from the named file.
// It is not an error if the file does not exist.
func Load(name string) (*Config, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("Cannot read config file: %w", err)
	}
	return Parse(b)
}
