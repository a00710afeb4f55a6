// Package config loads qrgrid's TOML configuration file.
//
// The file lives at $XDG_CONFIG_HOME/qrgrid/config.toml unless --config
// points elsewhere. Every section is optional:
//
//	[defaults]
//	level = "Q"
//	engine = "rsc"
//	formats = ["svg", "png"]
//	scale = 8
//
//	[style]
//	background = "#fafafa"
//	padding = "1rem"
//	radius = "8px"
//
//	[dot]
//	background = "#000080"
//	radius = "1rem"
//
//	[presets.brand.dot]
//	background = "#e4002b"
//
//	[server]
//	addr = ":8080"
//	redis_url = "redis://localhost:6379/0"
//	cache_ttl = "720h"
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/qrgrid/pkg/errors"
	"github.com/matzehuels/qrgrid/pkg/style"
)

// Config is the decoded configuration file.
type Config struct {
	Defaults Defaults          `toml:"defaults"`
	Style    StyleSpec         `toml:"style"`
	Dot      StyleSpec         `toml:"dot"`
	Presets  map[string]Preset `toml:"presets"`
	Server   Server            `toml:"server"`
}

// Defaults seed the render flags.
type Defaults struct {
	Level     string   `toml:"level"`
	Engine    string   `toml:"engine"`
	Formats   []string `toml:"formats"`
	Scale     float64  `toml:"scale"`
	RemSize   float64  `toml:"rem_size"`
	QuietZone int      `toml:"quiet_zone"`
}

// Preset is a named pair of container and dot styles.
type Preset struct {
	Style StyleSpec `toml:"style"`
	Dot   StyleSpec `toml:"dot"`
}

// Server configures `qrgrid serve`. When both RedisURL and MongoURI are set,
// Redis wins.
type Server struct {
	Addr          string        `toml:"addr"`
	RedisURL      string        `toml:"redis_url"`
	MongoURI      string        `toml:"mongo_uri"`
	MongoDatabase string        `toml:"mongo_database"`
	CacheTTL      time.Duration `toml:"cache_ttl"`
	KeyPrefix     string        `toml:"key_prefix"`
	ReadTimeout   time.Duration `toml:"read_timeout"`
	WriteTimeout  time.Duration `toml:"write_timeout"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Defaults: Defaults{
			Level:     "M",
			Engine:    "rsc",
			Formats:   []string{"svg"},
			Scale:     4,
			RemSize:   style.DefaultRemSize,
			QuietZone: 2,
		},
		Presets: builtinPresets(),
		Server: Server{
			Addr:          ":8080",
			MongoDatabase: "qrgrid",
			CacheTTL:      30 * 24 * time.Hour,
			KeyPrefix:     "qrgrid:",
			ReadTimeout:   10 * time.Second,
			WriteTimeout:  30 * time.Second,
		},
	}
}

func builtinPresets() map[string]Preset {
	return map[string]Preset{
		"classic": {},
		"dots":    {Dot: StyleSpec{Radius: "1rem"}},
		"soft": {
			Style: StyleSpec{Padding: "1rem", Radius: "12px"},
			Dot:   StyleSpec{Radius: "1px"},
		},
		"framed": {
			Style: StyleSpec{Padding: "0.75rem", BorderWidth: "4px", BorderColor: "black"},
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/qrgrid/config.toml or its platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "qrgrid", "config.toml"), nil
}

// Load reads path over the defaults. An empty path means DefaultPath, which
// may be missing; an explicit path must exist. Unknown keys are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) && !explicit {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidInput,
			"unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	for name, p := range builtinPresets() {
		if _, ok := cfg.Presets[name]; !ok {
			cfg.Presets[name] = p
		}
	}
	return cfg, cfg.Validate()
}

// Validate checks every style string in the file.
func (c Config) Validate() error {
	if _, _, err := c.Styles(""); err != nil {
		return err
	}
	for name := range c.Presets {
		if _, _, err := c.Styles(name); err != nil {
			return err
		}
	}
	return nil
}

// PresetNames lists the available presets, sorted.
func (c Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Styles resolves the container and dot refinements: [style] and [dot]
// first, then the named preset on top. An empty name selects no preset.
func (c Config) Styles(preset string) (container, dot style.Refinement, err error) {
	if container, err = c.Style.Refinement(); err != nil {
		return style.Refinement{}, style.Refinement{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "[style]")
	}
	if dot, err = c.Dot.Refinement(); err != nil {
		return style.Refinement{}, style.Refinement{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "[dot]")
	}
	if preset == "" {
		return container, dot, nil
	}

	p, ok := c.Presets[preset]
	if !ok {
		return style.Refinement{}, style.Refinement{}, errors.New(errors.ErrCodeInvalidStyle,
			"unknown preset %q (available: %s)", preset, strings.Join(c.PresetNames(), ", "))
	}
	ps, err := p.Style.Refinement()
	if err != nil {
		return style.Refinement{}, style.Refinement{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "[presets.%s.style]", preset)
	}
	pd, err := p.Dot.Refinement()
	if err != nil {
		return style.Refinement{}, style.Refinement{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "[presets.%s.dot]", preset)
	}
	return container.Refine(ps), dot.Refine(pd), nil
}
