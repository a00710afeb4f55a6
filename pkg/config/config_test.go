package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/matzehuels/qrgrid/pkg/errors"
	"github.com/matzehuels/qrgrid/pkg/style"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[defaults]
level = "H"
formats = ["svg", "png"]

[style]
background = "#fafafa"
padding = "1rem"

[dot]
background = "red"
radius = "2px"

[presets.brand.dot]
background = "#e4002b"

[server]
addr = ":9000"
redis_url = "redis://localhost:6379/0"
cache_ttl = "2h"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Defaults.Level != "H" || !slices.Equal(cfg.Defaults.Formats, []string{"svg", "png"}) {
		t.Errorf("defaults = %+v", cfg.Defaults)
	}
	if cfg.Defaults.Engine != "rsc" || cfg.Defaults.Scale != 4 {
		t.Errorf("unset defaults were not kept: %+v", cfg.Defaults)
	}
	if cfg.Server.Addr != ":9000" || cfg.Server.CacheTTL != 2*time.Hour {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Server.KeyPrefix != "qrgrid:" {
		t.Errorf("KeyPrefix = %q, want default", cfg.Server.KeyPrefix)
	}
	if _, ok := cfg.Presets["dots"]; !ok {
		t.Error("builtin presets dropped")
	}

	container, dot, err := cfg.Styles("brand")
	if err != nil {
		t.Fatal(err)
	}
	if c, _ := container.Background.Get(); c != style.RGB(0xfa, 0xfa, 0xfa) {
		t.Errorf("container background = %v", c)
	}
	if c, _ := dot.Background.Get(); c != style.RGB(0xe4, 0x00, 0x2b) {
		t.Errorf("preset did not override dot background: %v", c)
	}
	if r, _ := dot.CornerRadii.TopLeft.Get(); r != style.Px(2) {
		t.Errorf("dot radius from [dot] lost: %v", r)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"syntax", "[defaults\n", errors.ErrCodeInvalidInput},
		{"unknown key", "[style]\nbackgroud = \"red\"\n", errors.ErrCodeInvalidInput},
		{"bad colour", "[dot]\nbackground = \"#zzz\"\n", errors.ErrCodeInvalidStyle},
		{"bad length", "[style]\npadding = \"wide\"\n", errors.ErrCodeInvalidStyle},
		{"bad preset", "[presets.x.style]\nradius = \"-4px\"\n", errors.ErrCodeInvalidStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("explicit missing path should fail")
	}
}

func TestStylesUnknownPreset(t *testing.T) {
	_, _, err := Default().Styles("nope")
	if !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("err = %v", err)
	}
}

func TestPresetNames(t *testing.T) {
	want := []string{"classic", "dots", "framed", "soft"}
	if got := Default().PresetNames(); !slices.Equal(got, want) {
		t.Errorf("PresetNames() = %v, want %v", got, want)
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("builtin presets invalid: %v", err)
	}
}

func TestStyleSpecRefinement(t *testing.T) {
	tests := []struct {
		name string
		spec StyleSpec
		want style.Refinement
	}{
		{"empty", StyleSpec{}, style.Refinement{}},
		{
			"padding axes",
			StyleSpec{Padding: "4px", PaddingX: "1rem"},
			style.Refinement{Padding: style.Edges{
				Top: style.Some(style.Px(4)), Bottom: style.Some(style.Px(4)),
				Left: style.Some(style.Rems(1)), Right: style.Some(style.Rems(1)),
			}},
		},
		{
			"size and width",
			StyleSpec{Size: "100", Width: "120px"},
			style.Refinement{Size: style.SizeRefinement{Width: style.Some(style.Px(120)), Height: style.Some(style.Px(100))}},
		},
		{
			"border",
			StyleSpec{BorderWidth: "2px", BorderColor: "blue"},
			style.Refinement{BorderWidth: style.Some(style.Px(2)), BorderColor: style.Some(style.Blue)},
		},
		{
			"min size and radius",
			StyleSpec{MinSize: "0.5rem", Radius: "3px"},
			style.Refinement{MinSize: style.Square(style.Rems(0.5)), CornerRadii: style.AllCorners(style.Px(3))},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.Refinement()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Refinement() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
