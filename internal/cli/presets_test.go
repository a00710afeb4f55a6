package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/qrgrid/pkg/config"
)

func TestDescribeSpec(t *testing.T) {
	tests := []struct {
		spec config.StyleSpec
		want string
	}{
		{config.StyleSpec{}, "—"},
		{config.StyleSpec{Radius: "1rem"}, "radius=1rem"},
		{config.StyleSpec{Padding: "1rem", Radius: "12px"}, "padding=1rem radius=12px"},
		{config.StyleSpec{BorderWidth: "4px", BorderColor: "black"}, "border=4px border-color=black"},
	}
	for _, tt := range tests {
		if got := describeSpec(tt.spec); got != tt.want {
			t.Errorf("describeSpec(%+v) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

func TestPresetsCommand(t *testing.T) {
	c, out := newTestCLI(t)
	root := c.RootCommand()
	root.SetArgs([]string{"presets"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, name := range config.Default().PresetNames() {
		if !strings.Contains(out.String(), name) {
			t.Errorf("presets output missing %q", name)
		}
	}
}
