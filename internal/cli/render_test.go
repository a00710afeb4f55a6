package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadContent(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"argument", []string{"hello"}, "ignored", "hello"},
		{"stdin when no args", nil, "from stdin\n", "from stdin"},
		{"dash reads stdin", []string{"-"}, "dash\r\n", "dash"},
		{"keeps inner newlines", nil, "a\nb\n", "a\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readContent(tt.args, strings.NewReader(tt.stdin))
			if err != nil {
				t.Fatalf("readContent() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("readContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		want    map[string]string
	}{
		{"default single", "", []string{"svg"}, map[string]string{"svg": "qrcode.svg"}},
		{"explicit single", "out/site.svg", []string{"svg"}, map[string]string{"svg": "out/site.svg"}},
		{"single keeps odd extension", "code.image", []string{"png"}, map[string]string{"png": "code.image"}},
		{"multiple from base", "out/site", []string{"svg", "png"}, map[string]string{"svg": "out/site.svg", "png": "out/site.png"}},
		{"multiple strips format ext", "site.svg", []string{"svg", "json"}, map[string]string{"svg": "site.svg", "json": "site.json"}},
		{"multiple default", "", []string{"svg", "txt"}, map[string]string{"svg": "qrcode.svg", "txt": "qrcode.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.output, tt.formats)
			if len(got) != len(tt.want) {
				t.Fatalf("outputPaths() = %v, want %v", got, tt.want)
			}
			for f, p := range tt.want {
				if got[f] != p {
					t.Errorf("outputPaths()[%s] = %q, want %q", f, got[f], p)
				}
			}
		})
	}
}

func TestWriteArtifactRejectsTraversal(t *testing.T) {
	if err := writeArtifact("../escape.svg", []byte("x")); err == nil {
		t.Error("writeArtifact should reject path traversal")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Errorf("truncate() = %q, want %q", got, "abcd…")
	}
}

func TestRenderCommandWritesFiles(t *testing.T) {
	c, _ := newTestCLI(t)
	base := filepath.Join(t.TempDir(), "out", "hello")

	root := c.RootCommand()
	root.SetArgs([]string{"render", "--no-cache", "-f", "svg,json", "-o", base, "--dot-color", "#ff0000", "hello"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Errorf("svg output starts with %q", svg[:min(20, len(svg))])
	}
	if !bytes.Contains(svg, []byte("#ff0000")) {
		t.Error("svg should use the dot colour from --dot-color")
	}

	data, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var doc struct {
		Content string   `json:"content"`
		Matrix  []string `json:"matrix"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal json: %v", err)
	}
	if doc.Content != "hello" {
		t.Errorf("json content = %q, want hello", doc.Content)
	}
	if len(doc.Matrix) == 0 || len(doc.Matrix[0]) != len(doc.Matrix) {
		t.Errorf("json matrix should be square, got %d rows", len(doc.Matrix))
	}
}

func TestRenderCommandPrintsText(t *testing.T) {
	c, out := newTestCLI(t)
	root := c.RootCommand()
	root.SetArgs([]string{"render", "--no-cache", "-f", "txt", "--quiet-zone", "1", "hi"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	// 21 modules plus a one-module margin each side, two rows per line.
	if want := (21 + 2 + 1) / 2; len(lines) != want {
		t.Errorf("got %d lines, want %d", len(lines), want)
	}
	if !strings.ContainsAny(out.String(), "█▀▄") {
		t.Error("text output should contain block characters")
	}
}

func TestRenderCommandValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"render", "--no-cache", "-f", "gif", "x"}},
		{"bad level", []string{"render", "--no-cache", "-l", "Z", "x"}},
		{"bad engine", []string{"render", "--no-cache", "--engine", "zxing", "x"}},
		{"bad colour", []string{"render", "--no-cache", "--dot-color", "notacolour", "x"}},
		{"bad length", []string{"render", "--no-cache", "--padding", "12parsecs", "x"}},
		{"unknown preset", []string{"render", "--no-cache", "--preset", "nope", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCLI(t)
			root := c.RootCommand()
			root.SetArgs(tt.args)
			root.SetErr(&bytes.Buffer{})
			if err := root.Execute(); err == nil {
				t.Error("Execute() should fail")
			}
		})
	}
}
