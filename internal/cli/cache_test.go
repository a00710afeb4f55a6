package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/qrgrid/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", base)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(base, appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCachePathCommand(t *testing.T) {
	c, out := newTestCLI(t)
	root := c.RootCommand()
	root.SetArgs([]string{"cache", "path"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out.String()), appName) {
		t.Errorf("cache path = %q, should end with %q", out.String(), appName)
	}
}

func TestCacheClearCommand(t *testing.T) {
	c, _ := newTestCLI(t)

	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, k := range []string{"a", "b", "c"} {
		if err := fc.Set(ctx, k, []byte(k), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	root := c.RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	for _, k := range []string{"a", "b", "c"} {
		if _, hit, _ := fc.Get(ctx, k); hit {
			t.Errorf("key %q survived cache clear", k)
		}
	}
}

func TestCacheClearMissingDir(t *testing.T) {
	c, _ := newTestCLI(t)
	dir, _ := cacheDir()
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Skip("cache dir unexpectedly exists")
	}
	root := c.RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
}
