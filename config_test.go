package trails

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "title: Trails\nurl: https://example.com/\ncontent_dir: content\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	dir := filepath.Dir(path)
	tests := []struct {
		name, got, want string
	}{
		{"url", cfg.URL, "https://example.com"},
		{"addr", cfg.Addr, ":3000"},
		{"locale", cfg.Locale, "en-US"},
		{"theme.primary", cfg.Theme.Primary, "indigo"},
		{"theme.gray", cfg.Theme.Gray, "slate"},
		{"log.level", cfg.Log.Level, "info"},
		{"content_dir", cfg.ContentDir, filepath.Join(dir, "content")},
		{"static_dir", cfg.StaticDir, filepath.Join(dir, "public")},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
	if cfg.MaxDisplay != 5 {
		t.Errorf("max_display = %d, want 5", cfg.MaxDisplay)
	}
	if cfg.PostsPerPage != 10 {
		t.Errorf("posts_per_page = %d, want 10", cfg.PostsPerPage)
	}
}

func TestLoadConfigFull(t *testing.T) {
	path := writeConfig(t, `
title: Binary Trails
header_title: Trails
url: https://trails.example.com
locale: en-GB
sticky_nav: true
max_display: 7
sqlite_path: /var/lib/trails/blog.db
nav_links:
  - title: Blog
    href: /posts/
  - title: About
    href: /about/
theme:
  primary: blue
  gray: gray
log:
  level: debug
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MaxDisplay != 7 || !cfg.StickyNav || cfg.Theme.Primary != "blue" || cfg.Log.Level != "debug" {
		t.Errorf("LoadConfig = %+v", cfg)
	}
	if len(cfg.NavLinks) != 2 || cfg.NavLinks[1].Href != "/about/" {
		t.Errorf("nav_links = %+v", cfg.NavLinks)
	}
	if cfg.SQLitePath != "/var/lib/trails/blog.db" {
		t.Errorf("sqlite_path = %q, want absolute path kept", cfg.SQLitePath)
	}

	site := cfg.Site(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if site.Year != 2025 || site.HeaderTitle != "Trails" || len(site.NavLinks) != 2 {
		t.Errorf("Site = %+v", site)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "title: Trails\nurl: https://example.com\ncontent_dir: content\nmax_display: 5\n")
	t.Setenv("TRAILS_MAX_DISPLAY", "9")
	t.Setenv("TRAILS_LOG__LEVEL", "warn")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MaxDisplay != 9 {
		t.Errorf("max_display = %d, want 9", cfg.MaxDisplay)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "warn")
	}
}

func TestLoadConfigDotEnv(t *testing.T) {
	path := writeConfig(t, "title: Trails\nurl: https://example.com\ncontent_dir: content\n")
	envFile := filepath.Join(filepath.Dir(path), ".env")
	if err := os.WriteFile(envFile, []byte("TRAILS_ADDR=:8088\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// godotenv exports into the process; clear it when the test ends.
	t.Setenv("TRAILS_ADDR", "")
	os.Unsetenv("TRAILS_ADDR")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":8088" {
		t.Errorf("addr = %q, want %q", cfg.Addr, ":8088")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"no source", "title: T\nurl: https://example.com\n", "ContentDir"},
		{"max display", "title: T\nurl: https://example.com\ncontent_dir: c\nmax_display: 500\n", "MaxDisplay"},
		{"bad url", "title: T\nurl: not a url\ncontent_dir: c\n", "URL"},
		{"bad palette", "title: T\nurl: https://example.com\ncontent_dir: c\ntheme:\n  primary: neon\n", "Primary"},
		{"bad locale", "title: T\nurl: https://example.com\ncontent_dir: c\nlocale: \"!!\"\n", "locale"},
		{"nav link", "title: T\nurl: https://example.com\ncontent_dir: c\nnav_links:\n  - title: Blog\n", "Href"},
	}
	for _, tt := range tests {
		_, err := LoadConfig(writeConfig(t, tt.body))
		if err == nil {
			t.Errorf("%s: LoadConfig succeeded, want error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error = %v, want mention of %q", tt.name, err, tt.want)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadConfig on missing file succeeded")
	}
}

func TestNewLogger(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "trails.log")
	log, err := NewLogger(LogConfig{File: file, Level: "info"})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	log.Infow("hello", "k", "v")
	log.Debugw("hidden")
	_ = log.Sync()

	raw, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(raw)
	if !strings.Contains(out, `"msg":"hello"`) || !strings.Contains(out, `"level":"info"`) {
		t.Errorf("log output = %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written at info level")
	}
}
