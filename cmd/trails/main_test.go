package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/binarytrails/trails"
	"github.com/binarytrails/trails/content"
	"github.com/binarytrails/trails/tags"
)

func TestToTitle(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"my-blog", "My Blog"},
		{"myblog", "Myblog"},
		{"binary-trails-notes", "Binary Trails Notes"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := toTitle(tt.input); got != tt.want {
			t.Errorf("toTitle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWriteScaffold(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-blog")
	data := scaffoldData{DirName: "my-blog", SiteName: "My Blog", Today: "2025-01-02"}
	if err := writeScaffold(dir, data); err != nil {
		t.Fatalf("writeScaffold: %v", err)
	}

	for _, name := range []string{
		"site.yaml",
		".env.example",
		"content/posts/hello-world.md",
		"content/authors/default.md",
		"public/css/tailwind.css",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("scaffold missing %s: %v", name, err)
		}
	}

	raw, err := os.ReadFile(filepath.Join(dir, "site.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `title: "My Blog"`) {
		t.Errorf("site.yaml does not carry the site name:\n%s", raw)
	}

	// The generated site must load and validate as-is.
	cfg, err := trails.LoadConfig(filepath.Join(dir, "site.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	snap, err := content.DirSource{Root: cfg.ContentDir}.Load(t.Context())
	if err != nil {
		t.Fatalf("Load scaffold content: %v", err)
	}
	if len(snap.Posts) != 1 || snap.Posts[0].Slug != "hello-world" {
		t.Errorf("scaffold posts = %v, want hello-world", snap.Posts)
	}
	if _, ok := snap.Authors["default"]; !ok {
		t.Errorf("scaffold has no default author")
	}
}

func writeSite(t *testing.T, posts map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"site.yaml": "title: Check\nurl: https://example.com\ncontent_dir: content\n",
	}
	for name, body := range posts {
		files[filepath.Join("content", "posts", name)] = body
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return filepath.Join(dir, "site.yaml")
}

func TestCheckReportsTagCollisions(t *testing.T) {
	path := writeSite(t, map[string]string{
		"c.md":       "---\ntitle: C\ndate: 2024-01-01\ntags: [C]\n---\n",
		"cpp.md":     "---\ntitle: C++\ndate: 2024-02-01\ntags: [C++, \"+++\"]\n---\n",
		"unicode.md": "---\ntitle: Go\ndate: 2023-01-01\ntags: [Go]\n---\n",
	})

	var out bytes.Buffer
	if err := check(path, &out); err != nil {
		t.Fatalf("check: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"posts:   3\n",
		"tags:    3\n",
		"tag slug collisions:\n",
		`  /tags/c/ <- ["c++" "c"]`,
		"hash-derived tag slugs",
		`  /tags/` + tags.Slugify("+++") + `/ <- "+++"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("check output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "/tags/go/ <-") {
		t.Errorf("check listed a tag without a collision:\n%s", got)
	}
}

func TestCheckCleanSite(t *testing.T) {
	path := writeSite(t, map[string]string{
		"a.md": "---\ntitle: A\ndate: 2024-01-01\ntags: [Go]\n---\n",
	})
	var out bytes.Buffer
	if err := check(path, &out); err != nil {
		t.Fatalf("check: %v", err)
	}
	if got := out.String(); strings.Contains(got, "collisions") || strings.Contains(got, "hash-derived") {
		t.Errorf("clean site reported problems:\n%s", got)
	}
}

func TestCheckContentProblems(t *testing.T) {
	path := writeSite(t, map[string]string{
		"ok.md":       "---\ntitle: OK\ndate: 2024-01-01\n---\n",
		"untitled.md": "---\ndate: 2024-01-02\n---\n",
		"undated.md":  "---\ntitle: Undated\ndate: someday\n---\n",
	})
	var out bytes.Buffer
	err := check(path, &out)
	if err == nil || err.Error() != "2 content problem(s)" {
		t.Fatalf("check err = %v, want %q", err, "2 content problem(s)")
	}
	for _, want := range []string{"title is required", "not a valid timestamp"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("check output missing %q:\n%s", want, out.String())
		}
	}
}

func TestCheckMissingConfig(t *testing.T) {
	if err := check(filepath.Join(t.TempDir(), "nope.yaml"), &bytes.Buffer{}); err == nil {
		t.Error("check should fail without a config file")
	}
}
