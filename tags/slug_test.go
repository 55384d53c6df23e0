package tags

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Go", "go"},
		{"go", "go"},
		{" Go Lang ", "go-lang"},
		{"Go   Lang", "go-lang"},
		{"Go\tLang\n", "go-lang"},
		{"Rust & Go", "rust-go"},
		{"Systems Design", "systems-design"},
		{"next-js", "next-js"},
		{"--edge--case--", "edge-case"},
		{"a - b", "a-b"},
		{"C++", "c"},
		{"Node.js", "node-js"},
		{"Café Crème", "cafe-creme"},
		{"Ünïcödé", "unicode"},
		{"web3 & AI/ML", "web3-ai-ml"},
		{"snake_case", "snake-case"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.expected {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSlugifyCaseAndWhitespaceInsensitive(t *testing.T) {
	groups := [][]string{
		{"Go", "go", "GO", " go ", "\tGo\n"},
		{"Go Lang", "go lang", " Go  Lang ", "GO\tLANG"},
		{"!!!", " !!! ", "!!!"},
		{"日本語", " 日本語 "},
	}
	for _, group := range groups {
		want := Slugify(group[0])
		for _, in := range group[1:] {
			if got := Slugify(in); got != want {
				t.Errorf("Slugify(%q) = %q, want %q (same as %q)", in, got, want, group[0])
			}
		}
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	for _, in := range []string{"Rust & Go", "日本語", "Systems Design"} {
		first := Slugify(in)
		for i := 0; i < 5; i++ {
			if got := Slugify(in); got != first {
				t.Fatalf("Slugify(%q) changed between calls: %q then %q", in, first, got)
			}
		}
	}
}

func TestSlugifyOutputIsURLSafe(t *testing.T) {
	for _, in := range []string{"Rust & Go", "C#", "λ calculus", "100%", "a/b?c=d", "日本語", "#"} {
		got := Slugify(in)
		if got == "" {
			t.Errorf("Slugify(%q) is empty", in)
			continue
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") || strings.Contains(got, "--") {
			t.Errorf("Slugify(%q) = %q has stray hyphens", in, got)
		}
		for _, r := range got {
			if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '-' {
				t.Errorf("Slugify(%q) = %q contains %q", in, got, r)
			}
		}
	}
}

func TestSlugifyFallbackAvoidsCollisions(t *testing.T) {
	labels := []string{"!!!", "#", "日本語", "中文", "++"}
	seen := make(map[string]string)
	for _, l := range labels {
		s := Slugify(l)
		if !strings.HasPrefix(s, "tag-") || len(s) != len("tag-")+8 {
			t.Errorf("Slugify(%q) = %q, want tag-<8 hex>", l, s)
		}
		if prev, dup := seen[s]; dup {
			t.Errorf("Slugify(%q) and Slugify(%q) both = %q", l, prev, s)
		}
		seen[s] = l
		if !IsFallback(l) {
			t.Errorf("IsFallback(%q) = false, want true", l)
		}
	}
	for _, l := range []string{"Go", "C++", "", "  "} {
		if IsFallback(l) {
			t.Errorf("IsFallback(%q) = true, want false", l)
		}
	}
}

func TestDisplayForm(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Go Lang", "Go-Lang"},
		{"Systems Design", "Systems-Design"},
		{"Rust & Go", "Rust-&-Go"},
		{"single", "single"},
		{"  two  spaces", "--two--spaces"},
		{"tab\tkept", "tab\tkept"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := DisplayForm(tt.input); got != tt.expected {
			t.Errorf("DisplayForm(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestCanonical(t *testing.T) {
	if got := Canonical("  Go \t Lang "); got != "go lang" {
		t.Errorf("Canonical = %q, want %q", got, "go lang")
	}
}
