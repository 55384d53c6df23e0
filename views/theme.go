package views

import (
	"fmt"
	"strings"
)

// Palette maps a shade (50..950) to a hex colour.
type Palette map[int]string

// Shades lists palette keys in ascending order.
var Shades = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// Palettes are the colour scales the theme can be built from.
var Palettes = map[string]Palette{
	"indigo": {
		50: "#eef2ff", 100: "#e0e7ff", 200: "#c7d2fe", 300: "#a5b4fc", 400: "#818cf8",
		500: "#6366f1", 600: "#4f46e5", 700: "#4338ca", 800: "#3730a3", 900: "#312e81", 950: "#1e1b4b",
	},
	"blue": {
		50: "#eff6ff", 100: "#dbeafe", 200: "#bfdbfe", 300: "#93c5fd", 400: "#60a5fa",
		500: "#3b82f6", 600: "#2563eb", 700: "#1d4ed8", 800: "#1e40af", 900: "#1e3a8a", 950: "#172554",
	},
	"slate": {
		50: "#f8fafc", 100: "#f1f5f9", 200: "#e2e8f0", 300: "#cbd5e1", 400: "#94a3b8",
		500: "#64748b", 600: "#475569", 700: "#334155", 800: "#1e293b", 900: "#0f172a", 950: "#020617",
	},
	"gray": {
		50: "#f9fafb", 100: "#f3f4f6", 200: "#e5e7eb", 300: "#d1d5db", 400: "#9ca3af",
		500: "#6b7280", 600: "#4b5563", 700: "#374151", 800: "#1f2937", 900: "#111827", 950: "#030712",
	},
}

// Theme is the set of design tokens the components' utility classes refer to.
type Theme struct {
	Primary     Palette
	Gray        Palette
	Accent      Palette // decorative blobs on the about page
	FontSans    []string
	FontHeading []string
	LineHeights map[int]string
	ZIndex      []int
}

var defaultSans = []string{
	"var(--font-inter)", "ui-sans-serif", "system-ui", "sans-serif",
	`"Apple Color Emoji"`, `"Segoe UI Emoji"`,
}

// NewTheme builds the theme for the named primary and gray palettes. Unknown
// names fall back to indigo and slate.
func NewTheme(primary, gray string) Theme {
	p, ok := Palettes[primary]
	if !ok {
		p = Palettes["indigo"]
	}
	g, ok := Palettes[gray]
	if !ok {
		g = Palettes["slate"]
	}
	return Theme{
		Primary:     p,
		Gray:        g,
		Accent:      Palettes["blue"],
		FontSans:    defaultSans,
		FontHeading: append([]string{"var(--font-space-grotesk)"}, defaultSans...),
		LineHeights: map[int]string{11: "2.75rem", 12: "3rem", 13: "3.25rem", 14: "3.5rem"},
		ZIndex:      []int{60, 70, 80},
	}
}

// DefaultTheme is indigo on slate.
var DefaultTheme = NewTheme("indigo", "slate")

// CSS renders the theme as custom properties plus the handful of utility
// classes the stylesheet build does not ship (patterns, blob animation,
// extended line heights and z-index steps).
func (t Theme) CSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, s := range Shades {
		fmt.Fprintf(&b, "  --color-primary-%d: %s;\n", s, t.Primary[s])
	}
	for _, s := range Shades {
		fmt.Fprintf(&b, "  --color-gray-%d: %s;\n", s, t.Gray[s])
	}
	for _, s := range Shades {
		fmt.Fprintf(&b, "  --color-accent-%d: %s;\n", s, t.Accent[s])
	}
	fmt.Fprintf(&b, "  --font-sans: %s;\n", strings.Join(t.FontSans, ", "))
	fmt.Fprintf(&b, "  --font-heading: %s;\n", strings.Join(t.FontHeading, ", "))
	b.WriteString("}\n\n")

	for _, s := range Shades {
		fmt.Fprintf(&b, ".text-primary-%d { color: var(--color-primary-%d); }\n", s, s)
		fmt.Fprintf(&b, ".bg-primary-%d { background-color: var(--color-primary-%d); }\n", s, s)
		fmt.Fprintf(&b, ".border-primary-%d { border-color: var(--color-primary-%d); }\n", s, s)
		fmt.Fprintf(&b, ".hover\\:text-primary-%d:hover { color: var(--color-primary-%d); }\n", s, s)
		fmt.Fprintf(&b, ".hover\\:bg-primary-%d:hover { background-color: var(--color-primary-%d); }\n", s, s)
	}
	for _, s := range Shades {
		fmt.Fprintf(&b, ".text-gray-%d { color: var(--color-gray-%d); }\n", s, s)
		fmt.Fprintf(&b, ".bg-gray-%d { background-color: var(--color-gray-%d); }\n", s, s)
		fmt.Fprintf(&b, ".border-gray-%d { border-color: var(--color-gray-%d); }\n", s, s)
	}
	for _, s := range Shades {
		fmt.Fprintf(&b, ".bg-accent-%d { background-color: var(--color-accent-%d); }\n", s, s)
		fmt.Fprintf(&b, ".dark .dark\\:bg-accent-%d { background-color: var(--color-accent-%d); }\n", s, s)
	}
	b.WriteString(".font-sans { font-family: var(--font-sans); }\n")
	b.WriteString(".font-space-grotesk { font-family: var(--font-heading); }\n")

	for _, k := range []int{11, 12, 13, 14} {
		fmt.Fprintf(&b, ".leading-%d { line-height: %s; }\n", k, t.LineHeights[k])
	}
	for _, z := range t.ZIndex {
		fmt.Fprintf(&b, ".z-%d { z-index: %d; }\n", z, z)
	}

	b.WriteString(`
@keyframes blob {
  0% { transform: translate(0px, 0px) scale(1); }
  33% { transform: translate(30px, -50px) scale(1.1); }
  66% { transform: translate(-20px, 20px) scale(0.9); }
  100% { transform: translate(0px, 0px) scale(1); }
}
.animate-blob { animation: blob 20s infinite; }
.animation-delay-2000 { animation-delay: 2s; }
.animation-delay-4000 { animation-delay: 4s; }
.bg-grid-pattern-light { background-image: linear-gradient(to right, rgba(0, 0, 0, 0.1) 1px, transparent 1px), linear-gradient(to bottom, rgba(0, 0, 0, 0.1) 1px, transparent 1px); }
.bg-grid-pattern-dark { background-image: linear-gradient(to right, rgba(255, 255, 255, 0.1) 1px, transparent 1px), linear-gradient(to bottom, rgba(255, 255, 255, 0.1) 1px, transparent 1px); }
.bg-dots-pattern-light { background-image: radial-gradient(rgba(0, 0, 0, 0.1) 1px, transparent 1px); }
.bg-dots-pattern-dark { background-image: radial-gradient(rgba(255, 255, 255, 0.1) 1px, transparent 1px); }
.bg-grid-pattern { background-size: 40px 40px; }
.bg-dots-pattern { background-size: 20px 20px; }
.prose a { color: var(--color-primary-500); }
.prose a:hover { color: var(--color-primary-600); }
.prose a code { color: var(--color-primary-400); }
.prose h1, .prose h2 { font-weight: 700; letter-spacing: -0.025em; }
.prose h3 { font-weight: 600; }
.prose code { color: #6366f1; }
.dark .prose-invert a:hover { color: var(--color-primary-400); }
.dark .prose-invert h1, .dark .prose-invert h2, .dark .prose-invert h3,
.dark .prose-invert h4, .dark .prose-invert h5, .dark .prose-invert h6 { color: var(--color-gray-100); }
`)
	return b.String()
}
