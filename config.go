package trails

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"golang.org/x/text/language"

	"github.com/binarytrails/trails/listing"
	"github.com/binarytrails/trails/views"
)

// SiteConfig holds all configuration for a trails site. It is loaded once
// and treated as read-only afterwards.
type SiteConfig struct {
	Title       string    `koanf:"title" validate:"required"`
	HeaderTitle string    `koanf:"header_title"`
	Description string    `koanf:"description"`
	Author      string    `koanf:"author"`
	Locale      string    `koanf:"locale"`
	URL         string    `koanf:"url" validate:"required,url"`
	Email       string    `koanf:"email" validate:"omitempty,email"`
	Github      string    `koanf:"github" validate:"omitempty,url"`
	Linkedin    string    `koanf:"linkedin" validate:"omitempty,url"`
	Twitter     string    `koanf:"twitter" validate:"omitempty,url"`
	Bluesky     string    `koanf:"bluesky" validate:"omitempty,url"`
	StickyNav   bool      `koanf:"sticky_nav"`
	NavLinks    []NavLink `koanf:"nav_links" validate:"dive"`

	MaxDisplay   int `koanf:"max_display" validate:"min=1,max=100"`
	PostsPerPage int `koanf:"posts_per_page" validate:"min=1,max=100"`

	Theme ThemeConfig `koanf:"theme"`

	Addr       string `koanf:"addr" validate:"required"`
	ContentDir string `koanf:"content_dir" validate:"required_without=SQLitePath"`
	SQLitePath string `koanf:"sqlite_path" validate:"required_without=ContentDir"`
	StaticDir  string `koanf:"static_dir"`
	Watch      bool   `koanf:"watch"`

	Log LogConfig `koanf:"log"`
}

// NavLink is one header navigation entry.
type NavLink struct {
	Title string `koanf:"title" validate:"required"`
	Href  string `koanf:"href" validate:"required"`
}

// ThemeConfig selects the color palettes used by /theme.css.
type ThemeConfig struct {
	Primary string `koanf:"primary" validate:"oneof=indigo blue slate gray"`
	Gray    string `koanf:"gray" validate:"oneof=slate gray"`
}

// LogConfig controls the zap logger built by NewLogger.
type LogConfig struct {
	File    string `koanf:"file"`
	Level   string `koanf:"level" validate:"oneof=debug info warn error"`
	Console bool   `koanf:"console"`
}

var validate = validator.New()

func (c *SiteConfig) setDefaults() {
	if c.Locale == "" {
		c.Locale = "en-US"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.MaxDisplay == 0 {
		c.MaxDisplay = listing.DefaultMaxDisplay
	}
	if c.PostsPerPage == 0 {
		c.PostsPerPage = 10
	}
	if c.Theme.Primary == "" {
		c.Theme.Primary = "indigo"
	}
	if c.Theme.Gray == "" {
		c.Theme.Gray = "slate"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.URL = strings.TrimRight(c.URL, "/")
}

// Validate applies defaults and checks the configuration.
func (c *SiteConfig) Validate() error {
	c.setDefaults()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("trails: config: %w", err)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("trails: config: locale %q: %w", c.Locale, err)
	}
	return nil
}

// LoadConfig builds a SiteConfig from three layers, highest precedence last:
//
//  1. an optional .env file next to the config file, exported to the environment
//  2. the YAML file at path
//  3. environment variables prefixed TRAILS_, where __ maps to "."
//     (TRAILS_LOG__LEVEL=debug sets log.level)
//
// Relative content, database and static paths are resolved against the
// config file's directory.
func LoadConfig(path string) (*SiteConfig, error) {
	dir := filepath.Dir(path)
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("trails: config: load .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("trails: config: read %s: %w", path, err)
	}
	if err := k.Load(env.Provider("TRAILS_", ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, "TRAILS_"), "__", "."))
	}), nil); err != nil {
		return nil, fmt.Errorf("trails: config: env overlay: %w", err)
	}

	var cfg SiteConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("trails: config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ContentDir = resolvePath(dir, cfg.ContentDir)
	cfg.SQLitePath = resolvePath(dir, cfg.SQLitePath)
	cfg.StaticDir = resolvePath(dir, cfg.StaticDir)
	return &cfg, nil
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Site converts the configuration into the view model shared by every page.
func (c *SiteConfig) Site(now time.Time) views.Site {
	links := make([]views.NavLink, 0, len(c.NavLinks))
	for _, l := range c.NavLinks {
		links = append(links, views.NavLink{Title: l.Title, Href: l.Href})
	}
	return views.Site{
		Title:       c.Title,
		HeaderTitle: c.HeaderTitle,
		Description: c.Description,
		Author:      c.Author,
		Locale:      c.Locale,
		URL:         c.URL,
		Email:       c.Email,
		Github:      c.Github,
		Linkedin:    c.Linkedin,
		Twitter:     c.Twitter,
		Bluesky:     c.Bluesky,
		StickyNav:   c.StickyNav,
		NavLinks:    links,
		Year:        now.Year(),
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides the directory served under /static/.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithClock replaces time.Now, used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
