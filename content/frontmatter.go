package content

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

var (
	errNoFrontMatter      = errors.New("no front matter found")
	errInvalidFrontMatter = errors.New("unterminated front matter")
)

// postMeta is the YAML header of a post file.
type postMeta struct {
	Title   string   `yaml:"title"`
	Slug    string   `yaml:"slug"`
	Date    string   `yaml:"date"`
	Tags    []string `yaml:"tags"`
	Summary string   `yaml:"summary"`
	Draft   bool     `yaml:"draft"`
}

// authorMeta is the YAML header of an author file.
type authorMeta struct {
	Name       string `yaml:"name"`
	Avatar     string `yaml:"avatar"`
	Occupation string `yaml:"occupation"`
	Company    string `yaml:"company"`
	Email      string `yaml:"email"`
	Twitter    string `yaml:"twitter"`
	Bluesky    string `yaml:"bluesky"`
	Linkedin   string `yaml:"linkedin"`
	Github     string `yaml:"github"`
}

// ParseFrontMatter splits raw into its YAML header, decoded into out, and
// the markdown body. The header must open the file with a "---" line and be
// closed by another.
func ParseFrontMatter(raw []byte, out any) ([]byte, error) {
	norm := bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	norm = bytes.TrimLeft(norm, "\ufeff \t\n")

	const (
		sep      = "---"
		sepLine  = sep + "\n"
		closeMid = "\n" + sep + "\n"
	)
	if !bytes.HasPrefix(norm, []byte(sepLine)) {
		return nil, errNoFrontMatter
	}
	rest := norm[len(sepLine):]

	var header, body []byte
	switch {
	case bytes.HasPrefix(rest, []byte(sepLine)):
		body = rest[len(sepLine):]
	case bytes.Contains(rest, []byte(closeMid)):
		parts := bytes.SplitN(rest, []byte(closeMid), 2)
		header, body = parts[0], parts[1]
	case bytes.HasSuffix(bytes.TrimRight(rest, "\n"), []byte("\n"+sep)):
		header = bytes.TrimSuffix(bytes.TrimRight(rest, "\n"), []byte("\n"+sep))
	default:
		return nil, errInvalidFrontMatter
	}

	if len(bytes.TrimSpace(header)) > 0 {
		if err := yaml.Unmarshal(header, out); err != nil {
			return nil, err
		}
	}
	return bytes.TrimSpace(body), nil
}
