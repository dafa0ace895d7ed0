package skills

import (
	"fmt"

	"github.com/samsaffron/skilldeck/internal/frontmatter"
)

// Source identifies where a skill was loaded from.
type Source int

const (
	SourceBuiltin Source = iota
	SourceUser
	SourceProject
)

func (s Source) String() string {
	switch s {
	case SourceBuiltin:
		return "builtin"
	case SourceUser:
		return "user"
	case SourceProject:
		return "project"
	default:
		return "unknown"
	}
}

// Skill is a reference pack an agent loads as background knowledge.
// It is defined by a SKILL.md file (or a flat <name>.md) with YAML
// frontmatter and a Markdown body.
type Skill struct {
	Name        string
	Description string
	License     string
	Tools       []string
	Metadata    map[string]string
	Extras      map[string]any

	// Body is the Markdown content after the frontmatter. Empty unless
	// the skill was loaded with the body requested.
	Body string

	Source     Source
	SourcePath string

	// Resource files bundled alongside SKILL.md.
	References []string
	Scripts    []string
	Assets     []string

	loaded bool
}

// IsLoaded reports whether the full body was loaded, as opposed to
// metadata-only discovery.
func (s *Skill) IsLoaded() bool {
	return s.loaded
}

// Validate checks the skill metadata against naming and length rules.
func (s *Skill) Validate() error {
	meta := frontmatter.Meta{Name: s.Name, Description: s.Description}
	if err := meta.Validate(); err != nil {
		return fmt.Errorf("skill %q: %w", s.Name, err)
	}
	return nil
}
