// Package agents loads persona definitions: frontmatter describing the
// agent plus a Markdown body used as its system prompt.
package agents

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/samsaffron/skilldeck/internal/frontmatter"
	"github.com/samsaffron/skilldeck/internal/prompt"
)

// Source identifies where an agent was loaded from.
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

// Agent is a persona definition: identity, tool allowlist, preferred
// model, and the system prompt body.
type Agent struct {
	Name        string
	Description string
	Model       string
	Tools       []string
	Metadata    map[string]string
	Extras      map[string]any

	// SystemPrompt is the Markdown body after the frontmatter.
	SystemPrompt string

	Source     Source
	SourcePath string

	// Compiled tool patterns, built lazily by AllowsTool.
	toolPatterns []glob.Glob
}

// Validate checks the agent metadata against naming and length rules.
func (a *Agent) Validate() error {
	meta := frontmatter.Meta{Name: a.Name, Description: a.Description}
	if err := meta.Validate(); err != nil {
		return fmt.Errorf("agent %q: %w", a.Name, err)
	}
	return nil
}

// AllowsTool reports whether the agent's tool allowlist permits the
// named tool. Entries are glob patterns ("mcp_*" matches any MCP tool),
// matched case-insensitively. An empty allowlist permits everything.
func (a *Agent) AllowsTool(tool string) bool {
	if len(a.Tools) == 0 {
		return true
	}

	if a.toolPatterns == nil {
		for _, pattern := range a.Tools {
			g, err := glob.Compile(strings.ToLower(pattern))
			if err != nil {
				continue
			}
			a.toolPatterns = append(a.toolPatterns, g)
		}
	}

	tool = strings.ToLower(tool)
	for _, g := range a.toolPatterns {
		if g.Match(tool) {
			return true
		}
	}
	return false
}

// ExpandedSystemPrompt returns the system prompt with file includes
// resolved relative to the agent's source file. Builtin agents carry no
// includes, so their prompt passes through unchanged.
func (a *Agent) ExpandedSystemPrompt() (string, error) {
	if a.SourcePath == "" {
		return a.SystemPrompt, nil
	}
	return prompt.Expand(a.SystemPrompt, filepath.Dir(a.SourcePath), prompt.Options{})
}
