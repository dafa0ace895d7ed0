package agents

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samsaffron/skilldeck/internal/frontmatter"
)

// ParseFile parses an agent markdown file.
func ParseFile(path string) (*Agent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read agent file: %w", err)
	}
	return ParseContent(string(data))
}

// ParseContent parses agent content from a string.
func ParseContent(content string) (*Agent, error) {
	meta, body, err := frontmatter.Parse(content)
	if err != nil {
		return nil, err
	}

	return &Agent{
		Name:         meta.Name,
		Description:  meta.Description,
		Model:        meta.Model,
		Tools:        meta.Tools,
		Metadata:     meta.Metadata,
		Extras:       meta.Extras,
		SystemPrompt: strings.TrimSpace(body),
	}, nil
}

// Load loads an agent from a flat <name>.md file. The frontmatter name
// must match the file basename.
func Load(path string, source Source) (*Agent, error) {
	agent, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	agent.Source = source
	agent.SourcePath = path

	base := strings.TrimSuffix(filepath.Base(path), ".md")
	if agent.Name == "" {
		agent.Name = base
	} else if agent.Name != base {
		return nil, fmt.Errorf("agent name %q must match file name %q", agent.Name, base)
	}

	return agent, nil
}
