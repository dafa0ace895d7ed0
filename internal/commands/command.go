// Package commands loads slash-command prompt templates: frontmatter
// describing the command plus a Markdown body with argument placeholders.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samsaffron/skilldeck/internal/frontmatter"
)

// Source identifies where a command was loaded from.
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

// Command is a slash-command prompt template. The body may reference
// $ARGUMENTS, positional $1..$9, and {{file:path}} includes.
type Command struct {
	Name         string
	Description  string
	Model        string
	ArgumentHint string
	Tools        []string
	Metadata     map[string]string
	Extras       map[string]any

	// Body is the Markdown template after the frontmatter.
	Body string

	Source     Source
	SourcePath string
}

// Invocation returns the slash form of the command name.
func (c *Command) Invocation() string {
	return "/" + c.Name
}

// Validate checks the command metadata against naming and length rules.
func (c *Command) Validate() error {
	meta := frontmatter.Meta{Name: c.Name, Description: c.Description}
	if err := meta.Validate(); err != nil {
		return fmt.Errorf("command %q: %w", c.Name, err)
	}
	return nil
}

// ParseFile parses a command markdown file.
func ParseFile(path string) (*Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read command file: %w", err)
	}
	return ParseContent(string(data))
}

// ParseContent parses command content from a string.
func ParseContent(content string) (*Command, error) {
	meta, body, err := frontmatter.Parse(content)
	if err != nil {
		return nil, err
	}

	return &Command{
		Name:         meta.Name,
		Description:  meta.Description,
		Model:        meta.Model,
		ArgumentHint: meta.ArgumentHint,
		Tools:        meta.Tools,
		Metadata:     meta.Metadata,
		Extras:       meta.Extras,
		Body:         strings.TrimSpace(body),
	}, nil
}

// Load loads a command from a flat <name>.md file. The frontmatter name
// must match the file basename.
func Load(path string, source Source) (*Command, error) {
	command, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	command.Source = source
	command.SourcePath = path

	base := strings.TrimSuffix(filepath.Base(path), ".md")
	if command.Name == "" {
		command.Name = base
	} else if command.Name != base {
		return nil, fmt.Errorf("command name %q must match file name %q", command.Name, base)
	}

	return command, nil
}
