// Package frontmatter parses the YAML metadata block that leads every
// corpus document (commands, agents, skills).
package frontmatter

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta holds the standard front-matter fields shared by all document kinds.
type Meta struct {
	Name         string
	Description  string
	Model        string
	ArgumentHint string
	License      string
	Tools        []string
	Metadata     map[string]string
	// Extras captures front-matter keys that are not standard fields.
	Extras map[string]any
}

// rawMeta mirrors the YAML shape before normalization.
type rawMeta struct {
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description"`
	Model        string            `yaml:"model,omitempty"`
	ArgumentHint string            `yaml:"argument-hint,omitempty"`
	License      string            `yaml:"license,omitempty"`
	Tools        any               `yaml:"tools,omitempty"` // string, list, or nil
	Metadata     map[string]string `yaml:"metadata,omitempty"`
}

// Parse splits content into front-matter and body and decodes the
// front-matter into a Meta.
func Parse(content string) (*Meta, string, error) {
	front, body, err := Split(content)
	if err != nil {
		return nil, "", err
	}

	var raw rawMeta
	if err := yaml.Unmarshal([]byte(front), &raw); err != nil {
		return nil, "", fmt.Errorf("parse frontmatter: %w", err)
	}

	// Decode again into a generic map to capture unknown keys.
	var rawMap map[string]any
	if err := yaml.Unmarshal([]byte(front), &rawMap); err != nil {
		return nil, "", fmt.Errorf("parse frontmatter extras: %w", err)
	}

	meta := &Meta{
		Name:         raw.Name,
		Description:  raw.Description,
		Model:        raw.Model,
		ArgumentHint: raw.ArgumentHint,
		License:      raw.License,
		Tools:        ParseTools(raw.Tools),
		Metadata:     raw.Metadata,
		Extras:       extractExtras(rawMap),
	}

	return meta, strings.TrimSpace(body), nil
}

// Split extracts the YAML front-matter and the Markdown body.
// Front-matter must be delimited by --- on its own lines.
func Split(content string) (front, body string, err error) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	// Look for opening ---
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			break
		}
		// Skip any leading blank lines before frontmatter
		if strings.TrimSpace(line) != "" {
			return "", "", fmt.Errorf("document must start with YAML frontmatter (---)")
		}
	}

	// Read frontmatter until closing ---
	var frontLines []string
	closed := false
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			closed = true
			break
		}
		frontLines = append(frontLines, line)
	}

	if !closed {
		return "", "", fmt.Errorf("unterminated frontmatter (missing closing ---)")
	}
	if len(frontLines) == 0 {
		return "", "", fmt.Errorf("empty frontmatter")
	}

	var bodyLines []string
	for scanner.Scan() {
		bodyLines = append(bodyLines, scanner.Text())
	}

	return strings.Join(frontLines, "\n"), strings.Join(bodyLines, "\n"), nil
}

// ParseTools handles the formats accepted for the tools field:
// - Comma-delimited string: "read, grep, shell"
// - Space-delimited string: "read grep shell"
// - YAML list: ["read", "grep", "shell"]
func ParseTools(v any) []string {
	if v == nil {
		return nil
	}

	switch val := v.(type) {
	case string:
		if strings.Contains(val, ",") {
			parts := strings.Split(val, ",")
			var tools []string
			for _, p := range parts {
				if t := strings.TrimSpace(p); t != "" {
					tools = append(tools, t)
				}
			}
			return tools
		}
		return strings.Fields(val)

	case []any:
		var tools []string
		for _, item := range val {
			if s, ok := item.(string); ok {
				tools = append(tools, s)
			}
		}
		return tools

	case []string:
		return val

	default:
		return nil
	}
}

var namePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateName checks a document identifier: 1-64 characters, lowercase
// letters, numbers, and single hyphens.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 64 {
		return fmt.Errorf("name must be 1-64 characters, got %d", len(name))
	}
	if strings.Contains(name, "--") {
		return fmt.Errorf("name must not contain consecutive hyphens: %q", name)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("name must use lowercase letters, numbers, and hyphens: %q", name)
	}
	return nil
}

// Validate checks the fields every document kind requires.
func (m *Meta) Validate() error {
	if err := ValidateName(m.Name); err != nil {
		return err
	}
	if m.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(m.Description) > 1024 {
		return fmt.Errorf("description must be 1-1024 characters, got %d", len(m.Description))
	}
	return nil
}

// extractExtras returns frontmatter keys that are not standard fields.
func extractExtras(raw map[string]any) map[string]any {
	standardKeys := map[string]bool{
		"name":          true,
		"description":   true,
		"model":         true,
		"argument-hint": true,
		"license":       true,
		"tools":         true,
		"metadata":      true,
	}

	extras := make(map[string]any)
	for k, v := range raw {
		if !standardKeys[k] {
			extras[k] = v
		}
	}

	if len(extras) == 0 {
		return nil
	}
	return extras
}
