package skills

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samsaffron/skilldeck/internal/frontmatter"
)

// ParseFile parses a skill markdown file.
// The loadBody parameter controls whether the Markdown body is retained.
func ParseFile(path string, loadBody bool) (*Skill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skill file: %w", err)
	}
	return ParseContent(string(data), loadBody)
}

// ParseContent parses skill content from a string.
func ParseContent(content string, loadBody bool) (*Skill, error) {
	meta, body, err := frontmatter.Parse(content)
	if err != nil {
		return nil, err
	}

	skill := &Skill{
		Name:        meta.Name,
		Description: meta.Description,
		License:     meta.License,
		Tools:       meta.Tools,
		Metadata:    meta.Metadata,
		Extras:      meta.Extras,
		loaded:      loadBody,
	}

	if loadBody {
		skill.Body = strings.TrimSpace(body)
	}

	return skill, nil
}

// LoadFromDir loads a skill from a directory containing SKILL.md.
// If loadBody is false, only metadata is loaded (for discovery).
func LoadFromDir(dir string, source Source, loadBody bool) (*Skill, error) {
	skillPath := filepath.Join(dir, "SKILL.md")
	if _, err := os.Stat(skillPath); os.IsNotExist(err) {
		lowerPath := filepath.Join(dir, "skill.md")
		if _, err := os.Stat(lowerPath); err == nil {
			fmt.Fprintf(os.Stderr, "warning: skill.md should be SKILL.md: %s\n", lowerPath)
			skillPath = lowerPath
		} else {
			return nil, fmt.Errorf("SKILL.md not found in %s", dir)
		}
	}

	skill, err := ParseFile(skillPath, loadBody)
	if err != nil {
		return nil, err
	}

	skill.Source = source
	skill.SourcePath = dir

	dirName := filepath.Base(dir)
	if skill.Name == "" {
		// Derive name from directory if not set
		skill.Name = dirName
	} else if skill.Name != dirName {
		return nil, fmt.Errorf("skill name %q must match directory name %q", skill.Name, dirName)
	}

	if loadBody {
		skill.References = discoverFiles(dir, "references")
		skill.Scripts = discoverFiles(dir, "scripts")
		skill.Assets = discoverFiles(dir, "assets")
	}

	return skill, nil
}

// LoadFlat loads a skill from a flat <name>.md file.
func LoadFlat(path string, source Source, loadBody bool) (*Skill, error) {
	skill, err := ParseFile(path, loadBody)
	if err != nil {
		return nil, err
	}

	skill.Source = source
	skill.SourcePath = path

	base := strings.TrimSuffix(filepath.Base(path), ".md")
	if skill.Name == "" {
		skill.Name = base
	} else if skill.Name != base {
		return nil, fmt.Errorf("skill name %q must match file name %q", skill.Name, base)
	}

	return skill, nil
}

// discoverFiles returns files in a subdirectory of the skill root.
func discoverFiles(skillDir, subdir string) []string {
	dir := filepath.Join(skillDir, subdir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}
	return files
}

// IsSkillDir checks if a directory contains a SKILL.md file.
func IsSkillDir(dir string) bool {
	if info, err := os.Stat(filepath.Join(dir, "SKILL.md")); err == nil && !info.IsDir() {
		return true
	}
	if info, err := os.Stat(filepath.Join(dir, "skill.md")); err == nil && !info.IsDir() {
		return true
	}
	return false
}
