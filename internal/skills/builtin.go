package skills

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed builtin/*/SKILL.md
var builtinFS embed.FS

// Builtin returns a built-in skill by name, or an error if not found.
func Builtin(name string) (*Skill, error) {
	data, err := builtinFS.ReadFile(fmt.Sprintf("builtin/%s/SKILL.md", name))
	if err != nil {
		return nil, fmt.Errorf("builtin skill %s not found", name)
	}

	skill, err := ParseContent(string(data), true)
	if err != nil {
		return nil, fmt.Errorf("builtin skill %s: %w", name, err)
	}
	skill.Source = SourceBuiltin
	skill.SourcePath = fmt.Sprintf("builtin/%s", name)
	return skill, nil
}

// Builtins returns all built-in skills, sorted by name.
func Builtins() []*Skill {
	var all []*Skill
	for _, name := range BuiltinNames() {
		if skill, err := Builtin(name); err == nil {
			all = append(all, skill)
		}
	}
	return all
}

// BuiltinNames returns the names of all built-in skills.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

// IsBuiltin checks if a skill name is a built-in.
func IsBuiltin(name string) bool {
	for _, n := range BuiltinNames() {
		if n == name {
			return true
		}
	}
	return false
}

// BuiltinContent returns the raw SKILL.md content of a built-in skill.
// Used by install to materialize the embedded corpus on disk.
func BuiltinContent(name string) (string, error) {
	data, err := builtinFS.ReadFile(fmt.Sprintf("builtin/%s/SKILL.md", name))
	if err != nil {
		return "", fmt.Errorf("builtin skill %s not found", name)
	}
	return strings.TrimLeft(string(data), "\n"), nil
}
