package agents

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed builtin/*.md
var builtinFS embed.FS

// Builtin loads a built-in agent by name.
func Builtin(name string) (*Agent, error) {
	data, err := builtinFS.ReadFile(fmt.Sprintf("builtin/%s.md", name))
	if err != nil {
		return nil, fmt.Errorf("builtin agent %s not found", name)
	}

	agent, err := ParseContent(string(data))
	if err != nil {
		return nil, fmt.Errorf("builtin agent %s: %w", name, err)
	}
	agent.Source = SourceBuiltin
	agent.SourcePath = fmt.Sprintf("builtin/%s.md", name)
	return agent, nil
}

// Builtins returns all built-in agents, sorted by name.
func Builtins() []*Agent {
	var all []*Agent
	for _, name := range BuiltinNames() {
		if agent, err := Builtin(name); err == nil {
			all = append(all, agent)
		}
	}
	return all
}

// BuiltinNames returns the names of all built-in agents.
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".md") {
			names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
		}
	}
	sort.Strings(names)
	return names
}

// IsBuiltin checks if an agent name is a built-in.
func IsBuiltin(name string) bool {
	for _, n := range BuiltinNames() {
		if n == name {
			return true
		}
	}
	return false
}

// BuiltinContent returns the raw markdown of a built-in agent.
func BuiltinContent(name string) (string, error) {
	data, err := builtinFS.ReadFile(fmt.Sprintf("builtin/%s.md", name))
	if err != nil {
		return "", fmt.Errorf("builtin agent %s not found", name)
	}
	return strings.TrimLeft(string(data), "\n"), nil
}
