package commands

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed builtin/*.md
var builtinFS embed.FS

// Builtin loads a built-in command by name.
func Builtin(name string) (*Command, error) {
	data, err := builtinFS.ReadFile(fmt.Sprintf("builtin/%s.md", name))
	if err != nil {
		return nil, fmt.Errorf("builtin command %s not found", name)
	}

	command, err := ParseContent(string(data))
	if err != nil {
		return nil, fmt.Errorf("builtin command %s: %w", name, err)
	}
	command.Source = SourceBuiltin
	command.SourcePath = fmt.Sprintf("builtin/%s.md", name)
	return command, nil
}

// Builtins returns all built-in commands, sorted by name.
func Builtins() []*Command {
	var all []*Command
	for _, name := range BuiltinNames() {
		if command, err := Builtin(name); err == nil {
			all = append(all, command)
		}
	}
	return all
}

// BuiltinNames returns the names of all built-in commands.
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

// IsBuiltin checks if a command name is a built-in.
func IsBuiltin(name string) bool {
	for _, n := range BuiltinNames() {
		if n == name {
			return true
		}
	}
	return false
}

// BuiltinContent returns the raw markdown of a built-in command.
func BuiltinContent(name string) (string, error) {
	data, err := builtinFS.ReadFile(fmt.Sprintf("builtin/%s.md", name))
	if err != nil {
		return "", fmt.Errorf("builtin command %s not found", name)
	}
	return strings.TrimLeft(string(data), "\n"), nil
}
