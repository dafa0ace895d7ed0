// Package corpus aggregates commands, agents, and skills across the
// builtin, user, and project sources with fixed precedence.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/samsaffron/skilldeck/internal/agents"
	"github.com/samsaffron/skilldeck/internal/commands"
	"github.com/samsaffron/skilldeck/internal/skills"
)

// Kind identifies a document kind.
type Kind int

const (
	KindCommand Kind = iota
	KindAgent
	KindSkill
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindAgent:
		return "agent"
	case KindSkill:
		return "skill"
	default:
		return "unknown"
	}
}

// Entry is a uniform summary of any document in the registry.
type Entry struct {
	Kind        Kind
	Name        string
	Description string
	Source      string // builtin, user, or project
	Path        string
}

// LoadError records a document that was skipped during discovery.
type LoadError struct {
	Path string
	Err  error
}

func (e LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Config controls which sources the registry loads.
type Config struct {
	// UseBuiltin includes the corpus embedded in the binary.
	UseBuiltin bool
	// UserDir is the user-global overlay (e.g. ~/.config/skilldeck).
	UserDir string
	// ProjectDir is the project-local overlay (e.g. ./.skilldeck).
	ProjectDir string
}

// Registry holds the merged corpus. Later sources shadow earlier ones
// for identical kind+name: project > user > builtin.
type Registry struct {
	commands map[string]*commands.Command
	agents   map[string]*agents.Agent
	skills   map[string]*skills.Skill

	loadErrors []LoadError
}

// NewRegistry discovers and loads all documents per the config.
// Documents that fail to parse or validate are skipped and recorded in
// LoadErrors; discovery itself only fails on unreadable overlay roots.
func NewRegistry(cfg Config) (*Registry, error) {
	r := &Registry{
		commands: make(map[string]*commands.Command),
		agents:   make(map[string]*agents.Agent),
		skills:   make(map[string]*skills.Skill),
	}

	if cfg.UseBuiltin {
		for _, c := range commands.Builtins() {
			r.commands[c.Name] = c
		}
		for _, a := range agents.Builtins() {
			r.agents[a.Name] = a
		}
		for _, s := range skills.Builtins() {
			r.skills[s.Name] = s
		}
	}

	// User before project so project wins on name collisions.
	if cfg.UserDir != "" {
		if err := r.loadOverlay(cfg.UserDir, commands.SourceUser, agents.SourceUser, skills.SourceUser); err != nil {
			return nil, err
		}
	}
	if cfg.ProjectDir != "" {
		if err := r.loadOverlay(cfg.ProjectDir, commands.SourceProject, agents.SourceProject, skills.SourceProject); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// loadOverlay loads an on-disk overlay directory with the layout
// commands/*.md, agents/*.md, skills/<name>.md or skills/<name>/SKILL.md.
func (r *Registry) loadOverlay(dir string, cs commands.Source, as agents.Source, ss skills.Source) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil // absent overlay is not an error
	}
	if err != nil {
		return fmt.Errorf("stat overlay %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("overlay %s is not a directory", dir)
	}

	for _, path := range globMarkdown(filepath.Join(dir, "commands")) {
		c, err := commands.Load(path, cs)
		if err == nil {
			err = c.Validate()
		}
		if err != nil {
			r.loadErrors = append(r.loadErrors, LoadError{Path: path, Err: err})
			continue
		}
		r.commands[c.Name] = c
	}

	for _, path := range globMarkdown(filepath.Join(dir, "agents")) {
		a, err := agents.Load(path, as)
		if err == nil {
			err = a.Validate()
		}
		if err != nil {
			r.loadErrors = append(r.loadErrors, LoadError{Path: path, Err: err})
			continue
		}
		r.agents[a.Name] = a
	}

	skillsDir := filepath.Join(dir, "skills")
	for _, path := range globMarkdown(skillsDir) {
		s, err := skills.LoadFlat(path, ss, true)
		if err == nil {
			err = s.Validate()
		}
		if err != nil {
			r.loadErrors = append(r.loadErrors, LoadError{Path: path, Err: err})
			continue
		}
		r.skills[s.Name] = s
	}
	for _, path := range globPattern(skillsDir, "*/SKILL.md") {
		skillDir := filepath.Dir(path)
		s, err := skills.LoadFromDir(skillDir, ss, true)
		if err == nil {
			err = s.Validate()
		}
		if err != nil {
			r.loadErrors = append(r.loadErrors, LoadError{Path: skillDir, Err: err})
			continue
		}
		r.skills[s.Name] = s
	}

	return nil
}

func globMarkdown(dir string) []string {
	return globPattern(dir, "*.md")
}

func globPattern(dir, pattern string) []string {
	matches, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

// Command looks up a command by name, with or without the leading slash.
func (r *Registry) Command(name string) (*commands.Command, bool) {
	c, ok := r.commands[strings.TrimPrefix(name, "/")]
	return c, ok
}

// Agent looks up an agent by name.
func (r *Registry) Agent(name string) (*agents.Agent, bool) {
	a, ok := r.agents[name]
	return a, ok
}

// Skill looks up a skill by name.
func (r *Registry) Skill(name string) (*skills.Skill, bool) {
	s, ok := r.skills[name]
	return s, ok
}

// Commands returns all commands sorted by name.
func (r *Registry) Commands() []*commands.Command {
	out := make([]*commands.Command, 0, len(r.commands))
	for _, c := range r.commands {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Agents returns all agents sorted by name.
func (r *Registry) Agents() []*agents.Agent {
	out := make([]*agents.Agent, 0, len(r.agents))
	for _, a := range r.agents {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Skills returns all skills sorted by name.
func (r *Registry) Skills() []*skills.Skill {
	out := make([]*skills.Skill, 0, len(r.skills))
	for _, s := range r.skills {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// List returns uniform entries for the whole corpus, commands first,
// then agents, then skills, each sorted by name.
func (r *Registry) List() []Entry {
	var entries []Entry
	for _, c := range r.Commands() {
		entries = append(entries, Entry{
			Kind: KindCommand, Name: c.Name, Description: c.Description,
			Source: c.Source.String(), Path: c.SourcePath,
		})
	}
	for _, a := range r.Agents() {
		entries = append(entries, Entry{
			Kind: KindAgent, Name: a.Name, Description: a.Description,
			Source: a.Source.String(), Path: a.SourcePath,
		})
	}
	for _, s := range r.Skills() {
		entries = append(entries, Entry{
			Kind: KindSkill, Name: s.Name, Description: s.Description,
			Source: s.Source.String(), Path: s.SourcePath,
		})
	}
	return entries
}

// ListKind returns the entries of a single kind, sorted by name.
func (r *Registry) ListKind(kind Kind) []Entry {
	var out []Entry
	for _, e := range r.List() {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// ListBySource filters List by source name (builtin, user, project).
func (r *Registry) ListBySource(source string) []Entry {
	var out []Entry
	for _, e := range r.List() {
		if e.Source == source {
			out = append(out, e)
		}
	}
	return out
}

// LoadErrors returns documents skipped during discovery.
func (r *Registry) LoadErrors() []LoadError {
	return r.loadErrors
}
