package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samsaffron/skilldeck/internal/agents"
	"github.com/samsaffron/skilldeck/internal/testutil"
)

func TestRenderAgentMarkdownRoundTrip(t *testing.T) {
	src := &agents.Agent{
		Name:         "rust-reviewer",
		Description:  "Reviews Rust changes for safety and idiom",
		Model:        "sonnet",
		Tools:        []string{"read", "grep", "glob"},
		Metadata:     map[string]string{"language": "rust"},
		Extras:       map[string]any{"temperature": 0.2},
		SystemPrompt: "You review Rust code.\n\nFocus on ownership.",
	}

	out := renderAgentMarkdown("strict-reviewer", src)
	testutil.AssertMatchesString(t, out, `(?m)^name: strict-reviewer$`)

	copied, err := agents.ParseContent(out)
	if err != nil {
		t.Fatalf("ParseContent: %v", err)
	}
	if copied.Name != "strict-reviewer" {
		t.Errorf("name = %q, want strict-reviewer", copied.Name)
	}
	if copied.Description != src.Description {
		t.Errorf("description = %q, want %q", copied.Description, src.Description)
	}
	if copied.Model != "sonnet" {
		t.Errorf("model = %q, want sonnet", copied.Model)
	}
	if len(copied.Tools) != 3 || copied.Tools[0] != "read" {
		t.Errorf("tools = %v, want [read grep glob]", copied.Tools)
	}
	if copied.Metadata["language"] != "rust" {
		t.Errorf("metadata not carried through copy: %v", copied.Metadata)
	}
	if copied.Extras["temperature"] == nil {
		t.Errorf("unknown frontmatter keys not carried through copy: %v", copied.Extras)
	}
	testutil.AssertContains(t, copied.SystemPrompt, "Focus on ownership.")
}

func TestRenderAgentMarkdownOmitsEmptyFields(t *testing.T) {
	src := &agents.Agent{
		Name:         "minimal",
		Description:  "A minimal persona",
		SystemPrompt: "Do the thing.",
	}

	out := renderAgentMarkdown("minimal-copy", src)
	testutil.AssertNotContains(t, out, "model:")
	testutil.AssertNotContains(t, out, "tools:")
}

func TestWriteAgentFileRefusesExisting(t *testing.T) {
	userDir := t.TempDir()

	path, err := writeAgentFile(userDir, "", "my-agent", "---\nname: my-agent\n---\nbody\n")
	if err != nil {
		t.Fatalf("first write: %v", err)
	}
	want := filepath.Join(userDir, "agents", "my-agent.md")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	if _, err := writeAgentFile(userDir, "", "my-agent", "other"); err == nil {
		t.Error("expected error writing over existing agent file")
	}
}

func TestPickSource(t *testing.T) {
	tests := []struct {
		builtin, user, project bool
		want                   string
	}{
		{true, false, false, "builtin"},
		{false, true, false, "user"},
		{false, false, true, "project"},
		{false, false, false, ""},
	}
	for _, tt := range tests {
		if got := pickSource(tt.builtin, tt.user, tt.project); got != tt.want {
			t.Errorf("pickSource(%t, %t, %t) = %q, want %q", tt.builtin, tt.user, tt.project, got, tt.want)
		}
	}
}

func TestInstallFileSkipsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commands", "rust-test.md")

	installForce = false
	w, err := installFile(path, "first")
	if err != nil {
		t.Fatalf("installFile: %v", err)
	}
	if w != 1 {
		t.Errorf("written = %d, want 1", w)
	}

	w, err = installFile(path, "second")
	if err != nil {
		t.Fatalf("installFile existing: %v", err)
	}
	if w != 0 {
		t.Errorf("written = %d, want 0 for existing file", w)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "first" {
		t.Errorf("existing file was overwritten: %q", data)
	}

	installForce = true
	defer func() { installForce = false }()
	w, err = installFile(path, "third")
	if err != nil {
		t.Fatalf("installFile force: %v", err)
	}
	if w != 1 {
		t.Errorf("written = %d, want 1 with force", w)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "third" {
		t.Errorf("force did not overwrite: %q", data)
	}
}
