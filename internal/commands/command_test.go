package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseContent(t *testing.T) {
	content := `---
name: rust-test
description: "TDD loop for Rust"
argument-hint: "<feature description>"
model: sonnet
---

# /rust-test

Implement test-first: $ARGUMENTS
`

	cmd, err := ParseContent(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cmd.Name != "rust-test" {
		t.Errorf("expected name 'rust-test', got %q", cmd.Name)
	}
	if cmd.Invocation() != "/rust-test" {
		t.Errorf("expected invocation '/rust-test', got %q", cmd.Invocation())
	}
	if cmd.ArgumentHint != "<feature description>" {
		t.Errorf("unexpected argument hint: %q", cmd.ArgumentHint)
	}
	if !cmd.UsesArguments() {
		t.Error("expected command to use arguments")
	}
}

func TestLoad_NameMismatch(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "on-disk.md")

	content := `---
name: different
description: "Name doesn't match file"
---
body
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write command file: %v", err)
	}

	if _, err := Load(path, SourceProject); err == nil {
		t.Error("expected error for name mismatch")
	}
}

func TestBuiltins(t *testing.T) {
	names := BuiltinNames()
	if len(names) != 6 {
		t.Fatalf("expected 6 builtin commands, got %d: %v", len(names), names)
	}

	for _, want := range []string{
		"java-build-fix", "java-review", "java-test",
		"rust-build-fix", "rust-review", "rust-test",
	} {
		if !IsBuiltin(want) {
			t.Errorf("expected builtin command %q", want)
		}
	}

	for _, cmd := range Builtins() {
		if err := cmd.Validate(); err != nil {
			t.Errorf("builtin command %q invalid: %v", cmd.Name, err)
		}
		if cmd.Body == "" {
			t.Errorf("builtin command %q has empty body", cmd.Name)
		}
		// Every builtin command ships a code block in its language.
		lang := cmd.Metadata["language"]
		if lang == "" {
			t.Errorf("builtin command %q missing language metadata", cmd.Name)
			continue
		}
		fence := "```" + lang
		if !strings.Contains(cmd.Body, "```") {
			t.Errorf("builtin command %q has no code block", cmd.Name)
		}
		if !strings.Contains(cmd.Body, fence) && !strings.Contains(cmd.Body, "```bash") {
			t.Errorf("builtin command %q has no %s code block", cmd.Name, lang)
		}
	}
}

func TestBuiltinExpand(t *testing.T) {
	cmd, err := Builtin("rust-test")
	if err != nil {
		t.Fatalf("load builtin: %v", err)
	}

	out, err := cmd.Expand(ExpandOptions{Args: []string{"parse", "config", "files"}})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if !strings.Contains(out, "parse config files") {
		t.Errorf("expected expanded arguments in output:\n%s", out)
	}
	if strings.Contains(out, "$ARGUMENTS") {
		t.Errorf("placeholder left unexpanded:\n%s", out)
	}
}
