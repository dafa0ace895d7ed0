package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSubstituteArgs(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		args     []string
		expected string
	}{
		{
			name:     "arguments joined",
			body:     "Review: $ARGUMENTS",
			args:     []string{"src/lib.rs", "src/main.rs"},
			expected: "Review: src/lib.rs src/main.rs",
		},
		{
			name:     "positional",
			body:     "Fix module $1 with profile $2",
			args:     []string{"core", "release"},
			expected: "Fix module core with profile release",
		},
		{
			name:     "missing positional expands empty",
			body:     "Fix module $1 with profile $2",
			args:     []string{"core"},
			expected: "Fix module core with profile ",
		},
		{
			name:     "no args",
			body:     "Review: $ARGUMENTS",
			args:     nil,
			expected: "Review: ",
		},
		{
			name:     "no placeholders untouched",
			body:     "Static body, $COST stays",
			args:     []string{"x"},
			expected: "Static body, $COST stays",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := substituteArgs(tt.body, tt.args)
			if got != tt.expected {
				t.Errorf("substituteArgs(%q, %v) = %q, want %q", tt.body, tt.args, got, tt.expected)
			}
		})
	}
}

func TestExpand_FileInclude(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "checklist.md"), []byte("- item one\n- item two"), 0644); err != nil {
		t.Fatalf("write include: %v", err)
	}

	cmd := &Command{
		Name:        "with-include",
		Description: "test",
		Body:        "Before\n{{file:checklist.md}}\nAfter",
	}

	out, err := cmd.Expand(ExpandOptions{BaseDir: tmpDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "- item one") {
		t.Errorf("expected include content, got:\n%s", out)
	}
	if strings.Contains(out, "{{file:") {
		t.Errorf("include directive left unexpanded:\n%s", out)
	}
}

func TestExpand_AtPathInclude(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "checklist.md"), []byte("- item one\n- item two"), 0644); err != nil {
		t.Fatalf("write include: %v", err)
	}

	cmd := &Command{
		Name:        "with-at-include",
		Description: "test",
		Body:        "Before\n@checklist.md\nAfter",
	}

	out, err := cmd.Expand(ExpandOptions{BaseDir: tmpDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "- item one") {
		t.Errorf("expected include content, got:\n%s", out)
	}
	if strings.Contains(out, "@checklist.md") {
		t.Errorf("include directive left unexpanded:\n%s", out)
	}
}

func TestExpand_NestedInclude(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "outer.md"), []byte("outer start\n{{file:inner.md}}\nouter end"), 0644); err != nil {
		t.Fatalf("write outer: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "inner.md"), []byte("inner content"), 0644); err != nil {
		t.Fatalf("write inner: %v", err)
	}

	cmd := &Command{Name: "nested", Description: "test", Body: "{{file:outer.md}}"}
	out, err := cmd.Expand(ExpandOptions{BaseDir: tmpDir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "inner content") {
		t.Errorf("expected nested include content, got:\n%s", out)
	}
}

func TestExpand_IncludeCycle(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "a.md"), []byte("{{file:b.md}}"), 0644); err != nil {
		t.Fatalf("write a: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "b.md"), []byte("{{file:a.md}}"), 0644); err != nil {
		t.Fatalf("write b: %v", err)
	}

	cmd := &Command{Name: "cyclic", Description: "test", Body: "{{file:a.md}}"}
	_, err := cmd.Expand(ExpandOptions{BaseDir: tmpDir})
	if err == nil {
		t.Fatal("expected cycle error")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("expected cycle error, got: %v", err)
	}
}

func TestExpand_AbsoluteIncludeDenied(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "secret.md")
	if err := os.WriteFile(target, []byte("secret"), 0644); err != nil {
		t.Fatalf("write target: %v", err)
	}

	cmd := &Command{Name: "abs", Description: "test", Body: "{{file:" + target + "}}"}

	if _, err := cmd.Expand(ExpandOptions{BaseDir: tmpDir}); err == nil {
		t.Error("expected absolute include to be rejected by default")
	}

	out, err := cmd.Expand(ExpandOptions{BaseDir: tmpDir, AllowAbsolute: true})
	if err != nil {
		t.Fatalf("unexpected error with AllowAbsolute: %v", err)
	}
	if !strings.Contains(out, "secret") {
		t.Errorf("expected absolute include content, got:\n%s", out)
	}
}

func TestUsesArguments(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{"Review: $ARGUMENTS", true},
		{"Fix $1 now", true},
		{"Nothing here", false},
		{"$COST is not positional", false},
	}

	for _, tt := range tests {
		cmd := &Command{Body: tt.body}
		if got := cmd.UsesArguments(); got != tt.want {
			t.Errorf("UsesArguments(%q) = %v, want %v", tt.body, got, tt.want)
		}
	}
}
