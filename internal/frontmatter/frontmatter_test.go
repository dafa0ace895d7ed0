package frontmatter

import (
	"strings"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	content := `---
name: rust-patterns
description: "Idiomatic Rust reference patterns"
license: MIT
model: sonnet
tools: read, grep, glob
metadata:
  author: test
  version: "1.0"
---

# Rust Patterns

Body text.
`

	meta, body, err := Parse(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if meta.Name != "rust-patterns" {
		t.Errorf("expected name 'rust-patterns', got %q", meta.Name)
	}
	if meta.Description != "Idiomatic Rust reference patterns" {
		t.Errorf("unexpected description: %q", meta.Description)
	}
	if meta.License != "MIT" {
		t.Errorf("expected license 'MIT', got %q", meta.License)
	}
	if meta.Model != "sonnet" {
		t.Errorf("expected model 'sonnet', got %q", meta.Model)
	}

	expectedTools := []string{"read", "grep", "glob"}
	if len(meta.Tools) != len(expectedTools) {
		t.Fatalf("expected %d tools, got %d", len(expectedTools), len(meta.Tools))
	}
	for i, tool := range expectedTools {
		if meta.Tools[i] != tool {
			t.Errorf("expected tool %q at index %d, got %q", tool, i, meta.Tools[i])
		}
	}

	if meta.Metadata["author"] != "test" {
		t.Errorf("expected metadata author 'test', got %q", meta.Metadata["author"])
	}

	if !strings.HasPrefix(body, "# Rust Patterns") {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestParse_ToolsFormats(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name: "space-delimited",
			content: `---
name: test
description: test
tools: read grep glob shell
---
`,
			expected: []string{"read", "grep", "glob", "shell"},
		},
		{
			name: "comma-delimited",
			content: `---
name: test
description: test
tools: read, grep, glob, shell
---
`,
			expected: []string{"read", "grep", "glob", "shell"},
		},
		{
			name: "yaml list",
			content: `---
name: test
description: test
tools:
  - read
  - grep
  - glob
---
`,
			expected: []string{"read", "grep", "glob"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, _, err := Parse(tt.content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(meta.Tools) != len(tt.expected) {
				t.Fatalf("expected %d tools, got %d: %v", len(tt.expected), len(meta.Tools), meta.Tools)
			}
			for i, tool := range tt.expected {
				if meta.Tools[i] != tool {
					t.Errorf("expected tool %q at index %d, got %q", tool, i, meta.Tools[i])
				}
			}
		})
	}
}

func TestParse_UnknownFields(t *testing.T) {
	content := `---
name: extras-test
description: test with extra fields
context: full
user-invocable: true
hooks:
  pre-run: echo hello
---
`

	meta, _, err := Parse(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if meta.Extras == nil {
		t.Fatal("expected extras to be populated")
	}
	if meta.Extras["context"] != "full" {
		t.Errorf("expected context 'full' in extras, got %v", meta.Extras["context"])
	}
	if meta.Extras["user-invocable"] != true {
		t.Errorf("expected user-invocable true in extras, got %v", meta.Extras["user-invocable"])
	}
	if meta.Extras["hooks"] == nil {
		t.Error("expected hooks in extras")
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	content := `# No Frontmatter

Just markdown.
`
	if _, _, err := Parse(content); err == nil {
		t.Error("expected error for missing frontmatter")
	}
}

func TestParse_EmptyFrontmatter(t *testing.T) {
	content := "---\n---\n\n# Body\n"
	if _, _, err := Parse(content); err == nil {
		t.Error("expected error for empty frontmatter")
	}
}

func TestParse_Unterminated(t *testing.T) {
	content := "---\nname: broken\ndescription: never closed\n"
	if _, _, err := Parse(content); err == nil {
		t.Error("expected error for unterminated frontmatter")
	}
}

func TestMetaValidate(t *testing.T) {
	tests := []struct {
		name    string
		meta    Meta
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid",
			meta:    Meta{Name: "valid-doc", Description: "A valid document"},
			wantErr: false,
		},
		{
			name:    "empty name",
			meta:    Meta{Description: "Missing name"},
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name: "name too long",
			meta: Meta{
				Name:        strings.Repeat("a", 65),
				Description: "Too long",
			},
			wantErr: true,
			errMsg:  "1-64 characters",
		},
		{
			name:    "uppercase name",
			meta:    Meta{Name: "Invalid_Name", Description: "Has underscore"},
			wantErr: true,
			errMsg:  "lowercase letters",
		},
		{
			name:    "leading hyphen",
			meta:    Meta{Name: "-leading", Description: "Leading hyphen"},
			wantErr: true,
			errMsg:  "lowercase letters",
		},
		{
			name:    "trailing hyphen",
			meta:    Meta{Name: "trailing-", Description: "Trailing hyphen"},
			wantErr: true,
			errMsg:  "lowercase letters",
		},
		{
			name:    "consecutive hyphens",
			meta:    Meta{Name: "double--hyphen", Description: "Consecutive hyphens"},
			wantErr: true,
			errMsg:  "consecutive hyphens",
		},
		{
			name:    "empty description",
			meta:    Meta{Name: "no-description"},
			wantErr: true,
			errMsg:  "description is required",
		},
		{
			name: "description too long",
			meta: Meta{
				Name:        "long-desc",
				Description: strings.Repeat("x", 1025),
			},
			wantErr: true,
			errMsg:  "1-1024 characters",
		},
		{
			name:    "single char name",
			meta:    Meta{Name: "a", Description: "Single char name is valid"},
			wantErr: false,
		},
		{
			name:    "number in name",
			meta:    Meta{Name: "skill-v2", Description: "Name with numbers"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.meta.Validate()
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got nil")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
