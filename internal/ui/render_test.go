package ui

import (
	"strings"
	"testing"

	"github.com/samsaffron/skilldeck/internal/testutil"
)

func TestRenderMarkdown_Plain(t *testing.T) {
	SetColor(false)
	t.Cleanup(func() { SetColor(false) })

	body := "# Heading\n\nProse line.\n\n```go\nfunc main() {}\n```\n"
	out := RenderMarkdown(body)

	if !strings.Contains(out, "# Heading") {
		t.Errorf("heading lost: %q", out)
	}
	if !strings.Contains(out, "func main() {}") {
		t.Errorf("code lost: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no ANSI codes with color disabled: %q", out)
	}
}

func TestRenderMarkdown_Highlighted(t *testing.T) {
	SetColor(true)
	t.Cleanup(func() { SetColor(false) })

	body := "```go\nfunc main() {}\n```\n"
	out := RenderMarkdown(body)

	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI codes with color enabled: %q", out)
	}
	if StripANSI(out) == out {
		t.Error("expected StripANSI to remove highlighting")
	}
	testutil.AssertContainsPlain(t, out, "func main() {}")
}

func TestRenderList(t *testing.T) {
	SetColor(false)

	rows := [][2]string{
		{"rust-test", "Add a feature test-first"},
		{"java-build-fix", "Repair a broken Java build"},
	}
	out := RenderList(rows, 80)

	if !strings.Contains(out, "rust-test") || !strings.Contains(out, "java-build-fix") {
		t.Errorf("names missing: %q", out)
	}
	if !strings.Contains(out, "Repair a broken Java build") {
		t.Errorf("description missing: %q", out)
	}

	// Long descriptions wrap onto indented continuation lines.
	long := strings.Repeat("word ", 40)
	out = RenderList([][2]string{{"name", long}}, 60)
	if len(strings.Split(strings.TrimRight(out, "\n"), "\n")) < 2 {
		t.Errorf("expected wrapped output, got: %q", out)
	}
}

func TestNewHighlighter_UnknownLanguage(t *testing.T) {
	if h := NewHighlighter("not-a-language-xyz"); h != nil {
		t.Error("expected nil highlighter for unknown language")
	}
	// nil receiver is safe
	var h *Highlighter
	if got := h.HighlightLine("text"); got != "text" {
		t.Errorf("nil highlighter must pass through, got %q", got)
	}
}
