// Package lint runs documentation-integrity checks over a corpus
// directory: frontmatter validity, cross-reference resolution, and
// code-block coverage for command templates.
package lint

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/samsaffron/skilldeck/internal/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Severity classifies a finding.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Finding is a single lint result.
type Finding struct {
	Rule     string
	Severity Severity
	Path     string
	Line     int
	Message  string
}

func (f Finding) String() string {
	if f.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s [%s]", f.Path, f.Line, f.Severity, f.Message, f.Rule)
	}
	return fmt.Sprintf("%s: %s: %s [%s]", f.Path, f.Severity, f.Message, f.Rule)
}

// Report collects findings for a corpus.
type Report struct {
	Findings []Finding
}

func (r *Report) add(f Finding) {
	r.Findings = append(r.Findings, f)
}

// Errors returns the number of error-level findings.
func (r *Report) Errors() int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Warnings returns the number of warning-level findings.
func (r *Report) Warnings() int {
	return len(r.Findings) - r.Errors()
}

// Options controls a lint run.
type Options struct {
	// Ignore holds glob patterns for paths to skip, matched against
	// the path relative to the lint root.
	Ignore []string
}

// document is a parsed corpus file awaiting cross-reference checks.
type document struct {
	path    string // relative to root
	absPath string
	kind    string // command, agent, skill, or "" when not under a kind dir
	name    string
	meta    *frontmatter.Meta
	body    string
	// bodyLine is the 1-based line number of the first body line.
	bodyLine int
}

// crossRefPattern matches prose references like "skill: `rust-patterns`"
// or "Act as agent: `build-fixer`".
var crossRefPattern = regexp.MustCompile("(?i)\\b(skill|agent|command):\\s*`([a-z0-9-]+)`")

// Dir lints every markdown file under root and returns the report.
func Dir(root string, opts Options) (*Report, error) {
	ignores, err := compileIgnores(opts.Ignore)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	var docs []*document

	// Pass 1: parse every file and run per-file checks.
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		for _, g := range ignores {
			if g.Match(filepath.ToSlash(rel)) {
				return nil
			}
		}

		doc := lintFile(root, rel, report)
		if doc != nil {
			docs = append(docs, doc)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	// Pass 2: duplicates and cross-references need the full name set.
	checkDuplicates(docs, report)
	names := collectNames(docs)
	for _, doc := range docs {
		checkCrossRefs(doc, names, report)
		checkRelativeLinks(doc, report)
	}

	sort.Slice(report.Findings, func(i, j int) bool {
		if report.Findings[i].Path != report.Findings[j].Path {
			return report.Findings[i].Path < report.Findings[j].Path
		}
		return report.Findings[i].Line < report.Findings[j].Line
	})

	return report, nil
}

func compileIgnores(patterns []string) ([]glob.Glob, error) {
	var globs []glob.Glob
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// lintFile runs the single-file checks and returns the parsed document,
// or nil when the file is too broken to take part in later passes.
func lintFile(root, rel string, report *Report) *document {
	absPath := filepath.Join(root, rel)
	data, err := os.ReadFile(absPath)
	if err != nil {
		report.add(Finding{Rule: "unreadable", Severity: SeverityError, Path: rel,
			Message: err.Error()})
		return nil
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		report.add(Finding{Rule: "empty-file", Severity: SeverityError, Path: rel,
			Message: "file is empty"})
		return nil
	}

	content := string(data)
	front, body, err := frontmatter.Split(content)
	if err != nil {
		report.add(Finding{Rule: "frontmatter", Severity: SeverityError, Path: rel, Line: 1,
			Message: err.Error()})
		return nil
	}

	meta, _, err := frontmatter.Parse(content)
	if err != nil {
		report.add(Finding{Rule: "frontmatter", Severity: SeverityError, Path: rel, Line: 1,
			Message: err.Error()})
		return nil
	}

	doc := &document{
		path:     rel,
		absPath:  absPath,
		kind:     kindFromPath(rel),
		name:     meta.Name,
		meta:     meta,
		body:     body,
		bodyLine: strings.Count(front, "\n") + 4, // opening fence, front, closing fence
	}

	if err := meta.Validate(); err != nil {
		report.add(Finding{Rule: "metadata", Severity: SeverityError, Path: rel, Line: 2,
			Message: err.Error()})
	}

	checkNameMatch(doc, report)

	for key := range meta.Extras {
		report.add(Finding{Rule: "unknown-key", Severity: SeverityWarning, Path: rel, Line: 2,
			Message: fmt.Sprintf("unknown frontmatter key %q", key)})
	}

	if doc.kind == "command" {
		checkCommandBody(doc, report)
	}

	return doc
}

// kindFromPath infers the document kind from its parent directories.
func kindFromPath(rel string) string {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		switch part {
		case "commands":
			return "command"
		case "agents":
			return "agent"
		case "skills":
			return "skill"
		}
	}
	return ""
}

// checkNameMatch verifies the frontmatter name against the file or
// skill-directory basename.
func checkNameMatch(doc *document, report *Report) {
	if doc.name == "" {
		return // already reported by metadata validation
	}

	base := filepath.Base(doc.path)
	expected := strings.TrimSuffix(base, ".md")
	if base == "SKILL.md" || base == "skill.md" {
		expected = filepath.Base(filepath.Dir(doc.path))
	}

	if doc.name != expected {
		report.add(Finding{Rule: "name-mismatch", Severity: SeverityError, Path: doc.path, Line: 2,
			Message: fmt.Sprintf("name %q does not match %q", doc.name, expected)})
	}
}

// checkCommandBody enforces the command-specific rules: at least one
// fenced code block in the stated language, and an argument-hint when
// the template takes arguments.
func checkCommandBody(doc *document, report *Report) {
	langs := codeBlockLanguages(doc.body)

	if len(langs) == 0 {
		report.add(Finding{Rule: "missing-code-block", Severity: SeverityError, Path: doc.path,
			Message: "command has no fenced code block"})
	} else if lang := doc.meta.Metadata["language"]; lang != "" {
		found := false
		for _, l := range langs {
			// Shell blocks drive the language's build tools, so they
			// count toward the stated language.
			if l == lang || l == "bash" || l == "sh" || l == "shell" {
				found = true
				break
			}
		}
		if !found {
			report.add(Finding{Rule: "missing-code-block", Severity: SeverityError, Path: doc.path,
				Message: fmt.Sprintf("command states language %q but has no %s code block", lang, lang)})
		}
	}

	usesArgs := strings.Contains(doc.body, "$ARGUMENTS") ||
		regexp.MustCompile(`\$[1-9]`).MatchString(doc.body)
	if usesArgs && doc.meta.ArgumentHint == "" {
		report.add(Finding{Rule: "missing-argument-hint", Severity: SeverityWarning, Path: doc.path, Line: 2,
			Message: "template uses arguments but frontmatter has no argument-hint"})
	}
}

// codeBlockLanguages returns the info strings of all fenced code blocks
// in the markdown body.
func codeBlockLanguages(body string) []string {
	src := []byte(body)
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	var langs []string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if fcb, ok := n.(*ast.FencedCodeBlock); ok {
			lang := string(fcb.Language(src))
			langs = append(langs, strings.ToLower(strings.TrimSpace(lang)))
		}
		return ast.WalkContinue, nil
	})
	return langs
}

func collectNames(docs []*document) map[string]map[string]bool {
	names := map[string]map[string]bool{
		"command": {},
		"agent":   {},
		"skill":   {},
	}
	for _, doc := range docs {
		if doc.kind != "" && doc.name != "" {
			names[doc.kind][doc.name] = true
		}
	}
	return names
}

func checkDuplicates(docs []*document, report *Report) {
	seen := map[string]string{} // kind/name -> first path
	for _, doc := range docs {
		if doc.kind == "" || doc.name == "" {
			continue
		}
		key := doc.kind + "/" + doc.name
		if first, ok := seen[key]; ok {
			report.add(Finding{Rule: "duplicate-name", Severity: SeverityError, Path: doc.path, Line: 2,
				Message: fmt.Sprintf("%s %q already defined in %s", doc.kind, doc.name, first)})
			continue
		}
		seen[key] = doc.path
	}
}

// checkCrossRefs resolves prose references like "skill: `rust-patterns`"
// against the corpus name set.
func checkCrossRefs(doc *document, names map[string]map[string]bool, report *Report) {
	lines := strings.Split(doc.body, "\n")
	for i, line := range lines {
		for _, m := range crossRefPattern.FindAllStringSubmatch(line, -1) {
			kind := strings.ToLower(m[1])
			name := m[2]
			if !names[kind][name] {
				report.add(Finding{Rule: "unresolved-reference", Severity: SeverityError,
					Path: doc.path, Line: doc.bodyLine + i,
					Message: fmt.Sprintf("reference to unknown %s %q", kind, name)})
			}
		}
	}
}

// checkRelativeLinks verifies that markdown links to repo-relative
// paths point at existing files.
func checkRelativeLinks(doc *document, report *Report) {
	src := []byte(doc.body)
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	dir := filepath.Dir(doc.absPath)

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		var dest string
		switch v := n.(type) {
		case *ast.Link:
			dest = string(v.Destination)
		case *ast.Image:
			dest = string(v.Destination)
		default:
			return ast.WalkContinue, nil
		}

		if dest == "" || strings.Contains(dest, "://") ||
			strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "mailto:") {
			return ast.WalkContinue, nil
		}

		// Strip fragment before checking the file.
		if idx := strings.Index(dest, "#"); idx >= 0 {
			dest = dest[:idx]
		}
		target := filepath.Join(dir, filepath.FromSlash(dest))
		if _, err := os.Stat(target); err != nil {
			report.add(Finding{Rule: "broken-link", Severity: SeverityError, Path: doc.path,
				Message: fmt.Sprintf("link target %q does not exist", dest)})
		}
		return ast.WalkContinue, nil
	})
}
