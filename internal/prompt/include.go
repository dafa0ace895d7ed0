// Package prompt expands file includes in document bodies. Two directive
// forms are accepted: {{file:path}} anywhere in the text, and a standalone
// @path token at a whitespace boundary. Included files may themselves
// contain directives; expansion recurses with depth and cycle guards.
package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

const (
	// DefaultMaxDepth limits recursive include expansion depth.
	DefaultMaxDepth = 10
)

var (
	filePattern = regexp.MustCompile(`\{\{\s*file\s*:\s*([^}]+?)\s*\}\}`)
	atPattern   = regexp.MustCompile(`(^|\s)@([^\s]+)`)
)

// Options controls include expansion.
type Options struct {
	// MaxDepth limits recursive expansion. Defaults to DefaultMaxDepth.
	MaxDepth int
	// AllowAbsolute permits absolute include paths.
	AllowAbsolute bool
}

// Expand resolves every include directive in input against baseDir.
// Relative paths in included files resolve against the included file's
// own directory.
func Expand(input, baseDir string, opts Options) (string, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolve include base directory %q: %w", baseDir, err)
	}

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	return expand(input, absBase, opts.AllowAbsolute, maxDepth, 0, nil)
}

// includeRef is one directive found in a body: the byte span to replace
// and the path it names.
type includeRef struct {
	start, end int
	path       string
}

// findIncludes locates both directive forms, ordered by position.
// An @token only counts as an include when it looks like a path, so
// annotations like @Test and handles like @user pass through untouched.
func findIncludes(input string) []includeRef {
	var refs []includeRef

	for _, m := range filePattern.FindAllStringSubmatchIndex(input, -1) {
		refs = append(refs, includeRef{
			start: m[0],
			end:   m[1],
			path:  strings.TrimSpace(input[m[2]:m[3]]),
		})
	}

	for _, m := range atPattern.FindAllStringSubmatchIndex(input, -1) {
		token := strings.TrimRight(input[m[4]:m[5]], `.,;:!?)"'`)
		if !strings.ContainsAny(token, "/.") {
			continue
		}
		refs = append(refs, includeRef{
			start: m[4] - 1, // the @ itself
			end:   m[4] + len(token),
			path:  token,
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].start < refs[j].start })
	return refs
}

func expand(input, baseDir string, allowAbsolute bool, maxDepth, depth int, stack []string) (string, error) {
	if depth > maxDepth {
		return "", fmt.Errorf("include depth %d exceeds maximum depth %d", depth, maxDepth)
	}

	refs := findIncludes(input)
	if len(refs) == 0 {
		return input, nil
	}

	var out strings.Builder
	last := 0
	for _, ref := range refs {
		if ref.start < last {
			continue // nested inside an earlier directive
		}
		out.WriteString(input[last:ref.start])

		resolvedPath, err := resolvePath(ref.path, baseDir, allowAbsolute)
		if err != nil {
			return "", err
		}

		if cycle := findCycleStart(stack, resolvedPath); cycle >= 0 {
			chain := append(append([]string{}, stack[cycle:]...), resolvedPath)
			return "", fmt.Errorf("include cycle detected: %s", strings.Join(chain, " -> "))
		}

		data, err := os.ReadFile(resolvedPath)
		if err != nil {
			return "", fmt.Errorf("read include %q (%s): %w", ref.path, resolvedPath, err)
		}

		nextStack := append(append([]string{}, stack...), resolvedPath)
		expanded, err := expand(string(data), filepath.Dir(resolvedPath), allowAbsolute, maxDepth, depth+1, nextStack)
		if err != nil {
			return "", fmt.Errorf("expand include %q (%s): %w", ref.path, resolvedPath, err)
		}

		out.WriteString(expanded)
		last = ref.end
	}

	out.WriteString(input[last:])
	return out.String(), nil
}

func resolvePath(rawPath, baseDir string, allowAbsolute bool) (string, error) {
	if rawPath == "" {
		return "", fmt.Errorf("include path is empty")
	}

	var full string
	if filepath.IsAbs(rawPath) {
		if !allowAbsolute {
			return "", fmt.Errorf("absolute include path is not allowed: %s", rawPath)
		}
		full = filepath.Clean(rawPath)
	} else {
		full = filepath.Join(baseDir, rawPath)
	}

	abs, err := filepath.Abs(full)
	if err != nil {
		return "", fmt.Errorf("resolve include path %q: %w", rawPath, err)
	}
	return abs, nil
}

func findCycleStart(stack []string, target string) int {
	for i, s := range stack {
		if s == target {
			return i
		}
	}
	return -1
}
