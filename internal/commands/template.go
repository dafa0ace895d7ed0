package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/samsaffron/skilldeck/internal/prompt"
)

var positionalPattern = regexp.MustCompile(`\$([1-9])`)

// ExpandOptions controls template expansion.
type ExpandOptions struct {
	// Args are the invocation arguments. $ARGUMENTS expands to all of
	// them joined with spaces; $1..$9 expand positionally.
	Args []string
	// BaseDir resolves relative include paths. Defaults to the
	// command's source directory, then the working directory.
	BaseDir string
	// MaxDepth limits recursive include expansion.
	MaxDepth int
	// AllowAbsolute allows absolute include paths.
	AllowAbsolute bool
}

// Expand renders the command body: argument placeholders are substituted
// first, then {{file:path}} and @path includes are expanded recursively
// with cycle and depth guards.
func (c *Command) Expand(opts ExpandOptions) (string, error) {
	out := substituteArgs(c.Body, opts.Args)

	baseDir := strings.TrimSpace(opts.BaseDir)
	if baseDir == "" && c.SourcePath != "" {
		baseDir = filepath.Dir(c.SourcePath)
	}
	if baseDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve include base directory: %w", err)
		}
		baseDir = cwd
	}

	return prompt.Expand(out, baseDir, prompt.Options{
		MaxDepth:      opts.MaxDepth,
		AllowAbsolute: opts.AllowAbsolute,
	})
}

// substituteArgs replaces $ARGUMENTS and $1..$9. Placeholders without a
// corresponding argument expand to the empty string.
func substituteArgs(body string, args []string) string {
	out := strings.ReplaceAll(body, "$ARGUMENTS", strings.Join(args, " "))
	return positionalPattern.ReplaceAllStringFunc(out, func(m string) string {
		idx, _ := strconv.Atoi(m[1:])
		if idx <= len(args) {
			return args[idx-1]
		}
		return ""
	})
}

// UsesArguments reports whether the body references $ARGUMENTS or any
// positional placeholder.
func (c *Command) UsesArguments() bool {
	return strings.Contains(c.Body, "$ARGUMENTS") || positionalPattern.MatchString(c.Body)
}
