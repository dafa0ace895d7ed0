package ui

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlighterCache caches highlighters by language to avoid repeated
// lexer lookups.
var (
	highlighterCache   = make(map[string]*Highlighter)
	highlighterCacheMu sync.RWMutex
)

// Highlighter handles syntax highlighting for fenced code blocks.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// NewHighlighter creates a highlighter for the given fence language.
// Returns nil if the language is not recognized.
func NewHighlighter(language string) *Highlighter {
	key := strings.ToLower(strings.TrimSpace(language))
	if key == "" {
		return nil
	}

	highlighterCacheMu.RLock()
	if h, ok := highlighterCache[key]; ok {
		highlighterCacheMu.RUnlock()
		return h
	}
	highlighterCacheMu.RUnlock()

	lexer := lexers.Get(key)
	if lexer == nil {
		// Cache nil result too to avoid repeated lookups
		highlighterCacheMu.Lock()
		highlighterCache[key] = nil
		highlighterCacheMu.Unlock()
		return nil
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	h := &Highlighter{
		lexer: lexer,
		style: style,
	}

	highlighterCacheMu.Lock()
	highlighterCache[key] = h
	highlighterCacheMu.Unlock()

	return h
}

// HighlightLine applies syntax highlighting to a single line.
func (h *Highlighter) HighlightLine(line string) string {
	if h == nil {
		return line
	}

	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var buf strings.Builder
	formatter := &ansiFormatter{style: h.style}
	if err := formatter.Format(&buf, iterator); err != nil {
		return line
	}

	return buf.String()
}

// ansiFormatter is a Chroma formatter that emits true-color foreground
// escapes only, no backgrounds.
type ansiFormatter struct {
	style *chroma.Style
}

func (f *ansiFormatter) Format(w io.Writer, iterator chroma.Iterator) error {
	for token := iterator(); token != chroma.EOF; token = iterator() {
		value := strings.TrimRight(token.Value, "\n")
		if value == "" {
			continue
		}

		entry := f.style.Get(token.Type)

		var codes []string
		if entry.Colour.IsSet() {
			codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
		}
		if entry.Bold == chroma.Yes {
			codes = append(codes, "1")
		}
		if entry.Italic == chroma.Yes {
			codes = append(codes, "3")
		}
		if entry.Underline == chroma.Yes {
			codes = append(codes, "4")
		}

		if len(codes) > 0 {
			fmt.Fprintf(w, "\x1b[%sm%s\x1b[0m", strings.Join(codes, ";"), value)
		} else {
			fmt.Fprint(w, value)
		}
	}
	return nil
}

// ANSI escape code pattern for stripping/measuring
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes all ANSI escape codes from a string
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
