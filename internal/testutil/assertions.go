package testutil

import (
	"regexp"
	"strings"
	"testing"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes so assertions can match plain text.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// AssertContains fails the test if output does not contain expected.
func AssertContains(t *testing.T, output, expected string) {
	t.Helper()
	if !strings.Contains(output, expected) {
		t.Errorf("output does not contain expected string\nExpected to find: %q\nIn output:\n%s", expected, truncateForError(output))
	}
}

// AssertContainsPlain fails if output (after stripping ANSI) does not contain expected.
func AssertContainsPlain(t *testing.T, output, expected string) {
	t.Helper()
	plain := StripANSI(output)
	if !strings.Contains(plain, expected) {
		t.Errorf("output does not contain expected string\nExpected to find: %q\nIn output (plain):\n%s", expected, truncateForError(plain))
	}
}

// AssertNotContains fails the test if output contains unexpected.
func AssertNotContains(t *testing.T, output, unexpected string) {
	t.Helper()
	if strings.Contains(output, unexpected) {
		t.Errorf("output contains unexpected string\nDid not expect to find: %q\nIn output:\n%s", unexpected, truncateForError(output))
	}
}

// AssertMatchesString fails the test if output does not match the regex pattern string.
func AssertMatchesString(t *testing.T, output, pattern string) {
	t.Helper()
	re, err := regexp.Compile(pattern)
	if err != nil {
		t.Fatalf("invalid regex pattern %q: %v", pattern, err)
	}
	if !re.MatchString(output) {
		t.Errorf("output does not match pattern\nPattern: %s\nOutput:\n%s", pattern, truncateForError(output))
	}
}

// truncateForError truncates output for error messages to avoid huge logs.
func truncateForError(s string) string {
	const maxLen = 2000
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "\n... [truncated]"
}
