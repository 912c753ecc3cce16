package memacs

import "regexp"

// Regexp is the consumed interface the search/replace commands compile
// patterns through, wrapping the standard regexp package. No repo in the
// retrieved pack ships importable third-party regex engine source (only
// go.mod manifest lines), so the standard library is the grounded choice
// here (SPEC_FULL.md §6); the interface exists so a different engine could
// be substituted without touching callers.
type Regexp interface {
	MatchString(s string) bool
	FindStringIndex(s string, start int) []int
	FindAllStringIndex(s string) [][]int
	ReplaceAll(s, repl string) string
}

type stdRegexp struct{ re *regexp.Regexp }

// CompileRegexp compiles pattern, case-sensitively.
func CompileRegexp(pattern string) (Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, NewOutcome(StatusScriptError, "invalid pattern: %v", err)
	}
	return stdRegexp{re}, nil
}

// CompileRegexpFold compiles pattern case-insensitively.
func CompileRegexpFold(pattern string) (Regexp, error) {
	return CompileRegexp("(?i)" + pattern)
}

func (r stdRegexp) MatchString(s string) bool { return r.re.MatchString(s) }

func (r stdRegexp) FindStringIndex(s string, start int) []int {
	if start > len(s) {
		return nil
	}
	loc := r.re.FindStringIndex(s[start:])
	if loc == nil {
		return nil
	}
	return []int{loc[0] + start, loc[1] + start}
}

func (r stdRegexp) FindAllStringIndex(s string) [][]int {
	return r.re.FindAllStringIndex(s, -1)
}

func (r stdRegexp) ReplaceAll(s, repl string) string {
	return r.re.ReplaceAllString(s, repl)
}
