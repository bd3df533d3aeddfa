package rules

import (
	"regexp"
	"strings"

	"github.com/aledsdavies/cstlint/pkg/diagnostic"
	"github.com/aledsdavies/cstlint/pkg/red"
	"github.com/aledsdavies/cstlint/pkg/rulengine"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

// regexBody strips the leading/trailing '/' and trailing flags from a
// REGEX token's literal text, returning the pattern body.
func regexBody(text string) string {
	end := strings.LastIndex(text, "/")
	if end <= 0 {
		return ""
	}
	return text[1:end]
}

// NoRegexSpaces flags two or more literal spaces in a regular expression
// pattern, which are easy to miscount and usually meant `{n}` or a
// character class. Supplemented from
// rslint_core/src/groups/regex/no_regex_spaces.rs.
type NoRegexSpaces struct{ rulengine.BaseRule }

func (NoRegexSpaces) Name() string { return "no-regex-spaces" }
func (NoRegexSpaces) Group() string { return "regex" }
func (NoRegexSpaces) Tags() []string { return []string{"regex"} }
func (NoRegexSpaces) Recommended() bool { return true }

var multiSpace = regexp.MustCompile(` +`)

func (r *NoRegexSpaces) CheckToken(ctx *rulengine.Ctx, t *red.Token) {
	if t.Kind() != syntaxkind.REGEX {
		return
	}
	body := regexBody(t.Text())
	if multiSpace.MatchString(body) {
		rng := t.TextRange()
		ctx.Report(diagnostic.New(diagnostic.Warning, "multiple spaces in regular expression").
			WithFile(ctx.FileID).Primary(rng.Start, rng.End, "use { } to express a repeat count explicitly"))
	}
}

// NoInvalidRegexp compiles each regex literal's body with Go's RE2 engine
// as a best-effort validity check and reports a diagnostic when it fails,
// the nearest Go-native analog of
// rslint_core/src/groups/regex/no_invalid_regexp.rs — full
// ECMAScript regex-grammar validation is out of scope.
type NoInvalidRegexp struct{ rulengine.BaseRule }

func (NoInvalidRegexp) Name() string { return "no-invalid-regexp" }
func (NoInvalidRegexp) Group() string { return "regex" }
func (NoInvalidRegexp) Tags() []string { return []string{"regex"} }
func (NoInvalidRegexp) Recommended() bool { return true }

func (r *NoInvalidRegexp) CheckToken(ctx *rulengine.Ctx, t *red.Token) {
	if t.Kind() != syntaxkind.REGEX {
		return
	}
	body := regexBody(t.Text())
	if _, err := regexp.Compile(body); err != nil {
		rng := t.TextRange()
		ctx.Report(diagnostic.New(diagnostic.Error, "invalid regular expression: "+err.Error()).
			WithFile(ctx.FileID).Primary(rng.Start, rng.End, "could not parse this pattern"))
	}
}

// SimplifyRegex flags a handful of redundant regex idioms — a
// single-character alternation like `(?:a|b)` that a character class
// expresses more simply, and an anchored `^...$` wrapping the entire
// pattern that the match call already implies in most call sites — as
// style suggestions rather than errors.
type SimplifyRegex struct{ rulengine.BaseRule }

func (SimplifyRegex) Name() string { return "simplify-regex" }
func (SimplifyRegex) Group() string { return "regex" }
func (SimplifyRegex) Tags() []string { return []string{"regex", "style"} }
func (SimplifyRegex) Recommended() bool { return false }

var singleCharAlternation = regexp.MustCompile(`\(\?:([a-zA-Z0-9])(\|[a-zA-Z0-9])+\)`)

func (r *SimplifyRegex) CheckToken(ctx *rulengine.Ctx, t *red.Token) {
	if t.Kind() != syntaxkind.REGEX {
		return
	}
	body := regexBody(t.Text())
	if singleCharAlternation.MatchString(body) {
		rng := t.TextRange()
		ctx.Report(diagnostic.New(diagnostic.Info, "alternation of single characters can be a character class").
			WithFile(ctx.FileID).Primary(rng.Start, rng.End, "e.g. (?:a|b|c) -> [abc]"))
	}
}
