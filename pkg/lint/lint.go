// Package lint is the public entry point wiring the lexer, parser, red
// cursor, directive scanner, rule engine, and autofix driver into one
// coherent per-file flow, exposing a small handful of "run everything
// over this input" functions rather than making callers assemble the
// pipeline themselves.
package lint

import (
	"strings"

	"github.com/aledsdavies/cstlint/pkg/autofix"
	"github.com/aledsdavies/cstlint/pkg/diagnostic"
	"github.com/aledsdavies/cstlint/pkg/directive"
	"github.com/aledsdavies/cstlint/pkg/green"
	"github.com/aledsdavies/cstlint/pkg/incremental"
	"github.com/aledsdavies/cstlint/pkg/lexer"
	"github.com/aledsdavies/cstlint/pkg/parser"
	"github.com/aledsdavies/cstlint/pkg/red"
	"github.com/aledsdavies/cstlint/pkg/rulengine"
	"github.com/aledsdavies/cstlint/pkg/rules"
)

// LineIndex maps byte offsets to 1-based line numbers, computed once per
// source text and shared by diagnostic rendering, directive scoping, and
// rule reporting.
type LineIndex struct {
	starts []int // byte offset of the first byte of each line
}

// NewLineIndex scans source for line-break bytes and records each line's
// starting offset.
func NewLineIndex(source string) *LineIndex {
	li := &LineIndex{starts: []int{0}}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			li.starts = append(li.starts, i+1)
		}
	}
	return li
}

// LineOf returns the 1-based line number containing offset.
func (li *LineIndex) LineOf(offset int) int {
	lo, hi := 0, len(li.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if li.starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1
}

// ParseResult holds one parse pass's tree, red root, and diagnostics.
type ParseResult struct {
	Green *green.Node
	Root *red.Node
	Diags []*diagnostic.Diagnostic
}

// ParseText parses source as a script.
func ParseText(fileID int, source string) *ParseResult {
	p := parser.New(source, fileID)
	g := p.ParseScript()
	return &ParseResult{Green: g, Root: red.NewRoot(g), Diags: p.Diagnostics()}
}

// ParseModule parses source as a module.
func ParseModule(fileID int, source string) *ParseResult {
	p := parser.New(source, fileID)
	g := p.ParseModule()
	return &ParseResult{Green: g, Root: red.NewRoot(g), Diags: p.Diagnostics()}
}

// TryIncrementallyReparsingScript attempts an incremental reparse of a
// previously parsed script, falling back to a full reparse when no
// restartable node covers the edit.
func TryIncrementallyReparsingScript(prev *ParseResult, oldSource string, edit incremental.Edit) (newSource string, result *ParseResult) {
	return tryIncrementallyReparsing(prev, oldSource, edit, false)
}

// TryIncrementallyReparsingModule is TryIncrementallyReparsingScript for
// module grammar.
func TryIncrementallyReparsingModule(prev *ParseResult, oldSource string, edit incremental.Edit) (newSource string, result *ParseResult) {
	return tryIncrementallyReparsing(prev, oldSource, edit, true)
}

func tryIncrementallyReparsing(prev *ParseResult, oldSource string, edit incremental.Edit, isModule bool) (string, *ParseResult) {
	newSource, r := incremental.Reparse(prev.Green, oldSource, edit, isModule)
	return newSource, &ParseResult{Green: r.Root, Root: red.NewRoot(r.Root), Diags: r.Diagnostics}
}

// allTrivia re-lexes source end to end and returns every token, trivia and
// non-trivia alike, in file order starting at offset 0 — the shape
// directive.ScanComments needs to track absolute byte offsets as it walks
// past non-comment trivia.
func allTrivia(source string) []lexer.Token {
	lx := lexer.New(source)
	var out []lexer.Token
	for !lx.Done() {
		t := lx.Next()
		out = append(out, t)
	}
	return out
}

// LintResult is everything one LintFile call produces for a file.
type LintResult struct {
	FileID int
	Source string
	Tree *green.Node
	Diagnostics []*diagnostic.Diagnostic
	fixer *diagnostic.Fixer
	store *rulengine.Store
	isModule bool
}

// LintFile runs the full pipeline over source: parse, scan directives,
// dispatch the rule store, and merge parse diagnostics with rule findings.
func LintFile(fileID int, source string, isModule bool, store *rulengine.Store) *LintResult {
	var pr *ParseResult
	if isModule {
		pr = ParseModule(fileID, source)
	} else {
		pr = ParseText(fileID, source)
	}

	li := NewLineIndex(source)
	directives, directiveDiags := directive.ScanComments(fileID, allTrivia(source), li.LineOf)
	scope := directive.BuildScope(directives, pr.Root, li.LineOf)

	ruleDiags, fixer := rulengine.Run(pr.Root, fileID, source, store, scope, li.LineOf)

	all := make([]*diagnostic.Diagnostic, 0, len(pr.Diags)+len(directiveDiags)+len(ruleDiags))
	all = append(all, pr.Diags...)
	all = append(all, directiveDiags...)
	all = append(all, ruleDiags...)

	return &LintResult{
		FileID: fileID,
		Source: source,
		Tree: pr.Green,
		Diagnostics: all,
		fixer: fixer,
		store: store,
		isModule: isModule,
	}
}

// HighestSeverity returns the most severe Severity among r's diagnostics,
// or (0, false) when there are none.
func (r *LintResult) HighestSeverity() (diagnostic.Severity, bool) {
	if len(r.Diagnostics) == 0 {
		return 0, false
	}
	worst := diagnostic.Info
	for _, d := range r.Diagnostics {
		if d.Severity < worst {
			worst = d.Severity
		}
	}
	return worst, true
}

// ApplyFixes runs the autofix fixed-point loop against
// r.Source, re-linting with the same rule store and module-ness on every
// iteration, and returns the final source plus the number of iterations
// that changed it.
func (r *LintResult) ApplyFixes() (string, int) {
	driver := &autofix.Driver{
		Lint: func(source string) []*diagnostic.Fixer {
			res := LintFile(r.FileID, source, r.isModule, r.store)
			return []*diagnostic.Fixer{res.fixer}
		},
	}
	return driver.Run(r.Source)
}

// DefaultStore builds a Store over every rule in the library, following
// overrides (by rule name) loaded from config — a thin convenience over
// rulengine.Builtins + Store.LoadRules for callers (the CLI, tests) that
// don't need to assemble the rule list themselves.
func DefaultStore(overrides map[string]rulengine.Config) *rulengine.Store {
	store := rulengine.Builtins(rules.All())
	store.LoadRules(overrides)
	return store
}

// RecommendedStore builds a Store containing only recommended rules, with
// overrides applied the same way as DefaultStore.
func RecommendedStore(overrides map[string]rulengine.Config) *rulengine.Store {
	store := rulengine.Recommended(rules.All())
	store.LoadRules(overrides)
	return store
}

// DetectModule is a textual fallback for callers with no other signal
// (file extension, bundler config) for whether source is a module or a
// plain script: an import or export at the start of the source, or at the
// start of any later line, makes it a module.
func DetectModule(source string) bool {
	trimmed := strings.TrimSpace(source)
	return strings.HasPrefix(trimmed, "import ") ||
		strings.HasPrefix(trimmed, "import{") ||
		strings.HasPrefix(trimmed, "export ") ||
		strings.Contains(source, "\nexport ") ||
		strings.Contains(source, "\nimport ")
}
