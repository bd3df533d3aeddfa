// Package diagnostic implements the multi-label, severity-tagged diagnostic
// model shared by the lexer, parser, and rule engine.
//
// The builder-method-chaining shape follows a ParseError/addError family,
// generalized from a single-message parse error into a richer
// label+suggestion+footer model.
package diagnostic

import "github.com/google/uuid"

// Severity is the diagnostic's reporting level.
type Severity int

const (
	Error Severity = iota
	Warning
	Note
	Help
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	case Help:
		return "help"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Span is anything convertible to a (file, byte range) pair: a raw range, a
// syntax node (via TrimmedRange), a syntax token (via TextRange), or a
// prior label.
type Span struct {
	FileID int
	Start int
	End int
}

// SubDiagnostic is a single labeled span attached to a Diagnostic. Primary
// labels conventionally use Error severity and secondary labels Info, but
// any label may use any severity.
type SubDiagnostic struct {
	Severity Severity
	Message string
	Span Span
}

// Applicability classifies how safe a CodeSuggestion is to auto-apply.
// Only Always-applicability suggestions participate in autofix by
// default.
type Applicability int

const (
	Unspecified Applicability = iota
	Always
	MaybeIncorrect
	HasPlaceholders
)

// Substitution is one replaced span within a CodeSuggestion.
type Substitution struct {
	Span Span
	Text string
}

// CodeSuggestion proposes one or more text substitutions to resolve a
// diagnostic.
type CodeSuggestion struct {
	Substitutions []Substitution
	Message string
	Applicability Applicability
	// InnerLabelRanges annotates sub-ranges of the suggestion worth calling
	// out in a rendered diff.
	InnerLabelRanges []Span
}

// Footer is a trailing note or help line.
type Footer struct {
	Severity Severity
	Label string
}

// Diagnostic is the core's single user-facing value type for every
// reportable condition: lex errors, parse errors, directive errors, and
// rule findings all produce Diagnostics.
type Diagnostic struct {
	RunID uuid.UUID // correlates diagnostics from the same LintResult across autofix iterations
	FileID int
	Severity Severity
	Code string
	Title string
	Children []SubDiagnostic
	Suggestions []CodeSuggestion
	Footers []Footer
}

// New starts building a Diagnostic at the given severity and title.
func New(severity Severity, title string) *Diagnostic {
	return &Diagnostic{Severity: severity, Title: title}
}

// WithCode sets the diagnostic's short machine-readable code (e.g. a rule
// name) and returns the receiver for chaining.
func (d *Diagnostic) WithCode(code string) *Diagnostic {
	d.Code = code
	return d
}

// WithFile sets the file id every Span on this diagnostic defaults to when
// constructed via Primary/Secondary.
func (d *Diagnostic) WithFile(fileID int) *Diagnostic {
	d.FileID = fileID
	return d
}

// Primary adds a primary (Error-severity) label.
func (d *Diagnostic) Primary(start, end int, msg string) *Diagnostic {
	d.Children = append(d.Children, SubDiagnostic{Severity: Error, Message: msg, Span: Span{FileID: d.FileID, Start: start, End: end}})
	return d
}

// Secondary adds a secondary (Info-severity) label.
func (d *Diagnostic) Secondary(start, end int, msg string) *Diagnostic {
	d.Children = append(d.Children, SubDiagnostic{Severity: Info, Message: msg, Span: Span{FileID: d.FileID, Start: start, End: end}})
	return d
}

// Label adds a label with an explicit severity, for the cases where a
// label needs a severity other than the primary/secondary default.
func (d *Diagnostic) Label(sev Severity, start, end int, msg string) *Diagnostic {
	d.Children = append(d.Children, SubDiagnostic{Severity: sev, Message: msg, Span: Span{FileID: d.FileID, Start: start, End: end}})
	return d
}

// Suggestion attaches a single-substitution code suggestion.
func (d *Diagnostic) Suggestion(start, end int, msg, replacement string, applicability Applicability) *Diagnostic {
	d.Suggestions = append(d.Suggestions, CodeSuggestion{
		Substitutions: []Substitution{{Span: Span{FileID: d.FileID, Start: start, End: end}, Text: replacement}},
		Message: msg,
		Applicability: applicability,
	})
	return d
}

// SuggestionWithLabels attaches a suggestion plus sub-ranges of the
// replacement worth labeling in a rendered diff.
func (d *Diagnostic) SuggestionWithLabels(start, end int, msg, replacement string, applicability Applicability, innerLabels []Span) *Diagnostic {
	d.Suggestions = append(d.Suggestions, CodeSuggestion{
		Substitutions: []Substitution{{Span: Span{FileID: d.FileID, Start: start, End: end}, Text: replacement}},
		Message: msg,
		Applicability: applicability,
		InnerLabelRanges: innerLabels,
	})
	return d
}

// FooterNote appends a Note-severity footer line.
func (d *Diagnostic) FooterNote(label string) *Diagnostic {
	d.Footers = append(d.Footers, Footer{Severity: Note, Label: label})
	return d
}

// FooterHelp appends a Help-severity footer line.
func (d *Diagnostic) FooterHelp(label string) *Diagnostic {
	d.Footers = append(d.Footers, Footer{Severity: Help, Label: label})
	return d
}

// Indel is a single text edit: delete a byte range, insert a string.
type Indel struct {
	Delete Span
	Insert string
}

// Fixer collects the indels one rule proposes for one file.
type Fixer struct {
	Indels []Indel
}

// AddIndel appends an edit to the fixer.
func (f *Fixer) AddIndel(start, end int, insert string) {
	f.Indels = append(f.Indels, Indel{Delete: Span{Start: start, End: end}, Insert: insert})
}
