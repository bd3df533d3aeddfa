// Package directive parses inline directive comments that scope rule
// enable/disable state. A directive comment
// starts with the "cstlint-" prefix inside a line or block comment,
// followed by a command and a comma-separated rule-name list.
//
// Grounded on the command-descriptor table in
// rslint_core/src/directives/{commands,lexer}.rs:
// a small fixed set of commands, each declaring how many rule-name
// arguments it takes and whether "until eof"/"until <line>" scoping
// applies.
package directive

import (
	"strconv"
	"strings"

	"github.com/aledsdavies/cstlint/pkg/diagnostic"
	"github.com/aledsdavies/cstlint/pkg/lexer"
	"github.com/aledsdavies/cstlint/pkg/red"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

// Command identifies which directive verb a comment invoked.
type Command int

const (
	CommandUnknown Command = iota
	CommandIgnore // cstlint-ignore <rules...> [until eof|<line>]
	CommandDisable // cstlint-disable <rules...>
	CommandEnable // cstlint-enable <rules...>
)

var commandTable = map[string]Command{
	"ignore": CommandIgnore,
	"disable": CommandDisable,
	"enable": CommandEnable,
}

// Directive is one parsed directive comment.
type Directive struct {
	Command Command
	Rules []string // empty means "all rules"
	// UntilLine, when non-nil, bounds an "ignore ... until <line>"
	// directive to a specific 1-based source line.
	UntilLine *int
	// UntilEOF is set by an explicit "ignore ... until eof" clause. A
	// CommandIgnore directive with UntilEOF false and UntilLine nil has no
	// until clause at all: it scopes to the single node it precedes, not to
	// a line range.
	UntilEOF bool
	Span diagnostic.Span
	// AllRules reports that no explicit rule names were given; an "all
	// rules" directive, which the original grammar allows bare.
	AllRules bool
}

const prefix = "cstlint-"

// ScanComments extracts every directive comment in the trivia run and
// parses it, returning malformed directives as diagnostics rather than
// dropping them silently.
func ScanComments(fileID int, trivia []lexer.Token, lineOf func(offset int) int) ([]Directive, []*diagnostic.Diagnostic) {
	var directives []Directive
	var diags []*diagnostic.Diagnostic
	offset := 0
	for _, t := range trivia {
		if t.Kind != syntaxkind.COMMENT {
			offset += int(t.ByteLen)
			continue
		}
		body := stripCommentMarkers(t.Text)
		idx := strings.Index(body, prefix)
		if idx < 0 {
			offset += int(t.ByteLen)
			continue
		}
		rest := strings.TrimSpace(body[idx+len(prefix):])
		d, err := parseDirectiveBody(rest)
		span := diagnostic.Span{FileID: fileID, Start: offset, End: offset + int(t.ByteLen)}
		if err != "" {
			diags = append(diags, diagnostic.New(diagnostic.Warning, "malformed directive: "+err).
				WithFile(fileID).Primary(span.Start, span.End, err))
			offset += int(t.ByteLen)
			continue
		}
		d.Span = span
		directives = append(directives, d)
		offset += int(t.ByteLen)
	}
	return directives, diags
}

func stripCommentMarkers(s string) string {
	s = strings.TrimPrefix(s, "//")
	s = strings.TrimPrefix(s, "/*")
	s = strings.TrimSuffix(s, "*/")
	return s
}

// parseDirectiveBody parses the text following "cstlint-", e.g.
// "ignore no-debugger, no-empty until eof" or "disable" (bare, meaning all
// rules).
func parseDirectiveBody(s string) (Directive, string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Directive{}, "empty directive"
	}
	cmd, ok := commandTable[fields[0]]
	if !ok {
		return Directive{}, "unknown directive command " + strconv.Quote(fields[0])
	}
	d := Directive{Command: cmd}
	rest := fields[1:]

	// "until eof" / "until <line>" only applies to ignore, and is always
	// the trailing clause.
	if cmd == CommandIgnore {
		if n := len(rest); n >= 2 && rest[n-2] == "until" {
			if rest[n-1] == "eof" {
				d.UntilEOF = true
			} else {
				line, err := strconv.Atoi(rest[n-1])
				if err != nil {
					return Directive{}, "invalid 'until' line number " + strconv.Quote(rest[n-1])
				}
				d.UntilLine = &line
			}
			rest = rest[:n-2]
		}
	}

	if len(rest) == 0 {
		d.AllRules = true
		return d, ""
	}
	joined := strings.Join(rest, " ")
	for _, name := range strings.Split(joined, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			d.Rules = append(d.Rules, name)
		}
	}
	if len(d.Rules) == 0 {
		d.AllRules = true
	}
	return d, ""
}

// Scope answers, for a given rule name at a given source position, whether
// a directive set suppresses it.
type Scope struct {
	disabledAll bool
	disabledByName map[string]bool
	ignoreRanges []ignoreRange
	nodeIgnores []nodeIgnore
}

// ignoreRange is an "ignore ... until eof" or "ignore ... until <line>"
// directive, scoped by line the way Disable/Enable are.
type ignoreRange struct {
	rule string // "" means all rules
	fromLine int
	untilLine *int // nil means until EOF
}

// nodeIgnore is a bare "ignore" directive with no until clause, scoped to
// the single node the comment precedes rather than to a line range: only
// that one following node is suppressed, so a second, unrelated node later
// in the file must still be flagged.
type nodeIgnore struct {
	rule string // "" means all rules
	start, end int // the covering node's absolute byte range
}

// BuildScope compiles a file's directives into a queryable Scope. root is
// the file's parsed tree, used to resolve bare "ignore" directives to the
// node they precede; lineOf maps a byte offset to a 1-based line number.
func BuildScope(directives []Directive, root *red.Node, lineOf func(offset int) int) *Scope {
	sc := &Scope{disabledByName: map[string]bool{}}
	for _, d := range directives {
		line := lineOf(d.Span.Start)
		switch d.Command {
		case CommandDisable:
			if d.AllRules {
				sc.disabledAll = true
			}
			for _, r := range d.Rules {
				sc.disabledByName[r] = true
			}
		case CommandEnable:
			if d.AllRules {
				sc.disabledAll = false
				sc.disabledByName = map[string]bool{}
			}
			for _, r := range d.Rules {
				delete(sc.disabledByName, r)
			}
		case CommandIgnore:
			if !d.UntilEOF && d.UntilLine == nil {
				sc.addNodeIgnore(d, root)
				continue
			}
			if d.AllRules {
				sc.ignoreRanges = append(sc.ignoreRanges, ignoreRange{fromLine: line, untilLine: d.UntilLine})
				continue
			}
			for _, r := range d.Rules {
				sc.ignoreRanges = append(sc.ignoreRanges, ignoreRange{rule: r, fromLine: line, untilLine: d.UntilLine})
			}
		}
	}
	return sc
}

// addNodeIgnore resolves a bare "ignore" directive to the smallest node
// covering the position just past the comment, the node it precedes. For
// a comment in the file's leading trivia that node is the SCRIPT/MODULE
// root, so the directive then covers the whole file.
func (sc *Scope) addNodeIgnore(d Directive, root *red.Node) {
	if root == nil {
		return
	}
	pos := d.Span.End
	covering := root.CoveringElement(red.TextRange{Start: pos, End: pos + 1})
	if covering == nil {
		return
	}
	rng := covering.TextRange()
	if d.AllRules {
		sc.nodeIgnores = append(sc.nodeIgnores, nodeIgnore{start: rng.Start, end: rng.End})
		return
	}
	for _, r := range d.Rules {
		sc.nodeIgnores = append(sc.nodeIgnores, nodeIgnore{rule: r, start: rng.Start, end: rng.End})
	}
}

// Suppressed reports whether rule should be suppressed for a diagnostic at
// the given 1-based line and absolute byte offset.
func (sc *Scope) Suppressed(rule string, line, offset int) bool {
	if sc.disabledAll || sc.disabledByName[rule] {
		return true
	}
	for _, r := range sc.ignoreRanges {
		if r.rule != "" && r.rule != rule {
			continue
		}
		if line < r.fromLine {
			continue
		}
		if r.untilLine == nil || line <= *r.untilLine {
			return true
		}
	}
	for _, r := range sc.nodeIgnores {
		if r.rule != "" && r.rule != rule {
			continue
		}
		if offset >= r.start && offset < r.end {
			return true
		}
	}
	return false
}
