package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

func tokenize(t *testing.T, source string) []Token {
	t.Helper()
	l := New(source)
	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == syntaxkind.EOF {
			break
		}
	}
	return toks
}

func kinds(toks []Token) []syntaxkind.Kind {
	ks := make([]syntaxkind.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestLexerBasicPunctuationAndKeywords(t *testing.T) {
	toks := tokenize(t, "let x = 1;")
	got := kinds(toks)
	want := []syntaxkind.Kind{
		syntaxkind.LET_KW, syntaxkind.WHITESPACE, syntaxkind.IDENT, syntaxkind.WHITESPACE,
		syntaxkind.EQ, syntaxkind.WHITESPACE, syntaxkind.NUMBER, syntaxkind.SEMICOLON, syntaxkind.EOF,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestLexerIsLossless(t *testing.T) {
	source := "  const foo = /* c */ 'hi';\n"
	toks := tokenize(t, source)
	var rebuilt string
	for _, tok := range toks {
		rebuilt += tok.Text
	}
	if rebuilt != source {
		t.Errorf("reassembled token text = %q, want %q", rebuilt, source)
	}
}

func TestLexerNeverAborts(t *testing.T) {
	// An unterminated string must still produce a token (with an attached
	// LexDiag) and an EOF, not stop scanning early.
	toks := tokenize(t, `"unterminated`)
	if len(toks) == 0 || toks[len(toks)-1].Kind != syntaxkind.EOF {
		t.Fatalf("lexer did not reach EOF: %v", kinds(toks))
	}
	found := false
	for _, tok := range toks {
		if tok.Kind == syntaxkind.STRING && tok.Err != nil && tok.Err.Kind == UnterminatedString {
			found = true
		}
	}
	if !found {
		t.Error("expected a STRING token with an UnterminatedString diagnostic")
	}
}

func TestLexerRegexVsDivisionDisambiguation(t *testing.T) {
	l := New("/abc/g")
	l.AllowRegex(true)
	tok := l.Next()
	if tok.Kind != syntaxkind.REGEX {
		t.Errorf("AllowRegex(true): got %v, want REGEX", tok.Kind)
	}

	l2 := New("/ 2")
	l2.AllowRegex(false)
	tok2 := l2.Next()
	if tok2.Kind != syntaxkind.SLASH {
		t.Errorf("AllowRegex(false): got %v, want SLASH", tok2.Kind)
	}
}

func TestLexerJointness(t *testing.T) {
	toks := tokenize(t, ">>=")
	if toks[0].Kind != syntaxkind.SHREQ {
		t.Fatalf("expected a single SHREQ token, got %v", kinds(toks))
	}

	toks2 := tokenize(t, "a b")
	// "a" is followed by whitespace, so it must not be marked Jointed.
	if toks2[0].Jointed {
		t.Error("identifier followed by whitespace should not be Jointed")
	}
}

func TestLexerContextualKeywordLexedAsKeyword(t *testing.T) {
	toks := tokenize(t, "of")
	if toks[0].Kind != syntaxkind.OF_KW {
		t.Errorf("contextual keyword 'of' lexed as %v, want OF_KW", toks[0].Kind)
	}
}

func TestSeekRescansAsRegex(t *testing.T) {
	l := New("a / b / c")
	start := l.Pos()
	_ = l.Next() // "a"
	l.Seek(start + 2) // position of the first '/'
	l.AllowRegex(true)
	tok := l.Next()
	if tok.Kind != syntaxkind.REGEX {
		t.Errorf("after Seek+AllowRegex, got %v, want REGEX", tok.Kind)
	}
}
