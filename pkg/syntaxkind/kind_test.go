package syntaxkind

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		spelling string
		want     Kind
		isKw     bool
	}{
		{"function", FUNCTION_KW, true},
		{"return", RETURN_KW, true},
		{"of", OF_KW, true},
		{"async", ASYNC_KW, true},
		{"notAKeyword", IDENT, false},
		{"", IDENT, false},
	}
	for _, c := range cases {
		got, ok := LookupKeyword(c.spelling)
		if ok != c.isKw {
			t.Errorf("LookupKeyword(%q) ok = %v, want %v", c.spelling, ok, c.isKw)
			continue
		}
		if ok && got != c.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", c.spelling, got, c.want)
		}
	}
}

func TestIsKeywordPunctNode(t *testing.T) {
	if !IsKeyword(IF_KW) {
		t.Error("IF_KW should be a keyword")
	}
	if IsKeyword(LPAREN) {
		t.Error("LPAREN should not be a keyword")
	}
	if !IsPunct(LPAREN) {
		t.Error("LPAREN should be a punctuator")
	}
	if IsPunct(IDENT) {
		t.Error("IDENT should not be a punctuator")
	}
	if !IsNode(BLOCK_STMT) {
		t.Error("BLOCK_STMT should be a node kind")
	}
	if IsNode(IDENT) {
		t.Error("IDENT should not be a node kind")
	}
}

func TestIsTrivia(t *testing.T) {
	for _, k := range []Kind{WHITESPACE, COMMENT, SHEBANG} {
		if !IsTrivia(k) {
			t.Errorf("%v should be trivia", k)
		}
	}
	if IsTrivia(IDENT) {
		t.Error("IDENT should not be trivia")
	}
}

func TestContextualKeywordsRoundTripThroughNames(t *testing.T) {
	for k := range ContextualKeywords {
		spelling, ok := names[k]
		if !ok {
			t.Fatalf("contextual keyword %v has no spelling in names", k)
		}
		got, ok := LookupKeyword(spelling)
		if !ok || got != k {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v, true", spelling, got, ok, k)
		}
	}
}

func TestKindString(t *testing.T) {
	if IF_KW.String() != "if" {
		t.Errorf("IF_KW.String() = %q, want %q", IF_KW.String(), "if")
	}
	if got := Kind(65000).String(); got != "Kind(65000)" {
		t.Errorf("unknown Kind.String() = %q, want Kind(65000)", got)
	}
}

func TestTokenSet(t *testing.T) {
	ts := NewTokenSet(IF_KW, FOR_KW, WHILE_KW)
	for _, k := range []Kind{IF_KW, FOR_KW, WHILE_KW} {
		if !ts.Contains(k) {
			t.Errorf("TokenSet should contain %v", k)
		}
	}
	if ts.Contains(RETURN_KW) {
		t.Error("TokenSet should not contain RETURN_KW")
	}
	if ts.Empty() {
		t.Error("non-empty TokenSet reported as Empty")
	}
	var empty TokenSet
	if !empty.Empty() {
		t.Error("zero-value TokenSet should be Empty")
	}

	union := NewTokenSet(IF_KW).Union(NewTokenSet(FOR_KW))
	if !union.Contains(IF_KW) || !union.Contains(FOR_KW) {
		t.Error("Union should contain members of both sets")
	}
}

func TestSingletonAboveBitmapWidthIsEmpty(t *testing.T) {
	// A TokenSet is only 192 bits wide; kinds at or beyond that index must
	// not panic and must not claim membership for anything.
	huge := Kind(1000)
	ts := Singleton(huge)
	if ts.Contains(IF_KW) {
		t.Error("out-of-range Singleton should not contain unrelated kinds")
	}
}
