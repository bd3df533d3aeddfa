package syntaxkind

// TokenSet is a compact bitmap over up to 192 Kind values (three 64-bit
// words), used throughout the parser for "at one of these kinds" and
// recovery-set membership tests.
type TokenSet [3]uint64

// NewTokenSet builds a TokenSet containing the given kinds.
func NewTokenSet(kinds ...Kind) TokenSet {
	var ts TokenSet
	for _, k := range kinds {
		ts = ts.Union(Singleton(k))
	}
	return ts
}

// Singleton returns a TokenSet containing exactly k. Kinds ≥ 192 are
// silently ignored (none of the catalog's kinds reach that range).
func Singleton(k Kind) TokenSet {
	var ts TokenSet
	if k < 192 {
		ts[k/64] = 1 << uint(k%64)
	}
	return ts
}

// Contains reports whether k is a member of ts.
func (ts TokenSet) Contains(k Kind) bool {
	if k < 192 {
		return ts[k/64]&(1<<uint(k%64)) != 0
	}
	return false
}

// Union returns the set union of ts and other.
func (ts TokenSet) Union(other TokenSet) TokenSet {
	return TokenSet{ts[0] | other[0], ts[1] | other[1], ts[2] | other[2]}
}

// Empty reports whether ts has no members.
func (ts TokenSet) Empty() bool {
	return ts[0] == 0 && ts[1] == 0 && ts[2] == 0
}
