// Package intern provides a process-wide concurrent string interner used to
// back GreenToken text.
//
// An LRU tier bounds memory for the long tail of one-off strings (large
// string literals, generated identifiers) so a long-running lint process
// does not grow without bound.
package intern

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Handle is an interned string. Handle equality implies content equality,
// so callers may compare handles with == instead of comparing the
// underlying bytes.
type Handle struct {
	s string
}

// String returns the interned string content.
func (h Handle) String() string { return h.s }

// Interner deduplicates string content behind a bounded LRU cache.
type Interner struct {
	hot *lru.Cache[string, Handle]

	coldMu sync.RWMutex
	cold map[string]Handle // permanent tier for keywords/punctuators
}

// New creates an Interner whose hot tier holds up to capacity distinct
// strings before evicting the least recently used.
func New(capacity int) *Interner {
	cache, err := lru.New[string, Handle](capacity)
	if err != nil {
		// Only returns an error for capacity <= 0; fall back to a
		// minimally-sized cache rather than propagating a constructor error
		// through every caller of intern.New.
		cache, _ = lru.New[string, Handle](1)
	}
	return &Interner{hot: cache, cold: make(map[string]Handle, 64)}
}

// Intern returns the canonical Handle for s, creating one if this is the
// first time s has been seen. Safe for concurrent use.
func (in *Interner) Intern(s string) Handle {
	in.coldMu.RLock()
	h, ok := in.cold[s]
	in.coldMu.RUnlock()
	if ok {
		return h
	}
	if h, ok := in.hot.Get(s); ok {
		return h
	}
	h = Handle{s: s}
	in.hot.Add(s, h)
	return h
}

// InternPermanent interns s in the unevictable tier. Used for the fixed
// vocabulary of keyword and punctuator spellings, which are reused by every
// token of that kind for the life of the process. Safe for concurrent use.
func (in *Interner) InternPermanent(s string) Handle {
	in.coldMu.RLock()
	h, ok := in.cold[s]
	in.coldMu.RUnlock()
	if ok {
		return h
	}
	in.coldMu.Lock()
	defer in.coldMu.Unlock()
	if h, ok := in.cold[s]; ok {
		return h
	}
	h = Handle{s: s}
	in.cold[s] = h
	return h
}

// Global is the default process-wide interner, sized generously for
// multi-file lint runs.
var Global = New(1 << 16)
