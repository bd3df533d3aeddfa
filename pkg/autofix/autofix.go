// Package autofix applies the indels rules propose, with overlap
// rejection and iterate-to-fixed-point re-linting. Grounded on
// rslint_core/src/autofix/apply.rs: on overlap,
// an entire rule's contribution for that pass is discarded, not just the
// conflicting indel, and each iteration recomputes the runnable set from
// that iteration's fresh diagnostics rather than a stale global one.
package autofix

import (
	"sort"

	"github.com/aledsdavies/cstlint/pkg/diagnostic"
)

// MaxIterations bounds the relint-and-reapply loop so a pathological rule
// interaction (two rules whose fixes keep reintroducing each other's
// trigger) can't hang.
const MaxIterations = 10

// Apply applies fixer's indels to source, after discarding any indel sets
// that overlap another.
func Apply(source string, fixers []*diagnostic.Fixer) (string, int) {
	type tagged struct {
		indel diagnostic.Indel
		group int
	}
	var all []tagged
	for gi, f := range fixers {
		for _, ind := range f.Indels {
			all = append(all, tagged{indel: ind, group: gi})
		}
	}
	if len(all) == 0 {
		return source, 0
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].indel.Delete.Start < all[j].indel.Delete.Start
	})

	rejected := map[int]bool{}
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if cur.indel.Delete.Start < prev.indel.Delete.End {
			rejected[prev.group] = true
			rejected[cur.group] = true
		}
	}

	var applied []diagnostic.Indel
	for _, t := range all {
		if rejected[t.group] {
			continue
		}
		applied = append(applied, t.indel)
	}
	if len(applied) == 0 {
		return source, 0
	}

	sort.Slice(applied, func(i, j int) bool {
		return applied[i].Delete.Start < applied[j].Delete.Start
	})

	var b []byte
	cursor := 0
	for _, ind := range applied {
		if ind.Delete.Start < cursor {
			continue // defensive: overlap should already have been rejected above
		}
		b = append(b, source[cursor:ind.Delete.Start]...)
		b = append(b, ind.Insert...)
		cursor = ind.Delete.End
	}
	b = append(b, source[cursor:]...)
	return string(b), len(applied)
}

// Driver repeatedly lints and applies fixes until no indels remain or
// MaxIterations is hit.
type Driver struct {
	// Lint re-lints source, returning the fresh per-rule fixers for this
	// pass.
	Lint func(source string) []*diagnostic.Fixer
}

// Run drives the fixed-point loop, returning the final source and the
// number of iterations that made a change.
func (d *Driver) Run(source string) (string, int) {
	iterations := 0
	for i := 0; i < MaxIterations; i++ {
		fixers := d.Lint(source)
		next, n := Apply(source, fixers)
		if n == 0 {
			break
		}
		source = next
		iterations++
	}
	return source, iterations
}
