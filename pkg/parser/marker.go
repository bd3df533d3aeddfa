package parser

import (
	"github.com/aledsdavies/cstlint/pkg/green"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

// Marker and CompletedMarker mirror the classic event-parser vocabulary
// (start/precede/complete/abandon) even though, under the hood, a Marker
// is just a green.Checkpoint and completing it drives the builder
// directly rather than replaying a recorded event log. See DESIGN.md for
// why the two-phase event/forward_parent model collapses cleanly onto
// green.Builder's StartNodeAt without losing the retroactive-reparenting
// behavior it exists for.
type Marker struct {
	p *Parser
	cp green.Checkpoint
	// done guards against completing or abandoning the same Marker twice.
	done bool
}

// CompletedMarker is the result of completing a Marker: a handle that can
// still be re-wrapped by a later, earlier-starting Marker via Precede.
type CompletedMarker struct {
	p *Parser
	cp green.Checkpoint
}

// Start opens a new Marker at the current builder position.
func (p *Parser) Start() Marker {
	return Marker{p: p, cp: p.builder.Checkpoint()}
}

// Complete finishes the Marker, wrapping every token/node produced since
// it was started in a new node of kind k.
func (m *Marker) Complete(k syntaxkind.Kind) CompletedMarker {
	if m.done {
		panic("parser: marker completed twice")
	}
	m.done = true
	m.p.builder.StartNodeAt(m.cp)
	m.p.builder.FinishNode(k)
	return CompletedMarker{p: m.p, cp: m.cp}
}

// Abandon discards the Marker: anything produced since it was started is
// spliced into the parent frame unwrapped, as if the marker never existed.
// Used when speculative parsing needs to back out.
func (m *Marker) Abandon() {
	if m.done {
		panic("parser: marker abandoned after completion")
	}
	m.done = true
}

// Precede opens a new Marker that starts at the same position this
// CompletedMarker started at, so that completing the new marker wraps both
// the old marker's node and anything emitted after it — e.g. turning
// `(a, b)` into the parameter list of `(a, b) => a + b` only once the
// parser has seen the `=>`.
func (cm CompletedMarker) Precede() Marker {
	return Marker{p: cm.p, cp: cm.cp}
}
