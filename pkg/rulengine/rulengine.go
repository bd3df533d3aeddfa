// Package rulengine implements the rule store and parallel dispatch loop
// that runs every enabled rule over a parsed file. Grounded on the
// command-dispatch pattern in pkgs/engine/engine.go (a registry of named,
// independently invokable units of work) and on kpumuk/thrift-weaver's
// internal/lint.Rule/Runner split, generalized from single-threaded
// dispatch to a data-parallel model using golang.org/x/sync/errgroup.
package rulengine

import (
	"context"
	"sort"

	"github.com/aledsdavies/cstlint/pkg/diagnostic"
	"github.com/aledsdavies/cstlint/pkg/directive"
	"github.com/aledsdavies/cstlint/pkg/red"
	"golang.org/x/sync/errgroup"
)

// Ctx is the per-file context passed to every rule callback: the file's
// root red cursor, its id, and a Fixer the rule may populate with indels.
type Ctx struct {
	FileID int
	Root *red.Node
	Source string
	diags []*diagnostic.Diagnostic
	fix *diagnostic.Fixer
}

// HasNewlineBefore scans the raw source backward from byte offset start
// over contiguous whitespace, reporting whether a line break occurs
// before the nearest non-whitespace byte. Used by rules such as
// no-unexpected-multiline that care about a line break immediately before
// a token, a property green tokens don't carry directly once built into
// the tree.
func (c *Ctx) HasNewlineBefore(start int) bool {
	for i := start - 1; i >= 0; i-- {
		b := c.Source[i]
		switch b {
		case '\n':
			return true
		case ' ', '\t', '\r':
			continue
		default:
			return false
		}
	}
	return false
}

// Report appends a diagnostic tagged with the emitting rule's name.
func (c *Ctx) Report(d *diagnostic.Diagnostic) {
	c.diags = append(c.diags, d)
}

// Fixer returns the Fixer the rule should add indels to when its finding
// has an automatic fix.
func (c *Ctx) Fixer() *diagnostic.Fixer { return c.fix }

// Rule is the interface every lint rule implements. Each rule writes
// Name/Group/Tags/Recommended itself; embedding BaseRule supplies no-op
// CheckRoot, CheckNode and CheckToken hooks, so a rule overrides only the
// ones it uses.
type Rule interface {
	Name() string
	Group() string
	Tags() []string
	Recommended() bool
	CheckRoot(ctx *Ctx)
	CheckNode(ctx *Ctx, n *red.Node)
	CheckToken(ctx *Ctx, t *red.Token)
}

// BaseRule provides no-op defaults so concrete rules only implement the
// hooks they need.
type BaseRule struct{}

func (BaseRule) CheckRoot(*Ctx) {}
func (BaseRule) CheckNode(*Ctx, *red.Node) {}
func (BaseRule) CheckToken(*Ctx, *red.Token) {}

// Store holds every registered rule and the active configuration
// (an enabled flag and a severity per rule) loaded over it.
type Store struct {
	rules []Rule
	byName map[string]Rule
	configs map[string]Config
}

// Config is a rule's active configuration: whether it's enabled and at
// what severity.
type Config struct {
	Enabled bool
	Severity diagnostic.Severity
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{byName: map[string]Rule{}, configs: map[string]Config{}}
}

// Register adds a rule to the store.
func (s *Store) Register(r Rule) {
	s.rules = append(s.rules, r)
	s.byName[r.Name()] = r
}

// Get returns a rule by name.
func (s *Store) Get(name string) (Rule, bool) {
	r, ok := s.byName[name]
	return r, ok
}

// Builtins returns a Store with every registered rule enabled.
func Builtins(all []Rule) *Store {
	s := NewStore()
	for _, r := range all {
		s.Register(r)
		s.configs[r.Name()] = Config{Enabled: true, Severity: diagnostic.Warning}
	}
	return s
}

// Recommended returns a Store containing only the rules whose
// Recommended() is true, mirroring
// rslint_core/src/store.rs's recommended() filter.
func Recommended(all []Rule) *Store {
	s := NewStore()
	for _, r := range all {
		if !r.Recommended() {
			continue
		}
		s.Register(r)
		s.configs[r.Name()] = Config{Enabled: true, Severity: diagnostic.Warning}
	}
	return s
}

// LoadRules merges external configuration (from internal/config) into the
// store, enabling/disabling rules and overriding severities.
func (s *Store) LoadRules(overrides map[string]Config) {
	for name, cfg := range overrides {
		s.configs[name] = cfg
	}
}

// Rules returns every registered rule in stable registration order —
// diagnostics are merged in this order, then by each rule's own emission
// order, for deterministic output across repeated runs.
func (s *Store) Rules() []Rule { return append([]Rule(nil), s.rules...) }

// Run dispatches every enabled rule over the file concurrently, one
// goroutine per rule, merges their diagnostics in deterministic
// rule-registration order, and applies directive-based suppression.
func Run(ctxRoot *red.Node, fileID int, source string, store *Store, scope *directive.Scope, lineOf func(offset int) int) ([]*diagnostic.Diagnostic, *diagnostic.Fixer) {
	type result struct {
		rule string
		diags []*diagnostic.Diagnostic
		fix *diagnostic.Fixer
	}

	rules := store.Rules()
	results := make([]result, len(rules))

	g, _ := errgroup.WithContext(context.Background())
	for i, r := range rules {
		i, r := i, r
		cfg, ok := store.configs[r.Name()]
		if !ok || !cfg.Enabled {
			continue
		}
		g.Go(func() error {
			ctx := &Ctx{FileID: fileID, Root: ctxRoot, Source: source, fix: &diagnostic.Fixer{}}
			r.CheckRoot(ctx)
			for _, n := range ctxRoot.Descendants() {
				r.CheckNode(ctx, n)
			}
			for _, ce := range ctxRoot.DescendantsWithTokens() {
				if ce.Token != nil {
					r.CheckToken(ctx, ce.Token)
				}
			}
			for _, d := range ctx.diags {
				d.Code = r.Name()
				d.Severity = cfg.Severity
			}
			results[i] = result{rule: r.Name(), diags: ctx.diags, fix: ctx.fix}
			return nil
		})
	}
	_ = g.Wait()

	var all []*diagnostic.Diagnostic
	combined := &diagnostic.Fixer{}
	for _, res := range results {
		if res.rule == "" {
			continue
		}
		filtered := res.diags[:0]
		for _, d := range res.diags {
			if scope != nil {
				line, offset := 1, 0
				if len(d.Children) > 0 {
					offset = d.Children[0].Span.Start
					line = lineOf(offset)
				}
				if scope.Suppressed(res.rule, line, offset) {
					continue
				}
			}
			filtered = append(filtered, d)
		}
		all = append(all, filtered...)
		if res.fix != nil {
			combined.Indels = append(combined.Indels, res.fix.Indels...)
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return ruleOrder(rules, all[i].Code) < ruleOrder(rules, all[j].Code)
	})
	return all, combined
}

func ruleOrder(rules []Rule, name string) int {
	for i, r := range rules {
		if r.Name() == name {
			return i
		}
	}
	return len(rules)
}
