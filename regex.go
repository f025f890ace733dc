// Package thompre is a small, from-scratch regular expression engine: a
// shunting-yard infix-to-postfix compiler, a Thompson-construction NFA
// builder, and a Pike/Thompson two-frontier NFA simulator.
//
// Syntax is deliberately minimal: literal letters [a-zA-Z], explicit
// concatenation '.', alternation '|', and the quantifiers '?' '+' '*',
// grouped with parentheses. Concatenation is never inferred — "ab" is
// not a valid pattern, "a.b" is. There are no character classes,
// anchors, capture groups, or Unicode handling.
//
// Matching is whole-string only: Match reports whether a pattern
// accounts for the entire input, not whether it finds a match somewhere
// within it. There is no Find, no submatch extraction, and no leftmost-
// longest disambiguation, because full-string matching never needs to
// choose among overlapping candidate matches.
//
// Basic usage:
//
//	re, err := thompre.Compile("a.(a|b)*.b")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.Match("abab") // true
//	re.Match("ac")   // false
package thompre

import (
	"sync"

	"github.com/ashgrove-dev/thompre/accel"
	"github.com/ashgrove-dev/thompre/compiler"
	"github.com/ashgrove-dev/thompre/nfa"
	"github.com/ashgrove-dev/thompre/vm"
)

const defaultMaxAccelLiterals = accel.DefaultMaxLiterals

// Regex is a compiled pattern, ready to match.
//
// A Regex is safe to use concurrently from multiple goroutines: Match
// pulls a scratch *vm.Simulator from an internal pool rather than
// mutating any shared state on the Regex itself.
type Regex struct {
	pattern string
	n       *nfa.NFA
	fast    *accel.Matcher // nil unless the pattern is a pure literal alternation

	sims sync.Pool
}

// Compile compiles pattern with DefaultConfig. It returns a *CompileError
// if the pattern fails tokenization, postfix conversion, or NFA
// construction.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it fails. Intended for
// patterns known to be valid at compile time, e.g. package-level
// variables.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// CompileWithConfig compiles pattern under a caller-supplied Config,
// e.g. to disable the literal accelerator or change its ceiling.
func CompileWithConfig(pattern string, cfg Config) (*Regex, error) {
	postfix, err := compiler.Compile(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	n, err := nfa.Build(postfix)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	re := &Regex{pattern: pattern, n: n}
	re.sims.New = func() any { return vm.New(re.n) }

	if !cfg.DisableLiteralAccel {
		maxLits := cfg.MaxAccelLiterals
		if maxLits <= 0 {
			maxLits = defaultMaxAccelLiterals
		}
		if lits, ok := accel.Detect(postfix, maxLits); ok {
			if m, err := accel.Build(lits); err == nil {
				re.fast = m
			}
		}
	}

	return re, nil
}

// String returns the pattern the Regex was compiled from.
func (r *Regex) String() string {
	return r.pattern
}

// Match reports whether s is accepted by the pattern in its entirety.
func (r *Regex) Match(s string) bool {
	if r.fast != nil {
		return r.fast.Match(s)
	}

	sim := r.sims.Get().(*vm.Simulator)
	defer r.sims.Put(sim)
	return sim.Match(s)
}

// MatchString is an alias for Match, named to mirror stdlib regexp's
// method of the same name for callers migrating between the two.
func (r *Regex) MatchString(s string) bool {
	return r.Match(s)
}

// NewMatcher returns a *vm.Simulator dedicated to this Regex's NFA, for
// callers doing many sequential matches who want to skip the pool
// round-trip Match pays on every call. The returned Simulator must not
// be shared across goroutines.
func (r *Regex) NewMatcher() *vm.Simulator {
	return vm.New(r.n)
}
