package accel

import "github.com/coregx/ahocorasick"

// Matcher answers full-string membership queries against a fixed set of
// literal strings.
type Matcher struct {
	auto     *ahocorasick.Automaton
	literals map[string]struct{}
}

// Build compiles literals into a Matcher. It returns an error only if
// the underlying automaton construction fails (e.g. a degenerate empty
// pattern set); Detect never returns literals that would fail here.
func Build(literals [][]byte) (*Matcher, error) {
	b := ahocorasick.NewBuilder()
	set := make(map[string]struct{}, len(literals))
	for _, lit := range literals {
		b.AddPattern(lit)
		set[string(lit)] = struct{}{}
	}
	auto, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &Matcher{auto: auto, literals: set}, nil
}

// Match reports whether input equals one of the Matcher's literals in
// full, not merely contains one as a substring.
//
// The automaton only answers substring queries, and its first hit isn't
// necessarily the one spanning the whole input — a shorter literal can
// match as a prefix of input before the one equal to input in full (e.g.
// literals {do, dog} against "dog"). So Match can't trust Find's
// tie-breaking for the accept/reject predicate; it uses IsMatch only as
// a cheap reject filter (if no literal occurs anywhere in input, none
// can equal it) and confirms the positive case with an exact lookup in
// the literal set, which is immune to partial-match ambiguity.
func (m *Matcher) Match(input string) bool {
	if !m.auto.IsMatch([]byte(input)) {
		return false
	}
	_, ok := m.literals[input]
	return ok
}
