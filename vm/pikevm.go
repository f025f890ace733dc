// Package vm simulates a Thompson-construction NFA against an input
// string using the Pike/Thompson two-frontier algorithm.
package vm

import (
	"github.com/ashgrove-dev/thompre/internal/genset"
	"github.com/ashgrove-dev/thompre/nfa"
)

// Simulator walks an *nfa.NFA one input character at a time. It owns two
// reusable frontier buffers, sized to the automaton's state count and
// preallocated once; no allocation happens inside the per-character
// step.
//
// A Simulator may run Match against the same *nfa.NFA multiple times in
// sequence — each call's generation counter advances past the last, so
// there is no cross-run interference. It must not be shared across
// goroutines running concurrently against the same automaton; give each
// goroutine its own Simulator, since the generation counters live in the
// Simulator rather than on the NFA itself.
type Simulator struct {
	n          *nfa.NFA
	current    *genset.Frontier
	next       *genset.Frontier
	matchState nfa.StateID
}

// New creates a Simulator for n, preallocating its frontiers to n's
// state count.
func New(n *nfa.NFA) *Simulator {
	return &Simulator{
		n:          n,
		current:    genset.NewFrontier(n.Len()),
		next:       genset.NewFrontier(n.Len()),
		matchState: findMatchState(n),
	}
}

func findMatchState(n *nfa.NFA) nfa.StateID {
	for id := 0; id < n.Len(); id++ {
		if n.State(nfa.StateID(id)).Kind == nfa.KindMatch {
			return nfa.StateID(id)
		}
	}
	return nfa.InvalidState
}

// Match reports whether n accepts input in full — every byte consumed,
// ending on the unique Match state. The simulator is total: it never
// errors, returning false for any input that doesn't end in Match.
func (s *Simulator) Match(input string) bool {
	s.current.Reset()
	s.addState(s.current, s.n.Start())

	for i := 0; i < len(input); i++ {
		c := input[i]
		s.next.Reset()
		for _, id := range s.current.States() {
			st := s.n.State(nfa.StateID(id))
			if st.Kind == nfa.KindLiteral && st.Ch == c {
				s.addState(s.next, st.Out)
			}
		}
		s.current, s.next = s.next, s.current
	}

	return s.current.Contains(uint32(s.matchState))
}

// addState is the epsilon-closed add primitive: if the state is null or
// already visited this generation it is a no-op;
// otherwise it's marked visited and, if it's a Split, both branches are
// added transitively (out0 before out1, so a quantifier's greedy branch
// is always explored first); any other kind is pushed onto the dense
// frontier list.
func (s *Simulator) addState(f *genset.Frontier, id nfa.StateID) {
	if id == nfa.InvalidState || f.Visited(uint32(id)) {
		return
	}
	f.MarkVisited(uint32(id))

	st := s.n.State(id)
	if st.Kind == nfa.KindSplit {
		s.addState(f, st.Out0)
		s.addState(f, st.Out1)
		return
	}
	f.Push(uint32(id))
}
