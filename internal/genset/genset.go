// Package genset provides the generation-stamped frontier the simulator
// uses for O(1) state-list membership testing, in place of a per-step
// bitset or hash set.
//
// A Frontier holds a dense list of the states currently active plus a
// side table mapping each state id to the generation it was last visited
// under. The side table is deliberately a plain slice keyed by
// nfa.StateID rather than a field on nfa.State itself — that decoupling
// lets multiple Frontiers walk the same immutable *nfa.NFA without a
// data race on a shared per-state counter.
package genset

// Frontier tracks which states have been visited during one step of NFA
// simulation, deduplicated via a generation counter, and separately
// holds the dense list of states the simulator should actually test
// transitions from (Literal and Match states — Split states are
// transparently expanded and never themselves pushed).
type Frontier struct {
	lastSeen []uint64 // indexed by state id; stamped with the generation it was last visited
	dense    []uint32 // Literal/Match states pushed this generation, insertion order
	gen      uint64   // current generation; advances on every Reset
}

// NewFrontier creates a Frontier sized for an automaton with n states.
func NewFrontier(n int) *Frontier {
	return &Frontier{
		lastSeen: make([]uint64, n),
		dense:    make([]uint32, 0, n),
	}
}

// Reset advances the generation counter and empties the dense list in
// O(1) — every previously stamped entry is implicitly stale because it
// can never again equal the new generation, except across a 64-bit
// wraparound. A uint64 generation counter doesn't wrap around within the
// lifetime of any real process, but Reset still guards the boundary case
// explicitly so the invariant is checkable rather than merely assumed.
func (f *Frontier) Reset() {
	if f.gen == ^uint64(0) {
		for i := range f.lastSeen {
			f.lastSeen[i] = 0
		}
		f.gen = 0
	}
	f.gen++
	f.dense = f.dense[:0]
}

// Visited reports whether state has already been stamped for the
// current generation.
func (f *Frontier) Visited(state uint32) bool {
	return f.lastSeen[state] == f.gen
}

// MarkVisited stamps state with the current generation.
func (f *Frontier) MarkVisited(state uint32) {
	f.lastSeen[state] = f.gen
}

// Push appends state to the dense list. Callers are expected to have
// already called MarkVisited; Push does not check or set the stamp
// itself, since split-expansion states are marked visited but never
// pushed.
func (f *Frontier) Push(state uint32) {
	f.dense = append(f.dense, state)
}

// Contains reports whether state is part of the active frontier this
// generation — equivalent to Visited, exposed under the name callers
// checking for acceptance read more naturally.
func (f *Frontier) Contains(state uint32) bool {
	return f.Visited(state)
}

// States returns the dense list of active Literal/Match states, in the
// order they were pushed. The returned slice aliases Frontier's storage
// and is only valid until the next Reset.
func (f *Frontier) States() []uint32 {
	return f.dense
}

// Len returns the number of active states in the dense list.
func (f *Frontier) Len() int {
	return len(f.dense)
}
