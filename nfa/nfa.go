package nfa

import (
	"strconv"
	"strings"
)

// NFA is the fully patched Thompson-construction automaton produced by
// Build: every out-slot is filled, and exactly one Match state is
// reachable from Start.
//
// An NFA is immutable after construction and safe to share across
// goroutines for read-only traversal — nothing in this package ever
// mutates a State once Build returns. The simulator layer (package vm)
// keeps its own per-state generation counters in a side table rather
// than on the State itself, so multiple simulators can walk the same
// *NFA concurrently.
type NFA struct {
	states []State
	start  StateID
}

// Start returns the entry state.
func (n *NFA) Start() StateID {
	return n.start
}

// State returns the state at id.
func (n *NFA) State(id StateID) State {
	return n.states[id]
}

// Len returns the number of states in the arena, i.e. the upper bound
// any per-state side table (such as a generation-counter slice) must be
// sized to.
func (n *NFA) Len() int {
	return len(n.states)
}

// String renders a debug dump of every state, entry first. It changes no
// behavior; it exists for inspecting a compiled NFA during development.
func (n *NFA) String() string {
	var b strings.Builder
	b.WriteString("start: ")
	writeStateID(&b, n.start)
	b.WriteByte('\n')
	for id, s := range n.states {
		writeStateID(&b, StateID(id))
		b.WriteString(": ")
		b.WriteString(s.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func writeStateID(b *strings.Builder, id StateID) {
	if id == InvalidState {
		b.WriteString("<invalid>")
		return
	}
	b.WriteString(strconv.Itoa(int(id)))
}
