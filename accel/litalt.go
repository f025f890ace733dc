// Package accel recognizes the "pure literal alternation" pattern shape
// — a regex whose language is a fixed, finite set of literal strings,
// e.g. "c.a.t|c.o.g" — and accelerates full-string matching for it with
// an Aho-Corasick automaton instead of running the NFA simulator.
//
// This is the same trick github.com/coregx/ahocorasick is built for —
// matching many literal strings in one automaton walk — cut down to the
// shape that matters for full-string (not substring) matching: the
// accept/reject predicate "the input equals one of the literals" is
// exactly the predicate the NFA would compute for this pattern shape,
// so swapping in the automaton changes nothing but speed.
package accel

import "github.com/ashgrove-dev/thompre/compiler"

// DefaultMaxLiterals bounds how many literal strings Detect will
// enumerate before giving up.
const DefaultMaxLiterals = 64

// Detect walks a postfix token program and, if every operator in it is
// Concat or Union (no Closure/OneOrMore/ZeroOrOne anywhere), returns the
// finite set of literal byte strings the pattern accepts.
//
// The walk distributes Concat over Union the same way NFA language
// composition would: concatenating two fragments whose literal sets are
// A and B yields the cross product {a+b : a in A, b in B}; union just
// appends. maxLiterals bounds that cross product so a pathological
// pattern like (a|b).(c|d).(e|f)... can't blow up memory — Detect simply
// declines (ok=false) past the limit, falling back to NFA simulation.
func Detect(postfix []compiler.Token, maxLiterals int) (literals [][]byte, ok bool) {
	var stack [][][]byte

	for _, tok := range postfix {
		switch tok.Kind {
		case compiler.Alphabet:
			stack = append(stack, [][]byte{{tok.Ch}})

		case compiler.Concat:
			if len(stack) < 2 {
				return nil, false
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			if len(a)*len(b) > maxLiterals {
				return nil, false
			}
			combined := make([][]byte, 0, len(a)*len(b))
			for _, sa := range a {
				for _, sb := range b {
					joined := make([]byte, 0, len(sa)+len(sb))
					joined = append(joined, sa...)
					joined = append(joined, sb...)
					combined = append(combined, joined)
				}
			}
			stack = append(stack, combined)

		case compiler.Union:
			if len(stack) < 2 {
				return nil, false
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			if len(a)+len(b) > maxLiterals {
				return nil, false
			}
			combined := make([][]byte, 0, len(a)+len(b))
			combined = append(combined, a...)
			combined = append(combined, b...)
			stack = append(stack, combined)

		default:
			// Closure, OneOrMore: the language is no longer a finite
			// literal set. ZeroOrOne is declined as well.
			return nil, false
		}
	}

	if len(stack) != 1 {
		return nil, false
	}
	return stack[0], true
}
