package nfa

import "github.com/ashgrove-dev/thompre/compiler"

// fragment is a partially built NFA: an entry state plus every
// currently-dangling out-slot owned by states reachable from it. A
// fragment's patch list has the same lifetime as the fragment — once
// consumed by concat/union/quantifier handling or terminated by Match,
// it is merged into a successor or discarded.
type fragment struct {
	entry   StateID
	patches patchList
}

// arena accumulates states for one Build call.
type arena struct {
	states []State
}

func (a *arena) addLiteral(ch byte) StateID {
	id := StateID(len(a.states))
	a.states = append(a.states, State{Kind: KindLiteral, Ch: ch, Out: InvalidState})
	return id
}

func (a *arena) addSplit(out0, out1 StateID) StateID {
	id := StateID(len(a.states))
	a.states = append(a.states, State{Kind: KindSplit, Out0: out0, Out1: out1})
	return id
}

func (a *arena) addMatch() StateID {
	id := StateID(len(a.states))
	a.states = append(a.states, State{Kind: KindMatch})
	return id
}

// patch fills every dangling slot in patches with target.
func (a *arena) patch(patches patchList, target StateID) {
	for _, s := range patches {
		switch a.states[s.state].Kind {
		case KindLiteral:
			a.states[s.state].Out = target
		case KindSplit:
			if s.which == 0 {
				a.states[s.state].Out0 = target
			} else {
				a.states[s.state].Out1 = target
			}
		}
	}
}

// Build executes a postfix token program against a fragment stack,
// producing a fully patched NFA whose entry is returned via NFA.Start.
// Parentheses must not appear in postfix; compiler.ToPostfix never emits
// them.
func Build(postfix []compiler.Token) (*NFA, error) {
	a := &arena{states: make([]State, 0, len(postfix)*2)}
	stack := make([]fragment, 0, len(postfix))

	pop := func(i int) (fragment, error) {
		if len(stack) == 0 {
			return fragment{}, &BuildError{Index: i, Err: ErrMalformedPostfix}
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, nil
	}

	for i, tok := range postfix {
		switch tok.Kind {
		case compiler.Alphabet:
			id := a.addLiteral(tok.Ch)
			stack = append(stack, fragment{entry: id, patches: patchList{{state: id, which: 0}}})

		case compiler.Concat:
			b, err := pop(i)
			if err != nil {
				return nil, err
			}
			fst, err := pop(i)
			if err != nil {
				return nil, err
			}
			a.patch(fst.patches, b.entry)
			stack = append(stack, fragment{entry: fst.entry, patches: b.patches})

		case compiler.Union:
			b, err := pop(i)
			if err != nil {
				return nil, err
			}
			fst, err := pop(i)
			if err != nil {
				return nil, err
			}
			split := a.addSplit(fst.entry, b.entry)
			stack = append(stack, fragment{entry: split, patches: append(fst.patches, b.patches...)})

		case compiler.OneOrMore:
			f, err := pop(i)
			if err != nil {
				return nil, err
			}
			// out0 retakes the sub-fragment (greedy), out1 dangles for
			// whatever follows.
			split := a.addSplit(f.entry, InvalidState)
			a.patch(f.patches, split)
			stack = append(stack, fragment{entry: f.entry, patches: patchList{{state: split, which: 1}}})

		case compiler.Closure:
			f, err := pop(i)
			if err != nil {
				return nil, err
			}
			split := a.addSplit(f.entry, InvalidState)
			a.patch(f.patches, split)
			stack = append(stack, fragment{entry: split, patches: patchList{{state: split, which: 1}}})

		case compiler.ZeroOrOne:
			f, err := pop(i)
			if err != nil {
				return nil, err
			}
			split := a.addSplit(f.entry, InvalidState)
			stack = append(stack, fragment{
				entry:   split,
				patches: append(f.patches, slot{state: split, which: 1}),
			})

		default:
			return nil, &BuildError{Index: i, Err: ErrMalformedPostfix}
		}
	}

	if len(stack) != 1 {
		return nil, &BuildError{Index: len(postfix), Err: ErrMalformedPostfix}
	}

	final := stack[0]
	matchID := a.addMatch()
	a.patch(final.patches, matchID)

	return &NFA{states: a.states, start: final.entry}, nil
}
