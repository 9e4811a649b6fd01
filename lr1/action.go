package lr1

import "github.com/dekarrin/lrlazy/grammar"

// ActionKind distinguishes the two possible parser actions.
type ActionKind int

const (
	// Shift reads one token of input and pushes the target state.
	Shift ActionKind = iota
	// Reduce applies a production, popping |body| states/values and
	// pushing the GOTO of the production's head.
	Reduce
)

// Action is the result of resolving (state, lookahead): either a Shift to a
// target state or a Reduce of a production.
type Action struct {
	Kind       ActionKind
	Target     *State          // valid when Kind == Shift
	Production grammar.Production // valid when Kind == Reduce
}

// resolvedAction wraps Action with a presence flag so the per-(state,
// lookahead) cache can distinguish "resolved to no action" (a genuine
// syntax error) from "never looked up".
type resolvedAction struct {
	action Action
	ok     bool
}

// Action resolves the action to take in state s on lookahead t, applying
// the spec's conflict-resolution policy (§4.4) and caching the result.
//
//  1. R = completed items in s whose lookahead is t.
//  2. shiftTarget = Goto(s, t).
//  3. If both exist, it's a shift/reduce conflict; if |R| >= 2, a
//     reduce/reduce conflict first picks the winning reduce candidate via
//     grammar.ResolveReduceReduce.
//  4. The winning reduce (if any) and the shift (if any) are arbitrated by
//     grammar.PreferShift.
//
// Returns (Action{}, false) if neither a reduce candidate nor a shift
// target exists — a syntax error at the driver level.
func (e *Engine) Action(s *State, t grammar.Terminal) (Action, bool) {
	ak := actionKey{state: s.id, lookahead: t.Name()}
	if cached, ok := e.actions[ak]; ok {
		return cached.action, cached.ok
	}

	act, ok := e.resolveAction(s, t)
	e.actions[ak] = resolvedAction{action: act, ok: ok}
	return act, ok
}

func (e *Engine) resolveAction(s *State, t grammar.Terminal) (Action, bool) {
	var reduceCandidates []grammar.Production
	for _, item := range s.items {
		if item.Completed() && item.Lookahead.Equal(t) {
			reduceCandidates = append(reduceCandidates, item.Production)
		}
	}

	reduceCandidates = grammar.SortByDeclarationOrder(e.grammar, reduceCandidates)

	shiftTarget, hasShift := e.Goto(s, t)

	kind, winner := grammar.ResolveConflict(e.precedence, hasShift, reduceCandidates, t)
	switch kind {
	case grammar.NoAction:
		return Action{}, false
	case grammar.ConflictShift:
		return Action{Kind: Shift, Target: shiftTarget}, true
	default:
		return Action{Kind: Reduce, Production: winner}, true
	}
}
