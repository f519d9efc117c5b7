package local

import (
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/fixsolve/fixsolve/arena"
	"github.com/fixsolve/fixsolve/formula"
	"github.com/fixsolve/fixsolve/moves"
	"github.com/fixsolve/fixsolve/profile"
	"github.com/fixsolve/fixsolve/valuation"
)

// Solve decides whether variable v evaluates to true at basis element b
// under sys, building and exploring only as much of the parity game as
// is needed to reach a verdict. A formula that composes to FALSE short
// circuits before any arena is built, per spec.md §7.
func Solve(b formula.BasisID, v formula.VarID, sys arena.System) bool {
	if sys.Get(b, v).IsFalse() {
		return false
	}

	s := NewSession(moves.P0Pos{B: b, V: v}, sys)
	return s.Solve()
}

// Session runs one Solve query incrementally, keeping the explored
// arena, strategy and play profiles around so Profile can answer the
// test hook spec.md §6 requires, and so callers can register auxiliary
// resources (an open render/export writer, say) to be released together
// when the session is done.
type Session struct {
	a             *arena.Arena
	strategy      *arena.GameStrategy
	profiles      []profile.PlayProfile
	finalStrategy []profile.NodeID

	closers []io.Closer
}

// NewSession builds a session for one query, primed with the dummy
// initial strategy/profile values every fresh arena starts from.
func NewSession(init moves.P0Pos, sys arena.System) *Session {
	a := arena.New(init, sys)
	strategy := arena.NewGameStrategy()
	strategy.TryAdd(arena.InitP0, arena.W1Sink())

	s := &Session{
		a:        a,
		strategy: strategy,
	}
	s.profiles, s.finalStrategy = initialPlayProfiles(), initialFinalStrategy()
	return s
}

// initialPlayProfiles seeds the five nodes every fresh arena starts
// with (W0, L0, W1, L1, and the initial Player 0 position) with the
// profile that a trivial, not-yet-explored game has.
func initialPlayProfiles() []profile.PlayProfile {
	return []profile.PlayProfile{
		{MostRelevant: arena.L1, CountBefore: 1},
		{MostRelevant: arena.W1, CountBefore: 1},
		{MostRelevant: arena.W1, CountBefore: 0},
		{MostRelevant: arena.L1, CountBefore: 0},
		{MostRelevant: arena.W1, CountBefore: 1},
	}
}

func initialFinalStrategy() []profile.NodeID {
	return []profile.NodeID{arena.L1, arena.W1, arena.L0, arena.W0, arena.W1}
}

// Solve runs the expand/valuate/improve/escape loop to completion,
// returning whether the initial position is won for Player 0.
func (s *Session) Solve() bool {
	exploreGoal := 1

	for {
		solved := Expand(s.a, &s.profiles, &s.finalStrategy, s.strategy, exploreGoal)
		exploreGoal *= 2

		if solved {
			UpdateWinningSets(s.a, s.profiles, s.finalStrategy, s.strategy)
			if w, ok := s.decided(); ok {
				return w
			}
		}

		for {
			s.profiles, s.finalStrategy = valuation.Valuate(s.a, s.strategy)
			if !valuation.Improve(s.a, s.strategy, s.profiles) {
				break
			}
		}

		UpdateWinningSets(s.a, s.profiles, s.finalStrategy, s.strategy)
		if w, ok := s.decided(); ok {
			return w
		}
	}
}

func (s *Session) decided() (won bool, ok bool) {
	switch s.a.P0Win(arena.InitP0) {
	case arena.Win0:
		return true, true
	case arena.Win1:
		return false, true
	default:
		return false, false
	}
}

// Arena exposes the explored arena, for callers that want to render or
// inspect it after Solve returns.
func (s *Session) Arena() *arena.Arena { return s.a }

// Strategy exposes the current Player 0 strategy, for callers that want
// to render or inspect it after Solve returns.
func (s *Session) Strategy() *arena.GameStrategy { return s.strategy }

// Profile exposes the final play profile of a decided or explored node,
// satisfying spec.md §6's test hook.
func (s *Session) Profile(n profile.NodeID) (profile.PlayProfile, bool) {
	if int(n) < 0 || int(n) >= len(s.profiles) {
		return profile.PlayProfile{}, false
	}
	return s.profiles[n], true
}

// AddCloser registers an auxiliary resource (an open render/export
// writer, say) to be released when Close is called.
func (s *Session) AddCloser(c io.Closer) {
	s.closers = append(s.closers, c)
}

// Close releases every resource registered via AddCloser, collecting
// every failure instead of stopping at the first.
func (s *Session) Close() error {
	var result *multierror.Error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
