package strategy

import (
	"time"

	. "github.com/eloworld/strategies/internal/helpers"
)

// TimeControl is the clock reading handed to ChooseMove. Normally it is
// the mover's remaining time plus increment; on the first move of a game
// the caller may instead send a fixed per-move limit, which never shrinks
// the per-candidate budget.
type TimeControl struct {
	Remaining time.Duration
	Increment time.Duration

	MoveTime Optional[time.Duration]
}

func ClockTimeControl(remaining time.Duration, increment time.Duration) TimeControl {
	return TimeControl{Remaining: remaining, Increment: increment}
}

func FixedTimeControl(moveTime time.Duration) TimeControl {
	return TimeControl{MoveTime: Some(moveTime)}
}

func (tc TimeControl) IsFixed() bool {
	return tc.MoveTime.HasValue()
}

const DefaultSearchTime = 100 * time.Millisecond

const searchTimeMargin = 10 * time.Millisecond

const minSearchTime = time.Millisecond

// PerCandidateTime converts a clock reading into the time each candidate
// move gets at the oracle. Evaluating every candidate at the base time
// must not eat more than a tenth of the remaining clock; past that the
// per-candidate time shrinks to fit. candidates must be at least 1.
func PerCandidateTime(tc TimeControl, candidates int) time.Duration {
	searchTime := DefaultSearchTime

	if !tc.IsFixed() {
		budget := tc.Remaining / 10
		if time.Duration(candidates)*searchTime > budget {
			searchTime = budget / time.Duration(candidates)
		}
	}

	if searchTime < minSearchTime {
		searchTime = minSearchTime
	}
	return searchTime
}

// OracleDeadline shaves a fixed margin off a per-candidate time to cover
// the round trip to the oracle process, clamped to stay positive.
func OracleDeadline(perCandidate time.Duration) time.Duration {
	deadline := perCandidate - searchTimeMargin
	if deadline < minSearchTime {
		deadline = minSearchTime
	}
	return deadline
}
