package oracle

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/eloworld/strategies/internal/helpers"
)

// Eval is a relative evaluation in centipawns, from the perspective of the
// side to move in the position that was scored. Forced mates live in a
// sentinel band just inside ±Inf so they compare correctly against any
// centipawn score.
type Eval int

const Inf = 999999

const mateBand = 1000

func MateIn(plies int) Eval {
	return Eval(Inf - plies)
}

func MatedIn(plies int) Eval {
	return Eval(-Inf + plies)
}

func (e Eval) IsMate() bool {
	return e > Inf-mateBand || e < -Inf+mateBand
}

func (e Eval) Abs() Eval {
	if e < 0 {
		return -e
	}
	return e
}

func (e Eval) String() string {
	if e > Inf-mateBand {
		return fmt.Sprintf("mate+%v", Inf-int(e))
	}
	if e < -Inf+mateBand {
		return fmt.Sprintf("mate-%v", int(e)+Inf)
	}
	return strconv.Itoa(int(e))
}

// MoveAndScoreFromInfoLine pulls the pv move and score out of a UCI info
// line like
//
//	info depth 12 seldepth 16 multipv 1 score cp 133 nodes 46884 ... pv b7e4 d3e4
//	info depth 31 seldepth 2 multipv 1 score mate -1 nodes 670 ... pv a4e8
func MoveAndScoreFromInfoLine(line string) (Optional[string], Optional[Eval], Error) {
	if !strings.HasPrefix(line, "info ") {
		return Empty[string](), Empty[Eval](), Errorf("not an info line: '%v'", line)
	}

	move := Empty[string]()
	score := Empty[Eval]()

	fields := strings.Fields(line)
	for i := 0; i < len(fields)-1; i++ {
		switch fields[i] {
		case "pv":
			move = Some(fields[i+1])
		case "score":
			if i+2 >= len(fields) {
				return move, score, Errorf("truncated score in '%v'", line)
			}
			n, err := strconv.Atoi(fields[i+2])
			if !IsNil(err) {
				return move, score, Errorf("bad score in '%v': %w", line, err)
			}
			switch fields[i+1] {
			case "cp":
				score = Some(Eval(n))
			case "mate":
				// "mate 0" means the side to move is already mated
				if n > 0 {
					score = Some(MateIn(n))
				} else {
					score = Some(MatedIn(-n))
				}
			default:
				return move, score, Errorf("unknown score kind '%v' in '%v'", fields[i+1], line)
			}
		}
	}

	return move, score, NilError
}
