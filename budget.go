package abidecode

import "github.com/wordgrid/abidecode/internal/config"

// budget is the bounded-work guard §5 and Design Notes §9 require:
// backtracking can in principle explore exponentially many marker layouts
// on adversarial input (the source is known to diverge on some real-world
// Seaport-style calldata), so every synthesize/materialize/retry cycle
// spends one unit and the whole decode fails deterministically once it
// runs out rather than running forever.
type budget struct {
	remaining int
}

func newBudget(steps int) *budget {
	if steps <= 0 {
		steps = config.DefaultStepBudget
	}
	return &budget{remaining: steps}
}

// spend reports whether a unit of budget was available and consumes it.
func (b *budget) spend() bool {
	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}
