// Package config resolves the handful of operator-tunable knobs abidecode
// exposes as environment variables, so a host deploying against unusually
// large calldata (Seaport-style router calls are the recorded motivating
// case, see SPEC_FULL.md §10.3) can raise the step budget without a code
// change.
package config

import "github.com/xyproto/env/v2"

const (
	envStepBudget = "ABIDECODE_STEP_BUDGET"
	envLogDebug   = "ABIDECODE_DEBUG_LOG"

	// DefaultStepBudget is the fallback bounded-work guard size used when
	// ABIDECODE_STEP_BUDGET is unset or invalid. It is generous enough for
	// realistic nested calldata while still bounding pathological
	// backtracking storms in finite time, per §5 and Design Notes §9.
	DefaultStepBudget = 200_000
)

// StepBudget returns the configured bounded-work guard size.
func StepBudget() int {
	return env.Int(envStepBudget, DefaultStepBudget)
}

// DebugLog reports whether debug-level logging (a line per successful
// decode in addition to failures) was requested.
// env.Bool treats an unset or unparsable variable as false, which already
// matches the desired default, so no fallback argument is needed.
func DebugLog() bool {
	return env.Bool(envLogDebug)
}
