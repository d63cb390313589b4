package abidecode

import (
	"github.com/wordgrid/abidecode/internal/config"
)

// Option configures a single Decode call. Modeled on buf.build/go/hyperpb's
// functional-option pattern (UnmarshalOption): a named type wrapping a
// closure over the mutable state, rather than a public options struct, so
// new knobs can be added without breaking callers.
type Option func(*options)

type options struct {
	tokenizer  LeafTokenizer
	stepBudget int
}

func defaultOptions() options {
	return options{
		tokenizer:  DefaultLeafTokenizer,
		stepBudget: config.StepBudget(),
	}
}

// WithLeafTokenizer overrides the default fixed-bytes/address/uint256
// heuristic described in §4.4 with a caller-supplied classifier — the hook
// Design Notes §9 calls for, e.g. to plug in a 4-byte-selector-informed
// classifier.
func WithLeafTokenizer(t LeafTokenizer) Option {
	return func(o *options) { o.tokenizer = t }
}

// WithStepBudget overrides the bounded-work guard's size for a single
// call. The default is config.StepBudget (itself overridable via the
// ABIDECODE_STEP_BUDGET environment variable).
func WithStepBudget(steps int) Option {
	return func(o *options) { o.stepBudget = steps }
}

// Decode reconstructs a tree of Tokens from hex-encoded calldata with the
// leading 4-byte function selector already stripped, per §6.
//
// Empty input decodes to an empty, nil-error slice. A TopLevel region that
// fails to find any internally consistent structural interpretation, or
// that exhausts its step budget first, returns a *DecodeError matching
// ErrUndecidable or ErrBudgetExhausted respectively via errors.Is.
// Malformed hex input (not a multiple of 64 characters after padding, or a
// word that will not parse) is a caller bug and panics, per §7.1.
func Decode(hexPayload string, opts ...Option) ([]Token, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	words, err := preprocess(hexPayload)
	if err != nil {
		panic(err)
	}
	if len(words) == 0 {
		return nil, nil
	}

	sessionID := newSessionID()
	b := newBudget(o.stepBudget)
	state := &decodeState{tokenizer: o.tokenizer, budget: b, memo: newMemo()}

	tokens, ok := state.materializeTopLevel(words)
	if !ok {
		if b.remaining <= 0 {
			logger.Warn("abidecode: decode failed, budget exhausted", "session", sessionID, "words", len(words))
			return nil, ErrBudgetExhausted
		}
		logger.Warn("abidecode: decode failed, no consistent interpretation", "session", sessionID, "words", len(words))
		return nil, ErrUndecidable
	}
	logger.Debug("abidecode: decode succeeded", "session", sessionID, "words", len(words), "tokens", len(tokens))
	return tokens, nil
}
