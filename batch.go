package abidecode

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BatchDecode decodes every input concurrently and returns results in the
// same order as inputs. §5 states the decoder is re-entrant and disjoint
// inputs may be decoded in parallel with no synchronization; BatchDecode
// is the concrete library entry point for that property, fanning the
// batch out across an errgroup.Group the way a caller would otherwise have
// to hand-roll.
//
// The first error from any input cancels the group context derived from
// ctx and is returned; ctx is also the caller's only cancellation lever,
// per §5's "callers that need it must enforce it externally". The context
// is checked once per input, before that input's Decode starts; a Decode
// already running is not interrupted.
func BatchDecode(ctx context.Context, inputs []string, opts ...Option) ([][]Token, error) {
	results := make([][]Token, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tokens, err := Decode(in, opts...)
			if err != nil {
				return err
			}
			results[i] = tokens
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
