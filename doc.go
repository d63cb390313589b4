// Package abidecode reconstructs a structured argument list from opaque
// contract-ABI calldata, without access to the function signature or type
// schema, by backtracking over structural hypotheses until it finds one
// that is internally consistent.
//
// # Overview
//
// Given a hex-encoded calldata payload with its 4-byte function selector
// already stripped, Decode emits a tree of typed Tokens (integers,
// addresses, fixed bytes, dynamic byte strings, tuples, and arrays) that,
// re-encoded, reproduces the input. It never sees a type signature: the
// shape of the data is recovered purely from the layout invariants the ABI
// encoding itself guarantees (offsets are multiples of 32, pointer targets
// are monotonically increasing, a length-prefixed region consumes exactly
// the words its length implies).
//
// # When to Use abidecode
//
// abidecode is for exactly one situation: you have raw calldata bytes and
// no ABI for the function that produced them (an unverified contract, a
// 4-byte selector with no match in a signature database, or forensic
// analysis of a transaction whose source is unavailable). If you have the
// ABI, use a conventional encoder/decoder instead — it will be faster and
// its answer is guaranteed correct rather than "one internally consistent
// interpretation."
//
// # When NOT to Use abidecode
//
// abidecode is not suitable for:
//   - Calldata whose schema you already know (decode directly instead)
//   - Recovering type *names* — only structure and a best-guess leaf
//     category are recoverable without a schema
//   - Inputs with trailing bytes appended after the true argument region;
//     these decode to some valid tree, not necessarily the original one
//
// # Basic Usage
//
//	tokens, err := abidecode.Decode(calldataHex)
//	if err != nil {
//	    var de *abidecode.DecodeError
//	    if errors.Is(err, abidecode.ErrBudgetExhausted) {
//	        // input needed more backtracking steps than the configured budget
//	    }
//	    return err
//	}
//	for _, t := range tokens {
//	    switch v := t.(type) {
//	    case abidecode.Address:
//	        fmt.Printf("address %x\n", v.Value)
//	    case abidecode.Array:
//	        fmt.Printf("array of %d elements\n", len(v.Elements))
//	    }
//	}
//
// Multiple independent payloads can be decoded concurrently with
// BatchDecode, which fans them out across a worker per input and returns
// the first error encountered.
//
// # Performance Characteristics
//
// Decoding is CPU-bound and single-threaded per call; there are no
// suspension points inside the core. Most real-world calldata resolves in
// a handful of synthesis attempts. Adversarial or deeply ambiguous input
// can force many backtracking retries — WithStepBudget (or the
// ABIDECODE_STEP_BUDGET environment variable) bounds that work
// deterministically rather than letting a pathological input run forever.
package abidecode
