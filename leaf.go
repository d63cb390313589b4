package abidecode

import (
	"encoding/hex"
	"math/big"
	"strings"
)

// LeafTokenizer turns a single 32-byte word into a leaf Token. It is the
// external collaborator §4.4 calls out as irrecoverable without a schema;
// the decoder core only ever calls it on single words, never on composite
// regions.
//
// Port the default heuristic verbatim and expose this as a hook, per
// Design Notes §9, so a downstream project can plug in a smarter
// classifier (for instance one informed by a 4-byte-selector database).
type LeafTokenizer interface {
	TokenizeWord(w [32]byte) Token
}

type defaultLeafTokenizer struct{}

// DefaultLeafTokenizer is the heuristic described in §4.4:
//  1. If the word has no leading zero nibbles, it is a left-aligned
//     (right-padded) fixed-bytes scalar: trim trailing zero nibbles,
//     restore one trailing zero nibble if that leaves an odd nibble count,
//     and return FixedBytes of the resulting byte length.
//  2. Otherwise, if the zero-stripped word tokenizes as a 20-byte address,
//     return that.
//  3. Otherwise return a 256-bit unsigned integer.
var DefaultLeafTokenizer LeafTokenizer = defaultLeafTokenizer{}

func (defaultLeafTokenizer) TokenizeWord(w [32]byte) Token {
	return tokenizeArgument(hex.EncodeToString(w[:]))
}

func tokenizeArgument(argument string) Token {
	trimmedLeading := strings.TrimLeft(argument, "0")

	if len(trimmedLeading) == len(argument) {
		rightTrimmed := strings.TrimRight(argument, "0")
		if len(rightTrimmed)%2 == 1 {
			rightTrimmed += "0"
		}
		b, err := hex.DecodeString(rightTrimmed)
		if err != nil {
			panic("abidecode: leaf tokenizer could not decode fixed-bytes nibbles: " + err.Error())
		}
		return FixedBytes{Value: b}
	}

	if len(trimmedLeading) > 0 && len(trimmedLeading) <= 40 {
		padded := strings.Repeat("0", 40-len(trimmedLeading)) + trimmedLeading
		addrBytes, err := hex.DecodeString(padded)
		if err == nil {
			var addr [20]byte
			copy(addr[:], addrBytes)
			return Address{Value: addr}
		}
	}

	v := new(big.Int)
	if _, ok := v.SetString(argument, 16); !ok {
		panic("abidecode: leaf tokenizer could not parse word as uint256: " + argument)
	}
	return Uint{Value: v}
}
