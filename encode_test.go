package abidecode

import (
	"math/big"
	"strings"
)

// No ABI encoder is among this module's dependencies, so round-trip
// tests need a hand-written encoder test helper to turn a Token tree back
// into calldata. This file implements the conventional Solidity ABI
// head/tail tuple encoding directly; it is test-only scaffolding, not part
// of the decoder itself.

func encodeTopLevel(tokens []Token) string {
	words := encodeArgs(tokens)
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(w.hexString())
	}
	return sb.String()
}

func isDynamicToken(t Token) bool {
	switch t.(type) {
	case Bytes, Array, Tuple:
		return true
	default:
		return false
	}
}

func isStaticLeaf(t Token) bool {
	switch t.(type) {
	case Uint, Address, FixedBytes, Bool, Int:
		return true
	default:
		return false
	}
}

func isStaticTupleRow(t Token) bool {
	tup, ok := t.(Tuple)
	if !ok {
		return false
	}
	for _, e := range tup.Elements {
		if !isStaticLeaf(e) {
			return false
		}
	}
	return true
}

// encodeArgs encodes a flat argument list (TopLevel args, or the body of a
// DynamicOffset-reached Tuple): each entry occupies exactly one head word,
// either an inline static scalar or an offset into the trailing tail.
func encodeArgs(tokens []Token) []word {
	heads := make([]word, len(tokens))
	bodies := make([][]word, len(tokens))
	for i, t := range tokens {
		if isDynamicToken(t) {
			bodies[i] = encodeDynamicValue(t)
		}
	}
	var tail []word
	cursor := len(tokens)
	for i, t := range tokens {
		if isDynamicToken(t) {
			heads[i] = wordFromInt(cursor * wordSize)
			tail = append(tail, bodies[i]...)
			cursor += len(bodies[i])
		} else {
			heads[i] = encodeStaticWord(t)
		}
	}
	return append(heads, tail...)
}

// encodeDynamicValue returns the tail content for a Bytes, Array, or Tuple
// value: exactly what a DynamicOffset's pointee window holds, with no
// further indirection layer.
func encodeDynamicValue(t Token) []word {
	switch v := t.(type) {
	case Bytes:
		return encodeBytesBody(v.Value)
	case Array:
		return encodeArrayBody(v.Elements)
	case Tuple:
		return encodeArgs(v.Elements)
	default:
		panic("encodeDynamicValue: not a dynamic token")
	}
}

func encodeBytesBody(data []byte) []word {
	words := []word{wordFromInt(len(data))}
	padded := make([]byte, ((len(data)+wordSize-1)/wordSize)*wordSize)
	copy(padded, data)
	for i := 0; i < len(padded); i += wordSize {
		var w word
		copy(w[:], padded[i:i+wordSize])
		words = append(words, w)
	}
	return words
}

// encodeArrayBody chooses the inline shape (static leaves, static tuple
// rows) or the offset-table shape (dynamic elements) based on the
// elements actually given — a test-fixture-construction decision, not a
// decoder concern, since the Token type itself does not distinguish a
// pointer-reached Tuple from a flat array-row Tuple.
func encodeArrayBody(elements []Token) []word {
	if len(elements) == 0 {
		return []word{wordFromInt(0)}
	}
	if isStaticTupleRow(elements[0]) {
		body := []word{wordFromInt(len(elements))}
		for _, e := range elements {
			for _, sub := range e.(Tuple).Elements {
				body = append(body, encodeStaticWord(sub))
			}
		}
		return body
	}
	if isStaticLeaf(elements[0]) {
		body := []word{wordFromInt(len(elements))}
		for _, e := range elements {
			body = append(body, encodeStaticWord(e))
		}
		return body
	}

	n := len(elements)
	bodies := make([][]word, n)
	for i, e := range elements {
		bodies[i] = encodeDynamicValue(e)
	}
	result := []word{wordFromInt(n)}
	offsets := make([]word, n)
	var tail []word
	cursor := n
	for i, b := range bodies {
		offsets[i] = wordFromInt(cursor * wordSize)
		tail = append(tail, b...)
		cursor += len(b)
	}
	result = append(result, offsets...)
	result = append(result, tail...)
	return result
}

func encodeStaticWord(t Token) word {
	switch v := t.(type) {
	case Uint:
		return wordFromBigInt(v.Value)
	case Int:
		return wordFromBigInt(v.Value)
	case Address:
		var w word
		copy(w[32-len(v.Value):], v.Value[:])
		return w
	case FixedBytes:
		var w word
		copy(w[:], v.Value)
		return w
	case Bool:
		var w word
		if v.Value {
			w[wordSize-1] = 1
		}
		return w
	default:
		panic("encodeStaticWord: not a static token")
	}
}

func wordFromBigInt(v *big.Int) word {
	var w word
	b := v.Bytes()
	copy(w[wordSize-len(b):], b)
	return w
}

func wordFromInt(n int) word {
	return wordFromBigInt(big.NewInt(int64(n)))
}

// bigFixture builds a uint256 value deliberately far outside the
// leaf-tokenizer's address/fixed-bytes ambiguity zone (more than 20
// significant bytes), so it round-trips unambiguously as Uint. See
// leaf.go and SPEC_FULL.md §8's ambiguity warning.
func bigFixture(tag int64) *big.Int {
	return new(big.Int).Lsh(big.NewInt(tag+1), 200)
}

func addressFixture(b byte) [20]byte {
	var a [20]byte
	for i := range a {
		a[i] = b + byte(i)
	}
	if a[0] == 0 {
		a[0] = 1
	}
	return a
}

func fixedBytesFixture(n int, b byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b + byte(i)
	}
	if out[0] == 0 {
		out[0] = 1
	}
	if out[n-1] == 0 {
		out[n-1] = 1
	}
	return out
}
