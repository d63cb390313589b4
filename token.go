package abidecode

import "math/big"

// Token is the decoded output variant: a leaf produced by a LeafTokenizer,
// or one of the two composites the structural decoder itself assembles.
//
// The set is closed; callers type-switch over the concrete kinds below.
// Modeled on the tagged-interface AST node pattern (an unexported marker
// method), rather than a single struct with a kind enum,
// since leaves and composites carry genuinely different payloads and
// call sites nearly always want one specific shape.
type Token interface {
	isToken()
}

// Uint is an unsigned integer leaf, the decoder's default numeric guess.
type Uint struct{ Value *big.Int }

// Int is a signed integer leaf. The default LeafTokenizer never produces
// this — signedness cannot be recovered without a schema — but it is part
// of the output vocabulary for custom LeafTokenizer implementations.
type Int struct{ Value *big.Int }

// Address is a 20-byte account address leaf.
type Address struct{ Value [20]byte }

// FixedBytes is a right-padded fixed-size byte scalar leaf.
type FixedBytes struct{ Value []byte }

// Bool is a boolean leaf. Like Int, the default tokenizer never emits one.
type Bool struct{ Value bool }

// Bytes is a length-prefixed dynamic byte string.
type Bytes struct{ Value []byte }

// Tuple is a fixed-arity, possibly heterogeneous sequence of tokens.
type Tuple struct{ Elements []Token }

// Array is a variable- or fixed-length homogeneous sequence of tokens.
type Array struct{ Elements []Token }

func (Uint) isToken()       {}
func (Int) isToken()        {}
func (Address) isToken()    {}
func (FixedBytes) isToken() {}
func (Bool) isToken()       {}
func (Bytes) isToken()      {}
func (Tuple) isToken()      {}
func (Array) isToken()      {}

// containsDynamicType reports whether a token is, or transitively contains,
// an array, a dynamic byte string, or (recursively) a tuple holding one —
// the definition of "dynamic type" in the GLOSSARY, used to validate that a
// Tuple realized under a DynamicOffset actually earns its pointer cell.
func containsDynamicType(t Token) bool {
	switch v := t.(type) {
	case Tuple:
		for _, e := range v.Elements {
			if containsDynamicType(e) {
				return true
			}
		}
		return false
	case Array:
		return true
	case Bytes:
		return true
	default:
		return false
	}
}

// collapseSingleElementTuples recursively replaces any Tuple with exactly
// one element by that element, transparently traversing through Arrays and
// multi-element Tuples. Per §4.3 this is applied only at the TopLevel
// boundary — callers must not invoke it on nested results directly.
func collapseSingleElementTuples(t Token) Token {
	switch v := t.(type) {
	case Tuple:
		if len(v.Elements) == 1 {
			return collapseSingleElementTuples(v.Elements[0])
		}
		out := make([]Token, len(v.Elements))
		for i, e := range v.Elements {
			out[i] = collapseSingleElementTuples(e)
		}
		return Tuple{Elements: out}
	case Array:
		if v.Elements == nil {
			return v
		}
		out := make([]Token, len(v.Elements))
		for i, e := range v.Elements {
			out[i] = collapseSingleElementTuples(e)
		}
		return Array{Elements: out}
	default:
		return t
	}
}
