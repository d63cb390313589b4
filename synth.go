package abidecode

import (
	"math"
	"math/big"
	"strings"
)

// noBound stands in for "no pointer target observed yet" (first_tuple's
// initial ∞). Kept far below the true max int so arithmetic like noBound-1
// never wraps.
const noBound = math.MaxInt / 2

// synthCtx threads the three running cursors synthesis needs across a
// window: the first pointer target seen (the head-section ceiling), the
// most recently placed pointer's target (for monotonicity), and the index
// of that pointer's marker within the window's marker list (so its region
// can be retroactively narrowed once the next pointer is placed). It lives
// as a local of synthesizeWindow; the speculative bytes and array trials
// receive only firstTuple, by value, and keep their own cursors.
type synthCtx struct {
	firstTuple    int
	recentOffset  int
	recentMarker  int // index into the markers slice, -1 if none placed yet
}

func newSynthCtx() synthCtx {
	return synthCtx{firstTuple: noBound, recentOffset: 0, recentMarker: -1}
}

// synthesize produces the marker list covering a window, per §4.2.
//
// When parent is a DynamicArray, synthesis does not reclassify: it simply
// emits one DynamicOffset per already-known element location (the special
// case in §4.2's last paragraph).
func synthesize(parent marker, disallowed disallowedSet, window []word, inPointerBody bool) []marker {
	if parent.kind == markerDynamicArray {
		out := make([]marker, len(parent.locs))
		for k, loc := range parent.locs {
			out[k] = marker{kind: markerDynamicOffset, headIndex: k, loc: loc}
		}
		return out
	}
	return synthesizeWindow(window, disallowed, inPointerBody)
}

func synthesizeWindow(window []word, disallowed disallowedSet, inPointerBody bool) []marker {
	var markers []marker
	ctx := newSynthCtx()
	lastIndex := len(window) - 1
	i := 0

	for i <= lastIndex && i < ctx.firstTuple {
		if offset, ok := tryPointer(i, window, ctx.recentOffset, lastIndex, disallowed); ok {
			closePrevious(markers, ctx.recentMarker, offset)
			if ctx.firstTuple == noBound {
				ctx.firstTuple = offset
			}
			ctx.recentOffset = offset
			ctx.recentMarker = len(markers)
			markers = append(markers, marker{
				kind: markerDynamicOffset, headIndex: i,
				loc: Location{Start: offset, End: lastIndex + 1},
			})
			i++
			continue
		}

		if m, ok := tryDynamicBytes(i, window, lastIndex, ctx.firstTuple, inPointerBody && i == 0); ok {
			markers = append(markers, m)
			i = m.loc.End
			continue
		}

		if m, ok := tryArray(i, window, lastIndex, ctx.firstTuple, inPointerBody && i == 0); ok {
			markers = append(markers, m)
			if m.kind == markerStaticArray {
				i = m.loc.End
			} else {
				i = m.locs[len(m.locs)-1].End
			}
			continue
		}

		markers = append(markers, marker{kind: markerWord, word: i})
		i++
	}
	return markers
}

// closePrevious retroactively narrows the most recently placed pointer's
// region so it ends just before the newly discovered pointer's target —
// the "patch after the fact" pattern Design Notes §9 describes, since a
// pointer's true extent is only known once the *next* pointer is placed.
func closePrevious(markers []marker, idx int, end int) {
	if idx < 0 {
		return
	}
	m := &markers[idx]
	switch m.kind {
	case markerDynamicOffset:
		m.loc.End = end
	case markerDynamicArray:
		if len(m.locs) == 0 {
			panic("abidecode: dynamic array marker has no locations to narrow")
		}
		m.locs[len(m.locs)-1].End = end
	default:
		panic("abidecode: unexpected marker kind pending narrowing")
	}
}

func tryPointer(i int, window []word, recentOffset, lastIndex int, disallowed disallowedSet) (int, bool) {
	if disallowed.forbids(i, disallowTuple) {
		return 0, false
	}
	return decodeOffset(window[i], recentOffset, i, lastIndex)
}

// decodeOffset validates a word as a pointer cell per §3's invariants: the
// byte offset must be a multiple of 32, its word-index target must fit the
// window, and it must strictly exceed both the current head index and the
// most recently accepted pointer's target (monotonicity).
func decodeOffset(w word, recentOffset, i, lastIndex int) (int, bool) {
	v := w.bigInt()
	limit := new(big.Int).Mul(big.NewInt(int64(lastIndex)), big.NewInt(32))
	if v.Cmp(limit) > 0 {
		return 0, false
	}
	if !v.IsInt64() {
		return 0, false
	}
	raw := int(v.Int64())
	if raw%32 != 0 {
		return 0, false
	}
	offset := raw / 32
	if offset <= recentOffset || offset <= i {
		return 0, false
	}
	return offset, true
}

// tryDynamicBytes only fires at the first head cell of a window that is
// itself the body of a pointer (isCandidate), matching §4.2 point 2.
func tryDynamicBytes(i int, window []word, lastIndex, firstTuple int, isCandidate bool) (marker, bool) {
	if !isCandidate {
		return marker{}, false
	}
	bound := firstTuple - 1
	if lastIndex < bound {
		bound = lastIndex
	}
	remaining := bound - i

	v := window[i].bigInt()
	if !v.IsInt64() {
		return marker{}, false
	}
	length := int(v.Int64())
	if length == 0 {
		// Zero-length dynamic bytes is preferred to read as an empty
		// array instead; see the open question preserved from the source.
		return marker{}, false
	}

	lengthWords := length / 32
	if length%32 != 0 {
		lengthWords++
	}
	padding := lengthWords*32 - length
	if lengthWords+i != remaining {
		return marker{}, false
	}

	lastWordIdx := i + lengthWords
	if lastWordIdx >= len(window) {
		return marker{}, false
	}
	hexLast := window[lastWordIdx].hexString()
	tail := hexLast[64-padding*2:]
	if tail != strings.Repeat("0", padding*2) {
		return marker{}, false
	}

	return marker{
		kind: markerDynamicBytes, padBytes: padding,
		loc: Location{Start: i + 1, End: i + 1 + lengthWords},
	}, true
}

// tryArray only fires at the first head cell of a pointer body, per §4.2
// point 3, first attempting a dynamic-array reading before falling back to
// a static one.
func tryArray(i int, window []word, lastIndex, firstTuple int, isCandidate bool) (marker, bool) {
	if !isCandidate {
		return marker{}, false
	}
	if m, ok := tryDynamicArray(i, window, lastIndex, firstTuple); ok {
		return m, true
	}
	return tryStaticArray(i, window, lastIndex, firstTuple)
}

// arrayLength resolves a candidate length word into (length, elementSize).
// For a dynamic-array candidate every element occupies exactly one pointer
// cell (elementSize 1). For a static-array candidate, elementSize is the
// unique quotient `remaining / length` — length-1 arrays are rejected to
// avoid conflating an array-of-one with a bare tuple (the ambiguity
// heuristic §9's Open Questions preserves verbatim).
func arrayLength(i int, w word, lastIndex int, isDynamic bool, firstTuple int) (length, elementSize int, ok bool) {
	v := w.bigInt()
	if v.Cmp(big.NewInt(int64(lastIndex-i))) > 0 {
		return 0, 0, false
	}
	if !v.IsInt64() {
		return 0, 0, false
	}
	raw := int(v.Int64())
	if raw == 1 && !isDynamic {
		return 0, 0, false
	}

	bound := firstTuple - 1
	if lastIndex < bound {
		bound = lastIndex
	}
	remaining := bound - i
	if raw > remaining {
		return 0, 0, false
	}
	if isDynamic {
		return raw, 1, true
	}
	if raw == 0 {
		return 0, 0, true
	}
	// remaining = raw * elementSize for exactly one elementSize, since raw
	// and remaining are both fixed: solve directly instead of the source's
	// linear search (a deliberate simplification, see SPEC_FULL.md §12).
	if remaining%raw != 0 {
		return 0, 0, false
	}
	return raw, remaining / raw, true
}

func tryStaticArray(i int, window []word, lastIndex, firstTuple int) (marker, bool) {
	length, elementSize, ok := arrayLength(i, window[i], lastIndex, false, firstTuple)
	if !ok {
		return marker{}, false
	}
	if length == 0 {
		return marker{kind: markerStaticArray, loc: Location{Start: i + 1, End: i + 1}}, true
	}
	return marker{
		kind: markerStaticArray, elementSize: elementSize,
		loc: Location{Start: i + 1, End: i + 1 + length*elementSize},
	}, true
}

func tryDynamicArray(i int, window []word, lastIndex, firstTuple int) (marker, bool) {
	length, _, ok := arrayLength(i, window[i], lastIndex, true, firstTuple)
	if !ok {
		return marker{}, false
	}
	if length == 0 {
		bound := firstTuple
		if lastIndex < bound {
			bound = lastIndex
		}
		if length != bound-i {
			return marker{}, false
		}
		return marker{kind: markerStaticArray, loc: Location{Start: i + 1, End: i + 1}}, true
	}

	if i+1 > lastIndex {
		return marker{}, false
	}
	sub := window[i+1:]
	subLastIndex := len(sub) - 1
	if subLastIndex < 0 {
		return marker{}, false
	}

	var locs []Location
	recent := 0
	for j := 0; j < length; j++ {
		offset, ok := decodeOffset(sub[j], recent, j, subLastIndex)
		if !ok {
			return marker{}, false
		}
		if j == 0 && offset != length {
			return marker{}, false
		}
		if j > 0 {
			locs[j-1].End = offset
		}
		locs = append(locs, Location{Start: offset, End: subLastIndex + 1})
		recent = offset
	}

	// The original resolves this against first_tuple_copy, seeded from the
	// first sub-offset — which the j==0 guard above already forces to equal
	// length — bounded by the body's own word count, not the outer window's
	// firstTuple ceiling (that ceiling describes the *enclosing* window, not
	// this array's body, and using it here rejected every array whose
	// elements carry any payload beyond their own offset cells).
	bound := locs[0].Start
	if subLastIndex+1 < bound {
		bound = subLastIndex + 1
	}
	if length != bound {
		return marker{}, false
	}

	for k := range locs {
		locs[k].Start += i + 1
		locs[k].End += i + 1
	}
	return marker{kind: markerDynamicArray, headIndex: i, locs: locs}, true
}
