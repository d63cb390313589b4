package abidecode

import "fmt"

// markerKind tags the variant held by a marker value — the structural
// alphabet synthesis assigns to a window, per §3.
type markerKind uint8

const (
	markerWord markerKind = iota
	markerTuple
	markerStaticArray
	markerDynamicArray
	markerDynamicOffset
	markerDynamicBytes
	markerTopLevel
)

// marker is a tagged union over the seven ParseMarker variants. Only the
// fields relevant to Kind are populated; this mirrors the teacher's packed
// struct style (see symbol.go) in spirit, favoring one flat type over seven
// small ones since markers are short-lived, stack-allocated values produced
// and discarded per synthesis attempt.
type marker struct {
	kind markerKind

	word int // markerWord

	loc Location // markerTuple, markerStaticArray, markerDynamicBytes, markerDynamicOffset

	elementSize int // markerStaticArray
	padBytes    int // markerDynamicBytes

	headIndex int        // markerDynamicOffset, markerDynamicArray
	locs      []Location // markerDynamicArray, one per element in order
}

// headIndexOf reports the window-local head index a marker occupies, per
// §3's rule: DynamicOffset/DynamicArray store it directly, inline markers
// (Tuple/StaticArray/DynamicBytes) are addressed by the cell immediately
// before their region, and Word is addressed by its own index.
func (m marker) headIndexOf() int {
	switch m.kind {
	case markerWord:
		return m.word
	case markerTuple, markerDynamicBytes, markerStaticArray:
		return m.loc.Start - 1
	case markerDynamicOffset, markerDynamicArray:
		return m.headIndex
	default:
		panic(fmt.Sprintf("abidecode: headIndexOf called on %v marker", m.kind))
	}
}

// disallowedKind is the marker-shape half of a disallowed-set entry — the
// four composite kinds synthesis can be forbidden from choosing at a head
// index (a plain Word can never be disallowed: it is always the fallback).
type disallowedKind uint8

const (
	disallowTuple disallowedKind = iota
	disallowArray
	disallowDynamicArray
	disallowDynamicBytes
)

// disallowedSet maps head index -> forbidden marker shape. It is created
// fresh per enclosing window and grows monotonically across retries within
// that window; per §3 it is never shared across sibling windows.
type disallowedSet map[int]disallowedKind

func (d disallowedSet) clone() disallowedSet {
	if len(d) == 0 {
		return nil
	}
	out := make(disallowedSet, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func (d disallowedSet) forbids(index int, kind disallowedKind) bool {
	got, ok := d[index]
	return ok && got == kind
}

// withDisallowed returns a new set with (index, kind) added, without
// mutating the receiver — callers hold onto the pre-retry set while a
// sibling retry branch tries its own extension.
func (d disallowedSet) withDisallowed(index int, kind disallowedKind) disallowedSet {
	out := d.clone()
	if out == nil {
		out = make(disallowedSet, 1)
	}
	out[index] = kind
	return out
}

// disallowedKindFor maps a composite marker to the disallowedKind recorded
// against it when it is found invalid, per add_disallowed_marker.
func disallowedKindFor(m marker) disallowedKind {
	switch m.kind {
	case markerDynamicOffset, markerTuple:
		return disallowTuple
	case markerDynamicArray:
		return disallowDynamicArray
	case markerStaticArray:
		return disallowArray
	case markerDynamicBytes:
		return disallowDynamicBytes
	default:
		panic(fmt.Sprintf("abidecode: cannot compute disallowed kind for %v marker", m.kind))
	}
}
