package abidecode

import (
	"sort"
	"strconv"
	"strings"
)

// memoKey identifies a sub-problem synthesis/materialization can be asked
// to solve more than once: the same composite region (identified by its
// absolute position and length within the top-level word grid) under the
// same accumulated disallowed-set. Design Notes §9 recommends memoizing
// exactly this pair so a retry storm never re-explores a sub-problem it
// already resolved.
type memoKey struct {
	base, length int
	recurse      bool
	digest       string
}

type memoEntry struct {
	token Token
	ok    bool
}

// memo caches materializeNested outcomes for the lifetime of one
// top-level Decode call; it is never shared across calls.
//
// recurse is part of the key, not just base/length/disallowed: the same
// region is tried once with recurse=false and, on failure, again with
// recurse=true (validateAndRetry's two-pass protocol). Those two passes can
// legitimately disagree — recurse=false is strictly weaker — so a
// no-decision cached under recurse=false must never be handed back to a
// recurse=true caller asking the same (base, length, disallowed) question.
type memo struct {
	entries map[memoKey]memoEntry
}

func newMemo() *memo {
	return &memo{entries: make(map[memoKey]memoEntry)}
}

func (m *memo) lookup(base, length int, recurse bool, d disallowedSet) (memoEntry, bool) {
	e, ok := m.entries[memoKey{base: base, length: length, recurse: recurse, digest: digestOf(d)}]
	return e, ok
}

func (m *memo) store(base, length int, recurse bool, d disallowedSet, tok Token, ok bool) {
	m.entries[memoKey{base: base, length: length, recurse: recurse, digest: digestOf(d)}] = memoEntry{token: tok, ok: ok}
}

// digestOf renders a disallowedSet as a deterministic string key; map
// iteration order is randomized in Go, so entries are sorted by index
// first.
func digestOf(d disallowedSet) string {
	if len(d) == 0 {
		return ""
	}
	keys := make([]int, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(strconv.Itoa(k))
		b.WriteByte(':')
		b.WriteByte(byte('0' + d[k]))
		b.WriteByte(',')
	}
	return b.String()
}
