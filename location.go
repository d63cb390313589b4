package abidecode

// Location is a half-open index range [Start, End) into a word window.
//
// Every marker kind uses the same convention, including the two kinds
// (DynamicOffset and DynamicArray element ranges) whose region end can only
// be known once the next pointer in head order is placed; see
// closePrevious in synth.go, which narrows them retroactively.
type Location struct {
	Start int
	End   int
}

func (l Location) Len() int { return l.End - l.Start }

func (l Location) IsEmpty() bool { return l.End <= l.Start }
