package intervalset

import "sort"

// Member reports whether v falls in one of s's intervals, via binary
// search over the interval starts.
func (s Set) Member(v int64) bool {
	// Find the last interval whose Begin is <= v.
	i := sort.Search(len(s.intervals), func(i int) bool { return s.intervals[i].Begin > v }) - 1
	if i < 0 {
		return false
	}

	return v < s.intervals[i].End
}

// Size returns the number of disjoint intervals (not the number of
// members).
func (s Set) Size() int {
	return len(s.intervals)
}

// Count returns the total number of members across all intervals.
func (s Set) Count() int64 {
	var n int64
	for _, iv := range s.intervals {
		n += iv.End - iv.Begin
	}

	return n
}

// Intervals returns a copy of s's sorted, disjoint interval list.
func (s Set) Intervals() []Interval {
	return append([]Interval(nil), s.intervals...)
}
