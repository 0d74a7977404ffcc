package intervalset

import "sort"

// Build returns the Set containing exactly the values in values,
// sorting and collapsing runs of consecutive integers into single
// intervals. Duplicate values collapse harmlessly.
func Build(values []int64) Set {
	if len(values) == 0 {
		return Set{}
	}

	sorted := append([]int64(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	intervals := make([]Interval, 0, len(sorted))
	cur := Interval{Begin: sorted[0], End: sorted[0] + 1}
	for _, v := range sorted[1:] {
		switch {
		case v < cur.End:
			// duplicate, already covered
		case v == cur.End:
			cur.End = v + 1
		default:
			intervals = append(intervals, cur)
			cur = Interval{Begin: v, End: v + 1}
		}
	}
	intervals = append(intervals, cur)

	return Set{intervals: intervals}
}

// FromIntervals validates that intervals is already sorted and
// disjoint and wraps it directly, avoiding Build's sort+collapse pass
// when the caller already holds a valid run list.
func FromIntervals(intervals []Interval) (Set, error) {
	if err := validateSortedDisjoint(intervals); err != nil {
		return Set{}, err
	}

	return Set{intervals: append([]Interval(nil), intervals...)}, nil
}

// Merge returns the union of a and b.
func Merge(a, b Set) Set {
	merged := make([]Interval, 0, len(a.intervals)+len(b.intervals))
	i, j := 0, 0
	for i < len(a.intervals) && j < len(b.intervals) {
		if a.intervals[i].Begin <= b.intervals[j].Begin {
			merged = append(merged, a.intervals[i])
			i++
		} else {
			merged = append(merged, b.intervals[j])
			j++
		}
	}
	merged = append(merged, a.intervals[i:]...)
	merged = append(merged, b.intervals[j:]...)

	if len(merged) == 0 {
		return Set{}
	}

	collapsed := make([]Interval, 0, len(merged))
	cur := merged[0]
	for _, iv := range merged[1:] {
		if iv.Begin <= cur.End {
			if iv.End > cur.End {
				cur.End = iv.End
			}
		} else {
			collapsed = append(collapsed, cur)
			cur = iv
		}
	}
	collapsed = append(collapsed, cur)

	return Set{intervals: collapsed}
}
