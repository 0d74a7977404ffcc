package intervalset

// validateSortedDisjoint checks that intervals is strictly increasing
// and that consecutive intervals neither overlap nor touch (an adjacent
// pair should already have been merged into one interval by the
// caller). Each individual interval must be non-empty.
func validateSortedDisjoint(intervals []Interval) error {
	for i, iv := range intervals {
		if iv.End <= iv.Begin {
			return ErrEmptyInterval
		}
		if i > 0 && iv.Begin <= intervals[i-1].End {
			return ErrUnsorted
		}
	}

	return nil
}
