package intervalset

import "errors"

// ErrEmptyInterval is returned when a caller supplies an Interval with
// End <= Begin, which cannot represent any member.
var ErrEmptyInterval = errors.New("intervalset: empty or inverted interval")

// ErrUnsorted is returned by FromIntervals when the supplied slice is
// not sorted, or contains overlapping or adjacent intervals that should
// have been pre-merged by the caller.
var ErrUnsorted = errors.New("intervalset: intervals not sorted and disjoint")
