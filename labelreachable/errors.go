package labelreachable

import "errors"

// ErrUnsorted is returned by ReachInit when the secondary Fst supplied
// for arc-iterator reachability queries is not sorted on the side
// (input or output) this Reachable was built to test.
var ErrUnsorted = errors.New("labelreachable: fst not sorted on the reached side")

// ErrNoState names a query made before SetState. No function returns
// it: Reach, ReachFinal and ReachRange report false in that case.
var ErrNoState = errors.New("labelreachable: SetState not called")
