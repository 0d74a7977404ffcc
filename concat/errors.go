package concat

import "errors"

// ErrIncompatibleSymbols is returned when the operands' input or
// output symbol tables cannot be combined, per fst.CompatSymbols.
var ErrIncompatibleSymbols = errors.New("concat: incompatible input/output symbol tables")
