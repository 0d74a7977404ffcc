// Package synchronize builds a delayed view of an input transducer
// whose traversal has bounded, monotonically non-decreasing delay
// between its input and output tapes: the composite state (q, u, v)
// pairs an input state q with residual input/output label strings u
// and v still owed to the other tape, draining them one label at a
// time as Car/Cdr pull a character off the head of whichever residual
// is non-empty. The input transducer must have bounded delay (every
// cycle's net delay is zero) for the construction to terminate.
package synchronize
