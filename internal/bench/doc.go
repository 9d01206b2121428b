// Package bench times sine strategies over whole-degree sweeps.
//
// A [Harness] runs each [Trial] to completion before starting the next:
// an outer loop of Repetitions over an inner sweep of degrees 0..89, with
// one clock sample immediately before and one immediately after the block.
// Only the last computed value is kept, so the compiler cannot drop the
// calls.
//
// # Thread Safety
//
// Harness is single-threaded by design. Run it from one goroutine.
package bench
