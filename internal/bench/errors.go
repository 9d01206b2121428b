package bench

import "errors"

var (
	// ErrNoTrials indicates a harness with nothing to run.
	ErrNoTrials = errors.New("bench: no trials")

	// ErrBadRepetitions indicates a trial with fewer than one repetition.
	ErrBadRepetitions = errors.New("bench: repetitions must be positive")

	// ErrNilStrategy indicates a trial without a strategy.
	ErrNilStrategy = errors.New("bench: trial has no strategy")
)
