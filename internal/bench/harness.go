package bench

import (
	"fmt"
	"time"

	"github.com/san-kum/sinebench/internal/config"
	"github.com/san-kum/sinebench/internal/cputime"
	"github.com/san-kum/sinebench/internal/strategy"
	log "github.com/sirupsen/logrus"
)

const (
	MinDegree = 0
	MaxDegree = 89
	// Sweep is the number of evaluations per repetition.
	Sweep = MaxDegree - MinDegree + 1
)

type Trial struct {
	Strategy    strategy.Strategy
	Repetitions int
}

type Result struct {
	Name        string
	Label       string
	Elapsed     time.Duration
	Repetitions int
	Calls       int
	Last        float64
}

// Seconds returns Elapsed in fractional seconds.
func (r Result) Seconds() float64 { return r.Elapsed.Seconds() }

type Harness struct {
	trials []Trial
	clock  cputime.Clock
}

func New(trials []Trial, clock cputime.Clock) (*Harness, error) {
	if len(trials) == 0 {
		return nil, ErrNoTrials
	}
	for _, t := range trials {
		if t.Strategy == nil {
			return nil, ErrNilStrategy
		}
		if t.Repetitions < 1 {
			return nil, fmt.Errorf("%w: %s has %d", ErrBadRepetitions, t.Strategy.Name(), t.Repetitions)
		}
	}
	if clock == nil {
		clock = cputime.CPU()
	}
	return &Harness{trials: trials, clock: clock}, nil
}

// FromConfig resolves every configured trial against reg. A nil clock
// selects the one named in cfg.
func FromConfig(cfg *config.Config, reg *strategy.Registry, clock cputime.Clock) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		c, err := cputime.Parse(cfg.Clock)
		if err != nil {
			return nil, err
		}
		clock = c
	}
	trials := make([]Trial, 0, len(cfg.Trials))
	for _, tc := range cfg.Trials {
		s, err := reg.Get(tc.Strategy)
		if err != nil {
			return nil, err
		}
		trials = append(trials, Trial{Strategy: s, Repetitions: tc.Repetitions})
	}
	return New(trials, clock)
}

func (h *Harness) Trials() []Trial {
	return append([]Trial(nil), h.trials...)
}

// RunTrial times one full block of t.
func (h *Harness) RunTrial(t Trial) Result {
	s := t.Strategy
	log.WithFields(log.Fields{
		"strategy":    s.Name(),
		"repetitions": t.Repetitions,
	}).Debug("trial started")

	var last float64
	start := h.clock.Now()
	for j := 0; j < t.Repetitions; j++ {
		for a := MinDegree; a <= MaxDegree; a++ {
			last = s.Sine(a)
		}
	}
	end := h.clock.Now()

	elapsed := end - start
	if elapsed < 0 {
		elapsed = 0
	}

	r := Result{
		Name:        s.Name(),
		Label:       s.Label(),
		Elapsed:     elapsed,
		Repetitions: t.Repetitions,
		Calls:       t.Repetitions * Sweep,
		Last:        last,
	}
	log.WithFields(log.Fields{
		"strategy": r.Name,
		"elapsed":  r.Elapsed,
		"last":     r.Last,
	}).Debug("trial finished")
	return r
}

// Run executes every trial in order. onResult, if non-nil, is called after
// each trial block, before the next one starts.
func (h *Harness) Run(onResult func(Result)) []Result {
	results := make([]Result, 0, len(h.trials))
	for _, t := range h.trials {
		r := h.RunTrial(t)
		results = append(results, r)
		if onResult != nil {
			onResult(r)
		}
	}
	return results
}

// RunRepeated runs the whole suite n times. onResult receives the zero
// based run index with each result.
func (h *Harness) RunRepeated(n int, onResult func(run int, r Result)) [][]Result {
	runs := make([][]Result, 0, n)
	for i := 0; i < n; i++ {
		log.WithField("run", i+1).Debug("suite run started")
		runs = append(runs, h.Run(func(r Result) {
			if onResult != nil {
				onResult(i, r)
			}
		}))
	}
	return runs
}
