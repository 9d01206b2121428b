package bench_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sinebench/internal/bench"
	"github.com/san-kum/sinebench/internal/config"
	"github.com/san-kum/sinebench/internal/cputime"
	"github.com/san-kum/sinebench/internal/strategy"
)

// stepClock advances by a fixed step on every reading.
type stepClock struct {
	now  time.Duration
	step time.Duration
}

func (c *stepClock) Now() time.Duration {
	c.now += c.step
	return c.now
}

// countingStrategy records every angle it is asked for.
type countingStrategy struct {
	calls  int
	angles []int
}

func (s *countingStrategy) Name() string  { return "counting" }
func (s *countingStrategy) Label() string { return "Counting" }
func (s *countingStrategy) Sine(deg int) float64 {
	s.calls++
	if len(s.angles) < 200 {
		s.angles = append(s.angles, deg)
	}
	return float64(deg)
}

var _ = Describe("Harness", func() {
	var reg *strategy.Registry

	BeforeEach(func() {
		reg = strategy.NewRegistry(strategy.Options{})
	})

	Describe("construction", func() {
		It("rejects an empty trial list", func() {
			_, err := bench.New(nil, nil)
			Expect(err).To(MatchError(bench.ErrNoTrials))
		})

		It("rejects non-positive repetitions", func() {
			_, err := bench.New([]bench.Trial{{Strategy: strategy.NewHardwareCall(), Repetitions: 0}}, nil)
			Expect(err).To(MatchError(bench.ErrBadRepetitions))
		})

		It("rejects a missing strategy", func() {
			_, err := bench.New([]bench.Trial{{Repetitions: 1}}, nil)
			Expect(err).To(MatchError(bench.ErrNilStrategy))
		})

		It("builds the default suite in order", func() {
			h, err := bench.FromConfig(config.DefaultConfig(), reg, nil)
			Expect(err).NotTo(HaveOccurred())

			var names []string
			var reps []int
			for _, t := range h.Trials() {
				names = append(names, t.Strategy.Name())
				reps = append(reps, t.Repetitions)
			}
			Expect(names).To(Equal([]string{"table", "fsin-inline", "fsin-call", "libm"}))
			Expect(reps).To(Equal([]int{1000, 1000, 1000, 10000}))
		})

		It("fails on an unknown strategy", func() {
			cfg := config.DefaultConfig()
			cfg.Trials[0].Strategy = "cordic"
			_, err := bench.FromConfig(cfg, reg, nil)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("RunTrial", func() {
		It("sweeps 0..89 once per repetition and keeps the last value", func() {
			s := &countingStrategy{}
			h, err := bench.New([]bench.Trial{{Strategy: s, Repetitions: 3}}, &stepClock{step: time.Millisecond})
			Expect(err).NotTo(HaveOccurred())

			r := h.RunTrial(h.Trials()[0])
			Expect(s.calls).To(Equal(3 * bench.Sweep))
			Expect(s.angles[0]).To(Equal(0))
			Expect(s.angles[89]).To(Equal(89))
			Expect(s.angles[90]).To(Equal(0))
			Expect(r.Calls).To(Equal(270))
			Expect(r.Last).To(Equal(89.0))
			Expect(r.Elapsed).To(Equal(time.Millisecond))
			Expect(r.Seconds()).To(BeNumerically("~", 0.001, 1e-12))
			Expect(r.Label).To(Equal("Counting"))
		})

		It("clamps a clock that runs backwards to zero", func() {
			h, err := bench.New([]bench.Trial{{Strategy: &countingStrategy{}, Repetitions: 1}}, &stepClock{now: time.Hour, step: -time.Second})
			Expect(err).NotTo(HaveOccurred())
			Expect(h.Run(nil)[0].Elapsed).To(BeZero())
		})
	})

	Describe("Run", func() {
		It("reports each strategy before the next starts", func() {
			cfg := config.GetPreset("quick")
			h, err := bench.FromConfig(cfg, reg, cputime.CPU())
			Expect(err).NotTo(HaveOccurred())

			var seen []string
			results := h.Run(func(r bench.Result) {
				seen = append(seen, r.Name)
			})

			Expect(seen).To(Equal([]string{"table", "fsin-inline", "fsin-call", "libm"}))
			Expect(results).To(HaveLen(4))
			for _, r := range results {
				Expect(r.Elapsed).To(BeNumerically(">=", 0))
				Expect(math.IsNaN(r.Last)).To(BeFalse())
			}

			Expect(results[0].Last).To(BeNumerically("~", 0.999848, 1e-6))
			Expect(results[1].Last).To(BeNumerically("~", results[2].Last, 1e-12))
			Expect(results[3].Last).To(BeNumerically("~", math.Sin(89), 1e-12))
		})

		It("runs the full default suite without failing", func() {
			h, err := bench.FromConfig(config.DefaultConfig(), reg, nil)
			Expect(err).NotTo(HaveOccurred())

			results := h.Run(nil)
			Expect(results).To(HaveLen(4))
			for _, r := range results {
				Expect(r.Seconds()).To(BeNumerically(">=", 0))
			}
		})
	})

	Describe("RunRepeated", func() {
		It("returns one result set per run", func() {
			s := &countingStrategy{}
			h, err := bench.New([]bench.Trial{{Strategy: s, Repetitions: 1}}, &stepClock{step: time.Microsecond})
			Expect(err).NotTo(HaveOccurred())

			var runs []int
			out := h.RunRepeated(3, func(run int, r bench.Result) {
				runs = append(runs, run)
			})
			Expect(out).To(HaveLen(3))
			Expect(runs).To(Equal([]int{0, 1, 2}))
			Expect(s.calls).To(Equal(3 * bench.Sweep))
		})
	})
})
