package main

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/sinebench/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, a *app, args ...string) (string, string, error) {
	t.Helper()
	root := a.command()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestNoArgsRunsFixedSuite(t *testing.T) {
	out, _, err := execute(t, newApp())
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 8)

	values := []string{"0.999848", "0.999848", "0.999848", "0.860069"}
	labels := []string{"Sine", "fsin inline", "SinAsm", "Sin"}
	for i := range labels {
		assert.Equal(t, values[i], got[2*i])
		assert.True(t, strings.HasPrefix(got[2*i+1], labels[i]+" time elapsed: "), got[2*i+1])
	}
}

func TestRunSubcommandMatchesRoot(t *testing.T) {
	out, _, err := execute(t, newApp(), "run", "--preset", "quick", "--precision", "3")
	require.NoError(t, err)

	got := lines(out)
	require.Len(t, got, 8)
	assert.Equal(t, "1.000", got[0])
	assert.True(t, strings.HasPrefix(got[7], "Sin time elapsed: "), got[7])
}

func TestRepeatPrintsSummary(t *testing.T) {
	out, _, err := execute(t, newApp(), "--preset", "quick", "--repeat", "2")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "SinAsm time elapsed: "))
	assert.Contains(t, out, "sine strategies")
}

func parsed(t *testing.T, a *app, args ...string) *cobra.Command {
	t.Helper()
	root := a.command()
	require.NoError(t, root.ParseFlags(args))
	return root
}

func TestLoadConfigPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	file := config.DefaultConfig()
	file.Trials = []config.TrialConfig{{Strategy: "table", Repetitions: 7}}
	file.Repeat = 2
	file.Precision = 3
	require.NoError(t, config.Save(path, file))

	t.Run("defaults", func(t *testing.T) {
		a := newApp()
		cfg, err := a.loadConfig(parsed(t, a), &a.root)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfig(), cfg)
	})

	t.Run("preset over defaults", func(t *testing.T) {
		a := newApp()
		cfg, err := a.loadConfig(parsed(t, a, "--preset", "quick"), &a.root)
		require.NoError(t, err)
		assert.Equal(t, config.GetPreset("quick"), cfg)
	})

	t.Run("file over preset", func(t *testing.T) {
		a := newApp()
		cfg, err := a.loadConfig(parsed(t, a, "--preset", "full", "--config", path), &a.root)
		require.NoError(t, err)
		require.Len(t, cfg.Trials, 1)
		assert.Equal(t, 7, cfg.Trials[0].Repetitions)
		assert.Equal(t, 2, cfg.Repeat)
		assert.Equal(t, 3, cfg.Precision)
	})

	t.Run("changed flags over file", func(t *testing.T) {
		a := newApp()
		cmd := parsed(t, a, "--preset", "full", "--config", path,
			"--repeat", "4", "--precision", "2", "--library-input", "degrees", "--clock", "wall", "--fp-check")
		cfg, err := a.loadConfig(cmd, &a.root)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Trials[0].Repetitions)
		assert.Equal(t, 4, cfg.Repeat)
		assert.Equal(t, 2, cfg.Precision)
		assert.Equal(t, "degrees", cfg.LibraryInput)
		assert.Equal(t, "wall", cfg.Clock)
		assert.True(t, cfg.FPCheck)
	})

	t.Run("unchanged flags keep file values", func(t *testing.T) {
		a := newApp()
		cfg, err := a.loadConfig(parsed(t, a, "--config", path), &a.root)
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Repeat)
		assert.Equal(t, 3, cfg.Precision)
	})

	t.Run("unknown preset", func(t *testing.T) {
		a := newApp()
		_, err := a.loadConfig(parsed(t, a, "--preset", "nope"), &a.root)
		assert.Error(t, err)
	})
}

func TestFPCheckFlagsAreIndependent(t *testing.T) {
	a := newApp()
	root := a.command()
	check, _, err := root.Find([]string{"check"})
	require.NoError(t, err)
	run, _, err := root.Find([]string{"run"})
	require.NoError(t, err)

	assert.Equal(t, "true", check.Flags().Lookup("fp-check").DefValue)
	assert.Equal(t, "false", run.Flags().Lookup("fp-check").DefValue)
	assert.Equal(t, "false", root.Flags().Lookup("fp-check").DefValue)
	assert.True(t, a.checkFP)
	assert.False(t, a.root.fpCheck)
	assert.False(t, a.run.fpCheck)
}

func infiniteAt(deg int) func(float64) float64 {
	return func(rad float64) float64 {
		if int(math.Round(rad*180/math.Pi)) == deg {
			return math.Inf(1)
		}
		return math.Sin(rad)
	}
}

func TestFPCheckFailureReportedOnce(t *testing.T) {
	for _, args := range [][]string{
		{"check"},
		{"run", "--fp-check", "--preset", "quick"},
		{"--fp-check", "--preset", "quick"},
	} {
		a := newApp()
		a.reference = infiniteAt(30)
		out, errOut, err := execute(t, a, args...)
		require.Error(t, err, "%v", args)
		assert.Equal(t, 1, strings.Count(out+errOut, "floating point exception"), "%v", args)
		assert.Contains(t, errOut, "at 30 degrees")
		assert.NotContains(t, out, "time elapsed", "suite must not run after a failed check")
	}
}

func TestFPCheckOffByDefaultForSuite(t *testing.T) {
	a := newApp()
	a.reference = infiniteAt(30)
	out, _, err := execute(t, a, "--preset", "quick")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "time elapsed: "))

	_, _, err = execute(t, a, "check", "--fp-check=false")
	assert.NoError(t, err)
}
