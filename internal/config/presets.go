package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"quick": {
		Trials: []TrialConfig{
			{Strategy: "table", Repetitions: 100},
			{Strategy: "fsin-inline", Repetitions: 100},
			{Strategy: "fsin-call", Repetitions: 100},
			{Strategy: "libm", Repetitions: 1000},
		},
		Lerp: "precise", LibraryInput: "radians", Clock: "cpu", Repeat: 1, Precision: DefaultPrecision,
	},
	"full": {
		Trials: []TrialConfig{
			{Strategy: "table", Repetitions: DefaultRepetitions},
			{Strategy: "table-lerp", Repetitions: DefaultRepetitions},
			{Strategy: "fsin-inline", Repetitions: DefaultRepetitions},
			{Strategy: "fsin-call", Repetitions: DefaultRepetitions},
			{Strategy: "libm", Repetitions: DefaultLibraryRepetitions},
		},
		Lerp: "precise", LibraryInput: "radians", Clock: "cpu", Repeat: 5, Precision: DefaultPrecision,
	},
	"degrees": {
		Trials: []TrialConfig{
			{Strategy: "table", Repetitions: DefaultRepetitions},
			{Strategy: "fsin-inline", Repetitions: DefaultRepetitions},
			{Strategy: "fsin-call", Repetitions: DefaultRepetitions},
			{Strategy: "libm", Repetitions: DefaultRepetitions},
		},
		Lerp: "precise", LibraryInput: "degrees", Clock: "cpu", Repeat: 1, Precision: DefaultPrecision,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
