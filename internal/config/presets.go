package config

import "sort"

var Presets = map[string]*Config{
	// Small matrix for trying the tool out.
	"quick": {
		Rule: "midpoint", Integrand: "pi", Steps: []int64{100000, 1000000},
		MinWorkers: 1, MaxWorkers: 4, Output: "pi_quick.csv",
	},
	// The original batch report: three big step counts, threads 1..50.
	"classic": {
		Rule: "midpoint", Integrand: "pi", Steps: []int64{100000000, 1000000000, 3000000000},
		MinWorkers: 1, MaxWorkers: 50, Output: "pi_classic.csv",
	},
	// One big step count across a wide worker range, for speedup curves.
	"scaling": {
		Rule: "midpoint", Integrand: "pi", Steps: []int64{1000000000},
		MinWorkers: 1, MaxWorkers: 32, Output: "pi_scaling.csv",
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
