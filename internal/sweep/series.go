package sweep

import (
	"math"
	"sort"
)

// GroupBySteps buckets records by step count, each bucket sorted by
// worker count, for plotting one curve per step count.
func GroupBySteps(records []Record) map[int64][]Record {
	groups := make(map[int64][]Record)
	for _, rec := range records {
		groups[rec.Steps] = append(groups[rec.Steps], rec)
	}
	for _, series := range groups {
		sort.Slice(series, func(i, j int) bool { return series[i].Workers < series[j].Workers })
	}
	return groups
}

// Times extracts per-case elapsed seconds.
func Times(series []Record) []float64 {
	times := make([]float64, len(series))
	for i, rec := range series {
		times[i] = rec.Elapsed.Seconds()
	}
	return times
}

// Speedup divides the first entry's time by each entry's time. Entries
// whose timing is degenerate (non-positive, below clock resolution)
// plot as zero rather than Inf; a degenerate baseline yields nil.
func Speedup(times []float64) []float64 {
	if len(times) == 0 || times[0] <= 0 {
		return nil
	}
	speedup := make([]float64, len(times))
	for i, t := range times {
		if t <= 0 {
			speedup[i] = 0
			continue
		}
		speedup[i] = times[0] / t
	}
	return speedup
}

// Errors extracts per-case |estimate - exact|.
func Errors(series []Record, exact float64) []float64 {
	errs := make([]float64, len(series))
	for i, rec := range series {
		errs[i] = math.Abs(rec.Estimate - exact)
	}
	return errs
}
