package bench

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"
	"time"
)

// calculatePercentiles picks p50/p95/p99 by index from an ascending slice.
func calculatePercentiles(sorted []time.Duration) (p50, p95, p99 time.Duration) {
	n := len(sorted)
	if n == 0 {
		return 0, 0, 0
	}

	idx := func(p int) int {
		return min(n*p/100, n-1)
	}
	return sorted[idx(50)], sorted[idx(95)], sorted[idx(99)]
}

// summarize turns the samples of one iteration into a RunResult.
func summarize(name string, samples []Sample, failed int, elapsed time.Duration) RunResult {
	calc := make([]time.Duration, 0, len(samples))
	rtt := make([]time.Duration, 0, len(samples))
	for _, s := range samples {
		calc = append(calc, s.Calculation)
		rtt = append(rtt, s.RoundTrip)
	}
	slices.Sort(calc)
	slices.Sort(rtt)

	res := RunResult{
		Name:      name,
		Requests:  len(samples) + failed,
		Failed:    failed,
		TotalTime: elapsed,
	}
	if elapsed > 0 {
		res.TasksPerSec = float64(len(samples)) / elapsed.Seconds()
	}
	res.CalcP50, res.CalcP95, res.CalcP99 = calculatePercentiles(calc)
	res.RTTP50, res.RTTP95, res.RTTP99 = calculatePercentiles(rtt)
	return res
}

// CalculateStatsWithLatencyAveraging takes total time and throughput from the
// median iteration and averages every percentile across iterations.
func CalculateStatsWithLatencyAveraging(name string, results []RunResult) RunResult {
	if len(results) == 0 {
		return RunResult{Name: name}
	}

	sorted := slices.Clone(results)
	slices.SortFunc(sorted, func(a, b RunResult) int {
		return cmp.Compare(a.TotalTime, b.TotalTime)
	})
	median := sorted[len(sorted)/2]

	var out RunResult
	for _, r := range sorted {
		out.Failed += r.Failed
		out.CalcP50 += r.CalcP50
		out.CalcP95 += r.CalcP95
		out.CalcP99 += r.CalcP99
		out.RTTP50 += r.RTTP50
		out.RTTP95 += r.RTTP95
		out.RTTP99 += r.RTTP99
	}
	n := time.Duration(len(sorted))
	out.CalcP50 /= n
	out.CalcP95 /= n
	out.CalcP99 /= n
	out.RTTP50 /= n
	out.RTTP95 /= n
	out.RTTP99 /= n

	out.Name = name
	out.Requests = median.Requests
	out.TotalTime = median.TotalTime
	out.TasksPerSec = median.TasksPerSec
	return out
}

// IterationStats describes the spread of total time across iterations.
type IterationStats struct {
	Min    time.Duration
	Median time.Duration
	Mean   time.Duration
	Max    time.Duration
	StdDev time.Duration
}

func computeIterationStats(results []RunResult) IterationStats {
	if len(results) == 0 {
		return IterationStats{}
	}

	times := make([]time.Duration, len(results))
	for i, r := range results {
		times[i] = r.TotalTime
	}
	slices.Sort(times)

	var sum time.Duration
	for _, t := range times {
		sum += t
	}
	mean := sum / time.Duration(len(times))

	var variance float64
	for _, t := range times {
		diff := float64(t - mean)
		variance += diff * diff
	}

	return IterationStats{
		Min:    times[0],
		Median: times[len(times)/2],
		Mean:   mean,
		Max:    times[len(times)-1],
		StdDev: time.Duration(math.Sqrt(variance / float64(len(times)))),
	}
}

// PrintIterationStats prints the spread line for multiple iterations.
func PrintIterationStats(w io.Writer, results []RunResult) {
	if len(results) <= 1 {
		return
	}

	s := computeIterationStats(results)
	_, _ = fmt.Fprintf(w, "    Min: %v | Median: %v | Mean: %v | Max: %v | StdDev: %v\n",
		s.Min.Round(time.Millisecond),
		s.Median.Round(time.Millisecond),
		s.Mean.Round(time.Millisecond),
		s.Max.Round(time.Millisecond),
		s.StdDev.Round(time.Millisecond))
}
