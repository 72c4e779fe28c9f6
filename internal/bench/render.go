package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
)

// RenderResults writes the throughput and latency tables for the final result.
func RenderResults(w io.Writer, r RunResult) {
	printSectionHeader(w, "THROUGHPUT",
		"How many gentle CPU runs complete per second")

	throughput := tablewriter.NewWriter(w)
	throughput.Header("Target", "Requests", "Failed", "Total Time", "Tasks/sec")
	_ = throughput.Append(
		r.Name,
		FormatNumber(r.Requests),
		FormatNumber(r.Failed),
		r.TotalTime.Round(time.Millisecond).String(),
		FormatNumber(int(r.TasksPerSec)),
	)
	if err := throughput.Render(); err != nil {
		colorFprintln(w, Red, "Error in rendering throughput table")
	}

	printSectionHeader(w, "⚡ LATENCY",
		"How long individual runs take (lower is better)",
		"  • Calculation: time spent inside the workload",
		"  • Round trip: calculation plus scheduling and HTTP overhead")

	latency := tablewriter.NewWriter(w)
	latency.Header("Measure", "P50 (median)", "P95", "P99")
	_ = latency.Append("Calculation", FormatLatency(r.CalcP50), FormatLatency(r.CalcP95), FormatLatency(r.CalcP99))
	_ = latency.Append("Round trip", FormatLatency(r.RTTP50), FormatLatency(r.RTTP95), FormatLatency(r.RTTP99))
	if err := latency.Render(); err != nil {
		colorFprintln(w, Red, "Error in rendering latency table")
	}

	printFooter(w, r)
}

func printHeader(w io.Writer, title string) {
	colorFprintln(w, Bold, "╔════════════════════════════════════════════════════════════╗")
	colorFprintf(w, Bold, "║       %-52s ║\n", title)
	colorFprintln(w, Bold, "╚════════════════════════════════════════════════════════════╝")
	_, _ = fmt.Fprintln(w)
}

func printConfiguration(w io.Writer, f *Flags, target string, workers int) {
	colorFprintf(w, Blue, "  Target:      %s\n", target)
	_, _ = fmt.Fprintf(w, "  Requests:    %s per iteration\n", FormatNumber(f.Requests))
	_, _ = fmt.Fprintf(w, "  Workers:     %d\n", workers)
	_, _ = fmt.Fprintf(w, "  Iterations:  %d (warmup %d)\n", f.Iterations, f.Warmup)
	if Mode(f.Mode) == ModeRemote {
		rps := "unlimited"
		if f.RPS > 0 {
			rps = fmt.Sprintf("%.1f/s (burst %d)", f.RPS, f.Burst)
		}
		_, _ = fmt.Fprintf(w, "  Rate limit:  %s\n", rps)
		_, _ = fmt.Fprintf(w, "  Retries:     %d (first delay %v)\n", f.Retries, f.RetryDelay)
	}
	_, _ = fmt.Fprintln(w)
}

func printSectionHeader(w io.Writer, title string, descriptions ...string) {
	_, _ = fmt.Fprintln(w)
	colorFprintln(w, Bold, "═══════════════════════════════════════════════════════════")
	colorFprintln(w, Bold, title)
	colorFprintln(w, Bold, "═══════════════════════════════════════════════════════════")
	for _, desc := range descriptions {
		_, _ = fmt.Fprintln(w, desc)
	}
	_, _ = fmt.Fprintln(w)
}

func printFooter(w io.Writer, r RunResult) {
	_, _ = fmt.Fprintln(w)
	if r.Failed > 0 {
		colorFprintf(w, Yellow, "⚠️  %d of %d requests failed\n", r.Failed, r.Requests)
		return
	}
	colorFprintf(w, Green, "✅ All %s requests succeeded\n", FormatNumber(r.Requests))
}

func makeProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Running gentle CPU load"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func colorFprintln(w io.Writer, c *color.Color, a ...any) {
	_, _ = c.Fprintln(w, a...)
}

func colorFprintf(w io.Writer, c *color.Color, format string, a ...any) {
	_, _ = c.Fprintf(w, format, a...)
}
