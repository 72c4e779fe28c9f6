package bench

import (
	"time"

	"github.com/fatih/color"
)

// Mode selects where the workload runs.
type Mode string

const (
	// ModeLocal runs load.Run in-process on a worker pool.
	ModeLocal Mode = "local"
	// ModeRemote calls GET /cpu-load on a running sensor API.
	ModeRemote Mode = "remote"
)

// Output formats accepted by -output-format.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Sample is one completed workload run.
//
// Fields:
//   - Calculation: Time spent inside the workload, as reported by load.Result
//     or the server's calculationTime field
//   - RoundTrip: Time from task start to result, including HTTP overhead in
//     remote mode
type Sample struct {
	Calculation time.Duration
	RoundTrip   time.Duration
}

// RunResult summarizes one iteration, or the aggregate of several.
// The *Str fields are filled only for JSON output.
type RunResult struct {
	Name        string        `json:"name"`
	Requests    int           `json:"requests"`
	Failed      int           `json:"failed"`
	TotalTime   time.Duration `json:"total_time_ns"`
	TasksPerSec float64       `json:"tasks_per_sec"`

	CalcP50 time.Duration `json:"calc_p50_ns"`
	CalcP95 time.Duration `json:"calc_p95_ns"`
	CalcP99 time.Duration `json:"calc_p99_ns"`
	RTTP50  time.Duration `json:"rtt_p50_ns"`
	RTTP95  time.Duration `json:"rtt_p95_ns"`
	RTTP99  time.Duration `json:"rtt_p99_ns"`

	TotalTimeStr string `json:"total_time,omitempty"`
	CalcP50Str   string `json:"calc_p50,omitempty"`
	CalcP95Str   string `json:"calc_p95,omitempty"`
	CalcP99Str   string `json:"calc_p99,omitempty"`
	RTTP50Str    string `json:"rtt_p50,omitempty"`
	RTTP95Str    string `json:"rtt_p95,omitempty"`
	RTTP99Str    string `json:"rtt_p99,omitempty"`
}

// Color helpers
var (
	Bold   = color.New(color.Bold)
	Green  = color.New(color.FgGreen)
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
	Blue   = color.New(color.FgBlue)
)
