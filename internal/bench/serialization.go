package bench

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONOutput wraps benchmark results for JSON output.
type JSONOutput struct {
	Mode       string      `json:"mode"`
	Target     string      `json:"target"`
	Iterations int         `json:"iterations"`
	Result     RunResult   `json:"result"`
	Runs       []RunResult `json:"runs,omitempty"`
}

// populateStringFields fills the human-readable duration fields.
func populateStringFields(r *RunResult) {
	r.TotalTimeStr = FormatLatency(r.TotalTime)
	r.CalcP50Str = FormatLatency(r.CalcP50)
	r.CalcP95Str = FormatLatency(r.CalcP95)
	r.CalcP99Str = FormatLatency(r.CalcP99)
	r.RTTP50Str = FormatLatency(r.RTTP50)
	r.RTTP95Str = FormatLatency(r.RTTP95)
	r.RTTP99Str = FormatLatency(r.RTTP99)
}

// SerializeToJSON converts the final result and the individual iterations
// to indented JSON. Runs are only included when there is more than one.
func SerializeToJSON(mode Mode, target string, final RunResult, runs []RunResult) ([]byte, error) {
	out := JSONOutput{
		Mode:       string(mode),
		Target:     target,
		Iterations: len(runs),
		Result:     final,
	}
	populateStringFields(&out.Result)

	if len(runs) > 1 {
		out.Runs = make([]RunResult, len(runs))
		copy(out.Runs, runs)
		for i := range out.Runs {
			populateStringFields(&out.Runs[i])
		}
	}

	return json.MarshalIndent(out, "", "  ")
}

// OutputJSON writes the serialized results to w.
func OutputJSON(w io.Writer, mode Mode, target string, final RunResult, runs []RunResult) error {
	data, err := SerializeToJSON(mode, target, final, runs)
	if err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
