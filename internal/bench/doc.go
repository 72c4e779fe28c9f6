// Package bench drives the gentle CPU workload repeatedly and reports
// throughput and latency percentiles.
//
// In local mode the workload runs in-process on a worker pool, optionally
// with each worker pinned to its own core. In remote mode every run is a
// GET /cpu-load against a live sensor API, rate limited and retried with
// jittered backoff.
//
// Warmup runs are executed and discarded. With several iterations the
// reported result takes total time and throughput from the median iteration
// and averages each percentile across iterations.
package bench
