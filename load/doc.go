// Package load provides the gentle synthetic CPU workload served by the
// sensor API's /cpu-load endpoint.
//
// The workload is deliberately small and fixed at build time: a 300×300
// nested loop of sqrt/sin arithmetic followed by one evaluation of the
// naive recursive Fibonacci function at n=25. Every call performs exactly
// the same amount of work, so the elapsed time reported with the result
// varies only with host speed and contention.
//
// # Basic Usage
//
//	res := load.Run()
//	fmt.Printf("%.3f computed in %dms\n", res.Accumulator, res.ElapsedMillis())
//
// # Observing Runs
//
// A Generator can carry hooks that observe each run without changing the
// computation. The HTTP server uses this to feed its metrics:
//
//	gen := load.NewGenerator(
//	    load.WithOnComplete(func(r load.Result) {
//	        histogram.Observe(r.Elapsed.Seconds())
//	    }),
//	)
//	res := gen.Run()
//
// # Concurrency
//
// Run holds no shared state. Concurrent calls are independent and each
// produces the same Accumulator. There is no cancellation: a started run
// always completes, which is acceptable because the bounds keep a run in the
// low-millisecond range.
//
// # Cost
//
// Fibonacci is intentionally left as plain exponential recursion. Replacing
// it with a memoized or iterative form would change what the benchmark
// measures.
package load
