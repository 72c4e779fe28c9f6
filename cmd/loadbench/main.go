// Command loadbench measures the gentle CPU workload, either in-process or
// against a running sensor API.
//
// Usage:
//
//	loadbench -requests 500 -workers 4 -pin
//	loadbench -mode remote -url http://localhost:5000 -rps 50 -iterations 5 -warmup 1
//	loadbench -mode remote -output-format json > results.json
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/SachinMhetre678/DevOpsESE-L3/internal/bench"
)

func main() {
	flags := bench.DefineFlags(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bench.Run(ctx, flags, os.Stdout, os.Stderr); err != nil {
		_, _ = bench.Red.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
