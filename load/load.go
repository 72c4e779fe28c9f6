package load

import (
	"math"
	"time"
)

// Generator runs the fixed workload and reports its timing.
// The zero value is ready to use; hooks are optional.
type Generator struct {
	beforeRun  func()
	onComplete func(Result)
}

// NewGenerator creates a Generator with the given options.
// Options only attach observation hooks; the loop bounds and sequence input
// are constants and cannot be changed.
//
// Example:
//
//	gen := NewGenerator(WithOnComplete(func(r Result) {
//	    log.Printf("load run took %dms", r.ElapsedMillis())
//	}))
func NewGenerator(opts ...Option) *Generator {
	cfg := &generatorConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Generator{
		beforeRun:  cfg.beforeRun,
		onComplete: cfg.onComplete,
	}
}

// Run executes the workload once on the calling goroutine and returns its
// result together with the elapsed time. It never fails and cannot be
// cancelled.
func (g *Generator) Run() Result {
	if g != nil && g.beforeRun != nil {
		g.beforeRun()
	}

	start := time.Now()
	acc := compute()
	elapsed := time.Since(start)

	res := Result{
		Accumulator: acc,
		Elapsed:     elapsed,
	}

	if g != nil && g.onComplete != nil {
		g.onComplete(res)
	}
	return res
}

// Run executes the workload once without hooks.
func Run() Result {
	var g Generator
	return g.Run()
}

// Compute returns the workload's accumulator without timing it.
func Compute() float64 {
	return compute()
}

// Fibonacci returns the n-th Fibonacci number using plain exponential
// recursion: fib(0) = 0, fib(1) = 1.
func Fibonacci(n int) int {
	return fibonacci(n)
}

// evalSequence is the single sequence evaluation made by compute.
var evalSequence = fibonacci

func compute() float64 {
	acc := 0.0
	// One sqrt and one sin per inner iteration, 90,000 of each.
	for i := range OuterBound {
		for j := range InnerBound {
			acc += math.Sqrt(float64(i*j)) * math.Sin(float64(i))
		}
	}

	return acc + float64(evalSequence(SequenceInput))
}

// fibonacci must stay unmemoized and uninstrumented, its call tree is the
// load being measured.
func fibonacci(n int) int {
	if n <= 1 {
		return n
	}
	return fibonacci(n-1) + fibonacci(n-2)
}
