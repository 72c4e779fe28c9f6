package load

// Option is a functional option for configuring a Generator.
type Option func(*generatorConfig)

type generatorConfig struct {
	beforeRun  func()
	onComplete func(Result)
}

// WithBeforeRun registers a hook invoked on the calling goroutine right
// before the timed section of each run starts. Its own cost is not included
// in Result.Elapsed.
func WithBeforeRun(fn func()) Option {
	return func(cfg *generatorConfig) {
		cfg.beforeRun = fn
	}
}

// WithOnComplete registers a hook invoked with every Result after the timed
// section ends.
func WithOnComplete(fn func(Result)) Option {
	return func(cfg *generatorConfig) {
		cfg.onComplete = fn
	}
}
