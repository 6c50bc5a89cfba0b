package wfc

// Option configures a Context via functional arguments, the same pattern
// bfs.Option and builder.BuilderOption use.
type Option func(*config)

type config struct {
	traceSink TraceSink
}

func defaultConfig() *config {
	return &config{}
}

// WithTraceSink attaches the optional trace channel (C7). Passing nil
// disables tracing, which is also the default.
func WithTraceSink(sink TraceSink) Option {
	return func(c *config) {
		c.traceSink = sink
	}
}
