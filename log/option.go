package log

import "io"

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithDefaults resets the configuration to defaults writing to w.
func WithDefaults(w io.Writer) Option {
	return func(config) config {
		return config{
			output:     w,
			timeLayout: DefaultTimeLayout,
			level:      DefaultLevel,
			format:     DefaultFormat,
		}
	}
}

// WithWriter sets the log output destination.
func WithWriter(w io.Writer) Option {
	return func(cfg config) config {
		cfg.output = w

		return cfg
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) Option {
	return func(cfg config) config {
		cfg.level = level

		return cfg
	}
}

// WithFormat sets the log output format.
func WithFormat(format Format) Option {
	return func(cfg config) config {
		cfg.format = format

		return cfg
	}
}

// WithTimeLayout sets the timestamp layout. Layout names from the time
// package ("RFC3339", "Kitchen", ...) are not resolved; pass the layout
// string itself.
func WithTimeLayout(layout string) Option {
	return func(cfg config) config {
		if layout != "" {
			cfg.timeLayout = layout
		}

		return cfg
	}
}

// WithCaller includes caller information in log output.
func WithCaller(caller bool) Option {
	return func(cfg config) config {
		cfg.caller = caller

		return cfg
	}
}

// WithPretty enables colorized pretty printing for the text format.
func WithPretty(pretty bool) Option {
	return func(cfg config) config {
		cfg.pretty = pretty

		return cfg
	}
}
