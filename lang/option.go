package lang

import "github.com/cfglang/cfg/log"

// Option applies a configuration option to a [Document].
type Option func(*Document)

// WithLogger attaches a structured logger used to trace load progress.
func WithLogger(logger log.Logger) Option {
	return func(d *Document) {
		d.logger = logger
	}
}

// WithMaxFileSize overrides the file size limit enforced by
// [Document.LoadFile].
func WithMaxFileSize(limit int64) Option {
	return func(d *Document) {
		if limit > 0 {
			d.maxFileSize = limit
		}
	}
}
