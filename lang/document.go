package lang

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/cfglang/cfg/log"
)

// DefaultMaxFileSize caps how many bytes LoadFile will accept (10 MiB).
// Override with [WithMaxFileSize].
const DefaultMaxFileSize = 10 << 20

// Document owns one parsed variable tree and the error from its most recent
// load. A Document may be reloaded; loading first discards the previous
// tree, so no Variable obtained earlier remains part of the Document.
// Loads must be serialized by the caller, but the tree is read-only between
// loads and safe for concurrent reads.
type Document struct {
	root        *Variable
	err         *Error
	logger      log.Logger
	maxFileSize int64
}

// New creates an empty Document whose root holds no variables.
func New(opts ...Option) *Document {
	doc := &Document{
		root:        &Variable{kind: TypeStruct},
		maxFileSize: DefaultMaxFileSize,
	}

	for _, opt := range opts {
		opt(doc)
	}

	return doc
}

// LoadFile creates a Document and loads the file at path into it.
func LoadFile(
	ctx context.Context,
	path string,
	opts ...Option,
) (*Document, error) {
	doc := New(opts...)
	if err := doc.LoadFile(ctx, path); err != nil {
		return nil, err
	}

	return doc, nil
}

// Root returns the global context holding the top-level declarations. It is
// never nil; after a failed load or an Unload it holds no variables.
func (d *Document) Root() *Variable { return d.root }

// Err returns the error from the most recent load, or nil if it succeeded.
func (d *Document) Err() error {
	if d.err == nil {
		return nil
	}

	return d.err
}

// Unload discards the current tree and error state. Variables obtained from
// accessors before the call no longer belong to the Document.
func (d *Document) Unload() {
	d.root = &Variable{kind: TypeStruct}
	d.err = nil
}

// LoadBytes parses src into the Document, replacing any previously loaded
// tree. On error the Document is left empty; a partial tree is never
// exposed.
func (d *Document) LoadBytes(ctx context.Context, src []byte) error {
	d.Unload()

	toks, err := tokenize(src)
	if err != nil {
		d.err = err

		return err
	}

	d.logger.TraceContext(ctx, "tokenize complete",
		slog.Int("tokens", len(toks)))

	root, err := parse(toks)
	if err != nil {
		d.err = err

		return err
	}

	d.root = root

	d.logger.DebugContext(ctx, "load complete",
		slog.Int("tokens", len(toks)),
		slog.Int("variables", root.Len()))

	return nil
}

// LoadReader reads r to end of input and parses the contents.
func (d *Document) LoadReader(ctx context.Context, r io.Reader) error {
	src, err := io.ReadAll(r)
	if err != nil {
		d.Unload()
		d.err = wrapError(ErrorOpenFile, err, "failed to read input")

		return d.err
	}

	return d.LoadBytes(ctx, src)
}

// LoadFile opens path, enforces the Document's file size limit, and parses
// the contents. It always closes what it opened.
func (d *Document) LoadFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		d.Unload()
		d.err = wrapError(ErrorOpenFile, err, "failed to open `%s`", path)

		return d.err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		d.Unload()
		d.err = wrapError(ErrorOpenFile, err, "failed to stat `%s`", path)

		return d.err
	}

	if info.Size() > d.maxFileSize {
		d.Unload()
		d.err = newError(ErrorFileTooLarge, 0, 0,
			"file `%s` is %d bytes, limit is %d", path, info.Size(),
			d.maxFileSize)

		return d.err
	}

	return d.LoadReader(ctx, file)
}
