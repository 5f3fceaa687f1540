// Package cmd implements the cfg CLI subcommands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cfglang/cfg/lang"
	"github.com/cfglang/cfg/log"
)

// loadSource reads the file at path ("-" for stdin) and parses it into a new
// Document. Parse errors are returned annotated with the offending source
// line.
func loadSource(ctx context.Context, path string) (*lang.Document, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}

	doc := lang.New(lang.WithLogger(log.Default()))

	if err := doc.LoadBytes(ctx, src); err != nil {
		var lerr *lang.Error
		if errors.As(err, &lerr) {
			return nil, errors.New(lerr.Annotate(string(src)))
		}

		return nil, err
	}

	return doc, nil
}

func readSource(path string) ([]byte, error) {
	if path == "-" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return src, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.Size() > lang.DefaultMaxFileSize {
		return nil, fmt.Errorf("file `%s` is %d bytes, limit is %d",
			path, info.Size(), int64(lang.DefaultMaxFileSize))
	}

	return os.ReadFile(path)
}
