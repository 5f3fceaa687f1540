package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"

	"github.com/cfglang/cfg/log"
)

// Check parses the source, reporting the first syntax or semantic error, and
// optionally evaluates boolean assertions against the loaded tree. Variables
// are visible to assertions by their top-level names, e.g.
//
//	cfg check -f app.cfg --assert 'server.port > 1024'
type Check struct {
	Assert []string `help:"Boolean expression that must hold for the document" short:"a"`
	File   string   `default:"-" name:"file" help:"Source file or '-' for stdin" short:"f" type:"existingfile"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	doc, err := loadSource(ctx, c.File)
	if err != nil {
		return err
	}

	env := doc.ToMap()

	for _, src := range c.Assert {
		program, err := expr.Compile(src, expr.Env(env), expr.AsBool())
		if err != nil {
			return fmt.Errorf("failed to compile assertion `%s`: %w",
				src, err)
		}

		out, err := expr.Run(program, env)
		if err != nil {
			return fmt.Errorf("failed to evaluate assertion `%s`: %w",
				src, err)
		}

		if ok, _ := out.(bool); !ok {
			return fmt.Errorf("assertion failed: %s", src)
		}

		log.DebugContext(ctx, "assertion held", slog.String("expr", src))
	}

	log.InfoContext(ctx, "document ok",
		slog.Int("variables", doc.Root().Len()),
		slog.Int("assertions", len(c.Assert)),
	)

	return nil
}
