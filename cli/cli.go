// Package cli implements the cfg command-line interface.
package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/cfglang/cfg/cli/cmd"
	"github.com/cfglang/cfg/pkg"
)

// CLI is the top-level command-line interface for cfg.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Get    cmd.Get    `cmd:"" help:"Print the value of a variable"`
	Export cmd.Export `cmd:"" help:"Print the whole document as JSON or YAML"`
	Check  cmd.Check  `cmd:"" help:"Validate syntax and optional assertions"`
	Browse cmd.Browse `cmd:"" help:"Browse the variable tree interactively"`
}

// Run executes the cfg CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	vars := kong.Vars{"version": pkg.Name + " " + pkg.Version()}.
		CloneWith(cli.Pprof.vars())

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact: true,
				Summary: true,
			}),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cli.Log.start(ctx)

	// No-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
