package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/saturn-engine/jnigen/delegate"
)

// toolFlag selects the external tool binary for the delegation wrappers.
func toolFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "tool",
		Usage: "External tool binary",
		Value: delegate.DefaultTool,
	}
}

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Run the external analysis tool on a bindings file",
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{toolFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() < 1 {
				return fmt.Errorf("usage: jnigen analyze <file>")
			}
			r := &delegate.Runner{Tool: cmd.String("tool")}
			out, err := r.Analyze(cmd.Args().First())
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", out)
			return nil
		},
	}
}

func docsCommand() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Run the external documentation tool on a bindings file",
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{toolFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() < 1 {
				return fmt.Errorf("usage: jnigen docs <file>")
			}
			r := &delegate.Runner{Tool: cmd.String("tool")}
			out, err := r.Docs(cmd.Args().First())
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", out)
			return nil
		},
	}
}
