// Package cmd implements the jnigen command line interface.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/saturn-engine/jnigen/emit"
	"github.com/saturn-engine/jnigen/extract"
	"github.com/saturn-engine/jnigen/logging"
	"github.com/saturn-engine/jnigen/scan"
)

// defaultInputDir is where the engine bridge keeps its Kotlin sources.
const defaultInputDir = "engine_bridge/src/main/java"

// Execute runs the jnigen CLI with the given version string.
func Execute(version string) {
	cmd := &cli.Command{
		Name:    "jnigen",
		Usage:   "Generate JNI loading code for Kotlin @NativeExport functions",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Kotlin files, directories, or glob patterns to scan",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output C++ file path",
				Value:   "jni_loader.cpp",
			},
			&cli.StringFlag{
				Name:  "helper-class",
				Usage: "JNI helper class name",
				Value: emit.DefaultHelperClass,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable verbose output",
			},
		},
		Action: generateAction,
		Commands: []*cli.Command{
			analyzeCommand(),
			docsCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func generateAction(_ context.Context, cmd *cli.Command) error {
	log := logging.New(cmd.Bool("verbose"))
	defer log.Sync()

	inputs := cmd.StringSlice("input")
	if len(inputs) == 0 {
		inputs = []string{defaultInputDir}
	}
	return generate(inputs, cmd.String("output"), cmd.String("helper-class"), log)
}

// generate runs the full pipeline: resolve inputs, extract exported
// functions, and write the loader source. An empty file set is the one
// fatal condition; finding no exports only warns and writes nothing.
func generate(inputs []string, output, helperClass string, log *zap.Logger) error {
	files := scan.Resolve(inputs)
	if len(files) == 0 {
		return fmt.Errorf("no Kotlin files found in specified input paths")
	}
	log.Debug("resolved input files", zap.Int("count", len(files)))

	res := extract.New(log).Files(files)
	if res.Classes() == 0 {
		// Absence of exports is not an error; report and write nothing.
		log.Warn("no @NativeExport functions found")
		return nil
	}

	gen := &emit.Generator{HelperClass: helperClass}
	if err := gen.WriteFile(output, res); err != nil {
		return err
	}

	fmt.Printf("Generated %s with %d classes and %d method loaders.\n",
		output, res.Classes(), res.Functions())

	for _, b := range res.Bindings() {
		for _, fn := range b.Functions {
			log.Debug("registered method",
				zap.String("class", b.Name),
				zap.String("function", fn.Name),
				zap.String("signature", fn.Signature()))
		}
	}
	return nil
}
