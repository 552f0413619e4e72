// Package delegate launches the external analysis/generation tool used for
// repository maintenance tasks. Each wrapper renders a fixed prompt for its
// task and names the output file after the target; all real work happens in
// the external process. The generator core never calls this package.
package delegate

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultTool is the external tool binary resolved from PATH.
const DefaultTool = "saturn-assist"

const (
	analyzePrompt = "Analyze the JNI bindings declared in %s. List every exported function, " +
		"its signature, and any mismatch with the engine's loader conventions."
	docsPrompt = "Write reference documentation for the native bindings declared in %s, " +
		"one section per exported function."
)

// Runner launches the external tool for one target file.
type Runner struct {
	// Tool is the external binary to launch. Empty selects DefaultTool.
	Tool string
}

func (r *Runner) tool() string {
	if r.Tool == "" {
		return DefaultTool
	}
	return r.Tool
}

// Analyze runs the analysis prompt for target and returns the output file
// path (<base>_analysis.md).
func (r *Runner) Analyze(target string) (string, error) {
	out := outputName(target, "_analysis.md")
	return out, r.run(fmt.Sprintf(analyzePrompt, target), out)
}

// Docs runs the documentation prompt for target and returns the output
// file path (<base>_docs.md).
func (r *Runner) Docs(target string) (string, error) {
	out := outputName(target, "_docs.md")
	return out, r.run(fmt.Sprintf(docsPrompt, target), out)
}

// outputName derives the wrapper's output file from the target's base name.
func outputName(target, suffix string) string {
	base := filepath.Base(target)
	return strings.TrimSuffix(base, filepath.Ext(base)) + suffix
}

func (r *Runner) run(prompt, outFile string) error {
	cmd := exec.Command(r.tool(), "-p", prompt, "-o", outFile)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", r.tool(), err)
	}
	return nil
}
