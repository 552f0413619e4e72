package emit

import (
	"fmt"
	"strings"
)

// indentUnit matches the four-space style of the engine's C++ sources.
const indentUnit = "    "

// cppWriter manages indented C++ source output for the generator.
// It encapsulates the output buffer and indentation level.
type cppWriter struct {
	sb     strings.Builder
	indent int
}

// Linef writes an indented, formatted line with a trailing newline.
func (w *cppWriter) Linef(format string, args ...interface{}) {
	w.sb.WriteString(strings.Repeat(indentUnit, w.indent))
	fmt.Fprintf(&w.sb, format, args...)
	w.sb.WriteByte('\n')
}

// Blank writes an empty line.
func (w *cppWriter) Blank() {
	w.sb.WriteByte('\n')
}

// Raw writes unindented text directly to the buffer.
func (w *cppWriter) Raw(s string) {
	w.sb.WriteString(s)
}

// Indent increases the indentation level.
func (w *cppWriter) Indent() { w.indent++ }

// Dedent decreases the indentation level.
func (w *cppWriter) Dedent() { w.indent-- }

// String returns the accumulated output.
func (w *cppWriter) String() string { return w.sb.String() }
