// Package extract scans Kotlin source files for @NativeExport functions,
// resolves their JNI signatures, and groups them by owning class.
package extract

import (
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/saturn-engine/jnigen/jnisig"
)

// exportRe matches an exported function declaration: the @NativeExport
// annotation (optionally preceded by @JvmStatic) followed by a fun
// declaration with its parameter list and optional return type.
var exportRe = regexp.MustCompile(`(?:@JvmStatic\s*)?@NativeExport\s*fun\s+(\w+)\s*\(([^)]*)\)\s*(?::\s*([^{\s]+))?`)

// ExportedFunction is one @NativeExport function whose parameter and return
// types all resolved to JNI descriptors.
type ExportedFunction struct {
	Name   string
	Params []string // parameter descriptors, declaration order
	Return string
}

// Signature returns the function's full JNI method signature.
func (f ExportedFunction) Signature() string {
	return jnisig.Signature(f.Params, f.Return)
}

// ClassBinding groups the exported functions of one class. Functions keep
// their source discovery order.
type ClassBinding struct {
	Name      string // fully qualified, slash-separated
	Functions []ExportedFunction
}

// ShortName returns the class name without its package path.
func (b *ClassBinding) ShortName() string {
	if i := strings.LastIndex(b.Name, "/"); i >= 0 {
		return b.Name[i+1:]
	}
	return b.Name
}

// Result accumulates class bindings for one generation run, preserving
// class discovery order. Bindings for the same class name are merged even
// when the functions come from different files.
type Result struct {
	bindings []*ClassBinding
	index    map[string]*ClassBinding
}

// NewResult returns an empty accumulation.
func NewResult() *Result {
	return &Result{index: make(map[string]*ClassBinding)}
}

// Bindings returns the class bindings in discovery order.
func (r *Result) Bindings() []*ClassBinding { return r.bindings }

// Classes returns the number of distinct classes with exported functions.
func (r *Result) Classes() int { return len(r.bindings) }

// Functions returns the total number of exported functions across classes.
func (r *Result) Functions() int {
	n := 0
	for _, b := range r.bindings {
		n += len(b.Functions)
	}
	return n
}

func (r *Result) add(class string, fn ExportedFunction) {
	b, ok := r.index[class]
	if !ok {
		b = &ClassBinding{Name: class}
		r.index[class] = b
		r.bindings = append(r.bindings, b)
	}
	b.Functions = append(b.Functions, fn)
}

// Extractor scans Kotlin sources and accumulates exported functions.
type Extractor struct {
	log *zap.Logger
}

// New returns an Extractor logging diagnostics to log. A nil logger
// silences diagnostics.
func New(log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{log: log}
}

// Files reads and scans each path in order and returns the accumulated
// result. Unreadable files are skipped with a warning; a bad file never
// affects its siblings.
func (e *Extractor) Files(paths []string) *Result {
	res := NewResult()
	for _, path := range paths {
		e.log.Debug("scanning file", zap.String("path", path))
		data, err := os.ReadFile(path)
		if err != nil {
			e.log.Warn("could not read file", zap.String("path", path), zap.Error(err))
			continue
		}
		e.Source(string(data), path, res)
	}
	return res
}

// Source scans one file's content, appending resolved functions to res
// under the file's owning class. Files with no determinable class are
// skipped entirely.
func (e *Extractor) Source(content, path string, res *Result) {
	class := ClassName(content, path)
	if class == "" {
		e.log.Warn("could not determine class name", zap.String("path", path))
		return
	}
	e.log.Debug("detected class", zap.String("class", class), zap.String("path", path))

	for _, m := range exportRe.FindAllStringSubmatch(content, -1) {
		name, params, ret := m[1], strings.TrimSpace(m[2]), m[3]
		if ret == "" {
			ret = "Unit"
		}
		e.log.Debug("found function", zap.String("function", name))

		fn, ok := e.resolve(name, params, ret)
		if !ok {
			continue
		}
		e.log.Debug("resolved signature",
			zap.String("function", name),
			zap.String("signature", fn.Signature()))
		res.add(class, fn)
	}
}

// resolve maps a function's raw parameter list and return type to JNI
// descriptors. Any single failure rejects the whole function; a partially
// typed function is never produced.
func (e *Extractor) resolve(name, params, ret string) (ExportedFunction, bool) {
	var descs []string
	if params != "" {
		for _, raw := range strings.Split(params, ",") {
			raw = strings.TrimSpace(raw)
			// Split on the last colon so colons inside generic type
			// parameters stay with the type.
			colon := strings.LastIndex(raw, ":")
			if colon < 0 {
				e.log.Warn("invalid parameter format",
					zap.String("function", name),
					zap.String("parameter", raw))
				return ExportedFunction{}, false
			}
			rawType := strings.TrimSpace(raw[colon+1:])
			typeName, nullable := jnisig.ParseType(rawType)
			desc, err := jnisig.Descriptor(typeName, nullable)
			if err != nil {
				e.log.Error("unknown parameter type",
					zap.String("function", name),
					zap.String("type", rawType))
				return ExportedFunction{}, false
			}
			descs = append(descs, desc)
		}
	}

	retName, retNullable := jnisig.ParseType(ret)
	retDesc, err := jnisig.Descriptor(retName, retNullable)
	if err != nil {
		e.log.Error("unknown return type",
			zap.String("function", name),
			zap.String("type", ret))
		return ExportedFunction{}, false
	}

	return ExportedFunction{Name: name, Params: descs, Return: retDesc}, true
}
