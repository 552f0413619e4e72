// Package emit writes the generated C++ translation unit implementing the
// JNI_OnLoad/JNI_OnUnload lifecycle for extracted class bindings.
package emit

import (
	"fmt"
	"os"
	"strings"

	"github.com/saturn-engine/jnigen/extract"
)

// DefaultHelperClass is the engine's JNI helper singleton.
const DefaultHelperClass = "saturn::platform::agdk::JNIHelper"

// loggerClass owns process-wide logging in the generated unit. It is part
// of the engine's lifecycle contract and not configurable.
const loggerClass = "saturn::tools::Logger"

// methodIDContinuation aligns the signature argument under the first
// argument of the getStaticMethodID call.
var methodIDContinuation = strings.Repeat(" ", len("helper->getStaticMethodID("))

// Generator renders the JNI loader source for a set of class bindings.
type Generator struct {
	// HelperClass is the fully qualified helper accessor. Empty selects
	// DefaultHelperClass.
	HelperClass string
}

func (g *Generator) helper() string {
	if g.HelperClass == "" {
		return DefaultHelperClass
	}
	return g.HelperClass
}

// Source renders the full loader translation unit. Output is
// byte-for-byte deterministic: classes and methods appear in the discovery
// order carried by res.
func (g *Generator) Source(res *extract.Result) string {
	w := &cppWriter{}

	w.Linef("// Auto-generated JNI loader code")
	w.Linef("// Generated by jnigen")
	w.Linef("// Found %d classes with %d methods", res.Classes(), res.Functions())
	w.Blank()

	g.onLoad(w, res)
	w.Blank()
	g.onUnload(w)

	return w.String()
}

// WriteFile renders the loader source and writes it to path.
func (g *Generator) WriteFile(path string, res *extract.Result) error {
	if err := os.WriteFile(path, []byte(g.Source(res)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (g *Generator) onLoad(w *cppWriter, res *extract.Result) {
	w.Linef("JNIEXPORT jint JNI_OnLoad(JavaVM* vm, void* reserved)")
	w.Linef("{")
	w.Indent()

	w.Linef("%s::initialize();", loggerClass)
	w.Blank()
	w.Linef("auto helper = %s::getInstance();", g.helper())
	w.Blank()
	w.Linef("helper->initialize(vm);")
	w.Blank()

	for _, b := range res.Bindings() {
		g.classBlock(w, b)
	}

	w.Linef("return JNI_VERSION_1_6;")
	w.Dedent()
	w.Linef("}")
}

// classBlock emits the scoped load block for one class. A class that
// cannot be resolved fails the whole load; the generated code never skips
// just one class's bindings.
func (g *Generator) classBlock(w *cppWriter, b *extract.ClassBinding) {
	w.Linef("// Load methods for %s", b.Name)
	w.Linef("{")
	w.Indent()

	w.Linef("auto clazzRef = helper->findClass(%q);", b.Name)
	w.Linef("if (!clazzRef)")
	w.Linef("{")
	w.Indent()
	w.Linef("SATURN_ERROR(\"Failed to find %s class\");", b.ShortName())
	w.Linef("return JNI_ERR;")
	w.Dedent()
	w.Linef("}")
	w.Blank()

	w.Linef("helper->createGlobalRef(clazzRef);")
	w.Blank()

	for _, fn := range b.Functions {
		w.Linef("helper->getStaticMethodID(%q, %q,", b.Name, fn.Name)
		w.Linef("%s%q);", methodIDContinuation, fn.Signature())
		w.Blank()
	}

	w.Dedent()
	w.Linef("}")
	w.Blank()
}

func (g *Generator) onUnload(w *cppWriter) {
	w.Linef("JNIEXPORT void JNICALL JNI_OnUnload(JavaVM* vm, void* /*reserved*/)")
	w.Linef("{")
	w.Indent()
	w.Linef("%s::getInstance()->shutdown();", g.helper())
	w.Blank()
	w.Linef("%s::shutdown();", loggerClass)
	w.Dedent()
	w.Linef("}")
}
