package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mathSource = `package com.example

class Math {
    @NativeExport
    fun add(a: Int, b: Int): Int {
        return a + b
    }

    @JvmStatic
    @NativeExport
    fun scale(v: Float): Float {
        return v * 2f
    }
}
`

func TestSource_BasicExtraction(t *testing.T) {
	res := NewResult()
	New(nil).Source(mathSource, "Math.kt", res)

	require.Equal(t, 1, res.Classes())
	b := res.Bindings()[0]
	assert.Equal(t, "com/example/Math", b.Name)
	assert.Equal(t, "Math", b.ShortName())

	require.Len(t, b.Functions, 2)
	assert.Equal(t, "add", b.Functions[0].Name)
	assert.Equal(t, "(II)I", b.Functions[0].Signature())
	assert.Equal(t, "scale", b.Functions[1].Name)
	assert.Equal(t, "(F)F", b.Functions[1].Signature())
}

func TestSource_DefaultUnitReturn(t *testing.T) {
	src := "package app\n\nclass Hooks {\n    @NativeExport\n    fun onPause() {\n    }\n}\n"
	res := NewResult()
	New(nil).Source(src, "Hooks.kt", res)

	require.Equal(t, 1, res.Functions())
	assert.Equal(t, "()V", res.Bindings()[0].Functions[0].Signature())
}

func TestSource_NullableTypes(t *testing.T) {
	src := `package app

class Profile {
    @NativeExport
    fun find(id: Int?): String? {
        return null
    }
}
`
	res := NewResult()
	New(nil).Source(src, "Profile.kt", res)

	require.Equal(t, 1, res.Functions())
	// Nullable Int boxes; nullable String is already an object descriptor.
	assert.Equal(t, "(Ljava/lang/Integer;)Ljava/lang/String;", res.Bindings()[0].Functions[0].Signature())
}

func TestSource_UnknownTypeSkipsOnlyThatFunction(t *testing.T) {
	src := `package app

class Mixed {
    @NativeExport
    fun bad(cb: Callback): Int {
        return 0
    }

    @NativeExport
    fun good(n: Int): Int {
        return n
    }
}
`
	res := NewResult()
	New(nil).Source(src, "Mixed.kt", res)

	require.Equal(t, 1, res.Functions())
	assert.Equal(t, "good", res.Bindings()[0].Functions[0].Name)
}

func TestSource_UnknownReturnTypeSkipsFunction(t *testing.T) {
	src := "package app\n\nclass R {\n    @NativeExport\n    fun make(): Widget {\n    }\n}\n"
	res := NewResult()
	New(nil).Source(src, "R.kt", res)
	assert.Equal(t, 0, res.Functions())
}

func TestSource_MalformedParameterSkipsFunction(t *testing.T) {
	src := `package app

class M {
    @NativeExport
    fun broken(oops): Int {
        return 0
    }

    @NativeExport
    fun fine(x: Long): Long {
        return x
    }
}
`
	res := NewResult()
	New(nil).Source(src, "M.kt", res)

	require.Equal(t, 1, res.Functions())
	assert.Equal(t, "fine", res.Bindings()[0].Functions[0].Name)
}

func TestSource_ArrayParameters(t *testing.T) {
	src := "package app\n\nclass Buf {\n    @NativeExport\n    fun sum(vals: IntArray): Long {\n    }\n}\n"
	res := NewResult()
	New(nil).Source(src, "Buf.kt", res)

	require.Equal(t, 1, res.Functions())
	assert.Equal(t, "([I)J", res.Bindings()[0].Functions[0].Signature())
}

func TestSource_NoDeterminableClassSkipsFile(t *testing.T) {
	// Empty base name yields no class even though an export is present.
	src := "@NativeExport\nfun orphan(): Int {\n    return 1\n}\n"
	res := NewResult()
	New(nil).Source(src, ".kt", res)
	assert.Equal(t, 0, res.Classes())
}

func TestSource_MultipleClassesAcrossFiles(t *testing.T) {
	first := "package app\n\nclass A {\n    @NativeExport\n    fun one(): Int {\n    }\n}\n"
	second := "package app\n\nclass B {\n    @NativeExport\n    fun two(): Int {\n    }\n}\n"

	res := NewResult()
	e := New(nil)
	e.Source(first, "A.kt", res)
	e.Source(second, "B.kt", res)

	require.Equal(t, 2, res.Classes())
	assert.Equal(t, "app/A", res.Bindings()[0].Name)
	assert.Equal(t, "app/B", res.Bindings()[1].Name)
	assert.Equal(t, 2, res.Functions())
}

func TestSource_SameClassMergedAcrossFiles(t *testing.T) {
	first := "package app\n\nclass Shared {\n    @NativeExport\n    fun one(): Int {\n    }\n}\n"
	second := "package app\n\nclass Shared {\n    @NativeExport\n    fun two(): Int {\n    }\n}\n"

	res := NewResult()
	e := New(nil)
	e.Source(first, "Shared.kt", res)
	e.Source(second, "SharedExt.kt", res)

	require.Equal(t, 1, res.Classes())
	b := res.Bindings()[0]
	require.Len(t, b.Functions, 2)
	assert.Equal(t, "one", b.Functions[0].Name)
	assert.Equal(t, "two", b.Functions[1].Name)
}

func TestSource_DiscoveryOrderPreserved(t *testing.T) {
	src := `package app

class Ordered {
    @NativeExport
    fun c(): Int {
    }

    @NativeExport
    fun a(): Int {
    }

    @NativeExport
    fun b(): Int {
    }
}
`
	res := NewResult()
	New(nil).Source(src, "Ordered.kt", res)

	var names []string
	for _, fn := range res.Bindings()[0].Functions {
		names = append(names, fn.Name)
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)
}

func TestFiles_UnreadableFileSkipped(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "Good.kt")
	src := "package app\n\nclass Good {\n    @NativeExport\n    fun ok(): Int {\n    }\n}\n"
	require.NoError(t, os.WriteFile(good, []byte(src), 0o644))

	res := New(nil).Files([]string{filepath.Join(dir, "missing.kt"), good})

	require.Equal(t, 1, res.Classes())
	assert.Equal(t, "app/Good", res.Bindings()[0].Name)
}
