package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassName_PackageAndClass(t *testing.T) {
	src := "package com.example.game\n\nclass Bridge {\n}\n"
	assert.Equal(t, "com/example/game/Bridge", ClassName(src, "Bridge.kt"))
}

func TestClassName_ObjectDeclaration(t *testing.T) {
	src := "package com.example\n\nobject NativeBridge {\n}\nobject Registry {\n}\n"
	// NativeBridge shares the annotation prefix, so the next declaration wins.
	assert.Equal(t, "com/example/Registry", ClassName(src, "registry.kt"))
}

func TestClassName_VisibilityModifier(t *testing.T) {
	src := "package app\n\ninternal class Loader {\n}\n"
	assert.Equal(t, "app/Loader", ClassName(src, "loader.kt"))
}

func TestClassName_DeclarationModifiers(t *testing.T) {
	src := "package app\n\nabstract sealed class Shape {\n}\n"
	assert.Equal(t, "app/Shape", ClassName(src, "shape.kt"))
}

func TestClassName_AnnotationNameNotMatched(t *testing.T) {
	// The annotation's own declaration must not be taken as the owning class.
	src := "package app\n\nannotation class NativeExport\n\nclass Real {\n}\n"
	assert.Equal(t, "app/Real", ClassName(src, "exports.kt"))
}

func TestClassName_FilenameFallback(t *testing.T) {
	src := "package com.example\n\nfun helper() {}\n"
	assert.Equal(t, "com/example/MathUtils", ClassName(src, "mathUtils.kt"))
}

func TestClassName_FilenameFallbackNoPackage(t *testing.T) {
	assert.Equal(t, "Engine", ClassName("fun tick() {}\n", "/some/dir/engine.kt"))
}

func TestClassName_NoPackage(t *testing.T) {
	src := "class Standalone {\n}\n"
	assert.Equal(t, "Standalone", ClassName(src, "standalone.kt"))
}

func TestClassName_MultipleClassesFirstWins(t *testing.T) {
	src := "package app\n\nclass First {\n}\n\nclass Second {\n}\n"
	assert.Equal(t, "app/First", ClassName(src, "first.kt"))
}

func TestClassName_SkipsAnnotationAdjacentMatch(t *testing.T) {
	// A "class" keyword directly inside an annotation reference must not
	// satisfy the unanchored tier.
	src := "package app\n\nval x = @class Marker\n"
	assert.Equal(t, "app/Glue", ClassName(src, "glue.kt"))
}
