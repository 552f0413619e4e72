// Package jnisig converts Kotlin type names into JNI type descriptors and
// composes method signatures from them. Descriptors follow the JVM type
// encoding: single-letter primitive codes, "["-prefixed array codes, and
// "L<path>;" object codes.
package jnisig

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned when a type name has no JNI mapping.
var ErrUnknownType = errors.New("unknown type")

// arraySuffix is the Kotlin naming convention for typed arrays
// (IntArray, FloatArray, ...).
const arraySuffix = "Array"

// descriptors maps Kotlin type names to their JNI descriptors.
var descriptors = map[string]string{
	"Int":     "I",
	"Float":   "F",
	"Double":  "D",
	"Long":    "J",
	"Boolean": "Z",
	"Byte":    "B",
	"Short":   "S",
	"Char":    "C",
	"String":  "Ljava/lang/String;",
	"Unit":    "V",
}

// boxed maps primitive descriptor codes to the wrapper-object descriptors
// used when a primitive is declared nullable. Reference descriptors have
// no entry: nullability does not change them.
var boxed = map[string]string{
	"I": "Ljava/lang/Integer;",
	"F": "Ljava/lang/Float;",
	"D": "Ljava/lang/Double;",
	"J": "Ljava/lang/Long;",
	"Z": "Ljava/lang/Boolean;",
	"B": "Ljava/lang/Byte;",
	"S": "Ljava/lang/Short;",
	"C": "Ljava/lang/Character;",
}

// Descriptor returns the JNI descriptor for a Kotlin type name.
//
// Array types (the "Array" suffix) are resolved recursively: the element
// type is mapped as non-nullable and the result prefixed with "[". An
// element that fails to map fails the whole type. Nullable primitives map
// to their boxed wrapper; String and Unit are unaffected by nullability.
func Descriptor(name string, nullable bool) (string, error) {
	if elem, ok := strings.CutSuffix(name, arraySuffix); ok && elem != "" {
		sig, err := Descriptor(elem, false)
		if err != nil {
			return "", err
		}
		return "[" + sig, nil
	}

	sig, ok := descriptors[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownType, name)
	}

	if nullable {
		if wrapper, ok := boxed[sig]; ok {
			return wrapper, nil
		}
	}
	return sig, nil
}

// ParseType splits a raw Kotlin type expression into its base name and
// nullability, stripping surrounding whitespace and a single trailing "?".
func ParseType(raw string) (name string, nullable bool) {
	raw = strings.TrimSpace(raw)
	if base, ok := strings.CutSuffix(raw, "?"); ok {
		return base, true
	}
	return raw, false
}

// Signature composes a JNI method signature from the parameter descriptors
// and the return descriptor. Parameter order is preserved as given.
func Signature(params []string, ret string) string {
	return "(" + strings.Join(params, "") + ")" + ret
}
