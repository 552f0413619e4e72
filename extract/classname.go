package extract

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// Annotation naming used to guard class detection: a declaration whose name
// is the export annotation itself (or shares its prefix) is never the
// owning class.
const (
	exportAnnotation = "NativeExport"
	exportPrefix     = "Native"
)

var packageRe = regexp.MustCompile(`package\s+([a-zA-Z0-9_.]+)`)

// classTiers are the declaration patterns tried in order when detecting
// the owning class. Earlier tiers win; within a tier, matches are taken
// in source order. The last tier is unanchored and therefore also guarded
// against matching inside an annotation name.
var classTiers = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*(?:(?:public|private|internal|protected)\s+)?(?:class|object)\s+(\w+)`),
	regexp.MustCompile(`(?m)^\s*(?:(?:abstract|final|open|sealed|data|inner)\s+)*(?:class|object)\s+(\w+)`),
	regexp.MustCompile(`\b(?:class|object)\s+(\w+)`),
}

// ClassName determines the fully qualified JNI class name for one Kotlin
// source file. Precedence: an explicit class/object declaration, else the
// file's base name with its first character upper-cased. A package
// declaration, when present, prefixes the class with its dot path converted
// to slashes. Returns "" if no name can be determined at all.
func ClassName(content, path string) string {
	var pkg string
	if m := packageRe.FindStringSubmatch(content); m != nil {
		pkg = m[1]
	}

	name := declaredClass(content)
	if name == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if base == "" {
			return ""
		}
		runes := []rune(base)
		runes[0] = unicode.ToUpper(runes[0])
		name = string(runes)
	}

	if pkg != "" {
		return strings.ReplaceAll(pkg, ".", "/") + "/" + name
	}
	return name
}

// declaredClass returns the first acceptable class/object declaration name,
// or "" when the file declares none.
func declaredClass(content string) string {
	for _, re := range classTiers {
		for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
			candidate := content[m[2]:m[3]]
			if candidate == exportAnnotation || strings.HasPrefix(candidate, exportPrefix) {
				continue
			}
			if insideAnnotation(content, m[0]) {
				continue
			}
			return candidate
		}
	}
	return ""
}

// insideAnnotation reports whether the match starting at pos sits inside an
// annotation name such as "@Native<class>". RE2 has no lookbehind, so the
// preceding identifier run is inspected directly.
func insideAnnotation(content string, pos int) bool {
	i := pos
	for i > 0 && isWordByte(content[i-1]) {
		i--
	}
	return i > 0 && content[i-1] == '@'
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
