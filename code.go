package diaglog

import (
	"reflect"
	"strings"
)

// shortCode synthesises a stable diagnostic code that identifies where
// a failure originated, using only the action type's identity and the
// first word of the action's GoString rendering. Payload after the
// first space, "(" or "{" is discarded, so user data never leaks into
// codes.
//
// Enum-like actions (GoString begins with a variant name) yield
// `root::Type::Variant`; struct-like actions (GoString begins with the
// type's own name) yield `root::Type`, or `root::parent::Type` when
// the identity path is deeper than two segments.
func shortCode(a Action) string {
	segments := identitySegments(a)
	rootName := segments[0]
	typeName := segments[len(segments)-1]
	firstWord := identityFirstWord(a.GoString())
	if isStructWord(firstWord, typeName) {
		if len(segments) > 2 {
			parent := segments[len(segments)-2]
			return rootName + "::" + parent + "::" + typeName
		}
		return rootName + "::" + typeName
	}
	return rootName + "::" + typeName + "::" + firstWord
}

func identityFirstWord(debug string) string {
	if i := strings.IndexAny(debug, " ({"); i >= 0 {
		return debug[:i]
	}
	return debug
}

// isStructWord reports whether the first word of the debug rendering is
// the type's own name. A leading "pkg." qualifier, as produced by %#v,
// still counts.
func isStructWord(firstWord, typeName string) bool {
	return firstWord == typeName || strings.HasSuffix(firstWord, "."+typeName)
}

// identitySegments returns the "::"-path segments of the action type's
// identity: the explicit TypePath when implemented, else a path derived
// from the import path with the host and owner segments removed, plus
// the type name.
func identitySegments(a Action) []string {
	if tp, ok := a.(TypePather); ok {
		if segments := strings.Split(tp.TypePath(), "::"); segments[0] != "" {
			return segments
		}
	}
	t := baseType(a)
	name := t.Name()
	if name == "" {
		name = t.String()
	}
	pkg := t.PkgPath()
	if pkg == "" {
		return []string{name}
	}
	segments := strings.Split(pkg, "/")
	if strings.Contains(segments[0], ".") {
		segments = segments[1:]
		if len(segments) > 1 {
			// the owner segment of a hosted import path
			segments = segments[1:]
		}
	}
	return append(segments, name)
}

// typeIdentityName returns the full type identity of the action, used
// as the domain fallback of ToError.
func typeIdentityName(a Action) string {
	if tp, ok := a.(TypePather); ok {
		return tp.TypePath()
	}
	t := baseType(a)
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

func baseType(a Action) reflect.Type {
	t := reflect.TypeOf(a)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
