package diaglog

import "fmt"

// Action names what an operation was attempting when it failed.
//
// The String form is the human phrase, e.g. "read config". The
// GoString form is the machine identity and must begin with the
// variant name for enum-like actions ("Download(...)") or with the
// type's own name for struct-like actions ("UnitStruct"). Payload
// values may follow the first word after a space, "(" or "{"; they
// never reach a synthesised diagnostic code.
type Action interface {
	fmt.Stringer
	fmt.GoStringer
}

// TypePather overrides the reflection-derived type identity used for
// code synthesis and for the ToError domain fallback.
//
// The path is "::"-separated, e.g. "myapp::io::ReadAction".
type TypePather interface {
	TypePath() string
}
