package diaglog_test

import (
	"fmt"

	"github.com/pkg/errors"
)

// testAction is an enum-like action: its identity form is the variant
// name, its display form a human phrase.
type testAction int

const (
	actionReadConfig testAction = iota
	actionWriteFile
	actionLoadConfig
	actionParseJSON
	actionConnect
	actionAuthenticate
	actionUploadFile
	actionFetchData
)

func (a testAction) String() string {
	switch a {
	case actionReadConfig:
		return "read config"
	case actionWriteFile:
		return "write file"
	case actionLoadConfig:
		return "load config"
	case actionParseJSON:
		return "parse json"
	case actionConnect:
		return "connect"
	case actionAuthenticate:
		return "authenticate"
	case actionUploadFile:
		return "upload file"
	case actionFetchData:
		return "fetch data"
	}
	return "unknown"
}

func (a testAction) GoString() string {
	switch a {
	case actionReadConfig:
		return "ReadConfig"
	case actionWriteFile:
		return "WriteFile"
	case actionLoadConfig:
		return "LoadConfig"
	case actionParseJSON:
		return "ParseJson"
	case actionConnect:
		return "Connect"
	case actionAuthenticate:
		return "Authenticate"
	case actionUploadFile:
		return "UploadFile"
	case actionFetchData:
		return "FetchData"
	}
	return "Unknown"
}

// tupleEnum is an enum-like action whose single variant carries a
// payload, e.g. Download("https://example.com").
type tupleEnum string

func (a tupleEnum) String() string {
	return "download " + string(a)
}

func (a tupleEnum) GoString() string {
	return fmt.Sprintf("Download(%q)", string(a))
}

func (a tupleEnum) TypePath() string {
	return "myapp::TupleEnum"
}

// structEnum is an enum-like action with a struct variant.
type structEnum struct {
	host string
}

func (a structEnum) String() string {
	return "connect to " + a.host
}

func (a structEnum) GoString() string {
	return fmt.Sprintf("Connect { host: %q }", a.host)
}

func (a structEnum) TypePath() string {
	return "myapp::StructEnum"
}

// unitStruct is a struct-like action at the identity root.
type unitStruct struct{}

func (unitStruct) String() string {
	return "unit action"
}

func (unitStruct) GoString() string {
	return "UnitStruct"
}

func (unitStruct) TypePath() string {
	return "myapp::UnitStruct"
}

// fieldStruct is a struct-like action with a payload field, nested one
// module deep.
type fieldStruct struct {
	msg string
}

func (f fieldStruct) String() string {
	return "field action"
}

func (f fieldStruct) GoString() string {
	return fmt.Sprintf("FieldStruct{msg: %q}", f.msg)
}

func (f fieldStruct) TypePath() string {
	return "myapp::nested::FieldStruct"
}

func ioError() error {
	return errors.New("file not found")
}
