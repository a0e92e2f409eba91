// Package udf adapts the uuidbin transcoding operations to a host
// function-registration boundary in the style of a database UDF interface:
// argument count and declared types are validated once when the function is
// built, and each subsequent call exchanges raw bytes plus NULL markers.
//
// A host shim resolves functions by name with Register:
//
//	fn, err := udf.Register("uuid_to_bin", []udf.ArgType{udf.String, udf.Int})
//	if err != nil {
//	    // configuration error; the function was never installed
//	}
//	res, err := fn.Call([]udf.Arg{{Type: udf.String, Bytes: raw}, {Type: udf.Int, Int64: 1}})
package udf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lab2439/uuidbin"
)

// ArgType is the declared type of a host argument.
type ArgType int

const (
	String ArgType = iota
	Real
	Int
	Decimal
)

// String returns the type name as the host declares it.
func (t ArgType) String() string {
	switch t {
	case String:
		return "string"
	case Real:
		return "real"
	case Int:
		return "int"
	case Decimal:
		return "decimal"
	default:
		return fmt.Sprintf("ArgType(%d)", int(t))
	}
}

var (
	// ErrBadArgCount indicates a registration with the wrong number of arguments
	ErrBadArgCount = errors.New("udf: wrong argument count")

	// ErrBadArgType indicates a registration with a wrongly typed argument
	ErrBadArgType = errors.New("udf: wrong argument type")

	// ErrUnknownFunction indicates a registration under an unknown name
	ErrUnknownFunction = errors.New("udf: unknown function")
)

// Arg is one argument of a single call. Bytes carries string-typed payloads,
// Int64 carries integer-typed ones, and Null marks an absent value. The host
// guarantees that the arguments of every call match the shape declared at
// registration.
type Arg struct {
	Type  ArgType
	Bytes []byte
	Int64 int64
	Null  bool
}

// Result is the outcome of a single call. Null set means the SQL NULL
// result; otherwise Bytes holds string results and Int64 integer results.
type Result struct {
	Bytes []byte
	Int64 int64
	Null  bool
}

// Function is a registered host function ready to be invoked.
type Function interface {
	// Call evaluates the function for one row of arguments. A returned
	// error is terminal for that call and carries no partial result.
	Call(args []Arg) (Result, error)
}

// IsUUID implements the is_uuid(string) host function.
type IsUUID struct{}

// NewIsUUID validates the registration shape for is_uuid: exactly one
// argument of any type.
func NewIsUUID(args []ArgType) (*IsUUID, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("is_uuid requires one argument: %w", ErrBadArgCount)
	}
	return &IsUUID{}, nil
}

// Call returns 1 if the argument is valid UUID text, 0 if it is malformed
// or not string-typed, and NULL if it is absent. It never fails.
func (*IsUUID) Call(args []Arg) (Result, error) {
	if args[0].Null {
		return Result{Null: true}, nil
	}
	if args[0].Type != String {
		return Result{}, nil
	}
	if uuidbin.IsUUID(string(args[0].Bytes)) {
		return Result{Int64: 1}, nil
	}
	return Result{}, nil
}

// UUIDToBin implements the uuid_to_bin(string[, swap]) host function.
type UUIDToBin struct {
	hasFlag bool
}

// NewUUIDToBin validates the registration shape for uuid_to_bin: one or two
// arguments, the first string-typed, the optional second integer-typed.
func NewUUIDToBin(args []ArgType) (*UUIDToBin, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, fmt.Errorf("uuid_to_bin requires either one or two arguments: %w", ErrBadArgCount)
	}
	if args[0] != String {
		return nil, fmt.Errorf("uuid_to_bin requires first argument as string, got %s: %w", args[0], ErrBadArgType)
	}
	if len(args) == 2 && args[1] != Int {
		return nil, fmt.Errorf("uuid_to_bin requires second argument as integer, got %s: %w", args[1], ErrBadArgType)
	}
	return &UUIDToBin{hasFlag: len(args) == 2}, nil
}

// Call returns the 16-byte binary form, NULL for an absent argument, or an
// error for malformed text. An absent swap flag defaults to false.
func (f *UUIDToBin) Call(args []Arg) (Result, error) {
	if args[0].Null {
		return Result{Null: true}, nil
	}
	uuid, err := uuidbin.UUIDToBin(string(args[0].Bytes), f.swap(args))
	if err != nil {
		return Result{}, err
	}
	return Result{Bytes: uuid.Bytes()}, nil
}

func (f *UUIDToBin) swap(args []Arg) bool {
	return f.hasFlag && len(args) > 1 && !args[1].Null && args[1].Int64 != 0
}

// BinToUUID implements the bin_to_uuid(binary[, swap]) host function.
type BinToUUID struct {
	hasFlag bool
}

// NewBinToUUID validates the registration shape for bin_to_uuid: one or two
// arguments, the first string-typed (binary values arrive as strings), the
// optional second integer-typed.
func NewBinToUUID(args []ArgType) (*BinToUUID, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, fmt.Errorf("bin_to_uuid requires either one or two arguments: %w", ErrBadArgCount)
	}
	if args[0] != String {
		return nil, fmt.Errorf("bin_to_uuid requires first argument as binary, got %s: %w", args[0], ErrBadArgType)
	}
	if len(args) == 2 && args[1] != Int {
		return nil, fmt.Errorf("bin_to_uuid requires second argument as integer, got %s: %w", args[1], ErrBadArgType)
	}
	return &BinToUUID{hasFlag: len(args) == 2}, nil
}

// Call returns the 36-byte canonical text form, NULL for an absent
// argument, or an error when the input is not exactly 16 bytes.
func (f *BinToUUID) Call(args []Arg) (Result, error) {
	if args[0].Null {
		return Result{Null: true}, nil
	}
	swap := f.hasFlag && len(args) > 1 && !args[1].Null && args[1].Int64 != 0
	text, err := uuidbin.BinToUUID(args[0].Bytes, swap)
	if err != nil {
		return Result{}, err
	}
	return Result{Bytes: []byte(text)}, nil
}

// constructors maps host function names to their registration validators,
// the moral equivalent of CREATE FUNCTION ... SONAME.
var constructors = map[string]func(args []ArgType) (Function, error){
	"is_uuid": func(args []ArgType) (Function, error) {
		f, err := NewIsUUID(args)
		if err != nil {
			return nil, err
		}
		return f, nil
	},
	"uuid_to_bin": func(args []ArgType) (Function, error) {
		f, err := NewUUIDToBin(args)
		if err != nil {
			return nil, err
		}
		return f, nil
	},
	"bin_to_uuid": func(args []ArgType) (Function, error) {
		f, err := NewBinToUUID(args)
		if err != nil {
			return nil, err
		}
		return f, nil
	},
}

// Register resolves a function by name (case-insensitive) and validates the
// declared argument shape. A non-nil error means the configuration was
// rejected and no function was installed; per-call failures cannot occur
// for shapes Register accepted.
func Register(name string, args []ArgType) (Function, error) {
	ctor, ok := constructors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrUnknownFunction)
	}
	return ctor(args)
}
