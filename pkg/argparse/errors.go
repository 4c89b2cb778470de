// SPDX-License-Identifier: MPL-2.0

package argparse

import (
	"errors"
	"fmt"

	"github.com/invowk/argkit/pkg/recognizer"
)

const (
	// BuildErrDuplicateKey indicates a key already present in the parser.
	BuildErrDuplicateKey BuildErrType = iota
	// BuildErrDuplicateFlag indicates a short or long flag name already
	// registered by another option in the parser.
	BuildErrDuplicateFlag
	// BuildErrOptionAndOperand indicates a declaration with both a flag spec
	// and an operand cardinality.
	BuildErrOptionAndOperand
	// BuildErrOperandRedeclared indicates a second cardinality declaration.
	BuildErrOperandRedeclared
	// BuildErrMissingKey indicates a value-bearing declaration without a key.
	BuildErrMissingKey
	// BuildErrInvalidKey indicates a key that is empty or contains spaces.
	BuildErrInvalidKey
	// BuildErrNeedOne indicates an add call given neither an argument nor a
	// build function.
	BuildErrNeedOne
	// BuildErrNotConvertible indicates Optional or Required on an argument
	// that is not a required or optional operand.
	BuildErrNotConvertible
	// BuildErrInvalidSpec indicates flag spec tokens the recognizer rejects.
	BuildErrInvalidSpec
)

const (
	// ParseErrMissingOperand indicates a required operand with no token left.
	ParseErrMissingOperand ParseErrType = iota
	// ParseErrNeedlessArgument indicates tokens left over after all operands
	// were satisfied.
	ParseErrNeedlessArgument
	// ParseErrInvalidFlag indicates an unknown flag, a flag missing its
	// value, or a value the flag's converter rejected.
	ParseErrInvalidFlag
)

var (
	// ErrBuild is the sentinel wrapped by BuildError.
	ErrBuild = errors.New("argument build error")

	// ErrParse is the sentinel wrapped by ParseError.
	ErrParse = errors.New("argument parse error")

	// ErrUnknownKey is the sentinel wrapped by UnknownKeyError.
	ErrUnknownKey = errors.New("unknown argument key")

	// ErrHelp is returned by Parse when help was requested.
	ErrHelp = recognizer.ErrHelp
)

type (
	// BuildErrType classifies a BuildError.
	BuildErrType int

	// ParseErrType classifies a ParseError.
	ParseErrType int

	// BuildError reports an invalid argument declaration. It is a programming
	// error and is returned eagerly by builders and Parser.Add.
	BuildError struct {
		Type BuildErrType
		// Key is the offending key, when there is one.
		Key string
		// Kind is the argument kind involved in a failed conversion.
		Kind Kind
		// Detail names the conflicting flag for BuildErrDuplicateFlag.
		Detail string
		// Err is the underlying cause, e.g. a *recognizer.InvalidSpecError.
		Err error
	}

	// ParseError reports input that does not match the declared arguments.
	ParseError struct {
		Type ParseErrType
		// Token is the operand notation for a missing operand, or the first
		// leftover token for a needless argument.
		Token string
		// Err is the recognizer's error for ParseErrInvalidFlag.
		Err error
	}

	// UnknownKeyError is returned when a key was never registered.
	UnknownKeyError struct {
		Key string
	}
)

// String returns a short name for the build error type.
func (t BuildErrType) String() string {
	switch t {
	case BuildErrDuplicateKey:
		return "duplicate key"
	case BuildErrDuplicateFlag:
		return "duplicate flag"
	case BuildErrOptionAndOperand:
		return "option and operand"
	case BuildErrOperandRedeclared:
		return "operand redeclared"
	case BuildErrMissingKey:
		return "missing key"
	case BuildErrInvalidKey:
		return "invalid key"
	case BuildErrNeedOne:
		return "need exactly one"
	case BuildErrNotConvertible:
		return "not convertible"
	case BuildErrInvalidSpec:
		return "invalid flag spec"
	default:
		return fmt.Sprintf("BuildErrType(%d)", int(t))
	}
}

// Error implements the error interface for BuildError.
func (e *BuildError) Error() string {
	switch e.Type {
	case BuildErrDuplicateKey:
		return fmt.Sprintf("duplicate key %s", e.Key)
	case BuildErrDuplicateFlag:
		return fmt.Sprintf("duplicate flag %s (key %s)", e.Detail, e.Key)
	case BuildErrOptionAndOperand:
		return "argument cannot be both an option and an operand"
	case BuildErrOperandRedeclared:
		return "argument is already an operand"
	case BuildErrMissingKey:
		return "argument with value requires a key"
	case BuildErrInvalidKey:
		return fmt.Sprintf("invalid key %q", e.Key)
	case BuildErrNeedOne:
		return "need exactly one of argument and build function"
	case BuildErrNotConvertible:
		return fmt.Sprintf("cannot convert %s argument to %s", e.Kind, e.Detail)
	case BuildErrInvalidSpec:
		return fmt.Sprintf("key %s: %v", e.Key, e.Err)
	default:
		return "argument build error"
	}
}

// Unwrap returns ErrBuild and, when present, the underlying cause.
func (e *BuildError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrBuild, e.Err}
	}
	return []error{ErrBuild}
}

// String returns a short name for the parse error type.
func (t ParseErrType) String() string {
	switch t {
	case ParseErrMissingOperand:
		return "missing argument"
	case ParseErrNeedlessArgument:
		return "needless argument"
	case ParseErrInvalidFlag:
		return "invalid option"
	default:
		return fmt.Sprintf("ParseErrType(%d)", int(t))
	}
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	switch e.Type {
	case ParseErrMissingOperand, ParseErrNeedlessArgument:
		return e.Type.String() + ": " + e.Token
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return e.Type.String()
	}
}

// Unwrap returns ErrParse and, when present, the recognizer's error.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}

// Error implements the error interface for UnknownKeyError.
func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("key not found: %s", e.Key)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *UnknownKeyError) Unwrap() error {
	return ErrUnknownKey
}
