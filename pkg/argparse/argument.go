// SPDX-License-Identifier: MPL-2.0

package argparse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/invowk/argkit/pkg/recognizer"
)

// DefaultPlaceholder is replaced by the argument's default value in flag spec
// tokens, so help text can show it without repeating it.
const DefaultPlaceholder = "_DEFAULT_"

const (
	// KindNull contributes nothing.
	KindNull Kind = iota
	// KindBanner contributes banner lines only.
	KindBanner
	// KindSeparator contributes separator lines only.
	KindSeparator
	// KindConstant holds a keyed value that no input can change.
	KindConstant
	// KindOption is a keyed value set by a flag.
	KindOption
	// KindRequired is a keyed operand that must be present.
	KindRequired
	// KindOptional is a keyed operand that may be absent.
	KindOptional
	// KindSplat is a keyed operand that takes every remaining token.
	KindSplat
	// KindBundle groups other arguments.
	KindBundle
)

type (
	// Kind identifies the variant of an Argument.
	Kind uint8

	// Handler combines the value an option currently holds with the value
	// just parsed from its flag and returns the new value. The default
	// handler returns value.
	Handler func(current, value any) any

	// Argument is one declared unit of a command line. The zero value is a
	// null argument. Arguments are immutable in shape once built; only the
	// value of value-bearing kinds changes, and a Parser works on its own
	// copies.
	Argument struct {
		kind      Kind
		key       string
		def       any
		value     any
		helpName  string
		spec      recognizer.Spec
		handler   Handler
		banner    []string
		separator []string
		children  []*Argument
	}
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBanner:
		return "banner"
	case KindSeparator:
		return "separator"
	case KindConstant:
		return "constant"
	case KindOption:
		return "option"
	case KindRequired:
		return "required operand"
	case KindOptional:
		return "optional operand"
	case KindSplat:
		return "splat operand"
	case KindBundle:
		return "bundle"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// unknownKind is the panic value for a Kind outside the declared set.
func unknownKind(k Kind) string {
	return fmt.Sprintf("argparse: unknown argument kind %d", uint8(k))
}

func newBanner(lines ...string) *Argument {
	return &Argument{kind: KindBanner, banner: slices.Clone(lines)}
}

func newSeparator(lines ...string) *Argument {
	return &Argument{kind: KindSeparator, separator: slices.Clone(lines)}
}

func newConstant(key string, def any) *Argument {
	return &Argument{kind: KindConstant, key: key, def: def, value: def}
}

func newOption(key string, def any, spec recognizer.Spec, handler Handler) *Argument {
	if handler == nil {
		handler = replaceValue
	}
	return &Argument{kind: KindOption, key: key, def: def, value: def, spec: spec, handler: handler}
}

func newOperand(kind Kind, key string, def any, helpName string) *Argument {
	return &Argument{kind: kind, key: key, def: def, value: def, helpName: helpName}
}

func replaceValue(_, value any) any { return value }

// Kind returns the argument's variant.
func (a *Argument) Kind() Kind { return a.kind }

// Key returns the value key, or "" for kinds that hold no value.
func (a *Argument) Key() string {
	if a.HasKey() {
		return a.key
	}
	return ""
}

// HasKey reports whether the argument holds a keyed value.
func (a *Argument) HasKey() bool {
	switch a.kind {
	case KindConstant, KindOption, KindRequired, KindOptional, KindSplat:
		return true
	case KindNull, KindBanner, KindSeparator, KindBundle:
		return false
	default:
		panic(unknownKind(a.kind))
	}
}

// Default returns the value the argument resets to.
func (a *Argument) Default() any {
	if a.HasKey() {
		return a.def
	}
	return nil
}

// Value returns the current value, or nil for kinds that hold none.
func (a *Argument) Value() any {
	if a.HasKey() {
		return a.value
	}
	return nil
}

// BannerLines returns the lines the argument adds above the usage line.
func (a *Argument) BannerLines() []string {
	switch a.kind {
	case KindBanner:
		return slices.Clone(a.banner)
	case KindBundle:
		var lines []string
		for _, c := range a.children {
			lines = append(lines, c.BannerLines()...)
		}
		return lines
	case KindNull, KindSeparator, KindConstant, KindOption, KindRequired, KindOptional, KindSplat:
		return nil
	default:
		panic(unknownKind(a.kind))
	}
}

// SeparatorLines returns the lines the argument adds after the flag summary.
func (a *Argument) SeparatorLines() []string {
	switch a.kind {
	case KindSeparator:
		return slices.Clone(a.separator)
	case KindBundle:
		var lines []string
		for _, c := range a.children {
			lines = append(lines, c.SeparatorLines()...)
		}
		return lines
	case KindNull, KindBanner, KindConstant, KindOption, KindRequired, KindOptional, KindSplat:
		return nil
	default:
		panic(unknownKind(a.kind))
	}
}

// Reset sets every value in the argument back to its default.
func (a *Argument) Reset() {
	switch a.kind {
	case KindConstant, KindOption, KindRequired, KindOptional, KindSplat:
		a.value = a.def
	case KindBundle:
		for _, c := range a.children {
			c.Reset()
		}
	case KindNull, KindBanner, KindSeparator:
	default:
		panic(unknownKind(a.kind))
	}
}

// ApplyOption registers the argument's flags with r. The registered
// callbacks update the argument's value through its handler.
func (a *Argument) ApplyOption(r recognizer.Recognizer) error {
	switch a.kind {
	case KindOption:
		return r.On(a.spec, func(v any) error {
			a.value = a.handler(a.value, v)
			return nil
		})
	case KindBundle:
		for _, c := range a.children {
			if err := c.ApplyOption(r); err != nil {
				return err
			}
		}
		return nil
	case KindNull, KindBanner, KindSeparator, KindConstant, KindRequired, KindOptional, KindSplat:
		return nil
	default:
		panic(unknownKind(a.kind))
	}
}

// ShiftOperand consumes the tokens the argument is entitled to from the front
// of argv.
func (a *Argument) ShiftOperand(argv *[]string) error {
	switch a.kind {
	case KindRequired:
		if len(*argv) == 0 {
			notation, _ := a.OperandNotation()
			return &ParseError{Type: ParseErrMissingOperand, Token: notation}
		}
		a.value = (*argv)[0]
		*argv = (*argv)[1:]
		return nil
	case KindOptional:
		if len(*argv) > 0 {
			a.value = (*argv)[0]
			*argv = (*argv)[1:]
		}
		return nil
	case KindSplat:
		rest := make([]string, len(*argv))
		copy(rest, *argv)
		a.value = rest
		*argv = (*argv)[:0]
		return nil
	case KindBundle:
		for _, c := range a.children {
			if err := c.ShiftOperand(argv); err != nil {
				return err
			}
		}
		return nil
	case KindNull, KindBanner, KindSeparator, KindConstant, KindOption:
		return nil
	default:
		panic(unknownKind(a.kind))
	}
}

// OperandNotation returns the usage notation of an operand: "<name>",
// "[<name>]" or "[<name>...]". The second result is false for kinds that are
// not operands.
func (a *Argument) OperandNotation() (string, bool) {
	switch a.kind {
	case KindRequired:
		return "<" + a.displayName() + ">", true
	case KindOptional:
		return "[<" + a.displayName() + ">]", true
	case KindSplat:
		return "[<" + a.displayName() + ">...]", true
	case KindNull, KindBanner, KindSeparator, KindConstant, KindOption, KindBundle:
		return "", false
	default:
		panic(unknownKind(a.kind))
	}
}

// displayName is the help name, or the key with underscores as spaces.
func (a *Argument) displayName() string {
	if a.helpName != "" {
		return a.helpName
	}
	return strings.ReplaceAll(a.key, "_", " ")
}

// Flatten returns the leaf arguments in declaration order. A bundle yields
// its members recursively; every other kind yields itself.
func (a *Argument) Flatten() []*Argument {
	switch a.kind {
	case KindBundle:
		var leaves []*Argument
		for _, c := range a.children {
			leaves = append(leaves, c.Flatten()...)
		}
		return leaves
	case KindNull, KindBanner, KindSeparator, KindConstant, KindOption, KindRequired, KindOptional, KindSplat:
		return []*Argument{a}
	default:
		panic(unknownKind(a.kind))
	}
}

// Optional returns an optional operand with the same key, default and help
// name. It fails for kinds other than required and optional operands.
func (a *Argument) Optional() (*Argument, error) {
	switch a.kind {
	case KindRequired, KindOptional:
		return newOperand(KindOptional, a.key, a.def, a.helpName), nil
	case KindNull, KindBanner, KindSeparator, KindConstant, KindOption, KindSplat, KindBundle:
		return nil, &BuildError{Type: BuildErrNotConvertible, Key: a.Key(), Kind: a.kind, Detail: KindOptional.String()}
	default:
		panic(unknownKind(a.kind))
	}
}

// Required returns a required operand with the same key, default and help
// name. It fails for kinds other than required and optional operands.
func (a *Argument) Required() (*Argument, error) {
	switch a.kind {
	case KindRequired, KindOptional:
		return newOperand(KindRequired, a.key, a.def, a.helpName), nil
	case KindNull, KindBanner, KindSeparator, KindConstant, KindOption, KindSplat, KindBundle:
		return nil, &BuildError{Type: BuildErrNotConvertible, Key: a.Key(), Kind: a.kind, Detail: KindRequired.String()}
	default:
		panic(unknownKind(a.kind))
	}
}

// operandClass orders operands for consumption: required, then optional,
// then splat. Everything else sorts first.
func (a *Argument) operandClass() int {
	switch a.kind {
	case KindRequired:
		return 1
	case KindOptional:
		return 2
	case KindSplat:
		return 3
	case KindNull, KindBanner, KindSeparator, KindConstant, KindOption, KindBundle:
		return 0
	default:
		panic(unknownKind(a.kind))
	}
}

// clone returns a deep copy sharing nothing mutable with a.
func (a *Argument) clone() *Argument {
	c := *a
	c.banner = slices.Clone(a.banner)
	c.separator = slices.Clone(a.separator)
	c.spec.Description = slices.Clone(a.spec.Description)
	if a.children != nil {
		c.children = make([]*Argument, len(a.children))
		for i, child := range a.children {
			c.children[i] = child.clone()
		}
	}
	return &c
}
