// SPDX-License-Identifier: MPL-2.0

package argparse

import (
	"fmt"
	"strings"

	"github.com/invowk/argkit/pkg/recognizer"
)

type (
	// ArgumentBuilder collects the declarations for one Argument. Use it
	// through BuildArgument, MustArgument or Parser.AddFunc.
	//
	// The declarations may be combined: banner and separator lines are
	// emitted first, followed by at most one value-bearing argument, which
	// is an option when On was called, an operand when an operand method was
	// called, and a constant when only Key or Default was.
	ArgumentBuilder struct {
		key       string
		keySet    bool
		def       any
		defSet    bool
		on        []string
		convert   recognizer.Converter
		handler   Handler
		operand   Kind
		helpName  string
		banner    []string
		separator []string
		err       error
	}

	// OperandOption configures an operand declaration.
	OperandOption func(*ArgumentBuilder)
)

// WithHelpName overrides the name shown in the operand's usage notation,
// which otherwise is the key with underscores replaced by spaces.
func WithHelpName(name string) OperandOption {
	return func(b *ArgumentBuilder) {
		b.helpName = name
	}
}

// BuildArgument runs fn against a fresh builder and returns the argument it
// describes.
func BuildArgument(fn func(*ArgumentBuilder)) (*Argument, error) {
	b := &ArgumentBuilder{}
	if fn != nil {
		fn(b)
	}
	return b.Argument()
}

// MustArgument is like BuildArgument but panics on error. It is meant for
// package-level argument declarations.
func MustArgument(fn func(*ArgumentBuilder)) *Argument {
	arg, err := BuildArgument(fn)
	if err != nil {
		panic(fmt.Sprintf("argparse: %v", err))
	}
	return arg
}

// Key sets the key the value is stored under. Surrounding whitespace is
// removed.
func (b *ArgumentBuilder) Key(key string) {
	b.key = normalizeKey(key)
	b.keySet = true
}

// Default sets the value the argument holds before parsing.
func (b *ArgumentBuilder) Default(v any) {
	b.def = v
	b.defSet = true
}

// On declares a flag. Tokens starting with "-" name the flag and its value
// placeholder ("-s", "--size=N", "--size N"); any other token is a line of
// help text. DefaultPlaceholder in any token is replaced by the default.
// Calling On again adds more tokens.
func (b *ArgumentBuilder) On(tokens ...string) {
	b.on = append(b.on, tokens...)
}

// Convert sets how the flag's raw value is converted. The default keeps the
// raw string.
func (b *ArgumentBuilder) Convert(c recognizer.Converter) {
	b.convert = c
}

// Handler sets how a parsed flag value is combined with the current value.
func (b *ArgumentBuilder) Handler(h Handler) {
	b.handler = h
}

// RequiredOperand declares an operand that must be present.
func (b *ArgumentBuilder) RequiredOperand(opts ...OperandOption) {
	b.declareOperand(KindRequired, opts)
}

// OptionalOperand declares an operand that may be absent.
func (b *ArgumentBuilder) OptionalOperand(opts ...OperandOption) {
	b.declareOperand(KindOptional, opts)
}

// SplatOperand declares an operand that takes all remaining tokens.
func (b *ArgumentBuilder) SplatOperand(opts ...OperandOption) {
	b.declareOperand(KindSplat, opts)
}

func (b *ArgumentBuilder) declareOperand(kind Kind, opts []OperandOption) {
	if b.operand != KindNull {
		b.fail(&BuildError{Type: BuildErrOperandRedeclared, Key: b.key})
		return
	}
	b.operand = kind
	for _, opt := range opts {
		opt(b)
	}
}

// Banner adds a line of text shown above the usage line.
func (b *ArgumentBuilder) Banner(line string) {
	b.banner = append(b.banner, line)
}

// Separator adds a line of text shown after the flag summary.
func (b *ArgumentBuilder) Separator(line string) {
	b.separator = append(b.separator, line)
}

// Footer is an alias for Separator.
func (b *ArgumentBuilder) Footer(line string) {
	b.Separator(line)
}

// fail records the first declaration error.
func (b *ArgumentBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Argument assembles the declarations into an argument. Several
// declarations yield a bundle, a single one yields that argument, and none
// yield a null argument.
func (b *ArgumentBuilder) Argument() (*Argument, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.on) > 0 && b.operand != KindNull {
		return nil, &BuildError{Type: BuildErrOptionAndOperand, Key: b.key}
	}

	var parts []*Argument
	if len(b.banner) > 0 {
		parts = append(parts, newBanner(b.banner...))
	}
	if len(b.separator) > 0 {
		parts = append(parts, newSeparator(b.separator...))
	}

	switch {
	case len(b.on) > 0:
		if err := b.requireKey(); err != nil {
			return nil, err
		}
		spec, err := recognizer.ParseSpec(substituteDefault(b.on, b.def))
		if err != nil {
			return nil, &BuildError{Type: BuildErrInvalidSpec, Key: b.key, Err: err}
		}
		spec.Convert = b.convert
		parts = append(parts, newOption(b.key, b.def, spec, b.handler))
	case b.operand != KindNull:
		if err := b.requireKey(); err != nil {
			return nil, err
		}
		parts = append(parts, newOperand(b.operand, b.key, b.def, b.helpName))
	case b.keySet || b.defSet:
		if err := b.requireKey(); err != nil {
			return nil, err
		}
		parts = append(parts, newConstant(b.key, b.def))
	}

	return newBundle(parts).simplify(), nil
}

func (b *ArgumentBuilder) requireKey() error {
	if !b.keySet {
		return &BuildError{Type: BuildErrMissingKey}
	}
	if b.key == "" || strings.ContainsAny(b.key, " \t\n") {
		return &BuildError{Type: BuildErrInvalidKey, Key: b.key}
	}
	return nil
}

// normalizeKey trims surrounding whitespace.
func normalizeKey(key string) string {
	return strings.TrimSpace(key)
}

// substituteDefault replaces DefaultPlaceholder in each token with def.
func substituteDefault(tokens []string, def any) []string {
	text := ""
	if def != nil {
		text = fmt.Sprint(def)
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = strings.ReplaceAll(tok, DefaultPlaceholder, text)
	}
	return out
}
