// SPDX-License-Identifier: MPL-2.0

package argparse

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/invowk/argkit/pkg/recognizer"
	"github.com/invowk/argkit/pkg/stablesort"
)

// Parser holds an ordered list of arguments and parses command lines
// against them. A Parser is not safe for concurrent use.
type Parser struct {
	arguments     []*Argument
	allowUnparsed bool
	program       string
	newRecognizer RecognizerFactory
	logger        *log.Logger
}

// New returns an empty parser.
func New(opts ...Option) *Parser {
	p := &Parser{
		program:       filepath.Base(os.Args[0]),
		newRecognizer: defaultRecognizer,
		logger:        log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// BuildParser creates a parser with opts and runs fn to populate it. The
// first error fn returns aborts the build.
func BuildParser(fn func(*Parser) error, opts ...Option) (*Parser, error) {
	p := New(opts...)
	if fn != nil {
		if err := fn(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Program returns the program name used in the usage line.
func (p *Parser) Program() string { return p.program }

// SetAllowUnparsedOperands changes whether leftover tokens are tolerated.
func (p *Parser) SetAllowUnparsedOperands(allow bool) { p.allowUnparsed = allow }

// AllowsUnparsedOperands reports whether leftover tokens are tolerated.
func (p *Parser) AllowsUnparsedOperands() bool { return p.allowUnparsed }

// Add flattens arg and appends copies of its leaves. It fails, adding
// nothing, if any leaf's key or flag name is already in use, including by
// another leaf of the same bundle.
func (p *Parser) Add(arg *Argument) error {
	if arg == nil {
		return &BuildError{Type: BuildErrNeedOne}
	}

	leaves := arg.Flatten()
	keys := make(map[string]bool)
	flags := make(map[string]bool)
	for _, a := range p.arguments {
		if a.HasKey() {
			keys[a.key] = true
		}
		markFlags(flags, a)
	}
	for _, a := range leaves {
		if a.HasKey() {
			if keys[a.key] {
				return &BuildError{Type: BuildErrDuplicateKey, Key: a.key}
			}
			keys[a.key] = true
		}
		if name := conflictingFlag(flags, a); name != "" {
			return &BuildError{Type: BuildErrDuplicateFlag, Key: a.key, Detail: name}
		}
		markFlags(flags, a)
	}

	for _, a := range leaves {
		p.arguments = append(p.arguments, a.clone())
	}
	return nil
}

// AddFunc builds an argument from fn and adds it.
func (p *Parser) AddFunc(fn func(*ArgumentBuilder)) error {
	if fn == nil {
		return &BuildError{Type: BuildErrNeedOne}
	}
	arg, err := BuildArgument(fn)
	if err != nil {
		return err
	}
	return p.Add(arg)
}

// Banner adds a line shown above the usage line.
func (p *Parser) Banner(line string) {
	p.arguments = append(p.arguments, newBanner(line))
}

// Separator adds a line shown after the flag summary.
func (p *Parser) Separator(line string) {
	p.arguments = append(p.arguments, newSeparator(line))
}

// Footer is an alias for Separator.
func (p *Parser) Footer(line string) {
	p.Separator(line)
}

// Reset restores every value to its default and moves operands into
// consumption order: required, optional, then splat, each class keeping
// the order it was added in.
func (p *Parser) Reset() {
	for _, a := range p.arguments {
		a.Reset()
	}
	p.reorder()
}

func (p *Parser) reorder() {
	stablesort.By(p.arguments, (*Argument).operandClass)
}

// Parse resets the parser, consumes flags and then operands from argv, and
// returns the resulting values. On success argv holds whatever was left
// unparsed, which is empty unless unparsed operands are allowed.
//
// Help requests are reported as ErrHelp. Unknown flags, missing flag values
// and rejected conversions are reported as a *ParseError of type
// ParseErrInvalidFlag.
func (p *Parser) Parse(argv *[]string) (*Values, error) {
	if argv == nil {
		argv = &[]string{}
	}
	p.logger.Debug("Parsing arguments", "program", p.program, "argv", *argv)
	p.Reset()
	p.logger.Debug("Reordered operands", "operands", strings.TrimSpace(p.usageLine("")))

	rec, err := p.recognizer()
	if err != nil {
		return nil, err
	}
	if err := rec.Parse(argv); err != nil {
		if errors.Is(err, recognizer.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, &ParseError{Type: ParseErrInvalidFlag, Err: err}
	}

	for _, a := range p.arguments {
		if err := a.ShiftOperand(argv); err != nil {
			return nil, err
		}
	}
	if len(*argv) > 0 && !p.allowUnparsed {
		return nil, &ParseError{Type: ParseErrNeedlessArgument, Token: (*argv)[0]}
	}

	values := p.Values()
	p.logger.Debug("Parsed arguments", "keys", values.Len(), "unparsed", len(*argv))
	return values, nil
}

// Help returns the help text: banner lines, the usage line with operand
// notations, the flag summary and separator lines.
func (p *Parser) Help() (string, error) {
	p.reorder()
	rec, err := p.recognizer()
	if err != nil {
		return "", err
	}
	return rec.Help(), nil
}

// Usage returns just the usage line, e.g. "Usage: cp [options] <src> <dst>".
func (p *Parser) Usage() string {
	p.reorder()
	return p.usageLine(p.newRecognizer(p.program).Banner())
}

// recognizer builds a recognizer configured with the parser's banner,
// flags and separators.
func (p *Parser) recognizer() (recognizer.Recognizer, error) {
	rec := p.newRecognizer(p.program)

	var banner []string
	for _, a := range p.arguments {
		banner = append(banner, a.BannerLines()...)
	}
	usage := p.usageLine(rec.Banner())
	if len(banner) > 0 {
		usage = strings.Join(banner, "\n") + "\n" + usage
	}
	rec.SetBanner(usage)

	for _, a := range p.arguments {
		if err := a.ApplyOption(rec); err != nil {
			return nil, &BuildError{Type: BuildErrDuplicateFlag, Key: a.Key(), Detail: a.spec.Name(), Err: err}
		}
	}
	for _, a := range p.arguments {
		for _, line := range a.SeparatorLines() {
			rec.AddTrailer(line)
		}
	}
	return rec, nil
}

func (p *Parser) usageLine(base string) string {
	notations := []string{base}
	for _, a := range p.arguments {
		if n, ok := a.OperandNotation(); ok {
			notations = append(notations, n)
		}
	}
	return strings.Join(notations, " ")
}

// Values returns a snapshot of every key and its current value.
func (p *Parser) Values() *Values {
	return newValues(p.arguments)
}

// Get returns the current value for key.
func (p *Parser) Get(key string) (any, error) {
	key = normalizeKey(key)
	for _, a := range p.arguments {
		if a.HasKey() && a.key == key {
			return a.value, nil
		}
	}
	return nil, &UnknownKeyError{Key: key}
}

// HasKey reports whether key is registered.
func (p *Parser) HasKey(key string) bool {
	_, err := p.Get(key)
	return err == nil
}

// Arguments returns the parser's leaf arguments in their current order.
func (p *Parser) Arguments() []*Argument {
	out := make([]*Argument, len(p.arguments))
	copy(out, p.arguments)
	return out
}

// markFlags records the short and long names of an option.
func markFlags(flags map[string]bool, a *Argument) {
	if a.kind != KindOption {
		return
	}
	if a.spec.Short != "" {
		flags["-"+a.spec.Short] = true
	}
	if a.spec.Long != "" {
		flags["--"+a.spec.Long] = true
	}
}

// conflictingFlag returns the first of a's flag names already in flags.
func conflictingFlag(flags map[string]bool, a *Argument) string {
	if a.kind != KindOption {
		return ""
	}
	if a.spec.Short != "" && flags["-"+a.spec.Short] {
		return "-" + a.spec.Short
	}
	if a.spec.Long != "" && flags["--"+a.spec.Long] {
		return "--" + a.spec.Long
	}
	return ""
}
