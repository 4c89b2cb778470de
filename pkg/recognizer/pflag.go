// SPDX-License-Identifier: MPL-2.0

package recognizer

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
)

const (
	summaryIndent = "    "
	summaryWidth  = 32
)

type (
	// PFlag is a Recognizer backed by a pflag.FlagSet. Create a new one for
	// every parse; registrations cannot be removed.
	PFlag struct {
		program  string
		banner   string
		trailers []string
		specs    []Spec
		fs       *pflag.FlagSet
	}

	// callbackValue adapts a Callback to pflag.Value.
	callbackValue struct {
		spec Spec
		fn   Callback
		raw  string
	}
)

// NewPFlag returns an empty recognizer whose banner is
// "Usage: <program> [options]".
func NewPFlag(program string) *PFlag {
	fs := pflag.NewFlagSet(program, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false

	return &PFlag{
		program: program,
		banner:  fmt.Sprintf("Usage: %s [options]", program),
		fs:      fs,
	}
}

// Banner returns the current banner.
func (r *PFlag) Banner() string { return r.banner }

// SetBanner replaces the banner.
func (r *PFlag) SetBanner(banner string) { r.banner = banner }

// AddTrailer appends a line printed after the flag summary.
func (r *PFlag) AddTrailer(line string) { r.trailers = append(r.trailers, line) }

// On registers spec. Switches are registered with pflag's NoOptDefVal so that
// "-v", "--verbose" and grouped "-vv" all invoke fn.
func (r *PFlag) On(spec Spec, fn Callback) error {
	name := spec.Name()
	if name == "" {
		return &InvalidSpecError{Reason: "no short or long name"}
	}
	if r.fs.Lookup(name) != nil {
		return fmt.Errorf("%w: --%s", ErrDuplicateFlag, name)
	}
	if spec.Short != "" && r.fs.ShorthandLookup(spec.Short) != nil {
		return fmt.Errorf("%w: -%s", ErrDuplicateFlag, spec.Short)
	}

	value := &callbackValue{spec: spec, fn: fn}
	flag := r.fs.VarPF(value, name, spec.Short, strings.Join(spec.Description, " "))
	if spec.IsSwitch() {
		flag.NoOptDefVal = "true"
	}
	r.specs = append(r.specs, spec)
	return nil
}

// Parse consumes flags from argv. On success argv holds only the operands,
// including everything after a "--" terminator.
func (r *PFlag) Parse(argv *[]string) error {
	if err := r.fs.Parse(*argv); err != nil {
		return err
	}
	remaining := slices.Clone(r.fs.Args())
	*argv = append((*argv)[:0], remaining...)
	return nil
}

// Help renders the banner, one summary line per flag and the trailers.
func (r *PFlag) Help() string {
	var b strings.Builder
	b.WriteString(r.banner)
	b.WriteString("\n")

	pad := strings.Repeat(" ", len(summaryIndent)+summaryWidth+1)
	for _, spec := range r.specs {
		left := summaryIndent + spec.Summary()
		desc := spec.Description
		if len(desc) == 0 {
			b.WriteString(left + "\n")
			continue
		}
		if len(spec.Summary()) > summaryWidth {
			b.WriteString(left + "\n")
		} else {
			b.WriteString(fmt.Sprintf("%-*s %s\n", len(summaryIndent)+summaryWidth, left, desc[0]))
			desc = desc[1:]
		}
		for _, line := range desc {
			b.WriteString(pad + line + "\n")
		}
	}

	for _, line := range r.trailers {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// String returns the last raw value set.
func (v *callbackValue) String() string { return v.raw }

// Type names the value kind shown by pflag.
func (v *callbackValue) Type() string {
	if v.spec.IsSwitch() {
		return "bool"
	}
	return "string"
}

// Set converts raw and invokes the callback.
func (v *callbackValue) Set(raw string) error {
	v.raw = raw
	if v.spec.IsSwitch() {
		on, err := cast.ToBoolE(raw)
		if err != nil {
			return err
		}
		return v.fn(on)
	}
	value, err := v.spec.Convert.convert(raw)
	if err != nil {
		return err
	}
	return v.fn(value)
}

var _ Recognizer = (*PFlag)(nil)
