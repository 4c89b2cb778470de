// SPDX-License-Identifier: MPL-2.0

package recognizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var (
	// ErrHelp is returned by Parse when -h or --help is given and no
	// registered flag claims it.
	ErrHelp = pflag.ErrHelp

	// ErrInvalidSpec is the sentinel wrapped by InvalidSpecError.
	ErrInvalidSpec = errors.New("invalid flag spec")

	// ErrDuplicateFlag is returned by On when a short or long name is
	// registered twice on the same recognizer.
	ErrDuplicateFlag = errors.New("duplicate flag")
)

type (
	// Callback receives the converted value of a matched flag. Switches
	// receive a bool.
	Callback func(value any) error

	// Recognizer matches flag tokens against registered specs.
	Recognizer interface {
		// Banner returns the current banner, initially the recognizer's own
		// "Usage: <program> [options]" line.
		Banner() string
		// SetBanner replaces the banner shown at the top of Help.
		SetBanner(banner string)
		// AddTrailer appends a line shown after the flag summary in Help.
		AddTrailer(line string)
		// On registers a flag and the callback invoked when it matches.
		On(spec Spec, fn Callback) error
		// Parse removes every consumed flag (and its value) from argv,
		// invoking callbacks as flags match. Operands are kept in order.
		Parse(argv *[]string) error
		// Help renders the banner, the flag summary and the trailer lines.
		Help() string
	}

	// Spec describes one flag registration.
	Spec struct {
		// Short is the single-character short name, without the dash.
		Short string
		// Long is the long name, without the leading dashes.
		Long string
		// Arg is the value placeholder; empty for switches.
		Arg string
		// Description holds the help text, one entry per line.
		Description []string
		// Convert turns the raw token into the value passed to the
		// callback. Nil means String.
		Convert Converter
	}

	// InvalidSpecError reports flag spec tokens that cannot be registered.
	// It wraps ErrInvalidSpec for errors.Is() compatibility.
	InvalidSpecError struct {
		Tokens []string
		Reason string
	}
)

// Error implements the error interface for InvalidSpecError.
func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid flag spec %q: %s", e.Tokens, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidSpecError) Unwrap() error {
	return ErrInvalidSpec
}

// ParseSpec builds a Spec from option tokens such as "-f", "--foo=VALUE" and
// free-form description lines.
func ParseSpec(tokens []string) (Spec, error) {
	var spec Spec
	invalid := func(reason string) (Spec, error) {
		return Spec{}, &InvalidSpecError{Tokens: tokens, Reason: reason}
	}

	for _, tok := range tokens {
		switch {
		case strings.HasPrefix(tok, "--") && len(tok) > 2:
			if spec.Long != "" {
				return invalid("more than one long name")
			}
			name, arg := splitArg(tok[2:], "= ")
			if name == "" || strings.ContainsAny(name, " \t") {
				return invalid(fmt.Sprintf("malformed long name %q", tok))
			}
			spec.Long = name
			if arg != "" {
				spec.Arg = arg
			}
		case strings.HasPrefix(tok, "-") && len(tok) > 1 && tok[1] != '-':
			if spec.Short != "" {
				return invalid("more than one short name")
			}
			spec.Short = tok[1:2]
			if spec.Short == "=" || spec.Short == " " {
				return invalid(fmt.Sprintf("malformed short name %q", tok))
			}
			if arg := strings.TrimSpace(tok[2:]); arg != "" && spec.Arg == "" {
				spec.Arg = arg
			}
		default:
			spec.Description = append(spec.Description, tok)
		}
	}

	if spec.Short == "" && spec.Long == "" {
		return invalid("no short or long name")
	}
	return spec, nil
}

// splitArg cuts s at the first of the separator characters.
func splitArg(s, seps string) (name, arg string) {
	i := strings.IndexAny(s, seps)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}

// IsSwitch reports whether the flag takes no value.
func (s Spec) IsSwitch() bool {
	return s.Arg == ""
}

// Name returns the name the flag is registered under: the long name when
// present, otherwise the short one.
func (s Spec) Name() string {
	if s.Long != "" {
		return s.Long
	}
	return s.Short
}

// Summary returns the left-hand column of the help line, e.g.
// "-f, --foo=VALUE" or "    --foo".
func (s Spec) Summary() string {
	var b strings.Builder
	switch {
	case s.Short != "" && s.Long != "":
		b.WriteString("-" + s.Short + ", ")
	case s.Short != "":
		b.WriteString("-" + s.Short)
		if !s.IsSwitch() {
			b.WriteString(" " + s.Arg)
		}
		return b.String()
	default:
		b.WriteString("    ")
	}
	b.WriteString("--" + s.Long)
	if !s.IsSwitch() {
		b.WriteString("=" + s.Arg)
	}
	return b.String()
}
