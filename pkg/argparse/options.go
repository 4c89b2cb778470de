// SPDX-License-Identifier: MPL-2.0

package argparse

import (
	"github.com/charmbracelet/log"

	"github.com/invowk/argkit/pkg/recognizer"
)

type (
	// Option configures a Parser.
	Option func(*Parser)

	// RecognizerFactory returns a fresh, empty recognizer for program.
	RecognizerFactory func(program string) recognizer.Recognizer
)

// WithProgram sets the program name shown in the usage line. It defaults to
// the base name of os.Args[0].
func WithProgram(name string) Option {
	return func(p *Parser) {
		p.program = name
	}
}

// WithLogger sets the logger used for debug output. A nil logger discards.
func WithLogger(l *log.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithRecognizer replaces the flag recognizer. The default is backed by
// spf13/pflag.
func WithRecognizer(f RecognizerFactory) Option {
	return func(p *Parser) {
		if f != nil {
			p.newRecognizer = f
		}
	}
}

// AllowUnparsedOperands sets whether tokens left over after all operands are
// satisfied are an error (the default) or are left in argv.
func AllowUnparsedOperands(allow bool) Option {
	return func(p *Parser) {
		p.allowUnparsed = allow
	}
}

func defaultRecognizer(program string) recognizer.Recognizer {
	return recognizer.NewPFlag(program)
}
