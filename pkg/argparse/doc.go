// SPDX-License-Identifier: MPL-2.0

// Package argparse composes command-line arguments out of small, reusable
// declarations and resolves them against a token slice.
//
// An Argument is one declared unit: banner text, separator text, a constant,
// a flag or value option, a required, optional or splat (variadic) operand,
// or nothing at all. Arguments are produced by an ArgumentBuilder and can be
// grouped into bundles with a BundleBuilder; a bundle behaves like a single
// Argument and flattens into its members when added to a Parser.
//
//	verbose := argparse.MustArgument(func(b *argparse.ArgumentBuilder) {
//		b.Key("verbose")
//		b.On("-v", "--verbose", "Print extra output")
//	})
//
//	p := argparse.New(argparse.WithProgram("copy"))
//	p.Banner("Copy files somewhere else")
//	_ = p.Add(verbose)
//	_ = p.AddFunc(func(b *argparse.ArgumentBuilder) {
//		b.Key("size")
//		b.Default(1024)
//		b.On("--size=N", "Size in bytes (default _DEFAULT_)")
//		b.Convert(recognizer.Int)
//	})
//	_ = p.AddFunc(func(b *argparse.ArgumentBuilder) {
//		b.Key("sources")
//		b.SplatOperand()
//	})
//	_ = p.AddFunc(func(b *argparse.ArgumentBuilder) {
//		b.Key("destination")
//		b.RequiredOperand()
//	})
//
//	argv := os.Args[1:]
//	values, err := p.Parse(&argv)
//
// Parse resets every argument to its default, lets the flag recognizer
// consume flag tokens, then hands the remaining tokens to the operands:
// required operands first, then optional ones, then the splat operand, each
// class in declaration order. Leftover tokens are an error unless the parser
// allows unparsed operands, in which case they remain in argv.
//
// A Parser copies every argument it is given, so one Argument or bundle can
// be added to many parsers without values leaking between them.
//
// # Errors
//
// Declaration mistakes (duplicate keys, an option that is also an operand, a
// value without a key, ...) are reported as *BuildError and match ErrBuild.
// Problems with the user's input are reported by Parse as *ParseError and
// match ErrParse. A request for help (-h or --help) is reported as ErrHelp;
// Help renders the text to show.
package argparse
