// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/invowk/argkit/internal/config"
	"github.com/invowk/argkit/pkg/argparse"
)

// commonOptions is shared by every argument command. Parsers copy it on Add,
// so one definition serves them all.
var commonOptions = argparse.MustBundle(func(b *argparse.BundleBuilder) {
	b.AddFunc(func(a *argparse.ArgumentBuilder) {
		a.Key("verbose")
		a.Default(0)
		a.On("-v", "--verbose", "Be verbose; repeat for more detail")
		a.Handler(func(current, _ any) any { return cast.ToInt(current) + 1 })
	})
	b.AddFunc(func(a *argparse.ArgumentBuilder) {
		a.Key("quiet")
		a.Default(false)
		a.On("-q", "--quiet", "Print nothing on success")
	})
})

// helloArgs is the decoded form of the hello command's values.
type helloArgs struct {
	Verbose  int    `arg:"verbose"`
	Quiet    bool   `arg:"quiet"`
	Greeting string `arg:"greeting"`
	Path     string `arg:"path"`
}

func newHelloCommand(app *App) *cobra.Command {
	return newArgCommand(app, "hello [options] <path>", "Greet a path", declareHello, runHello)
}

func declareHello(p *argparse.Parser, cfg *config.Config) error {
	p.Banner("A simple example")
	if err := p.Add(commonOptions); err != nil {
		return err
	}
	if err := p.AddFunc(func(a *argparse.ArgumentBuilder) {
		a.Key("greeting")
		a.Default(cfg.Greeting)
		a.On("-g", "--greeting=TEXT", "Greeting to use (default "+argparse.DefaultPlaceholder+")")
	}); err != nil {
		return err
	}
	if err := p.AddFunc(func(a *argparse.ArgumentBuilder) {
		a.Key("path")
		a.RequiredOperand()
	}); err != nil {
		return err
	}
	p.Separator("Some explanatory text at the bottom")
	return nil
}

func runHello(app *App, values *argparse.Values, rest []string) error {
	var args helloArgs
	if err := values.Decode(&args); err != nil {
		return err
	}
	if args.Verbose > 0 {
		fmt.Fprintf(app.stderr, "%s %d\n", KeyStyle.Render("verbosity:"), args.Verbose)
	}
	if len(rest) > 0 {
		fmt.Fprintf(app.stderr, "%s %s\n", WarningStyle.Render("ignored:"), strings.Join(rest, " "))
	}
	if args.Quiet {
		return nil
	}
	fmt.Fprintf(app.stdout, "%s, %s!\n", args.Greeting, args.Path)
	return nil
}
