// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/invowk/argkit/internal/config"
	"github.com/invowk/argkit/pkg/argparse"
	"github.com/invowk/argkit/pkg/recognizer"
)

// inspectOptions declares one option per value converter.
var inspectOptions = argparse.MustBundle(func(b *argparse.BundleBuilder) {
	b.AddFunc(func(a *argparse.ArgumentBuilder) {
		a.Key("mode")
		a.Default("inspect")
	})
	b.AddFunc(func(a *argparse.ArgumentBuilder) {
		a.Key("size")
		a.Default(1024)
		a.On("-s", "--size=N", "Buffer size in bytes (default "+argparse.DefaultPlaceholder+")")
		a.Convert(recognizer.Int)
	})
	b.AddFunc(func(a *argparse.ArgumentBuilder) {
		a.Key("ratio")
		a.Default(1.0)
		a.On("--ratio=R", "Compression ratio")
		a.Convert(recognizer.Float)
	})
	b.AddFunc(func(a *argparse.ArgumentBuilder) {
		a.Key("tags")
		a.Default([]string{})
		a.On("-t", "--tags=LIST", "Comma separated tags")
		a.Convert(recognizer.List)
	})
	b.AddFunc(func(a *argparse.ArgumentBuilder) {
		a.Key("timeout")
		a.Default(30 * time.Second)
		a.On("--timeout=DURATION", "Give up after this long", "(default "+argparse.DefaultPlaceholder+")")
		a.Convert(recognizer.Duration)
	})
	b.AddFunc(func(a *argparse.ArgumentBuilder) {
		a.Key("dry_run")
		a.Default(false)
		a.On("-n", "--dry-run", "Only show what would happen")
	})
})

// destination is declared required and relaxed to optional below.
var destination = argparse.MustArgument(func(a *argparse.ArgumentBuilder) {
	a.Key("dest")
	a.RequiredOperand(argparse.WithHelpName("destination"))
})

func newInspectCommand(app *App) *cobra.Command {
	return newArgCommand(app, "inspect [options] <source> [<destination>] [<extra>...]",
		"Show every parsed value and its type", declareInspect, runInspect)
}

// declareInspect declares the operands before the options on purpose: the
// parser consumes required operands first whatever the declaration order.
func declareInspect(p *argparse.Parser, _ *config.Config) error {
	p.Banner("Show how each kind of argument is parsed")

	dest, err := destination.Optional()
	if err != nil {
		return err
	}
	operands := []*argparse.Argument{
		argparse.MustArgument(func(a *argparse.ArgumentBuilder) {
			a.Key("extra")
			a.SplatOperand()
		}),
		dest,
		argparse.MustArgument(func(a *argparse.ArgumentBuilder) {
			a.Key("source")
			a.RequiredOperand()
		}),
	}
	for _, arg := range operands {
		if err := p.Add(arg); err != nil {
			return err
		}
	}

	if err := p.Add(commonOptions); err != nil {
		return err
	}
	if err := p.Add(inspectOptions); err != nil {
		return err
	}
	p.Footer("Values are listed in parse order.")
	return nil
}

func runInspect(app *App, values *argparse.Values, _ []string) error {
	quiet, err := values.Bool("quiet")
	if err != nil {
		return err
	}
	if quiet {
		return nil
	}

	fmt.Fprintln(app.stdout, renderValues(values))
	return nil
}

// renderValues lays out key, value and Go type of every value as a table.
func renderValues(values *argparse.Values) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtitleStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers("KEY", "VALUE", "TYPE")

	for _, key := range values.Keys() {
		v, _ := values.Lookup(key)
		t.Row(key, formatValue(v), fmt.Sprintf("%T", v))
	}
	return t.Render()
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "(unset)"
	case []string:
		return "[" + strings.Join(v, " ") + "]"
	default:
		return fmt.Sprint(v)
	}
}
