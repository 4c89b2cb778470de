// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invowk/argkit/internal/config"
)

// newConfigCommand creates the `argkit config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect argkit configuration",
		Long: `Inspect argkit configuration.

Configuration is read from:
  - ` + config.ConfigFileName + "." + config.ConfigFileExt + ` in the working directory, or
  - the file named by ` + config.ConfigPathEnv + `
and every key can be overridden with an ` + config.EnvPrefix + `_<KEY> variable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var asCUE bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app, asCUE)
		},
	}
	showCmd.Flags().BoolVar(&asCUE, "cue", false, "print the configuration as CUE")
	cfgCmd.AddCommand(showCmd)

	return cfgCmd
}

func showConfig(ctx context.Context, app *App, asCUE bool) error {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{})
	if err != nil {
		return app.fail(ExitSetup, err, false)
	}

	if asCUE {
		fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
		return nil
	}

	fmt.Fprintln(app.stdout, TitleStyle.Render("Configuration"))
	if cfg.Source != "" {
		fmt.Fprintln(app.stdout, SubtitleStyle.Render("source: "+cfg.Source))
	} else {
		fmt.Fprintln(app.stdout, SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(app.stdout)

	rows := []struct {
		key   string
		value any
	}{
		{"program", cfg.Program},
		{"allow_unparsed", cfg.AllowUnparsed},
		{"verbose", cfg.Verbose},
		{"greeting", cfg.Greeting},
		{"default_args", cfg.DefaultArgs},
	}
	for _, r := range rows {
		fmt.Fprintf(app.stdout, "%s %s\n", KeyStyle.Render(r.key+":"), SuccessStyle.Render(fmt.Sprintf("%#v", r.value)))
	}
	return nil
}
