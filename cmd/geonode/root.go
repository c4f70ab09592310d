package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/geonode"
	"github.com/gogpu/geonode/internal/config"
)

// app carries state shared by subcommands after the persistent pre-run.
type app struct {
	configPath string
	logLevel   string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "geonode",
		Short:         "Evaluate geometry nodes and export their output.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "node defaults file (yaml, toml or json)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	root.AddCommand(newCycloidCmd(a), newProjectCmd(a))
	return root
}

// init loads the config and installs the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	a.cfg = cfg

	geonode.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))
	geonode.Logger().Debug("geonode: config loaded", "path", a.configPath, "level", level.String())
	return nil
}

// floatsOr returns the flag values when the flag was set, def otherwise.
func floatsOr(cmd *cobra.Command, name string, vals []float64, def float64) []float64 {
	if cmd.Flags().Changed(name) {
		return vals
	}
	return []float64{def}
}

func checkFormat(format string) error {
	switch format {
	case "json", "geojson", "dxf", "png":
		return nil
	default:
		return fmt.Errorf("unknown format %q (want json, geojson, dxf or png)", format)
	}
}
