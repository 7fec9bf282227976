package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ryan-rushton/devtools/internal/app"
	"github.com/ryan-rushton/devtools/internal/config"
	"github.com/ryan-rushton/devtools/internal/logging"
	"github.com/ryan-rushton/devtools/internal/registry"
	"github.com/ryan-rushton/devtools/internal/scale"
)

var flags struct {
	config   string
	logFile  string
	logLevel string
	scale    float64
	tool     string
}

var rootCmd = &cobra.Command{
	Use:           "devtools",
	Short:         "Developer utilities in one terminal window",
	Long:          "devtools - a UUID generator, JSON beautifier and base64 converter behind a fuzzy launcher (ctrl+p)",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, closer, err := setup(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		log.Info("starting shell", "tool", cfg.DefaultTool, "scale", cfg.ScaleFactor)
		p := tea.NewProgram(app.New(cfg, log), tea.WithAltScreen(), tea.WithMouseAllMotion())
		_, err = p.Run()
		return err
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.config, "config", "", "config file (default ~/.config/devtools/config.yaml)")
	pf.StringVar(&flags.logFile, "log-file", "", "append logs to this file")
	pf.StringVar(&flags.logLevel, "log-level", "info", "debug, info, warn or error")

	rootCmd.Flags().Float64Var(&flags.scale, "scale", float64(scale.Default), "initial zoom factor (0.1 to 3.0)")
	rootCmd.Flags().StringVar(&flags.tool, "tool", "", "tool to open first, e.g. \"JSON Beautifier\"")
}

// setup loads the config, applies flag overrides and opens the log.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, io.Closer, error) {
	log, closer, err := logging.New(flags.logFile, flags.logLevel)
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err := config.Load(flags.config)
	if err != nil {
		closer.Close()
		return nil, nil, nil, err
	}
	for _, w := range cfg.Warnings {
		log.Warn("config", "warning", w)
	}

	if f := cmd.Flags().Lookup("scale"); f != nil && f.Changed {
		cfg.ScaleFactor = float64(scale.New(flags.scale))
	}
	if f := cmd.Flags().Lookup("tool"); f != nil && f.Changed {
		if _, ok := registry.Parse(flags.tool); !ok {
			closer.Close()
			return nil, nil, nil, fmt.Errorf("unknown tool %q", flags.tool)
		}
		cfg.DefaultTool = flags.tool
	}
	return cfg, log, closer, nil
}

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	rootCmd.Version = v
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
