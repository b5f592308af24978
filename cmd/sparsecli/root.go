// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/orthosparse/internal/config"
	"github.com/katalvlaran/orthosparse/internal/render"
	"github.com/katalvlaran/orthosparse/internal/workspace"
	"github.com/katalvlaran/orthosparse/sparse"
	"github.com/katalvlaran/orthosparse/triplet"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath  string
	logLevel    string
	color       string
	allowNaNInf bool

	cfg *config.Config
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "sparsecli",
		Short: "`sparsecli` works with sparse matrices stored as triplet files",
		Long: "`sparsecli` works with sparse matrices stored as triplet files.\n\n" +
			"A triplet file starts with \"rows cols\" followed by one \"row col value\"\n" +
			"line per non-zero entry; indices are 1-based.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "path to a YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: error, warn, info or debug (overrides the config file)")
	pf.StringVar(&a.color, "color", "", "colour output: auto, always or never (overrides the config file)")
	pf.BoolVar(&a.allowNaNInf, "allow-naninf", false, "accept NaN and Inf values in input files")

	root.AddCommand(
		newPrintCmd(a),
		newSumCmd(a),
		newMultiplyCmd(a),
		newTransposeCmd(a),
		newSpyCmd(a),
		newShellCmd(a),
	)

	return root
}

// setup resolves the configuration (file, then flags) and configures logging.
func (a *app) setup(logOut io.Writer) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		lvl, err := config.ParseLoglevel(a.logLevel)
		if err != nil {
			return err
		}
		cfg.Log.Level = lvl
	}
	if a.color != "" {
		mode, err := config.ParseColorMode(a.color)
		if err != nil {
			return err
		}
		cfg.Display.Color = mode
	}
	if a.allowNaNInf {
		cfg.Workspace.AllowNaNInf = true
	}
	a.cfg = cfg
	a.log = newLogger(logOut, cfg.Log)

	return nil
}

func newLogger(out io.Writer, c config.Log) *logrus.Logger {
	l := logrus.New()
	l.Out = out
	l.SetLevel(logLevel(l, c.Level))
	switch c.Formatter {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	default:
		l.SetFormatter(&logrus.TextFormatter{TimestampFormat: time.RFC3339Nano})
	}

	return l
}

func logLevel(l *logrus.Logger, level config.Loglevel) logrus.Level {
	lvl, err := logrus.ParseLevel(string(level))
	if err != nil {
		l.Warnf("error parsing level %q: %v", level, err)
		lvl = logrus.InfoLevel
	}

	return lvl
}

// matrixOptions is the sparse policy implied by the configuration.
func (a *app) matrixOptions() []sparse.Option {
	return []sparse.Option{sparse.WithValidateNaNInf(!a.cfg.Workspace.AllowNaNInf)}
}

func (a *app) readMatrix(path string) (*sparse.Matrix, error) {
	p := a.cfg.ResolvePath(path)
	m, err := triplet.ReadFile(p, a.matrixOptions()...)
	if err != nil {
		return nil, err
	}
	a.log.WithFields(logrus.Fields{
		"path":  p,
		"rows":  m.Rows(),
		"cols":  m.Cols(),
		"cells": m.Len(),
	}).Debug("matrix read")

	return m, nil
}

// emit writes m as a triplet file when out is set, else prints the grid.
func (a *app) emit(cmd *cobra.Command, m *sparse.Matrix, out string) error {
	if out == "" {
		w := cmd.OutOrStdout()
		return render.New(a.cfg.Display.Color, w).Print(w, m)
	}
	if err := triplet.WriteFile(out, m); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{"path": out, "cells": m.Len()}).Info("matrix written")

	return nil
}

// newStore builds the workspace and loads the configured preload entries.
func (a *app) newStore(ctx context.Context) (*workspace.Store, error) {
	store := workspace.New(a.log, a.matrixOptions()...)
	entries := make([]workspace.Entry, 0, len(a.cfg.Workspace.Preload))
	for _, p := range a.cfg.Workspace.Preload {
		entries = append(entries, workspace.Entry{Name: p.Name, Path: a.cfg.ResolvePath(p.Path)})
	}
	if err := store.LoadAll(ctx, entries, a.cfg.Workspace.Parallelism); err != nil {
		return nil, fmt.Errorf("preload: %w", err)
	}

	return store, nil
}
