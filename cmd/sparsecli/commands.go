// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/orthosparse/internal/render"
	"github.com/katalvlaran/orthosparse/internal/shell"
	"github.com/katalvlaran/orthosparse/internal/spy"
	"github.com/katalvlaran/orthosparse/sparse"
)

func newPrintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>",
		Short: "`print` shows a matrix as a full grid, zeros included",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.readMatrix(args[0])
			if err != nil {
				return err
			}

			return a.emit(cmd, m, "")
		},
	}
}

// newBinaryCmd builds a two-operand command around op.
func newBinaryCmd(a *app, use, short string, op func(x, y *sparse.Matrix) (*sparse.Matrix, error)) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   use + " <a> <b>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.readMatrix(args[0])
			if err != nil {
				return err
			}
			y, err := a.readMatrix(args[1])
			if err != nil {
				return err
			}
			res, err := op(x, y)
			if err != nil {
				return err
			}

			return a.emit(cmd, res, out)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the result to this triplet file instead of printing it")

	return cmd
}

func newSumCmd(a *app) *cobra.Command {
	return newBinaryCmd(a, "sum", "`sum` adds two matrices of the same shape", sparse.Sum)
}

func newMultiplyCmd(a *app) *cobra.Command {
	return newBinaryCmd(a, "multiply", "`multiply` computes the matrix product a × b", sparse.Multiply)
}

func newTransposeCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "transpose <file>",
		Short: "`transpose` swaps rows and columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.readMatrix(args[0])
			if err != nil {
				return err
			}
			t, err := sparse.Transpose(m)
			if err != nil {
				return err
			}

			return a.emit(cmd, t, out)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the result to this triplet file instead of printing it")

	return cmd
}

func newSpyCmd(a *app) *cobra.Command {
	var (
		out  string
		opts spy.Options
	)
	cmd := &cobra.Command{
		Use:   "spy <file>",
		Short: "`spy` plots the sparsity pattern to a PNG or SVG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.readMatrix(args[0])
			if err != nil {
				return err
			}
			if opts.Format == "" {
				opts.Format = spy.FormatFromPath(out)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := spy.Render(f, m, opts); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.log.WithField("path", out).Info("spy plot written")

			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&out, "output", "o", "spy.png", "image file to write")
	fl.StringVar(&opts.Title, "title", "", "plot title (default: shape and cell count)")
	fl.StringVar(&opts.Format, "format", "", "png or svg (default: from the output extension)")
	fl.Float64Var(&opts.Width, "width", spy.DefaultWidth, "image width in centimetres")
	fl.Float64Var(&opts.Height, "height", spy.DefaultHeight, "image height in centimetres")

	return cmd
}

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "`shell` starts the interactive matrix menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			store, err := a.newStore(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			sh := shell.New(store, cmd.InOrStdin(), out,
				shell.WithLogger(a.log),
				shell.WithPrinter(render.New(a.cfg.Display.Color, out)),
				shell.WithBaseDir(a.cfg.Workspace.Dir),
			)
			if err := sh.Run(ctx); err != nil {
				return fmt.Errorf("shell: %w", err)
			}

			return nil
		},
	}
}
