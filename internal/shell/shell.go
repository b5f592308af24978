// SPDX-License-Identifier: MIT

// Package shell is the interactive, menu-driven front end: load matrices
// from triplet files, print them, add or multiply two of them, edit cells.
//
// The shell reads one answer per line from its input and never panics on bad
// input: every failure is printed and the menu comes back. End of input
// leaves the loop cleanly.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/orthosparse/internal/render"
	"github.com/katalvlaran/orthosparse/internal/workspace"
	"github.com/katalvlaran/orthosparse/sparse"
)

// ErrInput is returned (and printed) for answers the shell cannot parse.
var ErrInput = errors.New("shell: invalid input")

const mainMenu = `
Choose an option:
[1] Read matrix
[2] Print matrix
[3] Sum matrices
[4] Multiply matrices
[5] Edit matrix
[6] List matrices
[7] Exit`

const editMenu = `
Editing %s (%dx%d, %d cells):
[1] Insert value
[2] Get value
[3] Remove value
[4] Clear matrix
[5] Back`

// Shell is one interactive session bound to a workspace.
type Shell struct {
	store   *workspace.Store
	in      *bufio.Scanner
	out     io.Writer
	log     logrus.FieldLogger
	printer *render.Printer
	baseDir string
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the session logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Shell) { s.log = l }
}

// WithPrinter sets how matrices are printed (default: plain Print output).
func WithPrinter(p *render.Printer) Option {
	return func(s *Shell) { s.printer = p }
}

// WithBaseDir makes relative file names resolve against dir.
func WithBaseDir(dir string) Option {
	return func(s *Shell) { s.baseDir = dir }
}

// New returns a shell reading answers from in and writing to out.
func New(store *workspace.Store, in io.Reader, out io.Writer, opts ...Option) *Shell {
	l := logrus.New()
	l.Out = io.Discard
	s := &Shell{
		store:   store,
		in:      bufio.NewScanner(in),
		out:     out,
		log:     l,
		printer: &render.Printer{},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run loops over the main menu until Exit, end of input or ctx is done.
// Only input failures and cancellation are returned; user errors are printed.
func (s *Shell) Run(ctx context.Context) error {
	s.println("Sparse matrix workspace")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.println(mainMenu)
		choice, err := s.prompt("> ")
		if err != nil {
			return endOfInput(err)
		}

		var quit bool
		switch choice {
		case "1":
			err = s.read()
		case "2":
			err = s.print()
		case "3":
			err = s.combine("sum", sparse.Sum)
		case "4":
			err = s.combine("product", sparse.Multiply)
		case "5":
			err = s.edit()
		case "6":
			s.list()
		case "7":
			quit = true
		default:
			err = fmt.Errorf("%w: unknown option %q", ErrInput, choice)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			s.report(err)
		}
		if quit {
			s.println("Bye.")
			return nil
		}
	}
}

func (s *Shell) read() error {
	name, err := s.prompt("File name: ")
	if err != nil {
		return err
	}
	path := name
	if s.baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(s.baseDir, path)
	}
	m, err := s.store.LoadFile(name, path)
	if err != nil {
		return err
	}
	s.printf("Loaded %s (%dx%d, %d cells)\n", name, m.Rows(), m.Cols(), m.Len())

	return nil
}

func (s *Shell) print() error {
	if !s.list() {
		return nil
	}
	name, err := s.prompt("Matrix to print: ")
	if err != nil {
		return err
	}
	m, err := s.store.Get(name)
	if err != nil {
		return err
	}

	return s.printer.Print(s.out, m)
}

// combine picks two operands, prints op's result and offers to save it.
func (s *Shell) combine(what string, op func(a, b *sparse.Matrix) (*sparse.Matrix, error)) error {
	if !s.list() {
		return nil
	}
	a, err := s.pick("First matrix: ")
	if err != nil {
		return err
	}
	b, err := s.pick("Second matrix: ")
	if err != nil {
		return err
	}
	res, err := op(a, b)
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"op": what, "rows": res.Rows(), "cols": res.Cols(), "cells": res.Len()}).Debug("computed")
	if err := s.printer.Print(s.out, res); err != nil {
		return err
	}

	return s.offerSave(res)
}

func (s *Shell) offerSave(m *sparse.Matrix) error {
	ok, err := s.confirm("Save the result? [y/n]: ")
	if err != nil || !ok {
		return err
	}
	name, err := s.prompt("Name for the result: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInput)
	}
	if err := s.store.Put(name, m, false); err != nil {
		return err
	}
	s.printf("Saved as %s\n", name)

	return nil
}

func (s *Shell) edit() error {
	if !s.list() {
		return nil
	}
	name, err := s.prompt("Matrix to edit: ")
	if err != nil {
		return err
	}
	m, err := s.store.Get(name)
	if err != nil {
		return err
	}

	for {
		s.printf(editMenu+"\n", name, m.Rows(), m.Cols(), m.Len())
		choice, err := s.prompt("> ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = s.insert(m)
		case "2":
			err = s.get(m)
		case "3":
			err = s.remove(m)
		case "4":
			err = s.clear(name, m)
		case "5":
			return nil
		default:
			err = fmt.Errorf("%w: unknown option %q", ErrInput, choice)
		}
		if errors.Is(err, io.EOF) {
			return err
		}
		if err != nil {
			s.report(err)
		}
	}
}

func (s *Shell) insert(m *sparse.Matrix) error {
	f, err := s.fields("Row, column and value: ", 3)
	if err != nil {
		return err
	}
	row, col, err := parsePosition(f)
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(f[2], 64)
	if err != nil {
		return fmt.Errorf("%w: value %q", ErrInput, f[2])
	}
	if err := m.Insert(row, col, v); err != nil {
		return err
	}
	if v == 0 {
		s.println("Zero is not stored; use Remove to delete a cell.")
		return nil
	}
	s.printf("(%d,%d) = %s\n", row, col, sparse.FormatValue(v, true))

	return nil
}

func (s *Shell) get(m *sparse.Matrix) error {
	f, err := s.fields("Row and column: ", 2)
	if err != nil {
		return err
	}
	row, col, err := parsePosition(f)
	if err != nil {
		return err
	}
	v, err := m.Get(row, col)
	if err != nil {
		return err
	}
	s.printf("(%d,%d) = %s\n", row, col, sparse.FormatValue(v, v != 0))

	return nil
}

func (s *Shell) remove(m *sparse.Matrix) error {
	f, err := s.fields("Row and column: ", 2)
	if err != nil {
		return err
	}
	row, col, err := parsePosition(f)
	if err != nil {
		return err
	}
	removed, err := m.Delete(row, col)
	if err != nil {
		return err
	}
	if removed {
		s.printf("Removed (%d,%d)\n", row, col)
	} else {
		s.printf("Nothing stored at (%d,%d)\n", row, col)
	}

	return nil
}

func (s *Shell) clear(name string, m *sparse.Matrix) error {
	ok, err := s.confirm(fmt.Sprintf("Remove all %d cells of %s? [y/n]: ", m.Len(), name))
	if err != nil || !ok {
		return err
	}
	m.Clear()
	s.log.WithField("name", name).Info("matrix cleared")
	s.printf("Cleared %s\n", name)

	return nil
}

// list prints the workspace table and reports whether it is non-empty.
func (s *Shell) list() bool {
	sums := s.store.Summaries()
	if len(sums) == 0 {
		s.println("No matrices loaded.")
		return false
	}
	s.println("------------------")
	for _, sum := range sums {
		s.printf("%s |%d x %d| %d cells\n", sum.Name, sum.Rows, sum.Cols, sum.Cells)
	}
	s.println("------------------")

	return true
}

func (s *Shell) pick(label string) (*sparse.Matrix, error) {
	name, err := s.prompt(label)
	if err != nil {
		return nil, err
	}

	return s.store.Get(name)
}

// confirm asks a yes/no question; anything else is ErrInput.
func (s *Shell) confirm(label string) (bool, error) {
	ans, err := s.prompt(label)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(ans) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}

	return false, fmt.Errorf("%w: answer y or n, got %q", ErrInput, ans)
}

func (s *Shell) fields(label string, n int) ([]string, error) {
	ans, err := s.prompt(label)
	if err != nil {
		return nil, err
	}
	f := strings.Fields(ans)
	if len(f) != n {
		return nil, fmt.Errorf("%w: want %d fields, got %d", ErrInput, n, len(f))
	}

	return f, nil
}

// prompt writes label and returns the next trimmed input line.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("shell: read input: %w", err)
		}
		fmt.Fprintln(s.out)
		return "", io.EOF
	}

	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) report(err error) {
	s.log.WithError(err).Debug("command failed")
	s.printf("Error: %v\n", err)
}

func (s *Shell) println(a ...any) { fmt.Fprintln(s.out, a...) }

func (s *Shell) printf(format string, a ...any) { fmt.Fprintf(s.out, format, a...) }

func parsePosition(f []string) (row, col int, err error) {
	if row, err = strconv.Atoi(f[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", ErrInput, f[0])
	}
	if col, err = strconv.Atoi(f[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: column %q", ErrInput, f[1])
	}

	return row, col, nil
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
