// SPDX-License-Identifier: MIT

// Package workspace keeps matrices under user-chosen names.
//
// The store owns what it holds: Put stores a deep copy and Get hands out the
// stored instance for in-place editing under the caller's control. A Store
// is safe for concurrent use; the matrices it returns are not.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/orthosparse/sparse"
	"github.com/katalvlaran/orthosparse/triplet"
)

var (
	// ErrExists is returned by Put when the name is taken and overwrite is false.
	ErrExists = errors.New("workspace: name already in use")

	// ErrNotFound is returned for unknown names.
	ErrNotFound = errors.New("workspace: no matrix with that name")

	// ErrEmptyName is returned when a name is blank.
	ErrEmptyName = errors.New("workspace: empty name")
)

// Summary describes one stored matrix.
type Summary struct {
	Name  string
	Rows  int
	Cols  int
	Cells int
}

// Entry names a file to load.
type Entry struct {
	Name string
	Path string
}

// Store maps names to matrices.
type Store struct {
	mu   sync.RWMutex
	mats map[string]*sparse.Matrix
	log  logrus.FieldLogger
	opts []sparse.Option
}

// New returns an empty store. opts are applied to every matrix loaded from file.
func New(log logrus.FieldLogger, opts ...sparse.Option) *Store {
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}

	return &Store{
		mats: make(map[string]*sparse.Matrix),
		log:  log,
		opts: opts,
	}
}

// Put stores a deep copy of m under name.
func (s *Store) Put(name string, m *sparse.Matrix, overwrite bool) error {
	if name == "" {
		return ErrEmptyName
	}
	if err := sparse.ValidateNotNil(m); err != nil {
		return fmt.Errorf("workspace: put %q: %w", name, err)
	}
	cp := m.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.mats[name]; ok && !overwrite {
		return fmt.Errorf("%w: %q", ErrExists, name)
	}
	s.mats[name] = cp
	s.log.WithFields(logrus.Fields{
		"name":  name,
		"rows":  cp.Rows(),
		"cols":  cp.Cols(),
		"cells": cp.Len(),
	}).Debug("matrix stored")

	return nil
}

// Get returns the stored matrix.
func (s *Store) Get(name string) (*sparse.Matrix, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mats[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return m, nil
}

// Has reports whether name is in use.
func (s *Store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.mats[name]

	return ok
}

// Delete drops name.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.mats[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(s.mats, name)

	return nil
}

// Names returns all names in lexicographic order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.mats))
	for name := range s.mats {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Summaries describes every stored matrix, sorted by name.
func (s *Store) Summaries() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Summary, 0, len(s.mats))
	for name, m := range s.mats {
		out = append(out, Summary{Name: name, Rows: m.Rows(), Cols: m.Cols(), Cells: m.Len()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// LoadFile reads path in triplet format and stores it under name
// (replacing any previous matrix of that name).
func (s *Store) LoadFile(name, path string) (*sparse.Matrix, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	m, err := triplet.ReadFile(path, s.opts...)
	if err != nil {
		s.log.WithError(err).WithField("path", path).Warn("load failed")
		return nil, err
	}

	s.mu.Lock()
	s.mats[name] = m
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"name":  name,
		"path":  path,
		"rows":  m.Rows(),
		"cols":  m.Cols(),
		"cells": m.Len(),
	}).Info("matrix loaded")

	return m, nil
}

// LoadAll loads entries concurrently, at most limit at a time (limit <= 0
// means runtime.NumCPU()). Each goroutine parses into its own matrix, so no
// instance is shared while loading. The first error cancels the remaining
// loads; entries already stored stay stored.
func (s *Store) LoadAll(ctx context.Context, entries []Entry, limit int) error {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, e := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := s.LoadFile(e.Name, e.Path); err != nil {
				return fmt.Errorf("workspace: load %q: %w", e.Name, err)
			}
			return nil
		})
	}

	return g.Wait()
}
