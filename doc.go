// SPDX-License-Identifier: MIT

// Package orthosparse is a sparse-matrix toolkit built on the orthogonal
// linked list: every non-zero cell sits on two circular lists at once, one
// for its row and one for its column, each closed by a sentinel node.
//
// What is in the module?
//
//	sparse/             - the Matrix type: Insert/Get/Delete/Clear, cursor
//	                      iteration, Print, Clone/CopyFrom, Sum/Multiply/
//	                      Transpose/Scale, topology validation, gonum bridge
//	triplet/            - "rows cols" + "row col value" text format
//	internal/config     - YAML configuration for the CLI
//	internal/workspace  - named matrices, concurrent file preload
//	internal/render     - aligned, colourised grids for terminals
//	internal/spy        - sparsity-pattern plots (PNG/SVG) via gonum/plot
//	internal/shell      - the interactive menu
//	cmd/sparsecli       - print, sum, multiply, transpose, spy, shell
//	examples/           - runnable walkthrough
//
// Quick start:
//
//	a, _ := sparse.New(3, 3)
//	_ = a.Insert(1, 1, 2)
//	_ = a.Insert(3, 2, -1)
//	b, _ := sparse.NewIdentity(3)
//	c, _ := sparse.Multiply(a, b)
//	_ = c.Print(os.Stdout)
//
// Indices are 1-based and inclusive everywhere except the gonum bridge,
// which follows gonum's 0-based convention.
package orthosparse
