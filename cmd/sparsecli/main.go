// SPDX-License-Identifier: MIT

// Command sparsecli loads sparse matrices from triplet files, combines them
// and prints or plots the result. Run "sparsecli shell" for the interactive
// menu.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "sparsecli:", err)
		os.Exit(1)
	}
}
