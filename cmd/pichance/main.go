// SPDX-License-Identifier: MIT

// Command pichance estimates how likely a phrase or digit string is to appear
// among the first N digits of a uniformly random digit sequence such as π.
//
//	pichance estimate hello
//	pichance estimate --mode digits --digits 1000000000 123456
//	pichance batch phrases.txt
//	pichance automaton --mode digits 1212
//	pichance decode 0704111114
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
