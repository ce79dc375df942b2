// SPDX-License-Identifier: MIT

// Command simcluster clusters submissions by pairwise similarity.
//
//	simcluster cluster runs.yaml --algorithm spectral --json
//	simcluster version
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
