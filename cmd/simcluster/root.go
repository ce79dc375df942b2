// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "simcluster",
		Short:         "Cluster submissions by pairwise similarity",
		Long:          "simcluster groups compared submissions into clusters using a pluggable graph-clustering algorithm.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newClusterCmd(), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the simcluster version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "simcluster %s\n", version)
		},
	}
}
