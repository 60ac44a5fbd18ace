package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aitoolhub/aitoolhub/internal/build"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "aitoolhub",
		Short:   "A self-hosted AI tool directory",
		Long:    "AI Tool Hub — a curated AI tool catalog with favorites, ratings, and reviews.",
		Version: fmt.Sprintf("%s (%s, %s)", build.Version, build.Commit, build.Branch),
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
