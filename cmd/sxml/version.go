package main

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			bold := color.New(color.Bold).SprintFunc()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s %s/%s)\n", bold("sxml"), version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
