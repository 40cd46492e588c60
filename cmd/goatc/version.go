package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// getVersionCmd mirrors k6's own cmd/version.go: a tiny leaf command
// returning a fresh *cobra.Command, added to rootCmd in init().
func getVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the goatc version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("goatc v" + version)
		},
	}
	return versionCmd
}
