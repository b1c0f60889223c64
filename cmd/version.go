package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show pitmaster version and build info",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("pitmaster %s (%s)\n", cmd.Root().Version, runtime.Version())
		},
	}
}
