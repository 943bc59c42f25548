package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlviz"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lvlviz version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", lvlviz.Name, lvlviz.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
