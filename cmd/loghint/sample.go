package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loghint/loghint/internal/source"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the built-in sample log",
	Long:  "Prints the synthesized sample log used when no input is given.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(source.Sample())
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
