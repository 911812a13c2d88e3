package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	iterations int
	seed       uint64
	treeSize   int
	deviation  int
	savePath   string
)

func main() {
	rootCommand := &cobra.Command{Use: "tree-diff-fuzz"}
	rootCommand.PersistentFlags().IntVarP(&iterations, "iterations", "i", 1000, "Number of fuzz iterations to run")
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 2023, "Base seed for the run")
	rootCommand.PersistentFlags().IntVar(&treeSize, "size", 512, "Number of non-root nodes per generated tree")
	rootCommand.PersistentFlags().IntVar(&deviation, "deviation", 3, "Deviation bound for child-group sizes")
	rootCommand.PersistentFlags().StringVarP(&savePath, "save", "s", "results", "Folder for traces and plots")
	rootCommand.AddCommand(FuzzCommand())
	rootCommand.AddCommand(GenCommand())
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
