package main

import (
	"github.com/spf13/cobra"
	"github.com/zeu5/tree-diff-fuzz/fuzzing"
)

var (
	mutations    int
	recordTraces bool
	plotCoverage bool
)

func FuzzCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use: "fuzz",
		RunE: func(cmd *cobra.Command, args []string) error {
			fuzzer := fuzzing.NewFuzzer(&fuzzing.FuzzerConfig{
				Iterations:   iterations,
				Mutations:    mutations,
				TreeSize:     treeSize,
				Deviation:    deviation,
				Seed:         seed,
				RecordTraces: recordTraces,
				SavePath:     savePath,
			}, fuzzing.NoopDiffer{}, nil)
			if err := fuzzer.Run(); err != nil {
				return err
			}
			if plotCoverage {
				return fuzzing.ShapeCoveragePlot(savePath)(fuzzer.Records())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&mutations, "mutations", "m", 4, "Mutations applied per iteration")
	cmd.Flags().BoolVar(&recordTraces, "record", false, "Record per-iteration traces as JSONL")
	cmd.Flags().BoolVar(&plotCoverage, "plot", false, "Plot shape coverage over iterations")
	return cmd
}
