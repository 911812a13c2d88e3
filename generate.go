package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zeu5/tree-diff-fuzz/entropy"
	"github.com/zeu5/tree-diff-fuzz/fuzzing"
	"github.com/zeu5/tree-diff-fuzz/tree"
)

func GenCommand() *cobra.Command {
	return &cobra.Command{
		Use: "gen",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := entropy.New(seed)
			factory := tree.NewFactory(1, tree.NewTagAllocator())
			root := fuzzing.GenerateTree(e, factory, treeSize, deviation)
			fmt.Printf("seed: %d, nodes: %d, shape: %s\n", seed, tree.Count(root), fuzzing.TreeShape(root))
			printNode(root, 0)
			return nil
		},
	}
}

func printNode(n *tree.Node, depth int) {
	fmt.Printf("%s%d (%d children)\n", strings.Repeat("  ", depth), n.Tag(), len(n.Children()))
	for _, child := range n.Children() {
		printNode(child, depth+1)
	}
}
