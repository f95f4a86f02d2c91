// Command strukt is an interactive playground for the strukt data
// structures: an AVL tree explorer, a sorting benchmark runner and a
// small graph walkthrough.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	var cmdAVL = &cobra.Command{
		Use:   "avl",
		Short: "Open the interactive AVL tree explorer",
		Long:  "Opens a terminal UI where insert/remove/find commands mutate a live AVL tree and every rebalance is rendered immediately.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runTreeExplorer(); err != nil {
				log.Fatalf("explorer failed: %v", err)
			}
		},
	}

	var cmdSort = &cobra.Command{
		Use:   "sort",
		Short: "Benchmark the sorting algorithms against each other",
		Long:  "Times every sorting variant over the same random dataset and prints a ranked table.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			size, _ := cmd.Flags().GetInt("size")
			seed, _ := cmd.Flags().GetInt64("seed")
			kind, _ := cmd.Flags().GetString("data")
			if err := runSortBench(size, seed, kind); err != nil {
				log.Fatalf("benchmark failed: %v", err)
			}
		},
	}
	cmdSort.Flags().Int("size", 20000, "number of elements to sort")
	cmdSort.Flags().Int64("seed", 1, "random seed for dataset generation")
	cmdSort.Flags().String("data", "ints", "dataset kind: ints, words or emails")

	var cmdGraph = &cobra.Command{
		Use:   "graph",
		Short: "Walk a sample graph with BFS, DFS and Dijkstra",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runGraphDemo(); err != nil {
				log.Fatalf("graph demo failed: %v", err)
			}
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print the strukt version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "strukt",
		Version: version,
		Short:   "Classic data structures, live in your terminal",
		Run: func(cmd *cobra.Command, args []string) {
			// No subcommand defaults to the AVL explorer.
			if err := runTreeExplorer(); err != nil {
				log.Fatalf("explorer failed: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdAVL, cmdSort, cmdGraph, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1) // cobra has already printed the error
	}
}
