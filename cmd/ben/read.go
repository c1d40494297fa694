package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/mggg/ben/ben"
)

func readCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <input.ben>",
		Short: "Extract a single sample from a BEN stream by its 1-based number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(args[0])
		},
	}
	cmd.Flags().IntVarP(&flagSample, "sample", "n", 0, "1-based sample number to extract (required)")
	cmd.MarkFlagRequired("sample")
	return cmd
}

func runRead(inputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	assignment, err := ben.Extract(in, flagSample)
	if err != nil {
		return err
	}

	if flagOutput != "" && !flagStdout {
		out, err := openOutput(flagOutput)
		if err != nil {
			return err
		}
		defer out.Close()
		return json.NewEncoder(out).Encode(assignment)
	}
	return json.NewEncoder(os.Stdout).Encode(assignment)
}
