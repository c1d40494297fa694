package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mggg/ben/ben"
	"github.com/mggg/ben/jsonl"
)

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <input.jsonl>",
		Short: "Encode a JSONL file of assignment vectors into a BEN stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args[0])
		},
	}
}

func runEncode(inputPath string) error {
	variant, err := resolveVariant()
	if err != nil {
		return err
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := openOutput(defaultOutputPath(inputPath, ".ben"))
	if err != nil {
		return err
	}
	defer out.Close()

	bw, err := ben.NewWriter(out, variant, nil)
	if err != nil {
		return err
	}

	jr := jsonl.NewReader(in)
	n := 0
	for {
		rec, ok, err := jr.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := bw.WriteAssignment(rec.Assignment); err != nil {
			return err
		}
		n++
	}
	if err := bw.Close(); err != nil {
		return err
	}
	log.Infof("encoded %d samples to %s (%s)", n, flagOutput, variant)
	return nil
}
