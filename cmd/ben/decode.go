package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mggg/ben/ben"
	"github.com/mggg/ben/jsonl"
)

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <input.ben>",
		Short: "Decode a BEN stream into JSONL, one line per expanded sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0])
		},
	}
}

func runDecode(inputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	br, err := ben.NewReader(in, nil)
	if err != nil {
		return err
	}

	out, err := openOutput(defaultOutputPath(inputPath, ".jsonl"))
	if err != nil {
		return err
	}
	defer out.Close()

	jw := jsonl.NewWriter(out)
	n := 0
	for {
		rec, ok, err := br.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		for i := uint16(0); i < rec.Count; i++ {
			if err := jw.WriteAssignment(rec.Assignment); err != nil {
				return err
			}
			n++
		}
	}
	log.Infof("decoded %d samples from %s (%s)", n, inputPath, br.Variant())
	return nil
}
