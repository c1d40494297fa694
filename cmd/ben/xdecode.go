package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mggg/ben/jsonl"
	"github.com/mggg/ben/xben"
)

func xdecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xdecode <input.xben>",
		Short: "Decode an XBEN stream into JSONL, one line per expanded sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runXdecode(args[0])
		},
	}
}

func runXdecode(inputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	xr, err := xben.NewReader(in, nil)
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
		rec, ok, err := xr.Next()
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
	log.Infof("decoded %d samples from %s (%s)", n, inputPath, xr.Variant())
	return nil
}
