package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mggg/ben/xben"
)

func xzCompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xz-compress <input>",
		Short: "Compress an arbitrary file with LZMA2 (xz), no BEN/ben32 framing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()
			out, err := openOutput(defaultOutputPath(args[0], ".xz"))
			if err != nil {
				return err
			}
			defer out.Close()
			return xben.CompressRaw(in, out)
		},
	}
}

func xzDecompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xz-decompress <input.xz>",
		Short: "Decompress an xz file produced by xz-compress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()
			out, err := openOutput(defaultOutputPath(args[0], ""))
			if err != nil {
				return err
			}
			defer out.Close()
			return xben.DecompressRaw(in, out)
		},
	}
}
