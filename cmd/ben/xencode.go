package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/mggg/ben/ben"
	"github.com/mggg/ben/jsonl"
	"github.com/mggg/ben/xben"
)

func xencodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "xencode <input>",
		Short: "Encode JSONL or an existing BEN file into an XBEN stream",
		Long: "xencode accepts either a JSONL file or an existing .ben file, detected by sniffing\n" +
			"the first bytes of the input: a BEN input is transcoded directly without an\n" +
			"intermediate JSONL round trip.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runXencode(args[0])
		},
	}
}

func runXencode(inputPath string) error {
	variant, err := resolveVariant()
	if err != nil {
		return err
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	banner, err := br.Peek(ben.BannerLen)
	isBEN := err == nil && looksLikeBenBanner(banner)

	out, err := openOutput(defaultOutputPath(inputPath, ".xben"))
	if err != nil {
		return err
	}
	defer out.Close()

	if isBEN {
		if err := xben.TranscodeFromBEN(br, out, variant); err != nil {
			return err
		}
		log.Infof("transcoded %s directly from BEN to XBEN (%s)", inputPath, variant)
		return nil
	}

	xw, err := xben.NewWriter(out, variant, nil)
	if err != nil {
		return err
	}
	jr := jsonl.NewReader(br)
	n := 0
	for {
		rec, ok, err := jr.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := xw.WriteAssignment(rec.Assignment); err != nil {
			return err
		}
		n++
	}
	if err := xw.Close(); err != nil {
		return err
	}
	log.Infof("encoded %d samples from JSONL to %s (%s)", n, flagOutput, variant)
	return nil
}

func looksLikeBenBanner(b []byte) bool {
	var banner [ben.BannerLen]byte
	copy(banner[:], b)
	_, ok := ben.VariantFromBanner(banner)
	return ok
}
