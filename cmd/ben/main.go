// Command ben is a CLI front end over packages ben, ben32, xben, and jsonl:
// it encodes JSONL into BEN/XBEN, decodes BEN/XBEN back to JSONL, extracts
// one sample by number, and exposes the raw xz compressor/decompressor
// directly.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var (
	flagOutput  string
	flagStdout  bool
	flagForce   bool
	flagVariant string
	flagConfig  string
	flagSample  int
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ben",
		Short: "Encode, decode, and inspect BEN and XBEN assignment-vector streams",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogging()
		},
	}

	root.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output file path (default: derived from input, or stdout with --stdout)")
	root.PersistentFlags().BoolVarP(&flagStdout, "stdout", "c", false, "write output to stdout instead of a file")
	root.PersistentFlags().BoolVarP(&flagForce, "force", "f", false, "overwrite an existing output file without prompting")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a TOML config file")
	root.PersistentFlags().StringVar(&flagVariant, "variant", "", "BEN/XBEN variant: \"standard\" or \"mkvchain\" (default \"standard\")")

	root.AddCommand(
		encodeCmd(),
		xencodeCmd(),
		decodeCmd(),
		xdecodeCmd(),
		readCmd(),
		xzCompressCmd(),
		xzDecompressCmd(),
	)
	return root
}

func initLogging() error {
	if level := os.Getenv("BEN_LOG_LEVEL"); level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("BEN_LOG_LEVEL: %w", err)
		}
		log.SetLevel(parsed)
	}
	if flagConfig != "" {
		cfg, err := loadConfig(flagConfig)
		if err != nil {
			return err
		}
		if cfg.LogLevel != "" && os.Getenv("BEN_LOG_LEVEL") == "" {
			parsed, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("config log_level: %w", err)
			}
			log.SetLevel(parsed)
		}
		if cfg.DefaultVariant != "" && flagVariant == "" {
			flagVariant = cfg.DefaultVariant
		}
	}
	return nil
}
