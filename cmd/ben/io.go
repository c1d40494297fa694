package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mggg/ben/ben"
)

// openOutput resolves where a command should write: --stdout wins, then
// --output, then the given default path. An existing file is only
// overwritten after a y/n answer read from stdin, unless --force was given.
func openOutput(defaultPath string) (io.WriteCloser, error) {
	if flagStdout {
		return nopCloser{os.Stdout}, nil
	}
	path := flagOutput
	if path == "" {
		path = defaultPath
	}
	if !flagForce {
		if _, err := os.Stat(path); err == nil {
			ok, err := confirmOverwrite(path)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("not overwriting %s", path)
			}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func confirmOverwrite(path string) (bool, error) {
	fmt.Fprintf(os.Stderr, "%s already exists, overwrite? [y/N] ", path)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch line {
	case "y\n", "Y\n", "yes\n":
		return true, nil
	default:
		return false, nil
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func resolveVariant() (ben.Variant, error) {
	switch flagVariant {
	case "", "standard":
		return ben.Standard, nil
	case "mkvchain":
		return ben.MkvChain, nil
	default:
		return 0, fmt.Errorf("unknown variant %q: want \"standard\" or \"mkvchain\"", flagVariant)
	}
}
