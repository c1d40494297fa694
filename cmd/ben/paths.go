package main

import (
	"path/filepath"
	"strings"
)

// defaultOutputPath swaps inputPath's extension for newExt, used whenever
// neither --output nor --stdout was given.
func defaultOutputPath(inputPath, newExt string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	return base + newExt
}
