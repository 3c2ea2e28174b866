// Package naming derives output file paths for enhanced encodes and split
// segments, and resolves collisions when two inputs claim the same output.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// OutputPath builds the enhanced-output path for an input file:
//
//	<outputDir>/<stem><suffix><ext>
//
// format, when non-empty, replaces the input's extension (it must include
// the leading dot). The output directory is flat regardless of where the
// input sits under the input tree.
func OutputPath(input, outputDir, suffix, format string) string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	if format != "" {
		ext = format
	}
	return filepath.Join(outputDir, stem+suffix+ext)
}

// PartPaths returns the two segment paths for a file being split in half,
// placed beside the original:
//
//	<dir>/<stem>_part1<ext>, <dir>/<stem>_part2<ext>
func PartPaths(input string) (string, string) {
	dir := filepath.Dir(input)
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	part := func(n int) string {
		return filepath.Join(dir, fmt.Sprintf("%s_part%d%s", stem, n, ext))
	}
	return part(1), part(2)
}
