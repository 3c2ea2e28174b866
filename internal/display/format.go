// Package display provides output formatting shared by the tools: byte and
// bitrate labels, the result tables, and the startup banner.
package display

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, ...).
func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "-" + humanize.IBytes(uint64(-bytes))
	}
	return humanize.IBytes(uint64(bytes))
}

// FormatBytesWithSign prefixes with + or - for delta display (e.g. "- 1.2 GiB").
func FormatBytesWithSign(bytes int64) string {
	switch {
	case bytes > 0:
		return "+ " + humanize.IBytes(uint64(bytes))
	case bytes < 0:
		return "- " + humanize.IBytes(uint64(-bytes))
	default:
		return humanize.IBytes(0)
	}
}

// FormatCount returns a comma-grouped integer (e.g. "112,000").
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// FormatBitrateLabel returns a short label for bitrate in kbps
// (e.g. "1200 kbps", "2.5 Mbps").
func FormatBitrateLabel(kbps int64) string {
	if kbps <= 0 {
		return "unknown"
	}
	if kbps < 1000 {
		return fmt.Sprintf("%d kbps", kbps)
	}
	return fmt.Sprintf("%.1f Mbps", float64(kbps)/1000)
}
