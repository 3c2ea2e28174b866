package mover

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

// FormatViewCount compresses a view count into a short label using integer
// division: 2000000 becomes "2M", 112000 becomes "112K", 999 stays "999".
func FormatViewCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%dM", n/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%dK", n/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// Label renders the range as "<min>-<max>", e.g. "112K-2M".
func (vr ViewRange) Label() string {
	return FormatViewCount(vr.Min) + "-" + FormatViewCount(vr.Max)
}

// FolderName builds the destination folder name: the date rendered with the
// configured strftime pattern, an underscore, then the range label.
// "%y%m%d" on 2025-12-17 with range 112K-2M gives "251217_112K-2M".
func FolderName(now time.Time, dateFormat string, vr ViewRange) string {
	return strftime.Format(dateFormat, now) + "_" + vr.Label()
}
