// Package mover packages a finished working directory into a dated,
// view-range-labelled folder: videos flat under one subdirectory, all
// supporting files under another with their relative layout preserved.
package mover

import (
	"encoding/json"
	"fmt"
	"os"
)

// Entry is one record in the analysis results file. Only viewCount is
// consumed; records without it are ignored for range computation.
type Entry struct {
	ViewCount *int64 `json:"viewCount"`
}

// ViewRange is the min/max view count across all analysis entries.
type ViewRange struct {
	Min int64
	Max int64
}

// ReadViewRange loads the analysis results file and computes the view-count
// range. A missing or malformed file, or one with no usable viewCount
// values, is a hard error: without the range the destination folder cannot
// be named.
func ReadViewRange(path string) (ViewRange, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ViewRange{}, fmt.Errorf("read analysis results: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return ViewRange{}, fmt.Errorf("parse analysis results %q: %w", path, err)
	}

	var vr ViewRange
	found := false
	for _, e := range entries {
		if e.ViewCount == nil {
			continue
		}
		v := *e.ViewCount
		if !found {
			vr.Min, vr.Max = v, v
			found = true
			continue
		}
		if v < vr.Min {
			vr.Min = v
		}
		if v > vr.Max {
			vr.Max = v
		}
	}
	if !found {
		return ViewRange{}, fmt.Errorf("analysis results %q contain no viewCount values", path)
	}
	return vr, nil
}
