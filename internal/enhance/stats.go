package enhance

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total            int
	Current          int
	Enhanced         int
	Skipped          int
	Failed           int
	TotalInputBytes  int64
	TotalOutputBytes int64
}

// SizeDelta returns the aggregate byte difference between outputs and inputs.
// Positive means the enhanced files grew; negative means they shrank.
func (s *RunStats) SizeDelta() int64 {
	return s.TotalOutputBytes - s.TotalInputBytes
}
