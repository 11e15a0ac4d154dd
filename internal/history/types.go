package history

import "time"

// Run is one recorded invocation of a tool.
type Run struct {
	ID         int64
	Tool       string
	Source     string
	StartedAt  time.Time
	Duration   time.Duration
	OKCount    int
	ErrorCount int
}

// Conversion is one persisted conversion row. Position is the 1-based row
// index within the run, matching the rendered report.
type Conversion struct {
	Position int
	Value    int64
	Bin      string
	Hex      string
}

// WordCount is one persisted word-count row.
type WordCount struct {
	Word  string
	Count int
}
