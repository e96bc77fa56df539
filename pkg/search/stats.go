package search

import "fmt"

// Counters of a strategy instance, accumulated over every Search call
type Stats struct {
	Searches uint64 `json:"searches"`
	Nodes    uint64 `json:"nodes"`
	Cutoffs  uint64 `json:"cutoffs"` // beta cutoffs, always 0 for the plain negamax
}

func (s Stats) String() string {
	return fmt.Sprintf("Stats={searches=%d, nodes=%d, cutoffs=%d}", s.Searches, s.Nodes, s.Cutoffs)
}
