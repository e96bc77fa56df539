package search

import (
	"encoding/json"
	"strings"
)

type Limits struct {
	Depth int `json:"depth"`
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return strings.TrimSpace(builder.String())
}

func DefaultLimits() *Limits {
	return &Limits{
		Depth: DefaultAlphaBetaDepth,
	}
}

// Set the number of plies to look ahead, negative values are clamped to 0
// (only the static evaluation of the root)
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = max(depth, 0)
	return l
}
