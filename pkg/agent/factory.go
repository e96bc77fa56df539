package agent

import (
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"

	"github.com/IlikeChooros/go-connect4/pkg/search"
)

type Kind int

const (
	KindNegamax Kind = iota
	KindAlphaBeta
	KindGreedy
	KindHuman
)

func (k Kind) String() string {
	switch k {
	case KindNegamax:
		return "negamax"
	case KindAlphaBeta:
		return "alphabeta"
	case KindGreedy:
		return "greedy"
	case KindHuman:
		return "human"
	}
	return "unknown"
}

var (
	// Used when the config string is empty
	DefaultConfig = "alphabeta"

	kindNames = map[string]Kind{
		"negamax":   KindNegamax,
		"minmax":    KindNegamax,
		"alphabeta": KindAlphaBeta,
		"ab":        KindAlphaBeta,
		"greedy":    KindGreedy,
		"human":     KindHuman,
	}
)

// Spec is a parsed agent configuration, able to build any number of fresh
// agents of the same kind
type Spec struct {
	Kind  Kind
	Depth int
	Order search.Order // the zero value means search.DefaultOrder
}

// Shared by every agent built from a spec
type Options struct {
	// Where the human agent reads and writes, defaults to stdin and stdout
	In  io.Reader
	Out io.Writer

	// Leaf scoring of the search agents, nil means eval.DefaultWeights.
	// Must be safe for concurrent use when the agents play in parallel.
	Evaluator search.Evaluator
}

// Parse the agent config string: the agent name, optionally followed by a colon
// and a comma-separated list of key=value parameters, e.g.
//
//	alphabeta:depth=12,order=3241506
//	negamax:depth=6
//	greedy
//
// Search agents accept 'depth' (at least 1), alpha-beta also 'order',
// a permutation of the column digits.
func Parse(config string) (Spec, error) {
	if config == "" {
		config = DefaultConfig
	}

	name := config
	paramString := ""
	if split := strings.Index(config, ":"); split != -1 {
		name = config[:split]
		paramString = config[split+1:]
	}

	kind, ok := kindNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Spec{}, errors.Errorf("unknown agent %q", name)
	}

	spec := Spec{Kind: kind}
	params := splitConfigString(paramString)
	var err error

	switch kind {
	case KindNegamax:
		spec.Depth, err = popDepth(params, search.DefaultNegamaxDepth)
	case KindAlphaBeta:
		spec.Depth, err = popDepth(params, search.DefaultAlphaBetaDepth)
		if err == nil {
			spec.Order, err = popOrder(params)
		}
	}
	if err != nil {
		return Spec{}, errors.WithMessagef(err, "failed to parse agent %q", config)
	}

	if len(params) != 0 {
		keys := make([]string, 0, len(params))
		for key := range params {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		return Spec{}, errors.Errorf("unknown parameters %v for agent %q", keys, kind)
	}
	return spec, nil
}

// Same as Parse, panics on error
func MustParse(config string) Spec {
	spec, err := Parse(config)
	if err != nil {
		panic(err)
	}
	return spec
}

// Canonical config string, Parse(spec.String()) gives back the same spec
func (s Spec) String() string {
	switch s.Kind {
	case KindNegamax:
		return s.Kind.String() + ":depth=" + strconv.Itoa(s.Depth)
	case KindAlphaBeta:
		str := s.Kind.String() + ":depth=" + strconv.Itoa(s.Depth)
		if order := s.order(); order != search.DefaultOrder {
			str += ",order=" + formatOrder(order)
		}
		return str
	}
	return s.Kind.String()
}

// Whether the agent reads its moves from the terminal
func (s Spec) Interactive() bool {
	return s.Kind == KindHuman
}

func (s Spec) order() search.Order {
	if s.Order == (search.Order{}) {
		return search.DefaultOrder
	}
	return s.Order
}

// Build a new agent, every call returns an independent instance
func (s Spec) New(opts Options) (Agent, error) {
	switch s.Kind {
	case KindNegamax:
		return NewSearcher(search.NewNegamax(opts.Evaluator), search.DefaultLimits().SetDepth(s.Depth)), nil
	case KindAlphaBeta:
		strategy, err := search.NewAlphaBetaOrdered(opts.Evaluator, s.order())
		if err != nil {
			return nil, errors.WithMessagef(err, "failed to create agent %q", s)
		}
		return NewSearcher(strategy, search.DefaultLimits().SetDepth(s.Depth)), nil
	case KindGreedy:
		return NewGreedy(), nil
	case KindHuman:
		in, out := opts.In, opts.Out
		if in == nil {
			in = os.Stdin
		}
		if out == nil {
			out = os.Stdout
		}
		return NewHuman(in, termenv.NewOutput(out)), nil
	}
	return nil, errors.Errorf("unknown agent kind %d", s.Kind)
}

// Split the config string to a map of keys to values, a key without
// a value maps to ""
func splitConfigString(config string) map[string]string {
	params := make(map[string]string)
	if config == "" {
		return params
	}
	for _, part := range strings.Split(config, ",") {
		subParts := strings.SplitN(part, "=", 2)
		key := strings.TrimSpace(subParts[0])
		if key == "" {
			continue
		}
		if len(subParts) == 1 {
			params[key] = ""
		} else {
			params[key] = strings.TrimSpace(subParts[1])
		}
	}
	return params
}

func popDepth(params map[string]string, defaultValue int) (int, error) {
	value, exists := params["depth"]
	if !exists {
		return defaultValue, nil
	}
	delete(params, "depth")

	depth, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse configuration depth=%q to int", value)
	}
	if depth < 1 {
		return 0, errors.Errorf("depth must be at least 1, got %d", depth)
	}
	return depth, nil
}

func popOrder(params map[string]string) (search.Order, error) {
	value, exists := params["order"]
	if !exists {
		return search.DefaultOrder, nil
	}
	delete(params, "order")

	var order search.Order
	if len(value) != len(order) {
		return order, errors.Errorf("order %q must list all %d columns", value, len(order))
	}
	for i, ch := range value {
		if ch < '0' || ch > '9' {
			return order, errors.Errorf("order %q has a non-digit %q", value, ch)
		}
		order[i] = int(ch - '0')
	}
	return order, order.Validate()
}

func formatOrder(order search.Order) string {
	var builder strings.Builder
	for _, c := range order {
		builder.WriteByte(byte('0' + c))
	}
	return builder.String()
}
