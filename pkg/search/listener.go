package search

// Information about a single root move, after it was searched
type RootMoveInfo struct {
	Move  int
	Score int
	// The alpha-beta search proved only that the move is not better than
	// the current best, Score is an upper bound then
	UpperBound bool
	BestMove   int
	BestScore  int
}

// Listener function callback
type ListenerFunc[T any] func(T)

type StatsListener struct {
	// called after every root move was searched, in generation order
	onRootMove ListenerFunc[RootMoveInfo]

	// called once the search returns
	onDone ListenerFunc[Result]
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

// Attach root move callback, called synchronously from the search
func (listener *StatsListener) OnRootMove(onRootMove ListenerFunc[RootMoveInfo]) *StatsListener {
	listener.onRootMove = onRootMove
	return listener
}

// Attach 'on search end' callback
func (listener *StatsListener) OnDone(onDone ListenerFunc[Result]) *StatsListener {
	listener.onDone = onDone
	return listener
}

func (listener *StatsListener) invokeRootMove(info RootMoveInfo) {
	if listener.onRootMove != nil {
		listener.onRootMove(info)
	}
}

func (listener *StatsListener) invokeDone(result Result) {
	if listener.onDone != nil {
		listener.onDone(result)
	}
}
