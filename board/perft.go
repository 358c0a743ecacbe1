package board

import "time"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Moves at the last ply are counted, not played.
func Perft(b *Board, depth int, opts ...GenOption) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := newPerftCtx(depth, opts)
	return pc.run(b, depth)
}

// perftCtx holds one move buffer per depth so the recursion does not allocate.
type perftCtx struct {
	gen  *MoveGenerator
	bufs [][]Move
}

func newPerftCtx(depth int, opts []GenOption) *perftCtx {
	pc := &perftCtx{gen: NewMoveGenerator(opts...), bufs: make([][]Move, depth+1)}
	for i := range pc.bufs {
		pc.bufs[i] = make([]Move, 0, MaxMoves)
	}
	return pc
}

func (pc *perftCtx) run(b *Board, depth int) uint64 {
	calc := Calculate(b)
	moves := pc.gen.GenerateMoves(pc.bufs[depth], b, &calc)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		rec := b.MakeMove(m)
		nodes += pc.run(b, depth-1)
		b.UndoMove(rec)
	}
	return nodes
}

// PerftResult is the outcome of Divide.
type PerftResult struct {
	Depth   int
	Nodes   uint64
	Moves   map[string]uint64 // UCI root move -> leaf count below it
	Elapsed time.Duration
}

// NodesPerSecond returns the search speed, or 0 for an instant run.
func (r PerftResult) NodesPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Nodes) / r.Elapsed.Seconds()
}

// Divide runs perft below each root move separately.
func Divide(b *Board, depth int, opts ...GenOption) PerftResult {
	res := PerftResult{Depth: depth, Moves: make(map[string]uint64)}
	if depth <= 0 {
		res.Nodes = 1
		return res
	}
	start := time.Now()
	pc := newPerftCtx(depth, opts)
	calc := Calculate(b)
	root := pc.gen.GenerateMoves(make([]Move, 0, MaxMoves), b, &calc)
	for _, m := range root {
		var n uint64 = 1
		if depth > 1 {
			rec := b.MakeMove(m)
			n = pc.run(b, depth-1)
			b.UndoMove(rec)
		}
		res.Moves[m.String()] = n
		res.Nodes += n
	}
	res.Elapsed = time.Since(start)
	return res
}
