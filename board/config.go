package board

const (
	// MaxMoves is the most legal moves any reachable position has; move
	// buffers of this capacity never grow.
	MaxMoves = 218

	// FiftyMoveLimit is the halfmove clock value at which the fifty-move
	// rule applies.
	FiftyMoveLimit = 100

	// RepetitionLimit is the number of occurrences that makes a draw.
	RepetitionLimit = 3

	// FENStartPos is the standard initial position.
	FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// BenchmarkFEN exercises promotions, castling-rights loss by capture and pins.
	BenchmarkFEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"

	// DefaultPerftDepth is the depth perft tooling uses when none is given.
	DefaultPerftDepth = 4
)
