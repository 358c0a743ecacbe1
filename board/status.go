package board

import "math/bits"

// GameState is the outcome of a position.
type GameState uint8

const (
	InProgress GameState = iota
	WhiteWon
	BlackWon
	Draw
)

func (s GameState) String() string {
	switch s {
	case WhiteWon:
		return "white won"
	case BlackWon:
		return "black won"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// Status decides the game state from the legal moves, check and the draw rules.
func (b *Board) Status() GameState {
	calc := Calculate(b)
	var buf [MaxMoves]Move
	moves := defaultGenerator.GenerateMoves(buf[:0], b, &calc)
	return StatusOf(b, moves, &calc)
}

// StatusOf is Status for callers that already hold the legal moves and
// attack calculator of b.
func StatusOf(b *Board, legal []Move, calc *AttackCalculator) GameState {
	if len(legal) == 0 {
		if !calc.InCheck() {
			return Draw
		}
		if b.side == White {
			return BlackWon
		}
		return WhiteWon
	}
	if b.IsDrawByRepetition() || b.IsDrawByFiftyMoves() || b.IsDrawByMaterial() {
		return Draw
	}
	return InProgress
}

// IsDrawByRepetition reports whether the current position has occurred
// RepetitionLimit times.
func (b *Board) IsDrawByRepetition() bool { return b.history[b.hash] >= RepetitionLimit }

// IsDrawByFiftyMoves reports whether FiftyMoveLimit half-moves have passed
// without a capture or pawn move.
func (b *Board) IsDrawByFiftyMoves() bool { return b.halfmove >= FiftyMoveLimit }

// IsDrawByMaterial reports a draw when neither side has a pawn, rook, queen
// or two bishops.
//
// This is simpler than the FIDE dead-position rule. Knights are ignored, so
// two knights against a lone king count as a draw, and so does a bishop on
// each side regardless of square colour. Two bishops of the same colour are
// treated as mating material. Callers depend on this exact policy, so
// changes need product sign-off.
func (b *Board) IsDrawByMaterial() bool {
	return !b.hasMatingMaterial(White) && !b.hasMatingMaterial(Black)
}

func (b *Board) hasMatingMaterial(s Side) bool {
	p := &b.pieces[s]
	return p[Pawn]|p[Rook]|p[Queen] != 0 || bits.OnesCount64(p[Bishop]) > 1
}

var materialValue = [7]int{Pawn: 1, Knight: 3, Bishop: 3, Rook: 5, Queen: 9}

// Material returns the side's material in pawn units (1/3/3/5/9).
func (b *Board) Material(s Side) int {
	total := 0
	for _, k := range Kinds {
		total += materialValue[k] * bits.OnesCount64(b.pieces[s][k])
	}
	return total
}

// MaterialBalance returns White's material minus Black's.
func (b *Board) MaterialBalance() int { return b.Material(White) - b.Material(Black) }
