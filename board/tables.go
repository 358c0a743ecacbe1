package board

import (
	"sync"

	"chess-rules/magic"
)

// Tables is the read-only lookup context shared by every Board built from
// it: step attacks, slider tables, line geometry and Zobrist keys. It is
// safe for concurrent use once constructed.
type Tables struct {
	sliders *magic.SlidingAttacks

	knight [64]uint64
	king   [64]uint64
	pawn   [2][64]uint64 // capture targets of a pawn of the given side

	// between[a][b] holds the squares strictly between a and b when they
	// share a line, otherwise 0.
	between [64][64]uint64
	// line[axis][sq] is the full line through sq along axis, sq included.
	line [4][64]uint64

	zobrist zobristKeys
}

// NewTables builds a lookup context around the given slider tables.
func NewTables(sliders *magic.SlidingAttacks) *Tables {
	t := &Tables{sliders: sliders}
	t.initStepAttacks()
	t.initLines()
	t.zobrist = newZobristKeys(zobristSeed)
	return t
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// DefaultTables returns the process-wide context built from the default
// magic dataset.
func DefaultTables() *Tables {
	defaultOnce.Do(func() {
		defaultTables = NewTables(magic.Default())
	})
	return defaultTables
}

// LoadTables builds a lookup context from a magic dataset file. Invalid
// magics in the file are replaced by Build; Sliders().Repaired() reports
// how many.
func LoadTables(path string) (*Tables, error) {
	set, err := magic.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewTables(magic.Build(set)), nil
}

// initStepAttacks precomputes knight, king and pawn-capture targets.
func (t *Tables) initStepAttacks() {
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8
		for _, off := range knightOffsets {
			if f, r := file+off[0], rank+off[1]; onBoard(f, r) {
				t.knight[sq] |= NewSquare(f, r).Bitboard()
			}
		}
		for _, off := range kingOffsets {
			if f, r := file+off[0], rank+off[1]; onBoard(f, r) {
				t.king[sq] |= NewSquare(f, r).Bitboard()
			}
		}
		for _, df := range [2]int{-1, 1} {
			if onBoard(file+df, rank+1) {
				t.pawn[White][sq] |= NewSquare(file+df, rank+1).Bitboard()
			}
			if onBoard(file+df, rank-1) {
				t.pawn[Black][sq] |= NewSquare(file+df, rank-1).Bitboard()
			}
		}
	}
}

// file/rank steps along each axis, positive direction only
var axisSteps = [4][2]int{
	AxisFile:         {0, 1},
	AxisRank:         {1, 0},
	AxisDiagonal:     {1, 1},
	AxisAntiDiagonal: {1, -1},
}

// initLines fills line and between.
func (t *Tables) initLines() {
	for sq := 0; sq < 64; sq++ {
		file, rank := sq%8, sq/8
		for _, a := range Axes {
			full := uint64(1) << uint(sq)
			for _, sign := range [2]int{1, -1} {
				df, dr := axisSteps[a][0]*sign, axisSteps[a][1]*sign
				var ray uint64
				for f, r := file+df, rank+dr; onBoard(f, r); f, r = f+df, r+dr {
					to := NewSquare(f, r)
					t.between[sq][to] = ray
					ray |= to.Bitboard()
				}
				full |= ray
			}
			t.line[a][sq] = full
		}
	}
}

func onBoard(file, rank int) bool { return file >= 0 && file < 8 && rank >= 0 && rank < 8 }

// Sliders returns the magic-bitboard tables in use.
func (t *Tables) Sliders() *magic.SlidingAttacks { return t.sliders }

// KnightAttacks returns the knight targets from sq.
func (t *Tables) KnightAttacks(sq Square) uint64 { return t.knight[sq] }

// KingAttacks returns the king targets from sq.
func (t *Tables) KingAttacks(sq Square) uint64 { return t.king[sq] }

// PawnAttacks returns the squares a pawn of side s on sq captures on.
func (t *Tables) PawnAttacks(s Side, sq Square) uint64 { return t.pawn[s][sq] }

// BishopAttacks returns bishop attacks from sq for the occupancy.
func (t *Tables) BishopAttacks(sq Square, occ uint64) uint64 { return t.sliders.Bishop(int(sq), occ) }

// RookAttacks returns rook attacks from sq for the occupancy.
func (t *Tables) RookAttacks(sq Square, occ uint64) uint64 { return t.sliders.Rook(int(sq), occ) }

// QueenAttacks returns queen attacks from sq for the occupancy.
func (t *Tables) QueenAttacks(sq Square, occ uint64) uint64 { return t.sliders.Queen(int(sq), occ) }

// Between returns the squares strictly between a and b, or 0 when they do
// not share a file, rank or diagonal.
func (t *Tables) Between(a, b Square) uint64 { return t.between[a][b] }

// Line returns every square on the axis through sq, sq included.
func (t *Tables) Line(axis Axis, sq Square) uint64 { return t.line[axis][sq] }
