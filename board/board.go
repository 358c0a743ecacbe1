package board

import (
	"errors"
	"fmt"
	"math/bits"

	"golang.org/x/exp/maps"
)

// Board is a chess position together with its repetition history. A Board
// is owned by one goroutine at a time; independent boards may share Tables.
type Board struct {
	tables *Tables

	// pieces[side][kind]; index 0 is the side's aggregate occupancy
	pieces  [2][7]uint64
	squares [64]Piece

	side     Side
	castling [2]CastlingRights
	ep       EnPassant

	halfmove int // half-moves since the last capture or pawn move
	fullmove int // starts at 1, incremented after Black's move

	hash    uint64
	history map[uint64]int // position hash -> occurrences
}

// Option configures a Board at construction.
type Option func(*Board)

// WithTables makes the board use t instead of DefaultTables.
func WithTables(t *Tables) Option {
	return func(b *Board) { b.tables = t }
}

// Empty returns a board with no pieces, White to move and no rights. It is
// not a legal position until kings are placed with SetPiece.
func Empty(opts ...Option) *Board {
	b := &Board{
		ep:       noEnPassant,
		fullmove: 1,
		history:  make(map[uint64]int),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.tables == nil {
		b.tables = DefaultTables()
	}
	b.resetHistory()
	return b
}

// StartPosition returns the standard initial position.
func StartPosition(opts ...Option) *Board {
	b, err := ParseFEN(FENStartPos, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// resetHistory recomputes the hash and makes the current position the only
// one in the history.
func (b *Board) resetHistory() {
	b.hash = b.ComputeHash()
	clear(b.history)
	b.history[b.hash] = 1
}

// Clone returns an independent copy sharing only the read-only tables.
func (b *Board) Clone() *Board {
	c := *b
	c.history = maps.Clone(b.history)
	return &c
}

// Tables returns the lookup context the board was built with.
func (b *Board) Tables() *Tables { return b.tables }

// PieceAt returns the occupant of sq.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq.Ordinal()] }

// Pieces returns the bitboard of the side's pieces of the given kind.
// NoKind yields the side's aggregate occupancy.
func (b *Board) Pieces(s Side, k PieceKind) uint64 { return b.pieces[s.Ordinal()][k.Ordinal()] }

// Occupancy returns the side's aggregate occupancy.
func (b *Board) Occupancy(s Side) uint64 { return b.pieces[s.Ordinal()][0] }

// AllOccupancy returns a bitboard of all occupied squares.
func (b *Board) AllOccupancy() uint64 { return b.pieces[White][0] | b.pieces[Black][0] }

// KingSquare returns the square of the side's king, or NoSquare.
func (b *Board) KingSquare(s Side) Square {
	k := b.pieces[s.Ordinal()][King]
	if k == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(k))
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Side { return b.side }

// CastlingRights returns the side's remaining castling rights.
func (b *Board) CastlingRights(s Side) CastlingRights { return b.castling[s.Ordinal()] }

// EnPassant returns the pending en passant state.
func (b *Board) EnPassant() EnPassant { return b.ep }

// Hash returns the current Zobrist hash.
func (b *Board) Hash() uint64 { return b.hash }

// HalfmoveClock returns the number of half-moves since the last capture or pawn move.
func (b *Board) HalfmoveClock() int { return b.halfmove }

// FullmoveNumber returns the full move counter.
func (b *Board) FullmoveNumber() int { return b.fullmove }

// Occurrences returns how often the current position has been reached.
func (b *Board) Occurrences() int { return b.history[b.hash] }

// addPiece places a piece on an empty square and updates bitboards and hash.
func (b *Board) addPiece(sq Square, p Piece) {
	bit := sq.Bitboard()
	b.squares[sq] = p
	b.pieces[p.Side][0] |= bit
	b.pieces[p.Side][p.Kind] |= bit
	b.hash ^= b.tables.zobrist.piece[p.Side][p.Kind][sq]
}

// removePiece clears sq and returns what stood there.
func (b *Board) removePiece(sq Square) Piece {
	p := b.squares[sq]
	if p.Kind == NoKind {
		return p
	}
	mask := ^sq.Bitboard()
	b.squares[sq] = Piece{}
	b.pieces[p.Side][0] &= mask
	b.pieces[p.Side][p.Kind] &= mask
	b.hash ^= b.tables.zobrist.piece[p.Side][p.Kind][sq]
	return p
}

// SetPiece puts p on sq, replacing any occupant; NoKind clears the square.
// It is meant for setting up positions and restarts the repetition history.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	if p.Kind != NoKind {
		b.addPiece(sq, p)
	}
	b.resetHistory()
}

// Validate checks that the square table, the per-kind bitboards, the
// aggregates and the hash agree, that each side has exactly one king and
// that no pawn stands on a back rank.
func (b *Board) Validate() error {
	var pieces [2][7]uint64
	for sq := 0; sq < 64; sq++ {
		p := b.squares[sq]
		if p.Kind == NoKind {
			continue
		}
		if p.Side > Black || p.Kind > Queen {
			return fmt.Errorf("square %v holds invalid piece %+v", Square(sq), p)
		}
		bit := uint64(1) << uint(sq)
		pieces[p.Side][0] |= bit
		pieces[p.Side][p.Kind] |= bit
	}
	if pieces != b.pieces {
		return errors.New("bitboards disagree with square table")
	}
	for _, s := range [2]Side{White, Black} {
		if n := bits.OnesCount64(b.pieces[s][King]); n != 1 {
			return fmt.Errorf("%v has %d kings", s, n)
		}
	}
	if a := b.attackersOf(b.KingSquare(b.side.Other()), b.side); a != 0 {
		return fmt.Errorf("%v to move can capture the %v king", b.side, b.side.Other())
	}
	const backRanks = 0xFF000000000000FF
	if (b.pieces[White][Pawn]|b.pieces[Black][Pawn])&backRanks != 0 {
		return errors.New("pawn on first or last rank")
	}
	if h := b.ComputeHash(); h != b.hash {
		return fmt.Errorf("hash %#x, recomputed %#x", b.hash, h)
	}
	if b.history[b.hash] < 1 {
		return errors.New("current position missing from history")
	}
	return nil
}
