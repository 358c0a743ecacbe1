// Package board implements the chess position, legal move generation and
// exact make/undo for a rules-only core.
//
// Squares are numbered a1 = 0 through h8 = 63, rank by rank, so bit i of a
// bitboard stands for square i.
package board

import "fmt"

// Side is the colour of a player.
type Side uint8

const (
	White Side = iota
	Black
)

// Other returns the opposing side.
func (s Side) Other() Side { return s ^ 1 }

// Ordinal returns s as an array index.
func (s Side) Ordinal() int {
	if debugChecks && s > Black {
		panic(fmt.Sprintf("board: side %d out of range", s))
	}
	return int(s)
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// PieceKind is a colourless piece type. NoKind marks an empty square.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
)

// Kinds lists the real piece kinds in ordinal order.
var Kinds = [6]PieceKind{King, Pawn, Knight, Bishop, Rook, Queen}

// Ordinal returns k as an array index; 0 is reserved for NoKind.
func (k PieceKind) Ordinal() int {
	if debugChecks && k > Queen {
		panic(fmt.Sprintf("board: piece kind %d out of range", k))
	}
	return int(k)
}

func (k PieceKind) String() string {
	switch k {
	case King:
		return "king"
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	default:
		return "none"
	}
}

// Piece is the occupant of a square.
type Piece struct {
	Side Side
	Kind PieceKind
}

// Empty reports whether the piece value stands for an empty square.
func (p Piece) Empty() bool { return p.Kind == NoKind }

// Square is a board square, 0 (a1) to 63 (h8). NoSquare means absent.
type Square uint8

const NoSquare Square = 64

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from a file and rank in 0..7.
func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

// File returns the file index, 0 for the a-file.
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the rank index, 0 for the first rank.
func (sq Square) Rank() int { return int(sq) / 8 }

// Bitboard returns the single-bit mask for sq.
func (sq Square) Bitboard() uint64 { return uint64(1) << sq }

// Ordinal returns sq as an array index.
func (sq Square) Ordinal() int {
	if debugChecks && sq >= NoSquare {
		panic(fmt.Sprintf("board: square %d out of range", sq))
	}
	return int(sq)
}

func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts algebraic notation such as "e4" to a square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// CastlingRights holds one side's remaining castling rights.
type CastlingRights uint8

const (
	KingSide CastlingRights = 1 << iota
	QueenSide

	NoCastling   CastlingRights = 0
	BothCastling                = KingSide | QueenSide
)

// Axis is one of the four lines a slider can pin along.
type Axis uint8

const (
	AxisFile Axis = iota
	AxisRank
	AxisDiagonal     // a1-h8 direction
	AxisAntiDiagonal // a8-h1 direction
)

// Axes lists the four axes in ordinal order.
var Axes = [4]Axis{AxisFile, AxisRank, AxisDiagonal, AxisAntiDiagonal}

func (a Axis) String() string {
	switch a {
	case AxisFile:
		return "file"
	case AxisRank:
		return "rank"
	case AxisDiagonal:
		return "diagonal"
	default:
		return "anti-diagonal"
	}
}

// EnPassant describes a pending en passant opportunity. Pawn is the square
// of the pawn that just advanced two ranks; Target is where a capturing
// pawn lands.
type EnPassant struct {
	Possible bool
	Pawn     Square
	Target   Square
}

var noEnPassant = EnPassant{Pawn: NoSquare, Target: NoSquare}
