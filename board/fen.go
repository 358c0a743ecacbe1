package board

import (
	"strconv"
	"strings"
)

const pieceChars = ".kpnbrq"

// pieceFromChar converts a FEN character to a piece; ok is false for
// anything but the twelve piece letters.
func pieceFromChar(ch byte) (p Piece, ok bool) {
	side := White
	if ch >= 'a' && ch <= 'z' {
		side = Black
	} else {
		ch += 'a' - 'A'
	}
	i := strings.IndexByte(pieceChars, ch)
	if i <= 0 {
		return Piece{}, false
	}
	return Piece{Side: side, Kind: PieceKind(i)}, true
}

// Char returns the FEN letter for p, upper case for White, '.' when empty.
func (p Piece) Char() byte {
	c := pieceChars[p.Kind]
	if p.Side == White && p.Kind != NoKind {
		c -= 'a' - 'A'
	}
	return c
}

// ParseFEN parses a FEN string and returns a new Board set up to that
// position. The halfmove clock and fullmove number may be omitted and
// default to 0 and 1. Malformed input yields a *FENError wrapping
// ErrInvalidFEN.
func ParseFEN(fen string, opts ...Option) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fenError("field count", strconv.Itoa(len(fields)), nil)
	}

	b := Empty(opts...)

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fenError("placement", fields[0], nil)
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p, ok := pieceFromChar(ch)
			if !ok || file >= 8 {
				return nil, fenError("placement", rankStr, nil)
			}
			b.addPiece(NewSquare(file, rank), p)
			file++
		}
		if file != 8 {
			return nil, fenError("placement", rankStr, nil)
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		b.side = White
	case "b":
		b.side = Black
	default:
		return nil, fenError("side", fields[1], nil)
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castling[White] |= KingSide
			case 'Q':
				b.castling[White] |= QueenSide
			case 'k':
				b.castling[Black] |= KingSide
			case 'q':
				b.castling[Black] |= QueenSide
			default:
				return nil, fenError("castling", fields[2], nil)
			}
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		target, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fenError("en passant", fields[3], err)
		}
		// the pawn that just moved stands one rank past the target and
		// passed over it from an origin square that is now empty
		wantRank, pawn, origin := 5, target-8, target+8
		if b.side == Black {
			wantRank, pawn, origin = 2, target+8, target-8
		}
		if target.Rank() != wantRank || b.squares[pawn] != (Piece{Side: b.side.Other(), Kind: Pawn}) {
			return nil, fenError("en passant", fields[3], nil)
		}
		if !b.squares[target].Empty() || !b.squares[origin].Empty() {
			return nil, fenError("en passant", fields[3], nil)
		}
		b.ep = EnPassant{Possible: true, Pawn: pawn, Target: target}
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fenError("halfmove", fields[4], err)
		}
		b.halfmove = n
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fenError("fullmove", fields[5], err)
		}
		b.fullmove = n
	}

	b.resetHistory()
	if err := b.Validate(); err != nil {
		return nil, fenError("position", fields[0], err)
	}
	return b, nil
}

// FEN produces the FEN string of the current position.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p.Kind == NoKind {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if b.side == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if b.castling == [2]CastlingRights{} {
		sb.WriteByte('-')
	} else {
		for _, s := range [2]Side{White, Black} {
			if b.castling[s]&KingSide != 0 {
				sb.WriteByte(Piece{Side: s, Kind: King}.Char())
			}
			if b.castling[s]&QueenSide != 0 {
				sb.WriteByte(Piece{Side: s, Kind: Queen}.Char())
			}
		}
	}
	sb.WriteByte(' ')

	if b.ep.Possible {
		sb.WriteString(b.ep.Target.String())
	} else {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmove))
	return sb.String()
}

// String renders the position as FEN.
func (b *Board) String() string { return b.FEN() }
