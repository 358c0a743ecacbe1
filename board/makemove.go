package board

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// MoveRecord is the undo token returned by MakeMove. It snapshots the state
// the move overwrites and must be handed back to UndoMove in reverse order
// of creation.
type MoveRecord struct {
	move     Move
	captured PieceKind

	ep       EnPassant
	castling [2]CastlingRights
	halfmove int
	fullmove int
	hash     uint64

	after uint64 // hash right after the move, identifies the record
}

// Move returns the move the record undoes.
func (r MoveRecord) Move() Move { return r.move }

// Captured returns the kind of the captured piece, or NoKind.
func (r MoveRecord) Captured() PieceKind { return r.captured }

// MakeMove applies m, which must be legal in the current position, and
// returns the record needed to undo it. m is not checked: an illegal move
// leaves the board in an undefined state that UndoMove may not repair.
// Builds with the chessdebug tag panic on some illegal moves. Use
// MakeLegalMove for moves from untrusted input.
func (b *Board) MakeMove(m Move) MoveRecord {
	us, them := b.side, b.side.Other()
	keys := &b.tables.zobrist

	rec := MoveRecord{
		move:     m,
		ep:       b.ep,
		castling: b.castling,
		halfmove: b.halfmove,
		fullmove: b.fullmove,
		hash:     b.hash,
	}

	moving := b.squares[m.From]
	if debugChecks && (moving.Kind == NoKind || moving.Side != us) {
		panic(fmt.Sprintf("MakeMove: %v does not move a %v piece", m, us))
	}

	b.hash ^= keys.stateHash(us, b.castling, b.ep)
	b.ep = noEnPassant

	if captured := b.removePiece(m.Capture); captured.Kind != NoKind {
		rec.captured = captured.Kind
		if captured.Kind == Rook {
			b.castling[them] &^= rookRight(them, m.Capture)
		}
	}

	b.removePiece(m.From)
	landing := moving
	if promo := m.Type.Promotion(); promo != NoKind {
		landing.Kind = promo
	}
	b.addPiece(m.To, landing)

	switch m.Type {
	case CastleKingSide, CastleQueenSide:
		c := castleFor(us, m.Type)
		b.addPiece(c.rookTo, b.removePiece(c.rookFrom))
	case PawnDoubleStep:
		b.ep = EnPassant{Possible: true, Pawn: m.To, Target: (m.From + m.To) / 2}
	}

	switch moving.Kind {
	case King:
		b.castling[us] = NoCastling
	case Rook:
		b.castling[us] &^= rookRight(us, m.From)
	}

	if moving.Kind == Pawn || rec.captured != NoKind {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if us == Black {
		b.fullmove++
	}
	b.side = them
	b.hash ^= keys.stateHash(them, b.castling, b.ep)

	if debugChecks && b.hash != b.ComputeHash() {
		panic(fmt.Sprintf("MakeMove: incremental hash %#x, recomputed %#x after %v", b.hash, b.ComputeHash(), m))
	}

	b.history[b.hash]++
	rec.after = b.hash
	return rec
}

// UndoMove reverts the move described by rec. rec must be the record of the
// most recent move not yet undone; anything else is a programming error and
// panics.
func (b *Board) UndoMove(rec MoveRecord) {
	if rec.after != b.hash {
		panic("UndoMove: record does not belong to the current position")
	}
	n, ok := b.history[b.hash]
	if !ok {
		panic("UndoMove: position not found in history")
	}
	if n <= 1 {
		delete(b.history, b.hash)
	} else {
		b.history[b.hash] = n - 1
	}

	m := rec.move
	us := b.side.Other()

	moved := b.removePiece(m.To)
	if m.Type.Promotion() != NoKind {
		moved.Kind = Pawn
	}
	if m.Type.IsCastle() {
		c := castleFor(us, m.Type)
		b.addPiece(c.rookFrom, b.removePiece(c.rookTo))
	}
	b.addPiece(m.From, moved)
	if rec.captured != NoKind {
		b.addPiece(m.Capture, Piece{Side: b.side, Kind: rec.captured})
	}

	b.side = us
	b.castling = rec.castling
	b.ep = rec.ep
	b.halfmove = rec.halfmove
	b.fullmove = rec.fullmove
	b.hash = rec.hash
}

// LegalMoves returns a newly allocated list of the legal moves.
func (b *Board) LegalMoves() []Move {
	calc := Calculate(b)
	return defaultGenerator.GenerateMoves(make([]Move, 0, MaxMoves), b, &calc)
}

// MakeLegalMove applies m only if it is in the current legal move list.
func (b *Board) MakeLegalMove(m Move) (MoveRecord, error) {
	if !slices.Contains(b.LegalMoves(), m) {
		return MoveRecord{}, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	return b.MakeMove(m), nil
}

// ApplyUCI parses UCI move text, resolves it against the legal moves and
// applies it.
func (b *Board) ApplyUCI(text string) (MoveRecord, error) {
	m, err := b.MoveFromUCI(text)
	if err != nil {
		return MoveRecord{}, err
	}
	return b.MakeMove(m), nil
}
