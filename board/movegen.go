package board

import "math/bits"

// MoveGenerator produces legal moves from a position and its attack
// calculator. It holds only configuration and may be shared.
type MoveGenerator struct {
	promotions []PieceKind
}

// GenOption configures a MoveGenerator.
type GenOption func(*MoveGenerator)

// WithAllPromotions generates one move per promotion kind. This is the default.
func WithAllPromotions() GenOption {
	return func(g *MoveGenerator) { g.promotions = []PieceKind{Queen, Knight, Rook, Bishop} }
}

// WithQueenPromotionsOnly generates only queen promotions.
func WithQueenPromotionsOnly() GenOption {
	return func(g *MoveGenerator) { g.promotions = []PieceKind{Queen} }
}

// NewMoveGenerator returns a generator; by default every promotion kind is produced.
func NewMoveGenerator(opts ...GenOption) *MoveGenerator {
	g := &MoveGenerator{}
	WithAllPromotions()(g)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = NewMoveGenerator()

// appendTargets adds one regular move from sq to every square in targets.
func appendTargets(dst []Move, from Square, targets uint64) []Move {
	for ; targets != 0; targets &= targets - 1 {
		to := Square(bits.TrailingZeros64(targets))
		dst = append(dst, Move{From: from, To: to, Capture: to, Type: Regular})
	}
	return dst
}

// GenerateMoves truncates dst and appends every legal move for the side to
// move. calc must have been computed for b. A dst with capacity MaxMoves is
// never reallocated.
func (g *MoveGenerator) GenerateMoves(dst []Move, b *Board, calc *AttackCalculator) []Move {
	dst = dst[:0]
	t := b.tables
	us, them := b.side, b.side.Other()
	ours := &b.pieces[us]
	own := ours[0]
	enemy := b.pieces[them][0]
	occ := own | enemy

	ksq := calc.king
	if ksq == NoSquare {
		return dst
	}

	// King steps, never onto an attacked square.
	dst = appendTargets(dst, ksq, t.king[ksq]&^own&^calc.attacked)
	if calc.doubleCheck {
		return dst
	}

	allowed := ^own
	if calc.InCheck() {
		allowed &= calc.checkBlock
	}
	pinned := calc.Pinned()

	// A pinned knight can never stay on its line.
	for pcs := ours[Knight] &^ pinned; pcs != 0; pcs &= pcs - 1 {
		sq := Square(bits.TrailingZeros64(pcs))
		dst = appendTargets(dst, sq, t.knight[sq]&allowed)
	}

	for pcs := ours[Bishop] | ours[Queen]; pcs != 0; pcs &= pcs - 1 {
		sq := Square(bits.TrailingZeros64(pcs))
		targets := t.BishopAttacks(sq, occ) & allowed
		if pinned&sq.Bitboard() != 0 {
			targets &= calc.PinLine(sq)
		}
		dst = appendTargets(dst, sq, targets)
	}

	for pcs := ours[Rook] | ours[Queen]; pcs != 0; pcs &= pcs - 1 {
		sq := Square(bits.TrailingZeros64(pcs))
		targets := t.RookAttacks(sq, occ) & allowed
		if pinned&sq.Bitboard() != 0 {
			targets &= calc.PinLine(sq)
		}
		dst = appendTargets(dst, sq, targets)
	}

	dst = g.pawnMoves(dst, b, calc, allowed, occ, enemy)

	if !calc.InCheck() {
		dst = castlingMoves(dst, b, calc, occ)
	}
	return dst
}

func (g *MoveGenerator) pawnMoves(dst []Move, b *Board, calc *AttackCalculator, allowed, occ, enemy uint64) []Move {
	t := b.tables
	us := b.side
	forward, startRank, lastRank := 8, 1, 7
	if us == Black {
		forward, startRank, lastRank = -8, 6, 0
	}

	for pcs := b.pieces[us][Pawn]; pcs != 0; pcs &= pcs - 1 {
		from := Square(bits.TrailingZeros64(pcs))
		line := calc.PinLine(from)

		var pushes uint64
		one := Square(int(from) + forward)
		if occ&one.Bitboard() == 0 {
			pushes = one.Bitboard()
			if from.Rank() == startRank {
				two := Square(int(from) + 2*forward)
				if occ&two.Bitboard() == 0 && two.Bitboard()&allowed&line != 0 {
					dst = append(dst, Move{From: from, To: two, Capture: two, Type: PawnDoubleStep})
				}
			}
		}

		targets := (pushes | t.pawn[us][from]&enemy) & allowed & line
		for ; targets != 0; targets &= targets - 1 {
			to := Square(bits.TrailingZeros64(targets))
			if to.Rank() == lastRank {
				for _, k := range g.promotions {
					dst = append(dst, Move{From: from, To: to, Capture: to, Type: promotionType(k)})
				}
				continue
			}
			dst = append(dst, Move{From: from, To: to, Capture: to, Type: Regular})
		}

		if ep := b.ep; ep.Possible && ep.Target != calc.forbiddenEP && t.pawn[us][from]&ep.Target.Bitboard() != 0 {
			if calc.InCheck() && calc.checkBlock&(ep.Pawn.Bitboard()|ep.Target.Bitboard()) == 0 {
				continue
			}
			if line&ep.Target.Bitboard() == 0 {
				continue
			}
			dst = append(dst, Move{From: from, To: ep.Target, Capture: ep.Pawn, Type: Regular})
		}
	}
	return dst
}

// castlingMoves requires the right, the king and rook on their home
// squares, an empty path between them and no attacked square on the
// king's way. The caller has already excluded check.
func castlingMoves(dst []Move, b *Board, calc *AttackCalculator, occ uint64) []Move {
	t := b.tables
	us := b.side
	for _, mt := range [2]MoveType{CastleKingSide, CastleQueenSide} {
		c := castleFor(us, mt)
		if b.castling[us]&c.right == 0 {
			continue
		}
		if b.squares[c.kingFrom] != (Piece{Side: us, Kind: King}) || b.squares[c.rookFrom] != (Piece{Side: us, Kind: Rook}) {
			continue
		}
		if t.between[c.kingFrom][c.rookFrom]&occ != 0 {
			continue
		}
		kingPath := t.between[c.kingFrom][c.kingTo] | c.kingTo.Bitboard()
		if kingPath&calc.attacked != 0 {
			continue
		}
		dst = append(dst, Move{From: c.kingFrom, To: c.kingTo, Capture: c.kingTo, Type: mt})
	}
	return dst
}

// FilterLoudMoves truncates out and appends the captures (en passant
// included) and promotions from all, which must be the legal moves of b.
func FilterLoudMoves(all, out []Move, b *Board) []Move {
	out = out[:0]
	for _, m := range all {
		if m.Type.Promotion() != NoKind || b.squares[m.Capture].Kind != NoKind {
			out = append(out, m)
		}
	}
	return out
}

// MovesFrom truncates out and appends the moves in all that start on sq.
func MovesFrom(all, out []Move, sq Square) []Move {
	out = out[:0]
	for _, m := range all {
		if m.From == sq {
			out = append(out, m)
		}
	}
	return out
}
