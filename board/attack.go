package board

import "math/bits"

// AttackCalculator describes the threats in a position from the point of
// view of the side to move. It is computed once per position by Calculate
// and not changed afterwards.
type AttackCalculator struct {
	// squares attacked by the opponent, with our king treated as absent so
	// it cannot retreat along a checking line
	attacked   uint64
	attackedBy [7]uint64 // per opponent piece kind

	checkers    uint64
	checkBlock  uint64 // capture-or-interpose squares in single check, else 0
	doubleCheck bool

	pins         [4]uint64 // our pinned pieces per axis
	pinRevealers [4]uint64 // the enemy sliders behind those pins

	forbiddenEP Square

	// squares from which our piece of each kind would give direct check
	checkSquares [7]uint64

	king Square
	// lines through our king per axis, cached for pin restriction
	kingLines [4]uint64
}

// Calculate builds the attack picture for the side to move.
func Calculate(b *Board) AttackCalculator {
	var c AttackCalculator
	c.compute(b)
	return c
}

// NewAttackCalculator is Calculate returning a pointer.
func NewAttackCalculator(b *Board) *AttackCalculator {
	c := Calculate(b)
	return &c
}

func (c *AttackCalculator) compute(b *Board) {
	t := b.tables
	us, them := b.side, b.side.Other()
	ours := &b.pieces[us]
	theirs := &b.pieces[them]
	occ := ours[0] | theirs[0]

	ksq := b.KingSquare(us)
	c.king = ksq
	c.forbiddenEP = NoSquare

	// 1. opponent attack maps
	xray := occ &^ ours[King]
	for kind := King; kind <= Queen; kind++ {
		var att uint64
		for pcs := theirs[kind]; pcs != 0; pcs &= pcs - 1 {
			sq := Square(bits.TrailingZeros64(pcs))
			switch kind {
			case King:
				att |= t.king[sq]
			case Pawn:
				att |= t.pawn[them][sq]
			case Knight:
				att |= t.knight[sq]
			case Bishop:
				att |= t.BishopAttacks(sq, xray)
			case Rook:
				att |= t.RookAttacks(sq, xray)
			case Queen:
				att |= t.QueenAttacks(sq, xray)
			}
		}
		c.attackedBy[kind] = att
		c.attacked |= att
	}

	if ksq == NoSquare {
		return
	}
	for _, a := range Axes {
		c.kingLines[a] = t.line[a][ksq]
	}

	// 2. checkers and the check-block mask
	diagSliders := theirs[Bishop] | theirs[Queen]
	lineSliders := theirs[Rook] | theirs[Queen]
	c.checkers = b.attackersOf(ksq, them)
	switch bits.OnesCount64(c.checkers) {
	case 0:
	case 1:
		checker := Square(bits.TrailingZeros64(c.checkers))
		c.checkBlock = c.checkers | t.between[ksq][checker]
	default:
		c.doubleCheck = true
	}

	// 3. pins: an enemy slider on a king line with exactly one of our
	// pieces between them
	for _, a := range Axes {
		snipers := diagSliders
		if a == AxisFile || a == AxisRank {
			snipers = lineSliders
		}
		for s := snipers & t.line[a][ksq]; s != 0; s &= s - 1 {
			sniper := Square(bits.TrailingZeros64(s))
			blockers := t.between[ksq][sniper] & occ
			if blockers != 0 && blockers&(blockers-1) == 0 && blockers&ours[0] != 0 {
				c.pins[a] |= blockers
				c.pinRevealers[a] |= sniper.Bitboard()
			}
		}
	}

	// 4. en passant that would uncover a slider attack on our king, the
	// classic case being king, both pawns and a rook or queen on one rank
	if ep := b.ep; ep.Possible {
		capturers := t.pawn[them][ep.Target] & ours[Pawn] &^ c.Pinned()
		rookView := t.RookAttacks(ksq, occ)
		bishopView := t.BishopAttacks(ksq, occ)
		for ; capturers != 0; capturers &= capturers - 1 {
			from := Square(bits.TrailingZeros64(capturers))
			after := occ&^from.Bitboard()&^ep.Pawn.Bitboard() | ep.Target.Bitboard()
			if (t.RookAttacks(ksq, after)&^rookView)&lineSliders != 0 ||
				(t.BishopAttacks(ksq, after)&^bishopView)&diagSliders != 0 {
				c.forbiddenEP = ep.Target
				break
			}
		}
	}

	// 5. direct check squares against the enemy king
	if eksq := b.KingSquare(them); eksq != NoSquare {
		c.checkSquares[Pawn] = t.pawn[them][eksq]
		c.checkSquares[Knight] = t.knight[eksq]
		c.checkSquares[Bishop] = t.BishopAttacks(eksq, occ)
		c.checkSquares[Rook] = t.RookAttacks(eksq, occ)
		c.checkSquares[Queen] = c.checkSquares[Bishop] | c.checkSquares[Rook]
	}
}

// attackersOf returns the pieces of side by that attack sq.
func (b *Board) attackersOf(sq Square, by Side) uint64 {
	t := b.tables
	p := &b.pieces[by]
	occ := b.pieces[White][0] | b.pieces[Black][0]
	return t.pawn[by.Other()][sq]&p[Pawn] |
		t.knight[sq]&p[Knight] |
		t.king[sq]&p[King] |
		t.BishopAttacks(sq, occ)&(p[Bishop]|p[Queen]) |
		t.RookAttacks(sq, occ)&(p[Rook]|p[Queen])
}

// Attacked returns every square the opponent attacks.
func (c *AttackCalculator) Attacked() uint64 { return c.attacked }

// AttackedBy returns the squares attacked by the opponent's pieces of kind k.
func (c *AttackCalculator) AttackedBy(k PieceKind) uint64 { return c.attackedBy[k.Ordinal()] }

// InCheck reports whether the side to move is in check.
func (c *AttackCalculator) InCheck() bool { return c.checkers != 0 }

// Checkers returns the squares of the pieces giving check.
func (c *AttackCalculator) Checkers() uint64 { return c.checkers }

// DoubleCheck reports whether two pieces give check at once.
func (c *AttackCalculator) DoubleCheck() bool { return c.doubleCheck }

// CheckBlock returns the squares where a non-king move resolves a single
// check: the checker's square and, for a slider, the squares between it and
// the king. It is 0 when not in check and also in double check; use
// DoubleCheck to tell the two apart.
func (c *AttackCalculator) CheckBlock() uint64 { return c.checkBlock }

// Pins returns our pieces pinned along the axis.
func (c *AttackCalculator) Pins(a Axis) uint64 { return c.pins[a] }

// Pinned returns all our pinned pieces.
func (c *AttackCalculator) Pinned() uint64 {
	return c.pins[AxisFile] | c.pins[AxisRank] | c.pins[AxisDiagonal] | c.pins[AxisAntiDiagonal]
}

// PinRevealers returns the enemy sliders pinning along the axis.
func (c *AttackCalculator) PinRevealers(a Axis) uint64 { return c.pinRevealers[a] }

// PinLine returns the squares a piece on sq may move to without leaving its
// pin, or all squares when it is not pinned.
func (c *AttackCalculator) PinLine(sq Square) uint64 {
	bit := sq.Bitboard()
	for _, a := range Axes {
		if c.pins[a]&bit != 0 {
			return c.kingLines[a]
		}
	}
	return ^uint64(0)
}

// ForbiddenEnPassant returns the en passant target square when capturing
// there would expose our king, otherwise NoSquare.
func (c *AttackCalculator) ForbiddenEnPassant() Square { return c.forbiddenEP }

// CheckSquares returns the squares from which our piece of kind k would
// attack the enemy king.
func (c *AttackCalculator) CheckSquares(k PieceKind) uint64 { return c.checkSquares[k.Ordinal()] }
