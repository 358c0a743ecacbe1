package board

// MoveType tags the special handling a move needs.
type MoveType uint8

const (
	Regular MoveType = iota
	PawnDoubleStep
	PromoteQueen
	PromoteKnight
	PromoteRook
	PromoteBishop
	CastleKingSide
	CastleQueenSide
)

// Promotion returns the kind a pawn becomes, or NoKind for other moves.
func (t MoveType) Promotion() PieceKind {
	switch t {
	case PromoteQueen:
		return Queen
	case PromoteKnight:
		return Knight
	case PromoteRook:
		return Rook
	case PromoteBishop:
		return Bishop
	default:
		return NoKind
	}
}

// IsCastle reports whether t is either castling move.
func (t MoveType) IsCastle() bool { return t == CastleKingSide || t == CastleQueenSide }

func promotionType(k PieceKind) MoveType {
	switch k {
	case Queen:
		return PromoteQueen
	case Knight:
		return PromoteKnight
	case Rook:
		return PromoteRook
	case Bishop:
		return PromoteBishop
	default:
		return Regular
	}
}

// Move is a move in coordinate form. Capture equals To except for en
// passant, where it is the square of the captured pawn.
type Move struct {
	From    Square
	To      Square
	Capture Square
	Type    MoveType
}

// NullMove is the zero-information move; it is never legal.
var NullMove = Move{From: NoSquare, To: NoSquare, Capture: NoSquare}

// IsEnPassant reports whether the captured pawn is not on the target square.
func (m Move) IsEnPassant() bool { return m.Capture != m.To }

// String returns UCI coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.From >= NoSquare || m.To >= NoSquare {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	switch m.Type.Promotion() {
	case Queen:
		s += "q"
	case Knight:
		s += "n"
	case Rook:
		s += "r"
	case Bishop:
		s += "b"
	}
	return s
}

// castling geometry per side and move type
type castlePath struct {
	kingFrom, kingTo Square
	rookFrom, rookTo Square
	right            CastlingRights
}

func castleFor(s Side, t MoveType) castlePath {
	var c castlePath
	if t == CastleKingSide {
		c = castlePath{kingFrom: E1, kingTo: G1, rookFrom: H1, rookTo: F1, right: KingSide}
	} else {
		c = castlePath{kingFrom: E1, kingTo: C1, rookFrom: A1, rookTo: D1, right: QueenSide}
	}
	if s == Black {
		c.kingFrom += 56
		c.kingTo += 56
		c.rookFrom += 56
		c.rookTo += 56
	}
	return c
}

// rookRight returns the castling right tied to a rook home square of side s.
func rookRight(s Side, sq Square) CastlingRights {
	base := Square(0)
	if s == Black {
		base = 56
	}
	switch sq {
	case base + 7:
		return KingSide
	case base:
		return QueenSide
	}
	return NoCastling
}
