package board

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// ParseUCI splits UCI coordinate text such as "e2e4" or "a7a8q" into its
// squares and promotion kind. It does not consult any position.
func ParseUCI(text string) (from, to Square, promo PieceKind, err error) {
	text = strings.TrimSpace(strings.ToLower(text))
	if len(text) != 4 && len(text) != 5 {
		return NoSquare, NoSquare, NoKind, fmt.Errorf("%w: %q", ErrInvalidMoveText, text)
	}
	if from, err = ParseSquare(text[0:2]); err != nil {
		return NoSquare, NoSquare, NoKind, fmt.Errorf("%w: %q: %v", ErrInvalidMoveText, text, err)
	}
	if to, err = ParseSquare(text[2:4]); err != nil {
		return NoSquare, NoSquare, NoKind, fmt.Errorf("%w: %q: %v", ErrInvalidMoveText, text, err)
	}
	if len(text) == 5 {
		switch text[4] {
		case 'q':
			promo = Queen
		case 'n':
			promo = Knight
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		default:
			return NoSquare, NoSquare, NoKind, fmt.Errorf("%w: %q: bad promotion", ErrInvalidMoveText, text)
		}
	}
	return from, to, promo, nil
}

// MoveFromUCI resolves UCI text to the matching legal move, filling in the
// capture square and move type (castling, double step, en passant,
// promotion) from the position.
func (b *Board) MoveFromUCI(text string) (Move, error) {
	from, to, promo, err := ParseUCI(text)
	if err != nil {
		return NullMove, err
	}
	moves := b.LegalMoves()
	i := slices.IndexFunc(moves, func(m Move) bool {
		return m.From == from && m.To == to && m.Type.Promotion() == promo
	})
	if i < 0 {
		return NullMove, fmt.Errorf("%w: %s in %s", ErrIllegalMove, text, b.FEN())
	}
	return moves[i], nil
}
