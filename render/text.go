// Package render draws positions, bitboards and attack-calculator state as
// text and SVG. It is a debugging surface; nothing in the rules core
// depends on it.
package render

import (
	"fmt"
	"io"
	"math/bits"
	"strings"

	"chess-rules/board"
)

const files = "  a b c d e f g h\n"

// Bitboard returns the set as an 8x8 grid with rank 8 on top, marking
// members with X.
func Bitboard(bb uint64) string {
	var sb strings.Builder
	sb.WriteString(files)
	for r := 7; r >= 0; r-- {
		fmt.Fprintf(&sb, "%d ", r+1)
		for f := 0; f < 8; f++ {
			if bb&board.NewSquare(f, r).Bitboard() != 0 {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		fmt.Fprintf(&sb, "%d\n", r+1)
	}
	sb.WriteString(files)
	return sb.String()
}

// Board returns the position as an 8x8 grid of FEN piece letters followed by
// the FEN itself.
func Board(b *board.Board) string {
	var sb strings.Builder
	sb.WriteString(files)
	for r := 7; r >= 0; r-- {
		fmt.Fprintf(&sb, "%d ", r+1)
		for f := 0; f < 8; f++ {
			p := b.PieceAt(board.NewSquare(f, r))
			if p.Empty() {
				sb.WriteString(". ")
				continue
			}
			sb.WriteByte(p.Char())
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d\n", r+1)
	}
	sb.WriteString(files)
	sb.WriteString(b.FEN())
	sb.WriteByte('\n')
	return sb.String()
}

// section writes a titled bitboard with its population count.
func section(w io.Writer, title string, bb uint64) error {
	_, err := fmt.Fprintf(w, "%s (%d):\n%s", title, bits.OnesCount64(bb), Bitboard(bb))
	return err
}

// AttackReport writes everything the attack calculator knows about b: the
// attacked squares, the check-block mask, pins with their lines and
// revealers per axis, the check flags, the forbidden en passant square and
// the check squares per piece kind.
func AttackReport(w io.Writer, b *board.Board, calc *board.AttackCalculator) error {
	if err := section(w, "Attacked squares", calc.Attacked()); err != nil {
		return err
	}
	if err := section(w, "Squares to block check", calc.CheckBlock()); err != nil {
		return err
	}
	for _, a := range board.Axes {
		pins := calc.Pins(a)
		if err := section(w, "Pinned pieces on "+a.String(), pins); err != nil {
			return err
		}
		for ; pins != 0; pins &= pins - 1 {
			sq := board.Square(bits.TrailingZeros64(pins))
			if err := section(w, "Pin line of "+sq.String(), calc.PinLine(sq)); err != nil {
				return err
			}
		}
		if err := section(w, "Pin revealers on "+a.String(), calc.PinRevealers(a)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "In check: %v\nIn double check: %v\nForbidden en passant square: %v\n",
		calc.InCheck(), calc.DoubleCheck(), calc.ForbiddenEnPassant()); err != nil {
		return err
	}
	for _, k := range board.Kinds {
		if err := section(w, k.String()+" check squares", calc.CheckSquares(k)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Status: %v\n", b.Status())
	return err
}
