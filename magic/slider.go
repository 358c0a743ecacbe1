// Package magic builds magic-bitboard lookup tables for sliding pieces and
// searches for the multipliers those tables depend on.
//
// Squares are numbered a1 = 0 through h8 = 63, rank by rank.
package magic

import "math/bits"

// Slider selects the sliding piece a table or magic belongs to.
type Slider uint8

const (
	Bishop Slider = iota
	Rook
)

// Sliders lists both slider kinds in ordinal order.
var Sliders = [2]Slider{Bishop, Rook}

func (s Slider) String() string {
	switch s {
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	default:
		return "slider?"
	}
}

// file/rank steps for each slider
var directions = [2][4][2]int{
	Bishop: {{1, 1}, {-1, 1}, {1, -1}, {-1, -1}},
	Rook:   {{0, 1}, {0, -1}, {1, 0}, {-1, 0}},
}

// bitWidths holds the table index width per square. Each value equals the
// popcount of the square's relevant-occupancy mask.
var bitWidths = [2][64]uint8{
	Bishop: {
		6, 5, 5, 5, 5, 5, 5, 6,
		5, 5, 5, 5, 5, 5, 5, 5,
		5, 5, 7, 7, 7, 7, 5, 5,
		5, 5, 7, 9, 9, 7, 5, 5,
		5, 5, 7, 9, 9, 7, 5, 5,
		5, 5, 7, 7, 7, 7, 5, 5,
		5, 5, 5, 5, 5, 5, 5, 5,
		6, 5, 5, 5, 5, 5, 5, 6,
	},
	Rook: {
		12, 11, 11, 11, 11, 11, 11, 12,
		11, 10, 10, 10, 10, 10, 10, 11,
		11, 10, 10, 10, 10, 10, 10, 11,
		11, 10, 10, 10, 10, 10, 10, 11,
		11, 10, 10, 10, 10, 10, 10, 11,
		11, 10, 10, 10, 10, 10, 10, 11,
		11, 10, 10, 10, 10, 10, 10, 11,
		12, 11, 11, 11, 11, 11, 11, 12,
	},
}

func onBoard(file, rank int) bool { return file >= 0 && file < 8 && rank >= 0 && rank < 8 }

// BitWidth returns the number of index bits used for the square's table.
func BitWidth(s Slider, sq int) uint { return uint(bitWidths[s][sq]) }

// RelevantOccupancy returns the squares whose occupancy can change the
// slider's attack set from sq. The last square of every ray is left out
// since a blocker there never hides anything.
func RelevantOccupancy(s Slider, sq int) uint64 {
	f0, r0 := sq%8, sq/8
	var mask uint64
	for _, d := range directions[s] {
		for f, r := f0+d[0], r0+d[1]; onBoard(f+d[0], r+d[1]); f, r = f+d[0], r+d[1] {
			mask |= uint64(1) << uint(r*8+f)
		}
	}
	return mask
}

// SlowAttacks computes the attack set by walking every ray until it leaves
// the board or hits an occupied square, which is included.
func SlowAttacks(s Slider, sq int, occ uint64) uint64 {
	f0, r0 := sq%8, sq/8
	var attacks uint64
	for _, d := range directions[s] {
		for f, r := f0+d[0], r0+d[1]; onBoard(f, r); f, r = f+d[0], r+d[1] {
			bit := uint64(1) << uint(r*8+f)
			attacks |= bit
			if occ&bit != 0 {
				break
			}
		}
	}
	return attacks
}

// DistinctAttackSets returns how many different attack sets the slider can
// have on sq, the lower bound for any collision-free table.
func DistinctAttackSets(s Slider, sq int) int {
	f0, r0 := sq%8, sq/8
	n := 1
	for _, d := range directions[s] {
		steps := 0
		for f, r := f0+d[0], r0+d[1]; onBoard(f, r); f, r = f+d[0], r+d[1] {
			steps++
		}
		if steps > 0 {
			n *= steps
		}
	}
	return n
}

// Blockers returns every subset of mask, starting with the empty set.
func Blockers(mask uint64) []uint64 {
	out := make([]uint64, 0, 1<<bits.OnesCount64(mask))
	var b uint64
	for {
		out = append(out, b)
		b = (b - mask) & mask
		if b == 0 {
			return out
		}
	}
}

// Index maps a blocker pattern to its table slot.
func Index(blockers, mask, magic uint64, width uint) uint64 {
	return ((blockers & mask) * magic) >> (64 - width)
}
