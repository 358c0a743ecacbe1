package magic

import (
	"math/rand"
	"sync"
)

// seed base for re-searching entries that fail validation in Build
const repairSeed = 0x5EED

type squareTable struct {
	mask    uint64
	magic   uint64
	shift   uint8
	attacks []uint64
}

// SlidingAttacks holds the per-square lookup tables for both sliders. It is
// immutable after Build and safe for concurrent use.
type SlidingAttacks struct {
	tables   [2][64]squareTable
	set      Set
	repaired int
}

// Build validates every magic in set and fills minimally sized tables.
// Entries that fail validation are replaced by a deterministic search, so
// Build always succeeds; Repaired reports how many were replaced.
func Build(set Set) *SlidingAttacks {
	t := &SlidingAttacks{set: set}
	for _, sl := range Sliders {
		for sq := 0; sq < 64; sq++ {
			v := NewValidator(sl, sq)
			m := set.Magic(sl, sq)
			maxIndex, ok := v.Check(m)
			if !ok {
				e := search(v, rand.New(rand.NewSource(repairSeed+int64(int(sl)*64+sq))))
				m, maxIndex = e.Magic, e.MaxIndex
				t.set.setMagic(sl, sq, m)
				t.repaired++
			}
			st := squareTable{
				mask:    v.Mask(),
				magic:   m,
				shift:   uint8(64 - v.Width()),
				attacks: make([]uint64, maxIndex+1),
			}
			v.fill(m, st.attacks)
			t.tables[sl][sq] = st
		}
	}
	return t
}

var (
	defaultOnce   sync.Once
	defaultTables *SlidingAttacks
)

// Default returns the tables built from DefaultSet. They are built on first
// use and shared afterwards.
func Default() *SlidingAttacks {
	defaultOnce.Do(func() {
		defaultTables = Build(DefaultSet())
	})
	return defaultTables
}

// Attacks returns the slider's attack set from sq for the given occupancy.
func (t *SlidingAttacks) Attacks(s Slider, sq int, occ uint64) uint64 {
	st := &t.tables[s][sq]
	return st.attacks[((occ&st.mask)*st.magic)>>st.shift]
}

// Bishop returns bishop attacks from sq.
func (t *SlidingAttacks) Bishop(sq int, occ uint64) uint64 {
	st := &t.tables[Bishop][sq]
	return st.attacks[((occ&st.mask)*st.magic)>>st.shift]
}

// Rook returns rook attacks from sq.
func (t *SlidingAttacks) Rook(sq int, occ uint64) uint64 {
	st := &t.tables[Rook][sq]
	return st.attacks[((occ&st.mask)*st.magic)>>st.shift]
}

// Queen returns the union of bishop and rook attacks from sq.
func (t *SlidingAttacks) Queen(sq int, occ uint64) uint64 {
	return t.Bishop(sq, occ) | t.Rook(sq, occ)
}

// Set returns the magics actually in use, including repaired entries.
func (t *SlidingAttacks) Set() Set { return t.set }

// Repaired reports how many input magics failed validation in Build.
func (t *SlidingAttacks) Repaired() int { return t.repaired }

// Entries returns the total number of table slots across all squares.
func (t *SlidingAttacks) Entries() int {
	n := 0
	for _, sl := range Sliders {
		for sq := range t.tables[sl] {
			n += len(t.tables[sl][sq].attacks)
		}
	}
	return n
}
