package magic

// Validator checks candidate magics for one (slider, square) pair. The
// blocker patterns and their attack sets are enumerated once and reused for
// every candidate, so a search loop allocates nothing per attempt.
type Validator struct {
	slider   Slider
	square   int
	mask     uint64
	width    uint
	patterns []uint64
	attacks  []uint64

	// slot scratch, valid only where seen == epoch
	seen   []uint32
	stored []uint64
	epoch  uint32
}

// NewValidator enumerates the blocker patterns of sq for the slider.
func NewValidator(s Slider, sq int) *Validator {
	mask := RelevantOccupancy(s, sq)
	patterns := Blockers(mask)
	attacks := make([]uint64, len(patterns))
	for i, p := range patterns {
		attacks[i] = SlowAttacks(s, sq, p)
	}
	return &Validator{
		slider:   s,
		square:   sq,
		mask:     mask,
		width:    BitWidth(s, sq),
		patterns: patterns,
		attacks:  attacks,
		seen:     make([]uint32, len(patterns)),
		stored:   make([]uint64, len(patterns)),
	}
}

// Mask returns the relevant-occupancy mask being validated against.
func (v *Validator) Mask() uint64 { return v.mask }

// Width returns the index width in bits.
func (v *Validator) Width() uint { return v.width }

// Patterns returns the number of blocker patterns for the square.
func (v *Validator) Patterns() int { return len(v.patterns) }

// Check reports whether magic maps every blocker pattern to an in-range slot
// without two patterns with different attack sets sharing a slot. On success
// it also returns the highest slot used.
func (v *Validator) Check(magic uint64) (maxIndex int, ok bool) {
	v.epoch++
	if v.epoch == 0 {
		for i := range v.seen {
			v.seen[i] = 0
		}
		v.epoch = 1
	}
	for i, p := range v.patterns {
		idx := Index(p, v.mask, magic, v.width)
		if idx >= uint64(len(v.patterns)) {
			return 0, false
		}
		if v.seen[idx] == v.epoch {
			if v.stored[idx] != v.attacks[i] {
				return 0, false
			}
		} else {
			v.seen[idx] = v.epoch
			v.stored[idx] = v.attacks[i]
		}
		if int(idx) > maxIndex {
			maxIndex = int(idx)
		}
	}
	return maxIndex, true
}

// fill writes every attack set into table at the slot magic selects. The
// table must hold at least maxIndex+1 entries for a validated magic.
func (v *Validator) fill(magic uint64, table []uint64) {
	for i, p := range v.patterns {
		table[Index(p, v.mask, magic, v.width)] = v.attacks[i]
	}
}

// Validate is a one-shot form of Validator.Check.
func Validate(s Slider, sq int, magic uint64) (maxIndex int, ok bool) {
	return NewValidator(s, sq).Check(magic)
}
