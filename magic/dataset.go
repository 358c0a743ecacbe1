package magic

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrDatasetShape is returned when a dataset does not hold exactly 64
// magics per slider.
var ErrDatasetShape = errors.New("magic dataset must hold 64 bishop and 64 rook magics")

// Set is the magic-number dataset: one multiplier per square for each slider.
type Set struct {
	BishopMagics [64]uint64 `json:"bishopMagics"`
	RookMagics   [64]uint64 `json:"rookMagics"`
}

// Magic returns the multiplier stored for the slider on sq.
func (s *Set) Magic(sl Slider, sq int) uint64 {
	if sl == Rook {
		return s.RookMagics[sq]
	}
	return s.BishopMagics[sq]
}

func (s *Set) setMagic(sl Slider, sq int, magic uint64) {
	if sl == Rook {
		s.RookMagics[sq] = magic
		return
	}
	s.BishopMagics[sq] = magic
}

// Invalid returns the (slider, square) pairs whose magic fails validation.
func (s *Set) Invalid() []Entry {
	var bad []Entry
	for _, sl := range Sliders {
		for sq := 0; sq < 64; sq++ {
			m := s.Magic(sl, sq)
			if _, ok := Validate(sl, sq, m); !ok {
				bad = append(bad, Entry{Slider: sl, Square: sq, Magic: m})
			}
		}
	}
	return bad
}

// wire form; slices so a short or long array is reported instead of padded
type setJSON struct {
	BishopMagics []uint64 `json:"bishopMagics"`
	RookMagics   []uint64 `json:"rookMagics"`
}

// Load decodes a dataset in the {"bishopMagics": [...], "rookMagics": [...]} form.
// Individual magics are not validated here; Build repairs bad entries.
func Load(r io.Reader) (Set, error) {
	var raw setJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Set{}, fmt.Errorf("decode magic dataset: %w", err)
	}
	if len(raw.BishopMagics) != 64 || len(raw.RookMagics) != 64 {
		return Set{}, fmt.Errorf("%w: got %d bishop, %d rook", ErrDatasetShape, len(raw.BishopMagics), len(raw.RookMagics))
	}
	var s Set
	copy(s.BishopMagics[:], raw.BishopMagics)
	copy(s.RookMagics[:], raw.RookMagics)
	return s, nil
}

// LoadFile reads a dataset from path.
func LoadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, err
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return Set{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Write encodes the dataset as indented JSON.
func (s Set) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteFile writes the dataset to path, replacing any existing file.
func (s Set) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
