package board_test

import (
	"os"
	"path/filepath"
	"testing"

	"chess-rules/board"
	"chess-rules/magic"
)

func TestLoadTablesFromDataset(t *testing.T) {
	set := magic.DefaultSet()
	set.RookMagics[board.A1] = 0
	set.BishopMagics[board.D4] = 1
	path := filepath.Join(t.TempDir(), "magics.json")
	if err := set.WriteFile(path); err != nil {
		t.Fatal(err)
	}

	tables, err := board.LoadTables(path)
	if err != nil {
		t.Fatalf("LoadTables: %v", err)
	}
	if got := tables.Sliders().Repaired(); got != 2 {
		t.Fatalf("repaired: got %d want 2", got)
	}

	b, err := board.ParseFEN(kiwipeteFEN, board.WithTables(tables))
	if err != nil {
		t.Fatal(err)
	}
	if b.Tables() != tables {
		t.Fatalf("board ignored WithTables")
	}
	if got := board.Perft(b, 2); got != 2039 {
		t.Fatalf("perft(2) with loaded tables: got %d want 2039", got)
	}
	// hashes depend only on the Zobrist keys, not on the slider tables
	if def := mustFEN(t, kiwipeteFEN); def.Hash() != b.Hash() {
		t.Fatalf("hash differs between table sets: %#x vs %#x", def.Hash(), b.Hash())
	}
}

func TestSearchedTablesAgreeWithDefault(t *testing.T) {
	if testing.Short() {
		t.Skip("full magic search")
	}
	set, _ := magic.SearchAll(magic.WithSeed(7))
	tables := board.NewTables(magic.Build(set))
	b, err := board.ParseFEN(pos3FEN, board.WithTables(tables))
	if err != nil {
		t.Fatal(err)
	}
	if got := board.Perft(b, 3); got != 2812 {
		t.Fatalf("perft(3) with searched tables: got %d want 2812", got)
	}
}

func TestLoadTablesMissingFile(t *testing.T) {
	_, err := board.LoadTables(filepath.Join(t.TempDir(), "absent.json"))
	if !os.IsNotExist(err) {
		t.Fatalf("LoadTables on a missing file: got %v want not-exist", err)
	}
}
