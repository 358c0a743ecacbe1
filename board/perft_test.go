package board_test

import (
	"testing"

	"chess-rules/board"
)

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		nodes []uint64 // by depth, starting at 1
		slow  int      // depths from here on are skipped in short mode
	}{
		{"initial", board.FENStartPos, []uint64{20, 400, 8902, 197281}, 4},
		{"benchmark", board.BenchmarkFEN, []uint64{44, 1486, 62379, 2103487}, 4},
		{"kiwipete", kiwipeteFEN, []uint64{48, 2039, 97862}, 3},
		{"position3", pos3FEN, []uint64{14, 191, 2812, 43238}, 5},
		{"position4", pos4FEN, []uint64{6, 264, 9467}, 4},
		{"position6", pos6FEN, []uint64{46, 2079, 89890}, 3},
		{"en passant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", []uint64{5, 19}, 3},
		{"promotion", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", []uint64{11}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			before := snap(b)
			for i, want := range tt.nodes {
				depth := i + 1
				if testing.Short() && depth >= tt.slow {
					break
				}
				if got := board.Perft(b, depth); got != want {
					t.Fatalf("perft(%d): got %d want %d", depth, got, want)
				}
			}
			if after := snap(b); after != before {
				t.Fatalf("perft left the board changed:\nbefore %+v\nafter  %+v", before, after)
			}
		})
	}
}

func TestPerftDepthZero(t *testing.T) {
	if got := board.Perft(board.StartPosition(), 0); got != 1 {
		t.Fatalf("perft(0): got %d want 1", got)
	}
}

func TestPerftQueenPromotionsOnly(t *testing.T) {
	b := mustFEN(t, "1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	if got := board.Perft(b, 1, board.WithQueenPromotionsOnly()); got != 5 {
		t.Fatalf("perft(1) queen-only: got %d want 5", got)
	}
}

func TestPerftBenchmarkQueenPromotionsOnly(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 4")
	}
	b := mustFEN(t, board.BenchmarkFEN)
	if got := board.Perft(b, 4, board.WithQueenPromotionsOnly()); got != 1806790 {
		t.Fatalf("perft(4) queen-only: got %d want 1806790", got)
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	b := mustFEN(t, kiwipeteFEN)
	res := board.Divide(b, 2)
	if len(res.Moves) != 48 {
		t.Fatalf("root moves: got %d want 48", len(res.Moves))
	}
	var sum uint64
	for _, n := range res.Moves {
		sum += n
	}
	if sum != res.Nodes || res.Nodes != 2039 {
		t.Fatalf("divide: sum %d nodes %d want 2039", sum, res.Nodes)
	}
	if _, ok := res.Moves["e1g1"]; !ok {
		t.Fatalf("castling missing from divide: %v", res.Moves)
	}
}

func TestDivideDepthOne(t *testing.T) {
	res := board.Divide(board.StartPosition(), 1)
	if res.Nodes != 20 {
		t.Fatalf("nodes: got %d want 20", res.Nodes)
	}
	for m, n := range res.Moves {
		if n != 1 {
			t.Fatalf("%s: got %d want 1", m, n)
		}
	}
}

func benchPerft(b *testing.B, fen string, depth int) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Perft(pos, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, board.FENStartPos, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, kiwipeteFEN, 3)
}

func BenchmarkGenerateMoves(b *testing.B) {
	pos, err := board.ParseFEN(kiwipeteFEN)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	gen := board.NewMoveGenerator()
	buf := make([]board.Move, 0, board.MaxMoves)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calc := board.Calculate(pos)
		buf = gen.GenerateMoves(buf, pos, &calc)
	}
}

func BenchmarkMakeUndo(b *testing.B) {
	pos, err := board.ParseFEN(kiwipeteFEN)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	moves := pos.LegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec := pos.MakeMove(moves[i%len(moves)])
		pos.UndoMove(rec)
	}
}
