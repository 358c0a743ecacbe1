package board_test

import (
	"testing"

	"chess-rules/board"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want board.GameState
	}{
		{"start", board.FENStartPos, board.InProgress},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", board.BlackWon},
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 1 1", board.WhiteWon},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", board.Draw},
		{"fifty moves", "4k3/8/8/8/8/8/8/R3K3 b - - 100 80", board.Draw},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", board.Draw},
		{"check", "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1", board.InProgress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			if got := b.Status(); got != tt.want {
				t.Fatalf("Status: got %v want %v", got, tt.want)
			}
			calc := board.Calculate(b)
			if got := board.StatusOf(b, b.LegalMoves(), &calc); got != tt.want {
				t.Fatalf("StatusOf: got %v want %v", got, tt.want)
			}
		})
	}
}

func TestThreefoldRepetition(t *testing.T) {
	b := board.StartPosition()
	cycle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	play(t, b, cycle...)
	if b.Occurrences() != 2 || b.IsDrawByRepetition() {
		t.Fatalf("after one cycle: occurrences %d, draw %v", b.Occurrences(), b.IsDrawByRepetition())
	}
	recs := play(t, b, cycle...)
	if b.Occurrences() != 3 || !b.IsDrawByRepetition() {
		t.Fatalf("after two cycles: occurrences %d, draw %v", b.Occurrences(), b.IsDrawByRepetition())
	}
	if b.Status() != board.Draw {
		t.Fatalf("Status: got %v want draw", b.Status())
	}
	b.UndoMove(recs[len(recs)-1])
	if b.IsDrawByRepetition() {
		t.Fatalf("repetition draw survived undo")
	}
	b.UndoMove(recs[len(recs)-2])
	b.UndoMove(recs[len(recs)-3])
	b.UndoMove(recs[len(recs)-4])
	if b.Occurrences() != 2 {
		t.Fatalf("occurrences after undoing a cycle: got %d want 2", b.Occurrences())
	}
}

func TestRepetitionNeedsSameSideToMove(t *testing.T) {
	w := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	b := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	if w.Hash() == b.Hash() {
		t.Fatalf("side to move does not change the hash")
	}
	// three rook moves hand the move to the other side in the same placement
	play(t, w, "a1a2", "e8d8", "a2a5", "d8e8", "a5a1")
	if w.Occurrences() != 1 {
		t.Fatalf("occurrences with black to move: got %d want 1", w.Occurrences())
	}
	if w.Hash() != b.Hash() {
		t.Fatalf("hash after the triangle: got %#x want %#x", w.Hash(), b.Hash())
	}
}

func TestFiftyMoveRule(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 99 60")
	if b.IsDrawByFiftyMoves() {
		t.Fatalf("draw at halfmove 99")
	}
	rec := play(t, b, "a1a2")[0]
	if !b.IsDrawByFiftyMoves() || b.Status() != board.Draw {
		t.Fatalf("no draw at halfmove %d", b.HalfmoveClock())
	}
	b.UndoMove(rec)
	if b.IsDrawByFiftyMoves() {
		t.Fatalf("draw survived undo")
	}
	// a capture resets the clock
	b = mustFEN(t, "4k3/8/8/8/8/8/r7/R3K3 w - - 99 60")
	play(t, b, "a1a2")
	if b.IsDrawByFiftyMoves() || b.HalfmoveClock() != 0 {
		t.Fatalf("capture did not reset the clock: %d", b.HalfmoveClock())
	}
}

func TestDrawByMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"knight", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"two knights", "4k3/8/8/8/8/8/8/3NKN2 w - - 0 1", true},
		{"bishop each", "2b1k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"bishop pair", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"pawn", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"black rook", "r3k3/8/8/8/8/8/8/4K3 w - - 0 1", false},
		{"queen", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustFEN(t, tt.fen).IsDrawByMaterial(); got != tt.want {
				t.Fatalf("IsDrawByMaterial: got %v want %v", got, tt.want)
			}
		})
	}
}

func TestMaterial(t *testing.T) {
	b := board.StartPosition()
	if got := b.Material(board.White); got != 39 {
		t.Fatalf("white material: got %d want 39", got)
	}
	if got := b.MaterialBalance(); got != 0 {
		t.Fatalf("balance: got %d want 0", got)
	}
	b = mustFEN(t, "r3k3/8/8/8/8/8/8/R3KN2 w - - 0 1")
	if got := b.MaterialBalance(); got != 3 {
		t.Fatalf("balance: got %d want 3", got)
	}
	play(t, b, "a1a8")
	if got := b.MaterialBalance(); got != 8 {
		t.Fatalf("balance after capture: got %d want 8", got)
	}
}

func TestGameStateString(t *testing.T) {
	for s, want := range map[board.GameState]string{
		board.InProgress: "in progress",
		board.WhiteWon:   "white won",
		board.BlackWon:   "black won",
		board.Draw:       "draw",
	} {
		if s.String() != want {
			t.Fatalf("%d: got %q want %q", s, s.String(), want)
		}
	}
}
