package render_test

import (
	"bytes"
	"math/bits"
	"strings"
	"testing"

	"chess-rules/board"
	"chess-rules/render"
)

func TestBitboard(t *testing.T) {
	got := render.Bitboard(board.A1.Bitboard() | board.H8.Bitboard())
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines want 10:\n%s", len(lines), got)
	}
	if lines[1] != "8 . . . . . . . X 8" {
		t.Fatalf("rank 8: got %q", lines[1])
	}
	if lines[8] != "1 X . . . . . . . 1" {
		t.Fatalf("rank 1: got %q", lines[8])
	}
}

func TestBoard(t *testing.T) {
	got := render.Board(board.StartPosition())
	for _, want := range []string{
		"8 r n b q k b n r 8",
		"2 P P P P P P P P 2",
		board.FENStartPos,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in\n%s", want, got)
		}
	}
}

func TestAttackReport(t *testing.T) {
	b, err := board.ParseFEN("8/8/8/KPp4r/8/8/8/6k1 w - c6 0 2")
	if err != nil {
		t.Fatal(err)
	}
	calc := board.Calculate(b)
	var buf bytes.Buffer
	if err := render.AttackReport(&buf, b, &calc); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"Forbidden en passant square: c6",
		"In check: false",
		"Pinned pieces on file (0):",
		"knight check squares",
		"Status: in progress",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in report:\n%s", want, out)
		}
	}
}

func TestAttackReportPinLine(t *testing.T) {
	b, err := board.ParseFEN("4r1k1/8/8/8/8/8/4B3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	calc := board.Calculate(b)
	var buf bytes.Buffer
	if err := render.AttackReport(&buf, b, &calc); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Pinned pieces on file (1):", "Pin line of e2 (8):", "Pin revealers on file (1):"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("missing %q in report:\n%s", want, buf.String())
		}
	}
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	render.SVG(&buf, board.StartPosition(), render.WithSquareSize(40), render.WithCoordinates(), render.WithTitle("start"))
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	if n := strings.Count(out, "♟"); n != 8 {
		t.Fatalf("black pawns: got %d want 8", n)
	}
	if !strings.Contains(out, "<title>start</title>") {
		t.Fatalf("title missing")
	}
	// 360 = 8 squares of 40 plus two 20px margins
	if !strings.Contains(out, `width="360"`) {
		t.Fatalf("unexpected canvas size:\n%s", out[:200])
	}
}

func TestAttackSVGHighlights(t *testing.T) {
	b, err := board.ParseFEN("4k3/8/8/8/8/8/8/r3K2R w K - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	calc := board.Calculate(b)
	var plain, marked bytes.Buffer
	render.SVG(&plain, b)
	render.AttackSVG(&marked, b, &calc)
	extra := strings.Count(marked.String(), "<rect") - strings.Count(plain.String(), "<rect")
	// four check-block squares plus the attacked squares
	want := 4 + bits.OnesCount64(calc.Attacked())
	if extra != want {
		t.Fatalf("highlight rects: got %d want %d", extra, want)
	}
}
