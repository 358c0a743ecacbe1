package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/slices"

	"chess-rules/board"
	"chess-rules/render"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to initial position)")
	moves := flag.String("moves", "", "Space-separated UCI moves to play before inspecting")
	svgPath := flag.String("svg", "", "Write an SVG diagram with attack overlays to this file")
	size := flag.Int("size", 48, "SVG square size in pixels")
	magics := flag.String("magics", "", "Load slider tables from this magic dataset JSON instead of the built-in one")
	flag.Parse()

	var boardOpts []board.Option
	if *magics != "" {
		tables, err := board.LoadTables(*magics)
		if err != nil {
			fmt.Fprintf(os.Stderr, "loading magics: %v\n", err)
			os.Exit(2)
		}
		if n := tables.Sliders().Repaired(); n > 0 {
			fmt.Fprintf(os.Stderr, "%s: replaced %d invalid magics\n", *magics, n)
		}
		boardOpts = append(boardOpts, board.WithTables(tables))
	}

	b, err := board.ParseFEN(*fen, boardOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}
	for _, text := range strings.Fields(*moves) {
		if _, err := b.ApplyUCI(text); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", text, err)
			os.Exit(2)
		}
	}

	calc := board.Calculate(b)
	fmt.Print(render.Board(b))
	if err := render.AttackReport(os.Stdout, b, &calc); err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		os.Exit(1)
	}

	legal := b.LegalMoves()
	names := make([]string, len(legal))
	for i, m := range legal {
		names[i] = m.String()
	}
	slices.Sort(names)
	loud := board.FilterLoudMoves(legal, nil, b)
	fmt.Printf("Legal moves (%d): %s\n", len(names), strings.Join(names, " "))
	fmt.Printf("Captures and promotions: %d\n", len(loud))
	fmt.Printf("Hash: %#016x  seen %d time(s)  material %+d\n", b.Hash(), b.Occurrences(), b.MaterialBalance())

	if *svgPath != "" {
		f, err := os.Create(*svgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating svg: %v\n", err)
			os.Exit(2)
		}
		render.AttackSVG(f, b, &calc, render.WithSquareSize(*size), render.WithCoordinates(), render.WithTitle(b.FEN()))
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "closing svg: %v\n", err)
			os.Exit(1)
		}
	}
}
