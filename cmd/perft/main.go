package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"chess-rules/board"
)

func main() {
	fen := flag.String("fen", board.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", board.DefaultPerftDepth, "Perft depth")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	queenOnly := flag.Bool("queen-only", false, "Generate queen promotions only")
	verify := flag.Bool("verify", false, "Compare the move list of every node against dragontoothmg")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	magics := flag.String("magics", "", "Load slider tables from this magic dataset JSON instead of the built-in one")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

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

	var opts []board.GenOption
	if *queenOnly {
		opts = append(opts, board.WithQueenPromotionsOnly())
	}

	if *verify {
		if *queenOnly {
			fmt.Fprintln(os.Stderr, "-verify needs all promotions")
			os.Exit(2)
		}
		if bad := verifyTree(b, *depth); bad != "" {
			fmt.Fprintln(os.Stderr, bad)
			os.Exit(1)
		}
		fmt.Println("verified")
		return
	}

	if *divide {
		res := board.Divide(b, *depth, opts...)
		moves := make([]string, 0, len(res.Moves))
		for m := range res.Moves {
			moves = append(moves, m)
		}
		slices.Sort(moves)
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, res.Moves[m])
		}
		fmt.Printf("Total: %d\n", res.Nodes)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += board.Perft(b, *depth, opts...)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Label Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

// verifyTree walks the move tree and returns a description of the first node
// whose legal moves differ from dragontoothmg's, or "" when all agree.
func verifyTree(b *board.Board, depth int) string {
	moves := b.LegalMoves()
	got := make([]string, len(moves))
	for i, m := range moves {
		got[i] = m.String()
	}
	slices.Sort(got)

	ref := dragontoothmg.ParseFen(b.FEN())
	refMoves := ref.GenerateLegalMoves()
	want := make([]string, len(refMoves))
	for i := range refMoves {
		want[i] = refMoves[i].String()
	}
	slices.Sort(want)

	if !slices.Equal(got, want) {
		return fmt.Sprintf("%s\n  got  %v\n  want %v", b.FEN(), got, want)
	}
	if depth <= 1 {
		return ""
	}
	for _, m := range moves {
		rec := b.MakeMove(m)
		bad := verifyTree(b, depth-1)
		b.UndoMove(rec)
		if bad != "" {
			return m.String() + " " + bad
		}
	}
	return ""
}
