package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"chess-rules/magic"
)

var (
	outPath   = flag.String("out", "", "Write the generated magics as JSON to this file (stdout when empty)")
	checkPath = flag.String("check", "", "Validate an existing magics JSON file instead of searching")
	workers   = flag.Int("workers", runtime.NumCPU(), "Parallel search workers")
	seed      = flag.Int64("seed", 1, "Base random seed; equal seeds give equal output")
	verbose   = flag.Bool("v", false, "Print one line per (slider, square)")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("magicgen: ")

	if *checkPath != "" {
		check(*checkPath)
		return
	}

	start := time.Now()
	set, entries := magic.SearchAll(magic.WithWorkers(*workers), magic.WithSeed(*seed))
	elapsed := time.Since(start)

	attempts, slots := 0, 0
	for _, e := range entries {
		attempts += e.Attempts
		slots += e.MaxIndex + 1
		if *verbose {
			log.Printf("%-6v %2d %#016x attempts=%d slots=%d", e.Slider, e.Square, e.Magic, e.Attempts, e.MaxIndex+1)
		}
	}
	log.Printf("found %d magics in %s: %d candidates, %d table entries", len(entries), elapsed.Round(time.Millisecond), attempts, slots)

	if *outPath == "" {
		if err := set.Write(os.Stdout); err != nil {
			log.Fatalf("write: %v", err)
		}
		return
	}
	if err := set.WriteFile(*outPath); err != nil {
		log.Fatalf("write %s: %v", *outPath, err)
	}
}

func check(path string) {
	set, err := magic.LoadFile(path)
	if err != nil {
		log.Fatalf("load %s: %v", path, err)
	}
	bad := set.Invalid()
	for _, e := range bad {
		fmt.Fprintf(os.Stderr, "invalid %v magic on square %d: %#016x\n", e.Slider, e.Square, e.Magic)
	}
	if len(bad) > 0 {
		log.Fatalf("%s: %d of 128 magics invalid", path, len(bad))
	}
	tables := magic.Build(set)
	log.Printf("%s: all magics valid, %d table entries", path, tables.Entries())
}
