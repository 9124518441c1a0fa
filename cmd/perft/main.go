package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	gm "chess-ai/chessmg"
)

func main() {
	fen := flag.String("fen", gm.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := gm.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := gm.PerftDivide(board, *depth)
		// Sort moves for stable output
		type kv struct {
			m gm.Move
			n uint64
		}
		entries := make([]kv, 0, len(div))
		var total uint64
		for m, n := range div {
			entries = append(entries, kv{m, n})
			total += n
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].m.String() < entries[j].m.String() })
		for _, e := range entries {
			fmt.Printf("%s: %d\n", e.m, e.n)
		}
		fmt.Printf("total: %d\n", total)
		return
	}

	start := time.Now()
	nodes := gm.Perft(board, *depth)
	elapsed := time.Since(start)
	fmt.Printf("perft(%d) = %d in %s\n", *depth, nodes, elapsed)
}
