// perft counts the leaf nodes of the legal move tree for a position, one
// depth at a time. The node counts for the standard positions are well
// known, which makes this the quickest way to validate move generation.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Bademeischta/Chess-GPT/internal/engine"
)

var (
	fenFlag      = flag.String("fen", engine.InitialFEN, "Position to expand, in FEN")
	depthFlag    = flag.Int("depth", 5, "Maximum depth")
	parallelFlag = flag.Bool("parallel", true, "Fan root moves out across goroutines")
)

func main() {
	flag.Parse()

	pos, err := engine.ParseFEN(*fenFlag)
	if err != nil {
		log.Fatalf("perft: %v", err)
	}

	for depth := 1; depth <= *depthFlag; depth++ {
		start := time.Now()
		var nodes uint64
		if *parallelFlag {
			nodes, err = engine.PerftParallel(context.Background(), &pos, depth)
			if err != nil {
				log.Fatalf("perft: %v", err)
			}
		} else {
			nodes = engine.Perft(&pos, depth)
		}
		fmt.Printf("perft(%d) = %d (%v)\n", depth, nodes, time.Since(start).Round(time.Microsecond))
	}
}
