package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Bademeischta/Chess-GPT/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// It exists to validate move generation against the well known reference
// node counts.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		next, err := Apply(pos, move)
		if err != nil {
			continue
		}
		nodes += Perft(&next, depth-1)
	}
	return nodes
}

// PerftParallel is Perft with the root moves fanned out across goroutines.
// Each subtree works on its own Position copy, so no locking is needed.
func PerftParallel(ctx context.Context, pos *chess.Position, depth int) (uint64, error) {
	if depth <= 1 {
		return Perft(pos, depth), nil
	}

	moves := LegalMoves(pos)
	counts := make([]uint64, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	for i, move := range moves {
		i, move := i, move
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			next, err := Apply(pos, move)
			if err != nil {
				return err
			}
			counts[i] = Perft(&next, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var nodes uint64
	for _, n := range counts {
		nodes += n
	}
	return nodes, nil
}
