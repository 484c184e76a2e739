package engine

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
)

// Cross-checks move generation against an independent bitboard generator.
// Both sides emit coordinate move text, so sorted sets compare directly.
func TestLegalMovesMatchReferenceGenerator(t *testing.T) {
	fens := []string{
		dragontoothmg.Startpos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
		"rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"8/P7/8/8/8/8/1k6/7K w - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"R3k3/8/4K3/8/8/8/8/8 b - - 0 1",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
		"r3k3/8/8/8/8/8/8/4K3 b q - 0 1",
	}

	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			pos := mustPosition(t, fen)
			got := moveTexts(LegalMoves(&pos))

			ref := dragontoothmg.ParseFen(fen)
			refMoves := ref.GenerateLegalMoves()
			want := make([]string, 0, len(refMoves))
			for _, m := range refMoves {
				want = append(want, m.String())
			}
			sort.Strings(want)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("legal move set mismatch (-reference +ours):\n%s", diff)
			}
		})
	}
}

// Walks a handful of random-ish lines from the start position, checking the
// generated move set at every ply.
func TestLegalMovesMatchReferenceAlongLine(t *testing.T) {
	line := []string{
		"e2e4", "c7c5", "g1f3", "d7d6", "d2d4", "c5d4",
		"f3d4", "g8f6", "b1c3", "a7a6", "c1e3", "e7e5",
	}

	pos := NewInitialPosition()
	for ply, text := range line {
		got := moveTexts(LegalMoves(&pos))

		ref := dragontoothmg.ParseFen(FEN(&pos))
		refMoves := ref.GenerateLegalMoves()
		want := make([]string, 0, len(refMoves))
		for _, m := range refMoves {
			want = append(want, m.String())
		}
		sort.Strings(want)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("ply %d (%s): move set mismatch (-reference +ours):\n%s", ply, FEN(&pos), diff)
		}

		pos = mustApply(t, pos, text)
	}
}
