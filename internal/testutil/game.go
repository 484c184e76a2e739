package testutil

import (
	"sort"
	"testing"

	"github.com/Bademeischta/Chess-GPT/internal/chess"
	"github.com/Bademeischta/Chess-GPT/internal/engine"
)

// MustParseFEN parses a FEN string and returns the position.
// It calls t.Fatal if parsing fails; use it in test setup.
func MustParseFEN(t *testing.T, fen string) chess.Position {
	t.Helper()
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	return pos
}

// MustParseMove parses move text and returns the move.
// It calls t.Fatal if parsing fails.
func MustParseMove(t *testing.T, text string) chess.Move {
	t.Helper()
	move, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", text, err)
	}
	return move
}

// MustApply parses move text and applies it to the position, returning
// the resulting position. It calls t.Fatal on any failure.
func MustApply(t *testing.T, pos chess.Position, text string) chess.Position {
	t.Helper()
	next, err := engine.Apply(&pos, MustParseMove(t, text))
	if err != nil {
		t.Fatalf("Apply(%q) error: %v", text, err)
	}
	return next
}

// MoveStrings renders moves as sorted text, for order-independent
// comparison of move lists.
func MoveStrings(moves []chess.Move) []string {
	texts := make([]string, len(moves))
	for i, move := range moves {
		texts[i] = move.String()
	}
	sort.Strings(texts)
	return texts
}
