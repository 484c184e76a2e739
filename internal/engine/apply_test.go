package engine

import (
	"errors"
	"testing"

	"github.com/Bademeischta/Chess-GPT/internal/chess"
	cerrors "github.com/Bademeischta/Chess-GPT/internal/errors"
)

func mustApply(t *testing.T, pos chess.Position, text string) chess.Position {
	t.Helper()
	move, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", text, err)
	}
	next, err := Apply(&pos, move)
	if err != nil {
		t.Fatalf("Apply(%q) error: %v", text, err)
	}
	return next
}

func pieceOn(t *testing.T, pos *chess.Position, square string) chess.Piece {
	t.Helper()
	return pos.PieceAt(mustSquare(t, square))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	pos := NewInitialPosition()
	before := pos
	mustApply(t, pos, "e2e4")
	if pos != before {
		t.Error("Apply mutated its input position")
	}
}

func TestApplyPawnDoublePush(t *testing.T) {
	pos := NewInitialPosition()
	next := mustApply(t, pos, "e2e4")

	if got := pieceOn(t, &next, "e4"); got != chess.W(chess.Pawn) {
		t.Errorf("e4 = %v, want white pawn", got)
	}
	if got := pieceOn(t, &next, "e2"); got != chess.Empty {
		t.Errorf("e2 = %v, want empty", got)
	}
	if got := next.EnPassant.String(); got != "e3" {
		t.Errorf("EnPassant = %s, want e3", got)
	}
	if next.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0", next.HalfmoveClock)
	}
	if next.SideToMove != chess.Black {
		t.Errorf("SideToMove = %v, want Black", next.SideToMove)
	}
	if next.FullmoveNumber != 1 {
		t.Errorf("FullmoveNumber = %d, want 1", next.FullmoveNumber)
	}
}

func TestApplyClearsEnPassantAfterOnePly(t *testing.T) {
	pos := NewInitialPosition()
	next := mustApply(t, pos, "e2e4")
	next = mustApply(t, next, "g8f6")
	if next.EnPassant != chess.NoSquare {
		t.Errorf("EnPassant = %v after unrelated move, want NoSquare", next.EnPassant)
	}
}

func TestApplyCountersAndClock(t *testing.T) {
	pos := NewInitialPosition()

	next := mustApply(t, pos, "g1f3")
	if next.HalfmoveClock != 1 {
		t.Errorf("knight move HalfmoveClock = %d, want 1", next.HalfmoveClock)
	}
	if next.FullmoveNumber != 1 {
		t.Errorf("FullmoveNumber after white move = %d, want 1", next.FullmoveNumber)
	}

	next = mustApply(t, next, "g8f6")
	if next.HalfmoveClock != 2 {
		t.Errorf("HalfmoveClock = %d, want 2", next.HalfmoveClock)
	}
	if next.FullmoveNumber != 2 {
		t.Errorf("FullmoveNumber after black move = %d, want 2", next.FullmoveNumber)
	}

	// A pawn move resets the clock from any value.
	clocked := mustPosition(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 73 90")
	next = mustApply(t, clocked, "e2e3")
	if next.HalfmoveClock != 0 {
		t.Errorf("pawn move HalfmoveClock = %d, want 0", next.HalfmoveClock)
	}

	// So does a capture.
	capturing := mustPosition(t, "4k3/8/8/8/8/2n5/8/1N2K3 w - - 42 60")
	next = mustApply(t, capturing, "b1c3")
	if next.HalfmoveClock != 0 {
		t.Errorf("capture HalfmoveClock = %d, want 0", next.HalfmoveClock)
	}
}

func TestApplyEnPassantCapture(t *testing.T) {
	// After 1.e4 a6 2.e5 d5 the white e-pawn may capture d6 en passant.
	pos := NewInitialPosition()
	pos = mustApply(t, pos, "e2e4")
	pos = mustApply(t, pos, "a7a6")
	pos = mustApply(t, pos, "e4e5")
	pos = mustApply(t, pos, "d7d5")

	if got := pos.EnPassant.String(); got != "d6" {
		t.Fatalf("EnPassant = %s, want d6", got)
	}
	moves := LegalMoves(&pos)
	if !containsMove(moves, "e5d6") {
		t.Fatalf("legal moves %v missing en passant capture e5d6", moveTexts(moves))
	}

	next := mustApply(t, pos, "e5d6")
	if got := pieceOn(t, &next, "d6"); got != chess.W(chess.Pawn) {
		t.Errorf("d6 = %v, want white pawn", got)
	}
	if got := pieceOn(t, &next, "d5"); got != chess.Empty {
		t.Errorf("d5 = %v, want empty (victim removed behind the target)", got)
	}
	if got := pieceOn(t, &next, "e5"); got != chess.Empty {
		t.Errorf("e5 = %v, want empty", got)
	}
	if next.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0 after capture", next.HalfmoveClock)
	}
}

func TestEnPassantWindowExpires(t *testing.T) {
	pos := NewInitialPosition()
	pos = mustApply(t, pos, "e2e4")
	pos = mustApply(t, pos, "a7a6")
	pos = mustApply(t, pos, "e4e5")
	pos = mustApply(t, pos, "d7d5")

	// An intervening pair of moves closes the window.
	pos = mustApply(t, pos, "b1c3")
	pos = mustApply(t, pos, "a6a5")

	if pos.EnPassant != chess.NoSquare {
		t.Fatalf("EnPassant = %v, want NoSquare", pos.EnPassant)
	}
	if containsMove(LegalMoves(&pos), "e5d6") {
		t.Error("en passant capture e5d6 still legal two plies later")
	}
}

func TestApplyPromotion(t *testing.T) {
	pos := mustPosition(t, "8/P7/8/8/8/8/7p/7K w - - 0 1")

	next := mustApply(t, pos, "a7a8q")
	if got := pieceOn(t, &next, "a8"); got != chess.W(chess.Queen) {
		t.Errorf("a8 = %v, want white queen", got)
	}

	next = mustApply(t, pos, "a7a8n")
	if got := pieceOn(t, &next, "a8"); got != chess.W(chess.Knight) {
		t.Errorf("a8 = %v, want white knight", got)
	}

	// Omitting the promotion kind leaves the pawn unpromoted; this is the
	// documented lenient branch, not an error.
	next = mustApply(t, pos, "a7a8")
	if got := pieceOn(t, &next, "a8"); got != chess.W(chess.Pawn) {
		t.Errorf("a8 = %v, want unpromoted white pawn", got)
	}
}

func TestApplyBlackPromotion(t *testing.T) {
	pos := mustPosition(t, "7k/8/8/8/8/8/p7/4K3 b - - 0 1")
	next := mustApply(t, pos, "a2a1q")
	if got := pieceOn(t, &next, "a1"); got != chess.B(chess.Queen) {
		t.Errorf("a1 = %v, want black queen", got)
	}
}

func TestApplyCastling(t *testing.T) {
	pos := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	kingside := mustApply(t, pos, "e1g1")
	if got := pieceOn(t, &kingside, "g1"); got != chess.W(chess.King) {
		t.Errorf("g1 = %v, want white king", got)
	}
	if got := pieceOn(t, &kingside, "f1"); got != chess.W(chess.Rook) {
		t.Errorf("f1 = %v, want relocated rook", got)
	}
	if got := pieceOn(t, &kingside, "h1"); got != chess.Empty {
		t.Errorf("h1 = %v, want empty", got)
	}
	if got := pieceOn(t, &kingside, "e1"); got != chess.Empty {
		t.Errorf("e1 = %v, want empty", got)
	}
	if kingside.Castling.Has(chess.WhiteKingside) || kingside.Castling.Has(chess.WhiteQueenside) {
		t.Errorf("white rights survive castling: %v", kingside.Castling)
	}
	if !kingside.Castling.Has(chess.BlackKingside) || !kingside.Castling.Has(chess.BlackQueenside) {
		t.Errorf("black rights lost on white castle: %v", kingside.Castling)
	}
	if kingside.HalfmoveClock != 1 {
		t.Errorf("HalfmoveClock = %d, want 1", kingside.HalfmoveClock)
	}

	queenside := mustApply(t, pos, "e1c1")
	if got := pieceOn(t, &queenside, "c1"); got != chess.W(chess.King) {
		t.Errorf("c1 = %v, want white king", got)
	}
	if got := pieceOn(t, &queenside, "d1"); got != chess.W(chess.Rook) {
		t.Errorf("d1 = %v, want relocated rook", got)
	}
	if got := pieceOn(t, &queenside, "a1"); got != chess.Empty {
		t.Errorf("a1 = %v, want empty", got)
	}

	black := mustApply(t, mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1"), "e8g8")
	if got := pieceOn(t, &black, "f8"); got != chess.B(chess.Rook) {
		t.Errorf("f8 = %v, want relocated black rook", got)
	}
	if black.Castling.Has(chess.BlackKingside | chess.BlackQueenside) {
		t.Errorf("black rights survive castling: %v", black.Castling)
	}
}

func TestApplyKingMoveDropsRights(t *testing.T) {
	pos := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	next := mustApply(t, pos, "e1e2")
	if next.Castling.Has(chess.WhiteKingside) || next.Castling.Has(chess.WhiteQueenside) {
		t.Errorf("white rights survive king move: %v", next.Castling)
	}
	if !next.Castling.Has(chess.BlackKingside | chess.BlackQueenside) {
		t.Errorf("black rights dropped by white king move: %v", next.Castling)
	}
}

func TestApplyRookMoveDropsWingRight(t *testing.T) {
	pos := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	next := mustApply(t, pos, "a1a4")
	if next.Castling.Has(chess.WhiteQueenside) {
		t.Error("queenside right survives a1 rook move")
	}
	if !next.Castling.Has(chess.WhiteKingside) {
		t.Error("kingside right dropped by queenside rook move")
	}

	next = mustApply(t, pos, "h1h4")
	if next.Castling.Has(chess.WhiteKingside) {
		t.Error("kingside right survives h1 rook move")
	}
	if !next.Castling.Has(chess.WhiteQueenside) {
		t.Error("queenside right dropped by kingside rook move")
	}
}

func TestApplyRookCaptureDropsVictimRight(t *testing.T) {
	// Capturing the h8 rook from h1 clears both kingside rights at once.
	pos := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	next := mustApply(t, pos, "h1h8")

	if next.Castling.Has(chess.BlackKingside) {
		t.Error("black kingside right survives capture on h8")
	}
	if next.Castling.Has(chess.WhiteKingside) {
		t.Error("white kingside right survives h1 rook leaving home")
	}
	if !next.Castling.Has(chess.WhiteQueenside) || !next.Castling.Has(chess.BlackQueenside) {
		t.Errorf("queenside rights dropped unexpectedly: %v", next.Castling)
	}
	if next.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0 after capture", next.HalfmoveClock)
	}
}

func TestApplyFromEmptySquare(t *testing.T) {
	pos := NewInitialPosition()
	move, err := chess.ParseMove("e4e5")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Apply(&pos, move); !errors.Is(err, cerrors.ErrInvalidMove) {
		t.Errorf("Apply from empty square error = %v, want ErrInvalidMove", err)
	}
}

// Every legal move leaves the mover's own king safe after application.
func TestLegalMovesNeverLeaveKingInCheck(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/4r3/8/8/4N3/8/8/4K3 w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		pos := mustPosition(t, fen)
		for _, move := range LegalMoves(&pos) {
			next, err := Apply(&pos, move)
			if err != nil {
				t.Fatalf("%s: Apply(%s) error: %v", fen, move, err)
			}
			if IsInCheck(&next, pos.SideToMove) {
				t.Errorf("%s: legal move %s leaves own king in check", fen, move)
			}
		}
	}
}
