package engine

import "github.com/Bademeischta/Chess-GPT/internal/chess"

// IsCheckmate reports whether the side to move is in check with no legal
// moves.
func IsCheckmate(pos *chess.Position) bool {
	return IsInCheck(pos, pos.SideToMove) && !HasLegalMoves(pos)
}

// IsStalemate reports whether the side to move is not in check yet has no
// legal moves.
func IsStalemate(pos *chess.Position) bool {
	return !IsInCheck(pos, pos.SideToMove) && !HasLegalMoves(pos)
}

// IsDrawByFiftyMoves reports whether fifty full moves have passed without
// a pawn move or capture (a halfmove clock of 100 or more).
func IsDrawByFiftyMoves(pos *chess.Position) bool {
	return pos.HalfmoveClock >= 100
}

// IsInsufficientMaterial reports whether neither side can possibly mate.
// The check is deliberately narrow: true only for bare kings, or when the
// whole board holds a single knight or single bishop beside the kings.
// Drawn configurations such as same-coloured bishops on both sides are
// not detected.
func IsInsufficientMaterial(pos *chess.Position) bool {
	minors, others := 0, 0
	for sq := chess.Square(0); sq < 64; sq++ {
		piece := pos.Board[sq]
		if piece == chess.Empty {
			continue
		}
		switch piece.Kind() {
		case chess.King:
		case chess.Knight, chess.Bishop:
			minors++
		default:
			others++
		}
	}
	return others == 0 && minors <= 1
}
