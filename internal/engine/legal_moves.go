package engine

import "github.com/Bademeischta/Chess-GPT/internal/chess"

// LegalMoves returns the moves the side to move may legally make: each
// pseudo-legal candidate is applied to a copy of the position and kept
// only if the mover's own king is not in check afterwards. Order is
// generation order; callers must not rely on it.
func LegalMoves(pos *chess.Position) []chess.Move {
	pseudo := PseudoLegalMoves(pos)
	legal := make([]chess.Move, 0, len(pseudo))
	for _, move := range pseudo {
		if isLegal(pos, move) {
			legal = append(legal, move)
		}
	}
	return legal
}

// HasLegalMoves reports whether the side to move has at least one legal
// move. It short-circuits on the first hit, which keeps the terminal
// state queries from generating full move lists.
func HasLegalMoves(pos *chess.Position) bool {
	for _, move := range PseudoLegalMoves(pos) {
		if isLegal(pos, move) {
			return true
		}
	}
	return false
}

// isLegal tries the move on a cloned position and checks the mover's king.
func isLegal(pos *chess.Position, move chess.Move) bool {
	next, err := Apply(pos, move)
	if err != nil {
		return false
	}
	return !IsInCheck(&next, pos.SideToMove)
}
