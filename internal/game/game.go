// Package game provides the stateful game session: one current position
// plus a history of snapshots for undo. All rule logic is delegated to
// the engine package.
package game

import (
	"github.com/Bademeischta/Chess-GPT/internal/chess"
	"github.com/Bademeischta/Chess-GPT/internal/engine"
	"github.com/Bademeischta/Chess-GPT/internal/errors"
)

// Outcome classifies the state of a session for presentation.
type Outcome int

const (
	InProgress Outcome = iota
	Checkmate
	Stalemate
	DrawFiftyMoves
	DrawInsufficientMaterial
)

// String returns a short description of the outcome.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawFiftyMoves:
		return "draw by fifty-move rule"
	case DrawInsufficientMaterial:
		return "draw by insufficient material"
	default:
		return "in progress"
	}
}

// Game owns the current position and its undo history. Undo restores the
// previous snapshot verbatim; there is no move-reversal arithmetic.
type Game struct {
	position chess.Position
	history  []chess.Position
}

// New starts a game from the standard starting position.
func New() *Game {
	return &Game{position: engine.NewInitialPosition()}
}

// NewFromFEN starts a game from the given FEN string.
func NewFromFEN(fen string) (*Game, error) {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{position: pos}, nil
}

// Position returns a copy of the current position.
func (g *Game) Position() chess.Position {
	return g.position
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return engine.FEN(&g.position)
}

// LegalMoves returns the legal moves in the current position.
func (g *Game) LegalMoves() []chess.Move {
	return engine.LegalMoves(&g.position)
}

// MakeMove applies a legal move, snapshotting the current position first.
// A move not in LegalMoves is rejected with errors.ErrIllegalMove and
// the position is left unchanged.
func (g *Game) MakeMove(move chess.Move) error {
	if !g.isLegal(move) {
		return &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			MoveText: move.String(),
			Ply:      len(g.history) + 1,
		}
	}
	next, err := engine.Apply(&g.position, move)
	if err != nil {
		return err
	}
	g.history = append(g.history, g.position)
	g.position = next
	return nil
}

// MakeMoveText parses a move in the literal from-to-promotion form and
// applies it.
func (g *Game) MakeMoveText(text string) error {
	move, err := chess.ParseMove(text)
	if err != nil {
		return err
	}
	return g.MakeMove(move)
}

// UndoMove restores the position before the last applied move.
func (g *Game) UndoMove() error {
	if len(g.history) == 0 {
		return errors.ErrEmptyHistory
	}
	g.position = g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	return nil
}

// Ply returns the number of moves applied and not undone.
func (g *Game) Ply() int {
	return len(g.history)
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.IsInCheck(&g.position, g.position.SideToMove)
}

// IsCheckmate reports whether the side to move is checkmated.
func (g *Game) IsCheckmate() bool {
	return engine.IsCheckmate(&g.position)
}

// IsStalemate reports whether the side to move is stalemated.
func (g *Game) IsStalemate() bool {
	return engine.IsStalemate(&g.position)
}

// IsDrawByFiftyMoves reports a fifty-move rule draw.
func (g *Game) IsDrawByFiftyMoves() bool {
	return engine.IsDrawByFiftyMoves(&g.position)
}

// IsInsufficientMaterial reports the narrow insufficient material draw.
func (g *Game) IsInsufficientMaterial() bool {
	return engine.IsInsufficientMaterial(&g.position)
}

// Outcome classifies the current position.
func (g *Game) Outcome() Outcome {
	switch {
	case g.IsCheckmate():
		return Checkmate
	case g.IsStalemate():
		return Stalemate
	case g.IsDrawByFiftyMoves():
		return DrawFiftyMoves
	case g.IsInsufficientMaterial():
		return DrawInsufficientMaterial
	default:
		return InProgress
	}
}

// isLegal reports whether the move is in the current legal move list.
func (g *Game) isLegal(move chess.Move) bool {
	for _, legal := range engine.LegalMoves(&g.position) {
		if legal == move {
			return true
		}
	}
	return false
}
