package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Bademeischta/Chess-GPT/internal/chess"
	"github.com/Bademeischta/Chess-GPT/internal/engine"
	"github.com/Bademeischta/Chess-GPT/internal/game"
)

// repl reads commands from a stream and drives one game session.
type repl struct {
	game *game.Game
	out  io.Writer
}

func (r *repl) greet() {
	fmt.Fprint(r.out, renderBoard(r.game.Position()))
	r.prompt()
}

func (r *repl) prompt() {
	fmt.Fprintf(r.out, "%s> ", r.game.Position().SideToMove)
}

// run processes lines until EOF or a quit command.
func (r *repl) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if quit := r.handle(strings.TrimSpace(scanner.Text())); quit {
			return nil
		}
		r.prompt()
	}
	return scanner.Err()
}

// handle executes a single command line and reports whether to quit.
func (r *repl) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit":
		return true

	case "board":
		fmt.Fprint(r.out, renderBoard(r.game.Position()))

	case "fen":
		fmt.Fprintln(r.out, r.game.FEN())

	case "moves":
		moves := r.game.LegalMoves()
		texts := make([]string, len(moves))
		for i, move := range moves {
			texts[i] = move.String()
		}
		fmt.Fprintf(r.out, "%d legal: %s\n", len(moves), strings.Join(texts, " "))

	case "undo":
		if err := r.game.UndoMove(); err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
			break
		}
		fmt.Fprint(r.out, renderBoard(r.game.Position()))

	case "new":
		r.game = game.New()
		fmt.Fprint(r.out, renderBoard(r.game.Position()))

	case "perft":
		r.perft(fields)

	default:
		r.move(fields[0])
	}
	return false
}

// move applies one move in from-to-promotion form and reports the result.
func (r *repl) move(text string) {
	if err := r.game.MakeMoveText(text); err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
		return
	}
	fmt.Fprint(r.out, renderBoard(r.game.Position()))
	if outcome := r.game.Outcome(); outcome != game.InProgress {
		fmt.Fprintf(r.out, "game over: %s\n", outcome)
	} else if r.game.InCheck() {
		fmt.Fprintln(r.out, "check")
	}
}

func (r *repl) perft(fields []string) {
	depth := 4
	if len(fields) > 1 {
		d, err := strconv.Atoi(fields[1])
		if err != nil || d < 1 {
			fmt.Fprintf(r.out, "error: bad depth %q\n", fields[1])
			return
		}
		depth = d
	}
	pos := r.game.Position()
	start := time.Now()
	nodes, err := engine.PerftParallel(context.Background(), &pos, depth)
	if err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "perft(%d) = %d in %v\n", depth, nodes, time.Since(start).Round(time.Millisecond))
}

// renderBoard draws the position from white's point of view.
func renderBoard(pos chess.Position) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		fmt.Fprintf(&sb, "%d ", chess.BoardSize-row)
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.PieceAt(chess.MakeSquare(file, row))
			if piece == chess.Empty {
				sb.WriteString(". ")
				continue
			}
			sb.WriteByte(pieceGlyph(piece))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

func pieceGlyph(piece chess.Piece) byte {
	glyphs := map[chess.PieceKind]byte{
		chess.Pawn:   'P',
		chess.Knight: 'N',
		chess.Bishop: 'B',
		chess.Rook:   'R',
		chess.Queen:  'Q',
		chess.King:   'K',
	}
	c := glyphs[piece.Kind()]
	if piece.Colour() == chess.Black {
		c += 'a' - 'A'
	}
	return c
}
