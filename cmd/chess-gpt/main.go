// chess-gpt is an interactive console chess session. Moves are entered
// as a from-square/to-square pair with an optional promotion letter
// ("e2e4", "a7a8q"); rule checking, undo and draw detection are handled
// by the game session.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Bademeischta/Chess-GPT/internal/game"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *version {
		fmt.Printf("chess-gpt version %s\n", programVersion)
		os.Exit(0)
	}

	g, err := newGame()
	if err != nil {
		log.Fatalf("chess-gpt: %v", err)
	}

	r := &repl{game: g, out: os.Stdout}
	r.greet()
	if err := r.run(os.Stdin); err != nil {
		log.Fatalf("chess-gpt: %v", err)
	}
}

// newGame builds the session from the -fen flag, or the initial position.
func newGame() (*game.Game, error) {
	if *startFEN == "" {
		return game.New(), nil
	}
	return game.NewFromFEN(*startFEN)
}

func usage() {
	fmt.Fprintf(os.Stderr, `chess-gpt - interactive console chess

Usage:
  chess-gpt [options]

Options:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Commands at the prompt:
  <move>     apply a move, e.g. e2e4 or a7a8q
  moves      list legal moves
  board      print the board
  fen        print the position as FEN
  undo       take back the last move
  new        start a new game
  perft N    count move tree leaves to depth N
  quit       exit
`)
}
