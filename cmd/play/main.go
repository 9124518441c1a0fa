package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	gm "chess-ai/chessmg"
	"chess-ai/engine"
)

const helpText = `Commands:
  e2e4, g1f3, e7e8q ...  play a move in long algebraic notation
  moves                  list the legal moves in this position
  fen                    print the current position as FEN
  help or ?              show this help
  quit or exit           leave the game`

func main() {
	depth := flag.Int("depth", 3, "Search depth in plies (must be >= 1; 3 is comfortable for interactive play)")
	color := flag.String("color", "white", "Side the human plays: white or black")
	fen := flag.String("fen", gm.FENStartPos, "FEN string for the starting position")
	flag.Parse()

	if *depth < 1 {
		fmt.Fprintln(os.Stderr, "-depth must be >= 1")
		os.Exit(2)
	}
	var humanColor gm.Color
	switch strings.ToLower(*color) {
	case "white":
		humanColor = gm.White
	case "black":
		humanColor = gm.Black
	default:
		fmt.Fprintln(os.Stderr, "-color must be white or black")
		os.Exit(2)
	}

	board, err := gm.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	searcher := engine.NewSearcher(nil)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Type moves like 'e2e4'. Type 'help' for commands, 'quit' to exit.")
	fmt.Println()

	for {
		fmt.Println(board.ToASCII())

		status := board.Status()
		if status != gm.Ongoing {
			reportResult(board, status)
			return
		}

		side := board.SideToMove()
		fmt.Printf("Side to move: %s\n\n", side)

		if side == humanColor {
			if !humanTurn(board, scanner) {
				return
			}
		} else {
			engineTurn(board, searcher, *depth)
		}
	}
}

// humanTurn prompts until a legal move is applied or the user quits.
// Returns false when the session should end.
func humanTurn(board *gm.Board, scanner *bufio.Scanner) bool {
	for {
		fmt.Print("your move> ")
		if !scanner.Scan() {
			return false
		}
		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "":
			continue
		case "quit", "exit":
			fmt.Println("Goodbye!")
			return false
		case "help", "?":
			fmt.Println(helpText)
			continue
		case "fen":
			fmt.Println(board.ToFEN())
			continue
		case "moves":
			var list []string
			for _, m := range board.GenerateMoves() {
				list = append(list, m.String())
			}
			fmt.Println(strings.Join(list, " "))
			continue
		}

		parsed, err := gm.ParseMove(input)
		if err != nil {
			fmt.Println("Malformed move. Use long algebraic notation, e.g. 'e2e4'.")
			continue
		}
		move := board.FindLegalMove(parsed)
		if move == gm.NoMove {
			fmt.Println("Illegal move here. 'moves' lists what is possible.")
			continue
		}
		board.Apply(move)
		fmt.Println()
		return true
	}
}

func engineTurn(board *gm.Board, searcher *engine.Searcher, depth int) {
	fmt.Printf("Engine (%s) is thinking (depth=%d)...\n", board.SideToMove(), depth)
	move, score := searcher.FindBestMove(board, depth)
	// Status was Ongoing, so a move must exist.
	fmt.Printf("Engine plays: %s (%s, %d nodes)\n\n", move, scoreString(score), searcher.Nodes())
	board.Apply(move)
}

// scoreString renders a search score as centipawns, or as a mate announcement
// when the score magnitude is in the mate band.
func scoreString(score int32) string {
	if engine.IsMateScore(score) {
		plies := engine.MaxScore - score
		if score < 0 {
			plies = engine.MaxScore + score
		}
		moves := (plies + 1) / 2
		if score > 0 {
			return fmt.Sprintf("mate in %d", moves)
		}
		return fmt.Sprintf("mated in %d", moves)
	}
	return fmt.Sprintf("score %d", score)
}

func reportResult(board *gm.Board, status gm.Status) {
	switch status {
	case gm.Checkmate:
		fmt.Printf("Game over: %s wins by checkmate.\n", board.SideToMove().Opposite())
	case gm.Stalemate:
		fmt.Println("Game over: draw by stalemate.")
	}
}
