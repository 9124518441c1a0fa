package chessmg_test

import (
	"strings"
	"testing"

	gm "chess-ai/chessmg"
)

func TestStartPositionSetup(t *testing.T) {
	b := gm.NewGame()
	if !b.Validate() {
		t.Fatalf("start position failed internal consistency check")
	}
	if b.SideToMove() != gm.White {
		t.Fatalf("side to move: got %v want white", b.SideToMove())
	}
	checks := []struct {
		sq   string
		want gm.Piece
	}{
		{"a1", gm.WhiteRook},
		{"e1", gm.WhiteKing},
		{"d1", gm.WhiteQueen},
		{"e2", gm.WhitePawn},
		{"g8", gm.BlackKnight},
		{"e8", gm.BlackKing},
		{"c7", gm.BlackPawn},
		{"e4", gm.NoPiece},
	}
	for _, c := range checks {
		idx, err := squareFromString(c.sq)
		if err != nil {
			t.Fatal(err)
		}
		if got := b.PieceAt(idx); got != c.want {
			t.Errorf("piece at %s: got %v want %v", c.sq, got, c.want)
		}
	}
}

func squareFromString(s string) (gm.Square, error) {
	m, err := gm.ParseMove(s + s) // reuse the move parser for a single square
	if err != nil {
		return gm.NoSquare, err
	}
	return m.From(), nil
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		gm.FENStartPos,
		"8/2p2k2/3p4/8/3P4/5K2/2P5/8 w - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b - - 0 1",
	}
	for _, fen := range fens {
		b, err := gm.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		out := b.ToFEN()
		b2, err := gm.ParseFEN(out)
		if err != nil {
			t.Fatalf("ParseFEN of own output %q: %v", out, err)
		}
		if b2.ToFEN() != out {
			t.Fatalf("FEN round trip: got %q want %q", b2.ToFEN(), out)
		}
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", // missing side to move
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w",        // seven ranks
		"rnbqkbnr/ppppppp1p/8/8/8/8/PPPPPPPP/RNBQKBNR w", // nine columns
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x",  // bad side
		"rnbqkbnr/ppppXppp/8/8/8/8/PPPPPPPP/RNBQKBNR w",  // bad piece char
	}
	for _, fen := range bad {
		if _, err := gm.ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q): expected error", fen)
		}
	}
}

func TestToASCII(t *testing.T) {
	b := gm.NewGame()
	art := b.ToASCII()
	lines := strings.Split(art, "\n")
	if len(lines) != 9 {
		t.Fatalf("ascii board: got %d lines want 9", len(lines))
	}
	if !strings.HasPrefix(lines[0], "8") || !strings.Contains(lines[0], "r n b q k b n r") {
		t.Errorf("top rank rendering wrong: %q", lines[0])
	}
	if !strings.Contains(lines[8], "a b c d e f g h") {
		t.Errorf("file legend missing: %q", lines[8])
	}
}
