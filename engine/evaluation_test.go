package engine_test

import (
	"testing"

	gm "chess-ai/chessmg"
	"chess-ai/engine"
)

func TestMaterialEval(t *testing.T) {
	cases := []struct {
		fen  string
		want int32
	}{
		{gm.FENStartPos, 0},
		{"4k3/8/8/8/8/8/8/R3K3 w - - 0 1", 500},     // extra white rook
		{"4k3/8/8/7q/8/8/8/4K3 w - - 0 1", -900},    // extra black queen
		{"4k3/8/8/8/8/8/P7/4K3 b - - 0 1", 100},     // extra white pawn, black to move
		{"1n2k3/8/8/8/8/8/8/1B2KB2 w - - 0 1", 300}, // two bishops vs knight
		{"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", 900},
	}
	for _, c := range cases {
		b := gm.ParseFen(c.fen)
		if got := engine.MaterialEval(b); got != c.want {
			t.Errorf("MaterialEval(%q): got %d want %d", c.fen, got, c.want)
		}
	}
}

func TestMaterialEvalIgnoresSideToMove(t *testing.T) {
	w := gm.ParseFen("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	b := gm.ParseFen("4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	if engine.MaterialEval(w) != engine.MaterialEval(b) {
		t.Fatalf("evaluation must be from a fixed perspective, independent of side to move")
	}
}
