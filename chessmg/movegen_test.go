package chessmg_test

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	gm "chess-ai/chessmg"
)

func TestStartPositionHasTwentyMoves(t *testing.T) {
	b := gm.NewGame()
	moves := b.GenerateMoves()
	if len(moves) != 20 {
		t.Fatalf("legal moves in start position: got %d want 20", len(moves))
	}
}

func TestPerftInitialPosition(t *testing.T) {
	b := gm.NewGame()
	// Castling and en passant cannot occur within three plies of the start
	// position, so these match full-rules perft.
	for depth, want := range map[int]uint64{1: 20, 2: 400, 3: 8902} {
		if got := gm.Perft(b, depth); got != want {
			t.Errorf("perft depth %d: got %d want %d", depth, got, want)
		}
	}
}

func TestGenerationOrderIsByOriginThenDestination(t *testing.T) {
	for _, fen := range []string{
		gm.FENStartPos,
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b - - 0 1",
		"4k3/p7/8/8/8/8/7P/4K3 w - - 0 1",
	} {
		moves := gm.ParseFen(fen).GenerateMoves()
		for i := 1; i < len(moves); i++ {
			prev, cur := moves[i-1], moves[i]
			if cur.From() < prev.From() {
				t.Fatalf("%s: origin order violated at %d: %s after %s", fen, i, cur, prev)
			}
			if cur.From() == prev.From() && cur.To() < prev.To() {
				t.Fatalf("%s: destination order violated at %d: %s after %s", fen, i, cur, prev)
			}
		}
	}
}

func TestLegalMovesNeverLeaveOwnKingAttacked(t *testing.T) {
	fens := []string{
		gm.FENStartPos,
		"4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1", // pinned rook
		"r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b - - 0 1",
		"8/2p2k2/3p4/8/3P4/5K2/2P5/8 w - - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3", // in check
	}
	for _, fen := range fens {
		b := gm.ParseFen(fen)
		mover := b.SideToMove()
		for _, m := range b.GenerateMoves() {
			ok, st := b.MakeMove(m)
			if !ok {
				t.Fatalf("%s: legal move %s rejected by MakeMove", fen, m)
			}
			if b.IsSquareAttacked(b.KingSquare(mover), mover.Opposite()) {
				t.Errorf("%s: legal move %s leaves own king attacked", fen, m)
			}
			b.UnmakeMove(m, st)
		}
	}
}

func TestPinnedPieceHasNoMoves(t *testing.T) {
	// The e2 rook is pinned to the king by the e8 rook; it may only slide
	// along the e-file.
	b := gm.ParseFen("4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1")
	for _, m := range b.GenerateMoves() {
		if m.From() == sq(t, "e2") && m.To().File() != 4 {
			t.Errorf("pinned rook allowed to leave the file: %s", m)
		}
	}
}

func TestPawnPromotionFanOut(t *testing.T) {
	b := gm.ParseFen("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	var promos []string
	for _, m := range b.GenerateMoves() {
		if m.PromotionPiece() != gm.NoPiece {
			promos = append(promos, m.String())
		}
	}
	slices.Sort(promos)
	want := []string{"a7a8b", "a7a8n", "a7a8q", "a7a8r"}
	if !slices.Equal(promos, want) {
		t.Fatalf("promotion moves: got %v want %v", promos, want)
	}
}

// moveStrings returns the sorted long-algebraic strings of a move list.
func moveStrings(moves []gm.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	slices.Sort(out)
	return out
}

// Positions with no castling rights and no en-passant possibility, where this
// generator must agree exactly with the dragontoothmg reference generator.
var oracleFens = []string{
	"4k3/8/8/3r4/8/8/R7/4K3 w - - 0 1",
	"4k3/8/8/3r4/8/8/R7/4K3 b - - 0 1",
	"3qk3/8/8/8/3Q4/8/8/3K4 w - - 0 1",
	"8/2k5/8/8/5N2/8/1K5q/8 w - - 0 1",
	"4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
	"4k3/p7/8/8/8/8/7P/4K3 w - - 0 1",
	"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
}

func TestLegalMovesMatchDragontooth(t *testing.T) {
	for _, fen := range oracleFens {
		ours := moveStrings(gm.ParseFen(fen).GenerateMoves())

		ref := dragontoothmg.ParseFen(fen)
		refMoves := ref.GenerateLegalMoves()
		theirs := make([]string, 0, len(refMoves))
		for _, m := range refMoves {
			theirs = append(theirs, m.String())
		}
		slices.Sort(theirs)

		if !slices.Equal(ours, theirs) {
			t.Errorf("%s:\n  ours:   %v\n  theirs: %v", fen, ours, theirs)
		}
	}
}

func TestPerftMatchesDragontooth(t *testing.T) {
	for _, fen := range oracleFens {
		b := gm.ParseFen(fen)
		ref := dragontoothmg.ParseFen(fen)
		for depth := 1; depth <= 3; depth++ {
			got := gm.Perft(b, depth)
			want := dragontoothmg.Perft(&ref, depth)
			if got != uint64(want) {
				t.Errorf("%s perft(%d): got %d want %d", fen, depth, got, want)
			}
		}
	}
}

func TestInCheckDetection(t *testing.T) {
	cases := []struct {
		fen   string
		color gm.Color
		want  bool
	}{
		{gm.FENStartPos, gm.White, false},
		{gm.FENStartPos, gm.Black, false},
		{"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3", gm.White, true},
		{"4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1", gm.White, false},
		{"4r2k/8/8/8/8/8/8/4K3 w - - 0 1", gm.White, true},
	}
	for _, c := range cases {
		b := gm.ParseFen(c.fen)
		if got := b.InCheck(c.color); got != c.want {
			t.Errorf("InCheck(%v) on %q: got %v want %v", c.color, c.fen, got, c.want)
		}
	}
}

func TestInCheckPanicsWithoutKing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when querying check on a kingless board")
		}
	}()
	b := gm.ParseFen("4k3/8/8/8/8/8/8/8 w - - 0 1")
	b.InCheck(gm.White)
}
