package engine

import (
	"math/bits"

	gm "chess-ai/chessmg"
)

// Evaluator scores a position in centipawns from White's perspective: positive
// favors White, negative favors Black. The search layer depends on evaluation
// only through this signature, so stronger heuristics (mobility, king safety,
// pawn structure) can be swapped in without touching the search itself.
type Evaluator func(*gm.Board) int32

// Standard material values in centipawns, indexed by PieceType. The king is
// excluded from material counting; mate detection handles its loss.
var pieceValue = [7]int32{0, 100, 300, 300, 500, 900, 0}

// MaterialEval is the baseline evaluator: the signed sum of material over all
// pieces on the board.
func MaterialEval(b *gm.Board) int32 {
	return sideMaterial(b.Bitboards(gm.White)) - sideMaterial(b.Bitboards(gm.Black))
}

func sideMaterial(bbs gm.Bitboards) int32 {
	var total int32
	total += int32(bits.OnesCount64(bbs.Pawns)) * pieceValue[gm.PieceTypePawn]
	total += int32(bits.OnesCount64(bbs.Knights)) * pieceValue[gm.PieceTypeKnight]
	total += int32(bits.OnesCount64(bbs.Bishops)) * pieceValue[gm.PieceTypeBishop]
	total += int32(bits.OnesCount64(bbs.Rooks)) * pieceValue[gm.PieceTypeRook]
	total += int32(bits.OnesCount64(bbs.Queens)) * pieceValue[gm.PieceTypeQueen]
	return total
}
