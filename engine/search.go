package engine

import (
	gm "chess-ai/chessmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MaxScore bounds all search scores. A checkmate at ply p scores
	// MaxScore-p for the winner, so faster mates always score higher and any
	// mate outranks any material difference.
	MaxScore int32 = 32500

	// Checkmate is the threshold above which a score magnitude means a forced
	// mate rather than a material advantage.
	Checkmate int32 = 20000

	// DrawScore is the neutral value for stalemate, overriding material.
	DrawScore int32 = 0
)

// Searcher runs depth-limited negamax with alpha-beta pruning over the legal
// move tree. It holds no position state of its own; the board passed to
// FindBestMove is explored with strict apply/undo pairs and is unchanged on
// return.
type Searcher struct {
	Eval  Evaluator
	nodes uint64
}

// NewSearcher returns a Searcher using the given evaluator, or MaterialEval
// when nil.
func NewSearcher(eval Evaluator) *Searcher {
	if eval == nil {
		eval = MaterialEval
	}
	return &Searcher{Eval: eval}
}

// Nodes returns the number of nodes visited by the last FindBestMove call.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// FindBestMove searches the position to the given depth (in plies, >= 1) and
// returns the chosen move with its score from the side to move's perspective.
// Among equal-scoring moves the first one in generation order wins, so the
// result is identical to an exhaustive minimax at the same depth.
//
// On a terminal position it returns (NoMove, terminal score) without
// searching: -MaxScore if the side to move is checkmated, DrawScore for
// stalemate. A depth below 1 is a caller defect and panics.
func (s *Searcher) FindBestMove(b *gm.Board, depth int) (gm.Move, int32) {
	if depth < 1 {
		panic("engine.FindBestMove: depth must be >= 1")
	}
	s.nodes = 0

	moves := b.GenerateMoves()
	if len(moves) == 0 {
		if b.InCheck(b.SideToMove()) {
			return gm.NoMove, -MaxScore
		}
		return gm.NoMove, DrawScore
	}

	var (
		bestMove  = gm.NoMove
		bestScore = -MaxScore - 1 // below any reachable score
		alpha     = -MaxScore
		beta      = MaxScore
	)
	for _, m := range moves {
		undo := b.Apply(m)
		score := -s.negamax(b, depth-1, 1, -beta, -alpha)
		undo()

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if bestScore > alpha {
			alpha = bestScore
		}
	}
	return bestMove, bestScore
}

// negamax returns the score of the position from the side to move's
// perspective, searching depth more plies. ply is the distance from the root,
// used to prefer faster mates.
func (s *Searcher) negamax(b *gm.Board, depth, ply int, alpha, beta int32) int32 {
	s.nodes++

	moves := b.GenerateMoves()
	if len(moves) == 0 {
		if b.InCheck(b.SideToMove()) {
			return -MaxScore + int32(ply) // mated; deeper mates score closer to zero
		}
		return DrawScore
	}

	if depth == 0 {
		return s.evalSideToMove(b)
	}

	best := -MaxScore - 1
	for _, m := range moves {
		undo := b.Apply(m)
		score := -s.negamax(b, depth-1, ply+1, -beta, -alpha)
		undo()

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break // remaining moves cannot improve the minimax value
		}
	}
	return best
}

// evalSideToMove adapts the White-perspective evaluator to the negamax sign
// convention.
func (s *Searcher) evalSideToMove(b *gm.Board) int32 {
	score := s.Eval(b)
	if b.SideToMove() == gm.Black {
		return -score
	}
	return score
}

// IsMateScore reports whether a score magnitude means a forced mate.
func IsMateScore(score int32) bool {
	return score > Checkmate || score < -Checkmate
}
