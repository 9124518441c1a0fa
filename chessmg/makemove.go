package chessmg

// MoveState holds the minimal state needed to undo a move. It is produced by
// MakeMove and must be consumed by the matching UnmakeMove before any other
// mutation touches the board (strict last-applied, first-undone discipline).
type MoveState struct {
	move     Move
	captured Piece
}

// MakeMove applies a move to the board: the piece leaves its origin, any
// captured piece is removed, a promoting pawn is replaced by the promotion
// piece, and the side to move flips. It returns ok=false if the move leaves
// the mover's king in check, restoring the original position.
//
// The move must come from this board's move generator; MakeMove does not
// re-derive movement legality.
func (b *Board) MakeMove(m Move) (ok bool, st MoveState) {
	st.move = m
	st.captured = b.removePiece(m.To())

	moved := b.removePiece(m.From())
	if promo := m.PromotionPiece(); promo != NoPiece {
		b.addPiece(m.To(), promo)
	} else {
		b.addPiece(m.To(), moved)
	}

	b.sideToMove = 1 - b.sideToMove

	// Reject a move that leaves the mover's own king attacked.
	mover := 1 - b.sideToMove
	kingSq := b.KingSquare(mover)
	if kingSq == NoSquare || b.IsSquareAttacked(kingSq, 1-mover) {
		b.UnmakeMove(m, st)
		return false, st
	}
	return true, st
}

// UnmakeMove undoes a previously made move, restoring board state exactly.
// It must be called with the MoveState returned by the paired MakeMove.
func (b *Board) UnmakeMove(m Move, st MoveState) {
	b.sideToMove = 1 - b.sideToMove

	b.removePiece(m.To())
	b.addPiece(m.From(), m.MovedPiece())
	if st.captured != NoPiece {
		b.addPiece(m.To(), st.captured)
	}
}

// Apply plays a move and returns an undo closure. It panics if the move is
// illegal: callers are expected to hand it moves from GenerateMoves, so an
// illegal move here is a caller defect, not a runtime condition.
func (b *Board) Apply(m Move) func() {
	ok, st := b.MakeMove(m)
	if !ok {
		panic("chessmg.Apply: illegal move applied")
	}
	return func() { b.UnmakeMove(m, st) }
}

// PushMove attempts to make the move, and if legal, pushes the MoveState onto
// the stack for later undo. Returns true on success; on failure the board is
// unchanged and nothing is pushed.
func (b *Board) PushMove(m Move, stack *[]MoveState) bool {
	ok, st := b.MakeMove(m)
	if !ok {
		return false
	}
	*stack = append(*stack, st)
	return true
}

// PopMove undoes the last move pushed with PushMove.
// It panics if the stack is empty.
func (b *Board) PopMove(stack *[]MoveState) {
	n := len(*stack)
	if n == 0 {
		panic("PopMove: empty stack")
	}
	st := (*stack)[n-1]
	*stack = (*stack)[:n-1]
	b.UnmakeMove(st.move, st)
}
