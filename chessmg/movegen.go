package chessmg

import "math/bits"

// Precomputed attack masks for knights and kings from each square.
var knightMoves [64]uint64
var kingMoves [64]uint64

// Pawn attack masks: pawnAttacks[color][sq] gives bitboard of squares that a pawn of 'color' attacks from 'sq'.
var pawnAttacks [2][64]uint64

// Precomputed rays for sliders. For each square and direction, the bitboard of
// squares in that ray (excluding the origin square).
// Rook directions: 0=N, 1=S, 2=E, 3=W
var rookRays [64][4]uint64

// Bishop directions: 0=NE, 1=NW, 2=SE, 3=SW
var bishopRays [64][4]uint64

func init() {
	initAttackTables()
	initRays()
}

// initAttackTables precomputes move attack bitboards for knights, kings, and pawn captures.
func initAttackTables() {
	// Knight moves
	knightOffsets := [8][2]int{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8
		var mask uint64
		for _, off := range knightOffsets {
			rf := rank + off[0]
			ff := file + off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				mask |= uint64(1) << (rf*8 + ff)
			}
		}
		knightMoves[sq] = mask
	}

	// King moves
	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8
		var mask uint64
		for _, off := range kingOffsets {
			rf := rank + off[0]
			ff := file + off[1]
			if rf >= 0 && rf < 8 && ff >= 0 && ff < 8 {
				mask |= uint64(1) << (rf*8 + ff)
			}
		}
		kingMoves[sq] = mask
	}

	// Pawn attacks
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		// White pawn attacks (moves upward)
		if rank < 7 {
			if file > 0 {
				pawnAttacks[White][sq] |= uint64(1) << ((rank+1)*8 + file - 1)
			}
			if file < 7 {
				pawnAttacks[White][sq] |= uint64(1) << ((rank+1)*8 + file + 1)
			}
		}

		// Black pawn attacks (moves downward)
		if rank > 0 {
			if file > 0 {
				pawnAttacks[Black][sq] |= uint64(1) << ((rank-1)*8 + file - 1)
			}
			if file < 7 {
				pawnAttacks[Black][sq] |= uint64(1) << ((rank-1)*8 + file + 1)
			}
		}
	}
}

// initRays precomputes directional rays for rook and bishop moves.
func initRays() {
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8

		// Rook rays

		// N
		var ray uint64
		for r := rank + 1; r < 8; r++ {
			ray |= 1 << uint(r*8+file)
		}
		rookRays[sq][0] = ray

		// S
		ray = 0
		for r := rank - 1; r >= 0; r-- {
			ray |= 1 << uint(r*8+file)
		}
		rookRays[sq][1] = ray

		// E
		ray = 0
		for f := file + 1; f < 8; f++ {
			ray |= 1 << uint(rank*8+f)
		}
		rookRays[sq][2] = ray

		// W
		ray = 0
		for f := file - 1; f >= 0; f-- {
			ray |= 1 << uint(rank*8+f)
		}
		rookRays[sq][3] = ray

		// Bishop rays

		// NE
		ray = 0
		for r, f := rank+1, file+1; r < 8 && f < 8; r, f = r+1, f+1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][0] = ray

		// NW
		ray = 0
		for r, f := rank+1, file-1; r < 8 && f >= 0; r, f = r+1, f-1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][1] = ray

		// SE
		ray = 0
		for r, f := rank-1, file+1; r >= 0 && f < 8; r, f = r-1, f+1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][2] = ray

		// SW
		ray = 0
		for r, f := rank-1, file-1; r >= 0 && f >= 0; r, f = r-1, f-1 {
			ray |= 1 << uint(r*8+f)
		}
		bishopRays[sq][3] = ray
	}
}

// rookAttacks returns rook attack bitboard from sq given current occupancy.
// Rays are cut at the first blocker; the blocker square itself stays in the
// mask so captures are included.
func rookAttacks(sq int, occ uint64) uint64 {
	var attacks uint64

	// N (increasing indices)
	ray := rookRays[sq][0]
	blockers := ray & occ
	if blockers != 0 {
		first := bits.TrailingZeros64(blockers)
		ray &^= rookRays[first][0]
	}
	attacks |= ray

	// S (decreasing indices)
	ray = rookRays[sq][1]
	blockers = ray & occ
	if blockers != 0 {
		first := 63 - bits.LeadingZeros64(blockers)
		ray &^= rookRays[first][1]
	}
	attacks |= ray

	// E (increasing)
	ray = rookRays[sq][2]
	blockers = ray & occ
	if blockers != 0 {
		first := bits.TrailingZeros64(blockers)
		ray &^= rookRays[first][2]
	}
	attacks |= ray

	// W (decreasing)
	ray = rookRays[sq][3]
	blockers = ray & occ
	if blockers != 0 {
		first := 63 - bits.LeadingZeros64(blockers)
		ray &^= rookRays[first][3]
	}
	attacks |= ray

	return attacks
}

// bishopAttacks returns bishop attack bitboard from sq given current occupancy.
func bishopAttacks(sq int, occ uint64) uint64 {
	var attacks uint64

	// NE (increasing)
	ray := bishopRays[sq][0]
	blockers := ray & occ
	if blockers != 0 {
		first := bits.TrailingZeros64(blockers)
		ray &^= bishopRays[first][0]
	}
	attacks |= ray

	// NW (increasing)
	ray = bishopRays[sq][1]
	blockers = ray & occ
	if blockers != 0 {
		first := bits.TrailingZeros64(blockers)
		ray &^= bishopRays[first][1]
	}
	attacks |= ray

	// SE (decreasing)
	ray = bishopRays[sq][2]
	blockers = ray & occ
	if blockers != 0 {
		first := 63 - bits.LeadingZeros64(blockers)
		ray &^= bishopRays[first][2]
	}
	attacks |= ray

	// SW (decreasing)
	ray = bishopRays[sq][3]
	blockers = ray & occ
	if blockers != 0 {
		first := 63 - bits.LeadingZeros64(blockers)
		ray &^= bishopRays[first][3]
	}
	attacks |= ray

	return attacks
}

// ==========================
// Attack queries
// ==========================

// IsSquareAttacked reports whether the given square is attacked by the given color.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	s := int(sq)
	byIdx := int(by)
	occ := b.AllOccupancy()

	// Pawn attacks via reverse mask (fewer branches)
	if by == White {
		if (pawnAttacks[Black][s] & b.pawns[byIdx]) != 0 {
			return true
		}
	} else {
		if (pawnAttacks[White][s] & b.pawns[byIdx]) != 0 {
			return true
		}
	}

	// Knights
	if knightMoves[s]&b.knights[byIdx] != 0 {
		return true
	}

	// Kings
	if kingMoves[s]&b.kings[byIdx] != 0 {
		return true
	}

	// Sliders
	rq := b.rooks[byIdx] | b.queens[byIdx]
	if rq != 0 && rookAttacks(s, occ)&rq != 0 {
		return true
	}
	bq := b.bishops[byIdx] | b.queens[byIdx]
	if bq != 0 && bishopAttacks(s, occ)&bq != 0 {
		return true
	}

	return false
}

// InCheck reports whether the specified color's king is currently in check.
// It panics if the board carries no king of that color: reachable positions
// always have both kings, so a missing one is a caller defect.
func (b *Board) InCheck(color Color) bool {
	ks := b.KingSquare(color)
	if ks == NoSquare {
		panic("chessmg.InCheck: no king on board")
	}
	return b.IsSquareAttacked(ks, 1-color)
}

// GeneratePseudoMovesInto appends all pseudo-legal moves (no king-safety
// filtering) into dst and returns it. Pseudo-legal obeys piece movement rules,
// board edges and blockers only. Moves are emitted in ascending origin-square
// order, then ascending destination order; downstream search relies on this
// order as its tie-break.
func (b *Board) GeneratePseudoMovesInto(dst []Move) []Move {
	moves := dst[:0]
	side := b.sideToMove
	us := int(side)
	them := 1 - us

	ownOcc := b.occupancy[us]
	oppOcc := b.occupancy[them]
	allOcc := ownOcc | oppOcc

	occupied := ownOcc
	for occupied != 0 {
		from := popLSB(&occupied)
		fromSq := Square(from)
		movedPiece := b.pieces[from]

		switch typeOf(movedPiece) {
		case 1: // pawn
			moves = b.pawnMovesInto(moves, fromSq, movedPiece, side, allOcc, oppOcc)

		case 2: // knight
			targets := knightMoves[from] &^ ownOcc
			moves = b.targetMovesInto(moves, fromSq, movedPiece, targets, oppOcc)

		case 3: // bishop
			targets := bishopAttacks(from, allOcc) &^ ownOcc
			moves = b.targetMovesInto(moves, fromSq, movedPiece, targets, oppOcc)

		case 4: // rook
			targets := rookAttacks(from, allOcc) &^ ownOcc
			moves = b.targetMovesInto(moves, fromSq, movedPiece, targets, oppOcc)

		case 5: // queen
			targets := (rookAttacks(from, allOcc) | bishopAttacks(from, allOcc)) &^ ownOcc
			moves = b.targetMovesInto(moves, fromSq, movedPiece, targets, oppOcc)

		case 6: // king
			targets := kingMoves[from] &^ ownOcc
			moves = b.targetMovesInto(moves, fromSq, movedPiece, targets, oppOcc)
		}
	}

	return moves
}

// targetMovesInto expands a target bitboard into moves in ascending destination order.
func (b *Board) targetMovesInto(moves []Move, fromSq Square, movedPiece Piece, targets, oppOcc uint64) []Move {
	for targets != 0 {
		to := popLSB(&targets)
		captured := NoPiece
		if ((oppOcc >> uint(to)) & 1) != 0 {
			captured = b.pieces[to]
		}
		moves = append(moves, NewMove(fromSq, Square(to), movedPiece, captured, NoPiece))
	}
	return moves
}

// pawnMovesInto emits single and double advances and diagonal captures for one
// pawn, fanning a promotion out into queen, rook, bishop and knight variants.
func (b *Board) pawnMovesInto(moves []Move, fromSq Square, movedPiece Piece, side Color, allOcc, oppOcc uint64) []Move {
	from := int(fromSq)

	push := 8
	startRank := 1
	promoRank := 7
	if side == Black {
		push = -8
		startRank = 6
		promoRank = 0
	}

	capTargets := pawnAttacks[side][from] & oppOcc

	var pushTargets uint64
	one := from + push
	if one >= 0 && one < 64 && ((allOcc>>uint(one))&1) == 0 {
		pushTargets |= uint64(1) << uint(one)
		if from/8 == startRank {
			two := from + 2*push
			if ((allOcc >> uint(two)) & 1) == 0 {
				pushTargets |= uint64(1) << uint(two)
			}
		}
	}

	// Single pass over all destinations keeps ascending order regardless of
	// whether a target is a push or a capture.
	targets := pushTargets | capTargets
	for targets != 0 {
		to := popLSB(&targets)
		captured := NoPiece
		if (capTargets>>uint(to))&1 != 0 {
			captured = b.pieces[to]
		}
		toSq := Square(to)
		if to/8 == promoRank {
			moves = append(moves,
				NewMove(fromSq, toSq, movedPiece, captured, PieceFromType(side, PieceTypeQueen)),
				NewMove(fromSq, toSq, movedPiece, captured, PieceFromType(side, PieceTypeRook)),
				NewMove(fromSq, toSq, movedPiece, captured, PieceFromType(side, PieceTypeBishop)),
				NewMove(fromSq, toSq, movedPiece, captured, PieceFromType(side, PieceTypeKnight)),
			)
		} else {
			moves = append(moves, NewMove(fromSq, toSq, movedPiece, captured, NoPiece))
		}
	}

	return moves
}

// GeneratePseudoMoves returns all pseudo-legal moves (allocates a new slice).
func (b *Board) GeneratePseudoMoves() []Move { return b.GeneratePseudoMovesInto(make([]Move, 0, 128)) }

// GenerateMovesInto appends all legal moves for the side to move into dst and
// returns it. Each pseudo-legal candidate is applied, tested for leaving the
// mover's own king attacked, and undone; only safe moves are retained, in
// generation order.
func (b *Board) GenerateMovesInto(dst []Move) []Move {
	pseudo := b.GeneratePseudoMovesInto(make([]Move, 0, 128))
	moves := dst[:0]
	for _, m := range pseudo {
		if ok, st := b.MakeMove(m); ok {
			b.UnmakeMove(m, st)
			moves = append(moves, m)
		}
	}
	return moves
}

// GenerateMoves generates all legal moves for the current side to move.
func (b *Board) GenerateMoves() []Move { return b.GenerateMovesInto(make([]Move, 0, 64)) }

// GenerateLegalMoves exposes the same API name as dragontoothmg for legal move generation.
func (b *Board) GenerateLegalMoves() []Move { return b.GenerateMoves() }

// Perft counts leaf nodes (move sequences) from the position for a given depth.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	moves := b.GenerateMoves()
	for _, m := range moves {
		if ok, st := b.MakeMove(m); ok {
			nodes += Perft(b, depth-1)
			b.UnmakeMove(m, st)
		}
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf
// nodes reachable from that move at the given depth. Useful for debugging.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.GenerateMoves() {
		if ok, st := b.MakeMove(m); ok {
			result[m] = Perft(b, depth-1)
			b.UnmakeMove(m, st)
		}
	}
	return result
}
