package chessmg

import (
	"math/bits"
	"strings"
)

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color { return colorOf(p) }

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color { return 1 - c }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Square represents a board position (0-63, a1=0, h8=63).
type Square int

const NoSquare Square = -1

// SquareOf builds a square index from file and rank, both in 0..7.
func SquareOf(file, rank int) Square { return Square(rank*8 + file) }

// File returns the square's file in 0..7 (a=0).
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the square's rank in 0..7 (rank 1 = 0).
func (sq Square) Rank() int { return int(sq) / 8 }

// String returns the algebraic coordinate, e.g. "e4".
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// Board represents the chess board state: piece placement plus side to move.
// Castling rights, en passant targets and move clocks are not modeled.
type Board struct {
	// Piece bitboards for each piece type and color (index 0 = white, 1 = black)
	pawns   [2]uint64
	knights [2]uint64
	bishops [2]uint64
	rooks   [2]uint64
	queens  [2]uint64
	kings   [2]uint64

	// Occupancy bitboards for each side
	occupancy [2]uint64

	// Piece placement array for each square (0 = NoPiece, otherwise a Piece constant)
	pieces [64]Piece

	// Side to move
	sideToMove Color
}

// Status classifies a position for the side to move.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// Status reports whether the game is ongoing or has ended for the side to move.
// It is a pure function of the position and must be re-queried after every move.
func (b *Board) Status() Status {
	if b.HasLegalMoves() {
		return Ongoing
	}
	if b.InCheck(b.sideToMove) {
		return Checkmate
	}
	return Stalemate
}

// HasLegalMoves reports whether the side to move has any legal moves.
func (b *Board) HasLegalMoves() bool {
	buf := make([]Move, 0, 64)
	return len(b.GenerateMovesInto(buf)) > 0
}

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool {
	return !b.InCheck(b.sideToMove) && !b.HasLegalMoves()
}

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// Bitboards exposes the per-piece bitboards for a color.
type Bitboards struct {
	Pawns   uint64
	Knights uint64
	Bishops uint64
	Rooks   uint64
	Queens  uint64
	Kings   uint64
	All     uint64
}

// Bitboards returns the per-piece bitboards for the requested side (copy).
func (b *Board) Bitboards(color Color) Bitboards {
	idx := int(color)
	return Bitboards{
		Pawns:   b.pawns[idx],
		Knights: b.knights[idx],
		Bishops: b.bishops[idx],
		Rooks:   b.rooks[idx],
		Queens:  b.queens[idx],
		Kings:   b.kings[idx],
		All:     b.occupancy[idx],
	}
}

// KingSquare returns the square of the given color's king, or NoSquare if the
// board is malformed and carries no such king.
func (b *Board) KingSquare(color Color) Square {
	kingBB := b.kings[int(color)]
	if kingBB == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(kingBB))
}

// ==========================
// Bitboard helpers
// ==========================

// bb returns a bitboard with the given square bit set.
func bb(sq Square) uint64 { return 1 << uint64(sq) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	x := *mask & -(*mask)
	idx := bits.TrailingZeros64(x)
	*mask &= *mask - 1
	return idx
}

// ==========================
// Board occupancy helpers
// ==========================

// AllOccupancy returns a bitboard of all occupied squares.
func (b *Board) AllOccupancy() uint64 { return b.occupancy[0] | b.occupancy[1] }

// ColorOccupancy returns the occupancy bitboard for the given color.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.occupancy[int(c)] }

// PieceAt returns the piece on a square.
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[int(sq)] }

// colorOf returns the color of a piece. NoPiece is treated as White.
func colorOf(p Piece) Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// typeOf returns the piece type in [1..6] with color stripped.
func typeOf(p Piece) Piece { return p & 7 }

// addPiece places a piece on an empty square and updates bitboards and occupancy.
func (b *Board) addPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	b.pieces[int(sq)] = p
	ci := int(colorOf(p))
	b.occupancy[ci] |= bb(sq)
	switch typeOf(p) {
	case 1:
		b.pawns[ci] |= bb(sq)
	case 2:
		b.knights[ci] |= bb(sq)
	case 3:
		b.bishops[ci] |= bb(sq)
	case 4:
		b.rooks[ci] |= bb(sq)
	case 5:
		b.queens[ci] |= bb(sq)
	case 6:
		b.kings[ci] |= bb(sq)
	}
}

// removePiece removes a piece from a square and updates bitboards and occupancy.
func (b *Board) removePiece(sq Square) Piece {
	p := b.pieces[int(sq)]
	if p == NoPiece {
		return NoPiece
	}
	ci := int(colorOf(p))
	mask := ^bb(sq)
	b.pieces[int(sq)] = NoPiece
	b.occupancy[ci] &= mask
	switch typeOf(p) {
	case 1:
		b.pawns[ci] &= mask
	case 2:
		b.knights[ci] &= mask
	case 3:
		b.bishops[ci] &= mask
	case 4:
		b.rooks[ci] &= mask
	case 5:
		b.queens[ci] &= mask
	case 6:
		b.kings[ci] &= mask
	}
	return p
}

// SetPiece sets a piece on a square, replacing any existing piece, and keeps state in sync.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.removePiece(sq)
	b.addPiece(sq, p)
}

// ClearSquare removes any piece from the given square.
func (b *Board) ClearSquare(sq Square) { _ = b.removePiece(sq) }

// Validate checks internal consistency between pieces[], per-piece bitboards, and occupancy.
// Returns true if consistent, false otherwise.
func (b *Board) Validate() bool {
	var occ [2]uint64
	var pawns, knights, bishops, rooks, queens, kings [2]uint64
	for sq := 0; sq < 64; sq++ {
		p := b.pieces[sq]
		if p == NoPiece {
			continue
		}
		ci := int(colorOf(p))
		bit := uint64(1) << uint(sq)
		occ[ci] |= bit
		switch typeOf(p) {
		case 1:
			pawns[ci] |= bit
		case 2:
			knights[ci] |= bit
		case 3:
			bishops[ci] |= bit
		case 4:
			rooks[ci] |= bit
		case 5:
			queens[ci] |= bit
		case 6:
			kings[ci] |= bit
		}
	}
	if occ != b.occupancy {
		return false
	}
	if pawns != b.pawns || knights != b.knights || bishops != b.bishops || rooks != b.rooks || queens != b.queens || kings != b.kings {
		return false
	}
	return true
}

// ToASCII renders the board as text, rank 8 at the top, for the CLI.
func (b *Board) ToASCII() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteString("  ")
		for file := 0; file < 8; file++ {
			p := b.pieces[rank*8+file]
			if p == NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(charFromPiece(p))
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h")
	return sb.String()
}

func (b *Board) String() string { return b.ToASCII() }
