package chessmg

import (
	"errors"
	"strings"
)

// Move encodes a chess move in a 32-bit value. A move carries no board state
// beyond the two squares, the pieces involved, and an optional promotion.
type Move uint32

// NoMove is the zero Move, returned when no move exists (terminal positions).
const NoMove Move = 0

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0  // 6 bits
	moveToShift      = 6  // 6 bits
	movePieceShift   = 12 // 4 bits
	moveCaptureShift = 16 // 4 bits
	movePromoteShift = 20 // 4 bits
)

// NewMove constructs a Move value from components.
func NewMove(from, to Square, piece, captured, promotion Piece) Move {
	m := uint32(from&0x3F) |
		(uint32(to&0x3F) << moveToShift) |
		(uint32(piece&0xF) << movePieceShift) |
		(uint32(captured&0xF) << moveCaptureShift) |
		(uint32(promotion&0xF) << movePromoteShift)
	return Move(m)
}

// From returns the source square of the move.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square of the move.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// MovedPiece returns the piece code that is moved.
func (m Move) MovedPiece() Piece { return Piece((uint32(m) >> movePieceShift) & 0xF) }

// CapturedPiece returns the piece code that was captured (or NoPiece if none).
func (m Move) CapturedPiece() Piece { return Piece((uint32(m) >> moveCaptureShift) & 0xF) }

// PromotionPiece returns the promotion piece code (or NoPiece if not a promotion).
func (m Move) PromotionPiece() Piece { return Piece((uint32(m) >> movePromoteShift) & 0xF) }

// PromotionPieceType returns the colorless type of the promoted piece (or PieceTypeNone).
func (m Move) PromotionPieceType() PieceType { return m.PromotionPiece().Type() }

// IsCapture reports whether the move captures a piece.
func (m Move) IsCapture() bool { return m.CapturedPiece() != NoPiece }

// String produces the long algebraic representation of the move (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	str := m.From().String() + m.To().String()
	if promo := m.PromotionPiece(); promo != NoPiece {
		str += strings.ToLower(string(charFromPiece(promo)))
	}
	return str
}

// ParseMove converts a long algebraic string (e2e4, e7e8q) into a Move carrying
// only squares and an optional promotion type. The returned move is not checked
// for legality; callers resolve it against the legal move set for the position.
func ParseMove(movestr string) (Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if len(movestr) < 4 || len(movestr) > 5 {
		return NoMove, errors.New("invalid move length")
	}
	from, err := algebraicToIndex(movestr[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := algebraicToIndex(movestr[2:4])
	if err != nil {
		return NoMove, err
	}
	var promo Piece
	if len(movestr) == 5 {
		switch movestr[4] {
		case 'q':
			promo = WhiteQueen
		case 'r':
			promo = WhiteRook
		case 'b':
			promo = WhiteBishop
		case 'n':
			promo = WhiteKnight
		default:
			return NoMove, errors.New("invalid promotion piece")
		}
	}
	return NewMove(Square(from), Square(to), NoPiece, NoPiece, promo), nil
}

func algebraicToIndex(alg string) (int, error) {
	if len(alg) != 2 {
		return 0, errors.New("invalid algebraic square length")
	}
	file := alg[0]
	rank := alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, errors.New("invalid algebraic square")
	}
	return int(file-'a') + int(rank-'1')*8, nil
}

// FindLegalMove resolves a parsed move against the legal moves of the position,
// matching on origin and destination. If the matched move is a promotion and the
// input named no piece, the queen promotion is chosen. Returns NoMove if the
// move is not legal here.
func (b *Board) FindLegalMove(parsed Move) Move {
	for _, m := range b.GenerateMoves() {
		if m.From() != parsed.From() || m.To() != parsed.To() {
			continue
		}
		if m.PromotionPiece() == NoPiece {
			return m
		}
		want := parsed.PromotionPieceType()
		if want == PieceTypeNone {
			want = PieceTypeQueen
		}
		if m.PromotionPieceType() == want {
			return m
		}
	}
	return NoMove
}
