package chess

import "fmt"

// moveSpecial distinguishes the two move kinds that need extra handling
// beyond "piece goes from here to there": castling relocates a rook as a
// side effect, en passant captures a piece that isn't standing on the
// destination square.
type moveSpecial uint8

const (
	moveSpecialNone moveSpecial = iota
	moveSpecialEnPassant
	moveSpecialCastle
)

// Move is a single ply: a from/to square pair, an optional promotion
// piece, and a special-move tag. Each field is independently readable
// without masking or shifting bits out of a packed integer — the
// tradeoff is a few more bytes per move, which a 256-entry MoveList can
// easily afford.
type Move struct {
	from, to  Square
	promotion PieceType
	special   moveSpecial
}

// NoMove represents an invalid or null move. Its promotion field is set
// explicitly to NoPieceType rather than left at Go's zero value — for
// PieceType the zero value is Pawn, so leaving it implicit would make a
// zero-value Move falsely report IsPromotion() == true.
var NoMove = Move{from: NoSquare, to: NoSquare, promotion: NoPieceType}

// NewMove creates a normal move.
func NewMove(from, to Square) Move {
	return Move{from: from, to: to, promotion: NoPieceType}
}

// NewPromotion creates a promotion move. promo is the piece the pawn
// becomes (Knight, Bishop, Rook, or Queen).
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move{from: from, to: to, promotion: promo}
}

// NewEnPassant creates an en passant capture move.
func NewEnPassant(from, to Square) Move {
	return Move{from: from, to: to, promotion: NoPieceType, special: moveSpecialEnPassant}
}

// NewCastling creates a castling move: the king's own from/to squares,
// with the rook's relocation derived by the caller from those squares.
func NewCastling(from, to Square) Move {
	return Move{from: from, to: to, promotion: NoPieceType, special: moveSpecialCastle}
}

// From returns the origin square.
func (m Move) From() Square {
	return m.from
}

// To returns the destination square.
func (m Move) To() Square {
	return m.to
}

// Promotion returns the promotion piece type; meaningful only when
// IsPromotion reports true.
func (m Move) Promotion() PieceType {
	return m.promotion
}

// IsPromotion returns true if this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.promotion != NoPieceType
}

// IsCastling returns true if this is a castling move.
func (m Move) IsCastling() bool {
	return m.special == moveSpecialCastle
}

// IsEnPassant returns true if this is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.special == moveSpecialEnPassant
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture(pos *Position) bool {
	if m.IsEnPassant() {
		return true
	}
	return !pos.IsEmpty(m.To())
}

// IsQuiet returns true if this is not a capture or promotion.
func (m Move) IsQuiet(pos *Position) bool {
	return !m.IsCapture(pos) && !m.IsPromotion()
}

var promotionLetters = map[PieceType]byte{
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(promotionLetters[m.promotion])
	}
	return s
}

// ParseMove parses a UCI format move string, consulting pos to classify
// it as a castle or en passant capture when the string itself doesn't
// say so.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("chess: malformed move %q", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	if len(s) == 5 {
		promo, ok := promotionFromLetter(s[4])
		if !ok {
			return NoMove, fmt.Errorf("chess: unrecognized promotion letter %q", s[4])
		}
		return NewPromotion(from, to, promo), nil
	}

	piece := pos.PieceAt(from)
	if piece == NoPiece {
		return NoMove, fmt.Errorf("chess: no piece on %s", from)
	}

	switch pt := piece.Type(); {
	case pt == King && abs(int(to)-int(from)) == 2:
		return NewCastling(from, to), nil
	case pt == Pawn && to == pos.EnPassant:
		return NewEnPassant(from, to), nil
	default:
		return NewMove(from, to), nil
	}
}

func promotionFromLetter(c byte) (PieceType, bool) {
	switch c {
	case 'n':
		return Knight, true
	case 'b':
		return Bishop, true
	case 'r':
		return Rook, true
	case 'q':
		return Queen, true
	default:
		return NoPieceType, false
	}
}

// MoveList is a fixed-size list of moves to avoid allocations during
// move generation.
type MoveList struct {
	moves [256]Move
	count int
}

// NewMoveList creates an empty move list.
func NewMoveList() *MoveList {
	return &MoveList{}
}

// Add appends a move to the list.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves in the list.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}
