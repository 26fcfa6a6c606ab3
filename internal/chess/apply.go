package chess

// Apply plays m against p and returns the resulting position. The second
// return value is false if m is illegal in p — an absolutely pinned
// piece moving off its pin line, a pseudo-legal move that captures the
// opposing king outright, an unsafe castle, or any move that leaves the
// mover's own king in check once fully applied. On rejection the first
// return value is nil; p itself is never mutated.
func (p *Position) Apply(m Move) (*Position, bool) {
	us := p.SideToMove
	them := us.Other()
	from := m.From()
	to := m.To()

	if !m.IsCastling() && !m.IsEnPassant() {
		scratch := p.Clone()
		piece := scratch.removePiece(from)
		if IsKingInCheck(scratch, us) {
			// The removal exposes the king; the move is still legal if the
			// piece's destination keeps the line covered (moving along the
			// pin, capturing the attacker, or blocking an existing check).
			scratch.removePiece(to)
			scratch.setPiece(piece, to)
			if IsKingInCheck(scratch, us) {
				return nil, false
			}
		}
	}

	if enemyKing := p.Pieces[them][King]; enemyKing.IsSet(int(to)) {
		return nil, false
	}

	next := p.Clone()
	pawnOrCapture := false

	switch {
	case m.IsCastling():
		if IsKingInCheck(next, us) {
			return nil, false
		}
		step := 1
		if to < from {
			step = -1
		}
		for sq := int(from); sq != int(to); sq += step {
			if IsSquareAttacked(next, Square(sq), them) {
				return nil, false
			}
		}
		if IsSquareAttacked(next, to, them) {
			return nil, false
		}

		king := next.removePiece(from)
		next.setPiece(king, to)

		rank := from.Rank()
		var rookFrom, rookTo Square
		if to > from {
			rookFrom = NewSquare(7, rank)
			rookTo = NewSquare(5, rank)
		} else {
			rookFrom = NewSquare(0, rank)
			rookTo = NewSquare(3, rank)
		}
		rook := next.removePiece(rookFrom)
		next.setPiece(rook, rookTo)

	case m.IsEnPassant():
		pawn := next.removePiece(from)
		next.setPiece(pawn, to)

		var capturedSq Square
		if us == White {
			capturedSq = to - 8
		} else {
			capturedSq = to + 8
		}
		next.removePiece(capturedSq)
		pawnOrCapture = true

	default:
		mover := next.removePiece(from)
		if captured := next.removePiece(to); captured != NoPiece {
			pawnOrCapture = true
		}

		placed := mover
		if m.IsPromotion() {
			placed = NewPiece(m.Promotion(), us)
		}
		next.setPiece(placed, to)

		if mover.Type() == Pawn {
			pawnOrCapture = true
		}
	}

	next.updateCastlingRights(from, to)

	next.EnPassant = NoSquare
	if !m.IsCastling() && !m.IsEnPassant() {
		moved := next.PieceAt(to)
		if moved.Type() == Pawn && abs(int(to)-int(from)) == 16 {
			next.EnPassant = Square((int(from) + int(to)) / 2)
		}
	}

	if pawnOrCapture {
		next.HalfMoveClock = 0
	} else {
		next.HalfMoveClock++
	}
	if us == Black {
		next.FullMoveNumber++
	}

	next.SideToMove = them
	next.Hash = HashPosition(next)

	if IsKingInCheck(next, us) {
		return nil, false
	}

	return next, true
}

// updateCastlingRights clears whichever rights the move's endpoints
// invalidate: a king leaving home forfeits both of its side's rights; a
// rook leaving or being captured on its original corner forfeits the
// matching single right.
func (p *Position) updateCastlingRights(from, to Square) {
	if p.CastlingRights == NoCastling {
		return
	}
	switch from {
	case E1:
		p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
	case E8:
		p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
	}
	for _, sq := range []Square{from, to} {
		switch sq {
		case A1:
			p.CastlingRights &^= WhiteQueenSideCastle
		case H1:
			p.CastlingRights &^= WhiteKingSideCastle
		case A8:
			p.CastlingRights &^= BlackQueenSideCastle
		case H8:
			p.CastlingRights &^= BlackKingSideCastle
		}
	}
}
