package chess

import "github.com/hailam/chessplay/internal/bitutil"

// GeneratePseudoLegalMoves generates every pseudo-legal move for the
// side to move: legal piece movement and own-piece non-capture, but
// possibly leaving the mover's own king in check. Legality is filtered
// later, inside Apply. The generator emits at most one move per
// (from, to, promotion) triple; a pawn reaching the last rank expands
// to exactly four promotion moves. Castling moves are emitted whenever
// the right is held and the squares between king and rook are empty —
// whether the king passes through or starts in check is Apply's concern,
// not the generator's.
func (p *Position) GeneratePseudoLegalMoves() *MoveList {
	ml := NewMoveList()

	us := p.SideToMove
	them := us.Other()
	occupied := p.AllOccupied
	own := p.Occupied[us]
	enemies := p.Occupied[them]

	p.generatePawnMoves(ml, us, enemies, occupied)

	knights := p.Pieces[us][Knight]
	for knights != 0 {
		from := Square(knights.PopLSB())
		attacks := knightAttacks[from] &^ own
		for attacks != 0 {
			ml.Add(NewMove(from, Square(attacks.PopLSB())))
		}
	}

	bishops := p.Pieces[us][Bishop]
	for bishops != 0 {
		from := Square(bishops.PopLSB())
		attacks := bishopAttacks(from, occupied) &^ own
		for attacks != 0 {
			ml.Add(NewMove(from, Square(attacks.PopLSB())))
		}
	}

	rooks := p.Pieces[us][Rook]
	for rooks != 0 {
		from := Square(rooks.PopLSB())
		attacks := rookAttacks(from, occupied) &^ own
		for attacks != 0 {
			ml.Add(NewMove(from, Square(attacks.PopLSB())))
		}
	}

	queens := p.Pieces[us][Queen]
	for queens != 0 {
		from := Square(queens.PopLSB())
		attacks := queenAttacks(from, occupied) &^ own
		for attacks != 0 {
			ml.Add(NewMove(from, Square(attacks.PopLSB())))
		}
	}

	p.generateKingMoves(ml, us, own)
	p.generateCastlingMoves(ml, us)

	return ml
}

// GenerateCaptures generates only capturing (and promoting) pseudo-legal
// moves, for callers that need a cheaper quiescence-style subset.
func (p *Position) GenerateCaptures() *MoveList {
	all := p.GeneratePseudoLegalMoves()
	ml := NewMoveList()
	for i := 0; i < all.Len(); i++ {
		m := all.Get(i)
		if m.IsCapture(p) || m.IsPromotion() {
			ml.Add(m)
		}
	}
	return ml
}

func (p *Position) generatePawnMoves(ml *MoveList, us Color, enemies, occupied Bitboard) {
	pawns := p.Pieces[us][Pawn]
	empty := ^occupied

	var push1, push2, attackL, attackR Bitboard
	var promotionRank Bitboard
	var pushDir int

	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & bitutil.RankMask[2]).North() & empty
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		promotionRank = bitutil.RankMask[7]
		pushDir = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & bitutil.RankMask[5]).South() & empty
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		promotionRank = bitutil.RankMask[0]
		pushDir = -8
	}

	nonPromo := push1 &^ promotionRank
	for nonPromo != 0 {
		to := Square(nonPromo.PopLSB())
		ml.Add(NewMove(Square(int(to)-pushDir), to))
	}

	for push2 != 0 {
		to := Square(push2.PopLSB())
		ml.Add(NewMove(Square(int(to)-2*pushDir), to))
	}

	nonPromoL := attackL &^ promotionRank
	for nonPromoL != 0 {
		to := Square(nonPromoL.PopLSB())
		ml.Add(NewMove(Square(int(to)-pushDir+1), to))
	}

	nonPromoR := attackR &^ promotionRank
	for nonPromoR != 0 {
		to := Square(nonPromoR.PopLSB())
		ml.Add(NewMove(Square(int(to)-pushDir-1), to))
	}

	promoPush := push1 & promotionRank
	for promoPush != 0 {
		to := Square(promoPush.PopLSB())
		addPromotions(ml, Square(int(to)-pushDir), to)
	}

	promoL := attackL & promotionRank
	for promoL != 0 {
		to := Square(promoL.PopLSB())
		addPromotions(ml, Square(int(to)-pushDir+1), to)
	}

	promoR := attackR & promotionRank
	for promoR != 0 {
		to := Square(promoR.PopLSB())
		addPromotions(ml, Square(int(to)-pushDir-1), to)
	}

	// En passant: the diagonal-shift-from-target trick finds candidate
	// origin squares directly rather than scanning every pawn.
	if p.EnPassant != NoSquare {
		epBB := bitutil.SquareBB(int(p.EnPassant))
		var epAttackers Bitboard
		if us == White {
			epAttackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
		} else {
			epAttackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
		}
		for epAttackers != 0 {
			from := Square(epAttackers.PopLSB())
			ml.Add(NewEnPassant(from, p.EnPassant))
		}
	}
}

func addPromotions(ml *MoveList, from, to Square) {
	ml.Add(NewPromotion(from, to, Queen))
	ml.Add(NewPromotion(from, to, Rook))
	ml.Add(NewPromotion(from, to, Bishop))
	ml.Add(NewPromotion(from, to, Knight))
}

func (p *Position) generateKingMoves(ml *MoveList, us Color, own Bitboard) {
	from := p.KingSquare(us)
	if from == NoSquare {
		return
	}
	attacks := kingAttacks[from] &^ own
	for attacks != 0 {
		ml.Add(NewMove(from, Square(attacks.PopLSB())))
	}
}

// generateCastlingMoves emits a castling move whenever the corresponding
// right is set and the squares between king and rook are empty. It never
// consults IsSquareAttacked: whether the king starts, passes through, or
// lands on an attacked square is checked once, at apply time, alongside
// every other form of post-move self-check.
func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	if us == White {
		if p.CastlingRights&WhiteKingSideCastle != 0 &&
			p.AllOccupied&(bitutil.SquareBB(int(F1))|bitutil.SquareBB(int(G1))) == 0 {
			ml.Add(NewCastling(E1, G1))
		}
		if p.CastlingRights&WhiteQueenSideCastle != 0 &&
			p.AllOccupied&(bitutil.SquareBB(int(B1))|bitutil.SquareBB(int(C1))|bitutil.SquareBB(int(D1))) == 0 {
			ml.Add(NewCastling(E1, C1))
		}
		return
	}
	if p.CastlingRights&BlackKingSideCastle != 0 &&
		p.AllOccupied&(bitutil.SquareBB(int(F8))|bitutil.SquareBB(int(G8))) == 0 {
		ml.Add(NewCastling(E8, G8))
	}
	if p.CastlingRights&BlackQueenSideCastle != 0 &&
		p.AllOccupied&(bitutil.SquareBB(int(B8))|bitutil.SquareBB(int(C8))|bitutil.SquareBB(int(D8))) == 0 {
		ml.Add(NewCastling(E8, C8))
	}
}

// HasAnyPseudoLegalMoves reports whether the side to move has at least
// one pseudo-legal move, a cheap necessary-but-not-sufficient precheck
// before the more expensive full legality scan in Apply-based callers.
func (p *Position) HasAnyPseudoLegalMoves() bool {
	return p.GeneratePseudoLegalMoves().Len() > 0
}
