package game

// PickBestMove simulates dropping piece in every valid column, scores each
// resulting position with ScorePosition, and returns the best column and its
// score. Candidates are tried in ascending column order and only a strictly
// better score replaces the current choice, so ties resolve to the left-most
// column. That tie-break is part of the bot's contract: it makes play
// deterministic against the fixed heuristic.
//
// The evaluation is one ply deep by design. It does not consider the
// opponent's reply, so the bot will sometimes miss a forced block; this
// mirrors the behavior the program has always had rather than fixing it.
//
// Returns (-1, 0) when no column is droppable.
func PickBestMove(b *Board, piece Piece) (int, int) {
	valid := b.ValidColumns()
	if len(valid) == 0 {
		return -1, 0
	}

	bestCol := valid[0]
	bestScore := 0
	first := true
	for _, col := range valid {
		row := b.NextOpenRow(col)
		sim := *b // value copy; the real board is never touched
		sim.Place(row, col, piece)
		score := ScorePosition(&sim, piece)
		if first || score > bestScore {
			bestScore = score
			bestCol = col
			first = false
		}
	}
	return bestCol, bestScore
}

// RecommendMove is the hint entry point: the best immediate drop for piece.
// Fails with ErrAlreadyTerminal on a finished board and ErrNoValidMoves if
// no column is droppable (defensive; a terminal check already implies it).
func RecommendMove(b *Board, piece Piece) (int, error) {
	if b.IsTerminal() {
		return -1, ErrAlreadyTerminal
	}
	col, _ := PickBestMove(b, piece)
	if col < 0 {
		return -1, ErrNoValidMoves
	}
	return col, nil
}
