package game

// Heuristic weights. These are contract values: the bot's move choices (and
// the suggestion feature) are defined by this exact table, so changing them
// changes which column wins a tie.
const (
	scoreFour       = 100
	scoreThree      = 5
	scoreTwo        = 2
	scoreOppThree   = -4
	centerCellBonus = 3
)

// scoreWindow rates one 4-cell window from piece's perspective.
func scoreWindow(window [WindowLength]Piece, piece Piece) int {
	opp := piece.Opponent()

	var mine, theirs, empty int
	for _, cell := range window {
		switch cell {
		case piece:
			mine++
		case opp:
			theirs++
		default:
			empty++
		}
	}

	score := 0
	switch {
	case mine == 4:
		score += scoreFour
	case mine == 3 && empty == 1:
		score += scoreThree
	case mine == 2 && empty == 2:
		score += scoreTwo
	}
	if theirs == 3 && empty == 1 {
		score += scoreOppThree
	}
	return score
}

// ScorePosition is the static evaluation of a single board state from
// piece's perspective: a center-column bonus plus the window score of every
// horizontal, vertical and diagonal 4-window. Windows overlap and each is
// scored once. One ply only; no opponent reply is considered.
func ScorePosition(b *Board, piece Piece) int {
	score := 0

	// Center column preference
	center := Cols / 2
	for r := 0; r < Rows; r++ {
		if b[r][center] == piece {
			score += centerCellBonus
		}
	}

	// Horizontal windows
	for r := 0; r < Rows; r++ {
		for c := 0; c <= Cols-WindowLength; c++ {
			score += scoreWindow([WindowLength]Piece{b[r][c], b[r][c+1], b[r][c+2], b[r][c+3]}, piece)
		}
	}

	// Vertical windows
	for c := 0; c < Cols; c++ {
		for r := 0; r <= Rows-WindowLength; r++ {
			score += scoreWindow([WindowLength]Piece{b[r][c], b[r+1][c], b[r+2][c], b[r+3][c]}, piece)
		}
	}

	// Up-right diagonals
	for r := 0; r <= Rows-WindowLength; r++ {
		for c := 0; c <= Cols-WindowLength; c++ {
			score += scoreWindow([WindowLength]Piece{b[r][c], b[r+1][c+1], b[r+2][c+2], b[r+3][c+3]}, piece)
		}
	}

	// Down-right diagonals
	for r := 0; r <= Rows-WindowLength; r++ {
		for c := 0; c <= Cols-WindowLength; c++ {
			score += scoreWindow([WindowLength]Piece{b[r+3][c], b[r+2][c+1], b[r+1][c+2], b[r][c+3]}, piece)
		}
	}

	return score
}
