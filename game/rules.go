package game

// HasWon reports whether piece has four in a row anywhere on the board.
// Each direction is scanned with the 4-window anchored fully in bounds;
// the scan returns on the first hit.
func (b *Board) HasWon(piece Piece) bool {
	// Horizontal
	for c := 0; c <= Cols-WindowLength; c++ {
		for r := 0; r < Rows; r++ {
			if b[r][c] == piece && b[r][c+1] == piece && b[r][c+2] == piece && b[r][c+3] == piece {
				return true
			}
		}
	}

	// Vertical
	for c := 0; c < Cols; c++ {
		for r := 0; r <= Rows-WindowLength; r++ {
			if b[r][c] == piece && b[r+1][c] == piece && b[r+2][c] == piece && b[r+3][c] == piece {
				return true
			}
		}
	}

	// Up-right diagonal (rising with column)
	for c := 0; c <= Cols-WindowLength; c++ {
		for r := 0; r <= Rows-WindowLength; r++ {
			if b[r][c] == piece && b[r+1][c+1] == piece && b[r+2][c+2] == piece && b[r+3][c+3] == piece {
				return true
			}
		}
	}

	// Down-right diagonal (falling with column)
	for c := 0; c <= Cols-WindowLength; c++ {
		for r := WindowLength - 1; r < Rows; r++ {
			if b[r][c] == piece && b[r-1][c+1] == piece && b[r-2][c+2] == piece && b[r-3][c+3] == piece {
				return true
			}
		}
	}

	return false
}
