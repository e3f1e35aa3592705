// Package game implements the Connect-Four rules core: board state, win
// detection, the positional heuristic, and greedy move selection. Everything
// here is pure computation on plain values; turn sequencing, undo history and
// rendering belong to the engine and ui packages.
package game

// Board dimensions. Standard Connect-Four.
const (
	Rows = 6
	Cols = 7

	// WindowLength is the run length that wins, and the width of every
	// window the scorer looks at.
	WindowLength = 4
)

// Piece is the content of a single board cell.
type Piece uint8

const (
	Empty Piece = iota
	Red         // first player (the human in the app shell)
	Yellow      // second player (the bot)
)

// Opponent returns the other non-empty piece. Opponent of Empty is Empty.
func (p Piece) Opponent() Piece {
	switch p {
	case Red:
		return Yellow
	case Yellow:
		return Red
	}
	return Empty
}

func (p Piece) String() string {
	switch p {
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	}
	return "Empty"
}

// Board is the 6x7 grid. Row 0 is the bottom row; gravity fills upward.
// Board is a value type on purpose: assignment makes the deep, independent
// copy that move simulation relies on.
type Board [Rows][Cols]Piece

// Move records one drop for the undo stack.
type Move struct {
	Col   int
	Row   int
	Piece Piece
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// IsValidColumn reports whether a piece can still be dropped in col.
// Columns outside [0, Cols) are never valid.
func (b *Board) IsValidColumn(col int) bool {
	if col < 0 || col >= Cols {
		return false
	}
	return b[Rows-1][col] == Empty
}

// NextOpenRow returns the lowest empty row in col, scanning bottom-up,
// or -1 if the column is full.
func (b *Board) NextOpenRow(col int) int {
	for r := 0; r < Rows; r++ {
		if b[r][col] == Empty {
			return r
		}
	}
	return -1
}

// Place writes piece at (row, col). No validation: callers use a row/column
// previously obtained from IsValidColumn and NextOpenRow.
func (b *Board) Place(row, col int, piece Piece) {
	b[row][col] = piece
}

// Clear empties the cell at (row, col). Used by undo.
func (b *Board) Clear(row, col int) {
	b[row][col] = Empty
}

// ValidColumns returns every droppable column in ascending order. The order
// matters: it is the tie-break order of PickBestMove.
func (b *Board) ValidColumns() []int {
	var cols []int
	for c := 0; c < Cols; c++ {
		if b.IsValidColumn(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// IsFull reports whether no droppable column remains.
func (b *Board) IsFull() bool {
	for c := 0; c < Cols; c++ {
		if b[Rows-1][c] == Empty {
			return false
		}
	}
	return true
}

// IsTerminal reports whether either side has won or the board is full.
func (b *Board) IsTerminal() bool {
	return b.HasWon(Red) || b.HasWon(Yellow) || b.IsFull()
}
