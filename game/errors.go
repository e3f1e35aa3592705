package game

import "errors"

// Errors surfaced by the core. All are recoverable by the caller; the core
// never logs and never retries.
var (
	// ErrInvalidColumn means the requested column is out of range or full.
	ErrInvalidColumn = errors.New("column is full or out of range")

	// ErrAlreadyTerminal means a move or suggestion was requested on a
	// finished board.
	ErrAlreadyTerminal = errors.New("board is already in a finished state")

	// ErrNoValidMoves means the selector was invoked with no droppable
	// columns left.
	ErrNoValidMoves = errors.New("no valid moves")
)
