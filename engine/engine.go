// Package engine defines the interface between the UI and a game session.
package engine

import (
	"time"

	"fourline/game"
)

// State is a snapshot of a session handed to the UI. It is always a copy:
// Board is a value type, so mutating a State never touches the live session.
type State struct {
	Board      game.Board
	MoveNumber int
	ToMove     game.Piece
	Phase      string // "playing", "finished"
	Outcome    string // set once Phase is "finished"
	LastCol    int    // -1 before the first move
	LastRow    int
}

// Finished returns true if the game is over.
func (s *State) Finished() bool {
	return s.Phase == "finished"
}

// GameEngine defines the interface for playing Connect-Four against an
// opponent implementation.
type GameEngine interface {
	// Connect initializes the session and starts the first turn.
	Connect() error

	// State returns a snapshot of the current session state.
	State() State

	// Drop plays the human's piece in the given column.
	// Returns an error if the move is illegal or it is not the human's turn.
	Drop(col int) error

	// Undo reverts the most recent move (one ply) and hands the turn back
	// to whichever side made it. Undoing a finished game reopens it.
	Undo() error

	// Suggest returns the recommended column for the human's next drop.
	Suggest() (int, error)

	// Restart clears the session back to an empty board.
	Restart()

	// IsMyTurn returns true if it's the human player's turn.
	IsMyTurn() bool

	// PlayerPiece returns the piece the human plays.
	PlayerPiece() game.Piece

	// OnMove registers a callback for when either side completes a move.
	// The state is passed directly to avoid lock contention.
	OnMove(func(move game.Move, state State))

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(outcome string))

	// Close shuts the session down and finalizes its record.
	Close()
}

// GameConfig holds configuration for starting a new session.
type GameConfig struct {
	PlayerName string        // shown in the panel and written to records
	BotStarts  bool          // bot takes the first move
	ThinkDelay time.Duration // artificial pause before the bot's reply
	HistoryDir string        // where finished games are recorded; "" disables
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		PlayerName: "Player",
		BotStarts:  false,
		ThinkDelay: 2 * time.Second,
	}
}
