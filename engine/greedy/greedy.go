// Package greedy implements the built-in opponent: a one-ply greedy engine
// driven by the heuristic in the game package.
package greedy

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"fourline/engine"
	"fourline/game"
	"fourline/record"
)

var debugLog *log.Logger

func init() {
	var out io.Writer = io.Discard
	if os.Getenv("FOURLINE_DEBUG") != "" {
		if f, err := os.Create("/tmp/fourline-debug.log"); err == nil {
			out = f
		}
	}
	debugLog = log.New(out, "", log.Ltime|log.Lmicroseconds)
}

// ErrNothingToUndo is returned by Undo when the move history is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// Engine is a game session against the greedy bot. All state is guarded by
// one mutex; callbacks are invoked outside the lock with copied state.
type Engine struct {
	cfg engine.GameConfig

	mu          sync.Mutex
	board       game.Board
	history     []game.Move
	toMove      game.Piece
	phase       string
	outcome     string
	lastCol     int
	lastRow     int
	gen         int // bumped whenever undo/restart overtakes a pending bot reply
	playerPiece game.Piece
	botPiece    game.Piece
	rec         *record.GameRecord

	moveCallback func(game.Move, engine.State)
	endCallback  func(string)
}

// New creates a session with the given configuration.
func New(cfg engine.GameConfig) *Engine {
	e := &Engine{cfg: cfg}
	// The first mover always plays Red.
	if cfg.BotStarts {
		e.botPiece, e.playerPiece = game.Red, game.Yellow
	} else {
		e.playerPiece, e.botPiece = game.Red, game.Yellow
	}
	return e
}

// Connect initializes the session and, if the bot moves first, arms its reply.
func (e *Engine) Connect() error {
	e.mu.Lock()
	e.resetLocked()
	e.startRecordLocked()
	botTurn := e.toMove == e.botPiece
	gen := e.gen
	e.mu.Unlock()

	if botTurn {
		go e.botReply(gen)
	}
	return nil
}

// resetLocked puts the session back to an empty board with Red to move.
func (e *Engine) resetLocked() {
	e.board = game.NewBoard()
	e.history = nil
	e.toMove = game.Red
	e.phase = "playing"
	e.outcome = ""
	e.lastCol = -1
	e.lastRow = -1
	e.gen++
}

// startRecordLocked finalizes any open record and starts a new one.
func (e *Engine) startRecordLocked() {
	if e.rec != nil {
		e.rec.Close()
		e.rec = nil
	}
	if e.cfg.HistoryDir == "" {
		return
	}
	redName, yellowName := e.cfg.PlayerName, "Bot"
	if e.cfg.BotStarts {
		redName, yellowName = "Bot", e.cfg.PlayerName
	}
	rec, err := record.NewGameRecord(e.cfg.HistoryDir, redName, yellowName)
	if err != nil {
		debugLog.Printf("record: %v", err)
		return
	}
	e.rec = rec
}

// State returns a snapshot of the current session state.
func (e *Engine) State() engine.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *Engine) stateLocked() engine.State {
	return engine.State{
		Board:      e.board, // value copy
		MoveNumber: len(e.history),
		ToMove:     e.toMove,
		Phase:      e.phase,
		Outcome:    e.outcome,
		LastCol:    e.lastCol,
		LastRow:    e.lastRow,
	}
}

// Drop plays the human's piece in the given column.
func (e *Engine) Drop(col int) error {
	e.mu.Lock()

	if e.phase == "finished" {
		e.mu.Unlock()
		return game.ErrAlreadyTerminal
	}
	if e.toMove != e.playerPiece {
		e.mu.Unlock()
		return fmt.Errorf("not your turn")
	}
	if !e.board.IsValidColumn(col) {
		e.mu.Unlock()
		return game.ErrInvalidColumn
	}

	move := e.applyMoveLocked(col, e.playerPiece)
	state := e.stateLocked()
	botTurn := e.phase == "playing" && e.toMove == e.botPiece
	gen := e.gen
	e.mu.Unlock()

	e.notify(move, state)
	if botTurn {
		go e.botReply(gen)
	}
	return nil
}

// applyMoveLocked drops piece in col, records it, and settles the turn:
// win, draw, or hand over to the other side.
func (e *Engine) applyMoveLocked(col int, piece game.Piece) game.Move {
	row := e.board.NextOpenRow(col)
	e.board.Place(row, col, piece)
	move := game.Move{Col: col, Row: row, Piece: piece}
	e.history = append(e.history, move)
	e.lastCol, e.lastRow = col, row
	if e.rec != nil {
		if err := e.rec.AddMove(col, piece); err != nil {
			debugLog.Printf("record: %v", err)
		}
	}

	switch {
	case e.board.HasWon(piece):
		e.phase = "finished"
		if piece == e.playerPiece {
			e.outcome = "You win!"
		} else {
			e.outcome = "Bot wins!"
		}
		e.setResultLocked(fmt.Sprintf("%s wins", piece))
	case e.board.IsFull():
		e.phase = "finished"
		e.outcome = "Draw game"
		e.setResultLocked("Draw")
	default:
		e.toMove = piece.Opponent()
	}
	return move
}

func (e *Engine) setResultLocked(result string) {
	if e.rec != nil {
		if err := e.rec.SetResult(result); err != nil {
			debugLog.Printf("record: %v", err)
		}
	}
}

// botReply computes and reveals the bot's move after the think delay.
// Undo and restart bump gen, which invalidates a pending reply.
func (e *Engine) botReply(gen int) {
	if e.cfg.ThinkDelay > 0 {
		time.Sleep(e.cfg.ThinkDelay)
	}

	e.mu.Lock()
	if e.gen != gen || e.phase != "playing" || e.toMove != e.botPiece {
		debugLog.Printf("botReply: stale (gen %d vs %d)", gen, e.gen)
		e.mu.Unlock()
		return
	}

	col, score := game.PickBestMove(&e.board, e.botPiece)
	if col < 0 {
		// No droppable column left; the full-board check in applyMoveLocked
		// normally catches this first.
		e.phase = "finished"
		e.outcome = "Draw game"
		e.setResultLocked("Draw")
		state := e.stateLocked()
		e.mu.Unlock()
		e.notifyEnd(state.Outcome)
		return
	}
	debugLog.Printf("botReply: col %d score %d", col, score)

	move := e.applyMoveLocked(col, e.botPiece)
	state := e.stateLocked()
	e.mu.Unlock()

	e.notify(move, state)
}

// notify fires the move callback, and the end callback if that move ended
// the game. Always called without the lock held.
func (e *Engine) notify(move game.Move, state engine.State) {
	if e.moveCallback != nil {
		e.moveCallback(move, state)
	}
	if state.Finished() {
		e.notifyEnd(state.Outcome)
	}
}

func (e *Engine) notifyEnd(outcome string) {
	if e.endCallback != nil {
		e.endCallback(outcome)
	}
}

// Undo reverts the most recent move and returns the turn to whichever side
// made it. A finished game is reopened. If the undone move was the bot's
// last answer, the bot is re-armed to reply again.
func (e *Engine) Undo() error {
	e.mu.Lock()

	if len(e.history) == 0 {
		e.mu.Unlock()
		return ErrNothingToUndo
	}

	move := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	e.board.Clear(move.Row, move.Col)
	e.phase = "playing"
	e.outcome = ""
	e.toMove = move.Piece
	if n := len(e.history); n > 0 {
		prev := e.history[n-1]
		e.lastCol, e.lastRow = prev.Col, prev.Row
	} else {
		e.lastCol, e.lastRow = -1, -1
	}
	e.gen++
	if e.rec != nil {
		if err := e.rec.UndoMoves(1); err != nil {
			debugLog.Printf("record: %v", err)
		}
		if err := e.rec.SetResult("?"); err != nil {
			debugLog.Printf("record: %v", err)
		}
	}

	botTurn := e.toMove == e.botPiece
	gen := e.gen
	e.mu.Unlock()

	if botTurn {
		go e.botReply(gen)
	}
	return nil
}

// Suggest returns the recommended column for the human's next drop.
func (e *Engine) Suggest() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase == "finished" {
		return -1, game.ErrAlreadyTerminal
	}
	return game.RecommendMove(&e.board, e.playerPiece)
}

// Restart clears the session and starts a fresh record.
func (e *Engine) Restart() {
	e.mu.Lock()
	e.resetLocked()
	e.startRecordLocked()
	botTurn := e.toMove == e.botPiece
	gen := e.gen
	e.mu.Unlock()

	if botTurn {
		go e.botReply(gen)
	}
}

// IsMyTurn returns true if it's the human player's turn.
func (e *Engine) IsMyTurn() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.toMove == e.playerPiece && e.phase == "playing"
}

// PlayerPiece returns the piece the human plays.
func (e *Engine) PlayerPiece() game.Piece {
	return e.playerPiece
}

// OnMove registers a callback for when either side completes a move.
func (e *Engine) OnMove(callback func(game.Move, engine.State)) {
	e.moveCallback = callback
}

// OnGameEnd registers a callback for when the game ends.
func (e *Engine) OnGameEnd(callback func(string)) {
	e.endCallback = callback
}

// Close finalizes the game record.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.gen++
	if e.rec != nil {
		e.rec.Close()
		e.rec = nil
	}
}
