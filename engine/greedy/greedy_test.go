package greedy

import (
	"testing"
	"time"

	"fourline/engine"
	"fourline/game"
	"fourline/record"
)

type moveEvent struct {
	move  game.Move
	state engine.State
}

// testSession wires an engine to channels so tests can wait for the
// asynchronous bot reply.
type testSession struct {
	eng   *Engine
	moves chan moveEvent
	ends  chan string
}

func newTestSession(t *testing.T, cfg engine.GameConfig) *testSession {
	t.Helper()
	s := &testSession{
		eng:   New(cfg),
		moves: make(chan moveEvent, 64),
		ends:  make(chan string, 4),
	}
	s.eng.OnMove(func(move game.Move, state engine.State) {
		s.moves <- moveEvent{move, state}
	})
	s.eng.OnGameEnd(func(outcome string) {
		s.ends <- outcome
	})
	if err := s.eng.Connect(); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(s.eng.Close)
	return s
}

func (s *testSession) waitMove(t *testing.T) moveEvent {
	t.Helper()
	select {
	case ev := <-s.moves:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a move")
		return moveEvent{}
	}
}

func (s *testSession) waitEnd(t *testing.T) string {
	t.Helper()
	select {
	case outcome := <-s.ends:
		return outcome
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for game end")
		return ""
	}
}

func TestConnectInitialState(t *testing.T) {
	s := newTestSession(t, engine.GameConfig{PlayerName: "Tester"})

	if got := s.eng.PlayerPiece(); got != game.Red {
		t.Errorf("PlayerPiece() = %s, want Red when the human moves first", got)
	}
	if !s.eng.IsMyTurn() {
		t.Error("IsMyTurn() = false on a fresh session")
	}

	state := s.eng.State()
	if state.MoveNumber != 0 {
		t.Errorf("MoveNumber = %d, want 0", state.MoveNumber)
	}
	if state.ToMove != game.Red {
		t.Errorf("ToMove = %s, want Red", state.ToMove)
	}
	if state.Finished() {
		t.Error("fresh session reports finished")
	}
	if state.LastCol != -1 || state.LastRow != -1 {
		t.Errorf("last move = (%d,%d), want (-1,-1)", state.LastCol, state.LastRow)
	}
}

func TestBotMovesFirst(t *testing.T) {
	s := newTestSession(t, engine.GameConfig{PlayerName: "Tester", BotStarts: true})

	if got := s.eng.PlayerPiece(); got != game.Yellow {
		t.Errorf("PlayerPiece() = %s, want Yellow when the bot moves first", got)
	}

	ev := s.waitMove(t)
	if ev.move.Piece != game.Red {
		t.Errorf("first move piece = %s, want Red", ev.move.Piece)
	}
	if ev.state.MoveNumber != 1 {
		t.Errorf("MoveNumber after bot opening = %d, want 1", ev.state.MoveNumber)
	}
	if !s.eng.IsMyTurn() {
		t.Error("IsMyTurn() = false after the bot's opening move")
	}
}

func TestDropInvalidColumn(t *testing.T) {
	s := newTestSession(t, engine.GameConfig{PlayerName: "Tester"})

	for _, col := range []int{-1, game.Cols, 42} {
		if err := s.eng.Drop(col); err != game.ErrInvalidColumn {
			t.Errorf("Drop(%d): err = %v, want ErrInvalidColumn", col, err)
		}
	}
}

func TestDropOutOfTurn(t *testing.T) {
	s := newTestSession(t, engine.GameConfig{
		PlayerName: "Tester",
		ThinkDelay: 200 * time.Millisecond,
	})

	if err := s.eng.Drop(3); err != nil {
		t.Fatalf("Drop(3): %v", err)
	}
	s.waitMove(t)

	// The bot is still thinking; a second drop must be rejected.
	if err := s.eng.Drop(3); err == nil {
		t.Error("Drop out of turn succeeded")
	} else if err == game.ErrInvalidColumn {
		t.Error("Drop out of turn reported ErrInvalidColumn")
	}
}

func TestPlayerAndBotAlternate(t *testing.T) {
	s := newTestSession(t, engine.GameConfig{PlayerName: "Tester"})

	replay := game.NewBoard()
	for round := 0; round < 4; round++ {
		if err := s.eng.Drop(round); err != nil {
			t.Fatalf("round %d: Drop: %v", round, err)
		}

		mine := s.waitMove(t)
		if mine.move.Piece != game.Red {
			t.Fatalf("round %d: expected red move, got %s", round, mine.move.Piece)
		}
		reply := s.waitMove(t)
		if reply.move.Piece != game.Yellow {
			t.Fatalf("round %d: expected yellow reply, got %s", round, reply.move.Piece)
		}

		// The engine's board must match an independent replay of the
		// reported moves.
		for _, ev := range []moveEvent{mine, reply} {
			replay.Place(ev.move.Row, ev.move.Col, ev.move.Piece)
		}
		if reply.state.Board != replay {
			t.Fatalf("round %d: engine board diverged from reported moves", round)
		}
		if reply.state.LastCol != reply.move.Col || reply.state.LastRow != reply.move.Row {
			t.Fatalf("round %d: last move (%d,%d) does not match reported move (%d,%d)",
				round, reply.state.LastCol, reply.state.LastRow, reply.move.Col, reply.move.Row)
		}
	}
}

func TestUndoRoundTrip(t *testing.T) {
	// A very long think delay keeps the bot out of the way.
	s := newTestSession(t, engine.GameConfig{
		PlayerName: "Tester",
		ThinkDelay: time.Hour,
	})

	before := s.eng.State()
	if err := s.eng.Drop(2); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	s.waitMove(t)

	if err := s.eng.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}

	after := s.eng.State()
	if after.Board != before.Board {
		t.Error("board not restored by undo")
	}
	if after.MoveNumber != 0 {
		t.Errorf("MoveNumber after undo = %d, want 0", after.MoveNumber)
	}
	if after.ToMove != game.Red {
		t.Errorf("ToMove after undo = %s, want Red", after.ToMove)
	}
	if after.LastCol != -1 || after.LastRow != -1 {
		t.Errorf("last move after undo = (%d,%d), want (-1,-1)", after.LastCol, after.LastRow)
	}
	if !s.eng.IsMyTurn() {
		t.Error("IsMyTurn() = false after undoing the only move")
	}
}

func TestUndoOnEmptyHistory(t *testing.T) {
	s := newTestSession(t, engine.GameConfig{PlayerName: "Tester"})
	if err := s.eng.Undo(); err != ErrNothingToUndo {
		t.Errorf("Undo on empty history: err = %v, want ErrNothingToUndo", err)
	}
}

func TestUndoCancelsPendingBotReply(t *testing.T) {
	s := newTestSession(t, engine.GameConfig{
		PlayerName: "Tester",
		ThinkDelay: 100 * time.Millisecond,
	})

	if err := s.eng.Drop(3); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	s.waitMove(t)

	// Take back the move while the bot is still thinking. Its pending
	// reply must not land on the reverted board.
	if err := s.eng.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}

	time.Sleep(250 * time.Millisecond)
	state := s.eng.State()
	if state.MoveNumber != 0 {
		t.Errorf("MoveNumber = %d after undo, want 0 (stale bot reply applied)", state.MoveNumber)
	}
	if state.Board != game.NewBoard() {
		t.Error("board not empty after undo")
	}
}

func TestRestart(t *testing.T) {
	s := newTestSession(t, engine.GameConfig{PlayerName: "Tester"})

	if err := s.eng.Drop(0); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	s.waitMove(t)
	s.waitMove(t)

	s.eng.Restart()

	state := s.eng.State()
	if state.MoveNumber != 0 {
		t.Errorf("MoveNumber after restart = %d, want 0", state.MoveNumber)
	}
	if state.Board != game.NewBoard() {
		t.Error("board not empty after restart")
	}
	if !s.eng.IsMyTurn() {
		t.Error("IsMyTurn() = false after restart with the human moving first")
	}

	// Drain any event the restart may have raced with.
	for len(s.moves) > 0 {
		<-s.moves
	}
}

func TestSuggest(t *testing.T) {
	s := newTestSession(t, engine.GameConfig{PlayerName: "Tester", ThinkDelay: time.Hour})

	col, err := s.eng.Suggest()
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if col < 0 || col >= game.Cols {
		t.Errorf("Suggest() = %d, out of range", col)
	}

	// Suggestion must not change the session.
	state := s.eng.State()
	if state.MoveNumber != 0 || state.Board != game.NewBoard() {
		t.Error("Suggest mutated the session")
	}
}

// TestFullGameAgainstBot plays the suggested move until the game ends, then
// checks the outcome and the written record agree with the final board.
func TestFullGameAgainstBot(t *testing.T) {
	dir := t.TempDir()
	s := newTestSession(t, engine.GameConfig{
		PlayerName: "Tester",
		HistoryDir: dir,
	})

	finished := false
	for round := 0; round < game.Rows*game.Cols && !finished; round++ {
		col, err := s.eng.Suggest()
		if err != nil {
			t.Fatalf("round %d: Suggest: %v", round, err)
		}
		if err := s.eng.Drop(col); err != nil {
			t.Fatalf("round %d: Drop(%d): %v", round, col, err)
		}

		if ev := s.waitMove(t); ev.state.Finished() {
			finished = true
			break
		}
		if ev := s.waitMove(t); ev.state.Finished() {
			finished = true
			break
		}
	}
	if !finished {
		t.Fatal("game did not finish")
	}

	outcome := s.waitEnd(t)
	state := s.eng.State()

	var wantOutcome, wantResult string
	switch {
	case state.Board.HasWon(game.Red):
		wantOutcome, wantResult = "You win!", "R+"
	case state.Board.HasWon(game.Yellow):
		wantOutcome, wantResult = "Bot wins!", "Y+"
	default:
		wantOutcome, wantResult = "Draw game", "0"
	}
	if outcome != wantOutcome {
		t.Errorf("outcome = %q, want %q", outcome, wantOutcome)
	}
	if state.Outcome != wantOutcome {
		t.Errorf("state outcome = %q, want %q", state.Outcome, wantOutcome)
	}

	// Further drops must be rejected.
	if err := s.eng.Drop(0); err != game.ErrAlreadyTerminal {
		t.Errorf("Drop after game end: err = %v, want ErrAlreadyTerminal", err)
	}
	if _, err := s.eng.Suggest(); err != game.ErrAlreadyTerminal {
		t.Errorf("Suggest after game end: err = %v, want ErrAlreadyTerminal", err)
	}

	s.eng.Close()

	games, err := record.ListGames(dir)
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("found %d records, want 1", len(games))
	}
	g := games[0]
	if g.PlayerRed != "Tester" || g.PlayerYellow != "Bot" {
		t.Errorf("record players = %q/%q, want Tester/Bot", g.PlayerRed, g.PlayerYellow)
	}
	if g.Result != wantResult {
		t.Errorf("record result = %q, want %q", g.Result, wantResult)
	}
	if g.MoveCount != state.MoveNumber {
		t.Errorf("record move count = %d, want %d", g.MoveCount, state.MoveNumber)
	}

	board, applied, err := record.ReplayToEnd(g.FilePath)
	if err != nil {
		t.Fatalf("ReplayToEnd: %v", err)
	}
	if applied != state.MoveNumber {
		t.Errorf("replay applied %d moves, want %d", applied, state.MoveNumber)
	}
	if board != state.Board {
		t.Error("replayed board does not match the final session board")
	}
}
