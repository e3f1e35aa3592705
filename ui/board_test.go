package ui

import (
	"strings"
	"testing"

	"github.com/rivo/tview"

	"fourline/config"
	"fourline/game"
)

func newTestBoard() *BoardUI {
	cfg := config.DefaultConfig
	hint := tview.NewTextView()
	return NewBoardUI(tview.NewApplication(), &cfg, hint)
}

func TestFocusMode(t *testing.T) {
	b := newTestBoard()

	if b.IsFocusMode() {
		t.Fatal("focus mode should be off initially")
	}
	if got := b.ToggleFocusMode(); !got || !b.IsFocusMode() {
		t.Error("first toggle should enable focus mode")
	}
	if got := b.ToggleFocusMode(); got || b.IsFocusMode() {
		t.Error("second toggle should disable focus mode")
	}

	b.SetFocusMode(true)
	if !b.IsFocusMode() {
		t.Error("SetFocusMode(true) should enable focus mode")
	}
	if !strings.Contains(b.hint.GetText(true), "full view") {
		t.Error("focus mode hint should say how to get back to the full view")
	}
	b.SetFocusMode(false)
	if b.IsFocusMode() {
		t.Error("SetFocusMode(false) should disable focus mode")
	}
}

func TestIsFinished(t *testing.T) {
	b := newTestBoard()

	if b.IsFinished() {
		t.Fatal("a fresh board should not be finished")
	}

	b.finished = true
	b.state.Outcome = "Red wins"
	b.refreshHint()
	if !b.IsFinished() {
		t.Error("IsFinished() should report a finished game")
	}
	if !strings.Contains(b.hint.GetText(true), "play again") {
		t.Error("finished hint should offer to play again")
	}
}

func TestMoveCursorBounds(t *testing.T) {
	b := newTestBoard()

	if b.selCol != game.Cols/2 {
		t.Fatalf("cursor starts at %d, want center column %d", b.selCol, game.Cols/2)
	}

	for i := 0; i < game.Cols; i++ {
		b.MoveCursor(-1)
	}
	if b.selCol != 0 {
		t.Errorf("cursor should stop at column 0, got %d", b.selCol)
	}

	for i := 0; i < 2*game.Cols; i++ {
		b.MoveCursor(1)
	}
	if b.selCol != game.Cols-1 {
		t.Errorf("cursor should stop at column %d, got %d", game.Cols-1, b.selCol)
	}
}
