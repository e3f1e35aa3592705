package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"fourline/config"
)

func keyEvent(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func newTestMenu(onPlay, onQuit func()) (*MainMenu, *config.Config) {
	cfg := config.DefaultConfig
	if onPlay == nil {
		onPlay = func() {}
	}
	if onQuit == nil {
		onQuit = func() {}
	}
	noop := func() {}
	return NewMainMenu(&cfg, onPlay, noop, noop, noop, onQuit), &cfg
}

func TestMenuGettersFollowInput(t *testing.T) {
	m, cfg := newTestMenu(nil, nil)

	// Name field has focus first; typed runes append to the default name.
	m.handleInput(runeEvent('X'))
	if got := m.PlayerName(); got != "PlayerX" {
		t.Errorf("PlayerName() = %q, want %q", got, "PlayerX")
	}
	if cfg.Game.PlayerName != "PlayerX" {
		t.Errorf("config name = %q, want %q", cfg.Game.PlayerName, "PlayerX")
	}

	// Down to the first-move row, Right selects the bot.
	m.handleInput(keyEvent(tcell.KeyDown))
	if m.BotStarts() {
		t.Fatal("BotStarts() should default to false")
	}
	m.handleInput(keyEvent(tcell.KeyRight))
	if !m.BotStarts() {
		t.Error("BotStarts() should be true after selecting Bot")
	}
	if !cfg.Game.BotStarts {
		t.Error("config BotStarts should follow the radio selection")
	}

	// Down to the delay row, Right bumps the default 2s to 3s.
	m.handleInput(keyEvent(tcell.KeyDown))
	if got := m.DelaySeconds(); got != 2 {
		t.Fatalf("DelaySeconds() = %d, want 2 before adjusting", got)
	}
	m.handleInput(keyEvent(tcell.KeyRight))
	if got := m.DelaySeconds(); got != 3 {
		t.Errorf("DelaySeconds() = %d, want 3", got)
	}
	if cfg.Game.BotDelayMs != 3000 {
		t.Errorf("config BotDelayMs = %d, want 3000", cfg.Game.BotDelayMs)
	}
}

func TestMenuEnterJumpsToPlay(t *testing.T) {
	played := false
	m, _ := newTestMenu(func() { played = true }, nil)

	// Enter on the name row jumps to the Play button without firing it.
	m.handleInput(keyEvent(tcell.KeyEnter))
	if played {
		t.Fatal("Play fired before the button had focus")
	}
	if m.focusIdx != focusButtons || m.buttonIdx != 0 {
		t.Fatalf("focus = (%d,%d), want the Play button", m.focusIdx, m.buttonIdx)
	}

	m.handleInput(keyEvent(tcell.KeyEnter))
	if !played {
		t.Error("Enter on the Play button should fire onPlay")
	}
}

func TestMenuQuitShortcut(t *testing.T) {
	quit := false
	m, _ := newTestMenu(nil, func() { quit = true })

	// While the name field has focus, q types instead of quitting.
	m.handleInput(runeEvent('q'))
	if quit {
		t.Fatal("q should type into the name field, not quit")
	}
	if got := m.PlayerName(); got != "Playerq" {
		t.Errorf("PlayerName() = %q, want %q", got, "Playerq")
	}

	// From any other row, q quits.
	m.handleInput(keyEvent(tcell.KeyDown))
	m.handleInput(runeEvent('q'))
	if !quit {
		t.Error("q outside the name field should fire onQuit")
	}
}

func TestButtonShortcutHints(t *testing.T) {
	m, _ := newTestMenu(nil, nil)

	play := m.buttons[0]
	quit := m.buttons[len(m.buttons)-1]

	if !strings.Contains(play.fullLabel(), "⏎") {
		t.Errorf("Play label %q should show the ⏎ hint", play.fullLabel())
	}
	if !strings.Contains(quit.fullLabel(), "q") {
		t.Errorf("Quit label %q should show the q hint", quit.fullLabel())
	}

	// The hint widens the button.
	bare := NewMenuButton("Play", true, nil)
	if play.Width() <= bare.Width() {
		t.Errorf("hinted width %d should exceed bare width %d", play.Width(), bare.Width())
	}
}
