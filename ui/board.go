// Package ui specifies custom controls for tview to assist in playing
// Connect-Four in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"fourline/config"
	"fourline/engine"
	"fourline/game"
)

// Style slice indexes built in SetConfig.
const (
	styleSlot = iota
	styleRed
	styleYellow
	styleCursorFG
	styleCursorBG
	styleLastBG
	styleCoord
	styleBoard
)

// BoardUI renders the board and owns the in-game controls: cursor movement,
// dropping, undo, restart and the move suggestion.
type BoardUI struct {
	Box         *tview.Box
	hint        *tview.TextView
	cfg         *config.Config
	app         *tview.Application
	eng         engine.GameEngine
	state       engine.State
	finished    bool
	selCol      int
	warning     string
	suggestion  string
	styles      []tcell.Color
	infoPanel   *GameInfoPanel
	moveHistory []game.Move
	playerName  string
	focusMode   bool
}

// SetPlayerName sets the name shown for the human player in the info panel.
func (b *BoardUI) SetPlayerName(name string) {
	if name == "" {
		name = "Player"
	}
	b.playerName = name
	if b.infoPanel != nil {
		piece := game.Red
		if b.eng != nil {
			piece = b.eng.PlayerPiece()
		}
		b.infoPanel.SetPlayers(name, piece)
	}
}

// NewBoardUI creates the board widget.
func NewBoardUI(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	b := &BoardUI{
		Box:        tview.NewBox(),
		hint:       hint,
		app:        app,
		selCol:     game.Cols / 2,
		playerName: "Player",
	}
	b.SetConfig(c)
	b.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		b.draw(screen, x, y)
		return x, y, game.Cols*2 + 4, game.Rows + 3
	})
	return b
}

func (b *BoardUI) SetConfig(c *config.Config) {
	b.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.SlotColor),      // styleSlot
		tcell.PaletteColor(c.Theme.Colors.RedColor),       // styleRed
		tcell.PaletteColor(c.Theme.Colors.YellowColor),    // styleYellow
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),  // styleCursorFG
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),  // styleCursorBG
		tcell.PaletteColor(c.Theme.Colors.LastPlayedBG),   // styleLastBG
		tcell.PaletteColor(c.Theme.Colors.CoordinateText), // styleCoord
		tcell.PaletteColor(c.Theme.Colors.BoardColor),     // styleBoard
	}
	b.cfg = c
}

// draw renders the hover row, the grid, and the column coordinates.
// Board row 0 is the bottom, so rows are flipped for the screen.
func (b *BoardUI) draw(screen tcell.Screen, x, y int) {
	offsetX := x + 2
	boardBG := tcell.ColorDefault
	if b.cfg.Theme.DrawBoardBackground {
		boardBG = b.styles[styleBoard]
	}

	// Hover row: preview disc above the cursor column while it's the
	// player's turn.
	hoverStyle := tcell.StyleDefault
	for c := 0; c < game.Cols; c++ {
		screen.SetContent(offsetX+c*2, y, ' ', nil, hoverStyle)
		screen.SetContent(offsetX+c*2+1, y, ' ', nil, hoverStyle)
	}
	if !b.finished && b.eng != nil && b.eng.IsMyTurn() {
		discStyle := tcell.StyleDefault.Foreground(b.pieceColor(b.eng.PlayerPiece()))
		screen.SetContent(offsetX+b.selCol*2, y, b.cfg.Theme.Symbols.Disc, nil, discStyle)
	}

	for r := 0; r < game.Rows; r++ {
		screenY := y + 1 + (game.Rows - 1 - r)
		for c := 0; c < game.Cols; c++ {
			ch := b.cfg.Theme.Symbols.Slot
			fg := b.styles[styleSlot]
			if cell := b.state.Board[r][c]; cell != game.Empty {
				ch = b.cfg.Theme.Symbols.Disc
				fg = b.pieceColor(cell)
			}

			bg := boardBG
			if r == b.state.LastRow && c == b.state.LastCol {
				bg = b.styles[styleLastBG]
			}

			style := tcell.StyleDefault.Foreground(fg).Background(bg)
			screen.SetContent(offsetX+c*2, screenY, ch, nil, style)
			screen.SetContent(offsetX+c*2+1, screenY, ' ', nil, style)
		}
	}

	b.drawCoordinates(screen, offsetX, y+1+game.Rows)
}

// drawCoordinates writes the 1-7 column labels, highlighting the cursor.
func (b *BoardUI) drawCoordinates(screen tcell.Screen, offsetX, y int) {
	style := tcell.StyleDefault.Foreground(b.styles[styleCoord])
	highlight := tcell.StyleDefault.
		Foreground(b.styles[styleCursorFG]).
		Background(b.styles[styleCursorBG])

	for c := 0; c < game.Cols; c++ {
		s := style
		if c == b.selCol && b.cfg.Theme.DrawCursorColumn && !b.finished {
			s = highlight
		}
		screen.SetContent(offsetX+c*2, y, rune('1'+c), nil, s)
		screen.SetContent(offsetX+c*2+1, y, ' ', nil, s)
	}
}

func (b *BoardUI) pieceColor(p game.Piece) tcell.Color {
	if p == game.Yellow {
		return b.styles[styleYellow]
	}
	return b.styles[styleRed]
}

// ConnectEngine connects the board to a game engine and starts the session.
func (b *BoardUI) ConnectEngine(e engine.GameEngine) error {
	b.finished = false
	b.eng = e
	b.moveHistory = nil
	b.warning = ""
	b.suggestion = ""

	e.OnMove(func(move game.Move, state engine.State) {
		b.moveHistory = append(b.moveHistory, move)
		b.state = state
		b.refreshHint()
		// Spawn goroutine to avoid deadlock when called from main thread
		go func() {
			b.app.QueueUpdateDraw(func() {})
		}()
	})

	e.OnGameEnd(func(outcome string) {
		b.finished = true
		b.refreshHint()
		go func() {
			b.app.QueueUpdateDraw(func() {})
		}()
	})

	if err := e.Connect(); err != nil {
		return err
	}
	if b.infoPanel != nil {
		b.infoPanel.SetPlayers(b.playerName, e.PlayerPiece())
	}
	b.state = e.State()
	b.refreshHint()
	return nil
}

// MoveCursor shifts the column cursor left or right.
func (b *BoardUI) MoveCursor(d int) {
	next := b.selCol + d
	if next < 0 || next >= game.Cols {
		return
	}
	b.selCol = next
	b.refreshHint()
}

// Drop plays the player's piece in the cursor column.
func (b *BoardUI) Drop() {
	if b.eng == nil {
		return
	}
	b.warning = ""
	b.suggestion = ""
	if err := b.eng.Drop(b.selCol); err != nil {
		switch err {
		case game.ErrInvalidColumn:
			b.warning = fmt.Sprintf("Column %d is full.", b.selCol+1)
		case game.ErrAlreadyTerminal:
			b.warning = "Game finished. Restart or undo."
		default:
			b.warning = "Bot is thinking..."
		}
	}
	b.refreshHint()
}

// Undo reverts the most recent move. A finished game is reopened.
func (b *BoardUI) Undo() {
	if b.eng == nil {
		return
	}
	b.warning = ""
	b.suggestion = ""
	if err := b.eng.Undo(); err != nil {
		b.warning = "Nothing to undo."
	} else {
		b.finished = false
		if n := len(b.moveHistory); n > 0 {
			b.moveHistory = b.moveHistory[:n-1]
		}
	}
	b.state = b.eng.State()
	b.refreshHint()
}

// Restart clears the session back to an empty board.
func (b *BoardUI) Restart() {
	if b.eng == nil {
		return
	}
	b.eng.Restart()
	b.finished = false
	b.moveHistory = nil
	b.warning = ""
	b.suggestion = ""
	b.state = b.eng.State()
	b.refreshHint()
}

// Suggest asks the engine for the player's best immediate drop.
func (b *BoardUI) Suggest() {
	if b.eng == nil {
		return
	}
	b.warning = ""
	col, err := b.eng.Suggest()
	switch err {
	case nil:
		b.suggestion = fmt.Sprintf("Drop in column %d.", col+1)
	case game.ErrAlreadyTerminal:
		b.warning = "Game over. Restart to request a move."
	default:
		b.warning = "No valid moves."
	}
	b.refreshHint()
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (b *BoardUI) ToggleFocusMode() bool {
	b.focusMode = !b.focusMode
	b.refreshHint()
	return b.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (b *BoardUI) SetFocusMode(enabled bool) {
	b.focusMode = enabled
	b.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (b *BoardUI) IsFocusMode() bool {
	return b.focusMode
}

// IsFinished returns true if the game is over.
func (b *BoardUI) IsFinished() bool {
	return b.finished
}

// Close shuts the session down.
func (b *BoardUI) Close() {
	if b.eng == nil {
		return
	}
	b.eng.Close()
}

func (b *BoardUI) refreshHint() {
	if b.infoPanel != nil {
		b.infoPanel.SetState(b.state)
		b.infoPanel.SetSuggestion(b.suggestion)
		b.infoPanel.SetWarning(b.warning)
	}

	// Focus mode shows minimal hint
	if b.focusMode {
		b.hint.SetText("  f/q back to full view")
		return
	}

	var statusLine, turnLine, controlsLine string

	if b.finished {
		statusLine = "───────── Game Complete ─────────\n\n"
		turnLine = fmt.Sprintf("  Result: %s\n", b.state.Outcome)
		controlsLine = "\n  ⏎/r · play again   u · undo   q · menu"
	} else {
		if b.eng != nil && b.eng.IsMyTurn() {
			turnLine = fmt.Sprintf("  %c Your move (%s)\n", b.cfg.Theme.Symbols.Disc, b.eng.PlayerPiece())
		} else {
			turnLine = "  ◌ Bot is thinking...\n"
		}

		controlsLine = `
  h l/←→ aim   ⏎ drop   u undo
  r restart   s suggest   f focus   q quit`
	}

	b.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}
