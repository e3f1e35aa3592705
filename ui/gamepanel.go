package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"fourline/engine"
	"fourline/game"
)

// GameInfoPanel displays session information and the move list alongside
// the board.
type GameInfoPanel struct {
	box         *tview.TextView
	state       engine.State
	playerName  string
	playerPiece game.Piece
	suggestion  string
	warning     string
	moveHistory *[]game.Move
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:         tview.NewTextView(),
		playerName:  "Player",
		playerPiece: game.Red,
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetPlayers sets the human player's name and piece for display.
func (p *GameInfoPanel) SetPlayers(name string, piece game.Piece) {
	p.playerName = name
	p.playerPiece = piece
	p.refresh()
}

// SetState updates the panel with the current session state.
func (p *GameInfoPanel) SetState(state engine.State) {
	p.state = state
	p.refresh()
}

// SetSuggestion sets the recommended-move line (empty hides it).
func (p *GameInfoPanel) SetSuggestion(text string) {
	p.suggestion = text
	p.refresh()
}

// SetWarning sets the warning line (empty hides it).
func (p *GameInfoPanel) SetWarning(text string) {
	p.warning = text
	p.refresh()
}

// SetMoveHistory sets a pointer to the move history slice.
func (p *GameInfoPanel) SetMoveHistory(history *[]game.Move) {
	p.moveHistory = history
}

// pieceTag returns the color-tagged single-letter label for a piece.
func pieceTag(piece game.Piece) string {
	if piece == game.Yellow {
		return "[yellow]Y[-]"
	}
	return "[red]R[-]"
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	botPiece := p.playerPiece.Opponent()
	text += fmt.Sprintf("%s %s\n", pieceTag(p.playerPiece), p.playerName)
	text += fmt.Sprintf("%s Bot\n", pieceTag(botPiece))
	text += fmt.Sprintf("[white]Move:[-:-:-] %d\n", p.state.MoveNumber)

	if p.warning != "" {
		text += fmt.Sprintf("\n[red]%s[-]\n", p.warning)
	}

	if p.suggestion != "" {
		text += "\n[yellow::b]Suggested move[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"
		text += fmt.Sprintf("%s\n", p.suggestion)
	}

	if p.moveHistory != nil && len(*p.moveHistory) > 0 {
		text += "\n[white::b]Moves[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"

		moves := *p.moveHistory
		// Show last N moves that fit, with scroll
		maxVisible := 12
		start := 0
		if len(moves) > maxVisible {
			start = len(moves) - maxVisible
		}

		for i := start; i < len(moves); i++ {
			m := moves[i]

			marker := " "
			if i == len(moves)-1 {
				marker = "[white]>[-]"
			}

			text += fmt.Sprintf("%s[dimgray]%3d.[-] %s c%d\n", marker, i+1, pieceTag(m.Piece), m.Col+1)
		}

		if start > 0 {
			text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	p.box.SetText(text)
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	frame := tview.NewFlex()
	RebuildNormalLayout(frame, board, hint)
	return frame
}

// RebuildNormalLayout restores the normal game layout with board, info
// panel, and hint bar.
func RebuildNormalLayout(gameFrame *tview.Flex, board *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	infoPanel.SetMoveHistory(&board.moveHistory)
	piece := game.Red
	if board.eng != nil {
		piece = board.eng.PlayerPiece()
	}
	infoPanel.SetPlayers(board.playerName, piece)
	infoPanel.SetState(board.state)

	// Horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)         // Board (flexible)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false) // Info panel (fixed width)

	// Main vertical flex: board area on top, compact status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *BoardUI) {
	gameFrame.Clear()

	boardWidth := game.Cols*2 + 4  // 2 chars per cell + margin
	boardHeight := game.Rows + 3   // hover row + coordinates

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false) // bottom spacer
}
