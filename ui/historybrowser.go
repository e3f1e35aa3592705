package ui

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"fourline/config"
	"fourline/game"
	"fourline/record"
)

// HistoryBrowserUI provides a screen for browsing saved game records.
type HistoryBrowserUI struct {
	flex     *tview.Flex
	gameList *tview.List
	preview  *tview.Box
	hint     *tview.TextView
	games    []record.GameInfo
	boards   map[int]game.Board // cached final positions
	selected int
	onDone   func()
}

// NewHistoryBrowser creates a new history browser screen.
func NewHistoryBrowser(onDone func()) *HistoryBrowserUI {
	hb := &HistoryBrowserUI{
		onDone: onDone,
		boards: make(map[int]game.Board),
	}

	// Game list (left panel)
	hb.gameList = tview.NewList()
	hb.gameList.SetBorder(true)
	hb.gameList.SetTitle(" Game History ")
	hb.gameList.ShowSecondaryText(false)
	hb.gameList.SetHighlightFullLine(true)
	hb.gameList.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	hb.gameList.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))

	// Preview box (right panel)
	hb.preview = tview.NewBox()
	hb.preview.SetBorder(true)
	hb.preview.SetTitle(" Preview ")
	hb.preview.SetDrawFunc(hb.drawPreview)

	// Hint bar
	hb.hint = tview.NewTextView()
	hb.hint.SetDynamicColors(true)
	hb.hint.SetBorder(false)
	hb.hint.SetText("  [dimgray]d[-] delete  [dimgray]q[-] back")

	// Handle list selection changes
	hb.gameList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		hb.selected = index
	})

	// Input handling
	hb.gameList.SetInputCapture(hb.handleInput)

	// Layout: list left, preview right, hint bottom
	topRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(hb.gameList, 40, 0, true).
		AddItem(hb.preview, 0, 1, false)

	hb.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topRow, 0, 1, true).
		AddItem(hb.hint, 1, 0, false)

	hb.loadGames()
	return hb
}

// Flex returns the flex container for this UI.
func (hb *HistoryBrowserUI) Flex() *tview.Flex {
	return hb.flex
}

// Refresh reloads the game list from disk.
func (hb *HistoryBrowserUI) Refresh() {
	hb.boards = make(map[int]game.Board)
	hb.loadGames()
}

// loadGames scans the history directory for record files.
func (hb *HistoryBrowserUI) loadGames() {
	hb.gameList.Clear()
	hb.games = nil
	hb.selected = 0

	games, err := record.ListGames(config.HistoryDir())
	if err != nil || len(games) == 0 {
		hb.gameList.AddItem("[dimgray]No games found[-]", "", 0, nil)
		return
	}

	hb.games = games
	for _, g := range games {
		label := fmt.Sprintf("%s  %-8s %s", g.Date, resultLabel(g.Result), g.PlayerRed)
		hb.gameList.AddItem(label, "", 0, nil)
	}
}

// resultLabel maps a stored result code to a short display string.
func resultLabel(result string) string {
	switch result {
	case "R+":
		return "Red+"
	case "Y+":
		return "Yellow+"
	case "0":
		return "Draw"
	default:
		return "..."
	}
}

// handleInput processes keyboard input for the history browser.
func (hb *HistoryBrowserUI) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		if hb.onDone != nil {
			hb.onDone()
		}
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			if hb.onDone != nil {
				hb.onDone()
			}
			return nil
		case 'd':
			hb.deleteSelected()
			return nil
		}
	}
	return event
}

// deleteSelected removes the currently selected game file.
func (hb *HistoryBrowserUI) deleteSelected() {
	if hb.selected < 0 || hb.selected >= len(hb.games) {
		return
	}

	g := hb.games[hb.selected]
	os.Remove(g.FilePath)

	// Clear board cache and reload
	hb.boards = make(map[int]game.Board)
	hb.loadGames()
}

// drawPreview renders a mini board preview and game metadata.
func (hb *HistoryBrowserUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if hb.selected < 0 || hb.selected >= len(hb.games) {
		return x, y, width, height
	}

	g := hb.games[hb.selected]

	// Lazy-load and cache the final position
	board, ok := hb.boards[hb.selected]
	if !ok {
		b, _, err := record.ReplayToEnd(g.FilePath)
		if err != nil {
			return x, y, width, height
		}
		board = b
		hb.boards[hb.selected] = board
	}

	startX := x + 2
	startY := y + 1

	if width < game.Cols*2+4 || height < game.Rows+8 {
		return x, y, width, height
	}

	slotStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(240))
	redStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(196))
	yellowStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(220))

	// Row 0 is the bottom of the board, so flip for the screen.
	for r := 0; r < game.Rows; r++ {
		screenY := startY + (game.Rows - 1 - r)
		for c := 0; c < game.Cols; c++ {
			ch := '○'
			style := slotStyle
			switch board[r][c] {
			case game.Red:
				ch = '●'
				style = redStyle
			case game.Yellow:
				ch = '●'
				style = yellowStyle
			}
			screen.SetContent(startX+c*2, screenY, ch, nil, style)
		}
	}

	// Metadata below the board
	infoY := startY + game.Rows + 1
	infoStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(250))
	dimStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(245))

	drawText(screen, startX, infoY, g.Date, infoStyle)
	drawText(screen, startX+len(g.Date)+2, infoY, fmt.Sprintf("| %d moves", g.MoveCount), dimStyle)

	infoY++
	drawText(screen, startX, infoY, fmt.Sprintf("R: %s", g.PlayerRed), dimStyle)
	infoY++
	drawText(screen, startX, infoY, fmt.Sprintf("Y: %s", g.PlayerYellow), dimStyle)

	infoY++
	result := resultLabel(g.Result)
	if result == "..." {
		result = "Unfinished"
	}
	resultStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(109))
	drawText(screen, startX, infoY, fmt.Sprintf("Result: %s", result), resultStyle)

	return x, y, width, height
}

// drawText writes a string to the screen at the given position.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
