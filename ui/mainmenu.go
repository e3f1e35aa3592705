package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"fourline/config"
)

// Focus order inside the menu card.
const (
	focusName = iota
	focusFirst
	focusDelay
	focusButtons
)

// MainMenu is the hand-drawn start screen: a card with the player name,
// first-move choice, bot delay, and the action buttons.
type MainMenu struct {
	*MenuCard

	cfg     *config.Config
	name    *NameInput
	first   *RadioSelect
	delay   *DelaySlider
	buttons []*MenuButton
	onQuit  func()

	focusIdx  int // focusName..focusButtons
	buttonIdx int
}

// NewMainMenu creates the start screen. The callbacks fire when the matching
// button is selected.
func NewMainMenu(cfg *config.Config, onPlay, onInstructions, onHistory, onColors, onQuit func()) *MainMenu {
	m := &MainMenu{
		MenuCard: NewMenuCard("F O U R L I N E"),
		cfg:      cfg,
	}

	m.name = NewNameInput("Name", cfg.Game.PlayerName, func(text string) {
		cfg.Game.PlayerName = text
	})

	firstIdx := 0
	if cfg.Game.BotStarts {
		firstIdx = 1
	}
	m.first = NewRadioSelect("First move", []RadioOption{
		{Label: "You"},
		{Label: "Bot"},
	}, firstIdx, func(index int) {
		cfg.Game.BotStarts = index == 1
	})

	m.delay = NewDelaySlider("Bot delay", 0, 5, cfg.Game.BotDelayMs/1000, func(seconds int) {
		cfg.Game.BotDelayMs = seconds * 1000
	})

	m.onQuit = onQuit
	m.buttons = []*MenuButton{
		NewMenuButton("Play", true, onPlay),
		NewMenuButton("How to Play", false, onInstructions),
		NewMenuButton("History", false, onHistory),
		NewMenuButton("Colors", false, onColors),
		NewMenuButton("Quit", false, onQuit),
	}
	m.buttons[0].SetHint("⏎")
	m.buttons[len(m.buttons)-1].SetHint("q")

	m.SetFocused(true)
	m.syncFocus()
	m.Box.SetInputCapture(m.handleInput)
	return m
}

// PlayerName returns the entered player name.
func (m *MainMenu) PlayerName() string {
	return m.name.Value()
}

// BotStarts reports whether the bot was chosen to move first.
func (m *MainMenu) BotStarts() bool {
	return m.first.Selected() == 1
}

// DelaySeconds returns the chosen bot think delay in seconds.
func (m *MainMenu) DelaySeconds() int {
	return m.delay.Value()
}

// syncFocus pushes the menu focus index into the components.
func (m *MainMenu) syncFocus() {
	m.name.SetFocused(m.focusIdx == focusName)
	m.first.SetFocused(m.focusIdx == focusFirst)
	m.delay.SetFocused(m.focusIdx == focusDelay)
	for i, b := range m.buttons {
		b.SetFocused(m.focusIdx == focusButtons && i == m.buttonIdx)
	}
}

func (m *MainMenu) handleInput(event *tcell.EventKey) *tcell.EventKey {
	// The focused component gets the key first.
	handled := false
	switch m.focusIdx {
	case focusName:
		handled = m.name.HandleKey(event)
	case focusFirst:
		handled = m.first.HandleKey(event)
	case focusDelay:
		handled = m.delay.HandleKey(event)
	case focusButtons:
		switch event.Key() {
		case tcell.KeyLeft:
			if m.buttonIdx > 0 {
				m.buttonIdx--
			}
			handled = true
		case tcell.KeyRight:
			if m.buttonIdx < len(m.buttons)-1 {
				m.buttonIdx++
			}
			handled = true
		default:
			handled = m.buttons[m.buttonIdx].HandleKey(event)
		}
	}

	if !handled {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyBacktab:
			if m.focusIdx > focusName {
				m.focusIdx--
			}
		case tcell.KeyDown, tcell.KeyTab:
			if m.focusIdx < focusButtons {
				m.focusIdx++
			}
		case tcell.KeyEnter:
			// Enter anywhere above the buttons jumps straight to Play.
			m.focusIdx = focusButtons
			m.buttonIdx = 0
		case tcell.KeyRune:
			// q quits from anywhere except the name field, where it types.
			if event.Rune() == 'q' && m.focusIdx != focusName {
				if m.onQuit != nil {
					m.onQuit()
				}
				return nil
			}
			return event
		default:
			return event
		}
	}

	m.syncFocus()
	return nil
}

// Draw renders the card and the menu components inside it.
func (m *MainMenu) Draw(screen tcell.Screen) {
	m.MenuCard.Draw(screen)

	x, y, width, height := m.GetInnerRect()
	if width < 40 || height < 16 {
		return
	}

	col := x + 3
	innerWidth := width - 6

	// Title block occupies rows y..y+4 (border, blank, title, blank, divider).
	row := y + 6
	m.name.Draw(screen, col, row, innerWidth)
	row += 2
	m.first.Draw(screen, col, row, innerWidth)
	row += 2
	m.delay.Draw(screen, col, row, innerWidth)
	row += 2

	m.DrawDivider(screen, row)
	row += 2

	// Buttons centered on one row.
	total := 0
	for i, b := range m.buttons {
		if i > 0 {
			total += 2
		}
		total += b.Width()
	}
	bx := x + (width-total)/2
	for i, b := range m.buttons {
		if i > 0 {
			bx += 2
		}
		bx += b.Draw(screen, bx, row)
	}
	row += 2

	hint := "↑↓ move · ←→ adjust · ⏎ select"
	hintStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)
	drawText(screen, x+(width-len([]rune(hint)))/2, row, hint, hintStyle)
}

// Page wraps the menu card in a centered flex for use as a tview page.
func (m *MainMenu) Page() tview.Primitive {
	row := tview.NewFlex().SetDirection(tview.FlexColumn)
	row.AddItem(nil, 0, 1, false)
	row.AddItem(m, 64, 0, true)
	row.AddItem(nil, 0, 1, false)

	page := tview.NewFlex().SetDirection(tview.FlexRow)
	page.AddItem(nil, 0, 1, false)
	page.AddItem(row, 18, 0, true)
	page.AddItem(nil, 0, 1, false)
	return page
}
