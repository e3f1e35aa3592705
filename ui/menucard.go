package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MenuCard is the bordered card the menu draws into: a rounded frame, a
// disc-flanked title row, and a dashed divider under the title.
type MenuCard struct {
	*tview.Box
	title   string
	focused bool
}

// NewMenuCard creates a new menu card with the given title.
func NewMenuCard(title string) *MenuCard {
	return &MenuCard{
		Box:   tview.NewBox(),
		title: title,
	}
}

// frameStyles returns the border and background styles for the current
// focus state.
func (c *MenuCard) frameStyles() (tcell.Style, tcell.Style) {
	border := MenuColors.Border
	if c.focused {
		border = MenuColors.BorderFocus
	}
	borderStyle := tcell.StyleDefault.Foreground(border).Background(MenuColors.CardBG)
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)
	return borderStyle, bgStyle
}

// Draw renders the card frame and the title block.
func (c *MenuCard) Draw(screen tcell.Screen) {
	c.Box.DrawForSubclass(screen, c)

	x, y, width, height := c.GetInnerRect()
	if width < 10 || height < 5 {
		return
	}
	borderStyle, bgStyle := c.frameStyles()
	right := x + width - 1
	bottom := y + height - 1

	for row := y; row <= bottom; row++ {
		for col := x; col <= right; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}

	for col := x + 1; col < right; col++ {
		screen.SetContent(col, y, '─', nil, borderStyle)
		screen.SetContent(col, bottom, '─', nil, borderStyle)
	}
	for row := y + 1; row < bottom; row++ {
		screen.SetContent(x, row, '│', nil, borderStyle)
		screen.SetContent(right, row, '│', nil, borderStyle)
	}
	screen.SetContent(x, y, '╭', nil, borderStyle)
	screen.SetContent(right, y, '╮', nil, borderStyle)
	screen.SetContent(x, bottom, '╰', nil, borderStyle)
	screen.SetContent(right, bottom, '╯', nil, borderStyle)

	if c.title == "" {
		return
	}

	// Title flanked by discs on both sides: ● F O U R L I N E ●
	titleStyle := tcell.StyleDefault.Foreground(MenuColors.Title).Background(MenuColors.CardBG).Bold(true)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)

	titleLen := len([]rune(c.title)) + 4 // discs and their spacing
	col := x + (width-titleLen)/2
	titleY := y + 2

	screen.SetContent(col, titleY, '●', nil, accentStyle)
	col += 2
	for _, ch := range c.title {
		screen.SetContent(col, titleY, ch, nil, titleStyle)
		col++
	}
	screen.SetContent(col+1, titleY, '●', nil, accentStyle)

	c.DrawDivider(screen, y+4)
}

// DrawDivider draws a dashed divider row across the card.
func (c *MenuCard) DrawDivider(screen tcell.Screen, divY int) {
	x, _, width, _ := c.GetInnerRect()
	borderStyle, _ := c.frameStyles()

	screen.SetContent(x, divY, '├', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, divY, '╌', nil, borderStyle)
	}
	screen.SetContent(x+width-1, divY, '┤', nil, borderStyle)
}

// SetFocused sets the focus state of the card.
func (c *MenuCard) SetFocused(focused bool) {
	c.focused = focused
}
