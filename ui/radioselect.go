package ui

import (
	"github.com/gdamore/tcell/v2"
)

// RadioOption represents a single radio button option.
type RadioOption struct {
	Label       string
	Description string
}

// RadioSelect is a radio button group laid out on one row. Options are
// switched with Left/Right so Up/Down stays free for moving between menu
// items.
type RadioSelect struct {
	label    string
	options  []RadioOption
	selected int
	focused  bool
	onChange func(int)
}

// NewRadioSelect creates a new radio select component.
func NewRadioSelect(label string, options []RadioOption, initial int, onChange func(int)) *RadioSelect {
	return &RadioSelect{
		label:    label,
		options:  options,
		selected: initial,
		onChange: onChange,
	}
}

// SetFocused sets the focus state.
func (r *RadioSelect) SetFocused(focused bool) {
	r.focused = focused
}

// HandleKey processes keyboard input. Returns true if handled.
func (r *RadioSelect) HandleKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyLeft:
		if r.selected > 0 {
			r.selected--
			if r.onChange != nil {
				r.onChange(r.selected)
			}
		}
		return true
	case tcell.KeyRight:
		if r.selected < len(r.options)-1 {
			r.selected++
			if r.onChange != nil {
				r.onChange(r.selected)
			}
		}
		return true
	}
	return false
}

// Draw renders the radio select component.
// Returns the number of rows used.
func (r *RadioSelect) Draw(screen tcell.Screen, x, y, width int) int {
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)
	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.CardBG)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)
	selectedStyle := tcell.StyleDefault.Foreground(MenuColors.Selected).Background(MenuColors.CardBG)
	unselectedStyle := tcell.StyleDefault.Foreground(MenuColors.Unselected).Background(MenuColors.CardBG)
	hintStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)

	col := x

	// Focus cursor
	if r.focused {
		screen.SetContent(col, y, '▸', nil, selectedStyle)
	} else {
		screen.SetContent(col, y, ' ', nil, bgStyle)
	}
	col += 2

	// Label with diamond prefix: ◈ First move
	screen.SetContent(col, y, '◈', nil, accentStyle)
	col += 2

	for _, ch := range r.label {
		screen.SetContent(col, y, ch, nil, labelStyle)
		col++
	}
	col += 3 // spacing

	// Options on the same row: ● You   ○ Bot
	for i, opt := range r.options {
		style := unselectedStyle
		bullet := '○'
		if i == r.selected {
			bullet = '●'
			style = selectedStyle
		}
		screen.SetContent(col, y, bullet, nil, style)
		col += 2

		for _, ch := range opt.Label {
			screen.SetContent(col, y, ch, nil, style)
			col++
		}

		if opt.Description != "" {
			col++
			for _, ch := range opt.Description {
				screen.SetContent(col, y, ch, nil, hintStyle)
				col++
			}
		}
		col += 3
	}

	return 1
}

// Selected returns the currently selected index.
func (r *RadioSelect) Selected() int {
	return r.selected
}
