package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"fourline/config"
)

// Color editing modes, cycled with Tab.
const (
	modeBoard = iota
	modeRed
	modeYellow
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	// Current selection
	selectedBoard  int
	selectedRed    int
	selectedYellow int
	mode           int
}

// Board frame colors (blues and neutral darks).
var boardColors = []struct {
	code int
	name string
}{
	{25, "Deep Blue"},
	{24, "Dark Cyan"},
	{26, "Blue"},
	{27, "Bright Blue"},
	{17, "Navy Blue"},
	{18, "Midnight"},
	{61, "Slate Blue"},
	{67, "Steel Blue"},
	{23, "Teal"},
	{22, "Dark Green"},
	{236, "Dark Gray"},
	{238, "Gray"},
	{240, "Medium Gray"},
	{53, "Plum"},
	{54, "Purple"},
	{16, "True Black"},
}

// Disc colors (warm tones that stand out against the board).
var discColors = []struct {
	code int
	name string
}{
	{196, "Bright Red"},
	{160, "Red"},
	{124, "Dark Red"},
	{202, "Orange Red"},
	{208, "Dark Orange"},
	{214, "Orange Gold"},
	{220, "Bright Yellow"},
	{226, "Yellow"},
	{228, "Light Gold"},
	{229, "Pale Yellow"},
	{46, "Green"},
	{82, "Lime"},
	{201, "Magenta"},
	{213, "Pink"},
	{255, "White"},
	{250, "Gray"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:            cfg,
		onDone:         onDone,
		selectedBoard:  cfg.Theme.Colors.BoardColor,
		selectedRed:    cfg.Theme.Colors.RedColor,
		selectedYellow: cfg.Theme.Colors.YellowColor,
		mode:           modeBoard,
	}

	// Create the color list
	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)

	// Populate with board colors initially
	cc.populateColorList()

	// Handle selection change (preview)
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		palette := cc.palette()
		if index < 0 || index >= len(palette) {
			return
		}
		switch cc.mode {
		case modeBoard:
			cc.selectedBoard = palette[index].code
		case modeRed:
			cc.selectedRed = palette[index].code
		case modeYellow:
			cc.selectedYellow = palette[index].code
		}
	})

	// Handle selection confirm (apply)
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		palette := cc.palette()
		if index < 0 || index >= len(palette) {
			return
		}
		switch cc.mode {
		case modeBoard:
			cc.cfg.Theme.Colors.BoardColor = cc.selectedBoard
			cc.cfg.Save()
			onDone()
		case modeRed:
			cc.cfg.Theme.Colors.RedColor = cc.selectedRed
			cc.cfg.Save()
			cc.mode = modeYellow
			cc.populateColorList()
		case modeYellow:
			cc.cfg.Theme.Colors.YellowColor = cc.selectedYellow
			cc.cfg.Save()
			cc.mode = modeBoard
			cc.populateColorList()
		}
	})

	// Create preview box
	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// palette returns the color choices for the current mode.
func (cc *ColorConfigUI) palette() []struct {
	code int
	name string
} {
	if cc.mode == modeBoard {
		return boardColors
	}
	return discColors
}

// populateColorList fills the list for the current editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	var title string
	var current int
	switch cc.mode {
	case modeBoard:
		title = " Board Color (Tab: next) "
		current = cc.selectedBoard
	case modeRed:
		title = " Red Disc Color (Tab: next) "
		current = cc.selectedRed
	case modeYellow:
		title = " Yellow Disc Color (Tab: next) "
		current = cc.selectedYellow
	}
	cc.colorList.SetTitle(title)

	palette := cc.palette()
	for i, c := range palette {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range palette {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < 24 || height < 12 {
		return x, y, width, height
	}

	boardBG := tcell.PaletteColor(cc.selectedBoard)
	slotStyle := tcell.StyleDefault.
		Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.SlotColor)).
		Background(boardBG)
	redStyle := tcell.StyleDefault.
		Foreground(tcell.PaletteColor(cc.selectedRed)).
		Background(boardBG)
	yellowStyle := tcell.StyleDefault.
		Foreground(tcell.PaletteColor(cc.selectedYellow)).
		Background(boardBG)

	// Sample mid-game position: rows counted from the bottom.
	type disc struct{ col, row int }
	reds := []disc{{3, 0}, {3, 1}, {4, 0}, {2, 2}}
	yellows := []disc{{2, 0}, {2, 1}, {4, 1}, {3, 2}}

	startX := x + 2
	startY := y + 1
	rows, cols := 6, 7

	for r := 0; r < rows; r++ {
		screenY := startY + (rows - 1 - r)
		for c := 0; c < cols; c++ {
			ch := cc.cfg.Theme.Symbols.Slot
			style := slotStyle
			for _, d := range reds {
				if d.col == c && d.row == r {
					ch = cc.cfg.Theme.Symbols.Disc
					style = redStyle
				}
			}
			for _, d := range yellows {
				if d.col == c && d.row == r {
					ch = cc.cfg.Theme.Symbols.Disc
					style = yellowStyle
				}
			}
			screen.SetContent(startX+c*2, screenY, ch, nil, style)
			screen.SetContent(startX+c*2+1, screenY, ' ', nil, slotStyle)
		}
	}

	info := fmt.Sprintf("Board: %d  Red: %d  Yellow: %d",
		cc.selectedBoard, cc.selectedRed, cc.selectedYellow)
	drawText(screen, startX, startY+rows+1, info, tcell.StyleDefault)

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode advances to the next color editing mode.
func (cc *ColorConfigUI) ToggleMode() {
	cc.mode = (cc.mode + 1) % 3
	cc.populateColorList()
}
