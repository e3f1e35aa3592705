package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// InstructionsUI is the full-screen how-to-play page.
type InstructionsUI struct {
	flex   *tview.Flex
	text   *tview.TextView
	onDone func()
}

// NewInstructions creates the instructions page. Any key returns to the menu.
func NewInstructions(onDone func()) *InstructionsUI {
	in := &InstructionsUI{onDone: onDone}

	in.text = tview.NewTextView()
	in.text.SetDynamicColors(true)
	in.text.SetTextAlign(tview.AlignCenter)
	in.text.SetText(`
[white::b]How to Play[-:-:-]

Drop discs to make 4 in a row.
[red]Red[-]: you (or whoever moves first), [yellow]Yellow[-]: second player.

Aim with [white]← →[-] or [white]h l[-] and press [white]Enter[-] to drop your disc.
Connect 4 discs horizontally, vertically, or diagonally to win.

[white]u[-] undoes the last move, even after the game ends.
[white]s[-] suggests a move when you are stuck.
[white]r[-] restarts, [white]f[-] hides everything but the board.

Finished games are saved and can be replayed from History.

[dimgray]Press any key to return.[-]`)

	in.text.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if in.onDone != nil {
			in.onDone()
		}
		return nil
	})

	in.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(in.text, 18, 0, true).
		AddItem(nil, 0, 1, false)

	return in
}

// Flex returns the flex container for this UI.
func (in *InstructionsUI) Flex() *tview.Flex {
	return in.flex
}
