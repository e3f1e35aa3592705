package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the palette for the menu UI: cool grays for the frame
// with a warm yellow accent to echo the discs.
var MenuColors = struct {
	Border      tcell.Color // Muted gray-blue for borders
	BorderFocus tcell.Color // Brighter border when focused
	CardBG      tcell.Color // Dark gray background
	Title       tcell.Color // Bright white for title
	TitleAccent tcell.Color // Disc-yellow accent for decoration
	Label       tcell.Color // Light gray for labels
	Hint        tcell.Color // Dim gray for hints
	Selected    tcell.Color // Warm yellow for selected items
	Unselected  tcell.Color // Dim gray for unselected items
	ButtonBG    tcell.Color // Button background
	ButtonFocus tcell.Color // Focused button
	ButtonText  tcell.Color // Button text
}{
	Border:      tcell.PaletteColor(60),
	BorderFocus: tcell.PaletteColor(110),
	CardBG:      tcell.PaletteColor(235),
	Title:       tcell.PaletteColor(255),
	TitleAccent: tcell.PaletteColor(220),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(245),
	Selected:    tcell.PaletteColor(220),
	Unselected:  tcell.PaletteColor(245),
	ButtonBG:    tcell.PaletteColor(60),
	ButtonFocus: tcell.PaletteColor(172),
	ButtonText:  tcell.PaletteColor(255),
}
