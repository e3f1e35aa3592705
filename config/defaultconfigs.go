package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawBoardBackground: true,
		DrawCursorColumn:    true,
		Colors: ConfigColors{
			BoardColor:     25,  // deep blue frame
			SlotColor:      236, // dark empty slot
			RedColor:       196,
			YellowColor:    220,
			CursorColorFG:  255,
			CursorColorBG:  4,
			LastPlayedBG:   2,
			CoordinateText: 250,
		},
		Symbols: ConfigSymbols{
			Disc:   '●',
			Slot:   '○',
			Cursor: '▼',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			PlayerName: "Player",
			BotDelayMs: 2000,
			BotStarts:  false,
		},
	}
}
