package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

var (
	cfgFile = "fourline/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor     int `json:"board"`
	SlotColor      int `json:"slot"`
	RedColor       int `json:"red"`
	YellowColor    int `json:"yellow"`
	CursorColorFG  int `json:"cursor_fg"`
	CursorColorBG  int `json:"cursor_bg"`
	LastPlayedBG   int `json:"last_played_bg"`
	CoordinateText int `json:"coordinate_text"`
}

type ConfigSymbols struct {
	Disc   rune `json:"disc"`
	Slot   rune `json:"slot"`
	Cursor rune `json:"cursor"`
}

type Theme struct {
	DrawBoardBackground bool          `json:"draw_board_bg"`
	DrawCursorColumn    bool          `json:"draw_cursor_column"`
	Colors              ConfigColors  `json:"colors"`
	Symbols             ConfigSymbols `json:"symbols"`
}

// GameConfig holds gameplay defaults applied to new sessions.
type GameConfig struct {
	PlayerName string `json:"player_name"`
	BotDelayMs int    `json:"bot_delay_ms"`
	BotStarts  bool   `json:"bot_starts"`
}

type Config struct {
	Theme Theme      `json:"theme"`
	Game  GameConfig `json:"game"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		readCfgFile(absPath, &config)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Disc, c.Theme.Symbols.Slot, c.Theme.Symbols.Cursor} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Game.BotDelayMs < 0 {
		return &InvalidConfig{"bot_delay_ms must not be negative"}
	}
	return nil
}

func (c *Config) Save() {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		panic(err)
	}
	saveCfgFile(absPath, c, 0664)
}

// HistoryDir returns the directory where finished games are recorded.
func HistoryDir() string {
	return filepath.Join(xdg.DataHome, "fourline", "history")
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		panic(err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		panic(err)
	}
}

func readCfgFile(filePath string, a interface{}) {
	configReader, err := os.ReadFile(filePath)
	if err == nil {
		err = json.Unmarshal(configReader, &a)
		if err != nil {
			panic(err)
		}
	}
}
