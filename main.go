// fourline is a terminal application to play Connect-Four against a bot.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"fourline/config"
	"fourline/engine"
	"fourline/engine/greedy"
	"fourline/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFirst      = flag.String("first", "", "Who moves first (you or bot)")
	flagDelay      = flag.Int("delay", -1, "Bot think delay in seconds (0-5)")
	flagName       = flag.String("name", "", "Player name shown in records")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (board only)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var history *ui.HistoryBrowserUI
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("fourline %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		panic(err)
	}

	applyFlags()

	// Check if quick start requested
	quickStart := *flagQuickStart || *flagFirst != "" || *flagDelay >= 0 || *flagFocus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● fourline ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoardUI(app, cfg, gameHint)

	// Create game layout with board and side panel
	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft:
			gameBoard.MoveCursor(-1)
		case tcell.KeyRight:
			gameBoard.MoveCursor(1)
		case tcell.KeyEnter:
			dropOrRestart()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveCursor(-1)
			case 'l':
				gameBoard.MoveCursor(1)
			case ' ':
				dropOrRestart()
			case 'u':
				gameBoard.Undo()
			case 'r':
				gameBoard.Restart()
			case 's':
				gameBoard.Suggest()
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			case 'q':
				if gameBoard.IsFocusMode() {
					gameBoard.SetFocusMode(false)
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				} else {
					gameBoard.Close()
					cfg.Save()
					history.Refresh()
					rootPage.SwitchToPage("menu")
				}
			}
		}
		return event
	})

	// Start screen
	var menu *ui.MainMenu
	menu = ui.NewMainMenu(cfg,
		func() {
			startGame(engine.GameConfig{
				PlayerName: menu.PlayerName(),
				BotStarts:  menu.BotStarts(),
				ThinkDelay: time.Duration(menu.DelaySeconds()) * time.Second,
				HistoryDir: config.HistoryDir(),
			})
		},
		func() {
			rootPage.SwitchToPage("instructions")
		},
		func() {
			history.Refresh()
			rootPage.SwitchToPage("history")
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
		func() {
			cfg.Save()
			app.Stop()
		},
	)

	instructions := ui.NewInstructions(func() {
		rootPage.SwitchToPage("menu")
	})

	history = ui.NewHistoryBrowser(func() {
		rootPage.SwitchToPage("menu")
	})

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		// Refresh the game board with new colors
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("menu")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("menu")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	// Add pages - start on the menu, or gameview if quick start
	rootPage.AddPage("menu", menu.Page(), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("instructions", instructions.Flex(), true, false)
	rootPage.AddPage("history", history.Flex(), true, false)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	// Quick start if flags provided
	if quickStart {
		startGame(buildGameConfig())
		// Enter focus mode if requested
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// dropOrRestart plays the cursor column, or starts a fresh game when the
// current one is already over.
func dropOrRestart() {
	if gameBoard.IsFinished() {
		gameBoard.Restart()
		return
	}
	gameBoard.Drop()
}

// applyFlags overrides saved settings with command-line flags.
func applyFlags() {
	if *flagName != "" {
		cfg.Game.PlayerName = *flagName
	}
	if *flagFirst == "bot" || *flagFirst == "b" {
		cfg.Game.BotStarts = true
	} else if *flagFirst == "you" || *flagFirst == "me" || *flagFirst == "y" {
		cfg.Game.BotStarts = false
	}
	if *flagDelay >= 0 && *flagDelay <= 5 {
		cfg.Game.BotDelayMs = *flagDelay * 1000
	}
}

// buildGameConfig creates an engine.GameConfig from the current settings.
func buildGameConfig() engine.GameConfig {
	return engine.GameConfig{
		PlayerName: cfg.Game.PlayerName,
		BotStarts:  cfg.Game.BotStarts,
		ThinkDelay: time.Duration(cfg.Game.BotDelayMs) * time.Millisecond,
		HistoryDir: config.HistoryDir(),
	}
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	cfg.Save()
	gameBoard.SetPlayerName(gameCfg.PlayerName)

	eng := greedy.New(gameCfg)
	if err := gameBoard.ConnectEngine(eng); err != nil {
		// Show error modal
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.HidePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	rootPage.SwitchToPage("gameview")
}
