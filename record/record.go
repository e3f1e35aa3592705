// Package record implements reading and writing of Connect-Four game
// records. A record is a single text node of KEY[value] properties followed
// by move nodes, one per drop:
//
//	(;GM[c4]AP[fourline:1.0]DT[2026-08-25]PR[Player]PY[Bot]RE[R+]
//	;R[3];Y[2];R[4])
//
// R/Y move values are column indices 0-6. RE is "R+", "Y+", "0" (draw) or
// "?" (unfinished).
package record

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fourline/game"
)

// GameRecord tracks a game in progress and persists it move by move.
type GameRecord struct {
	FilePath     string
	PlayerRed    string
	PlayerYellow string
	Date         string
	Result       string
	moves        []string // ";R[3]", ";Y[2]", ...
	file         *os.File
}

// NewGameRecord creates a new record file in dir and writes the initial
// header. redName moves first.
func NewGameRecord(dir, redName, yellowName string) (*GameRecord, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	now := time.Now()
	filename := fmt.Sprintf("%s.c4", now.Format("2006-01-02_150405"))
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create record file: %w", err)
	}

	rec := &GameRecord{
		FilePath:     path,
		PlayerRed:    redName,
		PlayerYellow: yellowName,
		Date:         now.Format("2006-01-02"),
		Result:       "?",
		file:         f,
	}

	if err := rec.flush(); err != nil {
		f.Close()
		return nil, err
	}

	return rec, nil
}

// AddMove appends a drop to the record.
func (r *GameRecord) AddMove(col int, piece game.Piece) error {
	pieceChar := "R"
	if piece == game.Yellow {
		pieceChar = "Y"
	}
	r.moves = append(r.moves, fmt.Sprintf(";%s[%d]", pieceChar, col))
	return r.flush()
}

// UndoMoves removes the last n moves from the record.
func (r *GameRecord) UndoMoves(n int) error {
	if n > len(r.moves) {
		n = len(r.moves)
	}
	r.moves = r.moves[:len(r.moves)-n]
	return r.flush()
}

// SetResult parses a game outcome string and sets the RE property.
// Accepts engine outcomes like "Red wins" or "Draw" as well as
// already-canonical values like "R+", "0".
func (r *GameRecord) SetResult(outcome string) error {
	r.Result = parseResult(outcome)
	return r.flush()
}

// Close performs a final flush and closes the file handle.
func (r *GameRecord) Close() {
	if r.file == nil {
		return
	}
	r.flush()
	r.file.Close()
	r.file = nil
}

// flush rewrites the complete record file from scratch.
func (r *GameRecord) flush() error {
	if r.file == nil {
		return fmt.Errorf("file already closed")
	}

	var b strings.Builder
	b.WriteString("(;GM[c4]AP[fourline:1.0]")
	b.WriteString(fmt.Sprintf("DT[%s]", r.Date))
	b.WriteString(fmt.Sprintf("PR[%s]", r.PlayerRed))
	b.WriteString(fmt.Sprintf("PY[%s]", r.PlayerYellow))
	b.WriteString(fmt.Sprintf("RE[%s]", r.Result))
	b.WriteString("\n")

	for _, m := range r.moves {
		b.WriteString(m)
	}

	b.WriteString(")\n")

	if _, err := r.file.Seek(0, 0); err != nil {
		return err
	}
	if err := r.file.Truncate(0); err != nil {
		return err
	}
	if _, err := r.file.WriteString(b.String()); err != nil {
		return err
	}
	return r.file.Sync()
}

// parseResult converts outcome strings to a canonical RE[] value.
func parseResult(outcome string) string {
	o := strings.TrimSpace(outcome)

	if isValidResult(o) {
		return o
	}

	low := strings.ToLower(o)
	switch {
	case strings.HasPrefix(low, "red wins"):
		return "R+"
	case strings.HasPrefix(low, "yellow wins"):
		return "Y+"
	case strings.HasPrefix(low, "draw"):
		return "0"
	}
	return "?"
}

// isValidResult checks if a string is already a canonical result.
func isValidResult(s string) bool {
	switch s {
	case "R+", "Y+", "0", "?":
		return true
	}
	return false
}
