package record

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"fourline/game"
)

// GameInfo holds metadata parsed from a record file header.
type GameInfo struct {
	FilePath     string
	FileName     string
	PlayerRed    string
	PlayerYellow string
	Date         string
	Result       string
	MoveCount    int
}

// ParseHeader reads a record file and extracts metadata from the root node.
func ParseHeader(filePath string) (*GameInfo, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	content := string(data)
	props := parseProperties(content)

	info := &GameInfo{
		FilePath:     filePath,
		FileName:     filepath.Base(filePath),
		PlayerRed:    props["PR"],
		PlayerYellow: props["PY"],
		Date:         props["DT"],
		Result:       props["RE"],
		MoveCount:    len(parseMoves(content)),
	}

	return info, nil
}

// ListGames scans dir for record files and returns them newest first.
func ListGames(dir string) ([]GameInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var games []GameInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".c4") {
			continue
		}
		info, err := ParseHeader(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		games = append(games, *info)
	}

	// Filenames are timestamped, so a reverse name sort is newest first.
	sort.Slice(games, func(i, j int) bool {
		return games[i].FileName > games[j].FileName
	})
	return games, nil
}

// ReplayToEnd parses a record file and re-drops every move through the game
// core to produce the final position. Returns the board and the move count.
func ReplayToEnd(filePath string) (game.Board, int, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return game.Board{}, 0, err
	}

	board := game.NewBoard()
	moves := parseMoves(string(data))
	applied := 0
	for _, m := range moves {
		if !board.IsValidColumn(m.Col) {
			continue // corrupt record; skip the impossible drop
		}
		row := board.NextOpenRow(m.Col)
		board.Place(row, m.Col, m.Piece)
		applied++
	}

	return board, applied, nil
}

// parseProperties extracts KEY[value] pairs from the root node.
func parseProperties(content string) map[string]string {
	props := make(map[string]string)

	start := strings.Index(content, "(;")
	if start == -1 {
		return props
	}
	start += 2

	// Root node ends at the next ";" or ")".
	end := len(content)
	for i := start; i < len(content); i++ {
		if content[i] == ';' || content[i] == ')' {
			end = i
			break
		}
	}

	extractProps(content[start:end], props)
	return props
}

// extractProps parses KEY[value] pairs from a node string into the map.
func extractProps(node string, props map[string]string) {
	i := 0
	for i < len(node) {
		for i < len(node) && (node[i] == ' ' || node[i] == '\n' || node[i] == '\r' || node[i] == '\t') {
			i++
		}
		if i >= len(node) {
			break
		}

		keyStart := i
		for i < len(node) && node[i] >= 'A' && node[i] <= 'Z' {
			i++
		}
		if i == keyStart {
			i++
			continue
		}
		key := node[keyStart:i]

		for i < len(node) && node[i] == '[' {
			i++
			valStart := i
			for i < len(node) && node[i] != ']' {
				if node[i] == '\\' && i+1 < len(node) {
					i++
				}
				i++
			}
			val := node[valStart:i]
			if i < len(node) {
				i++
			}
			props[key] = val
		}
	}
}

// parseMoves returns every move node (;R[col] or ;Y[col]) in order.
func parseMoves(content string) []game.Move {
	var moves []game.Move
	i := 0
	for i < len(content) {
		if content[i] != ';' || i+2 >= len(content) {
			i++
			continue
		}
		pieceChar := content[i+1]
		if (pieceChar != 'R' && pieceChar != 'Y') || content[i+2] != '[' {
			i++
			continue
		}

		end := strings.IndexByte(content[i+3:], ']')
		if end == -1 {
			break
		}
		col, err := strconv.Atoi(content[i+3 : i+3+end])
		i += 3 + end + 1
		if err != nil || col < 0 || col >= game.Cols {
			continue
		}

		piece := game.Red
		if pieceChar == 'Y' {
			piece = game.Yellow
		}
		moves = append(moves, game.Move{Col: col, Piece: piece})
	}
	return moves
}
