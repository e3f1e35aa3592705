package game

import "testing"

func TestPickBestMoveEmptyBoardPrefersCenter(t *testing.T) {
	b := NewBoard()
	col, score := PickBestMove(&b, Red)
	// The center drop earns the center bonus; nothing else scores.
	if col != Cols/2 {
		t.Errorf("PickBestMove on empty board = %d, want %d", col, Cols/2)
	}
	if score != 3 {
		t.Errorf("empty-board best score = %d, want 3", score)
	}
}

func TestPickBestMoveReturnsValidColumn(t *testing.T) {
	b := NewBoard()
	piece := Red
	for move := 0; move < 20; move++ {
		col, _ := PickBestMove(&b, piece)
		if !b.IsValidColumn(col) {
			t.Fatalf("move %d: PickBestMove returned invalid column %d", move, col)
		}
		drop(t, &b, col, piece)
		if b.IsTerminal() {
			break
		}
		piece = piece.Opponent()
	}
}

func TestPickBestMoveTakesWin(t *testing.T) {
	b := NewBoard()
	b.Place(0, 0, Red)
	b.Place(0, 1, Red)
	b.Place(0, 2, Red)
	b.Place(1, 0, Yellow)
	b.Place(1, 1, Yellow)

	col, score := PickBestMove(&b, Red)
	if col != 3 {
		t.Errorf("PickBestMove = %d, want the winning column 3", col)
	}
	if score < 100 {
		t.Errorf("winning move scored %d, want >= 100", score)
	}
}

func TestPickBestMoveFullBoard(t *testing.T) {
	b := NewBoard()
	for c := 0; c < Cols; c++ {
		for r := 0; r < Rows; r++ {
			p := Red
			if (r+c)%2 == 0 {
				p = Yellow
			}
			b.Place(r, c, p)
		}
	}

	col, score := PickBestMove(&b, Red)
	if col != -1 || score != 0 {
		t.Errorf("PickBestMove on full board = (%d, %d), want (-1, 0)", col, score)
	}
}

// TestPickBestMoveLeftmostTieBreak fills every column except 2 and 4 with a
// pattern that is mirror-symmetric about the center column. By symmetry the
// two open columns score identically, so the selector must take the left one.
func TestPickBestMoveLeftmostTieBreak(t *testing.T) {
	b := NewBoard()

	outer := [Rows]Piece{Red, Yellow, Red, Yellow, Red, Yellow}   // cols 0 and 6
	inner := [Rows]Piece{Yellow, Red, Yellow, Red, Yellow, Red}   // cols 1 and 5
	center := [Rows]Piece{Yellow, Red, Yellow, Red, Yellow, Red}  // col 3

	for r := 0; r < Rows; r++ {
		b.Place(r, 0, outer[r])
		b.Place(r, 6, outer[r])
		b.Place(r, 1, inner[r])
		b.Place(r, 5, inner[r])
		b.Place(r, 3, center[r])
	}

	if m := mirrored(b); m != b {
		t.Fatal("test board is not mirror-symmetric")
	}
	if b.IsTerminal() {
		t.Fatal("test board must not be terminal")
	}

	for _, piece := range []Piece{Red, Yellow} {
		col, _ := PickBestMove(&b, piece)
		if col != 2 {
			t.Errorf("PickBestMove(%s) = %d, want left-most tied column 2", piece, col)
		}
	}
}

// TestPickBestMoveDoesNotMutate checks that simulation runs on copies.
func TestPickBestMoveDoesNotMutate(t *testing.T) {
	b := NewBoard()
	cols := []int{3, 2, 3, 4, 0}
	piece := Red
	for _, c := range cols {
		drop(t, &b, c, piece)
		piece = piece.Opponent()
	}

	before := b
	PickBestMove(&b, Red)
	PickBestMove(&b, Yellow)
	if b != before {
		t.Error("PickBestMove mutated the board")
	}
}

func TestRecommendMove(t *testing.T) {
	b := NewBoard()
	col, err := RecommendMove(&b, Red)
	if err != nil {
		t.Fatalf("RecommendMove on empty board: %v", err)
	}
	if !b.IsValidColumn(col) {
		t.Errorf("RecommendMove returned invalid column %d", col)
	}
}

func TestRecommendMoveTerminalBoard(t *testing.T) {
	b := NewBoard()
	for c := 0; c <= 3; c++ {
		b.Place(0, c, Yellow)
	}

	if _, err := RecommendMove(&b, Red); err != ErrAlreadyTerminal {
		t.Errorf("RecommendMove on won board: err = %v, want ErrAlreadyTerminal", err)
	}
}
