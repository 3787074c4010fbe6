package model

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Board is an N×N arrangement of letter dice. Word search is read-only;
// generation (which mutates the dice) lives in the board service.
type Board struct {
	Size  int      `json:"size"`
	Cells [][]*Die `json:"cells"` // Row-major: Cells[row][col]
}

// NewBoard creates a board of the given size with empty cells.
// The board service populates the dice during generation.
func NewBoard(size int) *Board {
	cells := make([][]*Die, size)
	for i := range cells {
		cells[i] = make([]*Die, size)
	}
	return &Board{
		Size:  size,
		Cells: cells,
	}
}

// BoardFromRows builds a board from row strings such as
// ["ATE", "CAT", "RST"]. Each die gets all six faces set to its
// visible letter; the result is meant for search and solving, not for
// re-rolling. Rows must form a square of at least one cell.
func BoardFromRows(rows []string) (*Board, error) {
	size := len(rows)
	if size == 0 {
		return nil, ErrInvalidBoardSize
	}
	board := NewBoard(size)
	for row, letters := range rows {
		runes := []rune(letters)
		if len(runes) != size {
			return nil, ErrInvalidBoardSize
		}
		for col, letter := range runes {
			die := &Die{Visible: letter}
			for i := range die.Faces {
				die.Faces[i] = letter
			}
			board.Cells[row][col] = die
		}
	}
	return board, nil
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// VisibleAt returns the visible letter at the given position, or 0 if
// the position is out of bounds or the cell has no die yet
func (b *Board) VisibleAt(pos Position) rune {
	if !b.IsValidPosition(pos) {
		return 0
	}
	die := b.Cells[pos.Row][pos.Col]
	if die == nil {
		return 0
	}
	return die.Visible
}

// Letters returns a read-only snapshot of the visible letters,
// row-major, for display
func (b *Board) Letters() [][]rune {
	letters := make([][]rune, b.Size)
	for row := 0; row < b.Size; row++ {
		letters[row] = make([]rune, b.Size)
		for col := 0; col < b.Size; col++ {
			letters[row][col] = b.VisibleAt(Position{Row: row, Col: col})
		}
	}
	return letters
}

// Contains reports whether the word can be spelled by a path of
// distinct, 8-adjacent cells whose visible letters match the word in
// order. The word must already be normalized to the board's case.
// The search backtracks fully, so a path is missed only if none exists.
func (b *Board) Contains(word string) bool {
	letters := []rune(word)
	if len(letters) == 0 {
		return false
	}

	visited := make([][]bool, b.Size)
	for i := range visited {
		visited[i] = make([]bool, b.Size)
	}

	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			pos := Position{Row: row, Col: col}
			if b.VisibleAt(pos) != letters[0] {
				continue
			}
			// A cell burned on a failed path must be free again
			// for the next starting cell.
			for i := range visited {
				for j := range visited[i] {
					visited[i][j] = false
				}
			}
			if b.extend(letters, 0, pos, visited) {
				return true
			}
		}
	}
	return false
}

// extend tries to complete letters[index:] starting from pos, whose
// visible letter already matches letters[index]. Neighbors are scanned
// in a fixed order: row offset outer, column offset inner.
func (b *Board) extend(letters []rune, index int, pos Position, visited [][]bool) bool {
	if index == len(letters)-1 {
		return true
	}

	visited[pos.Row][pos.Col] = true
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			next := Position{Row: pos.Row + dr, Col: pos.Col + dc}
			if !b.IsValidPosition(next) || visited[next.Row][next.Col] {
				continue
			}
			if b.VisibleAt(next) != letters[index+1] {
				continue
			}
			if b.extend(letters, index+1, next, visited) {
				return true
			}
		}
	}
	visited[pos.Row][pos.Col] = false
	return false
}
