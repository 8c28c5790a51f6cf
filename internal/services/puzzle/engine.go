package puzzle

import (
	"github.com/mcoot/minisudoku-go/internal/dependencies/random"
	"github.com/mcoot/minisudoku-go/internal/model"
)

// CellsToRemove is how many cells of the solution are cleared for a new puzzle
const CellsToRemove = 4

// Generator produces new puzzles
type Generator interface {
	NewPuzzle() model.Board
}

// Engine generates puzzles by clearing cells from one fixed solution.
// Only the cleared cells vary between puzzles (C(9,4) = 126 variants).
type Engine struct {
	random random.Random
}

// New creates a new puzzle Engine
func New(random random.Random) *Engine {
	return &Engine{
		random: random,
	}
}

var _ Generator = (*Engine)(nil)

// Solution returns the canonical solved board every puzzle is derived from
func Solution() model.Board {
	return model.Board{
		{1, 2, 3},
		{2, 3, 1},
		{3, 1, 2},
	}
}

// NewPuzzle returns the solution with CellsToRemove distinct cells cleared,
// each chosen uniformly among the cells still filled
func (e *Engine) NewPuzzle() model.Board {
	board := Solution()

	filled := make([]model.Position, 0, model.BoardSize*model.BoardSize)
	for row := 0; row < model.BoardSize; row++ {
		for col := 0; col < model.BoardSize; col++ {
			filled = append(filled, model.Position{Row: row, Col: col})
		}
	}

	for i := 0; i < CellsToRemove; i++ {
		idx := e.random.Intn(len(filled))
		pos := filled[idx]
		board[pos.Row][pos.Col] = 0
		filled = append(filled[:idx], filled[idx+1:]...)
	}
	return board
}

// SetCell returns a copy of board with the cell at row, col set to value.
// Any cell may be overwritten, including the original clues; 0 clears it.
func SetCell(board model.Board, row, col, value int) (model.Board, error) {
	pos := model.Position{Row: row, Col: col}
	if !pos.IsValid() {
		return board, model.ErrInvalidPosition
	}
	if value < 0 || value > model.MaxValue {
		return board, model.ErrInvalidValue
	}
	board[row][col] = value
	return board, nil
}

// IsSolved reports whether the board is full with no value repeated in any
// row or column
func IsSolved(board model.Board) bool {
	if !board.IsFull() {
		return false
	}
	for i := 0; i < model.BoardSize; i++ {
		if hasDuplicate(board.Row(i)) || hasDuplicate(board.Col(i)) {
			return false
		}
	}
	return true
}

// hasDuplicate reports whether any non-zero value appears twice
func hasDuplicate(values []int) bool {
	seen := make(map[int]bool, len(values))
	for _, v := range values {
		if v == 0 {
			continue
		}
		if seen[v] {
			return true
		}
		seen[v] = true
	}
	return false
}
