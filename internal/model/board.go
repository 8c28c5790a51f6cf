package model

// BoardSize is the grid dimension; boards are always BoardSize x BoardSize
const BoardSize = 3

// MaxValue is the largest value a cell can hold; 0 means empty
const MaxValue = BoardSize

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// IsValid returns true if the position is within bounds
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Board is a 3x3 grid of values, row-major: Board[row][col], 0 means empty.
// It is a value type, so assigning a Board copies it.
type Board [BoardSize][BoardSize]int

// IsFull returns true if all cells are filled
func (b Board) IsFull() bool {
	return b.EmptyCount() == 0
}

// EmptyCount returns the number of empty cells
func (b Board) EmptyCount() int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == 0 {
				count++
			}
		}
	}
	return count
}

// Row returns a copy of the values in the given row
func (b Board) Row(row int) []int {
	if row < 0 || row >= BoardSize {
		return nil
	}
	result := make([]int, BoardSize)
	copy(result, b[row][:])
	return result
}

// Col returns a copy of the values in the given column
func (b Board) Col(col int) []int {
	if col < 0 || col >= BoardSize {
		return nil
	}
	result := make([]int, BoardSize)
	for row := 0; row < BoardSize; row++ {
		result[row] = b[row][col]
	}
	return result
}
