package keymap

/*
Keys are numbered column by column starting from the bottom left corner:

	| 3 | 7 | 11 | 15 |
	| 2 | 6 | 10 | 14 |
	| 1 | 5 | 9  | 13 |
	| 0 | 4 | 8  | 12 |
*/

const (
	Rows     = 4
	Columns  = 4
	KeyCount = Rows * Columns
)

// Position returns the row (0 is the top row) and column of a key
func Position(key int) (row, col int) {
	return Rows - 1 - key%Rows, key / Rows
}

// IndexAt is the inverse of Position
func IndexAt(row, col int) int {
	return col*Rows + (Rows - 1 - row)
}
