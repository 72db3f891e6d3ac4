package solver

// The grid is a 9x9 square of 3x3 boxes. Cells are addressed by flat
// index row*9+col throughout the engine.
const (
	Size  = 9
	Box   = 3
	Cells = Size * Size
)

// Index returns the flat index of a cell coordinate.
func Index(row, col int) int { return row*Size + col }

// Coord splits a flat index into row and column.
func Coord(index int) (row, col int) { return index / Size, index % Size }

// BoxOf returns the box number (0..8) containing the cell.
func BoxOf(index int) int {
	row, col := Coord(index)
	return (row/Box)*Box + col/Box
}

// Peer tables, filled once at init. A cell has 8 peers in each of its
// row, column, and box, and 20 distinct peers overall; the cell itself
// is never included.
var (
	rowPeers [Cells][Size - 1]int
	colPeers [Cells][Size - 1]int
	boxPeers [Cells][Size - 1]int
	allPeers [Cells][20]int

	rowCells [Size][Size]int
	colCells [Size][Size]int
	boxCells [Size][Size]int

	related [Cells][Cells]bool
)

func init() {
	for idx := 0; idx < Cells; idx++ {
		row, col := Coord(idx)
		rowCells[row][col] = idx
		colCells[col][row] = idx
		boxCells[BoxOf(idx)][(row%Box)*Box+col%Box] = idx

		nr, nc, nb := 0, 0, 0
		for i := 0; i < Size; i++ {
			if j := Index(row, i); j != idx {
				rowPeers[idx][nr] = j
				nr++
			}
			if j := Index(i, col); j != idx {
				colPeers[idx][nc] = j
				nc++
			}
		}
		br, bc := (row/Box)*Box, (col/Box)*Box
		for dr := 0; dr < Box; dr++ {
			for dc := 0; dc < Box; dc++ {
				if j := Index(br+dr, bc+dc); j != idx {
					boxPeers[idx][nb] = j
					nb++
				}
			}
		}

		n := 0
		for _, group := range [3][]int{rowPeers[idx][:], colPeers[idx][:], boxPeers[idx][:]} {
			for _, j := range group {
				if !related[idx][j] {
					related[idx][j] = true
					allPeers[idx][n] = j
					n++
				}
			}
		}
	}
}

// Peers returns every cell sharing a row, column, or box with index.
func Peers(index int) []int { return allPeers[index][:] }

// Sees reports whether two distinct cells share a row, column, or box.
func Sees(a, b int) bool { return related[a][b] }

// peerGroups returns the cell's row, column, and box peers in that
// order, the order strategies scan regions in.
func peerGroups(index int) [3][]int {
	return [3][]int{rowPeers[index][:], colPeers[index][:], boxPeers[index][:]}
}

// regionGroups returns the full row, column, and box containing the
// cell, the cell itself included.
func regionGroups(index int) [3][]int {
	row, col := Coord(index)
	return [3][]int{rowCells[row][:], colCells[col][:], boxCells[BoxOf(index)][:]}
}
