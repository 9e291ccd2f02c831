package srp

import (
	"math"
	"regexp"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"
)

// NodeID numbers a grid point row by row starting at 1. width is the number of
// points per row.
func NodeID(i, j, width int) int {
	return i*width + j + 1
}

// HorizontalEdgeID numbers the lattice edge between points (i,j) and (i,j+1)
// of a rows x cols cell lattice.
func HorizontalEdgeID(i, j, rows, cols int) int {
	return i*cols + j + 1
}

// VerticalEdgeID numbers the lattice edge between points (i,j) and (i+1,j).
// Vertical ids follow all (rows+1)*cols horizontal ones.
func VerticalEdgeID(i, j, rows, cols int) int {
	shift := (rows + 1) * cols
	return shift + i*(cols+1) + j + 1
}

// LatticeEdgeCount is the number of edges of a rows x cols cell lattice.
func LatticeEdgeCount(rows, cols int) int {
	return (rows+1)*cols + rows*(cols+1)
}

// CalcEdgeDist returns the full pairwise Euclidean distance matrix of the points.
func CalcEdgeDist(points []r2.Vec) [][]float64 {
	n := len(points)
	result := make([][]float64, n)
	for node := 0; node < n; node++ {
		result[node] = make([]float64, n)
	}
	for node := 0; node < n; node++ {
		for node2 := 0; node2 < node; node2++ {
			distance := r2.Norm(r2.Sub(points[node], points[node2]))
			result[node][node2] = distance
			result[node2][node] = distance
		}
	}
	return result
}

// FormatWeight renders a weight the way the solver reads it: an integer,
// truncated toward zero.
func FormatWeight(w float64) string {
	return strconv.FormatInt(int64(math.Trunc(w)), 10)
}

func SanitizeJsonArrayLineBreaks(json string) string {
	res := json
	var numbers = regexp.MustCompile(`\s*([-]?[0-9]+),\s+([-]?[0-9]+)(,)?`)
	var brackets = regexp.MustCompile(`\[(([-]?[0-9]+,)+[-]?[0-9]+)\s+\](,?)(\s+)`)
	for numbers.MatchString(res) {
		res = numbers.ReplaceAllString(res, "$1,$2$3")
	}
	for brackets.MatchString(res) {
		res = brackets.ReplaceAllString(res, "[$1]$3$4")
	}
	return res
}
