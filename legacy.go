package srp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseError reports a malformed line of a Tagliavini instance.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ImportTagliaviniFile reads a Tagliavini instance from path.
func ImportTagliaviniFile(name, path string) (*Instance, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	inst, err := ImportTagliavini(name, file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return inst, nil
}

// ImportTagliavini translates the grid format of Tagliavini's thesis. The first
// line is "rows cols _", every further line a segment "x1 y1 x2 y2" between two
// grid points. The first coordinate selects the lattice row: a unit step in it is
// stored as the horizontal edge at the smaller point, a unit step in the second
// coordinate as the vertical one. Every such edge becomes a customer of demand 1.
// Segments that are not unit axis-aligned steps are skipped.
func ImportTagliavini(name string, r io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(r)
	line := 0
	var rows, cols int
	header := false
	seen := map[int]bool{}
	var packages []Package

	for scanner.Scan() {
		line++
		t := strings.TrimSpace(scanner.Text())
		if t == "" {
			continue
		}
		fields := strings.Fields(t)
		if !header {
			if len(fields) != 3 {
				return nil, &ParseError{Line: line, Text: t, Err: fmt.Errorf("header needs 3 fields, got %d", len(fields))}
			}
			var err error
			if rows, err = strconv.Atoi(fields[0]); err != nil {
				return nil, &ParseError{Line: line, Text: t, Err: err}
			}
			if cols, err = strconv.Atoi(fields[1]); err != nil {
				return nil, &ParseError{Line: line, Text: t, Err: err}
			}
			if rows <= 0 || cols <= 0 {
				return nil, &ParseError{Line: line, Text: t, Err: ErrInvalidGrid}
			}
			header = true
			continue
		}
		if len(fields) != 4 {
			return nil, &ParseError{Line: line, Text: t, Err: fmt.Errorf("segment needs 4 fields, got %d", len(fields))}
		}
		var xy [4]int
		for k, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, &ParseError{Line: line, Text: t, Err: err}
			}
			xy[k] = v
		}
		edge, ok, err := segmentEdge(xy[0], xy[1], xy[2], xy[3], rows, cols)
		if err != nil {
			return nil, &ParseError{Line: line, Text: t, Err: err}
		}
		if !ok || seen[edge.Edge] {
			continue
		}
		seen[edge.Edge] = true
		packages = append(packages, Package{Key: edge, Demand: 1})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !header {
		return nil, &ParseError{Line: line, Err: io.ErrUnexpectedEOF}
	}

	return &Instance{
		Name:     name,
		Vehicles: 2,
		Depot:    1,
		Capacity: LatticeEdgeCount(rows, cols),
		Graph:    LatticeGrid(rows, cols),
		Packages: packages,
	}, nil
}

func segmentEdge(x1, y1, x2, y2, rows, cols int) (Key, bool, error) {
	width := cols + 1
	switch {
	case y1 == y2 && abs(x1-x2) == 1:
		x := min(x1, x2)
		if x < 0 || x > rows || y1 < 0 || y1 >= cols {
			return Key{}, false, fmt.Errorf("segment outside the %dx%d grid", rows, cols)
		}
		return EdgeKey(HorizontalEdgeID(x, y1, rows, cols), NodeID(x, y1, width), NodeID(x, y1+1, width)), true, nil
	case x1 == x2 && abs(y1-y2) == 1:
		y := min(y1, y2)
		if x1 < 0 || x1 >= rows || y < 0 || y > cols {
			return Key{}, false, fmt.Errorf("segment outside the %dx%d grid", rows, cols)
		}
		return EdgeKey(VerticalEdgeID(x1, y, rows, cols), NodeID(x1, y, width), NodeID(x1+1, y, width)), true, nil
	}
	return Key{}, false, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
