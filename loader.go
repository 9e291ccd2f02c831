package srp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Load reads an instance directory written by WriteInstance. Graph entries equal
// to absent are treated as missing arcs, which lets older files using 0, 10000 or
// N*N as marker be read as well. neighbors.txt is optional.
func Load(dir string, absent float64) (*Instance, error) {
	inst := &Instance{Name: strings.TrimPrefix(filepath.Base(dir), "instance_")}

	if err := readFile(filepath.Join(dir, ParamsFile), func(r io.Reader) error {
		return readParams(r, inst)
	}); err != nil {
		return nil, err
	}
	if err := readFile(filepath.Join(dir, GraphFile), func(r io.Reader) (err error) {
		inst.Graph, err = ReadGraph(r, absent)
		return err
	}); err != nil {
		return nil, err
	}
	if err := readFile(filepath.Join(dir, PackagesFile), func(r io.Reader) (err error) {
		inst.Packages, err = ReadPackages(r)
		return err
	}); err != nil {
		return nil, err
	}
	err := readFile(filepath.Join(dir, NeighborsFile), func(r io.Reader) (err error) {
		inst.Neighbors, err = ReadNeighbors(r)
		return err
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	return inst, nil
}

func readFile(path string, read func(io.Reader) error) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := read(file); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// eachLine calls fn with the fields of every non-empty line.
func eachLine(r io.Reader, fn func(line int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := fn(line, fields); err != nil {
			return &ParseError{Line: line, Text: scanner.Text(), Err: err}
		}
	}
	return scanner.Err()
}

func atois(fields []string) ([]int, error) {
	res := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func readParams(r io.Reader, inst *Instance) error {
	params := map[string]int{}
	err := eachLine(r, func(_ int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("expected \"<name> <value>\"")
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		params[fields[0]] = v
		return nil
	})
	if err != nil {
		return err
	}
	// older files name the depot "first"
	if _, ok := params["depot"]; !ok {
		if first, ok := params["first"]; ok {
			params["depot"] = first
		}
	}
	for _, key := range []string{"vehicles", "depot", "capacity"} {
		if _, ok := params[key]; !ok {
			return fmt.Errorf("missing parameter %q", key)
		}
	}
	inst.Vehicles = params["vehicles"]
	inst.Depot = params["depot"]
	inst.Capacity = params["capacity"]
	return nil
}

// ReadGraph parses a dense "<from> <to> <weight>" dump.
func ReadGraph(r io.Reader, absent float64) (*Graph, error) {
	graph := NewGraph()
	err := eachLine(r, func(_ int, fields []string) error {
		if len(fields) != 3 {
			return fmt.Errorf("expected \"<from> <to> <weight>\"")
		}
		ends, err := atois(fields[:2])
		if err != nil {
			return err
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return err
		}
		graph.AddNode(ends[0])
		graph.AddNode(ends[1])
		if w != absent {
			graph.SetArc(ends[0], ends[1], w)
		}
		return nil
	})
	return graph, err
}

// ReadPackages parses "<node> <demand>" and "<edge> <from> <to> <demand>" lines.
func ReadPackages(r io.Reader) ([]Package, error) {
	var packages []Package
	err := eachLine(r, func(_ int, fields []string) error {
		v, err := atois(fields)
		if err != nil {
			return err
		}
		switch len(v) {
		case 2:
			packages = append(packages, Package{Key: NodeKey(v[0]), Demand: v[1]})
		case 4:
			packages = append(packages, Package{Key: EdgeKey(v[0], v[1], v[2]), Demand: v[3]})
		default:
			return fmt.Errorf("expected 2 or 4 fields, got %d", len(v))
		}
		return nil
	})
	return packages, err
}

// ReadNeighbors parses "<customer> <neighbor>" lines, keeping customers in order
// of first appearance.
func ReadNeighbors(r io.Reader) ([]Neighborhood, error) {
	var neighbors []Neighborhood
	index := map[int]int{}
	err := eachLine(r, func(_ int, fields []string) error {
		if len(fields) != 2 {
			return fmt.Errorf("expected \"<customer> <neighbor>\"")
		}
		v, err := atois(fields)
		if err != nil {
			return err
		}
		i, ok := index[v[0]]
		if !ok {
			i = len(neighbors)
			index[v[0]] = i
			neighbors = append(neighbors, Neighborhood{Customer: v[0]})
		}
		neighbors[i].Nodes = append(neighbors[i].Nodes, v[1])
		return nil
	})
	for _, n := range neighbors {
		sort.Ints(n.Nodes)
	}
	return neighbors, err
}
