package srp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

const (
	ParamsFile    = "params.txt"
	PackagesFile  = "packages.txt"
	GraphFile     = "graph.txt"
	NeighborsFile = "neighbors.txt"
)

// DirName is the directory an instance is written to below an output root.
func DirName(name string) string {
	return "instance_" + name
}

// Writer writes instances below Root, one directory per instance.
type Writer struct {
	Root string
}

// Write stores inst in Root/instance_<name> and returns that directory.
func (w Writer) Write(inst *Instance) (string, error) {
	dir := filepath.Join(w.Root, DirName(inst.Name))
	return dir, WriteInstance(dir, inst)
}

// WriteInstance creates dir if needed and overwrites the four instance files.
// Files already written stay in place when a later one fails.
func WriteInstance(dir string, inst *Instance) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	files := []struct {
		name  string
		write func(io.Writer, *Instance) error
	}{
		{ParamsFile, WriteParams},
		{PackagesFile, WritePackages},
		{GraphFile, WriteGraph},
		{NeighborsFile, WriteNeighbors},
	}
	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), inst, f.write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, inst *Instance, write func(io.Writer, *Instance) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	bw := bufio.NewWriter(file)
	if err := write(bw, inst); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func WriteParams(w io.Writer, inst *Instance) error {
	_, err := fmt.Fprintf(w, "vehicles %d\ndepot %d\ncapacity %d\n", inst.Vehicles, inst.Depot, inst.Capacity)
	return err
}

func WritePackages(w io.Writer, inst *Instance) error {
	for _, p := range inst.Packages {
		if _, err := fmt.Fprintf(w, "%s %d\n", p.Key, p.Demand); err != nil {
			return err
		}
	}
	return nil
}

// WriteGraph dumps the dense N x N matrix, N being the largest node id.
// Missing arcs are written as AbsentEdge.
func WriteGraph(w io.Writer, inst *Instance) error {
	n := inst.Graph.Order()
	absent := strconv.Itoa(AbsentEdge)
	for from := 1; from <= n; from++ {
		arcs := inst.Graph.Arcs(from)
		k := 0
		for to := 1; to <= n; to++ {
			weight := absent
			for k < len(arcs) && arcs[k].To < to {
				k++
			}
			if k < len(arcs) && arcs[k].To == to {
				weight = FormatWeight(arcs[k].Weight)
			}
			if _, err := fmt.Fprintf(w, "%d %d %s\n", from, to, weight); err != nil {
				return err
			}
		}
	}
	return nil
}

func WriteNeighbors(w io.Writer, inst *Instance) error {
	for _, n := range inst.Neighbors {
		for _, v := range n.Nodes {
			if _, err := fmt.Fprintf(w, "%d %d\n", n.Customer, v); err != nil {
				return err
			}
		}
	}
	return nil
}
