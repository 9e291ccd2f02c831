package srp

import (
	"fmt"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

type EuclideanConfig struct {
	Nodes     int
	Customers int
	Vehicles  int
	// Threshold is the largest distance at which a node is still a neighbor of a customer.
	Threshold float64
}

func (c EuclideanConfig) Name() string {
	return fmt.Sprintf("n%d_s%d_k%d", c.Nodes, c.Customers, c.Vehicles)
}

// EuclideanInstance scatters Nodes distinct integer points over [0,Nodes]^2 and
// uses their pairwise distances as the complete graph. Node 1 is the depot.
func EuclideanInstance(rng *rand.Rand, cfg EuclideanConfig) (*Instance, error) {
	if cfg.Customers >= cfg.Nodes {
		return nil, fmt.Errorf("%w: %d customers, %d nodes", ErrTooManyCustomers, cfg.Customers, cfg.Nodes)
	}
	if cfg.Vehicles <= 0 {
		return nil, fmt.Errorf("vehicles must be > 0 (got %d)", cfg.Vehicles)
	}
	n := cfg.Nodes

	points := randomPoints(rng, n, n)
	dist := CalcEdgeDist(points)
	graph := NewGraph()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			graph.SetArc(i+1, j+1, dist[i][j])
		}
	}

	customers := sampleCustomers(rng, cfg.Customers, n)
	neighbors := make([]Neighborhood, 0, len(customers))
	packages := make([]Package, 0, len(customers))
	for _, c := range customers {
		nodes := []int{}
		for j := 1; j <= n; j++ {
			if j != c && dist[c-1][j-1] <= cfg.Threshold {
				nodes = append(nodes, j)
			}
		}
		neighbors = append(neighbors, Neighborhood{Customer: c, Nodes: nodes})
	}
	for _, c := range customers {
		packages = append(packages, Package{Key: NodeKey(c), Demand: 1 + rng.Intn(100)})
	}

	return &Instance{
		Name:      cfg.Name(),
		Vehicles:  cfg.Vehicles,
		Depot:     1,
		Capacity:  GroupedCapacity(packages, cfg.Vehicles),
		Graph:     graph,
		Packages:  packages,
		Neighbors: neighbors,
	}, nil
}

// GroupedCapacity splits the packages in order into vehicles consecutive groups of
// equal size (the last one possibly shorter) and returns the largest group demand.
// It is an estimate, not a bin packing bound.
func GroupedCapacity(packages []Package, vehicles int) int {
	if len(packages) == 0 || vehicles <= 0 {
		return 0
	}
	size := (len(packages) + vehicles - 1) / vehicles
	capacity := 0
	for start := 0; start < len(packages); start += size {
		end := start + size
		if end > len(packages) {
			end = len(packages)
		}
		sum := 0
		for _, p := range packages[start:end] {
			sum += p.Demand
		}
		if sum > capacity {
			capacity = sum
		}
	}
	return capacity
}

// randomPoints draws n distinct integer points from [0,bound]^2.
func randomPoints(rng *rand.Rand, n, bound int) []r2.Vec {
	seen := make(map[r2.Vec]bool, n)
	points := make([]r2.Vec, 0, n)
	for len(points) < n {
		p := r2.Vec{X: float64(rng.Intn(bound + 1)), Y: float64(rng.Intn(bound + 1))}
		if seen[p] {
			continue
		}
		seen[p] = true
		points = append(points, p)
	}
	return points
}

// sampleCustomers draws count distinct nodes from 2..n, in drawing order.
func sampleCustomers(rng *rand.Rand, count, n int) []int {
	taken := make(map[int]bool, count)
	customers := make([]int, 0, count)
	for len(customers) < count {
		c := 2 + rng.Intn(n-1)
		if taken[c] {
			continue
		}
		taken[c] = true
		customers = append(customers, c)
	}
	return customers
}

func sortedSet(set map[int]bool) []int {
	nodes := make([]int, 0, len(set))
	for v := range set {
		nodes = append(nodes, v)
	}
	sort.Ints(nodes)
	return nodes
}
