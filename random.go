package srp

import (
	"fmt"
	"math/rand"
)

const randomDemand = 20

// PurelyRandomInstance draws a weight in 1..100 for every ordered pair of nodes.
// Nodes reached from a customer with weight below 5 become its neighbors.
func PurelyRandomInstance(rng *rand.Rand, size int) (*Instance, error) {
	return denseRandomInstance(rng, fmt.Sprintf("random_%d", size), size, func(w int) bool {
		return w < 5
	})
}

// ManyNeighborsInstance is PurelyRandomInstance with every other node a neighbor
// of a customer with probability 1/2.
func ManyNeighborsInstance(rng *rand.Rand, size int) (*Instance, error) {
	return denseRandomInstance(rng, fmt.Sprintf("neighbors_%d", size), size, func(int) bool {
		return bernoulli(rng, 0.5)
	})
}

func denseRandomInstance(rng *rand.Rand, name string, size int, isNeighbor func(weight int) bool) (*Instance, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: %d nodes", ErrTooManyCustomers, size)
	}
	graph := NewGraph()
	neighbors := make([]Neighborhood, 0, size-1)
	for i := 1; i <= size; i++ {
		set := map[int]bool{}
		for j := 1; j <= size; j++ {
			w := 1 + rng.Intn(100)
			graph.SetArc(i, j, float64(w))
			if isNeighbor(w) && i > 1 && i != j {
				set[j] = true
			}
		}
		if i > 1 {
			neighbors = append(neighbors, Neighborhood{Customer: i, Nodes: sortedSet(set)})
		}
	}
	packages := make([]Package, 0, size-1)
	for i := 2; i <= size; i++ {
		packages = append(packages, Package{Key: NodeKey(i), Demand: randomDemand})
	}
	return &Instance{
		Name:      name,
		Vehicles:  size/5 + 2,
		Depot:     1,
		Capacity:  100,
		Graph:     graph,
		Packages:  packages,
		Neighbors: neighbors,
	}, nil
}
