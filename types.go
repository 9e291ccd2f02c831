package srp

import (
	"errors"
	"fmt"
)

// AbsentEdge is written to graph.txt for every ordered pair without an arc.
const AbsentEdge = -1

var (
	ErrTooManyCustomers = errors.New("customers must be fewer than nodes")
	ErrInvalidGrid      = errors.New("grid needs at least one row and one column")
)

type Instance struct {
	Name      string
	Vehicles  int
	Depot     int
	Capacity  int
	Graph     *Graph
	Packages  []Package
	Neighbors []Neighborhood
}

// Key identifies a customer. Node customers have Edge == 0; edge customers
// carry the edge id and both endpoints.
type Key struct {
	Node int
	Edge int
	From int
	To   int
}

func NodeKey(node int) Key {
	return Key{Node: node}
}

func EdgeKey(id, from, to int) Key {
	return Key{Edge: id, From: from, To: to}
}

func (k Key) IsEdge() bool {
	return k.Edge != 0
}

func (k Key) String() string {
	if k.IsEdge() {
		return fmt.Sprintf("%d %d %d", k.Edge, k.From, k.To)
	}
	return fmt.Sprintf("%d", k.Node)
}

type Package struct {
	Key    Key
	Demand int
}

// Neighborhood lists the nodes from which a customer may be served.
type Neighborhood struct {
	Customer int
	Nodes    []int
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string `json:"platform"`
	CPU      string `json:"cpu"`
	RAM      string `json:"ram"`
}

// TotalDemand sums the demand of every package.
func (inst *Instance) TotalDemand() int {
	sum := 0
	for _, p := range inst.Packages {
		sum += p.Demand
	}
	return sum
}

func (inst *Instance) MaxDemand() int {
	m := 0
	for _, p := range inst.Packages {
		if p.Demand > m {
			m = p.Demand
		}
	}
	return m
}

// NeighborsOf returns the neighborhood of customer, or nil.
func (inst *Instance) NeighborsOf(customer int) []int {
	for _, n := range inst.Neighbors {
		if n.Customer == customer {
			return n.Nodes
		}
	}
	return nil
}

// Validate checks that every package and neighborhood refers to nodes of the graph.
// Capacity is not checked against the demands.
func (inst *Instance) Validate() error {
	if inst == nil {
		return errors.New("instance is nil")
	}
	if inst.Name == "" {
		return errors.New("instance has no name")
	}
	if inst.Vehicles <= 0 {
		return fmt.Errorf("vehicles must be > 0 (got %d)", inst.Vehicles)
	}
	if inst.Graph == nil || inst.Graph.Order() == 0 {
		return errors.New("instance has an empty graph")
	}
	if !inst.Graph.HasNode(inst.Depot) {
		return fmt.Errorf("depot %d is not a node of the graph", inst.Depot)
	}
	seen := make(map[Key]bool, len(inst.Packages))
	for _, p := range inst.Packages {
		if seen[p.Key] {
			return fmt.Errorf("customer %s listed twice", p.Key)
		}
		seen[p.Key] = true
		if p.Demand < 0 {
			return fmt.Errorf("customer %s has negative demand %d", p.Key, p.Demand)
		}
		if p.Key.IsEdge() {
			if !inst.Graph.HasNode(p.Key.From) || !inst.Graph.HasNode(p.Key.To) {
				return fmt.Errorf("edge customer %s has an endpoint outside the graph", p.Key)
			}
			continue
		}
		if !inst.Graph.HasNode(p.Key.Node) {
			return fmt.Errorf("customer %d is not a node of the graph", p.Key.Node)
		}
	}
	for _, n := range inst.Neighbors {
		if !inst.Graph.HasNode(n.Customer) {
			return fmt.Errorf("neighborhood of unknown node %d", n.Customer)
		}
		for _, v := range n.Nodes {
			if !inst.Graph.HasNode(v) {
				return fmt.Errorf("neighbor %d of customer %d is not a node of the graph", v, n.Customer)
			}
		}
	}
	return nil
}
