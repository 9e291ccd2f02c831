package srp

import "fmt"

// SimpleInstance is a 4 node single vehicle instance with two customers.
func SimpleInstance() *Instance {
	return &Instance{
		Name:     "simple",
		Vehicles: 1,
		Depot:    1,
		Capacity: 100,
		Graph: GraphFromMap(map[int]map[int]float64{
			1: {2: 1, 4: 1},
			2: {1: 1, 3: 1},
			3: {2: 1, 4: 100},
			4: {1: 50, 3: 100},
		}),
		Packages: []Package{
			{Key: NodeKey(2), Demand: 20},
			{Key: NodeKey(3), Demand: 20},
		},
	}
}

// TwoVehicleInstance has two vehicles but is solved optimally by one.
func TwoVehicleInstance() *Instance {
	return &Instance{
		Name:     "2v1",
		Vehicles: 2,
		Depot:    1,
		Capacity: 100,
		Graph: GraphFromMap(map[int]map[int]float64{
			1: {2: 1, 3: 1},
			2: {1: 1, 3: 1},
			3: {1: 1, 4: 100},
			4: {1: 50, 3: 100},
		}),
		Packages: []Package{
			{Key: NodeKey(2), Demand: 20},
			{Key: NodeKey(3), Demand: 20},
		},
		Neighbors: []Neighborhood{
			{Customer: 2, Nodes: []int{3}},
		},
	}
}

// OtherTwoVehicleInstance needs both vehicles: capacity fits a single package.
func OtherTwoVehicleInstance() *Instance {
	return &Instance{
		Name:     "2v2",
		Vehicles: 2,
		Depot:    1,
		Capacity: 20,
		Graph: GraphFromMap(map[int]map[int]float64{
			1: {2: 1, 3: 1},
			2: {1: 1, 3: 1},
			3: {1: 1, 4: 2},
			4: {1: 50, 3: 2},
		}),
		Packages: []Package{
			{Key: NodeKey(2), Demand: 20},
			{Key: NodeKey(3), Demand: 20},
		},
		Neighbors: []Neighborhood{
			{Customer: 2, Nodes: []int{3}},
		},
	}
}

// RepeatedPathInstance is solved optimally by both vehicles driving the same route.
func RepeatedPathInstance() *Instance {
	return &Instance{
		Name:     "rptd_path",
		Vehicles: 2,
		Depot:    1,
		Capacity: 30,
		Graph: GraphFromMap(map[int]map[int]float64{
			1: {2: 1, 3: 100, 4: 50},
			2: {1: 1, 3: 100, 4: 100},
			3: {1: 100, 2: 100, 4: 50},
			4: {1: 100, 2: 100, 3: 100},
		}),
		Packages: []Package{
			{Key: NodeKey(3), Demand: 20},
			{Key: NodeKey(4), Demand: 20},
		},
		Neighbors: []Neighborhood{
			{Customer: 3, Nodes: []int{2}},
			{Customer: 4, Nodes: []int{2}},
		},
	}
}

func LargerInstance() *Instance {
	return &Instance{
		Name:     "large",
		Vehicles: 3,
		Depot:    1,
		Capacity: 100,
		Graph: GraphFromMap(map[int]map[int]float64{
			1: {2: 1, 3: 1, 5: 1, 6: 200, 7: 250, 8: 100},
			2: {1: 1, 3: 1, 5: 100, 6: 200, 7: 250},
			3: {1: 1, 4: 100, 6: 1},
			4: {1: 50, 3: 100},
			5: {8: 1, 3: 1, 2: 1, 4: 1, 1: 1},
			6: {7: 1, 4: 200, 1: 200, 3: 200},
			7: {6: 1, 1: 100, 4: 250, 3: 250},
			8: {1: 50, 3: 100, 2: 500, 4: 500, 5: 500, 6: 500},
		}),
		Packages: []Package{
			{Key: NodeKey(2), Demand: 20},
			{Key: NodeKey(3), Demand: 20},
			{Key: NodeKey(7), Demand: 90},
		},
		Neighbors: []Neighborhood{
			{Customer: 2, Nodes: []int{3}},
			{Customer: 7, Nodes: []int{6}},
		},
	}
}

// FixedInstances returns every hand written fixture.
func FixedInstances() []*Instance {
	return []*Instance{
		SimpleInstance(),
		TwoVehicleInstance(),
		OtherTwoVehicleInstance(),
		RepeatedPathInstance(),
		LargerInstance(),
	}
}

// FixedInstance looks a fixture up by name.
func FixedInstance(name string) (*Instance, error) {
	for _, inst := range FixedInstances() {
		if inst.Name == name {
			return inst, nil
		}
	}
	return nil, fmt.Errorf("unknown fixed instance %q", name)
}
