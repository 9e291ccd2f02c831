package srp

import (
	"fmt"
	"strconv"
	"strings"
)

// GridSizeFlags collects grid sizes given as "ROWSxCOLS".
type GridSizeFlags [][2]int

func (i *GridSizeFlags) String() string {
	parts := make([]string, len(*i))
	for k, s := range *i {
		parts[k] = fmt.Sprintf("%dx%d", s[0], s[1])
	}
	return strings.Join(parts, ",")
}

func (i *GridSizeFlags) Set(value string) error {
	rc := strings.Split(strings.ToLower(value), "x")
	if len(rc) != 2 {
		return fmt.Errorf("grid size %q is not ROWSxCOLS", value)
	}
	rows, err := strconv.Atoi(rc[0])
	if err != nil {
		return err
	}
	cols, err := strconv.Atoi(rc[1])
	if err != nil {
		return err
	}
	*i = append(*i, [2]int{rows, cols})
	return nil
}

// EuclideanFlags collects Euclidean configurations given as
// "NODES:CUSTOMERS:VEHICLES:THRESHOLD".
type EuclideanFlags []EuclideanConfig

func (i *EuclideanFlags) String() string {
	parts := make([]string, len(*i))
	for k, c := range *i {
		parts[k] = fmt.Sprintf("%d:%d:%d:%g", c.Nodes, c.Customers, c.Vehicles, c.Threshold)
	}
	return strings.Join(parts, ",")
}

func (i *EuclideanFlags) Set(value string) error {
	f := strings.Split(value, ":")
	if len(f) != 4 {
		return fmt.Errorf("euclidean config %q is not NODES:CUSTOMERS:VEHICLES:THRESHOLD", value)
	}
	var ints [3]int
	for k := 0; k < 3; k++ {
		v, err := strconv.Atoi(f[k])
		if err != nil {
			return err
		}
		ints[k] = v
	}
	threshold, err := strconv.ParseFloat(f[3], 64)
	if err != nil {
		return err
	}
	*i = append(*i, EuclideanConfig{Nodes: ints[0], Customers: ints[1], Vehicles: ints[2], Threshold: threshold})
	return nil
}
