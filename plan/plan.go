// Package plan describes which instances a generator run produces and runs it.
package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"git.solver4all.com/azaryc2s/srp"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSeed    = 159753
	DefaultOutput  = "resources"
	DefaultWorkers = 4
)

type Plan struct {
	Seed      int64       `yaml:"seed"`
	Output    string      `yaml:"output"`
	Workers   int         `yaml:"workers"`
	Fixed     []string    `yaml:"fixed"`
	Grids     []Grid      `yaml:"grids"`
	Euclidean []Euclidean `yaml:"euclidean"`
	Random    []Random    `yaml:"random"`
	Legacy    []Legacy    `yaml:"legacy"`
}

type Grid struct {
	Rows         int     `yaml:"rows"`
	Cols         int     `yaml:"cols"`
	Vehicles     int     `yaml:"vehicles"`
	CustomerProb float64 `yaml:"customer_prob"`
	Demand       int     `yaml:"demand"`
	Capacity     int     `yaml:"capacity"`
	Layout       string  `yaml:"layout"`
}

func (g Grid) Config() srp.GridConfig {
	return srp.GridConfig{
		Rows:         g.Rows,
		Cols:         g.Cols,
		Vehicles:     g.Vehicles,
		CustomerProb: g.CustomerProb,
		Demand:       g.Demand,
		Capacity:     g.Capacity,
		Layout:       srp.GridLayout(g.Layout),
	}
}

type Euclidean struct {
	Nodes     int     `yaml:"nodes"`
	Customers int     `yaml:"customers"`
	Vehicles  int     `yaml:"vehicles"`
	Threshold float64 `yaml:"k"`
}

func (e Euclidean) Config() srp.EuclideanConfig {
	return srp.EuclideanConfig{Nodes: e.Nodes, Customers: e.Customers, Vehicles: e.Vehicles, Threshold: e.Threshold}
}

type Random struct {
	Size          int  `yaml:"size"`
	ManyNeighbors bool `yaml:"many_neighbors"`
}

// Legacy names a Tagliavini instance file to import.
type Legacy struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// New returns an empty plan with the default seed, output and worker count.
func New() *Plan {
	p := &Plan{}
	p.applyDefaults()
	return p
}

// Load reads a YAML plan. Unset fields get the defaults and legacy paths are
// resolved relative to the plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := &Plan{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing plan %s: %w", path, err)
	}
	p.applyDefaults()
	base := filepath.Dir(path)
	for i, l := range p.Legacy {
		if !filepath.IsAbs(l.Path) {
			p.Legacy[i].Path = filepath.Join(base, l.Path)
		}
	}
	return p, p.Validate()
}

func (p *Plan) applyDefaults() {
	if p.Seed == 0 {
		p.Seed = DefaultSeed
	}
	if p.Output == "" {
		p.Output = DefaultOutput
	}
	if p.Workers <= 0 {
		p.Workers = DefaultWorkers
	}
}

// Validate rejects entries that can never be built.
func (p *Plan) Validate() error {
	for _, name := range p.Fixed {
		if _, err := srp.FixedInstance(name); err != nil {
			return err
		}
	}
	for _, e := range p.Euclidean {
		if e.Customers >= e.Nodes {
			return fmt.Errorf("euclidean %s: %w", e.Config().Name(), srp.ErrTooManyCustomers)
		}
	}
	for _, l := range p.Legacy {
		if l.Name == "" || l.Path == "" {
			return fmt.Errorf("legacy entry needs a name and a path")
		}
	}
	return nil
}

// Size is the number of instances the plan produces.
func (p *Plan) Size() int {
	return len(p.Fixed) + len(p.Grids) + len(p.Euclidean) + len(p.Random) + len(p.Legacy)
}

// Default is the standard test set: every fixture plus the Euclidean series.
func Default() *Plan {
	p := New()
	for _, inst := range srp.FixedInstances() {
		p.Fixed = append(p.Fixed, inst.Name)
	}
	for _, e := range defaultEuclidean {
		p.Euclidean = append(p.Euclidean, Euclidean{Nodes: e[0], Customers: e[1], Vehicles: e[2], Threshold: float64(e[3])})
	}
	return p
}

// nodes, customers, vehicles, neighbor distance
var defaultEuclidean = [][4]int{
	{3, 1, 1, 1},
	{4, 2, 1, 1},
	{5, 2, 1, 1},
	{6, 3, 2, 1},
	{7, 3, 2, 2},
	{8, 3, 2, 2},
	{9, 4, 2, 2},
	{10, 2, 1, 2},
	{10, 7, 3, 2},
	{11, 2, 1, 2},
	{11, 9, 3, 2},
	{12, 3, 1, 2},
	{12, 10, 3, 2},
	{13, 3, 1, 3},
	{13, 11, 3, 3},
	{14, 4, 1, 3},
	{14, 12, 3, 3},
	{15, 2, 1, 3},
	{15, 8, 2, 3},
	{15, 13, 4, 3},
	{16, 3, 1, 3},
	{16, 8, 2, 3},
	{16, 13, 4, 3},
	{17, 4, 1, 3},
	{17, 9, 2, 3},
	{17, 14, 4, 3},
	{18, 5, 1, 4},
	{18, 10, 2, 4},
	{18, 15, 4, 4},
	{19, 5, 1, 4},
	{19, 10, 2, 4},
	{19, 17, 4, 4},
	{20, 5, 2, 4},
	{20, 10, 3, 4},
	{20, 15, 5, 4},
	{25, 10, 2, 5},
	{25, 15, 3, 5},
	{25, 20, 5, 5},
	{30, 15, 2, 6},
	{30, 20, 3, 6},
	{30, 25, 5, 6},
	{35, 15, 2, 7},
	{35, 20, 3, 7},
	{35, 25, 5, 7},
	{40, 15, 2, 8},
	{40, 20, 3, 8},
	{40, 30, 5, 8},
	{45, 15, 2, 9},
	{45, 20, 3, 9},
	{45, 40, 5, 9},
	{50, 10, 2, 10},
	{50, 20, 3, 10},
	{50, 45, 5, 10},
	{55, 10, 2, 11},
	{55, 20, 3, 11},
	{55, 45, 5, 11},
	{60, 10, 2, 12},
	{60, 20, 3, 12},
	{60, 50, 5, 12},
	{65, 10, 2, 13},
	{65, 20, 3, 13},
	{65, 55, 5, 13},
	{70, 10, 2, 14},
	{70, 30, 3, 14},
	{70, 60, 5, 14},
	{80, 40, 5, 16},
	{90, 45, 5, 18},
	{100, 50, 5, 20},
}
