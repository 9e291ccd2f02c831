package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"git.solver4all.com/azaryc2s/srp"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const ManifestFile = "manifest.json"

// Manifest records what a run produced.
type Manifest struct {
	RunID     string      `json:"run_id"`
	Seed      int64       `json:"seed"`
	Created   string      `json:"created"`
	System    srp.SysInfo `json:"system"`
	Instances []Entry     `json:"instances"`
}

type Entry struct {
	Name      string `json:"name"`
	Dir       string `json:"dir"`
	Nodes     int    `json:"nodes"`
	Vehicles  int    `json:"vehicles"`
	Capacity  int    `json:"capacity"`
	Demand    int    `json:"demand"`
	Customers []int  `json:"customers"`
}

type Runner struct {
	Plan *Plan
	Log  zerolog.Logger
	// SysInfo and Now are replaced in tests.
	SysInfo func() srp.SysInfo
	Now     func() time.Time
}

func NewRunner(p *Plan, log zerolog.Logger) *Runner {
	return &Runner{Plan: p, Log: log, SysInfo: srp.ReadSysInfo, Now: time.Now}
}

// Run builds every instance of the plan, writes them below the plan output and
// stores the manifest next to them.
func (r *Runner) Run(ctx context.Context) (*Manifest, error) {
	start := r.Now()
	instances, err := r.Build()
	if err != nil {
		return nil, err
	}
	entries, err := r.Write(ctx, instances)
	if err != nil {
		return nil, err
	}
	m := &Manifest{
		RunID:     uuid.NewString(),
		Seed:      r.Plan.Seed,
		Created:   start.UTC().Format(time.RFC3339),
		System:    r.SysInfo(),
		Instances: entries,
	}
	if err := WriteManifest(r.Plan.Output, m); err != nil {
		return nil, err
	}
	r.Log.Info().
		Str("run_id", m.RunID).
		Int("instances", len(entries)).
		Dur("took", r.Now().Sub(start)).
		Msg("Generation finished")
	return m, nil
}

// Build constructs the instances in plan order from one generator seeded with the
// plan seed, so equal seeds give equal instances.
func (r *Runner) Build() ([]*srp.Instance, error) {
	rng := rand.New(rand.NewSource(r.Plan.Seed))
	instances := make([]*srp.Instance, 0, r.Plan.Size())
	add := func(inst *srp.Instance, err error) error {
		if err != nil {
			return err
		}
		r.Log.Debug().
			Str("instance", inst.Name).
			Int("nodes", inst.Graph.Order()).
			Int("customers", len(inst.Packages)).
			Msg("Built instance")
		instances = append(instances, inst)
		return nil
	}

	for _, name := range r.Plan.Fixed {
		if err := add(srp.FixedInstance(name)); err != nil {
			return nil, err
		}
	}
	for _, g := range r.Plan.Grids {
		if err := add(srp.GridInstance(rng, g.Config())); err != nil {
			return nil, fmt.Errorf("grid %dx%d: %w", g.Rows, g.Cols, err)
		}
	}
	for _, e := range r.Plan.Euclidean {
		if err := add(srp.EuclideanInstance(rng, e.Config())); err != nil {
			return nil, fmt.Errorf("euclidean %s: %w", e.Config().Name(), err)
		}
	}
	for _, rnd := range r.Plan.Random {
		build := srp.PurelyRandomInstance
		if rnd.ManyNeighbors {
			build = srp.ManyNeighborsInstance
		}
		if err := add(build(rng, rnd.Size)); err != nil {
			return nil, fmt.Errorf("random %d: %w", rnd.Size, err)
		}
	}
	for _, l := range r.Plan.Legacy {
		if err := add(srp.ImportTagliaviniFile(l.Name, l.Path)); err != nil {
			return nil, err
		}
	}

	names := make(map[string]bool, len(instances))
	for _, inst := range instances {
		if names[inst.Name] {
			return nil, fmt.Errorf("instance name %q used twice", inst.Name)
		}
		names[inst.Name] = true
	}
	return instances, nil
}

// Write stores the instances with at most Plan.Workers writers. The first failure
// stops the writers that have not started yet.
func (r *Runner) Write(ctx context.Context, instances []*srp.Instance) ([]Entry, error) {
	w := srp.Writer{Root: r.Plan.Output}
	entries := make([]Entry, len(instances))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.Plan.Workers, 1))
	for i, inst := range instances {
		i, inst := i, inst
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dir, err := w.Write(inst)
			if err != nil {
				return fmt.Errorf("instance %s: %w", inst.Name, err)
			}
			entries[i] = newEntry(inst, dir)
			r.Log.Debug().Str("instance", inst.Name).Str("dir", dir).Msg("Wrote instance")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

func newEntry(inst *srp.Instance, dir string) Entry {
	e := Entry{
		Name:      inst.Name,
		Dir:       filepath.Base(dir),
		Nodes:     inst.Graph.Order(),
		Vehicles:  inst.Vehicles,
		Capacity:  inst.Capacity,
		Demand:    inst.TotalDemand(),
		Customers: []int{},
	}
	for _, p := range inst.Packages {
		if p.Key.IsEdge() {
			e.Customers = append(e.Customers, p.Key.Edge)
		} else {
			e.Customers = append(e.Customers, p.Key.Node)
		}
	}
	return e
}

func WriteManifest(root string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "\t")
	if err != nil {
		return err
	}
	data = []byte(srp.SanitizeJsonArrayLineBreaks(string(data)))
	if err := os.MkdirAll(root, 0755); err != nil {
		return err
	}
	path := filepath.Join(root, ManifestFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func ReadManifest(root string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(root, ManifestFile))
	if err != nil {
		return nil, err
	}
	m := &Manifest{}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return m, nil
}
