package plan

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"git.solver4all.com/azaryc2s/srp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRunner(p *Plan) *Runner {
	r := NewRunner(p, zerolog.Nop())
	r.SysInfo = func() srp.SysInfo { return srp.SysInfo{Platform: "test"} }
	r.Now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return r
}

func smallPlan(output string) *Plan {
	p := New()
	p.Seed = 11
	p.Output = output
	p.Workers = 3
	p.Fixed = []string{"simple", "large"}
	p.Grids = []Grid{{Rows: 3, Cols: 4, Vehicles: 2, CustomerProb: 0.4}}
	p.Euclidean = []Euclidean{{Nodes: 10, Customers: 5, Vehicles: 2, Threshold: 3}, {Nodes: 20, Customers: 12, Vehicles: 3, Threshold: 4}}
	p.Random = []Random{{Size: 6}, {Size: 6, ManyNeighbors: true}}
	return p
}

func TestRunner_Run(t *testing.T) {
	out := t.TempDir()
	m, err := testRunner(smallPlan(out)).Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, m.RunID)
	assert.Equal(t, int64(11), m.Seed)
	assert.Equal(t, "2024-05-01T12:00:00Z", m.Created)
	require.Len(t, m.Instances, 7)
	assert.Equal(t, "simple", m.Instances[0].Name)
	assert.Equal(t, []int{2, 3}, m.Instances[0].Customers)
	assert.Equal(t, "instance_simple", m.Instances[0].Dir)
	assert.Equal(t, "neighbors_6", m.Instances[6].Name)

	for _, e := range m.Instances {
		inst, err := srp.Load(filepath.Join(out, e.Dir), srp.AbsentEdge)
		require.NoError(t, err, e.Name)
		assert.Equal(t, e.Nodes, inst.Graph.Order())
		assert.Equal(t, e.Capacity, inst.Capacity)
		assert.Equal(t, e.Demand, inst.TotalDemand())
	}

	read, err := ReadManifest(out)
	require.NoError(t, err)
	assert.Equal(t, m, read)
}

func TestRunner_SameSeedSameFiles(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	ma, err := testRunner(smallPlan(a)).Run(context.Background())
	require.NoError(t, err)
	_, err = testRunner(smallPlan(b)).Run(context.Background())
	require.NoError(t, err)

	for _, e := range ma.Instances {
		for _, f := range []string{srp.ParamsFile, srp.PackagesFile, srp.GraphFile, srp.NeighborsFile} {
			da, err := os.ReadFile(filepath.Join(a, e.Dir, f))
			require.NoError(t, err)
			db, err := os.ReadFile(filepath.Join(b, e.Dir, f))
			require.NoError(t, err)
			assert.Equal(t, da, db, "%s/%s", e.Dir, f)
		}
	}
}

func TestRunner_BuildLegacy(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tag.in"), []byte("2 2 0\n0 0 1 0\n"), 0644))
	p := New()
	p.Legacy = []Legacy{{Name: "tag", Path: filepath.Join(dir, "tag.in")}}

	instances, err := testRunner(p).Build()
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, "tag", instances[0].Name)
	assert.True(t, instances[0].Packages[0].Key.IsEdge())
}

func TestRunner_DuplicateNames(t *testing.T) {
	p := New()
	p.Fixed = []string{"simple", "simple"}

	_, err := testRunner(p).Build()
	assert.Error(t, err)
}

func TestRunner_BuildErrors(t *testing.T) {
	p := New()
	p.Grids = []Grid{{Rows: 0, Cols: 2}}
	_, err := testRunner(p).Build()
	assert.ErrorIs(t, err, srp.ErrInvalidGrid)

	p = New()
	p.Euclidean = []Euclidean{{Nodes: 3, Customers: 3, Vehicles: 1}}
	_, err = testRunner(p).Build()
	assert.ErrorIs(t, err, srp.ErrTooManyCustomers)
}

func TestRunner_WriteFailure(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, nil, 0644))

	_, err := testRunner(smallPlan(root)).Run(context.Background())
	assert.Error(t, err)
}
