package srp

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WritesAllFiles(t *testing.T) {
	root := t.TempDir()
	dir, err := Writer{Root: root}.Write(TwoVehicleInstance())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "instance_2v1"), dir)

	params, err := os.ReadFile(filepath.Join(dir, ParamsFile))
	require.NoError(t, err)
	assert.Equal(t, "vehicles 2\ndepot 1\ncapacity 100\n", string(params))

	neighbors, err := os.ReadFile(filepath.Join(dir, NeighborsFile))
	require.NoError(t, err)
	assert.Equal(t, "2 3\n", string(neighbors))

	graph, err := os.ReadFile(filepath.Join(dir, GraphFile))
	require.NoError(t, err)
	assert.Equal(t, 16, bytes.Count(graph, []byte("\n")))
	assert.Contains(t, string(graph), "3 4 100\n")
	assert.Contains(t, string(graph), "4 2 -1\n")
}

func TestWriteInstance_Overwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "instance")
	require.NoError(t, WriteInstance(dir, LargerInstance()))
	require.NoError(t, WriteInstance(dir, SimpleInstance()))

	packages, err := os.ReadFile(filepath.Join(dir, PackagesFile))
	require.NoError(t, err)
	assert.Equal(t, "2 20\n3 20\n", string(packages))
}

func TestWriteInstance_FailsOnUnwritableRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, nil, 0644))

	_, err := Writer{Root: root}.Write(SimpleInstance())
	assert.Error(t, err)
}

func TestWriteGraph_TruncatesWeights(t *testing.T) {
	inst := &Instance{Name: "t", Vehicles: 1, Depot: 1, Graph: GraphFromMap(map[int]map[int]float64{
		1: {2: 2.83},
		2: {1: 2.83},
	})}
	var buf bytes.Buffer
	require.NoError(t, WriteGraph(&buf, inst))
	assert.Equal(t, "1 1 -1\n1 2 2\n2 1 2\n2 2 -1\n", buf.String())
}

func TestWriteInstance_SameSeedSameBytes(t *testing.T) {
	write := func() string {
		rng := rand.New(rand.NewSource(159753))
		dir := t.TempDir()
		grid, err := GridInstance(rng, GridConfig{Rows: 4, Cols: 5, Vehicles: 2, CustomerProb: 0.3})
		require.NoError(t, err)
		euclid, err := EuclideanInstance(rng, EuclideanConfig{Nodes: 20, Customers: 10, Vehicles: 3, Threshold: 4})
		require.NoError(t, err)
		for _, inst := range []*Instance{grid, euclid} {
			_, err := Writer{Root: dir}.Write(inst)
			require.NoError(t, err)
		}
		return dir
	}
	a, b := write(), write()

	for _, inst := range []string{"instance_grid_4_5", "instance_n20_s10_k3"} {
		for _, f := range []string{ParamsFile, PackagesFile, GraphFile, NeighborsFile} {
			da, err := os.ReadFile(filepath.Join(a, inst, f))
			require.NoError(t, err)
			db, err := os.ReadFile(filepath.Join(b, inst, f))
			require.NoError(t, err)
			assert.Equal(t, da, db, "%s/%s", inst, f)
		}
	}
}
