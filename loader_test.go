package srp

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertSameGraph(t *testing.T, want, got *Graph) {
	t.Helper()
	require.Equal(t, want.Order(), got.Order())
	for i := 1; i <= want.Order(); i++ {
		for j := 1; j <= want.Order(); j++ {
			w, ok := want.Weight(i, j)
			g, gok := got.Weight(i, j)
			assert.Equal(t, ok, gok, "arc %d->%d", i, j)
			assert.Equal(t, math.Trunc(w), g, "arc %d->%d", i, j)
		}
	}
}

func TestLoad_RoundTripFixtures(t *testing.T) {
	root := t.TempDir()
	for _, inst := range FixedInstances() {
		dir, err := Writer{Root: root}.Write(inst)
		require.NoError(t, err)

		got, err := Load(dir, AbsentEdge)
		require.NoError(t, err)
		assert.Equal(t, inst.Name, got.Name)
		assert.Equal(t, inst.Vehicles, got.Vehicles)
		assert.Equal(t, inst.Depot, got.Depot)
		assert.Equal(t, inst.Capacity, got.Capacity)
		assert.Equal(t, inst.Packages, got.Packages)
		assert.Equal(t, inst.Neighbors, got.Neighbors)
		assertSameGraph(t, inst.Graph, got.Graph)
	}
}

func TestLoad_RoundTripEuclidean(t *testing.T) {
	inst, err := EuclideanInstance(rand.New(rand.NewSource(5)), EuclideanConfig{Nodes: 12, Customers: 6, Vehicles: 2, Threshold: 5})
	require.NoError(t, err)
	dir, err := Writer{Root: t.TempDir()}.Write(inst)
	require.NoError(t, err)

	got, err := Load(dir, AbsentEdge)
	require.NoError(t, err)
	assertSameGraph(t, inst.Graph, got.Graph)
	assert.Equal(t, inst.Packages, got.Packages)
	for _, n := range inst.Neighbors {
		if len(n.Nodes) > 0 {
			assert.Equal(t, n.Nodes, got.NeighborsOf(n.Customer))
		}
	}
}

func TestLoad_RoundTripEdgeCustomers(t *testing.T) {
	inst, err := ImportTagliavini("tag", strings.NewReader("2 2 0\n0 0 1 0\n1 1 1 2\n"))
	require.NoError(t, err)
	dir, err := Writer{Root: t.TempDir()}.Write(inst)
	require.NoError(t, err)

	got, err := Load(dir, AbsentEdge)
	require.NoError(t, err)
	assert.Equal(t, inst.Packages, got.Packages)
	assertSameGraph(t, inst.Graph, got.Graph)
}

func TestLoad_OlderVariant(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "instance_old")
	require.NoError(t, os.MkdirAll(dir, 0755))
	files := map[string]string{
		ParamsFile:   "vehicles 2\nfirst 1\nlast 3\ncapacity 40\n",
		PackagesFile: "2 20\n3 20\n",
		GraphFile:    "1 1 10000\n1 2 4\n1 3 10000\n2 1 4\n2 2 10000\n2 3 1\n3 1 10000\n3 2 1\n3 3 10000\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	inst, err := Load(dir, 10000)
	require.NoError(t, err)
	assert.Equal(t, "old", inst.Name)
	assert.Equal(t, 1, inst.Depot)
	assert.Equal(t, 3, inst.Graph.Order())
	assert.Equal(t, 4, inst.Graph.Len())
	assert.Empty(t, inst.Neighbors)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(dir, AbsentEdge)
	assert.Error(t, err)

	require.NoError(t, WriteInstance(dir, SimpleInstance()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, PackagesFile), []byte("2 20 x\n"), 0644))
	_, err = Load(dir, AbsentEdge)
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)

	require.NoError(t, os.WriteFile(filepath.Join(dir, PackagesFile), []byte("9 20\n"), 0644))
	_, err = Load(dir, AbsentEdge)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ParamsFile), []byte("vehicles 1\n"), 0644))
	_, err = Load(dir, AbsentEdge)
	assert.Error(t, err)
}
