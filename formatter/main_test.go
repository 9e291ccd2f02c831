package main

import (
	"os"
	"path/filepath"
	"testing"

	"git.solver4all.com/azaryc2s/srp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewrite_NormalizesSentinel(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "instance_legacy")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, srp.ParamsFile), []byte("vehicles 1\nfirst 1\nlast 2\ncapacity 10\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, srp.PackagesFile), []byte("2 5\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, srp.GraphFile), []byte("1 1 4\n1 2 3\n2 1 3\n2 2 4\n"), 0644))

	require.NoError(t, rewrite(dir, 4))

	params, err := os.ReadFile(filepath.Join(dir, srp.ParamsFile))
	require.NoError(t, err)
	assert.Equal(t, "vehicles 1\ndepot 1\ncapacity 10\n", string(params))
	graph, err := os.ReadFile(filepath.Join(dir, srp.GraphFile))
	require.NoError(t, err)
	assert.Equal(t, "1 1 -1\n1 2 3\n2 1 3\n2 2 -1\n", string(graph))
	_, err = os.Stat(filepath.Join(dir, srp.NeighborsFile))
	assert.NoError(t, err)
}

func TestRewrite_Invalid(t *testing.T) {
	assert.Error(t, rewrite(t.TempDir(), srp.AbsentEdge))
}
