package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"git.solver4all.com/azaryc2s/srp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	root := t.TempDir()
	w := srp.Writer{Root: root}
	_, err := w.Write(srp.SimpleInstance())
	require.NoError(t, err)
	tight := srp.OtherTwoVehicleInstance()
	tight.Capacity = 10
	_, err = w.Write(tight)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "instance_broken"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "other"), 0755))

	var buf bytes.Buffer
	require.NoError(t, analyze(&buf, root, srp.AbsentEdge))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Name,Nodes,Customers,Vehicles,Capacity,Demand,MaxDemand,Status", lines[0])
	assert.Equal(t, "2v2,4,2,2,10,40,20,demand 20 exceeds capacity 10", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "instance_broken,,,,,,,ANALYZER: Error = "), lines[2])
	assert.Equal(t, "simple,4,2,1,100,40,20,OK", lines[3])
}

func TestStatus_FleetCapacity(t *testing.T) {
	inst := srp.OtherTwoVehicleInstance()
	inst.Vehicles = 1
	assert.Equal(t, "total demand 40 exceeds fleet capacity 20", status(inst))
}

func TestAnalyze_MissingDir(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, analyze(&buf, filepath.Join(t.TempDir(), "missing"), srp.AbsentEdge))
}
