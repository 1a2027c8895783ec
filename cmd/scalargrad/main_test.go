package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCapture(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, run(args, &buf))
	return buf.String()
}

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{nil, {"unknown"}} {
		out := runCapture(t, args...)
		assert.Contains(t, out, "Commands:")
		assert.Contains(t, out, "backprop")
	}
}

func TestRun_Version(t *testing.T) {
	assert.Equal(t, "scalargrad "+version+"\n", runCapture(t, "version"))
}

func TestRun_Add(t *testing.T) {
	out := runCapture(t, "add")
	lines := strings.Split(strings.TrimSpace(out), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "Node[3, grad=1, op=add]", lines[0])
	assert.Equal(t, "Node[1, grad=1, op=none]", lines[1])
	assert.Equal(t, "Node[2, grad=1, op=none]", lines[2])
}

func TestRun_Backprop(t *testing.T) {
	out := runCapture(t, "backprop")

	assert.Contains(t, out, "d = a*b + c = 16")
	assert.Contains(t, out, "dd/da = 3")
	assert.Contains(t, out, "dd/db = 2")
	assert.Contains(t, out, "dd/dc = 1")
}

func TestRun_Neuron(t *testing.T) {
	out := runCapture(t, "neuron")

	assert.Contains(t, out, "o = 0.7071")
	assert.Contains(t, out, "x1: value=2.0000 grad=-1.5000")
	assert.Contains(t, out, "x2: value=0.0000 grad=0.5000")
	assert.Contains(t, out, "w1: value=-3.0000 grad=1.0000")
	assert.Contains(t, out, "w2: value=1.0000 grad=0.0000")
	assert.Contains(t, out, "b: value=6.8814 grad=0.5000")
}

func TestRun_Graph(t *testing.T) {
	out := runCapture(t, "graph")

	assert.Contains(t, out, "rankdir")
	assert.Contains(t, out, "tanh 0.71 | 1.00")
	assert.Equal(t, 9, strings.Count(out, "--"))
}

func TestRun_MLP(t *testing.T) {
	out := runCapture(t, "mlp")

	assert.Contains(t, out, "MLP of [")
	assert.Contains(t, out, "parameters = 41")
	assert.Contains(t, out, "output = ")
	assert.Equal(t, out, runCapture(t, "mlp"))
}
