package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procflow/procflow/units"
)

func testPipe(t *testing.T, name string, nominalMM, lengthM float64) *Pipe {
	t.Helper()
	p, err := NewPipe(PipeSpec{
		Name:            name,
		NominalDiameter: units.DiameterMillimeters(nominalMM),
		Material:        "CS",
		Length:          units.Meters(lengthM),
	})
	require.NoError(t, err)
	return p
}

func TestNewNetworkConnectionTypes(t *testing.T) {
	n, err := NewNetwork("main", "")
	require.NoError(t, err)
	assert.Equal(t, Series, n.ConnectionType())

	_, err = NewNetwork("main", "mesh")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestAddSeriesAndParallelWrapping(t *testing.T) {
	p1 := testPipe(t, "p1", 50, 10)
	p2 := testPipe(t, "p2", 50, 10)
	p3 := testPipe(t, "p3", 50, 10)

	// On a series block, AddParallel wraps the branches in a child block.
	main := SeriesNetwork("main", p1)
	main.AddParallel(p2, p3)
	require.Len(t, main.Elements(), 2)
	child, ok := main.Elements()[1].(*Network)
	require.True(t, ok)
	assert.Equal(t, Parallel, child.ConnectionType())
	assert.Len(t, child.Elements(), 2)

	// On a parallel block, AddSeries wraps.
	par := ParallelNetwork("split", p1)
	par.AddSeries(p2, p3)
	require.Len(t, par.Elements(), 2)
	wrapped, ok := par.Elements()[1].(*Network)
	require.True(t, ok)
	assert.Equal(t, Series, wrapped.ConnectionType())
}

func TestAddNodeRejectsDuplicates(t *testing.T) {
	n, _ := NewNetwork("main", Series)
	_, err := n.AddNode("inlet", 0)
	require.NoError(t, err)
	_, err = n.AddNode("inlet", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)

	node, err := n.Node("inlet")
	require.NoError(t, err)
	assert.Equal(t, "inlet", node.Name)

	_, err = n.Node("outlet")
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestAddEdge(t *testing.T) {
	n, _ := NewNetwork("main", Series)
	_, err := n.AddNode("a", 0)
	require.NoError(t, err)
	_, err = n.AddNode("b", 0)
	require.NoError(t, err)

	p := testPipe(t, "run", 50, 10)
	require.NoError(t, n.AddEdge(p, "a", "b"))
	assert.Len(t, n.Elements(), 1)

	// Endpoints must pre-exist and differ.
	err = n.AddEdge(testPipe(t, "x", 50, 1), "a", "missing")
	assert.ErrorIs(t, err, ErrMissingInput)
	err = n.AddEdge(testPipe(t, "x", 50, 1), "a", "a")
	assert.ErrorIs(t, err, ErrInvalidValue)

	// A bare network cannot form an edge.
	sub, _ := NewNetwork("sub", Series)
	err = n.AddEdge(sub, "a", "b")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestAddEdgeMultiPort(t *testing.T) {
	n, _ := NewNetwork("main", Series)
	_, _ = n.AddNode("a", 0)
	_, _ = n.AddNode("b", 0)

	eq := NewEquipment("hx", units.Pascals(20000), "plate exchanger")
	require.NoError(t, n.AddEdge(eq, "a", "b"))
	require.Len(t, eq.InletNodes(), 1)
	require.Len(t, eq.OutletNodes(), 1)
	assert.Equal(t, "a", eq.InletNodes()[0].Name)
	assert.Equal(t, "b", eq.OutletNodes()[0].Name)
}

func TestAddSubnetworkRejectsSelf(t *testing.T) {
	n, _ := NewNetwork("main", Series)
	err := n.AddSubnetwork(n)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidateReportsAllProblems(t *testing.T) {
	n, _ := NewNetwork("main", Series)
	_, _ = n.AddNode("orphan", 0)
	_, _ = n.AddNode("a", 0)
	_, _ = n.AddNode("b", 0)
	require.NoError(t, n.AddEdge(testPipe(t, "run", 50, 10), "a", "b"))

	err := n.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "orphan")
}

func TestValidateRecursesIntoSubnetworks(t *testing.T) {
	sub, _ := NewNetwork("sub", Series)
	_, _ = sub.AddNode("dangling", 0)

	main := SeriesNetwork("main", testPipe(t, "p1", 50, 10))
	require.NoError(t, main.AddSubnetwork(sub))

	err := main.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sub")
	assert.Contains(t, err.Error(), "dangling")
}

func TestValidateCleanNetwork(t *testing.T) {
	n, _ := NewNetwork("main", Series)
	_, _ = n.AddNode("a", 0)
	_, _ = n.AddNode("b", 0)
	require.NoError(t, n.AddEdge(testPipe(t, "run", 50, 10), "a", "b"))
	assert.NoError(t, n.Validate())
}

func TestDescribeAndSchematic(t *testing.T) {
	branch1 := SeriesNetwork("north", testPipe(t, "n1", 50, 10))
	branch2 := SeriesNetwork("south", testPipe(t, "s1", 50, 12))
	main := SeriesNetwork("main", testPipe(t, "feed", 80, 5))
	main.AddParallel(branch1, branch2)

	desc := main.Describe()
	assert.Contains(t, desc, "Network: main (connection: series)")
	assert.Contains(t, desc, "north")
	assert.Contains(t, desc, "south")

	schematic := main.Schematic()
	assert.Contains(t, schematic, "main [series]")
	assert.Contains(t, schematic, "1. feed")
	assert.Contains(t, schematic, "branch 1")
	assert.Contains(t, schematic, "branch 2")
	assert.True(t, strings.Contains(schematic, "north [series]"))
}
